package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	imagepkg "github.com/postgen/postgen/internal/image"
	"github.com/postgen/postgen/internal/listing"
	"github.com/postgen/postgen/internal/templates"
)

const defaultBackground = "#FFFFFF"

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// SlideContext carries the request data a single slide is rendered against.
type SlideContext struct {
	TemplateID string
	Format     templates.CanvasFormat
	Images     []listing.SelectedImage
	Bindings   Bindings
	Preview    bool
}

// Compositor rasterizes one slide at a time. It holds no per-render state and
// is safe for concurrent use.
type Compositor struct {
	fetcher imagepkg.Fetcher
	log     *zap.Logger
	// layerQuality is the JPEG quality image layers are degraded to in preview mode.
	layerQuality int
}

func NewCompositor(fetcher imagepkg.Fetcher, log *zap.Logger, layerQuality int) *Compositor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compositor{fetcher: fetcher, log: log, layerQuality: layerQuality}
}

// RenderSlide composites slide onto a canvas sized to the format. Layer
// sources are fetched concurrently; failed fetches degrade to placeholders or
// are omitted. Only unexpected rasterization failures return an error.
func (c *Compositor) RenderSlide(ctx context.Context, slide templates.Slide, sc SlideContext) (*image.NRGBA, error) {
	size, ok := sc.Format.Size()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, sc.Format)
	}

	bg := slide.BackgroundColor
	if bg == "" {
		bg = defaultBackground
	}
	canvas := imagepkg.NewCanvas(size.Width, size.Height, imagepkg.ParseHexOr(ResolveColor(bg, sc.Bindings.Brand), white))

	layers := SortLayers(slide.Layers)
	overlays := make([]*imagepkg.Overlay, len(layers))
	g, gctx := errgroup.WithContext(ctx)
	for i, l := range layers {
		g.Go(func() error {
			o, err := c.renderLayer(gctx, l, sc)
			if err != nil {
				return fmt.Errorf("layer %s: %w", l.LayerID(), err)
			}
			overlays[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return imagepkg.Compose(canvas, overlays), nil
}

// SortLayers returns a copy of layers ordered by z-index, keeping declaration
// order for ties.
func SortLayers(layers []templates.Layer) []templates.Layer {
	out := make([]templates.Layer, len(layers))
	copy(out, layers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z() < out[j].Z() })
	return out
}

// renderLayer is the single dispatch point over layer kinds. A nil overlay
// means the layer contributes nothing.
func (c *Compositor) renderLayer(ctx context.Context, layer templates.Layer, sc SlideContext) (*imagepkg.Overlay, error) {
	r := layer.Bounds()
	if r.Width <= 0 || r.Height <= 0 {
		return nil, nil
	}
	switch l := layer.(type) {
	case templates.ImageLayer:
		return c.imageLayer(ctx, l, sc)
	case templates.TextLayer:
		return textLayer(l, sc.Bindings)
	case templates.ShapeLayer:
		return shapeLayer(l, sc.Bindings.Brand), nil
	case templates.LogoLayer:
		return c.logoLayer(ctx, l, sc)
	default:
		return nil, fmt.Errorf("unknown layer type %T", layer)
	}
}

func (c *Compositor) imageLayer(ctx context.Context, l templates.ImageLayer, sc SlideContext) (*imagepkg.Overlay, error) {
	if l.ImageIndex < 0 || l.ImageIndex >= len(sc.Images) {
		c.log.Debug("image index out of range",
			zap.String("template", sc.TemplateID), zap.String("layer", l.ID),
			zap.Int("index", l.ImageIndex), zap.Int("images", len(sc.Images)))
		return nil, nil
	}
	url := sc.Images[l.ImageIndex].URL
	w, h := l.Rect.Size()

	src, err := imagepkg.DownloadImage(ctx, c.fetcher, url)
	if err != nil {
		c.log.Warn("image layer fell back to placeholder",
			zap.String("template", sc.TemplateID), zap.String("layer", l.ID),
			zap.String("url", url), zap.Error(err))
		return &imagepkg.Overlay{Image: imagepkg.Placeholder(w, h), At: l.Rect.Min()}, nil
	}

	fitted := fitImage(src, l.Fit, w, h)
	if l.BorderRadius > 0 {
		imagepkg.RoundCorners(fitted, float64(l.BorderRadius))
		return &imagepkg.Overlay{Image: fitted, At: l.Rect.Min()}, nil
	}
	if sc.Preview && c.layerQuality > 0 {
		lossy, err := imagepkg.Degrade(fitted, c.layerQuality)
		if err != nil {
			return nil, fmt.Errorf("preview encode: %w", err)
		}
		return &imagepkg.Overlay{Image: lossy, At: l.Rect.Min()}, nil
	}
	return &imagepkg.Overlay{Image: fitted, At: l.Rect.Min()}, nil
}

func fitImage(src image.Image, fit templates.Fit, w, h int) *image.NRGBA {
	switch fit {
	case templates.FitCover:
		return imagepkg.Cover(src, w, h)
	case templates.FitContain:
		return imagepkg.Contain(src, w, h)
	default:
		return imagepkg.Stretch(src, w, h)
	}
}

func textLayer(l templates.TextLayer, b Bindings) (*imagepkg.Overlay, error) {
	text := ResolveText(l, b)
	if text == "" {
		return nil, nil
	}
	w, h := l.Rect.Size()
	img, err := imagepkg.DrawText(w, h, text, imagepkg.TextOptions{
		Size:          l.Style.FontSize,
		Weight:        weightOf(l.Style.FontWeight),
		Color:         imagepkg.ParseHexOr(ResolveColor(l.Style.Color, b.Brand), black),
		Align:         alignOf(l.Style.TextAlign),
		LetterSpacing: l.Style.LetterSpacing,
	})
	if err != nil {
		return nil, err
	}
	return &imagepkg.Overlay{Image: img, At: l.Rect.Min()}, nil
}

func weightOf(w templates.FontWeight) imagepkg.Weight {
	switch w {
	case templates.WeightBlack:
		return imagepkg.Heavy
	case templates.WeightBold:
		return imagepkg.Bold
	default:
		return imagepkg.Regular
	}
}

func alignOf(a templates.TextAlign) imagepkg.Align {
	switch a {
	case templates.AlignCenter:
		return imagepkg.Center
	case templates.AlignRight:
		return imagepkg.Right
	default:
		return imagepkg.Left
	}
}

func shapeLayer(l templates.ShapeLayer, brand listing.BrandConfig) *imagepkg.Overlay {
	w, h := l.Rect.Size()
	if l.Shape == templates.ShapeGradient && l.Gradient != nil {
		stops := make([]imagepkg.Stop, len(l.Gradient.Stops))
		for i, s := range l.Gradient.Stops {
			c := imagepkg.ParseHexOr(ResolveColor(s.Color, brand), black)
			stops[i] = imagepkg.Stop{Offset: s.Offset, Color: imagepkg.WithOpacity(c, s.Opacity)}
		}
		return &imagepkg.Overlay{
			Image: imagepkg.LinearGradient(w, h, directionOf(l.Gradient.Direction), stops),
			At:    l.Rect.Min(),
		}
	}

	fill := l.Fill
	if fill == "" {
		fill = "#000000"
	}
	c := imagepkg.WithOpacity(imagepkg.ParseHexOr(ResolveColor(fill, brand), black), l.Alpha())
	return &imagepkg.Overlay{
		Image: imagepkg.SolidRect(w, h, c, float64(l.BorderRadius)),
		At:    l.Rect.Min(),
	}
}

func directionOf(d templates.GradientDirection) imagepkg.Direction {
	switch d {
	case templates.ToTop:
		return imagepkg.ToTop
	case templates.ToRight:
		return imagepkg.ToRight
	case templates.ToLeft:
		return imagepkg.ToLeft
	default:
		return imagepkg.ToBottom
	}
}

// logoLayer draws the brand logo, or the agency name when no logo is set.
// A logo that fails to load is omitted.
func (c *Compositor) logoLayer(ctx context.Context, l templates.LogoLayer, sc SlideContext) (*imagepkg.Overlay, error) {
	brand := sc.Bindings.Brand
	w, h := l.Rect.Size()
	if brand.LogoURL == "" {
		if brand.AgencyName == "" {
			return nil, nil
		}
		size := math.Min(24, math.Round(float64(h)*0.4))
		img, err := imagepkg.DrawText(w, h, brand.AgencyName, imagepkg.TextOptions{
			Size:   size,
			Weight: imagepkg.Bold,
			Color:  white,
			Align:  imagepkg.Center,
		})
		if err != nil {
			return nil, err
		}
		return &imagepkg.Overlay{Image: img, At: l.Rect.Min()}, nil
	}

	src, err := imagepkg.DownloadImage(ctx, c.fetcher, brand.LogoURL)
	if err != nil {
		c.log.Warn("logo layer omitted",
			zap.String("template", sc.TemplateID), zap.String("layer", l.ID),
			zap.String("url", brand.LogoURL), zap.Error(err))
		return nil, nil
	}
	fit := l.Fit
	if fit == "" {
		fit = templates.FitContain
	}
	return &imagepkg.Overlay{Image: fitImage(src, fit, w, h), At: l.Rect.Min()}, nil
}
