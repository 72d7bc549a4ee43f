package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	imagepkg "github.com/postgen/postgen/internal/image"
	"github.com/postgen/postgen/internal/listing"
	"github.com/postgen/postgen/internal/templates"
)

var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrUnsupportedFormat  = errors.New("format unsupported")
	ErrInsufficientImages = errors.New("insufficient images")
)

// Request is one render call.
type Request struct {
	TemplateID string                  `json:"templateId"`
	Format     templates.CanvasFormat  `json:"format"`
	Images     []listing.SelectedImage `json:"images"`
	Texts      listing.PostTexts       `json:"texts"`
	Brand      listing.BrandConfig     `json:"brand"`
	Property   listing.PropertyData    `json:"property"`
}

// Output holds encoded slides in display order.
type Output struct {
	Slides      [][]byte
	ContentType string
	Ext         string
}

func (o *Output) SlideCount() int { return len(o.Slides) }

type Options struct {
	// PreviewWidth is the width previews are downscaled to.
	PreviewWidth int
	// PreviewQuality is the JPEG quality of preview slides.
	PreviewQuality int
	// LayerQuality is the JPEG quality image layers get in preview mode.
	LayerQuality int
	// MaxParallelSlides bounds how many slides composite at once.
	MaxParallelSlides int
}

func DefaultOptions() Options {
	return Options{
		PreviewWidth:      540,
		PreviewQuality:    75,
		LayerQuality:      70,
		MaxParallelSlides: 4,
	}
}

// Renderer is the public entry point of the engine. It is stateless per call
// and safe for concurrent use.
type Renderer struct {
	catalog *templates.Catalog
	comp    *Compositor
	opts    Options
	log     *zap.Logger
}

func NewRenderer(catalog *templates.Catalog, fetcher imagepkg.Fetcher, log *zap.Logger, opts Options) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if catalog == nil {
		catalog = templates.Default()
	}
	return &Renderer{
		catalog: catalog,
		comp:    NewCompositor(fetcher, log.Named("compositor"), opts.LayerQuality),
		opts:    opts,
		log:     log,
	}
}

func (r *Renderer) Catalog() *templates.Catalog { return r.catalog }

// Render looks the template up by id and renders full resolution slides, or
// previews when preview is set.
func (r *Renderer) Render(ctx context.Context, req Request, preview bool) (*Output, error) {
	def, ok := r.catalog.Get(req.TemplateID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, req.TemplateID)
	}
	if preview {
		return r.RenderPreview(ctx, def, req)
	}
	return r.RenderFull(ctx, def, req)
}

// Validate checks the request against def before any work is done.
func Validate(def *templates.Definition, req Request) error {
	if !req.Format.Valid() || !def.Supports(req.Format) {
		return fmt.Errorf("%w: template %s does not support format %s", ErrUnsupportedFormat, def.ID, req.Format)
	}
	if len(req.Images) < def.ImageCount {
		return fmt.Errorf("%w: template %s requires at least %d image(s), got %d",
			ErrInsufficientImages, def.ID, def.ImageCount, len(req.Images))
	}
	return nil
}

// RenderFull renders every slide losslessly at canvas resolution.
func (r *Renderer) RenderFull(ctx context.Context, def *templates.Definition, req Request) (*Output, error) {
	imgs, err := r.composite(ctx, def, req, false)
	if err != nil {
		return nil, err
	}
	out := &Output{Slides: make([][]byte, len(imgs)), ContentType: "image/png", Ext: "png"}
	for i, img := range imgs {
		b, err := imagepkg.EncodePNG(img)
		if err != nil {
			return nil, fmt.Errorf("encode slide %d: %w", i+1, err)
		}
		out.Slides[i] = b
	}
	return out, nil
}

// RenderPreview renders in preview mode, then downscales every slide to the
// preview width and recompresses it as JPEG.
func (r *Renderer) RenderPreview(ctx context.Context, def *templates.Definition, req Request) (*Output, error) {
	imgs, err := r.composite(ctx, def, req, true)
	if err != nil {
		return nil, err
	}
	out := &Output{Slides: make([][]byte, len(imgs)), ContentType: "image/jpeg", Ext: "jpg"}
	for i, img := range imgs {
		b, err := imagepkg.EncodeJPEG(imagepkg.Downscale(img, r.opts.PreviewWidth), r.opts.PreviewQuality)
		if err != nil {
			return nil, fmt.Errorf("encode preview %d: %w", i+1, err)
		}
		out.Slides[i] = b
	}
	return out, nil
}

func (r *Renderer) composite(ctx context.Context, def *templates.Definition, req Request, preview bool) ([]image.Image, error) {
	if err := Validate(def, req); err != nil {
		return nil, err
	}
	start := time.Now()
	plan := Expand(def, req.Format, len(req.Images))

	imgs := make([]image.Image, len(plan))
	g, gctx := errgroup.WithContext(ctx)
	if r.opts.MaxParallelSlides > 0 {
		g.SetLimit(r.opts.MaxParallelSlides)
	}
	for i, p := range plan {
		g.Go(func() error {
			img, err := r.comp.RenderSlide(gctx, p.Slide, SlideContext{
				TemplateID: def.ID,
				Format:     req.Format,
				Images:     req.Images,
				Preview:    preview,
				Bindings: Bindings{
					Texts:    req.Texts,
					Brand:    req.Brand,
					Property: req.Property,
					Slide:    p.Position,
				},
			})
			if err != nil {
				return fmt.Errorf("slide %d (%s): %w", p.Position.Index, p.Slide.ID, err)
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.log.Info("rendered post",
		zap.String("template", def.ID),
		zap.String("format", string(req.Format)),
		zap.Int("slides", len(imgs)),
		zap.Bool("preview", preview),
		zap.Duration("elapsed", time.Since(start)))
	return imgs, nil
}
