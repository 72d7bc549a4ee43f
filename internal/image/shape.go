package imagepkg

import (
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// placeholderGray stands in for images that could not be loaded.
var placeholderGray = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

// Placeholder is the flat gray box used when an image layer fails.
func Placeholder(w, h int) *image.NRGBA {
	return imaging.New(w, h, placeholderGray)
}

// SolidRect is a w x h box of c, optionally with rounded corners.
func SolidRect(w, h int, c color.NRGBA, radius float64) *image.NRGBA {
	mask := RoundedMask(w, h, radius)
	if mask == nil {
		return imaging.New(w, h, c)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.DrawMask(img, img.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Src)
	return img
}

type Direction int

const (
	ToBottom Direction = iota
	ToTop
	ToRight
	ToLeft
)

// Stop is a gradient color stop. Opacity lives in Color.A.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient paints a w x h linear gradient running in dir. Positions
// before the first stop take its color, positions after the last take the
// last color. Colors are sampled at pixel centers.
func LinearGradient(w, h int, dir Direction, stops []Stop) *image.NRGBA {
	if len(stops) == 0 || w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	// gg extrapolates before the first stop, so pin both ends explicitly.
	if first := sorted[0]; first.Offset > 0 {
		sorted = append([]Stop{{Offset: 0, Color: first.Color}}, sorted...)
	}
	if last := sorted[len(sorted)-1]; last.Offset < 1 {
		sorted = append(sorted, Stop{Offset: 1, Color: last.Color})
	}

	x0, y0, x1, y1 := gradientAxis(w, h, dir)
	g := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, s := range sorted {
		g.AddColorStop(s.Offset, s.Color)
	}

	dc := gg.NewContext(w, h)
	dc.SetFillStyle(g)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	return imaging.Clone(dc.Image())
}

// gradientAxis returns the gradient line. gg samples at integer pixel
// coordinates, so the line is shifted half a pixel to sample centers.
func gradientAxis(w, h int, dir Direction) (x0, y0, x1, y1 float64) {
	fw, fh := float64(w), float64(h)
	switch dir {
	case ToTop:
		return 0, fh - 0.5, 0, -0.5
	case ToRight:
		return -0.5, 0, fw - 0.5, 0
	case ToLeft:
		return fw - 0.5, 0, -0.5, 0
	default:
		return 0, -0.5, 0, fh - 0.5
	}
}
