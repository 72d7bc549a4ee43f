package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Overlay is a rendered layer and the canvas position of its top-left corner.
type Overlay struct {
	Image image.Image
	At    image.Point
}

// NewCanvas allocates a w x h canvas filled with bg.
func NewCanvas(w, h int, bg color.Color) *image.NRGBA {
	return imaging.New(w, h, bg)
}

// Compose alpha-blends overlays onto base in place and in order, so later
// overlays paint over earlier ones. Nil overlays are skipped.
func Compose(base *image.NRGBA, overlays []*Overlay) *image.NRGBA {
	for _, o := range overlays {
		if o == nil || o.Image == nil {
			continue
		}
		sb := o.Image.Bounds()
		r := image.Rectangle{Min: o.At, Max: o.At.Add(sb.Size())}
		draw.Draw(base, r, o.Image, sb.Min, draw.Over)
	}
	return base
}
