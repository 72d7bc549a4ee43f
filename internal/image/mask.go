package imagepkg

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// RoundedMask returns an antialiased coverage mask of a w x h rounded
// rectangle. The radius is capped at half the shorter side. A nil mask means
// no rounding applies.
func RoundedMask(w, h int, radius float64) *image.Alpha {
	r := math.Min(radius, math.Min(float64(w), float64(h))/2)
	if r <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	fw, fh, rr := float32(w), float32(h), float32(r)
	c := rr * (1 - kappa)

	z := vector.NewRasterizer(w, h)
	z.MoveTo(rr, 0)
	z.LineTo(fw-rr, 0)
	z.CubeTo(fw-c, 0, fw, c, fw, rr)
	z.LineTo(fw, fh-rr)
	z.CubeTo(fw, fh-c, fw-c, fh, fw-rr, fh)
	z.LineTo(rr, fh)
	z.CubeTo(c, fh, 0, fh-c, 0, fh-rr)
	z.LineTo(0, rr)
	z.CubeTo(0, c, c, 0, rr, 0)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// RoundCorners clears the outside of a rounded rectangle spanning img's
// bounds, in place.
func RoundCorners(img *image.NRGBA, radius float64) {
	b := img.Bounds()
	mask := RoundedMask(b.Dx(), b.Dy(), radius)
	if mask == nil {
		return
	}
	src := imaging.Clone(img)
	draw.DrawMask(img, b, src, image.Point{}, mask, image.Point{}, draw.Src)
}
