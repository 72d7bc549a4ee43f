package imagepkg

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Cover scales img to fill w x h and crops the overflow around the center.
func Cover(img image.Image, w, h int) *image.NRGBA {
	return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
}

// Contain scales img to the largest size that fits inside w x h while
// keeping its aspect ratio. Small images are scaled up.
func Contain(img image.Image, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	scale := math.Min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	cw := max(1, int(math.Round(float64(b.Dx())*scale)))
	ch := max(1, int(math.Round(float64(b.Dy())*scale)))
	return imaging.Resize(img, min(cw, w), min(ch, h), imaging.Lanczos)
}

// Stretch resizes img to exactly w x h, ignoring its aspect ratio.
func Stretch(img image.Image, w, h int) *image.NRGBA {
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
