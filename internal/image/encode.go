package imagepkg

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// EncodePNG is the lossless encoder used for full resolution slides.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Degrade round-trips img through JPEG at quality, returning the lossy result.
func Degrade(img image.Image, quality int) (image.Image, error) {
	b, err := EncodeJPEG(img, quality)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(b))
}

// Downscale resizes img to width, preserving aspect ratio. Images already at
// or below width are returned unchanged.
func Downscale(img image.Image, width int) image.Image {
	if width <= 0 || img.Bounds().Dx() <= width {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}
