package imagepkg

import (
	"errors"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	minQRSize = 64
	maxQRSize = 2048
)

// GenerateQRPNG returns PNG bytes of a QR code for text, size pixels square.
// Sizes are clamped to a sane range.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	if text == "" {
		return nil, errors.New("qr: empty text")
	}
	size = min(max(size, minQRSize), maxQRSize)
	return qrcode.Encode(text, qrcode.Medium, size)
}
