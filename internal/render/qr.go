package render

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// ShareQR builds a QR code image for the given text, suitable for
// stamping onto card pages.
func ShareQR(text string, size int) (image.Image, error) {
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
