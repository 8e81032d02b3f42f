package imagepkg

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// ShareQRPNG returns PNG bytes of a QR code pointing at a card's share URL.
func ShareQRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}

// ShareQRImage returns the QR as an image for further composition.
func ShareQRImage(text string, size int) (image.Image, error) {
	b, err := ShareQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
