package imagepkg

import (
	"bytes"
	"image/png"
	"testing"
)

func TestShareQRPNG(t *testing.T) {
	b, err := ShareQRPNG("https://cards.example/cards/c1", 256)
	if err != nil {
		t.Fatalf("ShareQRPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 256 {
		t.Errorf("size: got %v", img.Bounds())
	}
}

func TestShareQRPNGRejectsEmptyContent(t *testing.T) {
	if _, err := ShareQRPNG("", 256); err == nil {
		t.Error("expected error for empty content")
	}
}

func TestShareQRImage(t *testing.T) {
	img, err := ShareQRImage("https://cards.example/cards/c1", 128)
	if err != nil {
		t.Fatalf("ShareQRImage: %v", err)
	}
	if img.Bounds().Dx() != 128 {
		t.Errorf("size: got %v", img.Bounds())
	}
}
