package imagepkg

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func fixturePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return buf.Bytes()
}

func TestFetchImageHTTP(t *testing.T) {
	data := fixturePNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	img, err := FetchImage(context.Background(), srv.Client(), srv.URL+"/ok.png")
	if err != nil {
		t.Fatalf("FetchImage: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("decoded size: got %v", img.Bounds())
	}

	if _, err := FetchImage(context.Background(), srv.Client(), srv.URL+"/missing.png"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestFetchImageLocalPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, fixturePNG(t), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	img, err := FetchImage(context.Background(), nil, path)
	if err != nil {
		t.Fatalf("FetchImage: %v", err)
	}
	if img.Bounds().Dy() != 8 {
		t.Errorf("decoded size: got %v", img.Bounds())
	}

	if _, err := FetchImage(context.Background(), nil, filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
