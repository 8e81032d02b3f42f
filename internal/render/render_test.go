package render

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/youruser/cardstudio/internal/cards"
)

// photoServer serves one encoded PNG at /photo.png and 404s everything else.
func photoServer(t *testing.T) *httptest.Server {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, uniformPhoto(200, 300, testRed)); err != nil {
		t.Fatalf("encoding fixture photo: %v", err)
	}
	data := buf.Bytes()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photo.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testRenderer(srv *httptest.Server) *Renderer {
	return &Renderer{
		Loader: Loader{Client: srv.Client(), Log: zerolog.Nop()},
		Fonts:  DefaultFonts(),
	}
}

func TestRenderFullCardDimensionsAndNameBox(t *testing.T) {
	srv := photoServer(t)
	r := testRenderer(srv)
	cfg := renderConfig()
	card := &cards.StandardCard{
		CardBase:  cards.CardBase{ID: "c1", TournamentID: "t1", Type: cards.TypePlayer},
		FirstName: "Jordan",
		LastName:  "Lopez",
		TeamID:    "team-1",
	}

	data, err := r.RenderFullCard(context.Background(), card, cfg, srv.URL+"/photo.png", nil, "")
	if err != nil {
		t.Fatalf("RenderFullCard: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != CanvasWidth || img.Bounds().Dy() != CanvasHeight {
		t.Fatalf("output dimensions: got %v, want %dx%d", img.Bounds(), CanvasWidth, CanvasHeight)
	}

	// Inside the last-name box: opaque and darker than the red photo.
	r8, _, _, a8 := rgba8(img, 150, 900)
	if a8 != 255 {
		t.Errorf("name box pixel should be opaque, got a=%d", a8)
	}
	if r8 == 255 {
		t.Error("name box pixel still shows the photo, box was not drawn")
	}
}

func TestRenderTrimmedPreviewDimensions(t *testing.T) {
	srv := photoServer(t)
	r := testRenderer(srv)
	card := &cards.StandardCard{
		CardBase:  cards.CardBase{ID: "c1", Type: cards.TypePlayer},
		FirstName: "Jordan",
		LastName:  "Lopez",
	}

	data, err := r.RenderTrimmedPreview(context.Background(), card, renderConfig(), srv.URL+"/photo.png", nil, "")
	if err != nil {
		t.Fatalf("RenderTrimmedPreview: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != int(TrimWidth) || img.Bounds().Dy() != int(TrimHeight) {
		t.Fatalf("preview dimensions: got %v, want %vx%v", img.Bounds(), TrimWidth, TrimHeight)
	}
}

func TestRenderToleratesMissingOptionalAssets(t *testing.T) {
	srv := photoServer(t)
	r := testRenderer(srv)
	cfg := renderConfig()
	cfg.Branding.TournamentLogoKey = "logos/tournament.png"
	card := &cards.StandardCard{
		CardBase:  cards.CardBase{ID: "c1", Type: cards.TypePlayer},
		FirstName: "Jordan",
		LastName:  "Lopez",
	}

	// Every optional asset resolves to a 404.
	resolve := func(key string) (string, error) {
		return srv.URL + "/" + key, nil
	}

	data, err := r.RenderFullCard(context.Background(), card, cfg, srv.URL+"/photo.png", resolve, "")
	if err != nil {
		t.Fatalf("render should survive missing branding assets: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
}

func TestRenderFailsWhenPhotoUnavailable(t *testing.T) {
	srv := photoServer(t)
	r := testRenderer(srv)
	card := &cards.StandardCard{
		CardBase: cards.CardBase{ID: "c1", Type: cards.TypePlayer},
	}

	if _, err := r.RenderFullCard(context.Background(), card, renderConfig(), srv.URL+"/missing.png", nil, ""); err == nil {
		t.Error("expected error when the source photograph cannot be fetched")
	}
}

func TestRenderHonorsBoundaryCrop(t *testing.T) {
	srv := photoServer(t)
	r := testRenderer(srv)
	card := &cards.StandardCard{
		CardBase: cards.CardBase{
			ID:    "c1",
			Type:  cards.TypePlayer,
			Photo: &cards.CardPhoto{OriginalKey: "p", Crop: cards.CropRect{X: 0.5, Y: 0.5, W: 0.001, H: 0.001}},
		},
		FirstName: "Jordan",
		LastName:  "Lopez",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	data, err := r.RenderFullCard(ctx, card, renderConfig(), srv.URL+"/photo.png", nil, "")
	if err != nil {
		t.Fatalf("degenerate crop should still render: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
}
