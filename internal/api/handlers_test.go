package api

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/youruser/cardstudio/internal/cards"
	"github.com/youruser/cardstudio/internal/render"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &Handler{
		Renderer:     render.NewRenderer(zerolog.Nop()),
		AssetBaseURL: "http://assets.local",
		ShareBaseURL: "http://share.local",
		Log:          zerolog.Nop(),
	}
	RegisterRoutes(r, h)
	return r
}

func TestHealth(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
}

func TestResolveTemplate(t *testing.T) {
	r := testRouter()
	body := `{
		"card": {"id":"c1","tournament_id":"t1","card_type":"player","first_name":"Jordan","last_name":"Lopez"},
		"config": {
			"id": "t1",
			"templates": [{"id":"classic","label":"Classic","theme":{"accent":"#ff0000"}}],
			"default_templates": {"fallback":"classic"}
		}
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/template/resolve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}

	var meta cards.RenderMeta
	if err := json.Unmarshal(w.Body.Bytes(), &meta); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if meta.TemplateID != "classic" {
		t.Errorf("template id: got %q", meta.TemplateID)
	}
	if meta.Snapshot.Theme.Accent != "#ff0000" {
		t.Errorf("snapshot accent: got %q", meta.Snapshot.Theme.Accent)
	}
	if !strings.HasPrefix(meta.RenderKey, "renders/t1/") || !strings.HasSuffix(meta.RenderKey, ".png") {
		t.Errorf("render key shape: got %q", meta.RenderKey)
	}
	if meta.RenderedAt.IsZero() {
		t.Error("rendered_at not set")
	}
}

func TestResolveTemplateRejectsBadCard(t *testing.T) {
	r := testRouter()
	for _, body := range []string{
		`not json`,
		`{"card": {"id":"c1"}}`,
		`{"card": {"id":"c1","card_type":"mascot"}}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/template/resolve", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: got status %d, want 400", body, w.Code)
		}
	}
}

func TestGuides(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/guides", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}

	var resp struct {
		Canvas struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"canvas"`
		Trim render.GuideBox `json:"trim"`
		Safe render.GuideBox `json:"safe"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Canvas.Width != render.CanvasWidth || resp.Canvas.Height != render.CanvasHeight {
		t.Errorf("canvas: got %dx%d", resp.Canvas.Width, resp.Canvas.Height)
	}
	if resp.Safe.Left <= resp.Trim.Left {
		t.Errorf("safe guide (%v) should sit inside trim guide (%v)", resp.Safe.Left, resp.Trim.Left)
	}

	// Relative to trim, the trim guide collapses to the surface edge.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/guides?relative=trim", nil)
	r.ServeHTTP(w, req)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Trim.Left != 0 || resp.Trim.Top != 0 {
		t.Errorf("trim guides relative to trim: got %+v", resp.Trim)
	}
}

func TestQR(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/qr?card_id=c1&size=128", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decoding QR PNG: %v", err)
	}
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 128 {
		t.Errorf("QR size: got %v", img.Bounds())
	}
}

func TestQRRequiresCardID(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/qr", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}
