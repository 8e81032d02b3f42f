package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/youruser/cardstudio/internal/cards"
	imagepkg "github.com/youruser/cardstudio/internal/image"
	"github.com/youruser/cardstudio/internal/render"
)

// Handler adapts HTTP to the render core. It owns no state beyond its
// collaborators; cards and configs arrive whole in each request.
type Handler struct {
	Renderer     *render.Renderer
	AssetBaseURL string
	ShareBaseURL string
	Log          zerolog.Logger
}

// renderRequest is the shared payload of the render and resolve endpoints.
// Card is raw so the union tag picks the concrete shape.
type renderRequest struct {
	Card       json.RawMessage         `json:"card"`
	Config     *cards.TournamentConfig `json:"config"`
	PhotoURL   string                  `json:"photo_url"`
	TemplateID string                  `json:"template_id"`
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// resolveAssetURL is the storage-key capability handed to the core.
func (h *Handler) resolveAssetURL(key string) (string, error) {
	if h.AssetBaseURL == "" {
		return "", fmt.Errorf("no asset base URL configured")
	}
	return h.AssetBaseURL + "/" + key, nil
}

func (h *Handler) decodeRenderRequest(c *gin.Context) (*renderRequest, cards.Card, bool) {
	var req renderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	card, err := cards.DecodeCard(req.Card)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return &req, card, true
}

func (h *Handler) renderFull(c *gin.Context) {
	req, card, ok := h.decodeRenderRequest(c)
	if !ok {
		return
	}
	b, err := h.Renderer.RenderFullCard(c.Request.Context(), card, req.Config, req.PhotoURL, h.resolveAssetURL, req.TemplateID)
	if err != nil {
		h.Log.Error().Err(err).Str("card_id", card.Base().ID).Msg("full render failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Render-Key", renderKey(card))
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) renderPreview(c *gin.Context) {
	req, card, ok := h.decodeRenderRequest(c)
	if !ok {
		return
	}
	b, err := h.Renderer.RenderTrimmedPreview(c.Request.Context(), card, req.Config, req.PhotoURL, h.resolveAssetURL, req.TemplateID)
	if err != nil {
		h.Log.Error().Err(err).Str("card_id", card.Base().ID).Msg("preview render failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// resolveTemplate returns the effective template id and the frozen
// snapshot, shaped like the RenderMeta the caller will persist.
func (h *Handler) resolveTemplate(c *gin.Context) {
	req, card, ok := h.decodeRenderRequest(c)
	if !ok {
		return
	}
	id, snap := cards.ResolveTemplateSnapshot(card, req.Config, req.TemplateID)
	c.JSON(http.StatusOK, cards.RenderMeta{
		RenderKey:  renderKey(card),
		TemplateID: id,
		RenderedAt: time.Now().UTC(),
		Snapshot:   snap,
	})
}

// guides serves trim/safe guide percentages for crop-overlay UIs.
func (h *Handler) guides(c *gin.Context) {
	relativeToTrim := c.Query("relative") == "trim"
	c.JSON(http.StatusOK, gin.H{
		"canvas": gin.H{"width": render.CanvasWidth, "height": render.CanvasHeight},
		"trim":   render.GuidePercentages(render.TrimInset, relativeToTrim),
		"safe":   render.GuidePercentages(render.SafeInset, relativeToTrim),
	})
}

// qr returns a PNG QR code for a card's share link.
func (h *Handler) qr(c *gin.Context) {
	cardID := c.Query("card_id")
	if cardID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card_id is required"})
		return
	}
	size := 400
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			size = v
		}
	}
	b, err := imagepkg.ShareQRPNG(h.ShareBaseURL+"/cards/"+cardID, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func renderKey(card cards.Card) string {
	return fmt.Sprintf("renders/%s/%s.png", card.Base().TournamentID, uuid.NewString())
}
