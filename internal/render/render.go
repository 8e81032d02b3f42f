package render

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/youruser/cardstudio/internal/cards"
)

// Renderer is the card compositing engine. Every render call is a
// self-contained pass over immutable inputs, so a single Renderer is safe
// for any number of concurrent renders. It holds no cancellation or retry
// policy: callers doing live previews track their own request generation
// and discard results that arrive late.
type Renderer struct {
	Loader Loader
	Fonts  *FontPack
}

// NewRenderer wires a renderer with the default HTTP client and fonts.
func NewRenderer(log zerolog.Logger) *Renderer {
	return &Renderer{
		Loader: Loader{Client: &http.Client{Timeout: 12 * time.Second}, Log: log},
		Fonts:  DefaultFonts(),
	}
}

// RenderFullCard produces the full-bleed card PNG at canvas dimensions.
// templateID, when non-empty, overrides the card's stored template.
func (r *Renderer) RenderFullCard(ctx context.Context, card cards.Card, config *cards.TournamentConfig, photoURL string, resolve URLResolver, templateID string) ([]byte, error) {
	return r.render(ctx, card, config, photoURL, resolve, templateID, FullTarget())
}

// RenderTrimmedPreview runs the identical pipeline into a surface sized to
// the trim box, previewing the post-cut card.
func (r *Renderer) RenderTrimmedPreview(ctx context.Context, card cards.Card, config *cards.TournamentConfig, photoURL string, resolve URLResolver, templateID string) ([]byte, error) {
	return r.render(ctx, card, config, photoURL, resolve, templateID, TrimTarget())
}

func (r *Renderer) render(ctx context.Context, card cards.Card, config *cards.TournamentConfig, photoURL string, resolve URLResolver, templateID string, tgt Target) ([]byte, error) {
	// Fonts first: no text instruction may be played before the faces
	// are confirmed available.
	if err := r.Fonts.Ensure(ctx); err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}

	_, snap := cards.ResolveTemplateSnapshot(card, config, templateID)

	assets, err := r.Loader.Load(ctx, card, config, snap, photoURL, resolve)
	if err != nil {
		return nil, err
	}

	ops, err := BuildOps(card, config, snap, assets, r.Fonts)
	if err != nil {
		return nil, err
	}

	img, err := Execute(ops, r.Fonts, tgt)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
