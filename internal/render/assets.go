package render

import (
	"context"
	"fmt"
	"image"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/cardstudio/internal/cards"
	imagepkg "github.com/youruser/cardstudio/internal/image"
)

// URLResolver maps a storage key to a fetchable URL. The render core
// depends on this capability instead of any concrete storage scheme.
type URLResolver func(key string) (string, error)

// CameraGlyphKey is the storage key of the bottom-bar camera icon.
const CameraGlyphKey = "assets/icons/camera.png"

// Loader fetches and decodes render assets. The source photograph is
// required and its failure fails the render; branding assets are optional
// and their failures are logged and swallowed.
type Loader struct {
	Client *http.Client
	Log    zerolog.Logger
}

// Load fetches everything a render needs, concurrently. Each optional
// asset that cannot be resolved, fetched or decoded leaves its slot nil.
func (l *Loader) Load(ctx context.Context, card cards.Card, config *cards.TournamentConfig, snap cards.TemplateSnapshot, photoURL string, resolve URLResolver) (Assets, error) {
	var assets Assets

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		img, err := imagepkg.FetchImage(gctx, l.Client, photoURL)
		if err != nil {
			return fmt.Errorf("source photograph: %w", err)
		}
		assets.Photo = img
		return nil
	})

	l.loadOptional(g, gctx, resolve, logoKey(card, config), "logo", &assets.Logo)
	l.loadOptional(g, gctx, resolve, snap.OverlayKey, "template overlay", &assets.Overlay)
	l.loadOptional(g, gctx, resolve, CameraGlyphKey, "camera glyph", &assets.CameraGlyph)

	if err := g.Wait(); err != nil {
		return Assets{}, err
	}
	return assets, nil
}

// loadOptional schedules a tolerated fetch: every failure path logs at
// warn level and reports success so it cannot cancel the group.
func (l *Loader) loadOptional(g *errgroup.Group, ctx context.Context, resolve URLResolver, key, what string, dst *image.Image) {
	if key == "" || resolve == nil {
		return
	}
	g.Go(func() error {
		url, err := resolve(key)
		if err != nil {
			l.Log.Warn().Err(err).Str("key", key).Msgf("resolving %s URL failed, rendering without it", what)
			return nil
		}
		img, err := imagepkg.FetchImage(ctx, l.Client, url)
		if err != nil {
			l.Log.Warn().Err(err).Str("key", key).Msgf("loading %s failed, rendering without it", what)
			return nil
		}
		*dst = img
		return nil
	})
}

// logoKey picks the logo for the card: card-type override, then team
// logo, then tournament branding, then organization branding.
func logoKey(card cards.Card, config *cards.TournamentConfig) string {
	if config == nil {
		return ""
	}
	base := card.Base()

	if spec := config.CardTypeSpecFor(base.Type); spec.LogoKey != "" {
		return spec.LogoKey
	}

	teamID := ""
	switch c := card.(type) {
	case *cards.StandardCard:
		teamID = c.TeamID
	case *cards.RareCard:
		teamID = c.TeamID
	}
	if t := config.TeamByID(teamID); t != nil && t.LogoKey != "" {
		return t.LogoKey
	}

	if config.Branding.TournamentLogoKey != "" {
		return config.Branding.TournamentLogoKey
	}
	return config.Branding.OrgLogoKey
}
