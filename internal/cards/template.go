package cards

import "strings"

// DefaultTemplateID is the hard-coded last resort of the resolution chain.
const DefaultTemplateID = "classic"

// baseTheme is the style every template merges onto. A snapshot therefore
// always has all eight colors populated.
var baseTheme = TemplateTheme{
	GradientStart: "#00000000",
	GradientEnd:   "#000000aa",
	Border:        "#101820",
	Accent:        "#e8b93c",
	Label:         "#14202c",
	Name:          "#ffffff",
	Meta:          "#d8d8d8",
	Watermark:     "#ffffff26",
}

// baseFlags: every optional layer off unless the template turns it on.
var baseFlags = TemplateFlags{}

// fallbackDefinition is used when the resolved id has no entry in the
// config's template catalog (or the catalog is absent).
var fallbackDefinition = TemplateDefinition{
	ID:               DefaultTemplateID,
	Label:            "Classic",
	OverlayPlacement: OverlayBelowText,
}

// ResolveTemplateID picks the effective template id. Precedence:
// explicit override > id stored on the card > per-card-type default >
// config-level fallback > DefaultTemplateID. It never fails.
func ResolveTemplateID(explicitID, cardStoredID string, cardType CardType, config *TournamentConfig) string {
	if id := strings.TrimSpace(explicitID); id != "" {
		return id
	}
	if id := strings.TrimSpace(cardStoredID); id != "" {
		return id
	}
	if config != nil && config.DefaultTemplates != nil {
		if id := strings.TrimSpace(config.DefaultTemplates.ByCardType[cardType]); id != "" {
			return id
		}
		if id := strings.TrimSpace(config.DefaultTemplates.Fallback); id != "" {
			return id
		}
	}
	return DefaultTemplateID
}

// FindTemplate looks up an exact id in the config's template catalog.
// Returns nil when the catalog is absent or the id is unmatched; callers
// substitute the baked-in fallback definition.
func FindTemplate(config *TournamentConfig, id string) *TemplateDefinition {
	if config == nil {
		return nil
	}
	for i := range config.Templates {
		if config.Templates[i].ID == id {
			return &config.Templates[i]
		}
	}
	return nil
}

// ResolveTemplateSnapshot composes id resolution, catalog lookup and the
// merge onto base defaults. It is a pure mapping: identical inputs always
// yield an identical snapshot, which is what lets the same call back both
// the render and the persisted metadata.
func ResolveTemplateSnapshot(card Card, config *TournamentConfig, explicitID string) (string, TemplateSnapshot) {
	base := card.Base()
	id := ResolveTemplateID(explicitID, base.TemplateID, base.Type, config)

	def := FindTemplate(config, id)
	if def == nil {
		def = &fallbackDefinition
	}

	placement := def.OverlayPlacement
	if placement == "" {
		placement = OverlayBelowText
	}

	return id, TemplateSnapshot{
		Theme:            mergeTheme(baseTheme, def.Theme),
		Flags:            mergeFlags(baseFlags, def.Flags),
		OverlayKey:       def.OverlayKey,
		OverlayPlacement: placement,
	}
}

func mergeTheme(base, patch TemplateTheme) TemplateTheme {
	out := base
	if patch.GradientStart != "" {
		out.GradientStart = patch.GradientStart
	}
	if patch.GradientEnd != "" {
		out.GradientEnd = patch.GradientEnd
	}
	if patch.Border != "" {
		out.Border = patch.Border
	}
	if patch.Accent != "" {
		out.Accent = patch.Accent
	}
	if patch.Label != "" {
		out.Label = patch.Label
	}
	if patch.Name != "" {
		out.Name = patch.Name
	}
	if patch.Meta != "" {
		out.Meta = patch.Meta
	}
	if patch.Watermark != "" {
		out.Watermark = patch.Watermark
	}
	return out
}

func mergeFlags(base TemplateFlags, patch TemplateFlagsPatch) TemplateFlags {
	out := base
	if patch.GradientOverlay != nil {
		out.GradientOverlay = *patch.GradientOverlay
	}
	if patch.Watermark != nil {
		out.Watermark = *patch.Watermark
	}
	if patch.AccentStripe != nil {
		out.AccentStripe = *patch.AccentStripe
	}
	return out
}
