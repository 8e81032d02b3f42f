package cards

// TemplateTheme is the full set of named colors a template can style.
// Values are hex color strings ("#rrggbb" or "#rrggbbaa"). In a
// TemplateDefinition the theme is a partial override: empty fields keep
// the base theme value. In a TemplateSnapshot every field is populated.
type TemplateTheme struct {
	GradientStart string `json:"gradient_start,omitempty"`
	GradientEnd   string `json:"gradient_end,omitempty"`
	Border        string `json:"border,omitempty"`
	Accent        string `json:"accent,omitempty"`
	Label         string `json:"label,omitempty"`
	Name          string `json:"name,omitempty"`
	Meta          string `json:"meta,omitempty"`
	Watermark     string `json:"watermark,omitempty"`
}

// TemplateFlags toggles the optional visual layers.
type TemplateFlags struct {
	GradientOverlay bool `json:"gradient_overlay"`
	Watermark       bool `json:"watermark"`
	AccentStripe    bool `json:"accent_stripe"`
}

// TemplateFlagsPatch is the partial form carried by a template definition:
// nil fields keep the base default (false).
type TemplateFlagsPatch struct {
	GradientOverlay *bool `json:"gradient_overlay,omitempty"`
	Watermark       *bool `json:"watermark,omitempty"`
	AccentStripe    *bool `json:"accent_stripe,omitempty"`
}

// OverlayPlacement says whether a template's branding overlay image is
// composited under or over the text layers.
type OverlayPlacement string

const (
	OverlayBelowText OverlayPlacement = "below-text"
	OverlayAboveText OverlayPlacement = "above-text"
)

// TemplateDefinition is a tournament-configured visual style. Theme and
// Flags are partial; missing pieces fall back to the base defaults when a
// snapshot is resolved.
type TemplateDefinition struct {
	ID               string             `json:"id"`
	Label            string             `json:"label"`
	OverlayKey       string             `json:"overlay_key,omitempty"`
	Theme            TemplateTheme      `json:"theme,omitempty"`
	Flags            TemplateFlagsPatch `json:"flags,omitempty"`
	OverlayPlacement OverlayPlacement   `json:"overlay_placement,omitempty"`
}

// TemplateSnapshot is the fully-merged, structurally complete style record
// captured at render time and persisted with the produced image.
type TemplateSnapshot struct {
	Theme            TemplateTheme    `json:"theme"`
	Flags            TemplateFlags    `json:"flags"`
	OverlayKey       string           `json:"overlay_key,omitempty"`
	OverlayPlacement OverlayPlacement `json:"overlay_placement"`
}

// Team is a tournament roster entry.
type Team struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoKey string `json:"logo_key,omitempty"`
}

// CardTypeSpec configures one entry of the tournament's card-type catalog.
type CardTypeSpec struct {
	Enabled         bool     `json:"enabled"`
	Label           string   `json:"label"`
	HasTeam         bool     `json:"has_team"`
	HasJerseyNumber bool     `json:"has_jersey_number"`
	Positions       []string `json:"positions,omitempty"`
	LogoKey         string   `json:"logo_key,omitempty"`
}

// Branding holds tournament-level imagery and colors.
type Branding struct {
	TournamentLogoKey string `json:"tournament_logo_key,omitempty"`
	OrgLogoKey        string `json:"org_logo_key,omitempty"`
	PrimaryColor      string `json:"primary_color,omitempty"`
	EventIndicator    string `json:"event_indicator,omitempty"`
}

// TemplateDefaults maps card types to default template ids, with a
// config-level fallback.
type TemplateDefaults struct {
	Fallback   string              `json:"fallback,omitempty"`
	ByCardType map[CardType]string `json:"by_card_type,omitempty"`
}

// TournamentConfig is the per-tournament configuration the render core
// reads. It is supplied by the caller and never mutated here.
type TournamentConfig struct {
	ID               string                    `json:"id"`
	Label            string                    `json:"label,omitempty"`
	Branding         Branding                  `json:"branding"`
	Teams            []Team                    `json:"teams,omitempty"`
	CardTypes        map[CardType]CardTypeSpec `json:"card_types,omitempty"`
	Templates        []TemplateDefinition      `json:"templates,omitempty"`
	DefaultTemplates *TemplateDefaults         `json:"default_templates,omitempty"`
}

// TeamByID looks up a roster entry; nil when absent.
func (c *TournamentConfig) TeamByID(id string) *Team {
	if id == "" {
		return nil
	}
	for i := range c.Teams {
		if c.Teams[i].ID == id {
			return &c.Teams[i]
		}
	}
	return nil
}

// CardTypeSpecFor returns the catalog entry for a card type, zero value
// when the catalog does not list it.
func (c *TournamentConfig) CardTypeSpecFor(t CardType) CardTypeSpec {
	if c.CardTypes == nil {
		return CardTypeSpec{}
	}
	return c.CardTypes[t]
}
