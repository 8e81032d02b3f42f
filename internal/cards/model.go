package cards

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CardType tags a card record with its layout-relevant variant.
type CardType string

const (
	TypePlayer          CardType = "player"
	TypeTeamStaff       CardType = "team-staff"
	TypeMedia           CardType = "media"
	TypeOfficial        CardType = "official"
	TypeTournamentStaff CardType = "tournament-staff"
	TypeNationalTeam    CardType = "national-team"
	TypeRare            CardType = "rare"
	TypeSuperRare       CardType = "super-rare"
)

// Rarity is the collectible tier shown by the bottom-bar glyph.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RaritySuperRare Rarity = "super-rare"
)

// Status tracks a card through the editorial workflow.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
)

// CropRect is a normalized crop region in source-photo space.
// X, Y, W, H are fractions of the source dimensions; RotateDeg is one of
// 0, 90, 180, 270 (clockwise). Validation is the caller's contract: the
// render path assumes 0<=x,y, 0<w,h<=1, x+w<=1, y+h<=1.
type CropRect struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
	RotateDeg int     `json:"rotate_deg"`
}

// FullCrop is the default crop used when a card has no stored photo crop.
func FullCrop() CropRect {
	return CropRect{X: 0, Y: 0, W: 1, H: 1, RotateDeg: 0}
}

// CardPhoto references the uploaded source photograph by storage key.
type CardPhoto struct {
	OriginalKey string   `json:"original_key"`
	Crop        CropRect `json:"crop"`
}

// RenderMeta is the permanent record of a produced render. Snapshot is
// frozen at render time: it must never be recomputed from a template
// definition that may have been edited since.
type RenderMeta struct {
	RenderKey  string           `json:"render_key"`
	TemplateID string           `json:"template_id"`
	RenderedAt time.Time        `json:"rendered_at"`
	Snapshot   TemplateSnapshot `json:"snapshot"`
}

// CardBase carries the fields shared by every card variant.
type CardBase struct {
	ID           string      `json:"id"`
	TournamentID string      `json:"tournament_id"`
	Type         CardType    `json:"card_type"`
	Rarity       Rarity      `json:"rarity,omitempty"`
	TemplateID   string      `json:"template_id,omitempty"`
	Status       Status      `json:"status,omitempty"`
	Photographer string      `json:"photographer,omitempty"`
	Photo        *CardPhoto  `json:"photo,omitempty"`
	RenderMeta   *RenderMeta `json:"render_meta,omitempty"`
}

// Card is the tagged union of card shapes. The layout dispatcher switches
// on the concrete type, never on field presence, so a record of one shape
// cannot fall through another shape's renderer. The interface is sealed.
type Card interface {
	Base() *CardBase
	sealedCard()
}

// StandardCard covers player, team-staff, media, official, tournament-staff
// and national-team cards.
type StandardCard struct {
	CardBase
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	TeamID       string `json:"team_id,omitempty"`
	TeamName     string `json:"team_name,omitempty"`
	Position     string `json:"position,omitempty"`
	JerseyNumber string `json:"jersey_number,omitempty"`
}

func (c *StandardCard) Base() *CardBase { return &c.CardBase }
func (c *StandardCard) sealedCard()     {}

// DisplayName joins the name fields the way the bottom bar shows them.
func (c *StandardCard) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// RareCard covers rare and super-rare cards. Title and caption are the rare
// layout's text; the name/position/jersey fields are read only by the
// super-rare strategy.
type RareCard struct {
	CardBase
	Title        string `json:"title"`
	Caption      string `json:"caption,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	TeamID       string `json:"team_id,omitempty"`
	TeamName     string `json:"team_name,omitempty"`
	Position     string `json:"position,omitempty"`
	JerseyNumber string `json:"jersey_number,omitempty"`
}

func (c *RareCard) Base() *CardBase { return &c.CardBase }
func (c *RareCard) sealedCard()     {}

// DecodeCard unmarshals a card payload into the variant selected by its
// card_type tag.
func DecodeCard(data []byte) (Card, error) {
	var probe struct {
		Type CardType `json:"card_type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding card: %w", err)
	}
	switch probe.Type {
	case TypeRare, TypeSuperRare:
		var c RareCard
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decoding rare card: %w", err)
		}
		return &c, nil
	case TypePlayer, TypeTeamStaff, TypeMedia, TypeOfficial, TypeTournamentStaff, TypeNationalTeam:
		var c StandardCard
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decoding standard card: %w", err)
		}
		return &c, nil
	case "":
		return nil, fmt.Errorf("card payload missing card_type")
	default:
		return nil, fmt.Errorf("unknown card_type %q", probe.Type)
	}
}
