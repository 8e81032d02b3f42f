package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/youruser/cardstudio/internal/cards"
)

// Assets holds the decoded images a render needs. Photo is required;
// everything else is optional and may be nil after a tolerated fetch or
// decode failure.
type Assets struct {
	Photo       image.Image
	Logo        image.Image
	Overlay     image.Image
	CameraGlyph image.Image
}

// palette is the snapshot theme parsed to concrete colors once per render.
type palette struct {
	gradientStart color.NRGBA
	gradientEnd   color.NRGBA
	border        color.NRGBA
	accent        color.NRGBA
	label         color.NRGBA
	name          color.NRGBA
	meta          color.NRGBA
	watermark     color.NRGBA
}

func themePalette(t cards.TemplateTheme) palette {
	return palette{
		gradientStart: parseHexColor(t.GradientStart),
		gradientEnd:   parseHexColor(t.GradientEnd),
		border:        parseHexColor(t.Border),
		accent:        parseHexColor(t.Accent),
		label:         parseHexColor(t.Label),
		name:          parseHexColor(t.Name),
		meta:          parseHexColor(t.Meta),
		watermark:     parseHexColor(t.Watermark),
	}
}

// BuildOps assembles the full instruction list for one card render in the
// fixed compositing order: photo, pre-frame name boxes (standard cards),
// frame cutout, logo, event badge, family-specific content, bottom bar,
// then the optional layers the template flags enable. The result depends
// only on the arguments.
func BuildOps(card cards.Card, config *cards.TournamentConfig, snap cards.TemplateSnapshot, assets Assets, fonts *FontPack) ([]Op, error) {
	if assets.Photo == nil {
		return nil, errors.New("render: source photograph is required")
	}

	pal := themePalette(snap.Theme)
	base := card.Base()

	crop := cards.FullCrop()
	if base.Photo != nil {
		crop = base.Photo.Crop
	}
	bounds := assets.Photo.Bounds()

	var ops []Op

	// 1. Source photograph, full bleed.
	ops = append(ops, PhotoOp{
		Img:  assets.Photo,
		Draw: MapCropToDest(crop, bounds.Dx(), bounds.Dy(), CanvasRect()),
	})

	if snap.Flags.GradientOverlay {
		ops = append(ops, GradientOp{Rect: CanvasRect(), From: pal.gradientStart, To: pal.gradientEnd})
	}
	if assets.Overlay != nil && snap.OverlayPlacement == cards.OverlayBelowText {
		ops = append(ops, ImageOp{Img: assets.Overlay, Dst: CanvasRect()})
	}

	// 2. Standard cards draw their name boxes before the frame so the
	// frame overlay truncates them at the window edge.
	if sc, ok := card.(*cards.StandardCard); ok && sc.Type != cards.TypeNationalTeam {
		ops = append(ops, standardNameBoxes(sc, pal, fonts))
	}

	// 3. Frame overlay with the rounded window cut out.
	ops = append(ops, FrameCutoutOp{
		Window: Layout.Frame.Window,
		Radius: Layout.Frame.Radius,
		Color:  pal.border,
	})

	// 4. Team/organization logo with the synthesized outline. Absence is
	// tolerated upstream; nil simply draws nothing.
	if assets.Logo != nil {
		outline := pal.accent
		ops = append(ops, ImageOp{Img: assets.Logo, Dst: Layout.LogoSlot, Outline: &outline})
	}

	// 5. Event badge.
	if config != nil && config.Branding.EventIndicator != "" {
		ops = append(ops, badgeOps(config.Branding.EventIndicator, pal, fonts)...)
	}

	// 6. Card-type-specific content.
	switch c := card.(type) {
	case *cards.StandardCard:
		if c.Type == cards.TypeNationalTeam {
			ops = append(ops, nationalNameBox(c, pal, fonts))
		} else {
			ops = append(ops, positionBlockOps(c.Position, c.JerseyNumber, jerseyEnabled(config, c.Type), pal)...)
		}
	case *cards.RareCard:
		if c.Type == cards.TypeSuperRare {
			ops = append(ops, superRareNameOps(c, pal)...)
			ops = append(ops, positionBlockOps(c.Position, c.JerseyNumber, jerseyEnabled(config, c.Type), pal)...)
		} else {
			ops = append(ops, rareTextOps(c, pal, fonts))
		}
	}

	if snap.Flags.AccentStripe {
		ops = append(ops, FillRectOp{Rect: Layout.AccentStripe, Color: pal.accent})
	}

	// 7. Bottom bar.
	ops = append(ops, bottomBarOps(card, config, assets, pal)...)

	if snap.Flags.Watermark {
		ops = append(ops, watermarkOps(config, pal))
	}
	if assets.Overlay != nil && snap.OverlayPlacement == cards.OverlayAboveText {
		ops = append(ops, ImageOp{Img: assets.Overlay, Dst: CanvasRect()})
	}

	return ops, nil
}

func jerseyEnabled(config *cards.TournamentConfig, t cards.CardType) bool {
	if config == nil {
		return true
	}
	return config.CardTypeSpecFor(t).HasJerseyNumber
}

// labelBox emits one filled, bordered label bar sized to its text.
func labelBox(x, y float64, box BoxSpec, s string, pal palette, fonts *FontPack) []Op {
	style := FontStyle{Bold: box.Bold, Size: box.FontSize}
	textW, _ := fonts.Measure(style, s, box.LetterSpacing)
	w := textW + 2*box.PadX
	r := Rect{X: x, Y: y, W: w, H: box.Height}
	return []Op{
		FillRectOp{Rect: r, Color: pal.label},
		StrokeRoundedRectOp{Rect: r, Radius: 0, Width: box.BorderWidth, Color: pal.accent},
		TextOp{
			Text:          s,
			X:             x + box.PadX,
			Y:             y + box.Height/2,
			AX:            0,
			AY:            0.35,
			Style:         style,
			LetterSpacing: box.LetterSpacing,
			Color:         pal.name,
		},
	}
}

// standardNameBoxes builds the two overlapping angled boxes. The first
// name is painted first so the last-name box sits on top of it; each box
// is sized to its own measured text.
func standardNameBoxes(c *cards.StandardCard, pal palette, fonts *FontPack) Op {
	spec := Layout.NameBox
	var inner []Op
	if c.FirstName != "" {
		inner = append(inner, labelBox(spec.AnchorX, spec.AnchorY+spec.FirstOffsetY, spec.First, c.FirstName, pal, fonts)...)
	}
	if c.LastName != "" {
		inner = append(inner, labelBox(spec.AnchorX, spec.AnchorY+spec.LastOffsetY, spec.Last, c.LastName, pal, fonts)...)
	}
	return RotatedOp{
		AngleDeg: spec.AngleDeg,
		AnchorX:  spec.AnchorX,
		AnchorY:  spec.AnchorY,
		Ops:      inner,
	}
}

// rareTextOps builds the centered angled title and caption boxes.
func rareTextOps(c *cards.RareCard, pal palette, fonts *FontPack) Op {
	spec := Layout.RareText
	var inner []Op
	if c.Title != "" {
		style := FontStyle{Bold: spec.Title.Bold, Size: spec.Title.FontSize}
		textW, _ := fonts.Measure(style, c.Title, spec.Title.LetterSpacing)
		w := textW + 2*spec.Title.PadX
		inner = append(inner, labelBox(spec.AnchorX-w/2, spec.AnchorY+spec.TitleOffsetY, spec.Title, c.Title, pal, fonts)...)
	}
	if c.Caption != "" {
		style := FontStyle{Bold: spec.Caption.Bold, Size: spec.Caption.FontSize}
		textW, _ := fonts.Measure(style, c.Caption, spec.Caption.LetterSpacing)
		w := textW + 2*spec.Caption.PadX
		inner = append(inner, labelBox(spec.AnchorX-w/2, spec.AnchorY+spec.CaptionOffsetY, spec.Caption, c.Caption, pal, fonts)...)
	}
	return RotatedOp{
		AngleDeg: spec.AngleDeg,
		AnchorX:  spec.AnchorX,
		AnchorY:  spec.AnchorY,
		Ops:      inner,
	}
}

// superRareNameOps draws the centered two-line name block: first name
// smaller above, last name larger below, no rotation.
func superRareNameOps(c *cards.RareCard, pal palette) []Op {
	spec := Layout.SuperRare
	var ops []Op
	if c.FirstName != "" {
		ops = append(ops, TextOp{
			Text:  c.FirstName,
			X:     spec.CenterX,
			Y:     spec.FirstBaseline,
			AX:    0.5,
			Style: FontStyle{Size: spec.FirstFontSize},
			Color: pal.name,
		})
	}
	if c.LastName != "" {
		ops = append(ops, TextOp{
			Text:  c.LastName,
			X:     spec.CenterX,
			Y:     spec.LastBaseline,
			AX:    0.5,
			Style: FontStyle{Bold: true, Size: spec.LastFontSize},
			Color: pal.name,
		})
	}
	return ops
}

// nationalNameBox is the single angled box at the top of the card.
func nationalNameBox(c *cards.StandardCard, pal palette, fonts *FontPack) Op {
	spec := Layout.NationalName
	name := c.DisplayName()
	var inner []Op
	if name != "" {
		inner = labelBox(spec.AnchorX, spec.AnchorY+spec.OffsetY, spec.Box, name, pal, fonts)
	}
	return RotatedOp{
		AngleDeg: spec.AngleDeg,
		AnchorX:  spec.AnchorX,
		AnchorY:  spec.AnchorY,
		Ops:      inner,
	}
}

func positionBlockOps(position, jersey string, jerseyOK bool, pal palette) []Op {
	spec := Layout.Position
	var ops []Op
	if position != "" {
		ops = append(ops, TextOp{
			Text:          position,
			X:             spec.X,
			Y:             spec.PositionY,
			Style:         FontStyle{Size: spec.PositionFontSize},
			LetterSpacing: 3,
			Color:         pal.name,
		})
	}
	if jerseyOK && jersey != "" {
		ops = append(ops, TextOp{
			Text:  "#" + jersey,
			X:     spec.X,
			Y:     spec.NumberY,
			Style: FontStyle{Bold: true, Size: spec.NumberFontSize},
			Color: pal.accent,
		})
	}
	return ops
}

func badgeOps(label string, pal palette, fonts *FontPack) []Op {
	spec := Layout.EventBadge
	style := FontStyle{Bold: true, Size: spec.FontSize}
	textW, _ := fonts.Measure(style, label, 0)
	w := textW + 2*spec.PadX
	return []Op{
		RoundedRectOp{
			Rect:   Rect{X: spec.X, Y: spec.Y, W: w, H: spec.H},
			Radius: spec.Radius,
			Color:  pal.accent,
		},
		TextOp{
			Text:  label,
			X:     spec.X + w/2,
			Y:     spec.Y + spec.H/2,
			AX:    0.5,
			AY:    0.35,
			Style: style,
			Color: pal.border,
		},
	}
}

// rarityTier maps a card's rarity (defaulting to common) to glyph ops.
func rarityGlyph(tier cards.Rarity, pal palette) []Op {
	bar := Layout.BottomBar
	switch tier {
	case cards.RaritySuperRare:
		return []Op{
			StarOp{CX: bar.GlyphCX - bar.GlyphR - 3, CY: bar.GlyphCY, R: bar.GlyphR, Color: pal.accent},
			StarOp{CX: bar.GlyphCX + bar.GlyphR + 3, CY: bar.GlyphCY, R: bar.GlyphR, Color: pal.accent},
		}
	case cards.RarityRare:
		return []Op{StarOp{CX: bar.GlyphCX, CY: bar.GlyphCY, R: bar.GlyphR, Color: pal.accent}}
	case cards.RarityUncommon:
		return []Op{CircleOp{CX: bar.GlyphCX, CY: bar.GlyphCY, R: bar.GlyphR, Color: pal.accent}}
	default:
		return []Op{CircleOp{CX: bar.GlyphCX, CY: bar.GlyphCY, R: bar.GlyphR, Color: pal.accent, Stroke: true, Width: 2.5}}
	}
}

// bottomBarOps draws the credit strip: camera glyph, photographer,
// rarity glyph and the right-aligned team slot, whose content depends on
// the card family.
func bottomBarOps(card cards.Card, config *cards.TournamentConfig, assets Assets, pal palette) []Op {
	bar := Layout.BottomBar
	base := card.Base()

	ops := []Op{
		FillRectOp{
			Rect:  Rect{X: Layout.Frame.Window.X, Y: bar.Y, W: Layout.Frame.Window.W, H: bar.H},
			Color: pal.label,
		},
	}

	if assets.CameraGlyph != nil {
		ops = append(ops, ImageOp{
			Img: assets.CameraGlyph,
			Dst: Rect{X: bar.CameraCX - bar.CameraR, Y: bar.CameraCY - bar.CameraR, W: 2 * bar.CameraR, H: 2 * bar.CameraR},
		})
	} else {
		// Neutral placeholder when the icon asset is unavailable.
		ops = append(ops, CircleOp{CX: bar.CameraCX, CY: bar.CameraCY, R: bar.CameraR, Color: pal.meta, Stroke: true, Width: 2})
	}

	if base.Photographer != "" {
		ops = append(ops, TextOp{
			Text:  base.Photographer,
			X:     bar.CreditX,
			Y:     bar.TextY,
			AY:    0.35,
			Style: FontStyle{Size: bar.FontSize},
			Color: pal.meta,
		})
	}

	rightText := ""
	tier := base.Rarity

	switch c := card.(type) {
	case *cards.StandardCard:
		rightText = teamName(config, c.TeamID, c.TeamName)
		if c.Type == cards.TypeNationalTeam {
			tier = cards.RarityUncommon
			if c.JerseyNumber != "" && rightText != "" {
				rightText = rightText + " #" + c.JerseyNumber
			}
		}
	case *cards.RareCard:
		if c.Type == cards.TypeSuperRare {
			rightText = teamName(config, c.TeamID, c.TeamName)
			if tier != cards.RaritySuperRare {
				tier = cards.RarityRare
			}
		} else {
			rightText = "RARE CARD"
			tier = cards.RarityRare
		}
	}

	ops = append(ops, rarityGlyph(tier, pal)...)

	if rightText != "" {
		ops = append(ops, TextOp{
			Text:          rightText,
			X:             bar.TeamNameStop,
			Y:             bar.TextY,
			AX:            1,
			AY:            0.35,
			Style:         FontStyle{Bold: true, Size: bar.FontSize},
			LetterSpacing: 1,
			Color:         pal.meta,
		})
	}

	return ops
}

func teamName(config *cards.TournamentConfig, teamID, stored string) string {
	if stored != "" {
		return stored
	}
	if config == nil {
		return ""
	}
	if t := config.TeamByID(teamID); t != nil {
		return t.Name
	}
	return ""
}

func watermarkOps(config *cards.TournamentConfig, pal palette) Op {
	label := ""
	if config != nil {
		label = config.Label
		if label == "" {
			label = config.ID
		}
	}
	cx, cy := CanvasRect().Center()
	return RotatedOp{
		AngleDeg: Layout.WatermarkDeg,
		AnchorX:  cx,
		AnchorY:  cy,
		Ops: []Op{TextOp{
			Text:          label,
			X:             cx,
			Y:             cy,
			AX:            0.5,
			AY:            0.35,
			Style:         FontStyle{Bold: true, Size: Layout.WatermarkPts},
			LetterSpacing: 6,
			Color:         pal.watermark,
		}},
	}
}
