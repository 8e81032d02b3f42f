package render

// Layout is the registry of design constants consumed by the pipeline.
// These are the single source of truth for draw coordinates; nothing here
// has behavior and nothing recomputes or mutates it at render time.
//
// All positions are canvas units, origin top-left. Angles are degrees,
// clockwise positive (screen coordinates).

// BoxSpec describes one angled label box: a filled bar sized to its
// measured text plus padding.
type BoxSpec struct {
	Height        float64
	PadX          float64
	BorderWidth   float64
	FontSize      float64
	LetterSpacing float64
	Bold          bool
}

// NameBoxSpec is the standard two-box name treatment. Both boxes share one
// rotation anchor; the first-name box sits above and is painted first so
// the last-name box overlaps it.
type NameBoxSpec struct {
	AngleDeg float64
	AnchorX  float64
	AnchorY  float64
	// Vertical offsets of each box's top edge from the anchor.
	FirstOffsetY float64
	LastOffsetY  float64
	First        BoxSpec
	Last         BoxSpec
}

// BadgeSpec is the small rounded event-indicator badge.
type BadgeSpec struct {
	X, Y     float64
	H        float64
	PadX     float64
	Radius   float64
	FontSize float64
}

// PositionBlockSpec is the position + jersey number block.
type PositionBlockSpec struct {
	X                float64
	PositionY        float64
	NumberY          float64
	PositionFontSize float64
	NumberFontSize   float64
}

// BottomBarSpec lays out the credit strip along the card's lower edge.
type BottomBarSpec struct {
	Y            float64
	H            float64
	CameraCX     float64
	CameraCY     float64
	CameraR      float64
	CreditX      float64
	TextY        float64
	FontSize     float64
	GlyphCX      float64
	GlyphCY      float64
	GlyphR       float64
	TeamNameStop float64 // right-aligned team name ends here
}

// RareTextSpec is the rare card's title/caption treatment.
type RareTextSpec struct {
	AngleDeg       float64
	AnchorX        float64
	AnchorY        float64
	TitleOffsetY   float64
	CaptionOffsetY float64
	Title          BoxSpec
	Caption        BoxSpec
}

// CenteredNameSpec is the super-rare two-line centered name block.
type CenteredNameSpec struct {
	CenterX       float64
	FirstBaseline float64
	LastBaseline  float64
	FirstFontSize float64
	LastFontSize  float64
}

// TopNameSpec is the national-team single angled name box.
type TopNameSpec struct {
	AngleDeg float64
	AnchorX  float64
	AnchorY  float64
	OffsetY  float64
	Box      BoxSpec
}

// FrameSpec is the inner photo window the frame overlay cuts out.
type FrameSpec struct {
	Window Rect
	Radius float64
}

// LayoutTable groups every region's constants.
type LayoutTable struct {
	Frame        FrameSpec
	NameBox      NameBoxSpec
	EventBadge   BadgeSpec
	Position     PositionBlockSpec
	LogoSlot     Rect
	BottomBar    BottomBarSpec
	RareText     RareTextSpec
	SuperRare    CenteredNameSpec
	NationalName TopNameSpec
	AccentStripe Rect
	WatermarkDeg float64
	WatermarkPts float64
}

// Layout holds the design constants for the current card stock.
var Layout = LayoutTable{
	Frame: FrameSpec{
		Window: Rect{X: 57, Y: 57, W: CanvasWidth - 114, H: CanvasHeight - 114},
		Radius: 36,
	},
	NameBox: NameBoxSpec{
		AngleDeg:     -5,
		AnchorX:      96,
		AnchorY:      812,
		FirstOffsetY: 0,
		LastOffsetY:  72,
		First: BoxSpec{
			Height:        84,
			PadX:          26,
			BorderWidth:   3,
			FontSize:      50,
			LetterSpacing: 2,
		},
		Last: BoxSpec{
			Height:        102,
			PadX:          30,
			BorderWidth:   3,
			FontSize:      66,
			LetterSpacing: 1,
			Bold:          true,
		},
	},
	EventBadge: BadgeSpec{
		X:        96,
		Y:        96,
		H:        54,
		PadX:     22,
		Radius:   27,
		FontSize: 28,
	},
	Position: PositionBlockSpec{
		X:                96,
		PositionY:        662,
		NumberY:          742,
		PositionFontSize: 40,
		NumberFontSize:   88,
	},
	LogoSlot: Rect{X: 629, Y: 88, W: 108, H: 108},
	BottomBar: BottomBarSpec{
		Y:            CanvasHeight - 108,
		H:            58,
		CameraCX:     112,
		CameraCY:     CanvasHeight - 79,
		CameraR:      16,
		CreditX:      142,
		TextY:        CanvasHeight - 79,
		FontSize:     26,
		GlyphCX:      452,
		GlyphCY:      CanvasHeight - 79,
		GlyphR:       14,
		TeamNameStop: CanvasWidth - 96,
	},
	RareText: RareTextSpec{
		AngleDeg:       -4,
		AnchorX:        CanvasWidth / 2,
		AnchorY:        768,
		TitleOffsetY:   0,
		CaptionOffsetY: 116,
		Title: BoxSpec{
			Height:        108,
			PadX:          34,
			BorderWidth:   3,
			FontSize:      70,
			LetterSpacing: 1,
			Bold:          true,
		},
		Caption: BoxSpec{
			Height:        62,
			PadX:          24,
			BorderWidth:   2,
			FontSize:      34,
			LetterSpacing: 2,
		},
	},
	SuperRare: CenteredNameSpec{
		CenterX:       CanvasWidth / 2,
		FirstBaseline: 760,
		LastBaseline:  850,
		FirstFontSize: 46,
		LastFontSize:  82,
	},
	NationalName: TopNameSpec{
		AngleDeg: -5,
		AnchorX:  96,
		AnchorY:  128,
		OffsetY:  0,
		Box: BoxSpec{
			Height:        96,
			PadX:          30,
			BorderWidth:   3,
			FontSize:      60,
			LetterSpacing: 1,
			Bold:          true,
		},
	},
	AccentStripe: Rect{X: 57, Y: CanvasHeight - 122, W: CanvasWidth - 114, H: 6},
	WatermarkDeg: -30,
	WatermarkPts: 64,
}
