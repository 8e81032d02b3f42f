package render

// Canvas dimensions are a compatibility contract with downstream print and
// export tooling: 2.75in x 3.75in at 300dpi, full bleed.
const (
	CanvasWidth  = 825
	CanvasHeight = 1125
)

// Trim and safe insets, in canvas units. Trim is the 1/8in cut line, safe
// is double that.
const (
	TrimInset = 37.5
	SafeInset = 75.0
)

// Trimmed preview output dimensions.
const (
	TrimWidth  = CanvasWidth - 2*TrimInset  // 750
	TrimHeight = CanvasHeight - 2*TrimInset // 1050
)

// Rect is an axis-aligned rectangle in canvas units.
type Rect struct {
	X, Y, W, H float64
}

// Right and Bottom are the far edges.
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rectangle's midpoint.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CanvasRect is the full-bleed drawing area.
func CanvasRect() Rect {
	return Rect{X: 0, Y: 0, W: CanvasWidth, H: CanvasHeight}
}

// TrimRect is where the printed card is physically cut.
func TrimRect() Rect {
	return insetRect(TrimInset)
}

// SafeRect is where content is guaranteed to survive the cut.
func SafeRect() Rect {
	return insetRect(SafeInset)
}

func insetRect(inset float64) Rect {
	return Rect{
		X: inset,
		Y: inset,
		W: CanvasWidth - 2*inset,
		H: CanvasHeight - 2*inset,
	}
}

// GuideBox holds left/top/right/bottom guide positions as percentages, for
// overlay UIs that draw trim/safe guides over a scaled card preview.
type GuideBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// GuidePercentages converts an edge inset (canvas units) into percentage
// offsets. With relativeToTrim set, percentages are measured against the
// trim box instead of the full canvas, for previews that already crop to
// the trim line.
func GuidePercentages(inset float64, relativeToTrim bool) GuideBox {
	if relativeToTrim {
		i := inset - TrimInset
		return GuideBox{
			Left:   i / TrimWidth * 100,
			Top:    i / TrimHeight * 100,
			Right:  i / TrimWidth * 100,
			Bottom: i / TrimHeight * 100,
		}
	}
	return GuideBox{
		Left:   inset / CanvasWidth * 100,
		Top:    inset / CanvasHeight * 100,
		Right:  inset / CanvasWidth * 100,
		Bottom: inset / CanvasHeight * 100,
	}
}
