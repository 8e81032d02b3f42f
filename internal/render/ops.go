package render

import (
	"image"
	"image/color"
)

// The pipeline emits an ordered list of backend-agnostic draw instructions
// instead of driving a drawing surface directly. The list is pure data
// computed from (card, config, decoded assets), which keeps the draw-order
// logic independently testable; the executor plays it against the actual
// 2D surface.

// Op is one draw instruction.
type Op interface {
	isOp()
}

// FontStyle selects a face from the font pack.
type FontStyle struct {
	Bold bool
	Size float64
}

// FillRectOp fills an axis-aligned rectangle.
type FillRectOp struct {
	Rect  Rect
	Color color.NRGBA
}

// RoundedRectOp fills a rounded rectangle.
type RoundedRectOp struct {
	Rect   Rect
	Radius float64
	Color  color.NRGBA
}

// StrokeRoundedRectOp strokes a rounded rectangle outline.
type StrokeRoundedRectOp struct {
	Rect   Rect
	Radius float64
	Width  float64
	Color  color.NRGBA
}

// FrameCutoutOp paints the full canvas in Color with a rounded window cut
// out using the even-odd rule, producing the solid border that visually
// truncates anything drawn before it.
type FrameCutoutOp struct {
	Window Rect
	Radius float64
	Color  color.NRGBA
}

// GradientOp fills Rect with a vertical linear gradient.
type GradientOp struct {
	Rect Rect
	From color.NRGBA
	To   color.NRGBA
}

// PhotoOp blits a source sub-rectangle scaled to the destination's
// dimensions, rotated clockwise about the destination center.
type PhotoOp struct {
	Img  image.Image
	Draw PhotoDraw
}

// ImageOp draws an image scaled to fit inside Dst, centered. When Outline
// is set, the image's silhouette is stamped in Outline color at the eight
// unit offsets first, simulating a 1-unit stroke.
type ImageOp struct {
	Img     image.Image
	Dst     Rect
	Outline *color.NRGBA
}

// TextOp draws a single line of text. X, Y with AX, AY follow anchored
// semantics: the anchor fraction of the measured extents sits at (X, Y).
type TextOp struct {
	Text          string
	X, Y          float64
	AX, AY        float64
	Style         FontStyle
	LetterSpacing float64
	Color         color.NRGBA
}

// CircleOp draws a circle, filled or stroked.
type CircleOp struct {
	CX, CY, R float64
	Color     color.NRGBA
	Stroke    bool
	Width     float64
}

// StarOp fills a five-pointed star, point up.
type StarOp struct {
	CX, CY, R float64
	Color     color.NRGBA
}

// RotatedOp renders its child instructions into a transparent layer, then
// composites that layer rotated AngleDeg clockwise about the anchor point.
type RotatedOp struct {
	AngleDeg float64
	AnchorX  float64
	AnchorY  float64
	Ops      []Op
}

func (FillRectOp) isOp()          {}
func (RoundedRectOp) isOp()       {}
func (StrokeRoundedRectOp) isOp() {}
func (FrameCutoutOp) isOp()       {}
func (GradientOp) isOp()          {}
func (PhotoOp) isOp()             {}
func (ImageOp) isOp()             {}
func (TextOp) isOp()              {}
func (CircleOp) isOp()            {}
func (StarOp) isOp()              {}
func (RotatedOp) isOp()           {}

// parseHexColor turns "#rgb", "#rrggbb" or "#rrggbbaa" into an NRGBA,
// falling back to opaque black on malformed input. Theme colors are
// operator-supplied strings, so a bad value degrades instead of failing
// the render.
func parseHexColor(s string) color.NRGBA {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	hex := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	pair := func(i int) (uint8, bool) {
		hi, ok1 := hex(s[i])
		lo, ok2 := hex(s[i+1])
		return hi<<4 | lo, ok1 && ok2
	}
	black := color.NRGBA{A: 0xff}
	switch len(s) {
	case 3:
		r, ok1 := hex(s[0])
		g, ok2 := hex(s[1])
		b, ok3 := hex(s[2])
		if !ok1 || !ok2 || !ok3 {
			return black
		}
		return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}
	case 6:
		r, ok1 := pair(0)
		g, ok2 := pair(2)
		b, ok3 := pair(4)
		if !ok1 || !ok2 || !ok3 {
			return black
		}
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}
	case 8:
		r, ok1 := pair(0)
		g, ok2 := pair(2)
		b, ok3 := pair(4)
		a, ok4 := pair(6)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return black
		}
		return color.NRGBA{R: r, G: g, B: b, A: a}
	default:
		return black
	}
}
