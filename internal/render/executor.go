package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
)

// Target describes the output surface. OffsetX/Y translate canvas-space
// coordinates into surface space, which is how the trimmed preview reuses
// the exact same instruction list: same ops, origin shifted by the trim
// inset, surface sized to the trim box.
type Target struct {
	Width   int
	Height  int
	OffsetX float64
	OffsetY float64
}

// FullTarget is the full-bleed card surface.
func FullTarget() Target {
	return Target{Width: CanvasWidth, Height: CanvasHeight}
}

// TrimTarget is the post-cut preview surface.
func TrimTarget() Target {
	return Target{
		Width:   int(TrimWidth),
		Height:  int(TrimHeight),
		OffsetX: -TrimInset,
		OffsetY: -TrimInset,
	}
}

// Execute plays an instruction list onto a fresh software surface and
// returns the raster. The surface check happens before anything else so a
// bad target fails fast, ahead of any expensive work.
func Execute(ops []Op, fonts *FontPack, tgt Target) (image.Image, error) {
	if tgt.Width <= 0 || tgt.Height <= 0 {
		return nil, fmt.Errorf("render: invalid target %dx%d", tgt.Width, tgt.Height)
	}
	dc := gg.NewContext(tgt.Width, tgt.Height)
	if err := playOps(dc, ops, fonts, tgt); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func playOps(dc *gg.Context, ops []Op, fonts *FontPack, tgt Target) error {
	for _, op := range ops {
		if err := playOp(dc, op, fonts, tgt); err != nil {
			return err
		}
	}
	return nil
}

func playOp(dc *gg.Context, op Op, fonts *FontPack, tgt Target) error {
	switch o := op.(type) {
	case FillRectOp:
		dc.SetColor(o.Color)
		dc.DrawRectangle(o.Rect.X+tgt.OffsetX, o.Rect.Y+tgt.OffsetY, o.Rect.W, o.Rect.H)
		return dc.Fill()

	case RoundedRectOp:
		dc.SetColor(o.Color)
		dc.DrawRoundedRectangle(o.Rect.X+tgt.OffsetX, o.Rect.Y+tgt.OffsetY, o.Rect.W, o.Rect.H, o.Radius)
		return dc.Fill()

	case StrokeRoundedRectOp:
		dc.SetColor(o.Color)
		dc.SetLineWidth(o.Width)
		if o.Radius > 0 {
			dc.DrawRoundedRectangle(o.Rect.X+tgt.OffsetX, o.Rect.Y+tgt.OffsetY, o.Rect.W, o.Rect.H, o.Radius)
		} else {
			dc.DrawRectangle(o.Rect.X+tgt.OffsetX, o.Rect.Y+tgt.OffsetY, o.Rect.W, o.Rect.H)
		}
		return dc.Stroke()

	case FrameCutoutOp:
		dc.SetColor(o.Color)
		dc.SetFillRule(gg.FillRuleEvenOdd)
		dc.DrawRectangle(tgt.OffsetX, tgt.OffsetY, CanvasWidth, CanvasHeight)
		dc.NewSubPath()
		dc.DrawRoundedRectangle(o.Window.X+tgt.OffsetX, o.Window.Y+tgt.OffsetY, o.Window.W, o.Window.H, o.Radius)
		err := dc.Fill()
		dc.SetFillRule(gg.FillRuleNonZero)
		return err

	case GradientOp:
		x := o.Rect.X + tgt.OffsetX
		y := o.Rect.Y + tgt.OffsetY
		brush := gg.NewLinearGradientBrush(x, y, x, y+o.Rect.H).
			AddColorStop(0, gg.FromColor(o.From)).
			AddColorStop(1, gg.FromColor(o.To))
		dc.SetFillBrush(brush)
		dc.DrawRectangle(x, y, o.Rect.W, o.Rect.H)
		return dc.Fill()

	case PhotoOp:
		return drawPhoto(dc, o, tgt)

	case ImageOp:
		return drawFitted(dc, o, tgt)

	case TextOp:
		return drawText(dc, o, fonts, tgt)

	case CircleOp:
		dc.SetColor(o.Color)
		dc.DrawCircle(o.CX+tgt.OffsetX, o.CY+tgt.OffsetY, o.R)
		if o.Stroke {
			dc.SetLineWidth(o.Width)
			return dc.Stroke()
		}
		return dc.Fill()

	case StarOp:
		dc.SetColor(o.Color)
		starPath(dc, o.CX+tgt.OffsetX, o.CY+tgt.OffsetY, o.R)
		return dc.Fill()

	case RotatedOp:
		return drawRotatedLayer(dc, o, fonts, tgt)

	default:
		return fmt.Errorf("render: unknown draw instruction %T", op)
	}
}

// drawPhoto implements the crop engine's contract: the source
// sub-rectangle is scaled to the destination dimensions, then the scaled
// raster is rotated about the destination center and pasted there.
func drawPhoto(dc *gg.Context, o PhotoOp, tgt Target) error {
	sub := imaging.Crop(o.Img, o.Draw.Src)

	w := int(math.Round(o.Draw.Dst.W))
	h := int(math.Round(o.Draw.Dst.H))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	scaled := imaging.Resize(sub, w, h, imaging.Lanczos)

	// CropRect rotation is clockwise; imaging rotates counter-clockwise.
	rotated := scaled
	switch o.Draw.RotateDeg {
	case 90:
		rotated = imaging.Rotate270(scaled)
	case 180:
		rotated = imaging.Rotate180(scaled)
	case 270:
		rotated = imaging.Rotate90(scaled)
	}

	cx, cy := o.Draw.Dst.Center()
	px := cx + tgt.OffsetX - float64(rotated.Bounds().Dx())/2
	py := cy + tgt.OffsetY - float64(rotated.Bounds().Dy())/2
	dc.DrawImage(gg.ImageBufFromImage(rotated), px, py)
	return nil
}

// drawFitted scales an image to fit inside its slot, centered, optionally
// stamping a solid silhouette at the eight unit offsets first. The stamp
// is deliberately blocky rather than a true vector stroke; print proofs
// assume this exact look.
func drawFitted(dc *gg.Context, o ImageOp, tgt Target) error {
	fitted := imaging.Fit(o.Img, int(o.Dst.W), int(o.Dst.H), imaging.Lanczos)
	fw := fitted.Bounds().Dx()
	fh := fitted.Bounds().Dy()
	ox := o.Dst.X + tgt.OffsetX + (o.Dst.W-float64(fw))/2
	oy := o.Dst.Y + tgt.OffsetY + (o.Dst.H-float64(fh))/2

	if o.Outline != nil {
		sil := silhouette(fitted, *o.Outline)
		buf := gg.ImageBufFromImage(sil)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				dc.DrawImage(buf, ox+float64(dx), oy+float64(dy))
			}
		}
	}

	dc.DrawImage(gg.ImageBufFromImage(fitted), ox, oy)
	return nil
}

// silhouette maps every pixel with any coverage to the solid outline
// color, full alpha.
func silhouette(src *image.NRGBA, c color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if src.NRGBAAt(x, y).A > 0 {
				out.SetNRGBA(x, y, c)
			}
		}
	}
	return out
}

// drawText renders one line with anchored placement. Letter spacing draws
// glyph by glyph; the face's advance plus the spacing moves the pen.
func drawText(dc *gg.Context, o TextOp, fonts *FontPack, tgt Target) error {
	if o.Text == "" {
		return nil
	}
	face := fonts.Face(o.Style)
	dc.SetFont(face)
	dc.SetColor(o.Color)

	x := o.X + tgt.OffsetX
	y := o.Y + tgt.OffsetY

	if o.LetterSpacing == 0 {
		dc.DrawStringAnchored(o.Text, x, y, o.AX, o.AY)
		return nil
	}

	w, h := fonts.Measure(o.Style, o.Text, o.LetterSpacing)
	penX := x - w*o.AX
	baseY := y + h*o.AY
	for _, r := range o.Text {
		s := string(r)
		dc.DrawString(s, penX, baseY)
		penX += face.Advance(s) + o.LetterSpacing
	}
	return nil
}

func starPath(dc *gg.Context, cx, cy, r float64) {
	const points = 5
	inner := r * 0.45
	for i := 0; i < points*2; i++ {
		radius := r
		if i%2 == 1 {
			radius = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/points
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

// drawRotatedLayer renders the child instructions into a transparent
// surface-sized layer, rotates the raster about the anchor and composites
// it. gg blits and text ignore the rotational part of the matrix, so
// rotation happens on pixels, matching how the angled name boxes clip
// against the frame painted after them.
func drawRotatedLayer(dc *gg.Context, o RotatedOp, fonts *FontPack, tgt Target) error {
	if len(o.Ops) == 0 {
		return nil
	}
	layer := gg.NewContext(tgt.Width, tgt.Height)
	if err := playOps(layer, o.Ops, fonts, tgt); err != nil {
		return err
	}

	// imaging.Rotate is counter-clockwise for positive angles; layout
	// angles are clockwise.
	rotated := imaging.Rotate(layer.Image(), -o.AngleDeg, color.NRGBA{})

	// The rotation pivots the layer about its center and grows the
	// bounds. Reposition so the anchor point stays fixed.
	w := float64(tgt.Width)
	h := float64(tgt.Height)
	rw := float64(rotated.Bounds().Dx())
	rh := float64(rotated.Bounds().Dy())

	ax := o.AnchorX + tgt.OffsetX
	ay := o.AnchorY + tgt.OffsetY
	dxr, dyr := rotatePointCW(ax-w/2, ay-h/2, o.AngleDeg)

	px := ax - (rw/2 + dxr)
	py := ay - (rh/2 + dyr)

	dc.DrawImage(gg.ImageBufFromImage(rotated), px, py)
	return nil
}

// rotatePointCW rotates a vector by deg clockwise in screen coordinates
// (y down).
func rotatePointCW(x, y, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}
