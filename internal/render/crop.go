package render

import (
	"image"
	"math"

	"github.com/youruser/cardstudio/internal/cards"
)

// PhotoDraw is the instruction produced by mapping a crop onto a
// destination rectangle: blit Src (source-image pixels) scaled to Dst's
// dimensions, then rotated RotateDeg clockwise about Dst's center. The
// rotation pivots on the destination center, not the source center; when
// source and destination aspect ratios differ the two are not equivalent,
// and downstream proofs depend on this exact behavior.
type PhotoDraw struct {
	Src       image.Rectangle
	Dst       Rect
	RotateDeg int
}

// MapCropToDest computes the source sub-rectangle selected by a normalized
// crop and pairs it with the destination placement. Degenerate crops are
// not rejected here; upstream clamps w/h to a minimum positive fraction.
func MapCropToDest(crop cards.CropRect, srcW, srcH int, dst Rect) PhotoDraw {
	x0 := crop.X * float64(srcW)
	y0 := crop.Y * float64(srcH)
	x1 := (crop.X + crop.W) * float64(srcW)
	y1 := (crop.Y + crop.H) * float64(srcH)

	src := image.Rect(
		int(math.Floor(x0)),
		int(math.Floor(y0)),
		int(math.Ceil(x1)),
		int(math.Ceil(y1)),
	)
	// A crop at the minimum clamp can floor/ceil to an empty span; keep at
	// least one source pixel so the blit stays valid.
	if src.Dx() < 1 {
		src.Max.X = src.Min.X + 1
	}
	if src.Dy() < 1 {
		src.Max.Y = src.Min.Y + 1
	}
	src = src.Intersect(image.Rect(0, 0, srcW, srcH))

	return PhotoDraw{
		Src:       src,
		Dst:       dst,
		RotateDeg: normalizeRotation(crop.RotateDeg),
	}
}

func normalizeRotation(deg int) int {
	d := deg % 360
	if d < 0 {
		d += 360
	}
	// Only the four axis-aligned steps are meaningful.
	switch d {
	case 90, 180, 270:
		return d
	default:
		return 0
	}
}
