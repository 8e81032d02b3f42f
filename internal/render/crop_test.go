package render

import (
	"image"
	"testing"

	"github.com/youruser/cardstudio/internal/cards"
)

func TestMapCropToDestFullFrame(t *testing.T) {
	pd := MapCropToDest(cards.FullCrop(), 1600, 900, CanvasRect())
	if pd.Src != image.Rect(0, 0, 1600, 900) {
		t.Errorf("full crop source: got %v", pd.Src)
	}
	if pd.Dst != CanvasRect() {
		t.Errorf("destination: got %+v", pd.Dst)
	}
	if pd.RotateDeg != 0 {
		t.Errorf("rotation: got %d", pd.RotateDeg)
	}
}

func TestMapCropToDestSubRegion(t *testing.T) {
	crop := cards.CropRect{X: 0.25, Y: 0.5, W: 0.5, H: 0.25, RotateDeg: 90}
	pd := MapCropToDest(crop, 1000, 800, CanvasRect())
	if pd.Src != image.Rect(250, 400, 750, 600) {
		t.Errorf("sub-region source: got %v", pd.Src)
	}
	if pd.RotateDeg != 90 {
		t.Errorf("rotation: got %d", pd.RotateDeg)
	}
}

func TestMapCropToDestMinimumClampStaysValid(t *testing.T) {
	// The upstream clamp floor: the mapped source must keep at least one
	// pixel in each dimension.
	crop := cards.CropRect{X: 0.5, Y: 0.5, W: 0.001, H: 0.001}
	pd := MapCropToDest(crop, 100, 100, CanvasRect())
	if pd.Src.Dx() < 1 || pd.Src.Dy() < 1 {
		t.Errorf("degenerate crop collapsed to empty source: %v", pd.Src)
	}
	if pd.Src.Max.X > 100 || pd.Src.Max.Y > 100 {
		t.Errorf("source exceeds image bounds: %v", pd.Src)
	}
}

func TestNormalizeRotation(t *testing.T) {
	cases := map[int]int{
		0:    0,
		90:   90,
		180:  180,
		270:  270,
		360:  0,
		-90:  270,
		450:  90,
		45:   0, // non-axis-aligned input degrades to no rotation
	}
	for in, want := range cases {
		if got := normalizeRotation(in); got != want {
			t.Errorf("normalizeRotation(%d) = %d, want %d", in, got, want)
		}
	}
}
