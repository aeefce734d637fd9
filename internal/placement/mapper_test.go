package placement

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestPixelInchRoundTrip(t *testing.T) {
	values := []float64{0, 1, -3.5, 0.001, 127.25, -600}
	for _, v := range values {
		if got := PixelsToInches(InchesToPixels(v)); !almostEqual(got, v) {
			t.Errorf("PixelsToInches(InchesToPixels(%v)) = %v, want %v", v, got, v)
		}
		if got := InchesToPixels(PixelsToInches(v)); !almostEqual(got, v) {
			t.Errorf("InchesToPixels(PixelsToInches(%v)) = %v, want %v", v, got, v)
		}
	}
}

func TestCenterInches(t *testing.T) {
	s := DefaultSurface()

	tests := []struct {
		name   string
		geom   OverlayGeometry
		wantX  float64
		wantY  float64
	}{
		{
			// Overlay centered on the surface sits at the product center.
			name:  "surface center",
			geom:  OverlayGeometry{X: 200, Y: 100, Width: 200, Height: 200},
			wantX: 0,
			wantY: 0,
		},
		{
			name:  "offset right and down",
			geom:  OverlayGeometry{X: 300, Y: 150, Width: 100, Height: 100},
			wantX: 2.5, // center px (350) - 300 = 50 px = 2.5"
			wantY: 0,
		},
		{
			name:  "top-left quadrant",
			geom:  OverlayGeometry{X: 0, Y: 0, Width: 100, Height: 100},
			wantX: -12.5,
			wantY: -7.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CenterInches(tt.geom, s)
			if !almostEqual(c.X, tt.wantX) || !almostEqual(c.Y, tt.wantY) {
				t.Errorf("CenterInches() = (%v, %v), want (%v, %v)", c.X, c.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSizeInches(t *testing.T) {
	size := SizeInches(OverlayGeometry{Width: 160, Height: 200})
	if !almostEqual(size.Width, 8) || !almostEqual(size.Height, 10) {
		t.Errorf("SizeInches() = %+v, want 8x10", size)
	}
}

func TestRectInches(t *testing.T) {
	s := DefaultSurface()
	// 8x10 inch design centered on the product.
	g := OverlayGeometry{X: 220, Y: 100, Width: 160, Height: 200}

	r := RectInches(g, s)
	if !almostEqual(r.X, -4) || !almostEqual(r.Y, -5) {
		t.Errorf("RectInches() origin = (%v, %v), want (-4, -5)", r.X, r.Y)
	}
	if !almostEqual(r.Width, 8) || !almostEqual(r.Height, 10) {
		t.Errorf("RectInches() size = %vx%v, want 8x10", r.Width, r.Height)
	}
}
