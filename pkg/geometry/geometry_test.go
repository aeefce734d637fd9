package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectContains(t *testing.T) {
	r := NewRect(-5, -6, 10, 12)

	tests := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"center", Point2D{0, 0}, true},
		{"min corner", Point2D{-5, -6}, true},
		{"max corner", Point2D{5, 6}, true},
		{"on left edge", Point2D{-5, 0}, true},
		{"just outside right", Point2D{5.001, 0}, false},
		{"outside above", Point2D{0, -6.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(2, 4, 6, 8)
	c := r.Center()
	if !almostEqual(c.X, 5) || !almostEqual(c.Y, 8) {
		t.Errorf("Center() = %v, want (5, 8)", c)
	}
}

func TestAffineApply(t *testing.T) {
	tests := []struct {
		name string
		tr   AffineTransform
		in   Point2D
		want Point2D
	}{
		{"identity", Identity(), Point2D{3, 4}, Point2D{3, 4}},
		{"translation", Translation(10, -5), Point2D{1, 2}, Point2D{11, -3}},
		{"scaling", Scaling(2, 3), Point2D{4, 5}, Point2D{8, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.Apply(tt.in)
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAffineComposeWithInverse(t *testing.T) {
	tr := Translation(7, -3).Compose(Scaling(2, 4))
	inv, ok := tr.Inverse()
	if !ok {
		t.Fatal("Inverse() reported singular transform")
	}

	p := Point2D{1.5, -2.25}
	back := inv.Apply(tr.Apply(p))
	if !almostEqual(back.X, p.X) || !almostEqual(back.Y, p.Y) {
		t.Errorf("round trip through inverse = %v, want %v", back, p)
	}
}

func TestAffineInverseSingular(t *testing.T) {
	if _, ok := (AffineTransform{}).Inverse(); ok {
		t.Error("Inverse() of zero transform should fail")
	}
}

func TestIsAxisAligned(t *testing.T) {
	if !Scaling(2, 3).Compose(Translation(1, 1)).IsAxisAligned() {
		t.Error("scale+translate should be axis aligned")
	}
	rot := AffineTransform{A: 0, B: -1, C: 1, D: 0}
	if rot.IsAxisAligned() {
		t.Error("rotation should not be axis aligned")
	}
}
