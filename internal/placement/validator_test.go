package placement

import (
	"strings"
	"testing"

	"pod-studio/internal/product"
)

func TestValidateSize(t *testing.T) {
	front := &product.PrintArea{
		Name: "front",
		XMin: -5, XMax: 5, YMin: -6, YMax: 6,
		MaxWidth: 10, MaxHeight: 12,
	}

	tests := []struct {
		name         string
		area         *product.PrintArea
		w, h         float64
		wantValid    bool
		wantContains []string
	}{
		{
			name: "fits", area: front, w: 8, h: 10,
			wantValid: true, wantContains: []string{"front"},
		},
		{
			name: "width too wide", area: front, w: 12, h: 10,
			wantValid: false, wantContains: []string{`width 12.0"`, `10.0"`},
		},
		{
			name: "height too tall", area: front, w: 8, h: 14,
			wantValid: false, wantContains: []string{`height 14.0"`, `12.0"`},
		},
		{
			name: "both dimensions violated", area: front, w: 12, h: 14,
			wantValid: false, wantContains: []string{"width", "height"},
		},
		{
			name: "exactly at limit", area: front, w: 10, h: 12,
			wantValid: true, wantContains: []string{"front"},
		},
		{
			name: "no area", area: nil, w: 1, h: 1,
			wantValid: false, wantContains: []string{FeedbackOutside},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, feedback := ValidateSize(tt.area, tt.w, tt.h)
			if valid != tt.wantValid {
				t.Errorf("valid = %v, want %v (feedback %q)", valid, tt.wantValid, feedback)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(feedback, want) {
					t.Errorf("feedback %q does not contain %q", feedback, want)
				}
			}
		})
	}
}

func TestValidateSizeMonotonicInSize(t *testing.T) {
	area := &product.PrintArea{
		Name: "front", XMin: -5, XMax: 5, YMin: -6, YMax: 6,
		MaxWidth: 10, MaxHeight: 12,
	}

	// Any width at or under a passing width also passes, height fixed.
	for w := 10.0; w >= 0.5; w -= 0.5 {
		if valid, _ := ValidateSize(area, w, 6); !valid {
			t.Errorf("width %v should pass when 10.0 passes", w)
		}
	}
	for h := 12.0; h >= 0.5; h -= 0.5 {
		if valid, _ := ValidateSize(area, 6, h); !valid {
			t.Errorf("height %v should pass when 12.0 passes", h)
		}
	}
}

func TestValidateSizeOutsideIgnoresSize(t *testing.T) {
	for _, dim := range []float64{0.1, 5, 500} {
		valid, feedback := ValidateSize(nil, dim, dim)
		if valid || feedback != FeedbackOutside {
			t.Errorf("size %v: got (%v, %q), want invalid with fixed outside feedback", dim, valid, feedback)
		}
	}
}

// testSpec wraps a bare area list in a Spec for Evaluate.
func testSpec(areas []product.PrintArea) product.Spec {
	return &product.BaseSpec{
		ProductType:  "test",
		Name:         "Test",
		WidthInches:  20,
		HeightInches: 20,
		Areas:        areas,
	}
}

func TestEvaluate(t *testing.T) {
	s := DefaultSurface()
	spec := testSpec(singleFrontArea())

	t.Run("centered design fits", func(t *testing.T) {
		// 8x10" design centered on the product.
		g := OverlayGeometry{X: 220, Y: 100, Width: 160, Height: 200}
		res := Evaluate(g, s, spec)
		if !res.Valid {
			t.Errorf("expected valid, got feedback %q", res.Feedback)
		}
		if res.Area == nil || res.Area.Name != "front" {
			t.Errorf("area = %v, want front", res.Area)
		}
		if !strings.Contains(res.Feedback, "front") {
			t.Errorf("feedback %q should mention the area", res.Feedback)
		}
	})

	t.Run("oversized width", func(t *testing.T) {
		// 12x10" design centered on the product.
		g := OverlayGeometry{X: 180, Y: 100, Width: 240, Height: 200}
		res := Evaluate(g, s, spec)
		if res.Valid {
			t.Error("12 inch wide design should fail a 10 inch limit")
		}
		if res.Area == nil || res.Area.Name != "front" {
			t.Errorf("area = %v, want front", res.Area)
		}
		if !strings.Contains(res.Feedback, `12.0"`) {
			t.Errorf("feedback %q should report the actual width", res.Feedback)
		}
	})

	t.Run("center outside all areas", func(t *testing.T) {
		// Center at (7", 0), outside the front x range.
		g := OverlayGeometry{X: 420, Y: 180, Width: 40, Height: 40}
		res := Evaluate(g, s, spec)
		if res.Valid || res.Area != nil || res.Feedback != FeedbackOutside {
			t.Errorf("got %+v, want invalid outside result", res)
		}
	})

	t.Run("center exactly on max corner", func(t *testing.T) {
		// Center at (5", 6") inclusive corner.
		g := OverlayGeometry{X: 380, Y: 300, Width: 40, Height: 40}
		res := Evaluate(g, s, spec)
		if res.Area == nil || res.Area.Name != "front" {
			t.Errorf("area = %v, want front (inclusive bounds)", res.Area)
		}
	})

	t.Run("rect reported in inches", func(t *testing.T) {
		g := OverlayGeometry{X: 220, Y: 100, Width: 160, Height: 200}
		res := Evaluate(g, s, spec)
		if !almostEqual(res.Rect.X, -4) || !almostEqual(res.Rect.Y, -5) ||
			!almostEqual(res.Rect.Width, 8) || !almostEqual(res.Rect.Height, 10) {
			t.Errorf("rect = %+v, want (-4, -5, 8, 10)", res.Rect)
		}
	})

	t.Run("nil spec treated as no areas", func(t *testing.T) {
		g := OverlayGeometry{X: 200, Y: 100, Width: 200, Height: 200}
		res := Evaluate(g, s, nil)
		if res.Valid || res.Feedback != FeedbackOutside {
			t.Errorf("got %+v, want invalid outside result", res)
		}
	})
}
