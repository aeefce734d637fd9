package placement

import (
	"testing"

	"pod-studio/internal/product"
)

func singleFrontArea() []product.PrintArea {
	return []product.PrintArea{
		{
			Name: "front",
			XMin: -5, XMax: 5,
			YMin: -6, YMax: 6,
			MaxWidth: 10, MaxHeight: 12,
		},
	}
}

func TestResolveArea(t *testing.T) {
	areas := singleFrontArea()

	tests := []struct {
		name     string
		x, y     float64
		wantArea string // empty = no match
	}{
		{"center", 0, 0, "front"},
		{"outside x range", 7, 0, ""},
		{"outside y range", 0, -8, ""},
		{"exact max corner", 5, 6, "front"},
		{"exact min corner", -5, -6, "front"},
		{"on x min edge", -5, 3, "front"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveArea(tt.x, tt.y, areas)
			if tt.wantArea == "" {
				if got != nil {
					t.Errorf("ResolveArea(%v, %v) = %q, want no match", tt.x, tt.y, got.Name)
				}
				return
			}
			if got == nil || got.Name != tt.wantArea {
				t.Errorf("ResolveArea(%v, %v) = %v, want %q", tt.x, tt.y, got, tt.wantArea)
			}
		})
	}
}

func TestResolveAreaEmptyList(t *testing.T) {
	if got := ResolveArea(0, 0, nil); got != nil {
		t.Errorf("ResolveArea with no areas = %v, want nil", got)
	}
	if got := ResolveArea(0, 0, []product.PrintArea{}); got != nil {
		t.Errorf("ResolveArea with empty areas = %v, want nil", got)
	}
}

func TestResolveAreaDeterministic(t *testing.T) {
	areas := singleFrontArea()
	first := ResolveArea(2, 3, areas)
	for i := 0; i < 100; i++ {
		if got := ResolveArea(2, 3, areas); got != first {
			t.Fatalf("ResolveArea returned a different result on repeat call %d", i)
		}
	}
}

func TestResolveAreaPriority(t *testing.T) {
	overlapping := []product.PrintArea{
		{Name: "low", XMin: -5, XMax: 5, YMin: -5, YMax: 5, MaxWidth: 10, MaxHeight: 10, Priority: 1},
		{Name: "high", XMin: -2, XMax: 2, YMin: -2, YMax: 2, MaxWidth: 4, MaxHeight: 4, Priority: 9},
	}

	t.Run("higher priority wins in overlap", func(t *testing.T) {
		got := ResolveArea(0, 0, overlapping)
		if got == nil || got.Name != "high" {
			t.Errorf("ResolveArea(0,0) = %v, want high", got)
		}
	})

	t.Run("only containing area matches outside overlap", func(t *testing.T) {
		got := ResolveArea(4, 4, overlapping)
		if got == nil || got.Name != "low" {
			t.Errorf("ResolveArea(4,4) = %v, want low", got)
		}
	})

	t.Run("equal priority keeps declaration order", func(t *testing.T) {
		tied := []product.PrintArea{
			{Name: "first", XMin: -5, XMax: 5, YMin: -5, YMax: 5, MaxWidth: 10, MaxHeight: 10, Priority: 3},
			{Name: "second", XMin: -5, XMax: 5, YMin: -5, YMax: 5, MaxWidth: 10, MaxHeight: 10, Priority: 3},
		}
		got := ResolveArea(0, 0, tied)
		if got == nil || got.Name != "first" {
			t.Errorf("ResolveArea with tied priorities = %v, want first", got)
		}
	})
}

func TestResolveAreaHoodieBoundary(t *testing.T) {
	// The hoodie's chest and pocket regions share the y=0 boundary;
	// the chest's higher priority decides the shared edge.
	areas := product.HoodieSpec().PrintAreas()
	got := ResolveArea(0, 0, areas)
	if got == nil || got.Name != "front_chest" {
		t.Errorf("ResolveArea(0,0) on hoodie = %v, want front_chest", got)
	}
}

func TestPreferredArea(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if PreferredArea(nil) != nil {
			t.Error("PreferredArea(nil) should be nil")
		}
	})

	t.Run("highest priority", func(t *testing.T) {
		areas := []product.PrintArea{
			{Name: "a", Priority: 1},
			{Name: "b", Priority: 7},
			{Name: "c", Priority: 3},
		}
		if got := PreferredArea(areas); got == nil || got.Name != "b" {
			t.Errorf("PreferredArea() = %v, want b", got)
		}
	})

	t.Run("tie keeps declaration order", func(t *testing.T) {
		areas := []product.PrintArea{
			{Name: "a", Priority: 5},
			{Name: "b", Priority: 5},
		}
		if got := PreferredArea(areas); got == nil || got.Name != "a" {
			t.Errorf("PreferredArea() = %v, want a", got)
		}
	})
}
