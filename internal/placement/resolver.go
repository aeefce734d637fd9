package placement

import (
	"pod-studio/internal/product"
)

// ResolveArea returns the print area containing the given center point,
// or nil when the point falls outside every area.
//
// When areas overlap, the highest Priority wins; equal priorities keep
// the spec's declaration order. The result is deterministic for any
// fixed input. Range bounds are inclusive.
func ResolveArea(xInches, yInches float64, areas []product.PrintArea) *product.PrintArea {
	var best *product.PrintArea
	for i := range areas {
		a := &areas[i]
		if !a.Contains(xInches, yInches) {
			continue
		}
		if best == nil || a.Priority > best.Priority {
			best = a
		}
	}
	return best
}

// PreferredArea returns the area auto-placement should target: the one
// with the highest Priority, declaration order breaking ties. Returns nil
// for an empty list.
func PreferredArea(areas []product.PrintArea) *product.PrintArea {
	var best *product.PrintArea
	for i := range areas {
		if best == nil || areas[i].Priority > best.Priority {
			best = &areas[i]
		}
	}
	return best
}
