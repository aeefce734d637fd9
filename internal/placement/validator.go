package placement

import (
	"fmt"
	"strings"

	"pod-studio/internal/product"
	"pod-studio/pkg/geometry"
)

// FeedbackOutside is reported whenever the overlay center falls outside
// every declared print area, regardless of design size.
const FeedbackOutside = "design is outside the printable areas"

// Result reports the outcome of one placement validation pass.
type Result struct {
	Valid    bool
	Area     *product.PrintArea // matched print area, nil when outside every area
	Feedback string
	Rect     geometry.Rect // inches, relative to product center
}

// ValidateSize checks a design of the given inch dimensions against a
// resolved print area. A nil area means the placement fell outside every
// area and is invalid with the fixed outside feedback.
//
// Out-of-bounds and oversized placements are business-rule failures, not
// errors: the result is always well formed.
func ValidateSize(area *product.PrintArea, widthInches, heightInches float64) (valid bool, feedback string) {
	if area == nil {
		return false, FeedbackOutside
	}

	var violations []string
	if widthInches > area.MaxWidth {
		violations = append(violations,
			fmt.Sprintf("width %.1f\" exceeds %.1f\" limit", widthInches, area.MaxWidth))
	}
	if heightInches > area.MaxHeight {
		violations = append(violations,
			fmt.Sprintf("height %.1f\" exceeds %.1f\" limit", heightInches, area.MaxHeight))
	}

	if len(violations) > 0 {
		return false, fmt.Sprintf("%s for %s", strings.Join(violations, "; "), area.DisplayName())
	}
	return true, fmt.Sprintf("fits %s print area", area.DisplayName())
}

// Evaluate runs the full pipeline for one overlay geometry: map to inch
// space, resolve the containing area, and validate the design size.
func Evaluate(g OverlayGeometry, s Surface, spec product.Spec) Result {
	rect := RectInches(g, s)

	var areas []product.PrintArea
	if spec != nil {
		areas = spec.PrintAreas()
	}

	center := CenterInches(g, s)
	area := ResolveArea(center.X, center.Y, areas)

	size := SizeInches(g)
	valid, feedback := ValidateSize(area, size.Width, size.Height)

	return Result{
		Valid:    valid,
		Area:     area,
		Feedback: feedback,
		Rect:     rect,
	}
}
