package product

// 18" x 24" matte poster.
//
// Full-bleed printing with a 0.25" trim allowance on every edge; the
// safe area keeps artwork clear of the trim.

const (
	// Poster physical dimensions in inches
	PosterWidthInches  = 18.0
	PosterHeightInches = 24.0

	// Trim allowance per edge
	PosterTrimInches = 0.25
)

// PosterSpec returns the fully specified 18x24 poster definition.
func PosterSpec() *BaseSpec {
	return &BaseSpec{
		ProductType:  "poster",
		Name:         "18x24 Poster",
		WidthInches:  PosterWidthInches,
		HeightInches: PosterHeightInches,
		Areas: []PrintArea{
			{
				Name:      "full",
				XMin:      -PosterWidthInches / 2,
				XMax:      PosterWidthInches / 2,
				YMin:      -PosterHeightInches / 2,
				YMax:      PosterHeightInches / 2,
				MaxWidth:  PosterWidthInches - 2*PosterTrimInches,
				MaxHeight: PosterHeightInches - 2*PosterTrimInches,
				OptimalX:  0,
				OptimalY:  0,
				Priority:  10,
			},
		},
	}
}
