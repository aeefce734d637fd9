package product

// Cotton tote bag.

const (
	// Tote physical dimensions in inches
	ToteWidthInches  = 15.0
	ToteHeightInches = 16.0

	// Front panel print limits
	ToteFrontMaxWidth  = 12.0
	ToteFrontMaxHeight = 12.0
)

// ToteSpec returns the fully specified tote bag definition.
func ToteSpec() *BaseSpec {
	return &BaseSpec{
		ProductType:  "tote",
		Name:         "Cotton Tote Bag",
		WidthInches:  ToteWidthInches,
		HeightInches: ToteHeightInches,
		Areas: []PrintArea{
			{
				Name:      "front",
				XMin:      -6.5,
				XMax:      6.5,
				YMin:      -6.5,
				YMax:      6.5,
				MaxWidth:  ToteFrontMaxWidth,
				MaxHeight: ToteFrontMaxHeight,
				OptimalX:  0,
				OptimalY:  -0.5, // optical center sits slightly above geometric center
				Priority:  10,
			},
		},
	}
}
