package product

// Unisex crew-neck t-shirt (adult L reference garment).
//
// Physical characteristics:
// - Garment: 22" wide x 29" long (laid flat)
// - Front print area: 12" x 16" DTG platen, centered, top edge ~3" below collar
// - Left chest area: 4" x 4", offset toward the wearer's left

const (
	// Tee garment dimensions in inches
	TeeWidthInches  = 22.0
	TeeHeightInches = 29.0

	// Front platen limits
	TeeFrontMaxWidth  = 12.0
	TeeFrontMaxHeight = 16.0

	// Left chest limits
	TeeChestMaxSize = 4.0
)

// TeeSpec returns the fully specified t-shirt definition.
func TeeSpec() *BaseSpec {
	return &BaseSpec{
		ProductType:  "tee",
		Name:         "Unisex T-Shirt",
		WidthInches:  TeeWidthInches,
		HeightInches: TeeHeightInches,
		Areas: []PrintArea{
			{
				Name:      "front",
				XMin:      -6.0,
				XMax:      6.0,
				YMin:      -8.0,
				YMax:      8.0,
				MaxWidth:  TeeFrontMaxWidth,
				MaxHeight: TeeFrontMaxHeight,
				OptimalX:  0,
				OptimalY:  -2.0, // chest-high default, not dead center
				Priority:  10,
			},
			{
				Name:      "left_chest",
				XMin:      7.0,
				XMax:      10.0,
				YMin:      -8.0,
				YMax:      -5.0,
				MaxWidth:  TeeChestMaxSize,
				MaxHeight: TeeChestMaxSize,
				OptimalX:  8.5,
				OptimalY:  -6.5,
				Priority:  5,
			},
		},
	}
}
