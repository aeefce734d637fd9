package product

// Pullover hoodie.
//
// The kangaroo pocket splits the front into two stacked print regions:
// a chest region above the pocket and the pocket band itself. The regions
// share an X range, so the chest region carries the higher priority and
// is the auto-placement target.

const (
	// Hoodie garment dimensions in inches
	HoodieWidthInches  = 24.0
	HoodieHeightInches = 28.0

	// Chest region limits (above the pocket)
	HoodieChestMaxWidth  = 12.0
	HoodieChestMaxHeight = 9.0

	// Pocket band limits
	HoodiePocketMaxWidth  = 10.0
	HoodiePocketMaxHeight = 4.0
)

// HoodieSpec returns the fully specified hoodie definition.
func HoodieSpec() *BaseSpec {
	return &BaseSpec{
		ProductType:  "hoodie",
		Name:         "Pullover Hoodie",
		WidthInches:  HoodieWidthInches,
		HeightInches: HoodieHeightInches,
		Areas: []PrintArea{
			{
				Name:      "front_chest",
				XMin:      -6.0,
				XMax:      6.0,
				YMin:      -9.0,
				YMax:      0.0,
				MaxWidth:  HoodieChestMaxWidth,
				MaxHeight: HoodieChestMaxHeight,
				OptimalX:  0,
				OptimalY:  -4.5,
				Priority:  10,
			},
			{
				Name:      "pocket_band",
				XMin:      -5.0,
				XMax:      5.0,
				YMin:      0.0, // shares y=0 with front_chest; priority decides
				YMax:      4.0,
				MaxWidth:  HoodiePocketMaxWidth,
				MaxHeight: HoodiePocketMaxHeight,
				OptimalX:  0,
				OptimalY:  2.0,
				Priority:  5,
			},
		},
	}
}
