package product

// 11 oz ceramic mug.
//
// The printable surface is the unwrapped cylinder: 8.5" circumference
// by 3.5" tall, with a safe margin around the handle seam.

const (
	// Mug physical dimensions in inches (unwrapped print surface)
	MugWidthInches  = 8.5
	MugHeightInches = 3.5

	// Wrap print limits
	MugWrapMaxWidth  = 8.0
	MugWrapMaxHeight = 3.0
)

// MugSpec returns the fully specified 11 oz mug definition.
func MugSpec() *BaseSpec {
	return &BaseSpec{
		ProductType:  "mug",
		Name:         "11 oz Mug",
		WidthInches:  MugWidthInches,
		HeightInches: MugHeightInches,
		Areas: []PrintArea{
			{
				Name:      "wrap",
				XMin:      -4.0,
				XMax:      4.0,
				YMin:      -1.5,
				YMax:      1.5,
				MaxWidth:  MugWrapMaxWidth,
				MaxHeight: MugWrapMaxHeight,
				OptimalX:  0,
				OptimalY:  0,
				Priority:  10,
			},
		},
	}
}
