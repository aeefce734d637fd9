// Package product provides print-on-demand product specifications and management.
package product

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// PrintArea defines a named rectangular region of a product where artwork
// may legally be printed. All coordinates are in inches relative to the
// product's visual center, X growing right and Y growing down.
type PrintArea struct {
	Name      string  `json:"name"`
	XMin      float64 `json:"x_min"`
	XMax      float64 `json:"x_max"`
	YMin      float64 `json:"y_min"`
	YMax      float64 `json:"y_max"`
	MaxWidth  float64 `json:"max_width"`  // largest design width allowed, inches
	MaxHeight float64 `json:"max_height"` // largest design height allowed, inches
	OptimalX  float64 `json:"optimal_x"`  // default placement center offset
	OptimalY  float64 `json:"optimal_y"`
	Priority  int     `json:"priority,omitempty"` // higher wins when areas overlap
}

// Contains reports whether a center point lies within the area.
// Range bounds are inclusive on both ends.
func (a *PrintArea) Contains(xInches, yInches float64) bool {
	return xInches >= a.XMin && xInches <= a.XMax &&
		yInches >= a.YMin && yInches <= a.YMax
}

// DisplayName returns the area name formatted for humans
// (underscores replaced with spaces).
func (a *PrintArea) DisplayName() string {
	return strings.ReplaceAll(a.Name, "_", " ")
}

// Validate checks the area's internal consistency.
func (a *PrintArea) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("print area name is required")
	}
	if a.XMin > a.XMax {
		return fmt.Errorf("print area %q: x range is inverted (%.3f > %.3f)", a.Name, a.XMin, a.XMax)
	}
	if a.YMin > a.YMax {
		return fmt.Errorf("print area %q: y range is inverted (%.3f > %.3f)", a.Name, a.YMin, a.YMax)
	}
	if a.MaxWidth <= 0 || a.MaxHeight <= 0 {
		return fmt.Errorf("print area %q: max dimensions must be positive", a.Name)
	}
	if !a.Contains(a.OptimalX, a.OptimalY) {
		return fmt.Errorf("print area %q: optimal point (%.3f, %.3f) is outside its own range", a.Name, a.OptimalX, a.OptimalY)
	}
	return nil
}

// Spec defines a product's printable surface.
type Spec interface {
	Type() string
	DisplayName() string
	Dimensions() (widthInches, heightInches float64)
	PrintAreas() []PrintArea
	Validate() error
}

// BaseSpec provides a common implementation of Spec.
// Print areas keep their declaration order; the placement resolver relies
// on that order to break priority ties.
type BaseSpec struct {
	ProductType  string      `json:"type"`
	Name         string      `json:"name"`
	WidthInches  float64     `json:"width_inches"`
	HeightInches float64     `json:"height_inches"`
	Areas        []PrintArea `json:"print_areas"`
}

func (s *BaseSpec) Type() string {
	return s.ProductType
}

func (s *BaseSpec) DisplayName() string {
	return s.Name
}

func (s *BaseSpec) Dimensions() (widthInches, heightInches float64) {
	return s.WidthInches, s.HeightInches
}

func (s *BaseSpec) PrintAreas() []PrintArea {
	return s.Areas
}

// Area returns the named print area, or nil if the spec has none by that name.
func (s *BaseSpec) Area(name string) *PrintArea {
	for i := range s.Areas {
		if s.Areas[i].Name == name {
			return &s.Areas[i]
		}
	}
	return nil
}

func (s *BaseSpec) Validate() error {
	if s.ProductType == "" {
		return fmt.Errorf("product type is required")
	}
	if s.Name == "" {
		return fmt.Errorf("product display name is required")
	}
	if s.WidthInches <= 0 || s.HeightInches <= 0 {
		return fmt.Errorf("product dimensions must be positive")
	}
	if len(s.Areas) == 0 {
		return fmt.Errorf("product %q has no print areas", s.ProductType)
	}
	seen := make(map[string]bool, len(s.Areas))
	for i := range s.Areas {
		if err := s.Areas[i].Validate(); err != nil {
			return err
		}
		if seen[s.Areas[i].Name] {
			return fmt.Errorf("duplicate print area name %q", s.Areas[i].Name)
		}
		seen[s.Areas[i].Name] = true
	}
	return nil
}

// SaveToFile saves the spec to a JSON file.
func (s *BaseSpec) SaveToFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads a spec from a JSON file.
func LoadFromFile(path string) (*BaseSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec BaseSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid product spec: %w", err)
	}

	return &spec, nil
}

// Registry of known product specs
var registry = make(map[string]Spec)

// Register adds a product spec to the registry.
func Register(spec Spec) {
	registry[spec.Type()] = spec
}

// GetSpec returns a product spec by type name.
func GetSpec(productType string) Spec {
	if spec, ok := registry[productType]; ok {
		return spec
	}
	return nil
}

// ListSpecs returns all registered product type names.
func ListSpecs() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func init() {
	// Register built-in product specs
	Register(TeeSpec())
	Register(HoodieSpec())
	Register(MugSpec())
	Register(ToteSpec())
	Register(PosterSpec())
}
