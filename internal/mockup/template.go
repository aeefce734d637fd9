// Package mockup renders product preview images by compositing artwork
// onto a product photo through a calibrated transform.
package mockup

import (
	"encoding/json"
	"fmt"
	"os"
)

// Anchor is one correspondence between the print surface and the product
// photo: where a known physical point appears in the photograph.
type Anchor struct {
	InchX  float64 `json:"inch_x"` // inches relative to print-surface center
	InchY  float64 `json:"inch_y"`
	PixelX float64 `json:"pixel_x"` // product photo pixels
	PixelY float64 `json:"pixel_y"`
}

// Template describes a product photo and the anchor points that locate
// its print surface. Templates are authored once per product photo and
// stored as JSON sidecars.
type Template struct {
	Version   int      `json:"version"`
	PhotoPath string   `json:"photo"` // relative to the template file
	Anchors   []Anchor `json:"anchors"`
}

// MinAnchors is the number of correspondences an affine fit requires.
const MinAnchors = 3

// Validate checks the template's internal consistency.
func (t *Template) Validate() error {
	if t.PhotoPath == "" {
		return fmt.Errorf("template photo path is required")
	}
	if len(t.Anchors) < MinAnchors {
		return fmt.Errorf("template needs at least %d anchors, has %d", MinAnchors, len(t.Anchors))
	}
	return nil
}

// SaveToFile saves the template to a JSON file.
func (t *Template) SaveToFile(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads and validates a template from a JSON file.
func LoadFromFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, err
	}

	if err := tpl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mockup template: %w", err)
	}

	return &tpl, nil
}
