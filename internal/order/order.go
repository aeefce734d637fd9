// Package order assembles fulfillment payloads from a validated
// placement and exports them as JSON.
package order

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pod-studio/internal/placement"
	"pod-studio/pkg/geometry"
)

// PayloadVersion is the current order file format version.
const PayloadVersion = 1

// Placement records where the artwork sits on the product, in inches
// relative to the print-surface center.
type Placement struct {
	Area string        `json:"area"` // matched print area name
	Rect geometry.Rect `json:"rect"`
}

// LineItem is one product in an order.
type LineItem struct {
	ProductType string            `json:"product_type"`
	Options     map[string]string `json:"options,omitempty"` // size, color, ...
	ArtworkPath string            `json:"artwork"`
	Placement   Placement         `json:"placement"`
	Quantity    int               `json:"quantity"`
}

// Order is the full fulfillment payload.
type Order struct {
	Version int        `json:"version"`
	Items   []LineItem `json:"items"`
}

// NewLineItem builds a line item from a validated placement result.
// An invalid placement never becomes part of an order.
func NewLineItem(productType, artworkPath string, result placement.Result, quantity int) (LineItem, error) {
	if !result.Valid || result.Area == nil {
		return LineItem{}, fmt.Errorf("placement is not valid: %s", result.Feedback)
	}
	if productType == "" {
		return LineItem{}, fmt.Errorf("product type is required")
	}
	if artworkPath == "" {
		return LineItem{}, fmt.Errorf("artwork path is required")
	}
	if quantity < 1 {
		return LineItem{}, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	return LineItem{
		ProductType: productType,
		ArtworkPath: filepath.ToSlash(artworkPath),
		Placement: Placement{
			Area: result.Area.Name,
			Rect: result.Rect,
		},
		Quantity: quantity,
	}, nil
}

// New creates an order from one or more line items.
func New(items ...LineItem) (*Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order needs at least one line item")
	}
	return &Order{Version: PayloadVersion, Items: items}, nil
}

// SaveToFile writes the order payload as indented JSON.
func (o *Order) SaveToFile(path string) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile reads an order payload back from disk.
func LoadFromFile(path string) (*Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var o Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	if o.Version > PayloadVersion {
		return nil, fmt.Errorf("unsupported order version %d", o.Version)
	}
	if len(o.Items) == 0 {
		return nil, fmt.Errorf("order file has no line items")
	}
	return &o, nil
}
