// Package app provides application lifecycle management, project
// persistence, and events.
package app

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pod-studio/internal/design"
	"pod-studio/internal/mockup"
	"pod-studio/internal/placement"
	"pod-studio/internal/product"
)

// DefaultProductType is selected when no project dictates otherwise.
const DefaultProductType = "tee"

// State holds the application state: the active product, loaded artwork,
// and the live placement session.
type State struct {
	mu sync.RWMutex

	// Project
	ProjectPath string
	Modified    bool

	// Product
	Spec product.Spec

	// Artwork
	Artwork *design.Artwork

	// Placement session. Owned by State; recreated never, reconfigured
	// on product swaps.
	Session *placement.Session

	// Order
	Quantity int

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventProjectLoaded EventType = iota
	EventProjectSaved
	EventProductChanged
	EventArtworkLoaded
	EventPlacementChanged
	EventMockupRendered
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state with the default product.
func NewState() *State {
	s := &State{
		Spec:      product.GetSpec(DefaultProductType),
		Quantity:  1,
		listeners: make(map[EventType][]EventListener),
	}
	s.Session = placement.NewSession(placement.DefaultSurface(), placement.DefaultDebounce, func(res placement.Result) {
		s.Emit(EventPlacementChanged, res)
	})
	s.Session.SetProduct(s.Spec)
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the project as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// SetProduct switches the active product type.
func (s *State) SetProduct(productType string) error {
	spec := product.GetSpec(productType)
	if spec == nil {
		return fmt.Errorf("unknown product type %q", productType)
	}

	s.mu.Lock()
	s.Spec = spec
	s.mu.Unlock()

	s.Session.SetProduct(spec)
	s.SetModified(true)
	s.Emit(EventProductChanged, spec)
	return nil
}

// LoadArtwork imports an artwork file.
func (s *State) LoadArtwork(path string) error {
	art, err := design.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.Artwork = art
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventArtworkLoaded, art)
	return nil
}

// RenderMockup composites the loaded artwork onto the product photo of
// the given mockup template, using the current placement. Emits
// EventMockupRendered with the rendered image.
func (s *State) RenderMockup(templatePath string) (image.Image, error) {
	s.mu.RLock()
	art := s.Artwork
	s.mu.RUnlock()
	if art == nil {
		return nil, fmt.Errorf("no artwork loaded")
	}

	res := s.Session.Result()
	if !res.Valid {
		return nil, fmt.Errorf("placement is not valid: %s", res.Feedback)
	}

	tpl, err := mockup.LoadFromFile(templatePath)
	if err != nil {
		return nil, err
	}
	calib, err := mockup.Calibrate(tpl)
	if err != nil {
		return nil, fmt.Errorf("calibrating %s: %w", filepath.Base(templatePath), err)
	}

	photoPath := tpl.PhotoPath
	if !filepath.IsAbs(photoPath) {
		photoPath = filepath.Join(filepath.Dir(templatePath), photoPath)
	}
	photo, err := design.Load(photoPath)
	if err != nil {
		return nil, fmt.Errorf("loading product photo: %w", err)
	}

	out, err := mockup.Render(photo.Image, art.Image, calib, res.Rect)
	if err != nil {
		return nil, err
	}

	s.Emit(EventMockupRendered, out)
	return out, nil
}

// SetQuantity updates the order quantity.
func (s *State) SetQuantity(q int) error {
	if q < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", q)
	}
	s.mu.Lock()
	s.Quantity = q
	s.mu.Unlock()
	s.SetModified(true)
	return nil
}

// Close releases the placement session.
func (s *State) Close() {
	if s.Session != nil {
		s.Session.Close()
	}
}

// ProjectFile represents the JSON structure of a .podproj file.
type ProjectFile struct {
	Version     int    `json:"version"`
	ProductType string `json:"product_type"`
	ArtworkPath string `json:"artwork,omitempty"` // relative to the project file

	Overlay    placement.OverlayGeometry `json:"overlay"`
	UserPlaced bool                      `json:"user_placed"`

	DebounceMs int `json:"debounce_ms,omitempty"` // 0 = default
	Quantity   int `json:"quantity,omitempty"`
}

// LoadProject loads a project from the specified path.
func (s *State) LoadProject(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var proj ProjectFile
	if err := json.Unmarshal(data, &proj); err != nil {
		return err
	}
	if proj.ProductType == "" {
		return fmt.Errorf("project file has no product type")
	}
	spec := product.GetSpec(proj.ProductType)
	if spec == nil {
		return fmt.Errorf("unknown product type %q", proj.ProductType)
	}

	s.mu.Lock()
	s.ProjectPath = path
	s.Modified = false
	s.Spec = spec
	if proj.Quantity > 0 {
		s.Quantity = proj.Quantity
	}
	s.mu.Unlock()

	if proj.DebounceMs > 0 {
		s.Session.SetDebounce(time.Duration(proj.DebounceMs) * time.Millisecond)
	}
	s.Session.SetProduct(spec)

	// Restore the saved overlay only when the user had positioned it;
	// otherwise the auto-placement from SetProduct stands.
	if proj.UserPlaced {
		s.Session.SetGeometry(proj.Overlay)
	}

	if proj.ArtworkPath != "" {
		artPath := filepath.Join(filepath.Dir(path), filepath.FromSlash(proj.ArtworkPath))
		if err := s.LoadArtwork(artPath); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventProjectLoaded, path)
	return nil
}

// SaveProject saves the project to the specified path.
func (s *State) SaveProject(path string) error {
	s.mu.RLock()
	proj := ProjectFile{
		Version:     1,
		ProductType: s.Spec.Type(),
		Quantity:    s.Quantity,
	}
	if s.Artwork != nil {
		rel, err := filepath.Rel(filepath.Dir(path), s.Artwork.Path)
		if err != nil {
			rel = s.Artwork.Path
		}
		proj.ArtworkPath = filepath.ToSlash(rel)
	}
	s.mu.RUnlock()

	proj.Overlay = s.Session.Geometry()
	proj.UserPlaced = s.Session.UserPlaced()

	data, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	s.mu.Lock()
	s.ProjectPath = path
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventProjectSaved, path)
	return nil
}
