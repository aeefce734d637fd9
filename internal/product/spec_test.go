package product

import (
	"path/filepath"
	"testing"
)

func TestBuiltinSpecsValidate(t *testing.T) {
	for _, name := range ListSpecs() {
		t.Run(name, func(t *testing.T) {
			spec := GetSpec(name)
			if spec == nil {
				t.Fatalf("GetSpec(%q) returned nil", name)
			}
			if err := spec.Validate(); err != nil {
				t.Errorf("built-in spec %q failed validation: %v", name, err)
			}
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	if GetSpec("tee") == nil {
		t.Error("tee spec should be registered")
	}
	if GetSpec("no-such-product") != nil {
		t.Error("unknown product should resolve to nil")
	}
	if len(ListSpecs()) < 5 {
		t.Errorf("expected at least 5 built-in specs, got %d", len(ListSpecs()))
	}
}

func TestPrintAreaContains(t *testing.T) {
	area := PrintArea{
		Name: "front",
		XMin: -5, XMax: 5,
		YMin: -6, YMax: 6,
		MaxWidth: 10, MaxHeight: 12,
	}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 0, 0, true},
		{"exact min corner", -5, -6, true},
		{"exact max corner", 5, 6, true},
		{"on x max edge", 5, 0, true},
		{"outside x", 7, 0, false},
		{"outside y", 0, 6.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := area.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPrintAreaValidate(t *testing.T) {
	valid := PrintArea{
		Name: "front",
		XMin: -5, XMax: 5, YMin: -6, YMax: 6,
		MaxWidth: 10, MaxHeight: 12,
	}

	tests := []struct {
		name    string
		mutate  func(*PrintArea)
		wantErr bool
	}{
		{"valid", func(a *PrintArea) {}, false},
		{"missing name", func(a *PrintArea) { a.Name = "" }, true},
		{"inverted x range", func(a *PrintArea) { a.XMin, a.XMax = a.XMax, a.XMin }, true},
		{"inverted y range", func(a *PrintArea) { a.YMin, a.YMax = a.YMax, a.YMin }, true},
		{"zero max width", func(a *PrintArea) { a.MaxWidth = 0 }, true},
		{"negative max height", func(a *PrintArea) { a.MaxHeight = -1 }, true},
		{"optimal outside range", func(a *PrintArea) { a.OptimalX = 20 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := valid
			tt.mutate(&area)
			err := area.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBaseSpecValidate(t *testing.T) {
	makeValid := func() *BaseSpec {
		return &BaseSpec{
			ProductType:  "test",
			Name:         "Test Product",
			WidthInches:  10,
			HeightInches: 10,
			Areas: []PrintArea{
				{Name: "a", XMin: -1, XMax: 1, YMin: -1, YMax: 1, MaxWidth: 2, MaxHeight: 2},
			},
		}
	}

	t.Run("valid", func(t *testing.T) {
		if err := makeValid().Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("no areas", func(t *testing.T) {
		s := makeValid()
		s.Areas = nil
		if s.Validate() == nil {
			t.Error("spec without print areas should fail validation")
		}
	})

	t.Run("duplicate area names", func(t *testing.T) {
		s := makeValid()
		s.Areas = append(s.Areas, s.Areas[0])
		if s.Validate() == nil {
			t.Error("duplicate area names should fail validation")
		}
	})
}

func TestSpecFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tee.json")

	orig := TeeSpec()
	if err := orig.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if loaded.ProductType != orig.ProductType {
		t.Errorf("type = %q, want %q", loaded.ProductType, orig.ProductType)
	}
	if len(loaded.Areas) != len(orig.Areas) {
		t.Fatalf("area count = %d, want %d", len(loaded.Areas), len(orig.Areas))
	}
	for i := range orig.Areas {
		if loaded.Areas[i] != orig.Areas[i] {
			t.Errorf("area %d = %+v, want %+v", i, loaded.Areas[i], orig.Areas[i])
		}
	}
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	bad := &BaseSpec{ProductType: "bad", Name: "Bad"}
	// Bypass validation by marshalling directly.
	if err := bad.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile should reject a spec with no print areas")
	}
}

func TestAreaLookup(t *testing.T) {
	spec := HoodieSpec()
	if a := spec.Area("front_chest"); a == nil {
		t.Error("Area(front_chest) should exist")
	}
	if a := spec.Area("missing"); a != nil {
		t.Error("Area(missing) should be nil")
	}
}

func TestDisplayName(t *testing.T) {
	a := PrintArea{Name: "back_upper"}
	if got := a.DisplayName(); got != "back upper" {
		t.Errorf("DisplayName() = %q, want %q", got, "back upper")
	}
}
