package prefs

import (
	"path/filepath"
	"testing"
)

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	p := LoadFrom(path)
	p.SetString("last_product", "hoodie")
	p.SetInt("debounce_ms", 150)
	p.SetFloat("window_width", 1280)
	p.SetBool("show_print_areas", true)
	if err := p.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	q := LoadFrom(path)
	if got := q.String("last_product"); got != "hoodie" {
		t.Errorf("last_product = %q, want hoodie", got)
	}
	if got := q.Int("debounce_ms", 0); got != 150 {
		t.Errorf("debounce_ms = %d, want 150", got)
	}
	if got := q.Float("window_width", 0); got != 1280 {
		t.Errorf("window_width = %v, want 1280", got)
	}
	if !q.Bool("show_print_areas", false) {
		t.Error("show_print_areas = false, want true")
	}
}

func TestPrefsFallbacks(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), "preferences.json"))
	if got := p.Int("missing", 42); got != 42 {
		t.Errorf("Int fallback = %d, want 42", got)
	}
	if got := p.Float("missing", 1.5); got != 1.5 {
		t.Errorf("Float fallback = %v, want 1.5", got)
	}
	if got := p.String("missing"); got != "" {
		t.Errorf("String fallback = %q, want empty", got)
	}
	if !p.Bool("missing", true) {
		t.Error("Bool fallback = false, want true")
	}
}
