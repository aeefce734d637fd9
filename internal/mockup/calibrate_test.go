package mockup

import (
	"math"
	"path/filepath"
	"testing"

	"pod-studio/pkg/geometry"
)

// anchorsFrom builds anchors by pushing inch points through a known
// transform, optionally perturbing none of them.
func anchorsFrom(truth geometry.AffineTransform, points []geometry.Point2D) []Anchor {
	anchors := make([]Anchor, len(points))
	for i, p := range points {
		q := truth.Apply(p)
		anchors[i] = Anchor{InchX: p.X, InchY: p.Y, PixelX: q.X, PixelY: q.Y}
	}
	return anchors
}

func transformsClose(t *testing.T, got, want geometry.AffineTransform, tol float64) {
	t.Helper()
	checks := []struct {
		name      string
		got, want float64
	}{
		{"A", got.A, want.A}, {"B", got.B, want.B}, {"TX", got.TX, want.TX},
		{"C", got.C, want.C}, {"D", got.D, want.D}, {"TY", got.TY, want.TY},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > tol {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestCalibrateMinimalAnchors(t *testing.T) {
	truth := geometry.AffineTransform{A: 10, B: 0, TX: 320, C: 0, D: 12, TY: 240}
	tpl := &Template{
		Version:   1,
		PhotoPath: "tee.png",
		Anchors: anchorsFrom(truth, []geometry.Point2D{
			{X: -5, Y: -6}, {X: 5, Y: -6}, {X: 0, Y: 6},
		}),
	}

	calib, err := Calibrate(tpl)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	transformsClose(t, calib.Transform, truth, 1e-6)
	if calib.MeanError > 1e-6 {
		t.Errorf("mean error = %v, want ~0 for exact anchors", calib.MeanError)
	}
}

func TestCalibrateRecoversRotation(t *testing.T) {
	// 30 degree rotation plus anisotropic scale, not axis aligned.
	cos, sin := math.Cos(math.Pi/6), math.Sin(math.Pi/6)
	truth := geometry.AffineTransform{
		A: 15 * cos, B: -15 * sin, TX: 400,
		C: 15 * sin, D: 15 * cos, TY: 300,
	}
	tpl := &Template{
		Version:   1,
		PhotoPath: "mug.png",
		Anchors: anchorsFrom(truth, []geometry.Point2D{
			{X: -4, Y: -3}, {X: 4, Y: -3}, {X: 4, Y: 3},
			{X: -4, Y: 3}, {X: 0, Y: 0}, {X: 2, Y: -1},
		}),
	}

	calib, err := Calibrate(tpl)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	transformsClose(t, calib.Transform, truth, 1e-6)
}

func TestCalibrateRejectsOutlier(t *testing.T) {
	truth := geometry.AffineTransform{A: 20, B: 0, TX: 100, C: 0, D: 20, TY: 100}
	points := []geometry.Point2D{
		{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5},
		{X: 0, Y: 0}, {X: -3, Y: 2}, {X: 3, Y: -2}, {X: 1, Y: 4},
	}
	anchors := anchorsFrom(truth, points)
	// One badly authored anchor, way off the surface.
	anchors = append(anchors, Anchor{InchX: 2, InchY: 2, PixelX: 900, PixelY: -500})

	calib, err := Calibrate(&Template{Version: 1, PhotoPath: "tote.png", Anchors: anchors})
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	transformsClose(t, calib.Transform, truth, 1e-3)
}

func TestCalibrateRejectsInvalidTemplate(t *testing.T) {
	if _, err := Calibrate(&Template{Version: 1, PhotoPath: "x.png"}); err == nil {
		t.Error("calibrating a template with no anchors should fail")
	}
	if _, err := Calibrate(&Template{Version: 1, Anchors: make([]Anchor, 3)}); err == nil {
		t.Error("calibrating a template with no photo should fail")
	}
}

func TestPhotoToInches(t *testing.T) {
	truth := geometry.AffineTransform{A: 10, B: 0, TX: 320, C: 0, D: 12, TY: 240}
	tpl := &Template{
		Version:   1,
		PhotoPath: "tee.png",
		Anchors: anchorsFrom(truth, []geometry.Point2D{
			{X: -5, Y: -6}, {X: 5, Y: -6}, {X: 0, Y: 6},
		}),
	}
	calib, err := Calibrate(tpl)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}

	// Every anchor's photo pixel maps back to its inch point.
	for _, a := range tpl.Anchors {
		p, err := calib.PhotoToInches(a.PixelX, a.PixelY)
		if err != nil {
			t.Fatalf("PhotoToInches: %v", err)
		}
		if math.Abs(p.X-a.InchX) > 1e-6 || math.Abs(p.Y-a.InchY) > 1e-6 {
			t.Errorf("PhotoToInches(%v, %v) = %v, want (%v, %v)",
				a.PixelX, a.PixelY, p, a.InchX, a.InchY)
		}
	}

	degenerate := Calibration{}
	if _, err := degenerate.PhotoToInches(0, 0); err == nil {
		t.Error("singular calibration should fail to invert")
	}
}

func TestReprojectionError(t *testing.T) {
	identity := geometry.Identity()
	src := []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}}
	dst := []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 2}} // second point off by 2

	if got := ReprojectionError(src, dst, identity); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("ReprojectionError = %v, want 1.0", got)
	}
	if got := ReprojectionError(nil, nil, identity); got != 0 {
		t.Errorf("empty input error = %v, want 0", got)
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	tpl := &Template{
		Version:   1,
		PhotoPath: "hoodie.png",
		Anchors: []Anchor{
			{InchX: -5, InchY: -6, PixelX: 120, PixelY: 80},
			{InchX: 5, InchY: -6, PixelX: 520, PixelY: 80},
			{InchX: 0, InchY: 6, PixelX: 320, PixelY: 560},
		},
	}

	path := filepath.Join(t.TempDir(), "hoodie.template.json")
	if err := tpl.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.PhotoPath != tpl.PhotoPath || len(loaded.Anchors) != len(tpl.Anchors) {
		t.Errorf("loaded template = %+v, want %+v", loaded, tpl)
	}
	if loaded.Anchors[2].PixelY != 560 {
		t.Errorf("anchor pixel y = %v, want 560", loaded.Anchors[2].PixelY)
	}
}
