// Command mockuprender composites artwork onto a product photo using a
// calibrated mockup template.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	_ "image/jpeg"
	"os"
	"path/filepath"

	"pod-studio/internal/design"
	"pod-studio/internal/mockup"
	"pod-studio/internal/placement"
	"pod-studio/internal/product"

	_ "golang.org/x/image/tiff"
)

func main() {
	templatePath := flag.String("template", "", "Mockup template JSON")
	artworkPath := flag.String("artwork", "", "Artwork image (png/jpeg/tiff)")
	productType := flag.String("product", "tee", "Product type for auto-placement")
	outPath := flag.String("o", "mockup.png", "Output PNG path")
	widthIn := flag.Float64("w", 8, "Placement width, inches")
	heightIn := flag.Float64("h", 8, "Placement height, inches")
	flag.Parse()

	if *templatePath == "" || *artworkPath == "" {
		fmt.Println("Usage: mockuprender -template <tpl.json> -artwork <art.png> [-product tee] [-w 8 -h 8] [-o out.png]")
		os.Exit(1)
	}

	tpl, err := mockup.LoadFromFile(*templatePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load template: %v\n", err)
		os.Exit(1)
	}

	calib, err := mockup.Calibrate(tpl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Calibration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Calibrated from %d anchors, mean error %.2f px\n", len(tpl.Anchors), calib.MeanError)

	photoPath := tpl.PhotoPath
	if !filepath.IsAbs(photoPath) {
		photoPath = filepath.Join(filepath.Dir(*templatePath), photoPath)
	}
	photo, err := loadImage(photoPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load product photo: %v\n", err)
		os.Exit(1)
	}

	art, err := design.Load(*artworkPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load artwork: %v\n", err)
		os.Exit(1)
	}

	spec := product.GetSpec(*productType)
	if spec == nil {
		fmt.Fprintf(os.Stderr, "Unknown product type %q\n", *productType)
		os.Exit(1)
	}

	surface := placement.DefaultSurface()
	geom, ok := placement.AutoPlace(spec,
		placement.InchesToPixels(*widthIn), placement.InchesToPixels(*heightIn), surface)
	if !ok {
		fmt.Fprintln(os.Stderr, "Product has no print areas")
		os.Exit(1)
	}

	res := placement.Evaluate(geom, surface, spec)
	if !res.Valid {
		fmt.Fprintf(os.Stderr, "Placement invalid: %s\n", res.Feedback)
		os.Exit(2)
	}
	fmt.Printf("Placing %.1f\" x %.1f\" into %s\n", res.Rect.Width, res.Rect.Height, res.Area.DisplayName())

	grade := art.GradeForSize(res.Rect.Width, res.Rect.Height)
	fmt.Printf("Print quality: %s (%.0f effective DPI)\n",
		grade, art.EffectiveDPI(res.Rect.Width, res.Rect.Height))

	out, err := mockup.Render(photo, art.Image, calib, res.Rect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
