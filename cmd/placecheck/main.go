// Command placecheck validates a placement against a product spec and
// prints the matched area and feedback.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"pod-studio/internal/placement"
	"pod-studio/internal/product"
)

func main() {
	productType := flag.String("product", "tee", "Product type (see -list)")
	specFile := flag.String("spec", "", "Load product spec from a JSON file instead")
	x := flag.Float64("x", 0, "Overlay left edge, surface pixels")
	y := flag.Float64("y", 0, "Overlay top edge, surface pixels")
	width := flag.Float64("w", 200, "Overlay width, surface pixels")
	height := flag.Float64("h", 200, "Overlay height, surface pixels")
	auto := flag.Bool("auto", false, "Ignore -x/-y and auto-place the overlay")
	list := flag.Bool("list", false, "List registered product types and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(product.ListSpecs(), "\n"))
		return
	}

	var spec product.Spec
	if *specFile != "" {
		loaded, err := product.LoadFromFile(*specFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load spec: %v\n", err)
			os.Exit(1)
		}
		spec = loaded
	} else {
		spec = product.GetSpec(*productType)
		if spec == nil {
			fmt.Fprintf(os.Stderr, "Unknown product type %q (use -list)\n", *productType)
			os.Exit(1)
		}
	}

	surface := placement.DefaultSurface()
	geom := placement.OverlayGeometry{X: *x, Y: *y, Width: *width, Height: *height}

	if *auto {
		placed, ok := placement.AutoPlace(spec, *width, *height, surface)
		if !ok {
			fmt.Fprintln(os.Stderr, "Product has no print areas to place into")
			os.Exit(1)
		}
		geom = placed
		fmt.Printf("Auto-placed at (%.0f, %.0f)\n", geom.X, geom.Y)
	}

	res := placement.Evaluate(geom, surface, spec)

	fmt.Printf("Product:  %s\n", spec.DisplayName())
	fmt.Printf("Overlay:  %.0fx%.0f px at (%.0f, %.0f)\n", geom.Width, geom.Height, geom.X, geom.Y)
	fmt.Printf("Rect:     %.2f\" x %.2f\" centered (%.2f\", %.2f\")\n",
		res.Rect.Width, res.Rect.Height,
		res.Rect.X+res.Rect.Width/2, res.Rect.Y+res.Rect.Height/2)
	if res.Area != nil {
		fmt.Printf("Area:     %s\n", res.Area.DisplayName())
	} else {
		fmt.Printf("Area:     none\n")
	}
	fmt.Printf("Valid:    %v\n", res.Valid)
	fmt.Printf("Feedback: %s\n", res.Feedback)

	if !res.Valid {
		os.Exit(2)
	}
}
