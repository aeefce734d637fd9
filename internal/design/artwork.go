// Package design provides artwork loading and print-quality evaluation.
package design

import (
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"pod-studio/pkg/geometry"

	_ "golang.org/x/image/tiff"
)

// DefaultDPI is assumed when the source file carries no resolution metadata.
const DefaultDPI = 72.0

// Artwork is a user-supplied design image.
type Artwork struct {
	Path  string      // Original file path
	Image image.Image // Decoded image data
	DPI   float64     // From metadata, or DefaultDPI
}

// Load loads an artwork image from the specified path.
func Load(path string) (*Artwork, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open artwork: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artwork: %w", err)
	}

	art := &Artwork{
		Path:  path,
		Image: img,
		DPI:   DefaultDPI,
	}

	// TIFF is the only supported format that reliably carries resolution.
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".tiff" || ext == ".tif" {
		if dpi, err := extractTIFFDPI(path); err == nil {
			art.DPI = dpi
		}
	}

	return art, nil
}

// Width returns the artwork width in pixels.
func (a *Artwork) Width() int {
	if a.Image == nil {
		return 0
	}
	return a.Image.Bounds().Dx()
}

// Height returns the artwork height in pixels.
func (a *Artwork) Height() int {
	if a.Image == nil {
		return 0
	}
	return a.Image.Bounds().Dy()
}

// AspectRatio returns width divided by height, or 0 for an empty image.
func (a *Artwork) AspectRatio() float64 {
	h := a.Height()
	if h == 0 {
		return 0
	}
	return float64(a.Width()) / float64(h)
}

// NativeSizeInches returns the print size at the artwork's own DPI.
func (a *Artwork) NativeSizeInches() geometry.Size {
	if a.DPI == 0 {
		return geometry.Size{}
	}
	return geometry.Size{
		Width:  float64(a.Width()) / a.DPI,
		Height: float64(a.Height()) / a.DPI,
	}
}

// Quality grades for a given print size.
type Quality int

const (
	QualityPoor       Quality = iota // below AcceptableDPI
	QualityAcceptable                // AcceptableDPI up to ExcellentDPI
	QualityExcellent                 // ExcellentDPI and above
)

const (
	// ExcellentDPI is the effective resolution at which prints are
	// indistinguishable from the source.
	ExcellentDPI = 300.0
	// AcceptableDPI is the minimum effective resolution most POD
	// providers accept without a quality warning.
	AcceptableDPI = 150.0
)

func (q Quality) String() string {
	switch q {
	case QualityExcellent:
		return "excellent"
	case QualityAcceptable:
		return "acceptable"
	default:
		return "poor"
	}
}

// EffectiveDPI returns the resolution the artwork prints at when placed
// at the given physical size. The limiting (lower) axis governs.
func (a *Artwork) EffectiveDPI(widthInches, heightInches float64) float64 {
	if widthInches <= 0 || heightInches <= 0 {
		return 0
	}
	dpiX := float64(a.Width()) / widthInches
	dpiY := float64(a.Height()) / heightInches
	if dpiY < dpiX {
		return dpiY
	}
	return dpiX
}

// GradeForSize grades the print quality at the given placement size.
func (a *Artwork) GradeForSize(widthInches, heightInches float64) Quality {
	return GradeDPI(a.EffectiveDPI(widthInches, heightInches))
}

// GradeDPI grades an effective print resolution.
func GradeDPI(dpi float64) Quality {
	switch {
	case dpi >= ExcellentDPI:
		return QualityExcellent
	case dpi >= AcceptableDPI:
		return QualityAcceptable
	default:
		return QualityPoor
	}
}

// SupportedFormats returns the list of supported artwork formats.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".tiff", ".tif"}
}

// IsSupportedFormat checks if the given path has a supported format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

// extractTIFFDPI reads the resolution tags from a TIFF file's first IFD.
func extractTIFFDPI(path string) (float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	// Header: byte order marker, magic, offset to first IFD.
	header := make([]byte, 8)
	if _, err := file.Read(header); err != nil {
		return 0, err
	}

	var byteOrder binary.ByteOrder
	switch {
	case header[0] == 'I' && header[1] == 'I':
		byteOrder = binary.LittleEndian
	case header[0] == 'M' && header[1] == 'M':
		byteOrder = binary.BigEndian
	default:
		return 0, fmt.Errorf("not a valid TIFF file")
	}

	ifdOffset := byteOrder.Uint32(header[4:8])
	if _, err := file.Seek(int64(ifdOffset), 0); err != nil {
		return 0, err
	}

	var numEntries uint16
	if err := binary.Read(file, byteOrder, &numEntries); err != nil {
		return 0, err
	}

	var xRes, yRes float64
	var resUnit uint16 = 2 // inches unless stated otherwise

	for i := uint16(0); i < numEntries; i++ {
		entry := make([]byte, 12)
		if _, err := file.Read(entry); err != nil {
			return 0, err
		}

		tag := byteOrder.Uint16(entry[0:2])
		fieldType := byteOrder.Uint16(entry[2:4])
		valueOffset := byteOrder.Uint32(entry[8:12])

		switch tag {
		case 282: // XResolution
			if fieldType == 5 { // RATIONAL
				xRes = readTIFFRational(file, int64(valueOffset), byteOrder)
			}
		case 283: // YResolution
			if fieldType == 5 {
				yRes = readTIFFRational(file, int64(valueOffset), byteOrder)
			}
		case 296: // ResolutionUnit
			if fieldType == 3 { // SHORT
				resUnit = uint16(valueOffset)
			}
		}
	}

	dpi := xRes
	if dpi == 0 {
		dpi = yRes
	}
	if resUnit == 3 { // centimeters
		dpi *= 2.54
	}
	if dpi == 0 {
		return 0, fmt.Errorf("no resolution tags found")
	}

	return dpi, nil
}

// readTIFFRational reads a RATIONAL value (two uint32s) at the given offset.
func readTIFFRational(file *os.File, offset int64, byteOrder binary.ByteOrder) float64 {
	currentPos, _ := file.Seek(0, 1)
	defer file.Seek(currentPos, 0)

	file.Seek(offset, 0)
	var num, denom uint32
	binary.Read(file, byteOrder, &num)
	binary.Read(file, byteOrder, &denom)

	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom)
}
