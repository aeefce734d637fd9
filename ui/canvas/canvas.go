// Package canvas provides the design surface widget: product backdrop,
// placed artwork, print-area outlines, and a draggable overlay.
package canvas

import (
	"image"
	"image/color"

	"pod-studio/internal/placement"
	"pod-studio/internal/product"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"
)

const (
	handleSizePx  = 10.0 // corner handle square, surface pixels
	minOverlayPx  = 20.0
	handleGrabPad = 4.0
)

// dragMode describes what the current drag manipulates.
type dragMode int

const (
	dragNone dragMode = iota
	dragMove
	dragResize
)

// DesignCanvas displays the fixed design surface and lets the user drag
// and resize the artwork overlay. Geometry changes are reported through
// a callback; validation results flow back in through SetResult.
type DesignCanvas struct {
	widget.BaseWidget

	surface placement.Surface
	raster  *fynecanvas.Raster

	productImage image.Image // optional backdrop, pre-scaled to the surface
	artwork      image.Image
	areas        []product.PrintArea
	showAreas    bool

	geom   placement.OverlayGeometry
	result placement.Result

	// Letterbox mapping from the last draw, widget px per surface px.
	scale      float64
	offX, offY float64
	lastW      int // raster width from the last draw

	mode      dragMode
	corner    int // dragResize: 0=NW 1=NE 2=SE 3=SW
	startGeom placement.OverlayGeometry
	dragFromX float64
	dragFromY float64

	onGeometryChange func(placement.OverlayGeometry)
}

// NewDesignCanvas creates a canvas over the given surface.
func NewDesignCanvas(s placement.Surface) *DesignCanvas {
	dc := &DesignCanvas{
		surface:   s,
		showAreas: true,
		scale:     1,
		geom: placement.OverlayGeometry{
			X:      s.Width/2 - 100,
			Y:      s.Height/2 - 100,
			Width:  200,
			Height: 200,
		},
	}
	dc.raster = fynecanvas.NewRaster(dc.draw)
	dc.raster.ScaleMode = fynecanvas.ImageScalePixels
	dc.raster.SetMinSize(fyne.NewSize(float32(s.Width)/2, float32(s.Height)/2))
	dc.ExtendBaseWidget(dc)
	return dc
}

// OnGeometryChange sets the callback invoked on every drag step.
func (dc *DesignCanvas) OnGeometryChange(callback func(placement.OverlayGeometry)) {
	dc.onGeometryChange = callback
}

// SetArtwork sets the artwork image drawn inside the overlay.
func (dc *DesignCanvas) SetArtwork(img image.Image) {
	dc.artwork = img
	dc.Refresh()
}

// SetProductImage sets the backdrop image, already sized to the surface.
func (dc *DesignCanvas) SetProductImage(img image.Image) {
	dc.productImage = img
	dc.Refresh()
}

// SetAreas sets the print-area outlines from the active product.
func (dc *DesignCanvas) SetAreas(areas []product.PrintArea) {
	dc.areas = areas
	dc.Refresh()
}

// SetShowAreas toggles print-area outlines.
func (dc *DesignCanvas) SetShowAreas(show bool) {
	dc.showAreas = show
	dc.Refresh()
}

// SetGeometry moves the overlay without firing the change callback, for
// session-driven updates such as auto-placement.
func (dc *DesignCanvas) SetGeometry(g placement.OverlayGeometry) {
	dc.geom = g
	dc.Refresh()
}

// Geometry returns the current overlay geometry.
func (dc *DesignCanvas) Geometry() placement.OverlayGeometry {
	return dc.geom
}

// SetResult records the latest validation result; it controls the
// overlay outline color.
func (dc *DesignCanvas) SetResult(res placement.Result) {
	dc.result = res
	dc.Refresh()
}

// Refresh redraws the raster.
func (dc *DesignCanvas) Refresh() {
	dc.raster.Refresh()
	dc.BaseWidget.Refresh()
}

// widgetToSurface converts a widget position to surface pixels.
func (dc *DesignCanvas) widgetToSurface(pos fyne.Position) (float64, float64) {
	if dc.scale == 0 {
		return 0, 0
	}
	return (float64(pos.X)*float64(dc.pixelScale()) - dc.offX) / dc.scale,
		(float64(pos.Y)*float64(dc.pixelScale()) - dc.offY) / dc.scale
}

// pixelScale approximates the raster-pixel per widget-point ratio. The
// raster draw callback receives device pixels; drag events arrive in
// points. On a 1x display these match.
func (dc *DesignCanvas) pixelScale() float32 {
	size := dc.Size()
	if size.Width <= 0 {
		return 1
	}
	return float32(dc.lastW) / size.Width
}

// hitCorner returns the handle index at the surface point, or -1.
func (dc *DesignCanvas) hitCorner(sx, sy float64) int {
	corners := [4][2]float64{
		{dc.geom.X, dc.geom.Y},
		{dc.geom.X + dc.geom.Width, dc.geom.Y},
		{dc.geom.X + dc.geom.Width, dc.geom.Y + dc.geom.Height},
		{dc.geom.X, dc.geom.Y + dc.geom.Height},
	}
	r := handleSizePx/2 + handleGrabPad
	for i, c := range corners {
		if sx >= c[0]-r && sx <= c[0]+r && sy >= c[1]-r && sy <= c[1]+r {
			return i
		}
	}
	return -1
}

func (dc *DesignCanvas) inOverlay(sx, sy float64) bool {
	return sx >= dc.geom.X && sx <= dc.geom.X+dc.geom.Width &&
		sy >= dc.geom.Y && sy <= dc.geom.Y+dc.geom.Height
}

// Dragged implements fyne.Draggable: corner drags resize, interior
// drags move.
func (dc *DesignCanvas) Dragged(ev *fyne.DragEvent) {
	sx, sy := dc.widgetToSurface(ev.Position)

	if dc.mode == dragNone {
		// Hit-test at the drag origin, one event step back.
		ox := sx - float64(ev.Dragged.DX)*float64(dc.pixelScale())/dc.scale
		oy := sy - float64(ev.Dragged.DY)*float64(dc.pixelScale())/dc.scale
		if corner := dc.hitCorner(ox, oy); corner >= 0 {
			dc.mode = dragResize
			dc.corner = corner
		} else if dc.inOverlay(ox, oy) {
			dc.mode = dragMove
		} else {
			return
		}
		dc.startGeom = dc.geom
		dc.dragFromX = ox
		dc.dragFromY = oy
	}

	dx := sx - dc.dragFromX
	dy := sy - dc.dragFromY

	switch dc.mode {
	case dragMove:
		g := dc.startGeom
		g.X += dx
		g.Y += dy
		dc.applyGeometry(g)
	case dragResize:
		dc.applyGeometry(resizeByCorner(dc.startGeom, dc.corner, dx, dy))
	}
}

// DragEnd implements fyne.Draggable.
func (dc *DesignCanvas) DragEnd() {
	dc.mode = dragNone
}

func (dc *DesignCanvas) applyGeometry(g placement.OverlayGeometry) {
	if g.Width < minOverlayPx {
		g.Width = minOverlayPx
	}
	if g.Height < minOverlayPx {
		g.Height = minOverlayPx
	}
	dc.geom = g
	if dc.onGeometryChange != nil {
		dc.onGeometryChange(g)
	}
	dc.Refresh()
}

// resizeByCorner moves one corner by (dx,dy) keeping the opposite corner
// fixed. Crossing over is clamped by applyGeometry's minimum.
func resizeByCorner(g placement.OverlayGeometry, corner int, dx, dy float64) placement.OverlayGeometry {
	switch corner {
	case 0: // NW
		g.X += dx
		g.Y += dy
		g.Width -= dx
		g.Height -= dy
	case 1: // NE
		g.Y += dy
		g.Width += dx
		g.Height -= dy
	case 2: // SE
		g.Width += dx
		g.Height += dy
	case 3: // SW
		g.X += dx
		g.Width -= dx
		g.Height += dy
	}
	return g
}

var (
	surfaceColor    = color.RGBA{245, 245, 245, 255}
	backdropColor   = color.RGBA{60, 60, 60, 255}
	areaColor       = color.RGBA{120, 140, 255, 255}
	optimalColor    = color.RGBA{120, 140, 255, 160}
	validColor      = color.RGBA{0, 170, 60, 255}
	invalidColor    = color.RGBA{210, 40, 40, 255}
	handleFillColor = color.RGBA{255, 255, 255, 255}
)

// draw renders the surface letterboxed into the widget area.
func (dc *DesignCanvas) draw(w, h int) image.Image {
	dc.lastW = w
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(output, output.Bounds(), backdropColor)
	if w == 0 || h == 0 {
		return output
	}

	// Letterbox the fixed surface into the widget.
	scaleX := float64(w) / dc.surface.Width
	scaleY := float64(h) / dc.surface.Height
	dc.scale = scaleX
	if scaleY < scaleX {
		dc.scale = scaleY
	}
	surfW := dc.surface.Width * dc.scale
	surfH := dc.surface.Height * dc.scale
	dc.offX = (float64(w) - surfW) / 2
	dc.offY = (float64(h) - surfH) / 2

	surfRect := image.Rect(int(dc.offX), int(dc.offY), int(dc.offX+surfW), int(dc.offY+surfH))
	fillRect(output, surfRect, surfaceColor)

	if dc.productImage != nil {
		xdraw.ApproxBiLinear.Scale(output, surfRect, dc.productImage, dc.productImage.Bounds(), xdraw.Over, nil)
	}

	if dc.showAreas {
		for i := range dc.areas {
			dc.drawArea(output, &dc.areas[i])
		}
	}

	dc.drawArtwork(output)
	dc.drawOverlay(output)
	return output
}

// surfaceRectToImage converts a surface-pixel rect to output pixels.
func (dc *DesignCanvas) surfaceRectToImage(x, y, width, height float64) image.Rectangle {
	return image.Rect(
		int(dc.offX+x*dc.scale),
		int(dc.offY+y*dc.scale),
		int(dc.offX+(x+width)*dc.scale),
		int(dc.offY+(y+height)*dc.scale),
	)
}

// drawArea outlines one print area and marks its optimal point.
func (dc *DesignCanvas) drawArea(output *image.RGBA, area *product.PrintArea) {
	// Inches (center origin, y down) to surface pixels (top-left origin).
	x := dc.surface.Width/2 + placement.InchesToPixels(area.XMin)
	y := dc.surface.Height/2 + placement.InchesToPixels(area.YMin)
	width := placement.InchesToPixels(area.XMax - area.XMin)
	height := placement.InchesToPixels(area.YMax - area.YMin)

	drawDashedRect(output, dc.surfaceRectToImage(x, y, width, height), areaColor, 6)

	ox := dc.surface.Width/2 + placement.InchesToPixels(area.OptimalX)
	oy := dc.surface.Height/2 + placement.InchesToPixels(area.OptimalY)
	drawCross(output,
		int(dc.offX+ox*dc.scale),
		int(dc.offY+oy*dc.scale),
		int(5*dc.scale)+2, optimalColor)
}

// drawArtwork scales the artwork into the overlay rectangle.
func (dc *DesignCanvas) drawArtwork(output *image.RGBA) {
	if dc.artwork == nil {
		return
	}
	target := dc.surfaceRectToImage(dc.geom.X, dc.geom.Y, dc.geom.Width, dc.geom.Height)
	if target.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(output, target, dc.artwork, dc.artwork.Bounds(), xdraw.Over, nil)
}

// drawOverlay outlines the overlay and its corner handles. Green when
// the placement validates, red otherwise.
func (dc *DesignCanvas) drawOverlay(output *image.RGBA) {
	col := invalidColor
	if dc.result.Valid {
		col = validColor
	}

	rect := dc.surfaceRectToImage(dc.geom.X, dc.geom.Y, dc.geom.Width, dc.geom.Height)
	drawRectOutline(output, rect, col, 2)

	half := int(handleSizePx * dc.scale / 2)
	if half < 3 {
		half = 3
	}
	for _, c := range []image.Point{
		{rect.Min.X, rect.Min.Y},
		{rect.Max.X, rect.Min.Y},
		{rect.Max.X, rect.Max.Y},
		{rect.Min.X, rect.Max.Y},
	} {
		handle := image.Rect(c.X-half, c.Y-half, c.X+half, c.Y+half)
		fillRect(output, handle, handleFillColor)
		drawRectOutline(output, handle, col, 1)
	}
}

// CreateRenderer implements fyne.Widget.
func (dc *DesignCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &designCanvasRenderer{canvas: dc}
}

type designCanvasRenderer struct {
	canvas *DesignCanvas
}

func (r *designCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
}

func (r *designCanvasRenderer) MinSize() fyne.Size {
	return r.canvas.raster.MinSize()
}

func (r *designCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *designCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *designCanvasRenderer) Destroy() {}
