// Package export draws a visibility polygon with its scene to SVG or PNG.
package export

import (
	"image/color"

	"chosenoffset.com/isovist/internal/core/visibility"
	"chosenoffset.com/isovist/internal/render"
)

// Colours shared by every output.
var (
	Background    = color.RGBA{0x22, 0x33, 0x44, 0xff}
	RegionColor   = color.NRGBA{255, 255, 130, 128}
	WallColor     = color.RGBA{128, 198, 100, 255}
	ObserverColor = color.RGBA{255, 255, 0, 255}
)

// ObserverRadius is the size of the observer marker in pixels.
const ObserverRadius = 10

// Frame is one picture: a canvas, the walls, the observer and what it sees.
type Frame struct {
	Width    int
	Height   int
	Walls    []visibility.Segment
	Observer visibility.Point
	Polygon  *visibility.Polygon
}

// region returns the visible area clipped to the canvas.
func (f *Frame) region() [][]visibility.Point {
	return render.ClipToViewport(f.Polygon, float64(f.Width), float64(f.Height))
}
