package render

import (
	polyclip "github.com/ctessum/polyclip-go"

	"chosenoffset.com/isovist/internal/core/visibility"
)

// ClipToViewport intersects poly with the rectangle [0,width]×[0,height].
// Visibility polygons reach out to the far enclosing square, which is many
// orders of magnitude larger than any screen; clipping keeps the coordinates
// within what float32 rasterisers handle. The result may hold several
// contours, or none when the polygon misses the viewport.
func ClipToViewport(poly *visibility.Polygon, width, height float64) [][]visibility.Point {
	if poly == nil || poly.Len() < 3 {
		return nil
	}

	subject := make(polyclip.Contour, poly.Len())
	for i, p := range poly.Points {
		subject[i] = polyclip.Point(p)
	}
	viewport := polyclip.Polygon{{
		{X: 0, Y: 0},
		{X: width, Y: 0},
		{X: width, Y: height},
		{X: 0, Y: height},
	}}

	result := polyclip.Polygon{subject}.Construct(polyclip.INTERSECTION, viewport)

	contours := make([][]visibility.Point, 0, len(result))
	for _, c := range result {
		if len(c) < 3 {
			continue
		}
		pts := make([]visibility.Point, len(c))
		for i, p := range c {
			pts[i] = visibility.Point(p)
		}
		contours = append(contours, pts)
	}
	return contours
}
