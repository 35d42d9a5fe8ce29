package render

import (
	"math"
	"testing"

	"chosenoffset.com/isovist/internal/core/visibility"
)

func area(pts []visibility.Point) float64 {
	poly := visibility.Polygon{Points: pts}
	return math.Abs(poly.Area())
}

func TestClipToViewportInside(t *testing.T) {
	walls := []visibility.Segment{
		visibility.Seg(400, 300, 300, 400),
		visibility.Seg(400, 300, 400, 400),
		visibility.Seg(300, 400, 400, 400),
	}
	poly, err := visibility.Compute(walls, visibility.Pt(375, 375))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	contours := ClipToViewport(poly, 500, 500)
	if len(contours) != 1 {
		t.Fatalf("Expected 1 contour, got %d", len(contours))
	}
	if got := area(contours[0]); math.Abs(got-5000) > 1e-3 {
		t.Errorf("Expected area 5000, got %g", got)
	}
}

func TestClipToViewportUnbounded(t *testing.T) {
	poly, err := visibility.Compute(nil, visibility.Pt(250, 250))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	contours := ClipToViewport(poly, 500, 400)
	if len(contours) != 1 {
		t.Fatalf("Expected 1 contour, got %d", len(contours))
	}
	if got := area(contours[0]); math.Abs(got-200000) > 1e-3 {
		t.Errorf("Expected the whole viewport, got area %g", got)
	}
	for _, p := range contours[0] {
		if p.X < -1e-9 || p.X > 500+1e-9 || p.Y < -1e-9 || p.Y > 400+1e-9 {
			t.Errorf("Point %v lies outside the viewport", p)
		}
	}
}

func TestClipToViewportOutside(t *testing.T) {
	poly := &visibility.Polygon{
		Points: []visibility.Point{visibility.Pt(600, 600), visibility.Pt(700, 600), visibility.Pt(700, 700)},
		Edges:  []int{-1, -1, -1},
	}
	if contours := ClipToViewport(poly, 500, 500); len(contours) != 0 {
		t.Errorf("Expected no contours, got %v", contours)
	}
	if contours := ClipToViewport(nil, 500, 500); contours != nil {
		t.Errorf("Expected nil for a nil polygon, got %v", contours)
	}
}
