package visibility

import (
	"math"
	"testing"
)

func near(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// findVertex returns the index of the vertex at p, or -1.
func findVertex(poly *Polygon, p Point) int {
	for i, v := range poly.Points {
		if near(v, p, 1e-6) {
			return i
		}
	}
	return -1
}

// edgeID returns the id of the edge from a to b, or fails the test when the
// polygon has no such edge.
func edgeID(t *testing.T, poly *Polygon, a, b Point) int {
	t.Helper()
	i := findVertex(poly, a)
	if i < 0 {
		t.Fatalf("Expected vertex %v in polygon %v", a, poly.Points)
	}
	_, to, id := poly.Edge(i)
	if !near(to, b, 1e-6) {
		t.Fatalf("Expected edge %v -> %v, but %v is followed by %v", a, b, a, to)
	}
	return id
}

func distToSegment(p Point, s Segment) float64 {
	span := s.B.Sub(s.A)
	l2 := span.Dot(span)
	if l2 == 0 {
		return p.Distance(s.A)
	}
	t := p.Sub(s.A).Dot(span) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Distance(s.A.Add(span.Mul(t)))
}

func sign(x, scale float64) int {
	switch {
	case x > 1e-9*scale:
		return 1
	case x < -1e-9*scale:
		return -1
	}
	return 0
}

// properCross reports whether the open segments pq and s cross at a single
// interior point of both.
func properCross(p, q Point, s Segment) bool {
	r := q.Sub(p)
	w := s.B.Sub(s.A)
	scale := math.Sqrt(r.Dot(r) * w.Dot(w))
	d1 := sign(r.Cross(s.A.Sub(p)), scale)
	d2 := sign(r.Cross(s.B.Sub(p)), scale)
	d3 := sign(w.Cross(p.Sub(s.A)), scale)
	d4 := sign(w.Cross(q.Sub(s.A)), scale)
	return d1*d2 < 0 && d3*d4 < 0
}

// checkPolygon verifies closure, edge attribution and star-shapedness.
func checkPolygon(t *testing.T, segments []Segment, observer Point, poly *Polygon) {
	t.Helper()

	n := poly.Len()
	if n < 3 {
		t.Fatalf("Expected at least 3 vertices, got %d", n)
	}
	if len(poly.Edges) != n {
		t.Fatalf("Expected %d edge ids, got %d", n, len(poly.Edges))
	}

	for i := 0; i < n; i++ {
		a, b, id := poly.Edge(i)
		if near(a, b, 1e-9) {
			t.Errorf("Vertices %d and %d coincide at %v", i, (i+1)%n, a)
		}
		if id < Unbounded || id >= len(segments) {
			t.Errorf("Edge %d has out of range id %d", i, id)
			continue
		}
		if id >= 0 {
			if d := distToSegment(a, segments[id]); d > 1e-6 {
				t.Errorf("Edge %d start %v is %g away from segment %d", i, a, d, id)
			}
			if d := distToSegment(b, segments[id]); d > 1e-6 {
				t.Errorf("Edge %d end %v is %g away from segment %d", i, b, d, id)
			}
		}

		// Vertices and edge midpoints must be reachable from the observer.
		for _, v := range []Point{a, a.Add(b).Mul(0.5)} {
			for k, s := range segments {
				if properCross(observer, v, s) {
					t.Errorf("Segment %d blocks the view from %v to %v", k, observer, v)
				}
			}
		}
	}
}

// raySegmentIntersection checks if a ray intersects a line segment
// Returns: (intersects bool, distance float64, intersection point Point)
func raySegmentIntersection(origin Point, dx, dy float64, seg Segment) (bool, float64, Point) {
	dir := Point{X: dx, Y: dy}
	span := seg.B.Sub(seg.A)

	denominator := dir.Cross(span)
	if math.Abs(denominator) < 1e-12 {
		return false, 0, Point{}
	}

	w := seg.A.Sub(origin)
	t := w.Cross(span) / denominator
	u := w.Cross(dir) / denominator

	if u >= 0 && u <= 1 && t > 0 {
		return true, t, origin.Add(dir.Mul(t))
	}
	return false, 0, Point{}
}

// castRay returns the distance to the closest of segments along angle.
func castRay(origin Point, angle float64, segments []Segment) float64 {
	dx, dy := math.Cos(angle), math.Sin(angle)
	closest := math.Inf(1)
	for _, s := range segments {
		if ok, dist, _ := raySegmentIntersection(origin, dx, dy, s); ok && dist < closest {
			closest = dist
		}
	}
	return closest
}

// boundarySquare returns the enclosing square the default engine uses.
func boundarySquare(observer Point, r float64) []Segment {
	return []Segment{
		Seg(observer.X+r, observer.Y+r, observer.X-r, observer.Y+r),
		Seg(observer.X-r, observer.Y+r, observer.X-r, observer.Y-r),
		Seg(observer.X-r, observer.Y-r, observer.X+r, observer.Y-r),
		Seg(observer.X+r, observer.Y-r, observer.X+r, observer.Y+r),
	}
}

// compareWithRayCasting casts rays in many directions and checks that the
// polygon boundary sits where the nearest wall is.
func compareWithRayCasting(t *testing.T, segments []Segment, observer Point, poly *Polygon, r float64) {
	t.Helper()

	scene := append(append([]Segment{}, segments...), boundarySquare(observer, r)...)
	var edges []Segment
	for i := 0; i < poly.Len(); i++ {
		a, b, _ := poly.Edge(i)
		edges = append(edges, Segment{A: a, B: b})
	}

	var corners []float64
	for _, s := range scene {
		corners = append(corners,
			math.Atan2(s.A.Y-observer.Y, s.A.X-observer.X),
			math.Atan2(s.B.Y-observer.Y, s.B.X-observer.X))
	}

	const rays = 720
	checked, hits := 0, 0
	for k := 0; k < rays; k++ {
		angle := -math.Pi + (float64(k)+0.37)*2*math.Pi/rays
		skip := false
		for _, c := range corners {
			if d := math.Abs(math.Remainder(angle-c, 2*math.Pi)); d < 1e-4 {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		want := castRay(observer, angle, scene)
		got := castRay(observer, angle, edges)
		if math.Abs(got-want) > 1e-6*math.Max(1, want) {
			t.Errorf("Ray at %.4f rad: expected boundary at distance %g, got %g", angle, want, got)
		}
		if !math.IsInf(want, 1) {
			hits++
		}
		checked++
	}
	if checked < rays/2 {
		t.Fatalf("Expected to check most rays, only checked %d", checked)
	}
	if hits != checked {
		t.Fatalf("Expected every ray to hit the enclosing square, %d of %d missed", checked-hits, checked)
	}
}

func TestCastRayHitsFrontalWall(t *testing.T) {
	walls := []Segment{Seg(5, -1, 5, 1)}

	ok, dist, hit := raySegmentIntersection(Point{}, 1, 0, walls[0])
	if !ok {
		t.Fatalf("Expected ray along +x to hit the wall at x=5")
	}
	if dist != 5 || hit != Pt(5, 0) {
		t.Errorf("Expected hit at distance 5 and point (5, 0), got %g and %v", dist, hit)
	}
	if got := castRay(Point{}, 0, walls); math.Abs(got-5) > 1e-12 {
		t.Errorf("Expected castRay to return 5, got %g", got)
	}
	if got := castRay(Point{}, math.Pi, walls); !math.IsInf(got, 1) {
		t.Errorf("Expected the ray pointing away to miss, got %g", got)
	}
}
