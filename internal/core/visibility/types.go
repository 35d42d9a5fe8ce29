package visibility

import "math"

// Unbounded tags a polygon edge that does not lie on any input segment:
// either a gap between two visible walls or the synthetic enclosing boundary.
const Unbounded = -1

// Point represents a 2D point in space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Segment represents an opaque wall between two points.
// A segment's identity is its index in the slice handed to Compute.
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// Seg is a convenience function to create a Segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Point{X: x1, Y: y1}, B: Point{X: x2, Y: y2}}
}

// Polygon is a visibility polygon. Points are ordered counter-clockwise
// around the observer; Edges[i] is the index of the input segment that the
// edge Points[i] → Points[(i+1)%len(Points)] lies on, or Unbounded.
type Polygon struct {
	Points []Point `json:"points"`
	Edges  []int   `json:"edges"`
}

// Len returns the number of vertices (and edges).
func (p *Polygon) Len() int {
	return len(p.Points)
}

// Edge returns the endpoints and source id of edge i.
func (p *Polygon) Edge(i int) (a, b Point, id int) {
	n := len(p.Points)
	return p.Points[i], p.Points[(i+1)%n], p.Edges[i]
}

// Contains tests if a point is inside the polygon using the ray casting algorithm
func (p *Polygon) Contains(point Point) bool {
	inside := false
	j := len(p.Points) - 1

	for i := 0; i < len(p.Points); i++ {
		xi, yi := p.Points[i].X, p.Points[i].Y
		xj, yj := p.Points[j].X, p.Points[j].Y

		if ((yi > point.Y) != (yj > point.Y)) &&
			(point.X < (xj-xi)*(point.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// Area returns the signed area of the polygon; positive when the vertices
// run counter-clockwise.
func (p *Polygon) Area() float64 {
	var sum float64
	n := len(p.Points)
	for i := 0; i < n; i++ {
		sum += p.Points[i].Cross(p.Points[(i+1)%n])
	}
	return sum / 2
}
