package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"chosenoffset.com/isovist/internal/core/visibility"
)

// RenderPNG rasterises f into a new image.
func RenderPNG(f *Frame) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	for _, contour := range f.region() {
		fillPath(dst, contour, RegionColor)
	}
	for _, s := range f.Walls {
		fillPath(dst, lineQuad(s, 1), WallColor)
	}
	fillPath(dst, circle(f.Observer, ObserverRadius, 32), ObserverColor)
	return dst
}

// WritePNG rasterises f and encodes it as PNG.
func WritePNG(w io.Writer, f *Frame) error {
	return png.Encode(w, RenderPNG(f))
}

func fillPath(dst *image.RGBA, pts []visibility.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// lineQuad returns the outline of s drawn with the given width.
func lineQuad(s visibility.Segment, width float64) []visibility.Point {
	d := s.B.Sub(s.A)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return nil
	}
	n := visibility.Pt(-d.Y/l, d.X/l).Mul(width / 2)
	return []visibility.Point{s.A.Add(n), s.B.Add(n), s.B.Sub(n), s.A.Sub(n)}
}

func circle(c visibility.Point, r float64, sides int) []visibility.Point {
	pts := make([]visibility.Point, sides)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(sides)
		pts[i] = visibility.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}
