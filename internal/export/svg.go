package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes f as an SVG document.
func WriteSVG(w io.Writer, f *Frame) error {
	canvas := svg.New(w)
	canvas.Start(f.Width, f.Height)
	canvas.Rect(0, 0, f.Width, f.Height, "fill:"+rgb(Background))

	regionStyle := fmt.Sprintf("fill:%s;fill-opacity:%.2f", rgb(RegionColor), float64(RegionColor.A)/255)
	for _, contour := range f.region() {
		xs := make([]int, len(contour))
		ys := make([]int, len(contour))
		for i, p := range contour {
			xs[i], ys[i] = round(p.X), round(p.Y)
		}
		canvas.Polygon(xs, ys, regionStyle)
	}

	wallStyle := "stroke:" + rgb(WallColor) + ";stroke-width:1"
	for _, s := range f.Walls {
		canvas.Line(round(s.A.X), round(s.A.Y), round(s.B.X), round(s.B.Y), wallStyle)
	}

	canvas.Circle(round(f.Observer.X), round(f.Observer.Y), ObserverRadius, "fill:"+rgb(ObserverColor))
	canvas.End()
	return nil
}

func rgb(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
}

func round(v float64) int {
	return int(math.Round(v))
}
