package visibility

import "slices"

// breakCrossings cuts every wall at the points where another wall crosses
// or ends on its interior. Each piece keeps its parent's source index.
func (e *Engine) breakCrossings(walls []Segment, src []int) ([]Segment, []int) {
	outWalls := make([]Segment, 0, len(walls))
	outSrc := make([]int, 0, len(src))

	for i, w := range walls {
		var cuts []float64
		for j, o := range walls {
			if i == j {
				continue
			}
			if t, ok := e.crossingParam(w, o); ok {
				cuts = append(cuts, t)
			}
		}
		if len(cuts) == 0 {
			outWalls = append(outWalls, w)
			outSrc = append(outSrc, src[i])
			continue
		}

		slices.Sort(cuts)
		span := w.B.Sub(w.A)
		start := w.A
		for _, t := range cuts {
			p := w.A.Add(span.Mul(t))
			if e.pointsEqual(start, p) {
				continue
			}
			outWalls = append(outWalls, Segment{A: start, B: p})
			outSrc = append(outSrc, src[i])
			start = p
		}
		if !e.pointsEqual(start, w.B) {
			outWalls = append(outWalls, Segment{A: start, B: w.B})
			outSrc = append(outSrc, src[i])
		}
	}
	return outWalls, outSrc
}

// crossingParam returns t in (0, 1) such that w.A + t*(w.B-w.A) lies on o,
// when such a point exists away from w's own endpoints.
func (e *Engine) crossingParam(w, o Segment) (float64, bool) {
	r := w.B.Sub(w.A)
	s := o.B.Sub(o.A)
	if e.parallel(r, s) {
		return 0, false
	}
	denom := r.Cross(s)
	qp := o.A.Sub(w.A)
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t <= e.epsilon || t >= 1-e.epsilon {
		return 0, false
	}
	if u < -e.epsilon || u > 1+e.epsilon {
		return 0, false
	}
	return t, true
}
