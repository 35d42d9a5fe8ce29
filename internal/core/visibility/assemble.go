package visibility

// assemble closes the swept hull, hides the enclosing square's ids, merges
// collinear runs along one wall and moves the result back to world space.
func (e *Engine) assemble(h hull, src []int, observer Point) *Polygon {
	if k := len(h); k > 1 {
		if e.pointsEqual(h[k-1].p, h[0].p) {
			h = h[:k-1]
		} else {
			// Both ends lie on the starting ray, so the closing edge is a
			// radial gap.
			h[k-1].edge = Unbounded
		}
	}
	for i := range h {
		if h[i].edge != Unbounded {
			h[i].edge = src[h[i].edge]
		}
	}
	h = e.mergeCollinear(h)

	poly := &Polygon{
		Points: make([]Point, len(h)),
		Edges:  make([]int, len(h)),
	}
	for i, v := range h {
		poly.Points[i] = v.p.Add(observer)
		poly.Edges[i] = v.edge
	}
	return poly
}

// mergeCollinear drops every vertex that sits strictly between its
// neighbours on a straight run of edges with the same source.
func (e *Engine) mergeCollinear(h hull) hull {
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(h) && len(h) > 3; i++ {
			k := len(h)
			prev, next := h[(i+k-1)%k], h[(i+1)%k]
			cur := h[i]
			if prev.edge != cur.edge || !e.collinear(prev.p, cur.p, next.p) {
				continue
			}
			if prev.p.Sub(cur.p).Dot(next.p.Sub(cur.p)) >= 0 {
				continue
			}
			h = append(h[:i], h[i+1:]...)
			i--
			changed = true
		}
	}
	return h
}
