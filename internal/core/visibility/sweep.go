package visibility

// vertex is a polygon corner together with the wall its outgoing edge lies on.
type vertex struct {
	p    Point
	edge int
}

// hull accumulates polygon corners and never stores the same point twice in
// a row.
type hull []vertex

// push appends p with outgoing edge id. When p repeats the last vertex only
// the outgoing edge is replaced.
func (e *Engine) push(h hull, p Point, id int) hull {
	if n := len(h); n > 0 && e.pointsEqual(h[n-1].p, p) {
		h[n-1].edge = id
		return h
	}
	return append(h, vertex{p: p, edge: id})
}

// sweep walks the sorted events counter-clockwise, keeping the set of walls
// the ray currently crosses, and records a corner wherever the nearest wall
// changes.
func (e *Engine) sweep(walls []Segment, events []event) hull {
	var (
		h      hull
		active []int
		prev   = -1
	)
	for i, ev := range events {
		switch {
		case ev.end && ev.id >= 0:
			active = remove(active, ev.id)
		case !ev.end:
			active = append(active, ev.id)
		}
		// Resolve only once every event at this angle has been applied.
		if i < len(events)-1 && CompareAngle(ev.dir, events[i+1].dir) == 0 {
			continue
		}

		best, n, d := e.nearest(walls, active, ev.dir)
		if best < 0 {
			continue
		}
		hit := ev.dir.Mul(n / d)

		switch {
		case len(h) == 0:
			h = e.push(h, hit, best)
		case best != prev || ev.id == closing:
			// The previous wall stops being nearest here. Its point on this
			// ray closes its edge, and the step over to the new wall is a gap.
			if from, ok := e.intersect(walls[prev], ev.dir); ok {
				h = e.push(h, from, Unbounded)
			}
			h = e.push(h, hit, best)
		}
		prev = best
	}
	return h
}

// nearest finds the active wall hit first by the ray along dir. The hit
// point is dir*n/d. It returns -1 when no wall is hit in front of the
// observer.
func (e *Engine) nearest(walls []Segment, active []int, dir Point) (best int, n, d float64) {
	best, n, d = -1, 0, 1
	for _, id := range active {
		w := walls[id]
		span := w.B.Sub(w.A)
		nn := w.A.Cross(span)
		dd := dir.Cross(span)
		if dd < 0 {
			nn, dd = -nn, -dd
		}
		if nn <= 0 || e.parallel(dir, span) {
			continue
		}
		if best < 0 {
			best, n, d = id, nn, dd
			continue
		}
		// nn/dd against n/d without dividing.
		cur, cand := n*dd, d*nn
		switch {
		case e.relEqual(cur, cand):
			// Same distance, usually a shared endpoint. Take the candidate
			// if it lies entirely on the observer's side of the current wall.
			c := walls[best]
			if e.cooriented(Point{}, w.A, c.A, c.B) && e.cooriented(Point{}, w.B, c.A, c.B) {
				best, n, d = id, nn, dd
			}
		case cur > cand:
			best, n, d = id, nn, dd
		}
	}
	return best, n, d
}

// intersect returns the point where the ray along dir meets the line of w.
func (e *Engine) intersect(w Segment, dir Point) (Point, bool) {
	span := w.B.Sub(w.A)
	if e.parallel(dir, span) {
		return Point{}, false
	}
	return dir.Mul(w.A.Cross(span) / dir.Cross(span)), true
}

// remove deletes id from the active set by swapping in the last element.
func remove(active []int, id int) []int {
	for i, a := range active {
		if a == id {
			last := len(active) - 1
			active[i] = active[last]
			return active[:last]
		}
	}
	return active
}
