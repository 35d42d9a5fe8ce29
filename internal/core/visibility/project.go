package visibility

import (
	"context"
	"log/slog"
	"slices"
)

// closing is the id of the event appended after sorting that brings the
// sweep back to angle 0 and stitches the polygon shut.
const closing = -1

// event marks where a wall enters or leaves the sweep ray.
type event struct {
	dir Point // observer-relative
	id  int
	end bool
}

// project turns every wall into sweep events.
func (e *Engine) project(walls []Segment) []event {
	events := make([]event, 0, 2*len(walls)+4)
	for id, w := range walls {
		events = e.projectWall(events, id, w.A, w.B)
	}
	return events
}

// projectWall classifies one observer-relative wall a→b and appends its
// events. The sweep starts on the positive x-axis, so that ray is the cut
// where angles wrap from 2π back to 0. The cases are tried in order and
// exactly one of them emits.
func (e *Engine) projectWall(events []event, id int, a, b Point) []event {
	origin := Point{}
	if e.pointsEqual(a, origin) || e.pointsEqual(b, origin) || e.pointsEqual(a, b) {
		if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.Debug("visibility: skipping degenerate segment", "id", id, "a", a, "b", b)
		}
		return events
	}

	// Straddles the cut: active from the lower endpoint up to 2π and again
	// from 0 to the upper endpoint.
	if a.Y > 0 && b.Y < 0 {
		if q, ok := e.cutCrossing(a, b); ok {
			return e.split(events, id, b, q, a)
		}
	}
	if a.Y < 0 && b.Y > 0 {
		if q, ok := e.cutCrossing(a, b); ok {
			return e.split(events, id, a, q, b)
		}
	}

	// Touches the cut from below: it never ends before the revolution does.
	if b.X > 0 && a.Y < 0 && e.approxEqual(b.Y, 0) {
		return append(events, event{dir: a, id: id})
	}
	if a.X > 0 && b.Y < 0 && e.approxEqual(a.Y, 0) {
		return append(events, event{dir: b, id: id})
	}

	switch CompareAngle(a, b) {
	case -1:
		events = append(events, event{dir: a, id: id}, event{dir: b, id: id, end: true})
	case 1:
		events = append(events, event{dir: b, id: id}, event{dir: a, id: id, end: true})
	}
	// Equal angles: the wall points straight at the observer and hides nothing.
	return events
}

// cutCrossing returns where the line through a and b meets the x-axis, and
// whether that is on the positive side beyond epsilon.
func (e *Engine) cutCrossing(a, b Point) (Point, bool) {
	x := a.X - a.Y*(b.X-a.X)/(b.Y-a.Y)
	return Point{X: x, Y: 0}, x > e.epsilon
}

func (e *Engine) split(events []event, id int, lower, q, upper Point) []event {
	if !e.pointsEqual(lower, q) {
		events = append(events, event{dir: lower, id: id})
	}
	if !e.pointsEqual(upper, q) {
		events = append(events,
			event{dir: q, id: id},
			event{dir: upper, id: id, end: true})
	}
	return events
}

// sortEvents orders events by angle; at equal angles end events go first.
// The sort is stable so equal events keep the order of the input segments.
func sortEvents(events []event) {
	slices.SortStableFunc(events, func(p, q event) int {
		if c := CompareAngle(p.dir, q.dir); c != 0 {
			return c
		}
		switch {
		case p.end && !q.end:
			return -1
		case !p.end && q.end:
			return 1
		}
		return 0
	})
}
