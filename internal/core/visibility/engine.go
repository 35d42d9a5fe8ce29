package visibility

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultEpsilon is the tolerance used for every approximate comparison when
// no other value is configured.
const DefaultEpsilon = 1e-8

// Engine computes visibility polygons. It holds only its tolerance, so one
// Engine may be shared by any number of goroutines.
type Engine struct {
	epsilon float64
	// radius is the half-side of the synthetic square around the observer.
	radius float64
	// splitCrossings breaks walls at their mutual crossings before sweeping.
	splitCrossings bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithEpsilon sets the tolerance for approximate equality and collinearity
// tests. The enclosing boundary is placed at 1/eps from the observer.
func WithEpsilon(eps float64) Option {
	return func(e *Engine) {
		e.epsilon = eps
		e.radius = 1 / eps
	}
}

// WithSplitCrossings makes the engine cut walls where they cross each other.
// The plain sweep only looks for a new nearest wall at endpoint angles, so
// walls that cross between two endpoints produce a wrong outline. Splitting
// costs O(n²); edges keep the index of the wall they were cut from.
func WithSplitCrossings() Option {
	return func(e *Engine) {
		e.splitCrossings = true
	}
}

// New creates an Engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		epsilon: DefaultEpsilon,
		radius:  1 / DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(e)
	}
	if !(e.epsilon > 0) || math.IsInf(e.epsilon, 0) {
		return nil, fmt.Errorf("%w: epsilon must be positive and finite, got %v", ErrInvalidConfig, e.epsilon)
	}
	return e, nil
}

var defaultEngine = &Engine{epsilon: DefaultEpsilon, radius: 1 / DefaultEpsilon}

// Compute returns the visibility polygon of observer among segments using
// DefaultEpsilon.
func Compute(segments []Segment, observer Point) (*Polygon, error) {
	return defaultEngine.Compute(segments, observer)
}

// Epsilon returns the engine's tolerance.
func (e *Engine) Epsilon() float64 {
	return e.epsilon
}

// Compute returns the visibility polygon of observer among segments.
//
// Zero-length segments and segments touching the observer are ignored. The
// result always has at least three vertices because the sweep is closed by
// a synthetic square far away from the observer.
func (e *Engine) Compute(segments []Segment, observer Point) (*Polygon, error) {
	if err := validate(segments, observer); err != nil {
		return nil, err
	}

	walls, src := e.translate(segments, observer)
	events := e.project(walls)
	sortEvents(events)
	events = append(events, event{dir: Point{X: 1, Y: 0}, id: closing, end: true})

	hull := e.sweep(walls, events)
	poly := e.assemble(hull, src, observer)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("visibility polygon computed",
			"segments", len(segments),
			"walls", len(walls),
			"events", len(events),
			"vertices", len(poly.Points),
			"observer", observer)
	}
	return poly, nil
}

// ComputeAll computes one polygon per observer concurrently. The returned
// slice is in observer order. The first error cancels the remaining work.
func (e *Engine) ComputeAll(ctx context.Context, segments []Segment, observers []Point) ([]*Polygon, error) {
	out := make([]*Polygon, len(observers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, obs := range observers {
		i, obs := i, obs
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			poly, err := e.Compute(segments, obs)
			if err != nil {
				return fmt.Errorf("observer %d: %w", i, err)
			}
			out[i] = poly
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func validate(segments []Segment, observer Point) error {
	if !observer.finite() {
		return fmt.Errorf("%w: observer (%v, %v) is not finite", ErrInvalidInput, observer.X, observer.Y)
	}
	for i, s := range segments {
		if !s.A.finite() || !s.B.finite() {
			return fmt.Errorf("%w: segment %d has a non-finite endpoint", ErrInvalidInput, i)
		}
	}
	return nil
}

// translate copies the segments into observer-relative coordinates and
// appends the four sides of the enclosing square, counter-clockwise from
// the top side. src maps every wall back to the input index it came from,
// or Unbounded for the square.
func (e *Engine) translate(segments []Segment, observer Point) (walls []Segment, src []int) {
	walls = make([]Segment, 0, len(segments)+4)
	src = make([]int, 0, len(segments)+4)
	for i, s := range segments {
		walls = append(walls, Segment{A: s.A.Sub(observer), B: s.B.Sub(observer)})
		src = append(src, i)
	}
	if e.splitCrossings {
		walls, src = e.breakCrossings(walls, src)
	}

	r := e.radius
	walls = append(walls,
		Seg(r, r, -r, r),
		Seg(-r, r, -r, -r),
		Seg(-r, -r, r, -r),
		Seg(r, -r, r, r),
	)
	src = append(src, Unbounded, Unbounded, Unbounded, Unbounded)
	return walls, src
}

// approxEqual compares with a tolerance relative to the smaller magnitude,
// but never tighter than epsilon itself so that comparisons against zero
// still have some slack.
func (e *Engine) approxEqual(x, y float64) bool {
	scale := math.Min(math.Abs(x), math.Abs(y))
	if scale < 1 {
		scale = 1
	}
	return math.Abs(x-y) <= e.epsilon*scale
}

func (e *Engine) pointsEqual(a, b Point) bool {
	return e.approxEqual(a.X, b.X) && e.approxEqual(a.Y, b.Y)
}

// relEqual compares two values of the same sign with a tolerance relative
// to the larger magnitude. It has no floor, so products of coordinates
// compare the same at any scene scale.
func (e *Engine) relEqual(x, y float64) bool {
	return math.Abs(x-y) <= e.epsilon*math.Max(math.Abs(x), math.Abs(y))
}

// parallel reports whether u and v point along one line, up to an angle of
// about epsilon radians.
func (e *Engine) parallel(u, v Point) bool {
	return math.Abs(u.Cross(v)) <= e.epsilon*math.Hypot(u.X, u.Y)*math.Hypot(v.X, v.Y)
}

// side returns the sign of the turn a→p→q, or 0 when a lies on the line
// through p and q.
func (e *Engine) side(a, p, q Point) int {
	u, v := p.Sub(a), q.Sub(a)
	switch det := u.Cross(v); {
	case e.parallel(u, v):
		return 0
	case det > 0:
		return 1
	}
	return -1
}

// collinear reports whether a, b and c lie on one line.
func (e *Engine) collinear(a, b, c Point) bool {
	return e.side(a, b, c) == 0
}

// cooriented reports whether a and b lie on the same side of the line
// through p and q. A point on the line counts as either side.
func (e *Engine) cooriented(a, b, p, q Point) bool {
	sa, sb := e.side(a, p, q), e.side(b, p, q)
	return sa == sb || sa == 0 || sb == 0
}
