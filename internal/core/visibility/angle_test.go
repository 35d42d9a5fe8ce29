package visibility

import (
	"math"
	"math/rand"
	"testing"
)

func TestQuadrant(t *testing.T) {
	tests := []struct {
		p    Point
		want int
	}{
		{Pt(1, 0), 1},
		{Pt(1, 1), 1},
		{Pt(0, 1), 2},
		{Pt(-1, 1), 2},
		{Pt(-1, 0), 3},
		{Pt(-1, -1), 3},
		{Pt(0, -1), 4},
		{Pt(1, -1), 4},
		{Pt(0, 0), 0},
	}
	for _, tt := range tests {
		if got := quadrant(tt.p); got != tt.want {
			t.Errorf("quadrant(%v): expected %d, got %d", tt.p, tt.want, got)
		}
	}
}

func TestCompareAngle(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Pt(1, 0), Pt(0, 1), -1},
		{Pt(0, 1), Pt(1, 0), 1},
		{Pt(1, 2), Pt(2, 4), 0},
		{Pt(-3, 0), Pt(-1, 0), 0},
		{Pt(1, 0), Pt(-1, 0), -1},
		{Pt(1, -1e-9), Pt(1, 0), 1},
		{Pt(1, 1), Pt(1, 2), -1},
		{Pt(-1, -1), Pt(1, -1), -1},
		{Pt(0, -1), Pt(1, -1), -1},
	}
	for _, tt := range tests {
		if got := CompareAngle(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareAngle(%v, %v): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestCompareAngleMatchesAtan2(t *testing.T) {
	angle := func(p Point) float64 {
		a := math.Atan2(p.Y, p.X)
		if a < 0 {
			a += 2 * math.Pi
		}
		return a
	}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		a := Pt(rng.Float64()*200-100, rng.Float64()*200-100)
		b := Pt(rng.Float64()*200-100, rng.Float64()*200-100)
		aa, ab := angle(a), angle(b)
		if math.Abs(aa-ab) < 1e-9 {
			continue
		}
		want := 1
		if aa < ab {
			want = -1
		}
		if got := CompareAngle(a, b); got != want {
			t.Fatalf("CompareAngle(%v, %v): expected %d, got %d", a, b, want, got)
		}
	}
}
