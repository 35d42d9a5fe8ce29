package visibility

// quadrant places a direction into one of four half-open 90° spans swept
// counter-clockwise from the positive x-axis. The positive x-axis is in
// quadrant 1 and the negative x-axis in quadrant 3. The zero vector gets 0.
func quadrant(p Point) int {
	switch {
	case p.X > 0 && p.Y >= 0:
		return 1
	case p.X <= 0 && p.Y > 0:
		return 2
	case p.X < 0 && p.Y <= 0:
		return 3
	case p.X >= 0 && p.Y < 0:
		return 4
	}
	return 0
}

// CompareAngle orders two direction vectors by their counter-clockwise angle
// from the positive x-axis, in [0, 2π). It returns -1 when a comes first,
// +1 when b comes first and 0 when both point the same way.
//
// No angle is ever computed: the quadrant decides across spans, and the sign
// of the cross product decides within one, where the two directions are
// always less than π apart.
func CompareAngle(a, b Point) int {
	qa, qb := quadrant(a), quadrant(b)
	if qa != qb {
		if qa < qb {
			return -1
		}
		return 1
	}
	p := a.X * b.Y
	q := a.Y * b.X
	switch {
	case p > q:
		return -1
	case p < q:
		return 1
	}
	return 0
}
