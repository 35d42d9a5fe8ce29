package tilemap

import "chosenoffset.com/isovist/internal/core/visibility"

type edgeSide int

const (
	sideTop edgeSide = iota
	sideRight
	sideBottom
	sideLeft
)

// edge is one exposed side of a wall tile.
type edge struct {
	seg  visibility.Segment
	side edgeSide
}

// WallSegments extracts the outline of every contiguous block of wall tiles.
// Instead of four sides per tile it walks each region's perimeter and joins
// runs of edges along one grid line, so a long wall is a single segment.
func (m *Map) WallSegments() []visibility.Segment {
	var edges []edge
	for _, region := range m.regions() {
		edges = append(edges, m.perimeter(region)...)
	}

	merged := mergeEdges(edges)
	out := make([]visibility.Segment, len(merged))
	for i, e := range merged {
		out[i] = e.seg
	}
	return out
}

// regions finds all 4-connected groups of wall tiles in scan order.
func (m *Map) regions() [][]Coord {
	visited := make(map[Coord]bool)
	var regions [][]Coord

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Coord{X: x, Y: y}
			if visited[c] || !m.BlocksSight(x, y) {
				continue
			}
			regions = append(regions, m.floodFill(c, visited))
		}
	}
	return regions
}

// floodFill performs BFS to find all connected wall tiles
func (m *Map) floodFill(start Coord, visited map[Coord]bool) []Coord {
	var region []Coord
	queue := []Coord{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		region = append(region, current)

		neighbors := []Coord{
			{X: current.X, Y: current.Y - 1},
			{X: current.X + 1, Y: current.Y},
			{X: current.X, Y: current.Y + 1},
			{X: current.X - 1, Y: current.Y},
		}
		for _, n := range neighbors {
			if visited[n] || !m.BlocksSight(n.X, n.Y) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return region
}

// perimeter returns the sides of region's tiles that face open floor. Sides
// run clockwise around the tile in screen coordinates.
func (m *Map) perimeter(region []Coord) []edge {
	var edges []edge
	s := m.TileSize

	for _, c := range region {
		left, right := float64(c.X)*s, float64(c.X+1)*s
		top, bottom := float64(c.Y)*s, float64(c.Y+1)*s

		if !m.BlocksSight(c.X, c.Y-1) {
			edges = append(edges, edge{visibility.Seg(left, top, right, top), sideTop})
		}
		if !m.BlocksSight(c.X+1, c.Y) {
			edges = append(edges, edge{visibility.Seg(right, top, right, bottom), sideRight})
		}
		if !m.BlocksSight(c.X, c.Y+1) {
			edges = append(edges, edge{visibility.Seg(right, bottom, left, bottom), sideBottom})
		}
		if !m.BlocksSight(c.X-1, c.Y) {
			edges = append(edges, edge{visibility.Seg(left, bottom, left, top), sideLeft})
		}
	}
	return edges
}

// mergeEdges combines edges of the same side that continue one another.
func mergeEdges(edges []edge) []edge {
	merged := make([]bool, len(edges))
	var result []edge

	for i := range edges {
		if merged[i] {
			continue
		}
		current := edges[i]
		merged[i] = true

		for extended := true; extended; {
			extended = false
			for j := range edges {
				if merged[j] || edges[j].side != current.side {
					continue
				}
				other := edges[j].seg
				switch {
				case current.seg.B == other.A:
					current.seg.B = other.B
				case other.B == current.seg.A:
					current.seg.A = other.A
				default:
					continue
				}
				merged[j] = true
				extended = true
				break
			}
		}
		result = append(result, current)
	}
	return result
}
