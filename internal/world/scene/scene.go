// Package scene describes a set of walls and an observer, loaded from JSON
// or TOML files.
package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"chosenoffset.com/isovist/internal/core/visibility"
	"chosenoffset.com/isovist/internal/world/tilemap"
)

// Format is a scene file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for files that are neither JSON nor TOML.
var ErrUnknownFormat = errors.New("scene: unknown format")

// Rect is an axis-aligned box whose four sides are walls.
type Rect struct {
	X      float64 `json:"x" toml:"x"`
	Y      float64 `json:"y" toml:"y"`
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Tiles is a character grid; see tilemap.Wall.
type Tiles struct {
	Size float64  `json:"size" toml:"size"`
	Rows []string `json:"rows" toml:"rows"`
}

// Scene is everything needed to compute and draw one visibility polygon.
type Scene struct {
	Name     string               `json:"name" toml:"name"`
	Width    int                  `json:"width" toml:"width"`
	Height   int                  `json:"height" toml:"height"`
	Observer visibility.Point     `json:"observer" toml:"observer"`
	Segments []visibility.Segment `json:"segments" toml:"segments"`
	Rects    []Rect               `json:"rects,omitempty" toml:"rects"`
	Tiles    *Tiles               `json:"tiles,omitempty" toml:"tiles"`
}

// Load reads a scene file. The format is taken from the file extension.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	s, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// FormatOf picks the format for a file name.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Decode parses and validates a scene.
func Decode(r io.Reader, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, err
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %s", undecoded[0])
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return &s, nil
}

// Validate checks dimensions, coordinates and the tile grid.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid scene dimensions: %dx%d", s.Width, s.Height)
	}
	if !finite(s.Observer.X, s.Observer.Y) {
		return fmt.Errorf("observer is not finite: %v", s.Observer)
	}
	for i, seg := range s.Segments {
		if !finite(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y) {
			return fmt.Errorf("segment %d is not finite", i)
		}
	}
	for i, r := range s.Rects {
		if !finite(r.X, r.Y, r.Width, r.Height) {
			return fmt.Errorf("rect %d is not finite", i)
		}
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("rect %d has invalid size %vx%v", i, r.Width, r.Height)
		}
	}
	if s.Tiles != nil {
		if _, err := tilemap.Parse(s.Tiles.Rows, s.Tiles.Size); err != nil {
			return err
		}
	}
	return nil
}

// Walls flattens explicit segments, rectangle sides and tile outlines, in
// that order. The position in the result is the id reported by
// visibility.Polygon.Edges.
func (s *Scene) Walls() []visibility.Segment {
	walls := make([]visibility.Segment, 0, len(s.Segments)+4*len(s.Rects))
	walls = append(walls, s.Segments...)
	for _, r := range s.Rects {
		walls = append(walls, r.Segments()...)
	}
	if s.Tiles != nil {
		// Validate already checked the grid.
		if m, err := tilemap.Parse(s.Tiles.Rows, s.Tiles.Size); err == nil {
			walls = append(walls, m.WallSegments()...)
		}
	}
	return walls
}

// Segments returns the four sides of r.
func (r Rect) Segments() []visibility.Segment {
	nw := visibility.Pt(r.X, r.Y)
	ne := visibility.Pt(r.X+r.Width, r.Y)
	sw := visibility.Pt(r.X, r.Y+r.Height)
	se := visibility.Pt(r.X+r.Width, r.Y+r.Height)
	return []visibility.Segment{
		{A: nw, B: ne},
		{A: nw, B: sw},
		{A: ne, B: se},
		{A: sw, B: se},
	}
}

// Demo is the classic demo layout: a dashed ring of radius 100 around the
// centre and a right triangle in the lower right, observed from the centre.
func Demo(width, height int) *Scene {
	const (
		dt = 0.1
		r  = 100.0
	)
	cx, cy := float64(width)/2, float64(height)/2

	s := &Scene{
		Name:     "demo",
		Width:    width,
		Height:   height,
		Observer: visibility.Pt(cx, cy),
	}
	for i := 0; float64(i)*dt+dt < 2*math.Pi; i++ {
		t := float64(i) * dt
		s.Segments = append(s.Segments, visibility.Seg(
			r*math.Cos(t)+cx, r*math.Sin(t)+cy,
			r*math.Cos(t-dt/2)+cx, r*math.Sin(t-dt/2)+cy,
		))
	}
	s.Segments = append(s.Segments,
		visibility.Seg(400, 300, 300, 400),
		visibility.Seg(400, 300, 400, 400),
		visibility.Seg(300, 400, 400, 400),
	)
	return s
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
