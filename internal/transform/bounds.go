package transform

import (
	"github.com/pkg/errors"

	"vec3/internal/geometry/vector"
	"vec3/internal/mathutil"
)

// Clamp keeps a point inside the axis-aligned box [Min, Max].
type Clamp struct {
	Min, Max *vector.Vec3
}

// Apply clips each component into the box. A warning is returned when the
// point had to move. A Clamp missing either corner leaves the point as is.
func (c Clamp) Apply(p *vector.Vec3) (*vector.Vec3, string) {
	if c.Min == nil || c.Max == nil {
		return p.Clone(), "clamp: no box configured"
	}
	q := p.Max(c.Min).Min(c.Max)
	if !q.Equals(p) {
		return q, "clamp: point clipped to box"
	}
	return q, ""
}

// Wrap folds a point into the box [0, size) on every axis using the
// Euclidean modulus, so leaving one face re-enters through the opposite one.
type Wrap struct {
	size *vector.Vec3
}

// NewWrap creates a Wrap over size. Every component must be non-zero.
func NewWrap(size *vector.Vec3) (Wrap, error) {
	for i, axis := range []string{"x", "y", "z"} {
		if size.At(i) == 0 {
			return Wrap{}, errors.Wrapf(mathutil.ErrZeroModulus, "wrap %s", axis)
		}
	}
	return Wrap{size: size.Clone()}, nil
}

// Apply returns p mod size. A zero Wrap returns a copy of p with a warning.
func (w Wrap) Apply(p *vector.Vec3) (*vector.Vec3, string) {
	if w.size == nil {
		return p.Clone(), "wrap: no size configured"
	}
	q, err := p.Modulus(w.size)
	if err != nil {
		return p.Clone(), "wrap: " + err.Error()
	}
	return q, ""
}

// SnapMode selects how Snap rounds components.
type SnapMode int

const (
	SnapFloor SnapMode = iota
	SnapRound
)

// Snap moves a point onto the integer grid.
type Snap struct {
	Mode SnapMode
}

// Apply floors or rounds every component per Mode
func (s Snap) Apply(p *vector.Vec3) (*vector.Vec3, string) {
	if s.Mode == SnapRound {
		return p.Rounded(), ""
	}
	return p.Floored(), ""
}
