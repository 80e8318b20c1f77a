package transform

import (
	"math"

	"vec3/internal/geometry/vector"
)

// Offset shifts a point by a constant delta.
type Offset struct {
	Delta *vector.Vec3
}

// Apply returns p + Delta
func (o Offset) Apply(p *vector.Vec3) (*vector.Vec3, string) {
	return p.Plus(o.Delta), ""
}

// OffsetFromHeading creates an Offset of length dist on the xy plane.
// Heading is in degrees clockwise from +Y (0° = +Y, 90° = +X).
func OffsetFromHeading(dist, headingDeg float64) Offset {
	rad := (90 - headingDeg) * math.Pi / 180
	return Offset{Delta: vector.NewVec3(dist*math.Cos(rad), dist*math.Sin(rad), 0)}
}

// Heading returns the xy-plane heading of d in degrees, in [0, 360).
// 0 = +Y, 90 = +X. A delta with no xy extent has heading 0.
func Heading(d *vector.Vec3) float64 {
	if math.Abs(d.X) < 1e-9 && math.Abs(d.Y) < 1e-9 {
		return 0
	}
	deg := math.Atan2(d.X, d.Y) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
