package vector

import (
	"math"

	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// FromR3 converts a gonum r3.Vec
func FromR3(p r3.Vec) *Vec3 { return &Vec3{p.X, p.Y, p.Z} }

// R3 converts v to a gonum r3.Vec
func (v *Vec3) R3() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// FromCoord converts a go-geom coordinate. Missing ordinates are NaN, extra
// ordinates (such as M) are dropped.
func FromCoord(c geom.Coord) *Vec3 {
	at := func(i int) float64 {
		if i < len(c) {
			return c[i]
		}
		return math.NaN()
	}
	return &Vec3{at(0), at(1), at(2)}
}

// Coord converts v to an XYZ go-geom coordinate
func (v *Vec3) Coord() geom.Coord { return geom.Coord{v.X, v.Y, v.Z} }
