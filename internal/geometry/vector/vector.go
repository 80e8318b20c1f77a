// Package vector provides 3D vector operations
//
// Methods that mutate the receiver return it so calls can be chained:
//
//	v := vector.NewVec3(1, 2, 3).Translate(1, 0, 0).Scale(2)
//
// Every other method leaves its operands untouched and returns a new vector.
// A Vec3 carries no lock; share one across goroutines only with external
// synchronization.
package vector

import (
	"math"

	"github.com/pkg/errors"

	"vec3/internal/mathutil"
)

// NewVec3 creates a new 3D vector with the given components
func NewVec3(x, y, z float64) *Vec3 {
	return &Vec3{X: x, Y: y, Z: z}
}

// Vec3 represents a 3D vector
type Vec3 struct{ X, Y, Z float64 }

// IsZero reports whether all three components are exactly zero
func (v *Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// At returns the component at index i (0=X, 1=Y, 2=Z), NaN for any other index
func (v *Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return math.NaN()
}

// XY returns the x and y components
func (v *Vec3) XY() [2]float64 { return [2]float64{v.X, v.Y} }

// XZ returns the x and z components
func (v *Vec3) XZ() [2]float64 { return [2]float64{v.X, v.Z} }

// YZ returns the y and z components
func (v *Vec3) YZ() [2]float64 { return [2]float64{v.Y, v.Z} }

// XZY returns a copy with the Y and Z components swapped
func (v *Vec3) XZY() *Vec3 { return &Vec3{v.X, v.Z, v.Y} }

// Array returns the components in x, y, z order
func (v *Vec3) Array() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Set overwrites all three components
func (v *Vec3) Set(x, y, z float64) *Vec3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Update copies the components of o into v
func (v *Vec3) Update(o *Vec3) *Vec3 {
	v.X, v.Y, v.Z = o.X, o.Y, o.Z
	return v
}

// Rounded returns a copy with every component rounded to the nearest integer
func (v *Vec3) Rounded() *Vec3 { return &Vec3{round(v.X), round(v.Y), round(v.Z)} }

// Round rounds every component to the nearest integer in place
func (v *Vec3) Round() *Vec3 {
	v.X, v.Y, v.Z = round(v.X), round(v.Y), round(v.Z)
	return v
}

// Floored returns a copy with every component floored
func (v *Vec3) Floored() *Vec3 {
	return &Vec3{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)}
}

// Floor floors every component in place
func (v *Vec3) Floor() *Vec3 {
	v.X, v.Y, v.Z = math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)
	return v
}

// Offset returns a copy shifted by the given deltas
func (v *Vec3) Offset(dx, dy, dz float64) *Vec3 {
	return &Vec3{v.X + dx, v.Y + dy, v.Z + dz}
}

// Translate shifts v by the given deltas in place
func (v *Vec3) Translate(dx, dy, dz float64) *Vec3 {
	v.X += dx
	v.Y += dy
	v.Z += dz
	return v
}

// Add adds o to v component-wise
func (v *Vec3) Add(o *Vec3) *Vec3 {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	return v
}

// Subtract subtracts o from v component-wise
func (v *Vec3) Subtract(o *Vec3) *Vec3 {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	return v
}

// Multiply multiplies v by o component-wise
func (v *Vec3) Multiply(o *Vec3) *Vec3 {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
	return v
}

// Divide divides v by o component-wise. Zero components of o yield ±Inf or NaN.
func (v *Vec3) Divide(o *Vec3) *Vec3 {
	v.X /= o.X
	v.Y /= o.Y
	v.Z /= o.Z
	return v
}

// Plus returns the sum of two vectors
func (v *Vec3) Plus(o *Vec3) *Vec3 { return v.Offset(o.X, o.Y, o.Z) }

// Minus returns the difference between two vectors
func (v *Vec3) Minus(o *Vec3) *Vec3 { return v.Offset(-o.X, -o.Y, -o.Z) }

// Scaled returns a copy scaled by k
func (v *Vec3) Scaled(k float64) *Vec3 { return &Vec3{v.X * k, v.Y * k, v.Z * k} }

// Scale multiplies every component by k in place
func (v *Vec3) Scale(k float64) *Vec3 {
	v.X *= k
	v.Y *= k
	v.Z *= k
	return v
}

// Abs returns a copy with the absolute value of every component
func (v *Vec3) Abs() *Vec3 {
	return &Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Volume returns the product of the components, i.e. the volume of the box
// spanned from the origin. Mixed signs give a negative volume.
func (v *Vec3) Volume() float64 { return v.X * v.Y * v.Z }

// Modulus returns the per-axis Euclidean modulus of v by o
func (v *Vec3) Modulus(o *Vec3) (*Vec3, error) {
	x, err := mathutil.EuclideanMod(v.X, o.X)
	if err != nil {
		return nil, errors.Wrap(err, "modulus x")
	}
	y, err := mathutil.EuclideanMod(v.Y, o.Y)
	if err != nil {
		return nil, errors.Wrap(err, "modulus y")
	}
	z, err := mathutil.EuclideanMod(v.Z, o.Z)
	if err != nil {
		return nil, errors.Wrap(err, "modulus z")
	}
	return &Vec3{x, y, z}, nil
}

// DistanceTo returns the Euclidean distance between v and o
func (v *Vec3) DistanceTo(o *Vec3) float64 { return math.Sqrt(v.DistanceSquared(o)) }

// DistanceSquared returns the squared Euclidean distance between v and o
func (v *Vec3) DistanceSquared(o *Vec3) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	dz := o.Z - v.Z
	return dx*dx + dy*dy + dz*dz
}

// XYDistanceTo returns the distance between v and o projected on the xy plane
func (v *Vec3) XYDistanceTo(o *Vec3) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }

// XZDistanceTo returns the distance between v and o projected on the xz plane
func (v *Vec3) XZDistanceTo(o *Vec3) float64 { return math.Hypot(o.X-v.X, o.Z-v.Z) }

// YZDistanceTo returns the distance between v and o projected on the yz plane
func (v *Vec3) YZDistanceTo(o *Vec3) float64 { return math.Hypot(o.Y-v.Y, o.Z-v.Z) }

// ManhattanDistanceTo returns the L1 distance between v and o
func (v *Vec3) ManhattanDistanceTo(o *Vec3) float64 {
	return math.Abs(o.X-v.X) + math.Abs(o.Y-v.Y) + math.Abs(o.Z-v.Z)
}

// Equals reports whether every component of v and o is identical
func (v *Vec3) Equals(o *Vec3) bool { return v.EqualsWithin(o, 0) }

// EqualsWithin reports whether every component differs by at most tol
func (v *Vec3) EqualsWithin(o *Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol &&
		math.Abs(v.Y-o.Y) <= tol &&
		math.Abs(v.Z-o.Z) <= tol
}

// Clone returns an independent copy of v
func (v *Vec3) Clone() *Vec3 { return v.Offset(0, 0, 0) }

// Min returns the component-wise minimum of v and o
func (v *Vec3) Min(o *Vec3) *Vec3 {
	return &Vec3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o
func (v *Vec3) Max(o *Vec3) *Vec3 {
	return &Vec3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Norm returns the vector's magnitude (Euclidean norm)
func (v *Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Dot returns the dot product of two vectors
func (v *Vec3) Dot(o *Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// InnerProduct is an alias of Dot
func (v *Vec3) InnerProduct(o *Vec3) float64 { return v.Dot(o) }

// Cross returns the cross product of two vectors
func (v *Vec3) Cross(o *Vec3) *Vec3 {
	return &Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Unit returns a unit vector in the same direction, or a copy of the zero vector
func (v *Vec3) Unit() *Vec3 {
	norm := v.Norm()
	if norm == 0 {
		return v.Clone()
	}
	return v.Scaled(1 / norm)
}

// Normalize scales v to unit length in place. The zero vector is left as is.
func (v *Vec3) Normalize() *Vec3 {
	norm := v.Norm()
	if norm != 0 {
		v.X /= norm
		v.Y /= norm
		v.Z /= norm
	}
	return v
}

// round rounds to the nearest integer with halves going toward +Inf
func round(f float64) float64 {
	fl := math.Floor(f)
	if f-fl >= 0.5 {
		return fl + 1
	}
	return fl
}
