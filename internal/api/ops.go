package api

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"vec3/internal/geometry/vector"
)

// Request carries the operands of one operation. Vectors are in the
// canonical "(x, y, z)" form. A nil Scalar means 1.
type Request struct {
	Op        string   `json:"op"`
	A         string   `json:"a"`
	B         string   `json:"b,omitempty"`
	Scalar    *float64 `json:"scalar,omitempty"`
	Tolerance float64  `json:"tolerance,omitempty"`
}

func (r Request) scalar() float64 {
	if r.Scalar == nil {
		return 1
	}
	return *r.Scalar
}

// Op evaluates an operation on parsed operands. The result is a *vector.Vec3,
// a float64 or a bool.
type Op struct {
	Binary bool
	Eval   func(a, b *vector.Vec3, req Request) (any, error)
}

func unary(fn func(a *vector.Vec3, req Request) any) Op {
	return Op{Eval: func(a, _ *vector.Vec3, req Request) (any, error) { return fn(a, req), nil }}
}

func binary(fn func(a, b *vector.Vec3, req Request) any) Op {
	return Op{Binary: true, Eval: func(a, b *vector.Vec3, req Request) (any, error) { return fn(a, b, req), nil }}
}

// Ops lists every operation exposed by the CLI and the HTTP API.
// Mutating methods run on the parsed copy of A, so all of them are safe here.
var Ops = map[string]Op{
	"parse":     unary(func(a *vector.Vec3, _ Request) any { return a }),
	"iszero":    unary(func(a *vector.Vec3, _ Request) any { return a.IsZero() }),
	"xzy":       unary(func(a *vector.Vec3, _ Request) any { return a.XZY() }),
	"round":     unary(func(a *vector.Vec3, _ Request) any { return a.Rounded() }),
	"floor":     unary(func(a *vector.Vec3, _ Request) any { return a.Floored() }),
	"abs":       unary(func(a *vector.Vec3, _ Request) any { return a.Abs() }),
	"unit":      unary(func(a *vector.Vec3, _ Request) any { return a.Unit() }),
	"norm":      unary(func(a *vector.Vec3, _ Request) any { return a.Norm() }),
	"volume":    unary(func(a *vector.Vec3, _ Request) any { return a.Volume() }),
	"scale":     unary(func(a *vector.Vec3, req Request) any { return a.Scaled(req.scalar()) }),
	"plus":      binary(func(a, b *vector.Vec3, _ Request) any { return a.Plus(b) }),
	"minus":     binary(func(a, b *vector.Vec3, _ Request) any { return a.Minus(b) }),
	"multiply":  binary(func(a, b *vector.Vec3, _ Request) any { return a.Multiply(b) }),
	"divide":    binary(func(a, b *vector.Vec3, _ Request) any { return a.Divide(b) }),
	"min":       binary(func(a, b *vector.Vec3, _ Request) any { return a.Min(b) }),
	"max":       binary(func(a, b *vector.Vec3, _ Request) any { return a.Max(b) }),
	"cross":     binary(func(a, b *vector.Vec3, _ Request) any { return a.Cross(b) }),
	"dot":       binary(func(a, b *vector.Vec3, _ Request) any { return a.Dot(b) }),
	"distance":  binary(func(a, b *vector.Vec3, _ Request) any { return a.DistanceTo(b) }),
	"distance2": binary(func(a, b *vector.Vec3, _ Request) any { return a.DistanceSquared(b) }),
	"xydist":    binary(func(a, b *vector.Vec3, _ Request) any { return a.XYDistanceTo(b) }),
	"xzdist":    binary(func(a, b *vector.Vec3, _ Request) any { return a.XZDistanceTo(b) }),
	"yzdist":    binary(func(a, b *vector.Vec3, _ Request) any { return a.YZDistanceTo(b) }),
	"manhattan": binary(func(a, b *vector.Vec3, _ Request) any { return a.ManhattanDistanceTo(b) }),
	"equals":    binary(func(a, b *vector.Vec3, req Request) any { return a.EqualsWithin(b, req.Tolerance) }),
	"modulus": {Binary: true, Eval: func(a, b *vector.Vec3, _ Request) (any, error) {
		return a.Modulus(b)
	}},
}

// OpNames returns the sorted operation names
func OpNames() []string {
	names := make([]string, 0, len(Ops))
	for name := range Ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrUnknownOp is returned by Evaluate for an operation not in Ops
var ErrUnknownOp = errors.New("unknown operation")

// Evaluate parses the operands of req and runs its operation
func Evaluate(req Request) (any, error) {
	op, ok := Ops[req.Op]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOp, "%q", req.Op)
	}

	a, err := vector.Parse(req.A)
	if err != nil {
		return nil, errors.Wrap(err, "operand a")
	}
	var b *vector.Vec3
	if op.Binary {
		if b, err = vector.Parse(req.B); err != nil {
			return nil, errors.Wrap(err, "operand b")
		}
	}

	res, err := op.Eval(a, b, req)
	if err != nil {
		return nil, errors.Wrap(err, req.Op)
	}
	return res, nil
}

// FormatResult renders an evaluation result for JSON or terminal output
func FormatResult(res any) any {
	switch r := res.(type) {
	case *vector.Vec3:
		return r.String()
	case float64:
		// JSON has no NaN or Inf
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return vector.FormatFloat(r)
		}
	}
	return res
}
