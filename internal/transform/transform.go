// Package transform composes point transforms built on the vector package.
package transform

import (
	"vec3/internal/geometry/vector"
)

// Transform maps a point to a new point.
// Implementations must not modify p. The returned warning is empty unless the
// transform had to alter the point in a way the caller should hear about.
type Transform interface {
	Apply(p *vector.Vec3) (*vector.Vec3, string)
}

// Chain is a composite transform that applies its steps in sequence.
type Chain struct {
	Steps []Transform
}

// Apply applies all steps in the chain, in order.
// The output of one step becomes the input to the next.
// The last non-empty warning is returned.
func (c *Chain) Apply(p *vector.Vec3) (*vector.Vec3, string) {
	var warning string
	p = p.Clone()
	for _, step := range c.Steps {
		next, w := step.Apply(p)
		if w != "" {
			warning = w
		}
		p = next
	}
	return p, warning
}

// NoOp is a transform that does nothing.
var NoOp Transform = noOp{}

type noOp struct{}

func (noOp) Apply(p *vector.Vec3) (*vector.Vec3, string) { return p.Clone(), "" }
