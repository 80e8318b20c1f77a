package transform

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"vec3/internal/geometry/vector"
)

// ParseStep builds a single transform from its textual form:
//
//	offset  (x, y, z)
//	heading dist@degrees
//	clamp   (x, y, z)|(x, y, z)
//	wrap    (x, y, z)
//	snap    floor | round
//	noop
func ParseStep(name, arg string) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "offset":
		d, err := vector.Parse(arg)
		if err != nil {
			return nil, errors.Wrap(err, "offset")
		}
		return Offset{Delta: d}, nil

	case "heading":
		distStr, degStr, ok := strings.Cut(arg, "@")
		if !ok {
			return nil, errors.Errorf("heading: want dist@degrees, got %q", arg)
		}
		dist, err := strconv.ParseFloat(strings.TrimSpace(distStr), 64)
		if err != nil {
			return nil, errors.Wrap(err, "heading distance")
		}
		deg, err := strconv.ParseFloat(strings.TrimSpace(degStr), 64)
		if err != nil {
			return nil, errors.Wrap(err, "heading degrees")
		}
		return OffsetFromHeading(dist, deg), nil

	case "clamp":
		lo, hi, ok := strings.Cut(arg, "|")
		if !ok {
			return nil, errors.Errorf("clamp: want (min)|(max), got %q", arg)
		}
		minV, err := vector.Parse(lo)
		if err != nil {
			return nil, errors.Wrap(err, "clamp min")
		}
		maxV, err := vector.Parse(hi)
		if err != nil {
			return nil, errors.Wrap(err, "clamp max")
		}
		return Clamp{Min: minV, Max: maxV}, nil

	case "wrap":
		size, err := vector.Parse(arg)
		if err != nil {
			return nil, errors.Wrap(err, "wrap")
		}
		w, err := NewWrap(size)
		if err != nil {
			return nil, err
		}
		return w, nil

	case "snap":
		switch strings.ToLower(strings.TrimSpace(arg)) {
		case "", "floor":
			return Snap{Mode: SnapFloor}, nil
		case "round":
			return Snap{Mode: SnapRound}, nil
		}
		return nil, errors.Errorf("snap: unknown mode %q", arg)

	case "noop":
		return NoOp, nil
	}
	return nil, errors.Errorf("unknown transform %q", name)
}

// ParseChain builds a Chain from "name=arg" steps separated by semicolons,
// e.g. "offset=(1, 0, 0); wrap=(10, 10, 10); snap=round"
func ParseChain(s string) (*Chain, error) {
	c := &Chain{}
	for i, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, arg, _ := strings.Cut(part, "=")
		step, err := ParseStep(name, arg)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", i+1)
		}
		c.Steps = append(c.Steps, step)
	}
	return c, nil
}
