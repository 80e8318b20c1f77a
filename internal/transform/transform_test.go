package transform

import (
	"errors"
	"math"
	"strings"
	"testing"

	"vec3/internal/geometry/vector"
	"vec3/internal/mathutil"
)

const eps = 1e-9

func expectNear(t *testing.T, label string, got *vector.Vec3, x, y, z float64) {
	t.Helper()
	if !got.EqualsWithin(vector.NewVec3(x, y, z), eps) {
		t.Errorf("%s: got %v, want (%v, %v, %v)", label, got, x, y, z)
	}
}

func TestOffset(t *testing.T) {
	p := vector.NewVec3(1, 2, 3)
	got, warn := Offset{Delta: vector.NewVec3(1, -1, 0.5)}.Apply(p)
	expectNear(t, "Offset", got, 2, 1, 3.5)
	if warn != "" {
		t.Errorf("unexpected warning %q", warn)
	}
	expectNear(t, "input", p, 1, 2, 3)
}

func TestOffsetFromHeading(t *testing.T) {
	cases := []struct {
		heading float64
		x, y    float64
	}{
		{0, 0, 5},
		{90, 5, 0},
		{180, 0, -5},
		{270, -5, 0},
	}
	for _, tc := range cases {
		o := OffsetFromHeading(5, tc.heading)
		expectNear(t, "heading", o.Delta, tc.x, tc.y, 0)
		if h := Heading(o.Delta); math.Abs(h-tc.heading) > 1e-6 {
			t.Errorf("Heading(%v) = %v, want %v", o.Delta, h, tc.heading)
		}
	}
	if h := Heading(vector.NewVec3(0, 0, 7)); h != 0 {
		t.Errorf("vertical heading = %v, want 0", h)
	}
}

func TestClamp(t *testing.T) {
	box := Clamp{Min: vector.NewVec3(0, 0, 0), Max: vector.NewVec3(10, 10, 10)}

	got, warn := box.Apply(vector.NewVec3(-1, 5, 20))
	expectNear(t, "outside", got, 0, 5, 10)
	if warn == "" {
		t.Error("expected a clamp warning")
	}

	got, warn = box.Apply(vector.NewVec3(1, 5, 9))
	expectNear(t, "inside", got, 1, 5, 9)
	if warn != "" {
		t.Errorf("unexpected warning %q", warn)
	}
}

func TestClamp_Unconfigured(t *testing.T) {
	for _, box := range []Clamp{{}, {Min: vector.NewVec3(0, 0, 0)}, {Max: vector.NewVec3(1, 1, 1)}} {
		p := vector.NewVec3(-1, 5, 20)
		got, warn := box.Apply(p)
		expectNear(t, "unconfigured clamp", got, -1, 5, 20)
		if got == p {
			t.Error("unconfigured clamp should return a copy")
		}
		if warn == "" {
			t.Error("unconfigured clamp should warn")
		}
	}
}

func TestWrap(t *testing.T) {
	w, err := NewWrap(vector.NewVec3(10, 10, 10))
	if err != nil {
		t.Fatalf("NewWrap: %v", err)
	}
	got, _ := w.Apply(vector.NewVec3(12, -3, 25))
	expectNear(t, "wrap", got, 2, 7, 5)

	_, err = NewWrap(vector.NewVec3(10, 0, 10))
	if !errors.Is(err, mathutil.ErrZeroModulus) {
		t.Errorf("expected ErrZeroModulus, got %v", err)
	}

	var zero Wrap
	got, warn := zero.Apply(vector.NewVec3(1, 2, 3))
	expectNear(t, "zero-value wrap", got, 1, 2, 3)
	if warn == "" {
		t.Error("zero-value Wrap should warn")
	}
}

func TestSnap(t *testing.T) {
	p := vector.NewVec3(1.5, -1.5, 2.2)
	got, _ := Snap{Mode: SnapFloor}.Apply(p)
	expectNear(t, "floor", got, 1, -2, 2)
	got, _ = Snap{Mode: SnapRound}.Apply(p)
	expectNear(t, "round", got, 2, -1, 2)
	expectNear(t, "input", p, 1.5, -1.5, 2.2)
}

func TestChain(t *testing.T) {
	w, err := NewWrap(vector.NewVec3(10, 10, 10))
	if err != nil {
		t.Fatal(err)
	}
	chain := &Chain{Steps: []Transform{
		Offset{Delta: vector.NewVec3(1, 0, 0)},
		w,
		Snap{Mode: SnapRound},
		Clamp{Min: vector.NewVec3(0, 0, 0), Max: vector.NewVec3(9, 9, 9)},
		NoOp,
	}}

	p := vector.NewVec3(9.6, 0.4, -0.5)
	got, warn := chain.Apply(p)
	expectNear(t, "chain", got, 1, 0, 9)
	if !strings.HasPrefix(warn, "clamp") {
		t.Errorf("expected the clamp warning to survive NoOp, got %q", warn)
	}
	expectNear(t, "input", p, 9.6, 0.4, -0.5)

	empty := &Chain{}
	got, warn = empty.Apply(p)
	if got == p || !got.Equals(p) || warn != "" {
		t.Errorf("empty chain: got %v %q", got, warn)
	}
}

func TestParseChain(t *testing.T) {
	chain, err := ParseChain("offset=(1, 0, 0); wrap=(10, 10, 10);snap=round; ;heading=2@90;clamp=(0, 0, 0)|(5, 5, 5);noop")
	if err != nil {
		t.Fatalf("ParseChain: %v", err)
	}
	if len(chain.Steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(chain.Steps))
	}
	got, _ := chain.Apply(vector.NewVec3(9.6, 0.4, 12))
	expectNear(t, "parsed chain", got, 3, 0, 2)
}

func TestParseChain_Errors(t *testing.T) {
	_, err := ParseChain("bogus=1")
	if err == nil || !strings.Contains(err.Error(), "step 1") {
		t.Errorf("unknown step: got %v", err)
	}

	_, err = ParseChain("offset=(1, 1, 1);wrap=(0, 1, 1)")
	if !errors.Is(err, mathutil.ErrZeroModulus) {
		t.Errorf("zero wrap: got %v", err)
	}

	_, err = ParseChain("offset=lol")
	var pe *vector.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("bad offset: got %v", err)
	}

	for _, bad := range []string{"heading=5", "heading=x@1", "heading=1@x", "clamp=(0, 0, 0)", "clamp=(0, 0, 0)|nope", "snap=up"} {
		if _, err := ParseChain(bad); err == nil {
			t.Errorf("ParseChain(%q): expected error", bad)
		}
	}
}
