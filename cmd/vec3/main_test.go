package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"vec3/internal/api"
	"vec3/internal/geometry/vector"
)

func TestRun(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"cross", "(1, 0, 0)", "(0, 1, 0)"}, "(0, 0, 1)"},
		{[]string{"-scalar", "2", "scale", "(1, -1, 3.14)"}, "(2, -2, 6.28)"},
		{[]string{"volume", "(3, 4, 5)"}, "60"},
		{[]string{"-tolerance", "0.5", "equals", "(1, 1, 1)", "(1.5, 1, 1)"}, "true"},
		{[]string{"modulus", "(12, 32, -1)", "(14, 32, 16)"}, "(12, 0, 15)"},
		{[]string{"-chain", "offset=(1, 0, 0); wrap=(10, 10, 10); snap=floor", "(9.5, 2, 3)"}, "(0, 2, 3)"},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		if err := run(tc.args, &out); err != nil {
			t.Errorf("run(%q): %v", tc.args, err)
			continue
		}
		if got := strings.TrimSpace(out.String()); got != tc.want {
			t.Errorf("run(%q) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"norm", "lol hax"}, &out)
	var pe *vector.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("expected *ParseError, got %v", err)
	}

	if err := run([]string{"spin", "(1, 2, 3)"}, &out); !errors.Is(err, api.ErrUnknownOp) {
		t.Errorf("expected ErrUnknownOp, got %v", err)
	}

	for _, args := range [][]string{
		{"norm"},
		{"-chain", "noop"},
		{"-chain", "bogus", "(1, 2, 3)"},
		{"-nope"},
	} {
		if err := run(args, &out); err == nil {
			t.Errorf("run(%q): expected error", args)
		}
	}
}
