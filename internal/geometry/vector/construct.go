package vector

import (
	"log"
	"math"
	"os"
	"reflect"
	"strings"
	"sync/atomic"
)

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.New(os.Stderr, "vec3: ", log.LstdFlags))
}

// SetLogger replaces the logger used for non-fatal constructor warnings
func SetLogger(l *log.Logger) { logger.Store(l) }

// inputKind is the shape of the first argument handed to V.
// The order of the constants is the order in which V tries them.
type inputKind int

const (
	inputNone      inputKind = iota // no argument, or nil
	inputTriple                     // slice or array, e.g. []float64{1, 2, 3} or geom.Coord
	inputRecord                     // map or struct with x, y, z
	inputCanonical                  // single "(x, y, z)" string
	inputNumeric                    // three Go numbers
	inputLoose                      // anything else, coerced best-effort
)

func classify(args []any) inputKind {
	if len(args) == 0 || isNil(args[0]) {
		return inputNone
	}
	first := reflect.Indirect(reflect.ValueOf(args[0]))
	switch first.Kind() {
	case reflect.Slice, reflect.Array:
		return inputTriple
	case reflect.Map, reflect.Struct:
		return inputRecord
	}
	if first.Kind() == reflect.String && (len(args) < 2 || isNil(args[1])) {
		return inputCanonical
	}
	if len(args) >= 3 {
		_, okX := numeric(args[0])
		_, okY := numeric(args[1])
		_, okZ := numeric(args[2])
		if okX && okY && okZ {
			return inputNumeric
		}
	}
	return inputLoose
}

func isNil(val any) bool {
	if val == nil {
		return true
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// V builds a vector from loosely typed input:
//
//	V()                              // (0, 0, 0)
//	V([]float64{1, 2, 3})            // any slice or array, geom.Coord included
//	V(map[string]any{"x": 1, ...})   // maps and structs with x, y, z
//	V("(1, 2, 3)")                   // canonical string form
//	V(1, 2, 3)                       // three numbers
//	V("1", "2", "3")                 // anything ParseFloat accepts
//
// Only the canonical string form fails hard, with a *ParseError. Loose input
// that does not coerce to three numbers logs a warning and yields the zero
// vector.
func V(args ...any) (*Vec3, error) {
	switch classify(args) {
	case inputNone:
		return &Vec3{}, nil

	case inputTriple:
		seq := reflect.Indirect(reflect.ValueOf(args[0]))
		return &Vec3{element(seq, 0), element(seq, 1), element(seq, 2)}, nil

	case inputRecord:
		rec := reflect.Indirect(reflect.ValueOf(args[0]))
		return &Vec3{field(rec, "x"), field(rec, "y"), field(rec, "z")}, nil

	case inputCanonical:
		return Parse(reflect.Indirect(reflect.ValueOf(args[0])).String())

	case inputNumeric:
		x, _ := numeric(args[0])
		y, _ := numeric(args[1])
		z, _ := numeric(args[2])
		return &Vec3{x, y, z}, nil
	}

	x, y, z := ParseFloat(arg(args, 0)), ParseFloat(arg(args, 1)), ParseFloat(arg(args, 2))
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
		logger.Load().Printf("unexpected input types, returning zero vector: %v %v %v",
			arg(args, 0), arg(args, 1), arg(args, 2))
		return &Vec3{}, nil
	}
	return &Vec3{x, y, z}, nil
}

// MustV is like V but panics on error
func MustV(args ...any) *Vec3 {
	v, err := V(args...)
	if err != nil {
		panic(err)
	}
	return v
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func element(seq reflect.Value, i int) float64 {
	if i >= seq.Len() {
		return math.NaN()
	}
	return ParseFloat(seq.Index(i).Interface())
}

// field looks up name in a map with string keys, or a struct field matching
// name case-insensitively
func field(rec reflect.Value, name string) float64 {
	switch rec.Kind() {
	case reflect.Map:
		if rec.Type().Key().Kind() != reflect.String {
			return math.NaN()
		}
		val := rec.MapIndex(reflect.ValueOf(name).Convert(rec.Type().Key()))
		if !val.IsValid() {
			return math.NaN()
		}
		return ParseFloat(val.Interface())

	case reflect.Struct:
		f := rec.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, name) })
		if !f.IsValid() || !f.CanInterface() {
			return math.NaN()
		}
		return ParseFloat(f.Interface())
	}
	return math.NaN()
}
