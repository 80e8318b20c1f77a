package vector

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// canonicalRe matches the "(x, y, z)" form produced by String.
// Components are a sign plus digits and points only; exponents do not match.
var canonicalRe = regexp.MustCompile(`\((-?[.\d]+), (-?[.\d]+), (-?[.\d]+)\)`)

// ParseError reports a string that is not in the canonical "(x, y, z)" form
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string { return "vec3: cannot parse: " + e.Input }

// String renders v as "(x, y, z)". Finite components use plain decimal
// notation with the fewest digits that parse back to the same value.
func (v *Vec3) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(FormatFloat(v.X))
	b.WriteString(", ")
	b.WriteString(FormatFloat(v.Y))
	b.WriteString(", ")
	b.WriteString(FormatFloat(v.Z))
	b.WriteByte(')')
	return b.String()
}

// FormatFloat renders one component the way String does: plain decimal for
// finite values, NaN, Infinity or -Infinity otherwise
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Parse reads a vector in the canonical "(x, y, z)" form
func Parse(s string) (*Vec3, error) {
	m := canonicalRe.FindStringSubmatch(s)
	if m == nil {
		return nil, &ParseError{Input: s}
	}
	return &Vec3{ParseFloat(m[1]), ParseFloat(m[2]), ParseFloat(m[3])}, nil
}

// ParseFloat coerces a value to float64. Go numeric types convert directly;
// anything else is rendered as text and its longest leading decimal literal
// is parsed, so "12px" is 12 and "abc" is NaN. Pointers are followed; nil
// and nil pointers are NaN.
func ParseFloat(val any) float64 {
	if val == nil {
		return math.NaN()
	}
	if rv := reflect.ValueOf(val); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return math.NaN()
		}
		return ParseFloat(rv.Elem().Interface())
	}
	if f, ok := numeric(val); ok {
		return f
	}
	switch s := val.(type) {
	case string:
		return parseLeadingFloat(s)
	case fmt.Stringer:
		return parseLeadingFloat(s.String())
	}
	return parseLeadingFloat(fmt.Sprint(val))
}

// numeric converts any Go integer or float kind, named types included
func numeric(val any) (float64, bool) {
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func parseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > k {
			end = j
		}
	}

	// Out-of-range literals saturate to ±Inf or 0, which is what we want.
	f, _ := strconv.ParseFloat(s[:end], 64)
	return f
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
