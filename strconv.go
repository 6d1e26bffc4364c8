package unum

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	mu "github.com/avdva/unum/internal/mathutil"
)

const (
	qnanString = "qNaN"
	snanString = "sNaN"

	// plain notation is used for 1e-3 <= |f| < 1e7.
	minPlain = 1e-3
	maxPlain = 1e7
)

var (
	manyZeros = strings.Repeat("0", 16)

	errNotInterval = errors.New("not a rendering of any value")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// String returns a string representation of the value.
// Exact values are printed as numbers, like `2.0`,
// inexact values as open intervals, like `(2.0, 2.000000000000001)`,
// NaNs as `qNaN` or `sNaN`.
func (v Double) String() string {
	return Format(float64(v))
}

// GoString returns debug string representation.
func (v Double) GoString() string {
	return v.String() + fmt.Sprintf(" {0x%016x}", v.Bits())
}

// Format returns a unum string representation of f. See Double.String.
func Format(f float64) string {
	if IsExact(f) {
		return FormatFloat(f)
	}
	if math.IsNaN(f) {
		if raw(f) >= 0 {
			return qnanString
		}
		return snanString
	}
	var builder strings.Builder
	builder.WriteRune('(')
	if f >= 0 {
		writeFloat(&builder, Exact(f))
		builder.WriteString(", ")
		writeFloat(&builder, NextUp(f))
	} else {
		writeFloat(&builder, NextDown(f))
		builder.WriteString(", ")
		writeFloat(&builder, Exact(f))
	}
	builder.WriteRune(')')
	return builder.String()
}

// FormatFloat formats a plain float64 with the shortest decimal
// representation, that reads back to the same value.
// Numbers in [1e-3, 1e7) use plain notation with at least one fractional digit,
// like `2.0` or `0.001`, others use scientific notation, like `1.0E7`.
func FormatFloat(f float64) string {
	var builder strings.Builder
	writeFloat(&builder, f)
	return builder.String()
}

func writeFloat(builder *strings.Builder, f float64) {
	switch {
	case math.IsNaN(f):
		builder.WriteString("NaN")
		return
	case math.IsInf(f, 1):
		builder.WriteString("Infinity")
		return
	case math.IsInf(f, -1):
		builder.WriteString("-Infinity")
		return
	}
	if math.Signbit(f) {
		builder.WriteRune('-')
		f = -f
	}
	if f == 0 {
		builder.WriteString("0.0")
		return
	}
	digits, e := shortestDigits(f)
	if f < minPlain || f >= maxPlain {
		builder.WriteByte(digits[0])
		builder.WriteRune('.')
		if len(digits) > 1 {
			builder.WriteString(digits[1:])
		} else {
			builder.WriteRune('0')
		}
		builder.WriteRune('E')
		builder.WriteString(strconv.Itoa(e))
		return
	}
	switch intLen := e + 1; {
	case intLen <= 0: // add leading zeros after a delimiter
		builder.WriteString("0.")
		builder.WriteString(manyZeros[:-intLen])
		builder.WriteString(digits)
	case intLen >= len(digits): // add trailing zeros before a delimiter
		builder.WriteString(digits)
		builder.WriteString(manyZeros[:intLen-len(digits)])
		builder.WriteString(".0")
	default: // insert a delimiter
		builder.WriteString(digits[:intLen])
		builder.WriteRune('.')
		builder.WriteString(digits[intLen:])
	}
}

// shortestDigits returns decimal digits and an exponent e of a positive finite f,
// so that f ~= d.ddd * 10^e.
func shortestDigits(f float64) (digits string, e int) {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	pos := strings.IndexByte(s, 'e')
	e, _ = strconv.Atoi(s[pos+1:])
	return strings.Replace(s[:pos], ".", "", 1), e
}

// FromString parses a string produced by Double.String.
// It accepts `qNaN`, `sNaN`, intervals like `(2.0, 2.000000000000001)`,
// and any number strconv.ParseFloat accepts. Numbers are taken as is,
// so their exactness is defined by the parsed float's ubit.
func FromString(s string) (Double, error) {
	s, offset := prepareString(s)
	if len(s) == 0 {
		return Zero, fmt.Errorf("empty input")
	}
	v, err := parse(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return Zero, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return v, nil
}

// MustFromString parses a string and panics on error.
func MustFromString(s string) Double {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// prepareString cleans the string from quotes and spaces.
func prepareString(s string) (prepared string, offset int) {
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	return strings.TrimRightFunc(s, unicode.IsSpace), offset
}

func parse(s string) (Double, error) {
	switch s {
	case qnanString:
		return QNaN, nil
	case snanString:
		return SNaN, nil
	}
	if s[0] != '(' {
		f, err := parseFloat(s, 0)
		if err != nil {
			return Zero, err
		}
		if math.IsNaN(f) {
			return SignedNaN(f), nil
		}
		return ValueOf(f), nil
	}
	if s[len(s)-1] != ')' {
		return Zero, newPosError("missing ')'", len(s)-1)
	}
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return Zero, newPosError("missing ','", len(s)-1)
	}
	lo, err := parseFloat(s[1:comma], 1)
	if err != nil {
		return Zero, err
	}
	hi, err := parseFloat(s[comma+1:len(s)-1], comma+1)
	if err != nil {
		return Zero, err
	}
	v, ok := fromBounds(lo, hi)
	if !ok {
		return Zero, newPosError(errNotInterval.Error(), 0)
	}
	return v, nil
}

func parseFloat(s string, offset int) (float64, error) {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	offset += len(s) - len(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, newPosError(fmt.Sprintf("bad number %q: %v", trimmed, err), offset)
	}
	return f, nil
}

// fromBounds restores the inexact value, which Format prints as (lo, hi).
func fromBounds(lo, hi float64) (Double, bool) {
	var f float64
	if IsSignNegative(hi) { // printed as (NextDown(f), Exact(f))
		f = mu.Float64FromBits(raw(hi) + 1)
	} else { // printed as (Exact(f), NextUp(f))
		f = mu.Float64FromBits(raw(lo) - 1)
	}
	if !IsInexact(f) || math.IsNaN(f) {
		return Zero, false
	}
	if f >= 0 {
		if raw(Exact(f)) != raw(lo) || raw(NextUp(f)) != raw(hi) {
			return Zero, false
		}
	} else if raw(NextDown(f)) != raw(lo) || raw(Exact(f)) != raw(hi) {
		return Zero, false
	}
	return Double(f), true
}
