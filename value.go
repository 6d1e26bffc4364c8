// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package unum implements a universal number backed by a float64.
// The least significant bit of the float's bit pattern (the ubit) tells
// whether the value is exact, or denotes an open interval between the
// stored value and its neighbour.
// Two NaNs are reserved: qNaN for an open interval touching +Inf,
// and sNaN for an open interval touching -Inf.
package unum

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	mu "github.com/avdva/unum/internal/mathutil"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeCompact
)

const (
	// JSONModeCompact marshals exact finite values as numbers, like `2.0`,
	// and all other values as strings, like `"(2.0, 2.000000000000001)"`.
	JSONModeCompact = iota
	// JSONModeString marshals all values as strings.
	JSONModeString
	// JSONModeBits marshals raw bits, like `{"bits":"0x4000000000000001"}`.
	JSONModeBits
)

const (
	ubitMask = 0x0000000000000001

	qnanBits = 0x7ff8000000000000
	snanBits = -0x0008000000000000 // 0xfff8000000000000
)

const (
	// Zero is an exact 0.
	Zero = Double(0)
	// One is an exact 1.
	One = Double(1)
	// Two is an exact 2.
	Two = Double(2)
	// Ten is an exact 10.
	Ten = Double(10)
)

var (
	// QNaN is an open interval between the largest finite value and +Inf.
	QNaN = Double(mu.Float64FromBits(qnanBits))
	// SNaN is an open interval between -Inf and the smallest finite value.
	SNaN = Double(mu.Float64FromBits(snanBits))
)

// Double is a unum backed by a float64.
//   63 62         52                                                   0
//   _|___________|____________________________________________________|
//   seeeeeeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmu
//
// u is the ubit: 0 for exact values, 1 for intervals.
// Values are immutable, all methods return new values.
type Double float64

func raw(f float64) int64 {
	return mu.Float64Bits(f)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// step flips the ubit moving the raw pattern by one.
func step(r int64) float64 {
	if r >= 0 {
		return mu.Float64FromBits(r + 1)
	}
	return mu.Float64FromBits(r - 1)
}

// ValueOf returns f as is. Its exactness is defined by f's ubit.
func ValueOf(f float64) Double {
	return Double(f)
}

// ExactValueOf returns Exact(f).
func ExactValueOf(f float64) Double {
	return Double(Exact(f))
}

// InexactValueOf returns Inexact(f).
func InexactValueOf(f float64) Double {
	return Double(Inexact(f))
}

// FromBits returns a value for the given raw bit pattern.
func FromBits(b uint64) Double {
	return Double(math.Float64frombits(b))
}

// SignedNaN returns SNaN if sign is negative, or QNaN otherwise.
func SignedNaN(sign float64) Double {
	if IsSignNegative(sign) {
		return SNaN
	}
	return QNaN
}

// Exact clears the ubit of a finite f.
// NaNs and infinities become infinities of the same sign.
func Exact(f float64) float64 {
	r := raw(f)
	if finite(f) {
		if r&ubitMask == 0 {
			return f
		}
		return step(r)
	}
	if r >= 0 {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

// Inexact sets the ubit of a finite f.
// NaNs and infinities become QNaN or SNaN depending on their sign.
func Inexact(f float64) float64 {
	r := raw(f)
	if finite(f) {
		if r&ubitMask != 0 {
			return f
		}
		return step(r)
	}
	if r >= 0 {
		return float64(QNaN)
	}
	return float64(SNaN)
}

// IsExact returns true, if f is not a NaN, and its ubit is 0.
func IsExact(f float64) bool {
	return !math.IsNaN(f) && raw(f)&ubitMask == 0
}

// IsInexact returns true, if f is a NaN, or its ubit is 1.
func IsInexact(f float64) bool {
	return math.IsNaN(f) || raw(f)&ubitMask != 0
}

// IsSignNegative returns true for negative numbers, -0 and NaNs with the sign bit set.
func IsSignNegative(f float64) bool {
	return f < 0 || raw(f) < 0
}

// NextUp returns the next value above f.
// +Inf is followed by QNaN, SNaN is followed by -Inf, QNaN is followed by itself.
func NextUp(f float64) float64 {
	if math.IsInf(f, 1) {
		return float64(QNaN)
	}
	if math.IsNaN(f) {
		if IsSignNegative(f) {
			return math.Inf(-1)
		}
		return float64(QNaN)
	}
	return mu.NextUp(f)
}

// NextDown returns the next value below f.
// -Inf is followed by SNaN, QNaN is followed by +Inf, SNaN is followed by itself.
func NextDown(f float64) float64 {
	if math.IsInf(f, -1) {
		return float64(SNaN)
	}
	if math.IsNaN(f) {
		if IsSignNegative(f) {
			return float64(SNaN)
		}
		return math.Inf(1)
	}
	return mu.NextDown(f)
}

// LowerBound moves an inexact f one step towards zero.
// Exact values and NaNs are returned as is.
func LowerBound(f float64) float64 {
	if IsExact(f) || math.IsNaN(f) {
		return f
	}
	if f > 0 {
		return mu.NextDown(f)
	}
	return mu.NextUp(f)
}

// UpperBound moves an inexact positive f one step away from zero.
// Negative values, exact values and NaNs are returned as is.
func UpperBound(f float64) float64 {
	if f < 0 || IsExact(f) || math.IsNaN(f) {
		return f
	}
	if f > 0 {
		return mu.NextUp(f)
	}
	return mu.NextDown(f)
}

// IntervalSize returns the width of the interval f denotes.
// It is 0 for exact values, and a NaN with f's sign for NaNs.
func IntervalSize(f float64) float64 {
	if IsExact(f) {
		return 0
	}
	if math.IsNaN(f) {
		return float64(SignedNaN(f))
	}
	if f >= 0 {
		return NextUp(f) - f
	}
	return f - NextDown(f)
}

// Compare defines a total order over all float64 values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
// NaNs are ordered by their sign bit: SNaN is below everything with a
// non-negative bit pattern, QNaN is above everything with a negative one.
func Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}
	// at least one is NaN
	araw, braw := raw(a), raw(b)
	if araw == braw {
		return 0
	}
	if !mu.SameSign(araw, braw) {
		if araw < 0 {
			return -1
		}
		return 1
	}
	// same sign
	if a == a { // b is NaN
		if araw >= 0 {
			return -1
		}
		return 1
	}
	if b == b { // a is NaN
		if braw >= 0 {
			return 1
		}
		return -1
	}
	// both NaNs, same sign
	return 0
}

// Min returns the smaller of a and b according to Compare, or a if they are equal.
func Min(a, b float64) float64 {
	if Compare(a, b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b according to Compare, or a if they are equal.
func Max(a, b float64) float64 {
	if Compare(a, b) >= 0 {
		return a
	}
	return b
}

// Factory returns DoubleFactory.
func (v Double) Factory() Factory[Double] {
	return DoubleFactory
}

// Bits returns the raw bit pattern of the value.
func (v Double) Bits() uint64 {
	return math.Float64bits(float64(v))
}

// Int32 converts the value to an int32, truncating towards zero.
// Out of range values saturate, NaNs become 0.
func (v Double) Int32() int32 {
	return int32(mu.TruncInt64(float64(v), math.MinInt32, math.MaxInt32))
}

// Int64 converts the value to an int64, truncating towards zero.
// Out of range values saturate, NaNs become 0.
func (v Double) Int64() int64 {
	return mu.TruncInt64(float64(v), math.MinInt64, math.MaxInt64)
}

// Float32 returns the value as a float32.
func (v Double) Float32() float32 {
	return float32(v)
}

// Float64 returns the stored float64.
func (v Double) Float64() float64 {
	return float64(v)
}

func (v Double) IsNaN() bool {
	return math.IsNaN(float64(v))
}

func (v Double) IsInf() bool {
	return math.IsInf(float64(v), 0)
}

func (v Double) IsFinite() bool {
	return finite(float64(v))
}

func (v Double) IsExact() bool {
	return IsExact(float64(v))
}

func (v Double) IsInexact() bool {
	return IsInexact(float64(v))
}

// IsNegative returns v < 0. It is false for -0 and for NaNs.
func (v Double) IsNegative() bool {
	return v < 0
}

// IsPositive returns v > 0.
func (v Double) IsPositive() bool {
	return v > 0
}

// IsSignNegative is true also for -0 and SNaN.
func (v Double) IsSignNegative() bool {
	return IsSignNegative(float64(v))
}

// IsZero returns true for both +0 and -0.
func (v Double) IsZero() bool {
	return v == 0
}

// NextUp returns the value following v.
func (v Double) NextUp() Double {
	return Double(NextUp(float64(v)))
}

// NextDown returns the value preceding v.
func (v Double) NextDown() Double {
	return Double(NextDown(float64(v)))
}

// LowerBound returns LowerBound(v).
func (v Double) LowerBound() Double {
	return Double(LowerBound(float64(v)))
}

// UpperBound returns UpperBound(v).
func (v Double) UpperBound() Double {
	return Double(UpperBound(float64(v)))
}

// IntervalSize returns the width of v's interval, or Zero for exact values.
func (v Double) IntervalSize() Double {
	size := IntervalSize(float64(v))
	if size == 0 {
		return Zero
	}
	return Double(size)
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Double) Cmp(other Double) int {
	return Compare(float64(v), float64(other))
}

// Min returns the smaller of v and other, or v if they are equal.
func (v Double) Min(other Double) Double {
	return MinOf(v, other)
}

// Max returns the larger of v and other, or v if they are equal.
func (v Double) Max(other Double) Double {
	return MaxOf(v, other)
}

// Eq returns true, if both values are equal according to Cmp.
// +0 equals -0, NaNs with the same sign are equal.
func (v Double) Eq(other Double) bool {
	return v.Cmp(other) == 0
}

// Equals returns true, if other is a Double equal to v.
// Values of any other type are never equal to v.
func (v Double) Equals(other any) bool {
	d, ok := other.(Double)
	return ok && v.Eq(d)
}

// Hash returns a hash code consistent with Eq.
func (v Double) Hash() uint64 {
	switch {
	case v.IsNaN():
		if v.IsSignNegative() {
			return SNaN.Bits()
		}
		return QNaN.Bits()
	case v == 0:
		return 0
	}
	return v.Bits()
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Double) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode), nil
}

func (v Double) toJSON(mode int) []byte {
	switch mode {
	case JSONModeBits:
		return []byte(`{"bits":"` + fmt.Sprintf("0x%016x", v.Bits()) + `"}`)
	case JSONModeCompact:
		if v.IsExact() && v.IsFinite() {
			return []byte(v.String())
		}
		fallthrough
	default: // marshal as a string
		return []byte(strconv.Quote(v.String()))
	}
}

// UnmarshalJSON unmarshals a string, a number, or an object with raw bits into a value.
func (v *Double) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		d := struct {
			Bits string
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		b, err := strconv.ParseUint(d.Bits, 0, 64)
		if err != nil {
			return fmt.Errorf("bad bits: %w", err)
		}
		*v = FromBits(b)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		value, err := FromString(s)
		if err != nil {
			return err
		}
		*v = value
	default:
		value, err := FromString(string(data))
		if err != nil {
			return err
		}
		*v = value
	}
	return nil
}
