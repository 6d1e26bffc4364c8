package mathutil

import (
	"math"
	"math/big"
)

const (
	signMask = 1 << 63
	expMask  = 0x7ff
	mantBits = 52
	mantMask = 1<<mantBits - 1
	bias     = 1023
)

// Float64Bits returns the raw bit pattern of f as a signed integer,
// so that negative patterns are exactly those with the sign bit set.
func Float64Bits(f float64) int64 {
	return int64(math.Float64bits(f))
}

// Float64FromBits is the inverse of Float64Bits.
func Float64FromBits(raw int64) float64 {
	return math.Float64frombits(uint64(raw))
}

// NextUp returns the least float64 greater than f.
// NextUp(+Inf) = +Inf, NextUp(NaN) = NaN, NextUp(-0) = NextUp(+0).
func NextUp(f float64) float64 {
	return math.Nextafter(f, math.Inf(1))
}

// NextDown returns the greatest float64 less than f.
func NextDown(f float64) float64 {
	return math.Nextafter(f, math.Inf(-1))
}

// SameSign returns true if a and b are both negative or both non-negative.
func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

// TruncInt64 converts f to an integer with a saturating cast:
// towards zero, saturating at [min, max], NaN becomes 0.
func TruncInt64(f float64, min, max int64) int64 {
	switch {
	case f != f:
		return 0
	case f <= float64(min):
		return min
	case f >= float64(max):
		return max
	}
	return int64(f)
}

// SplitFloat64 decomposes a finite f into mant and exp, so that |f| = mant * 2^exp.
// mant has no trailing zero bits unless it is zero.
func SplitFloat64(f float64) (mant uint64, exp int) {
	b := math.Float64bits(f) &^ signMask
	e := int(b>>mantBits) & expMask
	mant = b & mantMask
	switch e {
	case 0: // subnormal or zero
		e = 1
	default:
		mant |= 1 << mantBits
	}
	if mant == 0 {
		return 0, 0
	}
	exp = e - bias - mantBits
	for mant&1 == 0 {
		mant >>= 1
		exp++
	}
	return mant, exp
}

// DecimalMantExp returns such (m, e), that |f| = m * 10^e exactly.
// f must be finite.
func DecimalMantExp(f float64) (m *big.Int, e int32) {
	mant, exp := SplitFloat64(f)
	m = new(big.Int).SetUint64(mant)
	if exp >= 0 {
		return m.Lsh(m, uint(exp)), 0
	}
	// mant / 2^k = mant * 5^k / 10^k
	k := int64(-exp)
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil)
	return m.Mul(m, five), int32(-k)
}
