package unum

import (
	"github.com/shopspring/decimal"

	mu "github.com/avdva/unum/internal/mathutil"
)

// Decimal returns the exact decimal expansion of the stored float64.
// Returns false for infinities and NaNs.
func (v Double) Decimal() (decimal.Decimal, bool) {
	return exactDecimal(float64(v))
}

// Bounds returns exact decimal expansions of LowerBound and UpperBound.
// Returns false if any of the bounds is not finite.
func (v Double) Bounds() (lo, hi decimal.Decimal, ok bool) {
	if lo, ok = exactDecimal(LowerBound(float64(v))); !ok {
		return
	}
	hi, ok = exactDecimal(UpperBound(float64(v)))
	return
}

func exactDecimal(f float64) (decimal.Decimal, bool) {
	if !finite(f) {
		return decimal.Zero, false
	}
	m, e := mu.DecimalMantExp(f)
	if f < 0 {
		m.Neg(m)
	}
	return decimal.NewFromBigInt(m, e), true
}
