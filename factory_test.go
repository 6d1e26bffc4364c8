package unum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleFactory(t *testing.T) {
	a := assert.New(t)
	f := Two.Factory()
	a.Equal(DoubleFactory, f)
	a.Equal(Zero, f.Zero())
	a.Equal(One, f.One())
	a.Equal(QNaN.Bits(), f.QNaN().Bits())
	a.Equal(SNaN.Bits(), f.SNaN().Bits())
	a.True(f.Zero().IsExact())
	a.True(f.One().IsExact())
}

func TestMinOfMaxOf(t *testing.T) {
	a := assert.New(t)
	values := []Double{Two, QNaN, ValueOf(negInf), One, SNaN, ValueOf(-1)}
	a.Equal(SNaN.Bits(), MinOf(values[0], values[1:]...).Bits())
	a.Equal(QNaN.Bits(), MaxOf(values[0], values[1:]...).Bits())
	a.Equal(One, MinOf(One))
	a.Equal(One, MaxOf(One))

	// the first of equal values wins
	a.True(MinOf(ValueOf(negZero), Zero, One).IsSignNegative())
	a.False(MinOf(Zero, ValueOf(negZero), One).IsSignNegative())
	a.True(MaxOf(ValueOf(negZero), Zero, ValueOf(-1)).IsSignNegative())
}

func TestSort(t *testing.T) {
	a := assert.New(t)
	values := []Double{QNaN, Two, ValueOf(posInf), SNaN, ValueOf(negZero), Zero, InexactValueOf(1), ValueOf(negInf), One}
	Sort(values)
	var rendered []string
	for _, v := range values {
		rendered = append(rendered, v.String())
	}
	a.Equal([]string{
		"sNaN",
		"-Infinity",
		"-0.0",
		"0.0",
		"1.0",
		"(1.0000000000000004, 1.0000000000000004)",
		"2.0",
		"Infinity",
		"qNaN",
	}, rendered)
	for i := 1; i < len(values); i++ {
		a.LessOrEqual(values[i-1].Cmp(values[i]), 0)
	}
}

func TestNaNOf(t *testing.T) {
	a := assert.New(t)
	a.Equal(SNaN.Bits(), NaNOf(ValueOf(-1)).Bits())
	a.Equal(SNaN.Bits(), NaNOf(ValueOf(negZero)).Bits())
	a.Equal(SNaN.Bits(), NaNOf(SNaN).Bits())
	a.Equal(QNaN.Bits(), NaNOf(Zero).Bits())
	a.Equal(QNaN.Bits(), NaNOf(ValueOf(posInf)).Bits())
	a.Equal(QNaN.Bits(), NaNOf(QNaN).Bits())
}

func TestWalk(t *testing.T) {
	a := assert.New(t)
	a.Empty(Walk(Two, 0))

	up := Walk(Two, 3)
	if a.Len(up, 3) {
		a.Equal(uint64(0x4000000000000001), up[0].Bits())
		a.Equal(uint64(0x4000000000000002), up[1].Bits())
		a.Equal(uint64(0x4000000000000003), up[2].Bits())
		a.True(up[0].IsInexact())
		a.True(up[1].IsExact())
	}

	down := Walk(Zero, -2)
	if a.Len(down, 2) {
		a.Equal(uint64(0x8000000000000001), down[0].Bits())
		a.Equal(uint64(0x8000000000000002), down[1].Bits())
	}

	// the cycle closes through the infinities and the NaNs
	top := Walk(ValueOf(math.MaxFloat64), 3)
	if a.Len(top, 3) {
		a.True(top[0].IsInf())
		a.Equal(QNaN.Bits(), top[1].Bits())
		a.Equal(QNaN.Bits(), top[2].Bits())
	}
	bottom := Walk(SNaN, 2)
	if a.Len(bottom, 2) {
		a.Equal(ValueOf(negInf), bottom[0])
		a.Equal(uint64(0xffefffffffffffff), bottom[1].Bits())
	}
}
