package unum

import (
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   Double
		res string
		ok  bool
	}{
		{Zero, "0", true},
		{ValueOf(negZero), "0", true},
		{Two, "2", true},
		{ValueOf(-0.5), "-0.5", true},
		{ValueOf(1e20), "100000000000000000000", true},
		{ValueOf(0.1), "0.1000000000000000055511151231257827021181583404541015625", true},
		{InexactValueOf(2), "2.000000000000000444089209850062616169452667236328125", true},
		{ValueOf(posInf), "", false},
		{QNaN, "", false},
		{SNaN, "", false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, ok := test.v.Decimal()
			a.Equal(test.ok, ok)
			if ok {
				a.Equal(test.res, d.String())
			}
		})
	}
}

func TestDecimalSmallest(t *testing.T) {
	a := assert.New(t)
	d, ok := ValueOf(math.SmallestNonzeroFloat64).Decimal()
	a.True(ok)
	a.Equal(int32(-1074), d.Exponent())
	f, _ := d.Float64()
	a.Equal(math.SmallestNonzeroFloat64, f)
}

func TestDecimalBounds(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v      Double
		lo, hi string
		ok     bool
	}{
		{Two, "2", "2", true},
		{InexactValueOf(2), "2", "2.00000000000000088817841970012523233890533447265625", true},
		{InexactValueOf(-2), "-1.999999999999999555910790149937383830547332763671875", "-1.9999999999999997779553950749686919152736663818359375", true},
		{ValueOf(math.MaxFloat64), "", "", false},
		{QNaN, "", "", false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			lo, hi, ok := test.v.Bounds()
			a.Equal(test.ok, ok)
			if !ok {
				return
			}
			a.Equal(test.lo, lo.String())
			a.Equal(test.hi, hi.String())
		})
	}
}

func TestDecimalOrder(t *testing.T) {
	a := assert.New(t)
	values := []Double{ValueOf(-1e300), ValueOf(-1), ValueOf(negZero), One.NextDown(), One, One.NextUp(), ValueOf(1e300)}
	var prev decimal.Decimal
	for i, v := range values {
		d, ok := v.Decimal()
		a.True(ok)
		if i > 0 {
			a.Equal(v.Cmp(values[i-1]), d.Cmp(prev), "%#v", v)
		}
		prev = d
	}
}
