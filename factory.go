package unum

import "sort"

// Factory supplies the canonical constants of a unum backing type.
type Factory[T any] interface {
	Zero() T
	One() T
	QNaN() T
	SNaN() T
}

// Unum is the read-only behaviour shared by all unum backing types.
// Generic algorithms are written against it and a Factory,
// so that new backing types only need to provide these methods.
type Unum[T any] interface {
	Cmp(other T) int
	IsNaN() bool
	IsExact() bool
	IsSignNegative() bool
	NextUp() T
	NextDown() T
	Factory() Factory[T]
}

type doubleFactory struct{}

func (doubleFactory) Zero() Double { return Zero }
func (doubleFactory) One() Double  { return One }
func (doubleFactory) QNaN() Double { return QNaN }
func (doubleFactory) SNaN() Double { return SNaN }

// DoubleFactory supplies the constants of Double.
var DoubleFactory Factory[Double] = doubleFactory{}

// MinOf returns the smallest of the given values.
// The first one wins among equal values.
func MinOf[T Unum[T]](first T, rest ...T) T {
	result := first
	for _, v := range rest {
		if result.Cmp(v) > 0 {
			result = v
		}
	}
	return result
}

// MaxOf returns the largest of the given values.
// The first one wins among equal values.
func MaxOf[T Unum[T]](first T, rest ...T) T {
	result := first
	for _, v := range rest {
		if result.Cmp(v) < 0 {
			result = v
		}
	}
	return result
}

// Sort sorts values in the total order defined by Cmp.
// Equal values keep their original order.
func Sort[T Unum[T]](values []T) {
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Cmp(values[j]) < 0
	})
}

// NaNOf returns the NaN carrying v's sign: sNaN for sign-negative v, qNaN otherwise.
func NaNOf[T Unum[T]](v T) T {
	f := v.Factory()
	if v.IsSignNegative() {
		return f.SNaN()
	}
	return f.QNaN()
}

// Walk returns n values following from, moving up for positive n and down for negative n.
func Walk[T Unum[T]](from T, n int) []T {
	up := n >= 0
	if !up {
		n = -n
	}
	result := make([]T, 0, n)
	for v := from; len(result) < n; {
		if up {
			v = v.NextUp()
		} else {
			v = v.NextDown()
		}
		result = append(result, v)
	}
	return result
}
