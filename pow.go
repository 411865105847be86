package fastexp

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	// ErrOverflow is returned by PowChecked when the exact result does not
	// fit in an int64.
	ErrOverflow = errors.New("fastexp: result does not fit in int64")

	// ErrNegativeExponent is returned by PowChecked for a negative exponent.
	ErrNegativeExponent = errors.New("fastexp: negative exponent")
)

// Pow returns base**exponent.
//
// Arithmetic wraps around at the width of T, so the result is exact only
// while the true value fits; overflow is silent. Pow(b, 0) == 1 for any b,
// including 0. A negative exponent is not validated: the loop never runs and
// Pow returns 1.
func Pow[T constraints.Signed](base, exponent T) T {
	result := T(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result *= base
		}
		exponent >>= 1
		base *= base
	}
	return result
}

// PowChecked returns base**exponent over int64, or ErrOverflow if the exact
// result does not fit. Unlike Pow it rejects a negative exponent with
// ErrNegativeExponent.
func PowChecked(base, exponent int64) (int64, error) {
	if exponent < 0 {
		return 0, ErrNegativeExponent
	}
	result := int64(1)
	for exponent > 0 {
		var ok bool
		if exponent&1 == 1 {
			if result, ok = mul64(result, base); !ok {
				return 0, ErrOverflow
			}
		}
		exponent >>= 1
		if exponent == 0 {
			// the last square feeds no remaining bit; skipping it keeps
			// results like base**1 for base > sqrt(MaxInt64) in range
			break
		}
		if base, ok = mul64(base, base); !ok {
			return 0, ErrOverflow
		}
	}
	return result, nil
}

// mul64 multiplies a and b, reporting whether the product fits in int64.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		// MinInt64 survives multiplication by 1 only; MinInt64/-1 would
		// even fault in the quotient check below
		if a == 1 {
			return b, true
		}
		if b == 1 {
			return a, true
		}
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
