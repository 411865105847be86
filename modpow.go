package fastexp

import "golang.org/x/exp/constraints"

// ModPow returns (base**exponent) mod modulus, reducing after every
// multiplication so intermediates never exceed (modulus-1)**2.
//
// modulus must be >= 1; ModPow(b, e, 1) is 0 for every b and e. The base is
// reduced first with Go's truncated remainder: a negative base keeps the
// dividend's sign, so the result may be negative, while non-negative inputs
// yield a value in [0, modulus). The result is exact as long as
// (modulus-1)**2 fits in T. ModPow(b, 0, m) == 1 for m >= 2, the empty
// product; a negative exponent is not validated and behaves like 0.
func ModPow[T constraints.Signed](base, exponent, modulus T) T {
	if modulus == 1 {
		return 0
	}
	base %= modulus
	result := T(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result * base % modulus
		}
		exponent >>= 1
		base = base * base % modulus
	}
	return result
}
