// Package fastexp implements binary (fast) exponentiation over fixed-width
// signed integers, with and without a modulus.
//
// Both exponentiation paths consume the exponent one bit at a time, least
// significant first, squaring the base at each step; they run in O(log e)
// multiplications and O(1) space.
//
// fastexp provides:
//   - ModPow: (base^exponent) mod modulus, reduced after every multiplication
//   - Pow: base^exponent with silent wraparound at the width of the type
//   - PowChecked: base^exponent over int64 with overflow detection
package fastexp

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
