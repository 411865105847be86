// Package demo runs the fixed fast-exponentiation examples and renders
// their results as plain text.
package demo

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/oste/fastexp"
	"github.com/oste/fastexp/logger"
)

// Run computes the three demonstration examples and writes their results
// to w. The output format is stable; timings go to the logger at debug
// level instead.
func Run(w io.Writer) error {
	log := logger.Logger()
	var buf bytes.Buffer

	var base, exponent, modulus int64

	fmt.Fprintln(&buf, "=== Fast Power (Integer) ===")
	base, exponent = 2, 10
	start := time.Now()
	result := fastexp.Pow(base, exponent)
	log.Debug().Int64("base", base).Int64("exponent", exponent).Dur("took", time.Since(start)).Msg("pow")
	fmt.Fprintf(&buf, "%d^%d = %d\n", base, exponent, result)

	fmt.Fprintln(&buf, "\n=== Fast Power Mod (Modular Exponentiation) ===")
	base, exponent, modulus = 2, 10, 1000
	start = time.Now()
	result = fastexp.ModPow(base, exponent, modulus)
	log.Debug().Int64("base", base).Int64("exponent", exponent).Int64("modulus", modulus).Dur("took", time.Since(start)).Msg("modpow")
	fmt.Fprintf(&buf, "(%d^%d) %% %d = %d\n", base, exponent, modulus, result)

	base, exponent, modulus = 12345, 67890, 1000000007
	start = time.Now()
	result = fastexp.ModPow(base, exponent, modulus)
	log.Debug().Int64("base", base).Int64("exponent", exponent).Int64("modulus", modulus).Dur("took", time.Since(start)).Msg("modpow")
	fmt.Fprintf(&buf, "(%d^%d) %% %d = %d\n", base, exponent, modulus, result)

	_, err := w.Write(buf.Bytes())
	return err
}
