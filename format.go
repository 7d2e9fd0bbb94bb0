// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math/big"

// minFormatDigits and maxFormatDigits bound the precision accepted by
// Format. No third-party decimal library in the surveyed ecosystem targets
// double-double output, so rendering is built on math/big.Float, which
// carries enough working precision to round a (hi, lo) pair correctly.
const (
	minFormatDigits = 3
	maxFormatDigits = 34

	defaultFormatDigits = maxFormatDigits
)

// String returns x formatted with the default precision (34 significant
// digits).
func (x DDouble) String() string { return x.Format(defaultFormatDigits) }

// Format renders x in decimal mantissa+exponent form with the given number
// of significant digits, clamped to [3, 34]. Zero renders as "0.0",
// infinities as "Inf"/"-Inf", and NaN as "NaN".
func (x DDouble) Format(digits int) string {
	switch {
	case digits < minFormatDigits:
		digits = minFormatDigits
	case digits > maxFormatDigits:
		digits = maxFormatDigits
	}

	switch {
	case IsNaN(x):
		return "NaN"
	case IsInf(x):
		if x.Hi < 0 {
			return "-Inf"
		}
		return "Inf"
	case IsZero(x):
		return "0.0"
	}

	// 34 decimal digits need a bit more than 113 bits of working precision
	// (the equivalent of IEEE quad); round up generously.
	hi := new(big.Float).SetPrec(200).SetFloat64(x.Hi)
	lo := new(big.Float).SetPrec(200).SetFloat64(x.Lo)
	sum := new(big.Float).SetPrec(200).Add(hi, lo)
	return sum.Text('e', digits-1)
}
