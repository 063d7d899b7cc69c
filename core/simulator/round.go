package simulator

import (
	"math"
	"math/big"
	"strconv"
)

// Round rounds v to the given number of decimal digits, half away from zero.
// Ties are judged on the exact binary value of v, so 157.35 (stored as
// 157.34999...) rounds down. Rounding an already rounded value returns it
// unchanged.
func Round(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	// FloatString rounds halves away from zero.
	s := new(big.Rat).SetFloat64(v).FloatString(digits)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f == 0 {
		// drop negative zero
		return 0
	}
	return f
}
