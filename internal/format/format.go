// Package format holds the shared CSV-safe numeric display rule applied
// to every summary value the application shows or exports.
package format

import (
	"math"
	"strconv"
)

// display precision for summary values
const decimals = 4

// Round applies the shared display rounding to a raw value.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	shift := math.Pow(10, decimals)
	return math.Round(v*shift) / shift
}

// Value renders a value under the shared rule: rounded, minimal digits,
// no trailing zeros, safe to place in a CSV cell unquoted.
func Value(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', -1, 64)
}
