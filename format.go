package gocalc

import "strconv"

// FormatResult renders v in plain decimal with the fewest digits that round
// trip, so integral results print without a fraction or exponent: 2, not 2.0
// or 2e+00.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
