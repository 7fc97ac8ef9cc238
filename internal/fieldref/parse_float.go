package fieldref

import (
	"strconv"

	"github.com/csvquery/blazecsv/internal/policy"
)

// ParseFloat64 consumes the entire field as a decimal float: optional
// sign, integer part, fractional part, and an optional exponent
// ([eE][+-]?digits). A non-allocating fast path handles the common case
// without an exponent; on that path's failure (an exponent marker or
// malformed bytes) it falls back to a general strtod-like parse via
// strconv. Succeeds iff the whole slice is consumed.
func ParseFloat64(b []byte) (float64, policy.ErrorCode) {
	if v, ok := parseFloatFast(b); ok {
		return v, policy.Ok
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, policy.InvalidFloat
	}
	return v, policy.Ok
}

// parseFloatFast handles sign? digits? ('.' digits?)? with no exponent,
// entirely in integer/float64 arithmetic and no allocation. It reports
// ok=false for anything else (including a valid-but-exponentiated
// number), letting the caller fall back to strconv.
func parseFloatFast(b []byte) (float64, bool) {
	i := 0
	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}

	intStart := i
	var intPart float64
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		intPart = intPart*10 + float64(b[i]-'0')
		i++
	}
	hasInt := i > intStart

	hasFrac := false
	var frac float64
	fracDiv := 1.0
	if i < len(b) && b[i] == '.' {
		i++
		fracStart := i
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			frac = frac*10 + float64(b[i]-'0')
			fracDiv *= 10
			i++
		}
		hasFrac = i > fracStart
	}

	if !hasInt && !hasFrac {
		return 0, false
	}
	if i != len(b) {
		// Exponent marker or trailing garbage: defer to strconv.
		return 0, false
	}

	v := intPart + frac/fracDiv
	if neg {
		v = -v
	}
	return v, true
}
