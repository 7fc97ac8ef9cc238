package fieldref

import "github.com/csvquery/blazecsv/internal/policy"

// Signed is the set of integer types ParseInt can produce.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of integer types ParseUint can produce.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

const (
	maxUint64Div10 = ^uint64(0) / 10
	maxInt64Mag    = uint64(1) << 63 // magnitude of math.MinInt64; math.MaxInt64 magnitude is one less
)

// parseUint64Magnitude parses an unsigned base-10 integer from b with no
// sign, overflow-checked against uint64. Must consume every byte.
func parseUint64Magnitude(b []byte) (uint64, policy.ErrorCode) {
	if len(b) == 0 {
		return 0, policy.InvalidInteger
	}
	var acc uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, policy.InvalidInteger
		}
		d := uint64(c - '0')
		if acc > maxUint64Div10 {
			return 0, policy.OutOfRange
		}
		acc *= 10
		if acc > ^uint64(0)-d {
			return 0, policy.OutOfRange
		}
		acc += d
	}
	return acc, policy.Ok
}

// parseUint64 parses b as an unsigned integer with an optional leading
// '+'.
func parseUint64(b []byte) (uint64, policy.ErrorCode) {
	if len(b) > 0 && b[0] == '+' {
		b = b[1:]
	}
	return parseUint64Magnitude(b)
}

// parseInt64 parses b as a signed integer with an optional leading '+'
// or '-'.
func parseInt64(b []byte) (int64, policy.ErrorCode) {
	neg := false
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		neg = b[0] == '-'
		b = b[1:]
	}
	mag, code := parseUint64Magnitude(b)
	if code != policy.Ok {
		return 0, code
	}
	if neg {
		if mag > maxInt64Mag {
			return 0, policy.OutOfRange
		}
		return -int64(mag), policy.Ok
	}
	if mag > maxInt64Mag-1 {
		return 0, policy.OutOfRange
	}
	return int64(mag), policy.Ok
}

// ParseInt consumes the entire field as a signed base-10 integer with an
// optional leading '+'/'-'. It fails with OutOfRange if the value
// overflows T's range, InvalidInteger if the bytes aren't a valid
// integer at all, and succeeds iff the whole slice is consumed.
func ParseInt[T Signed](b []byte) (T, policy.ErrorCode) {
	v, code := parseInt64(b)
	if code != policy.Ok {
		return 0, code
	}
	t := T(v)
	if int64(t) != v {
		return 0, policy.OutOfRange
	}
	return t, policy.Ok
}

// ParseUint consumes the entire field as an unsigned base-10 integer with
// an optional leading '+'. Same failure semantics as ParseInt.
func ParseUint[T Unsigned](b []byte) (T, policy.ErrorCode) {
	v, code := parseUint64(b)
	if code != policy.Ok {
		return 0, code
	}
	t := T(v)
	if uint64(t) != v {
		return 0, policy.OutOfRange
	}
	return t, policy.Ok
}
