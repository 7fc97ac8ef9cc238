package fieldref

import "github.com/csvquery/blazecsv/internal/policy"

// Parser is any of the typed extraction functions in this package:
// ParseInt, ParseUint, ParseFloat64, ParseBool, ParseDate, ParseDateTime.
type Parser[T any] func([]byte) (T, policy.ErrorCode)

// ValueOr runs parse over the field's view of data and returns fallback
// on any parse failure. Per spec §4.3, value_or takes no null policy at
// all — unlike AsOptional, it does not special-case null fields; a null
// spelling only yields fallback if parse itself fails on it (true of
// every typed parser in this package, but not of ParseString/
// ParseStringSlice, which always succeed — passing one of those to
// ValueOr returns the literal field bytes, null spelling or not).
func ValueOr[T any](r Ref, data []byte, parse Parser[T], fallback T) T {
	v, code := parse(r.View(data))
	if code != policy.Ok {
		return fallback
	}
	return v
}

// AsOptional runs parse over the field's view of data and reports
// whether a usable value resulted: false for a null field or a parse
// failure, true with the parsed value otherwise.
func AsOptional[T any](r Ref, data []byte, checker policy.NullChecker, parse Parser[T]) (T, bool) {
	var zero T
	b := r.View(data)
	if checker.IsNull(b) {
		return zero, false
	}
	v, code := parse(b)
	if code != policy.Ok {
		return zero, false
	}
	return v, true
}
