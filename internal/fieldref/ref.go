// Package fieldref provides the zero-copy field handle and the value
// extraction built on top of it: integers, floats, bools, dates,
// date-times, and null detection. Grounded on the teacher's byte-slice
// field extraction in internal/indexer/scanner.go, generalized from that
// scanner's quote-aware extraction (out of scope here — spec Non-goal #1)
// to a plain (begin, end) handle.
package fieldref

import "github.com/csvquery/blazecsv/internal/policy"

// Ref is a 16-byte handle (two ints) pointing into some mapped byte
// range. It borrows; it never copies, and it never outlives the range
// that produced it — that lifetime is the caller's responsibility, the
// same way a slice's backing array is.
type Ref struct {
	Begin int
	End   int
}

// View returns the field's raw bytes within data. data must be the same
// byte range the Ref was produced from (or an identical prefix of it).
func (r Ref) View(data []byte) []byte {
	return data[r.Begin:r.End]
}

// Size returns the field's length in bytes.
func (r Ref) Size() int { return r.End - r.Begin }

// Empty reports whether Begin == End.
func (r Ref) Empty() bool { return r.Begin == r.End }

// IsNull applies a null-vocabulary policy to the field's bytes.
func (r Ref) IsNull(data []byte, checker policy.NullChecker) bool {
	return checker.IsNull(r.View(data))
}
