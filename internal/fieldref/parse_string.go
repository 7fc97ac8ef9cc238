package fieldref

import "github.com/csvquery/blazecsv/internal/policy"

// ParseStringSlice returns the field's raw bytes unchanged — the
// borrowed, zero-copy view into data. Per spec §4.3 this always
// succeeds: there is no byte sequence it rejects.
func ParseStringSlice(b []byte) ([]byte, policy.ErrorCode) {
	return b, policy.Ok
}

// ParseString copies the field's bytes into an owned string. Per spec
// §4.3 this always succeeds, the same as ParseStringSlice; use it when
// the caller needs the value to outlive the mapping (e.g. for
// ValueOr/AsOptional results stored past Close).
func ParseString(b []byte) (string, policy.ErrorCode) {
	return string(b), policy.Ok
}
