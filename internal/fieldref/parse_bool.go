package fieldref

import "github.com/csvquery/blazecsv/internal/policy"

var trueSpellings = map[string]bool{
	"1": true, "t": true, "T": true, "y": true, "Y": true,
	"true": true, "True": true, "TRUE": true,
	"yes": true, "Yes": true, "YES": true,
}

var falseSpellings = map[string]bool{
	"0": true, "f": true, "F": true, "n": true, "N": true,
	"false": true, "False": true, "FALSE": true,
	"no": true, "No": true, "NO": true,
}

// ParseBool maps the exact spellings enumerated in spec §4.3 to true or
// false, and fails with InvalidBool for anything else.
func ParseBool(b []byte) (bool, policy.ErrorCode) {
	s := string(b)
	if trueSpellings[s] {
		return true, policy.Ok
	}
	if falseSpellings[s] {
		return false, policy.Ok
	}
	return false, policy.InvalidBool
}
