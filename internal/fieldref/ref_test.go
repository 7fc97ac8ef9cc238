package fieldref

import (
	"testing"

	"github.com/csvquery/blazecsv/internal/policy"
)

func TestRefView(t *testing.T) {
	data := []byte("hello,world")
	r := Ref{Begin: 0, End: 5}
	if got := string(r.View(data)); got != "hello" {
		t.Errorf("View = %q, want %q", got, "hello")
	}
	if r.Size() != 5 {
		t.Errorf("Size = %d, want 5", r.Size())
	}
	if r.Empty() {
		t.Error("Empty = true, want false")
	}
}

func TestRefEmpty(t *testing.T) {
	r := Ref{Begin: 3, End: 3}
	if !r.Empty() {
		t.Error("Empty = false, want true")
	}
	if r.Size() != 0 {
		t.Errorf("Size = %d, want 0", r.Size())
	}
}

func TestRefIsNull(t *testing.T) {
	data := []byte("a,NA,NULL,")
	refs := []Ref{
		{0, 1},  // "a"
		{2, 4},  // "NA"
		{5, 9},  // "NULL"
		{10, 10}, // ""
	}
	want := []bool{false, true, false, true}
	for i, r := range refs {
		if got := r.IsNull(data, policy.StandardNull{}); got != want[i] {
			t.Errorf("refs[%d].IsNull(Standard) = %v, want %v", i, got, want[i])
		}
	}
	if !refs[2].IsNull(data, policy.LenientNull{}) {
		t.Error(`refs[2]="NULL".IsNull(Lenient) = false, want true`)
	}
	for i, r := range refs {
		if r.IsNull(data, policy.NoCheckNull{}) {
			t.Errorf("refs[%d].IsNull(NoCheck) = true, want false", i)
		}
	}
}

func TestValueOr(t *testing.T) {
	data := []byte("42,NA,bad")
	refs := []Ref{{0, 2}, {3, 5}, {6, 9}}
	got := ValueOr(refs[0], data, ParseInt[int], -1)
	if got != 42 {
		t.Errorf("ValueOr(valid) = %d, want 42", got)
	}
	got = ValueOr(refs[1], data, ParseInt[int], -1)
	if got != -1 {
		t.Errorf("ValueOr(null spelling, parse fails) = %d, want -1", got)
	}
	got = ValueOr(refs[2], data, ParseInt[int], -1)
	if got != -1 {
		t.Errorf("ValueOr(invalid) = %d, want -1", got)
	}
}

// TestValueOrStringAlwaysSucceeds shows why ValueOr takes no null policy:
// ParseStringSlice/ParseString never fail, so a null spelling comes back
// verbatim instead of falling back, unlike ParseInt above.
func TestValueOrStringAlwaysSucceeds(t *testing.T) {
	data := []byte("42,NA,bad")
	refs := []Ref{{0, 2}, {3, 5}, {6, 9}}

	if got := ValueOr(refs[1], data, ParseStringSlice, []byte("fallback")); string(got) != "NA" {
		t.Errorf("ValueOr(ParseStringSlice, null spelling) = %q, want \"NA\"", got)
	}
	if got := ValueOr(refs[1], data, ParseString, "fallback"); got != "NA" {
		t.Errorf("ValueOr(ParseString, null spelling) = %q, want \"NA\"", got)
	}
}

func TestAsOptional(t *testing.T) {
	data := []byte("42,NA,bad")
	refs := []Ref{{0, 2}, {3, 5}, {6, 9}}
	if v, ok := AsOptional(refs[0], data, policy.StandardNull{}, ParseInt[int]); !ok || v != 42 {
		t.Errorf("AsOptional(valid) = %d, %v, want 42, true", v, ok)
	}
	if _, ok := AsOptional(refs[1], data, policy.StandardNull{}, ParseInt[int]); ok {
		t.Error("AsOptional(null) ok = true, want false")
	}
	if _, ok := AsOptional(refs[2], data, policy.StandardNull{}, ParseInt[int]); ok {
		t.Error("AsOptional(invalid) ok = true, want false")
	}
}

// TestAsOptionalString shows AsOptional's null check still fires for
// parse<string-slice>/parse<owned-string> even though the parse step
// itself never fails — the null policy, not the parser, is what makes
// refs[1] ("NA") come back as !ok here.
func TestAsOptionalString(t *testing.T) {
	data := []byte("42,NA,bad")
	refs := []Ref{{0, 2}, {3, 5}, {6, 9}}

	if v, ok := AsOptional(refs[2], data, policy.StandardNull{}, ParseStringSlice); !ok || string(v) != "bad" {
		t.Errorf("AsOptional(ParseStringSlice, non-null) = %q, %v, want \"bad\", true", v, ok)
	}
	if _, ok := AsOptional(refs[1], data, policy.StandardNull{}, ParseStringSlice); ok {
		t.Error("AsOptional(ParseStringSlice, null) ok = true, want false")
	}
	if v, ok := AsOptional(refs[2], data, policy.StandardNull{}, ParseString); !ok || v != "bad" {
		t.Errorf("AsOptional(ParseString, non-null) = %q, %v, want \"bad\", true", v, ok)
	}
	if _, ok := AsOptional(refs[1], data, policy.StandardNull{}, ParseString); ok {
		t.Error("AsOptional(ParseString, null) ok = true, want false")
	}
}
