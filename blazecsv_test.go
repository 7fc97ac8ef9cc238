package blazecsv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/csvquery/blazecsv/internal/fieldref"
	"github.com/csvquery/blazecsv/internal/policy"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestOpenTurboRoundTrip(t *testing.T) {
	path := writeTemp(t, "a,b,c\n1,2,3\n4,5,6\n")
	r, err := OpenTurbo(path, 3, ',', true)
	if err != nil {
		t.Fatalf("OpenTurbo: %v", err)
	}
	defer r.Close()

	data := r.Data()
	count := r.ForEach(func(fields []fieldref.Ref) bool {
		if len(fields) != 3 {
			t.Errorf("len(fields) = %d, want 3", len(fields))
		}
		_ = string(fields[0].View(data))
		return true
	})
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}

func TestOpenSafeNullDetection(t *testing.T) {
	path := writeTemp(t, "x\n42\n\nNA\n-\n")
	r, err := OpenSafe(path, 1, ',', true)
	if err != nil {
		t.Fatalf("OpenSafe: %v", err)
	}
	defer r.Close()

	data := r.Data()
	var nulls []bool
	count := r.ForEach(func(fields []fieldref.Ref) bool {
		nulls = append(nulls, fields[0].IsNull(data, r.NullChecker()))
		return true
	})
	if count != 3 {
		t.Fatalf("count = %d, want 3 (S2)", count)
	}
	want := []bool{false, true, true}
	for i, w := range want {
		if nulls[i] != w {
			t.Errorf("nulls[%d] = %v, want %v", i, nulls[i], w)
		}
	}
}

func TestOpenCheckedColumnMismatch(t *testing.T) {
	path := writeTemp(t, "a,b,c\n1,2,3\n4,5\n6,7,8\n")
	r, err := OpenChecked(path, 3, ',', true)
	if err != nil {
		t.Fatalf("OpenChecked: %v", err)
	}
	defer r.Close()

	count := r.ForEach(func(fields []fieldref.Ref) bool { return true })
	if count != 2 {
		t.Fatalf("count = %d, want 2 (S3)", count)
	}
	if r.LastError().Code != policy.ColumnCountMismatch {
		t.Errorf("LastError().Code = %v, want ColumnCountMismatch", r.LastError().Code)
	}
}

func TestOpenParallelSumsRows(t *testing.T) {
	path := writeTemp(t, "n\n1\n2\n3\n4\n5\n")
	pr, err := OpenParallel[policy.NoCheckNull](path, 1, ',', 2, true, policy.NoCheckNull{})
	if err != nil {
		t.Fatalf("OpenParallel: %v", err)
	}
	defer pr.Close()

	count := pr.ForEachParallel(func(workerID int, fields []fieldref.Ref) bool { return true })
	if count != 5 {
		t.Fatalf("count = %d, want 5", count)
	}
}
