package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/csvquery/blazecsv/internal/fieldref"
	"github.com/csvquery/blazecsv/internal/policy"
)

func TestParallelReaderSumsAllRows(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("n\n")
	const rows = 10000
	for i := 1; i <= rows; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "nums.csv")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	pr, err := OpenParallel[policy.NoCheckNull](path, 1, ',', 4, true, policy.NoCheckNull{})
	if err != nil {
		t.Fatalf("OpenParallel: %v", err)
	}
	defer pr.Close()

	data := pr.Data()
	var mu sync.Mutex
	sum := int64(0)
	count := pr.ForEachParallel(func(workerID int, fields []fieldref.Ref) bool {
		v, err := strconv.ParseInt(string(fields[0].View(data)), 10, 64)
		if err != nil {
			t.Errorf("unexpected parse failure: %v", err)
			return true
		}
		mu.Lock()
		sum += v
		mu.Unlock()
		return true
	})

	if count != rows {
		t.Fatalf("count = %d, want %d (S5)", count, rows)
	}
	const wantSum = 50005000
	if sum != wantSum {
		t.Fatalf("sum = %d, want %d (S5)", sum, wantSum)
	}
}

func TestParallelReaderHeadersAndColumnIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n3,4\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	pr, err := OpenParallel[policy.NoCheckNull](path, 2, ',', 2, true, policy.NoCheckNull{})
	if err != nil {
		t.Fatalf("OpenParallel: %v", err)
	}
	defer pr.Close()

	if idx, ok := pr.ColumnIndex("B"); !ok || idx != 1 {
		t.Errorf("ColumnIndex(B) = %d, %v, want 1, true", idx, ok)
	}

	var mu sync.Mutex
	total := 0
	pr.ForEachParallel(func(workerID int, fields []fieldref.Ref) bool {
		mu.Lock()
		total++
		mu.Unlock()
		return true
	})
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
}
