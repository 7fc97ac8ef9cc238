// Command blazebench generates a synthetic CSV file and measures the
// reader's throughput scanning it, in both the single-threaded Turbo
// preset and the parallel reader. Grounded on the teacher's
// cmd/benchmark/main.go, which does the same generate-then-measure
// dance against its own indexer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/csvquery/blazecsv"
	"github.com/csvquery/blazecsv/internal/fieldref"
	"github.com/csvquery/blazecsv/internal/policy"
	"github.com/csvquery/blazecsv/internal/simd"
)

func main() {
	sizeMB := flag.Int("size-mb", 500, "approximate size of the generated CSV, in MB")
	workers := flag.Int("workers", runtime.NumCPU(), "worker count for the parallel pass")
	flag.Parse()

	fmt.Printf("blazebench: scan path %s\n", simd.ActivePath())
	fmt.Printf("Generating %d MB CSV...\n", *sizeMB)

	tmpDir, err := os.MkdirTemp("", "blazebench")
	if err != nil {
		fmt.Fprintf(os.Stderr, "blazebench: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(tmpDir)

	csvPath := filepath.Join(tmpDir, "bench.csv")
	bytesWritten, rows, err := generateCSV(csvPath, int64(*sizeMB)*1024*1024)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blazebench: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d rows (%.2f MB)\n", rows, float64(bytesWritten)/1024/1024)

	fmt.Println("\n-- Turbo (single-threaded) --")
	benchTurbo(csvPath, bytesWritten)

	fmt.Println("\n-- Parallel --")
	benchParallel(csvPath, bytesWritten, *workers)
}

// generateCSV writes an "id,code,value,description" header line and then
// data rows until at least limit bytes of rows have been written,
// returning the data-row byte count (the header is not included) and the
// row count produced.
func generateCSV(path string, limit int64) (int64, int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 64*1024)
	w.WriteString("id,code,value,description\n")

	rng := rand.New(rand.NewSource(123))
	var bytesWritten int64
	rows := 0
	buf := make([]byte, 0, 1024)

	for bytesWritten < limit {
		rows++
		buf = buf[:0]
		buf = fmt.Appendf(buf, "%d,US-%d,%d,padding for row %d to make the line a bit longer\n",
			rows, rng.Intn(1000), rng.Intn(10000), rows)
		n, _ := w.Write(buf)
		bytesWritten += int64(n)
	}
	if err := w.Flush(); err != nil {
		return bytesWritten, rows, fmt.Errorf("flush %s: %w", path, err)
	}
	return bytesWritten, rows, nil
}

func benchTurbo(path string, bytesTotal int64) {
	start := time.Now()
	r, err := blazecsv.OpenTurbo(path, 4, ',', true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blazebench: %v\n", err)
		return
	}
	defer r.Close()

	data := r.Data()
	count := r.ForEach(func(fields []fieldref.Ref) bool {
		_ = fields[0].View(data)
		return true
	})
	elapsed := time.Since(start)
	report(bytesTotal, count, elapsed)
}

func benchParallel(path string, bytesTotal int64, workers int) {
	start := time.Now()
	pr, err := blazecsv.OpenParallel[policy.NoCheckNull](path, 4, ',', workers, true, policy.NoCheckNull{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "blazebench: %v\n", err)
		return
	}
	defer pr.Close()

	data := pr.Data()
	count := pr.ForEachParallel(func(workerID int, fields []fieldref.Ref) bool {
		_ = fields[0].View(data)
		return true
	})
	elapsed := time.Since(start)
	report(bytesTotal, count, elapsed)
}

func report(bytesTotal int64, rows int, elapsed time.Duration) {
	mbPerSec := float64(bytesTotal) / 1024 / 1024 / elapsed.Seconds()
	fmt.Printf("Rows:       %d\n", rows)
	fmt.Printf("Throughput: %.2f MB/s\n", mbPerSec)
	fmt.Printf("Time:       %v\n", elapsed.Round(time.Millisecond))
}
