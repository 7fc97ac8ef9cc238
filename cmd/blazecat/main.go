// Command blazecat reads a CSV/TSV file through the library's memory-
// mapped reader and prints it back out, one of the presets selected by
// flag. It exists mainly as a runnable smoke test for the library and a
// throughput demo, in the spirit of the teacher's cmd/benchmark tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"

	"github.com/csvquery/blazecsv"
	"github.com/csvquery/blazecsv/internal/fieldref"
	"github.com/csvquery/blazecsv/internal/simd"
)

func main() {
	var (
		numCols    = flag.Int("cols", 0, "number of columns (required)")
		delim      = flag.String("delim", ",", "field delimiter (single byte)")
		preset     = flag.String("preset", "checked", "turbo | checked | safe")
		skipHeader = flag.Bool("header", true, "first line is a header row")
		lz4In      = flag.Bool("lz4", false, "input is lz4-compressed; decompress to a temp file before mapping")
	)
	flag.Parse()

	if flag.NArg() != 1 || *numCols <= 0 {
		fmt.Fprintln(os.Stderr, "usage: blazecat -cols=N [-delim=,] [-preset=turbo|checked|safe] [-header=true] [-lz4] <path>")
		os.Exit(2)
	}
	path := flag.Arg(0)
	if len(*delim) != 1 {
		fmt.Fprintln(os.Stderr, "blazecat: -delim must be exactly one byte")
		os.Exit(2)
	}
	d := (*delim)[0]

	if *lz4In {
		decompressed, err := decompressLZ4ToTemp(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "blazecat: %v\n", err)
			os.Exit(1)
		}
		defer os.Remove(decompressed)
		path = decompressed
	}

	fmt.Fprintf(os.Stderr, "blazecat: scan path %s\n", simd.ActivePath())

	switch *preset {
	case "turbo":
		runTurbo(path, *numCols, d, *skipHeader)
	case "checked":
		runChecked(path, *numCols, d, *skipHeader)
	case "safe":
		runSafe(path, *numCols, d, *skipHeader)
	default:
		fmt.Fprintf(os.Stderr, "blazecat: unknown preset %q\n", *preset)
		os.Exit(2)
	}
}

// decompressLZ4ToTemp expands an lz4-framed file to a plain temp file, since
// the mmap-based zero-copy core operates on a file descriptor's bytes
// directly and cannot scan compressed data in place.
func decompressLZ4ToTemp(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	out, err := os.CreateTemp("", "blazecat-*.csv")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer out.Close()

	zr := lz4.NewReader(in)
	if _, err := io.Copy(out, zr); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("lz4 decompress %s: %w", path, err)
	}
	return out.Name(), nil
}

func printRow(data []byte, fields []fieldref.Ref) {
	for i, f := range fields {
		if i > 0 {
			fmt.Print(",")
		}
		s, _ := fieldref.ParseString(f.View(data))
		fmt.Print(s)
	}
	fmt.Println()
}

func runTurbo(path string, numCols int, delim byte, skipHeader bool) {
	r, err := blazecsv.OpenTurbo(path, numCols, delim, skipHeader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blazecat: %v\n", err)
		os.Exit(1)
	}
	defer r.Close()

	data := r.Data()
	count := r.ForEach(func(fields []fieldref.Ref) bool {
		printRow(data, fields)
		return true
	})
	fmt.Fprintf(os.Stderr, "blazecat: %d rows\n", count)
}

func runChecked(path string, numCols int, delim byte, skipHeader bool) {
	r, err := blazecsv.OpenChecked(path, numCols, delim, skipHeader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blazecat: %v\n", err)
		os.Exit(1)
	}
	defer r.Close()

	data := r.Data()
	count := r.ForEach(func(fields []fieldref.Ref) bool {
		printRow(data, fields)
		return true
	})
	if r.HasError() {
		last := r.LastError()
		fmt.Fprintf(os.Stderr, "blazecat: %d rows, last error %s at line %d\n", count, last.Code, last.Line)
	} else {
		fmt.Fprintf(os.Stderr, "blazecat: %d rows\n", count)
	}
}

func runSafe(path string, numCols int, delim byte, skipHeader bool) {
	r, err := blazecsv.OpenSafe(path, numCols, delim, skipHeader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blazecat: %v\n", err)
		os.Exit(1)
	}
	defer r.Close()

	data := r.Data()
	count := r.ForEach(func(fields []fieldref.Ref) bool {
		printRow(data, fields)
		return true
	})
	if r.HasError() {
		last := r.LastError()
		fmt.Fprintf(os.Stderr, "blazecat: %d rows, last error %s at line %d col %d\n", count, last.Code, last.Line, last.Column)
	} else {
		fmt.Fprintf(os.Stderr, "blazecat: %d rows\n", count)
	}
}
