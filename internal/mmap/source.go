// Package mmap opens a file read-only and exposes it as a contiguous,
// read-only byte range with a stable base and length — the Mapped Source
// that every other package in this module borrows its field references
// from. Grounded on the teacher's internal/common mmap helpers, split
// across platform files the way its mmap_windows.go fallback already is.
package mmap

import (
	"fmt"
	"os"
)

// Source is a read-only view of a file's bytes obtained from the OS. It
// is the single owner of the parsed data's storage: every Ref handed out
// by a Reader is a non-owning borrow into Source.Data() and must not be
// used after Close.
//
// Source is non-copyable by convention (copying would duplicate the fd
// and mapping bookkeeping without duplicating the mapping itself) but is
// safe to pass by pointer and to read from concurrently — the mapping is
// immutable for its lifetime.
type Source struct {
	file  *os.File
	data  []byte
	size  int64
	valid bool
}

// Open maps path read-only. Per spec §4.1, construction itself does not
// fail loudly: on any failure Open still returns a non-nil *Source whose
// Valid() is false, Size() is 0, and Data() is nil, alongside the error
// that explains why. Callers that only care about validity may ignore the
// error and check Valid().
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Source{}, fmt.Errorf("mmap: open %s: %w", path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return &Source{}, fmt.Errorf("mmap: stat %s: %w", path, err)
	}
	size := stat.Size()

	if size == 0 {
		// Nothing to map; a zero-length mmap is invalid on most
		// platforms, so serve an empty, already-closed source.
		f.Close()
		return &Source{size: 0, valid: true}, nil
	}

	data, err := mapFile(f, size)
	if err != nil {
		f.Close()
		return &Source{}, fmt.Errorf("mmap: map %s: %w", path, err)
	}

	s := &Source{file: f, data: data, size: size, valid: true}
	adviseSequential(data)
	return s, nil
}

// Data returns the mapped byte range. Every Ref produced while this
// Source is open borrows from this slice; the slice must not be retained
// past Close.
func (s *Source) Data() []byte { return s.data }

// Size returns the mapped length in bytes.
func (s *Source) Size() int64 { return s.size }

// Valid reports whether the mapping succeeded (or the file was
// legitimately empty).
func (s *Source) Valid() bool { return s.valid }

// Close releases the mapping and the underlying file descriptor. It is
// safe to call multiple times.
func (s *Source) Close() error {
	var err error
	if s.data != nil {
		err = unmapFile(s.data)
		s.data = nil
	}
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
		s.file = nil
	}
	return err
}
