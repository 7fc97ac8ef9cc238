//go:build windows

package mmap

import (
	"io"
	"os"
)

// mapFile falls back to reading the whole file into a heap buffer on
// Windows. This is the same stopgap the teacher's mmap_windows.go takes
// ("Fallback to ReadAll on Windows for now to avoid unsafe pointer
// arithmetic complexity without external lib") — it gives up zero-copy
// mmap semantics but keeps the Source API identical across platforms.
// TODO: back this with golang.org/x/sys/windows.CreateFileMapping.
func mapFile(f *os.File, size int64) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func unmapFile(data []byte) error {
	return nil
}

func adviseSequential(data []byte) {}
