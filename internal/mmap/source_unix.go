//go:build linux || darwin

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps the first size bytes of f read-only and shared, so the
// kernel can evict clean pages under memory pressure instead of ever
// needing to write them back.
func mapFile(f *os.File, size int64) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
}

func unmapFile(data []byte) error {
	return unix.Munmap(data)
}

// adviseSequential tells the kernel this mapping will be read start to
// end, the way the teacher's scanner reads every mapped CSV file. Advice
// is best-effort: a failure here must never surface to the caller, since
// it changes performance, not correctness.
func adviseSequential(data []byte) {
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
