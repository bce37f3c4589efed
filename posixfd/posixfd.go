//go:build unix

// Package posixfd instantiates the resource wrapper for POSIX file
// descriptors: -1 is the unallocated value, so wrappers carry no
// separate flag and a failed acquisition can be wrapped directly.
package posixfd

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/partite-ai/resguard/resource"
)

// Traits report descriptors >= 0 as allocated; the default value is -1.
type Traits struct{}

func (Traits) MakeDefault() int { return -1 }

func (Traits) IsAllocated(fd int) bool { return fd >= 0 }

// Close reclaims a descriptor. The close result is ignored: on most
// systems the descriptor is closed even when close(2) fails with
// EINTR, and retrying could close an unrelated descriptor opened by
// another thread in the meantime.
func Close(fd int) {
	_ = unix.Close(fd)
}

// New wraps an already-open descriptor. Negative values yield an
// unallocated wrapper; Close is never invoked on them.
func New(fd int) *resource.Unique[int] {
	return resource.NewWithTraits(fd, Close, Traits{})
}

// Open opens path and returns an owned descriptor wrapper.
func Open(path string, flags int, mode uint32) (*resource.Unique[int], error) {
	return resource.AcquireWithTraits(func() (int, error) {
		fd, err := unix.Open(path, flags, mode)
		if err != nil {
			return -1, fmt.Errorf("open %s: %w", path, err)
		}
		return fd, nil
	}, Close, Traits{})
}

// Dup duplicates fd into a new owned wrapper. The original descriptor
// is untouched.
func Dup(fd int) (*resource.Unique[int], error) {
	dupped, err := unix.Dup(fd)
	if err != nil {
		return nil, fmt.Errorf("dup %d: %w", fd, err)
	}
	return New(dupped), nil
}

// Pipe returns owned wrappers for the read and write ends of a new
// pipe.
func Pipe() (r, w *resource.Unique[int], err error) {
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		return nil, nil, fmt.Errorf("pipe: %w", err)
	}
	return New(p[0]), New(p[1]), nil
}
