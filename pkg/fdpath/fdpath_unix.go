//go:build unix

package fdpath

import (
	"errors"
	"math"
	"syscall"

	"golang.org/x/sys/unix"
)

// descriptor checks that h is an open descriptor of this process.
func descriptor(h Handle) (int, error) {
	// fds are C ints; a larger value would be truncated into some other fd.
	if h > math.MaxInt32 {
		return -1, newError("fstat", h, KindInvalidHandle, unix.EBADF)
	}
	fd := int(h)

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return -1, classify("fstat", h, err)
	}
	return fd, nil
}

func classify(op string, h Handle, err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return newError(op, h, KindOS, err)
	}

	switch errno {
	case unix.EBADF:
		return newError(op, h, KindInvalidHandle, errno)
	case unix.ENOENT:
		return newError(op, h, KindNotFound, errno)
	}
	// ENOTSUP and EOPNOTSUPP share a value on Linux.
	if errno == unix.ENOTSUP || errno == unix.EOPNOTSUPP {
		return newError(op, h, KindUnsupported, errno)
	}
	return newError(op, h, KindOS, errno)
}
