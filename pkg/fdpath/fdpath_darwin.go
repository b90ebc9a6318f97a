//go:build darwin

package fdpath

import (
	"bytes"
	"unsafe"

	"golang.org/x/sys/unix"
)

const supported = true

// resolve asks the kernel for the vnode path with fcntl(F_GETPATH).
func resolve(h Handle) (string, error) {
	if _, err := descriptor(h); err != nil {
		return "", err
	}

	buf := make([]byte, unix.PathMax)
	// The pointer conversion stays inside the call expression so buf is
	// pinned until the syscall returns.
	_, _, errno := unix.Syscall(unix.SYS_FCNTL, h, unix.F_GETPATH, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		// fstat already accepted the fd, so EBADF means it is not a vnode
		// (socket, pipe, kqueue).
		if errno == unix.EBADF {
			return "", newError("fcntl", h, KindUnsupported, errno)
		}
		return "", classify("fcntl", h, errno)
	}

	n := bytes.IndexByte(buf, 0)
	if n < 0 {
		n = len(buf)
	}
	if n == 0 {
		return "", newError("fcntl", h, KindNotFound, nil)
	}
	return string(buf[:n]), nil
}
