// Package fdpath resolves the filesystem path behind an open file descriptor.
//
// The lookup is best effort. The returned path is whatever the operating
// system associates with the descriptor at the time of the call, which is not
// necessarily the path used to open it: the file may have been renamed or
// unlinked since. On Linux an unlinked file keeps its last path with the
// kernel's " (deleted)" suffix appended; that string is returned unchanged
// (see Deleted). Darwin reports the last path the vnode had and Windows the
// final path of the handle, neither with any guarantee that it still exists.
//
// The descriptor is borrowed for the duration of the call and is never closed,
// duplicated or repositioned. Nothing is cached; every call asks the OS.
package fdpath

import (
	"os"
	"strings"
)

// Handle is a native reference to an open file: a descriptor number on Unix
// and a HANDLE value on Windows.
type Handle = uintptr

// invalidHandle is reported as the handle of lookups that never reached the OS.
const invalidHandle = ^Handle(0)

// deletedSuffix is what Linux appends to /proc/self/fd links of unlinked files.
const deletedSuffix = " (deleted)"

// Resolver looks up the path of an open handle.
type Resolver interface {
	Resolve(h Handle) (string, error)
}

// OSResolver implements Resolver using the platform lookup.
type OSResolver struct{}

// Resolve calls the package level Resolve.
func (OSResolver) Resolve(h Handle) (string, error) {
	return Resolve(h)
}

// Resolve returns the path the operating system currently associates with h.
// On success the path is never empty. Failures are *LookupError values that
// match ErrInvalidHandle, ErrNotFound or ErrUnsupported with errors.Is, or
// carry a raw OS error (see Code).
func Resolve(h Handle) (string, error) {
	return resolve(h)
}

// FromFile resolves the descriptor backing f. The descriptor is held for the
// duration of the lookup so a concurrent Close cannot recycle it.
func FromFile(f *os.File) (string, error) {
	if f == nil {
		return "", newError("file", invalidHandle, KindInvalidHandle, os.ErrInvalid)
	}

	conn, err := f.SyscallConn()
	if err != nil {
		return "", newError("file", invalidHandle, KindInvalidHandle, err)
	}

	var (
		path     string
		innerErr error
	)
	if err := conn.Control(func(fd uintptr) {
		path, innerErr = resolve(fd)
	}); err != nil {
		return "", newError("file", invalidHandle, KindInvalidHandle, err)
	}
	return path, innerErr
}

// Supported reports whether this platform has a lookup strategy at all.
func Supported() bool {
	return supported
}

// Deleted reports whether path carries the Linux annotation for a file that
// was unlinked while still open. It only inspects the string.
func Deleted(path string) bool {
	return strings.HasSuffix(path, deletedSuffix)
}
