package fdpath

import (
	"errors"
	"fmt"
	"syscall"
)

// Kind classifies why a lookup failed.
type Kind int

const (
	// KindOS is a raw OS error with no more specific meaning.
	KindOS Kind = iota
	// KindInvalidHandle means the handle does not refer to an open file.
	KindInvalidHandle
	// KindNotFound means the handle is open but has no path association.
	KindNotFound
	// KindUnsupported means the platform or the object type cannot report a path.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindInvalidHandle:
		return "invalid handle"
	case KindNotFound:
		return "no path"
	case KindUnsupported:
		return "unsupported"
	default:
		return "os error"
	}
}

// Sentinels matched by *LookupError through errors.Is.
var (
	ErrInvalidHandle = errors.New("invalid handle")
	ErrNotFound      = errors.New("no path associated with handle")
	ErrUnsupported   = errors.New("path lookup not supported for handle")
)

// LookupError is returned by every failed lookup.
type LookupError struct {
	Op     string // OS call that failed, e.g. "readlink"
	Handle Handle
	Kind   Kind
	Err    error // underlying error, usually a syscall.Errno; may be nil
}

func newError(op string, h Handle, kind Kind, err error) *LookupError {
	return &LookupError{Op: op, Handle: h, Kind: kind, Err: err}
}

func (e *LookupError) Error() string {
	var msg string
	if e.Handle == invalidHandle {
		msg = fmt.Sprintf("fdpath: %s: %s", e.Op, e.Kind)
	} else {
		msg = fmt.Sprintf("fdpath: %s %d: %s", e.Op, e.Handle, e.Kind)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *LookupError) Is(target error) bool {
	switch target {
	case ErrInvalidHandle:
		return e.Kind == KindInvalidHandle
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrUnsupported:
		return e.Kind == KindUnsupported
	}
	return false
}

// Code returns the raw OS error code carried by err, if there is one.
func Code(err error) (uintptr, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uintptr(errno), true
	}
	return 0, false
}
