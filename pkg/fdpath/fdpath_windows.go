//go:build windows

package fdpath

import (
	"encoding/binary"
	"errors"
	"strings"
	"syscall"
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

const supported = true

// GetFinalPathNameByHandle flags. Both are zero in the Win32 headers and
// x/sys/windows does not export them.
const (
	fileNameNormalized = 0x0
	volumeNameDOS      = 0x0
)

// maxNameInfo caps FILE_NAME_INFO buffer growth.
const maxNameInfo = 64 * 1024

// Initial buffer sizes, in uint16s and bytes. Variables so tests can force
// the growth paths.
var (
	finalPathBufLen = windows.MAX_PATH
	nameInfoBufLen  = 4096
)

// resolve asks for the final path of a disk handle, falling back to the
// volume relative FileNameInfo when the final path is unavailable.
func resolve(h Handle) (string, error) {
	handle := windows.Handle(h)
	if handle == 0 || handle == windows.InvalidHandle {
		return "", newError("GetFileType", h, KindInvalidHandle, windows.ERROR_INVALID_HANDLE)
	}

	typ, err := windows.GetFileType(handle)
	if err != nil {
		return "", classify("GetFileType", h, err)
	}
	if typ != windows.FILE_TYPE_DISK {
		// Consoles, pipes and sockets have no filesystem path.
		return "", newError("GetFileType", h, KindUnsupported, nil)
	}

	path, err := finalPathName(handle)
	if err == nil {
		return path, nil
	}
	if !unsupportedCall(err) {
		return "", classify("GetFinalPathNameByHandle", h, err)
	}

	name, err := fileNameInfo(handle)
	if err != nil {
		return "", classify("GetFileInformationByHandleEx", h, err)
	}
	if name == "" {
		return "", newError("GetFileInformationByHandleEx", h, KindNotFound, nil)
	}
	return name, nil
}

func finalPathName(h windows.Handle) (string, error) {
	buf := make([]uint16, finalPathBufLen)
	for {
		n, err := windows.GetFinalPathNameByHandle(h, &buf[0], uint32(len(buf)), fileNameNormalized|volumeNameDOS)
		if err != nil {
			return "", err
		}
		// A return value at least as large as the buffer is the size needed,
		// including the terminating NUL.
		if n < uint32(len(buf)) {
			return trimExtendedPrefix(windows.UTF16ToString(buf[:n])), nil
		}
		buf = make([]uint16, n)
	}
}

// fileNameInfo decodes FILE_NAME_INFO: a DWORD byte length followed by an
// unterminated UTF-16 name.
func fileNameInfo(h windows.Handle) (string, error) {
	buf := make([]byte, nameInfoBufLen)
	for {
		err := windows.GetFileInformationByHandleEx(h, windows.FileNameInfo, &buf[0], uint32(len(buf)))
		if errors.Is(err, windows.ERROR_MORE_DATA) && len(buf) < maxNameInfo {
			buf = make([]byte, 2*len(buf))
			continue
		}
		if err != nil {
			return "", err
		}
		break
	}

	n := binary.LittleEndian.Uint32(buf[:4])
	if int(n) > len(buf)-4 {
		n = uint32(len(buf) - 4)
	}
	raw := buf[4 : 4+n]
	u16 := make([]uint16, len(raw)/2)
	for i := range u16 {
		u16[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}
	return string(utf16.Decode(u16)), nil
}

// trimExtendedPrefix turns \\?\C:\x into C:\x and \\?\UNC\srv\share into \\srv\share.
func trimExtendedPrefix(p string) string {
	if rest, ok := strings.CutPrefix(p, `\\?\UNC\`); ok {
		return `\\` + rest
	}
	return strings.TrimPrefix(p, `\\?\`)
}

func unsupportedCall(err error) bool {
	return errors.Is(err, windows.ERROR_INVALID_FUNCTION) ||
		errors.Is(err, windows.ERROR_INVALID_PARAMETER) ||
		errors.Is(err, windows.ERROR_NOT_SUPPORTED)
}

func classify(op string, h Handle, err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return newError(op, h, KindOS, err)
	}

	switch {
	case errno == windows.ERROR_INVALID_HANDLE:
		return newError(op, h, KindInvalidHandle, errno)
	case errno == windows.ERROR_FILE_NOT_FOUND, errno == windows.ERROR_PATH_NOT_FOUND:
		return newError(op, h, KindNotFound, errno)
	case unsupportedCall(errno):
		return newError(op, h, KindUnsupported, errno)
	}
	return newError(op, h, KindOS, errno)
}
