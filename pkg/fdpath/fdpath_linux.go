//go:build linux

package fdpath

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const supported = true

// resolve reads the /proc/self/fd link of the descriptor.
func resolve(h Handle) (string, error) {
	fd, err := descriptor(h)
	if err != nil {
		return "", err
	}

	target, err := os.Readlink(procFdPath(fd))
	if err != nil {
		return "", classify("readlink", h, err)
	}
	if target == "" {
		return "", newError("readlink", h, KindNotFound, nil)
	}

	// Sockets, pipes and anon inodes link to "socket:[ino]" style names, memfds
	// to "/memfd:name (deleted)". None of them live in the filesystem.
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "/memfd:") {
		return "", newError("readlink", h, KindUnsupported, fmt.Errorf("not a filesystem object: %s", target))
	}
	return target, nil
}

func procFdPath(fd int) string {
	return "/proc/self/fd/" + strconv.Itoa(fd)
}
