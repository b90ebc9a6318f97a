package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vertti/fdpath/pkg/fdpath"
)

// parseHandle accepts a decimal descriptor, a 0x-prefixed handle value, or
// one of stdin, stdout and stderr.
func parseHandle(s string) (fdpath.Handle, error) {
	lower := strings.ToLower(s)
	switch lower {
	case "stdin":
		return os.Stdin.Fd(), nil
	case "stdout":
		return os.Stdout.Fd(), nil
	case "stderr":
		return os.Stderr.Fd(), nil
	}

	var (
		n   uint64
		err error
	)
	if hex, ok := strings.CutPrefix(lower, "0x"); ok {
		n, err = strconv.ParseUint(hex, 16, strconv.IntSize)
	} else {
		n, err = strconv.ParseUint(s, 10, strconv.IntSize)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid descriptor %q: expected a number or stdin, stdout, stderr", s)
	}
	return fdpath.Handle(n), nil
}
