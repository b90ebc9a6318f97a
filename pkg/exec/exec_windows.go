//go:build windows

package exec

import "errors"

// ErrExecNotSupported indicates exec mode is not available on Windows.
var ErrExecNotSupported = errors.New("exec mode not supported on Windows; start the command from a wrapper script instead")

// Exec is not supported on Windows, which cannot replace a running process
// while keeping its handles.
func (e *RealExecutor) Exec(name string, args []string) error {
	if name == "" {
		return ErrNoCommand
	}
	return ErrExecNotSupported
}
