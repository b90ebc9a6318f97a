//go:build unix

package exec

import (
	"fmt"
	"syscall"
)

var execFunc = syscall.Exec

// Exec resolves name on PATH and replaces the current process with it.
// It only returns on failure.
func (e *RealExecutor) Exec(name string, args []string) error {
	if name == "" {
		return ErrNoCommand
	}

	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	// argv[0] is the name as the user typed it.
	argv := append([]string{name}, args...)
	// #nosec G204 -- the command comes from the fdpath command line.
	if err := execFunc(binary, argv, environ()); err != nil {
		return fmt.Errorf("exec %s: %w", binary, err)
	}
	return nil
}
