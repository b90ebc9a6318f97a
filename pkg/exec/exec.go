// Package exec replaces the fdpath process with a command once descriptor
// checks pass. Descriptors inherited by fdpath stay open across the exec, so
// the command receives exactly the descriptors that were checked.
package exec

import (
	"errors"
	"os"
	"os/exec"
)

// ErrNoCommand is returned when Exec is called without a command name.
var ErrNoCommand = errors.New("no command to exec")

// Executor handles process replacement after successful checks.
type Executor interface {
	// Exec replaces the current process with the specified command.
	// On Unix, this uses syscall.Exec. On Windows, returns an error.
	Exec(name string, args []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// Overridden in tests.
var (
	lookPath = exec.LookPath
	environ  = os.Environ
)
