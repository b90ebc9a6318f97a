package main

import (
	"github.com/vertti/fdpath/pkg/exec"
)

var executor exec.Executor = &exec.RealExecutor{}

// splitExecArgs separates fdpath's own arguments from a command given after
// the first "--".
func splitExecArgs(args []string) (own, command []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i:i], args[i+1:]
		}
	}
	return args, nil
}

func runExec(command []string) error {
	if len(command) == 0 {
		return nil
	}
	return executor.Exec(command[0], command[1:])
}
