package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	var command []string
	os.Args, command = splitExecArgs(os.Args)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}

	// Checks passed - exec into command if one was given after "--"
	if err := runExec(command); err != nil {
		fmt.Fprintf(os.Stderr, "exec: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fdpath",
	Short: "Report the filesystem path behind open file descriptors",
	Long: `fdpath asks the operating system which path an open descriptor refers to.

Anything after "--" is executed once all checks pass, keeping the checked
descriptors open:
  fdpath check 3 --same-file /etc/app.conf -- app --config /dev/fd/3`,
	Version:      Version,
	SilenceUsage: true,
}
