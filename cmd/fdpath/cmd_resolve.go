package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vertti/fdpath/pkg/check"
	"github.com/vertti/fdpath/pkg/fdcheck"
)

var (
	resolveOpen string
	resolveJSON bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [fd...]",
	Short: "Print the path behind open descriptors",
	Long: `Print the path the operating system reports for descriptors inherited by
this process, or for a file opened with --open.

Examples:
  fdpath resolve 0 1 2
  fdpath resolve stdin 3<config.yaml
  fdpath resolve --open /tmp/example.txt
  fdpath resolve --json stdout`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveOpen, "open", "", "open this path read-only and resolve the new descriptor")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(resolveCmd)
}

// ttyCheck notes when the descriptor is attached to a terminal.
type ttyCheck struct {
	fdcheck.Check
}

func (c *ttyCheck) Run() check.Result {
	result := c.Check.Run()
	if term.IsTerminal(int(c.Handle)) { // #nosec G115 -- descriptor values fit in int
		result.AddDetail("terminal: yes")
	}
	return result
}

func runResolve(cmd *cobra.Command, args []string) error {
	if err := requireAtLeastOne(
		flagSet{"<fd>", len(args) > 0},
		flagSet{"--open", resolveOpen != ""},
	); err != nil {
		return err
	}

	checks := make([]check.Checker, 0, len(args)+1)
	for _, arg := range args {
		h, err := parseHandle(arg)
		if err != nil {
			return err
		}
		checks = append(checks, &ttyCheck{fdcheck.Check{
			Handle:       h,
			Label:        "fd: " + arg,
			AllowDeleted: true,
		}})
	}

	if resolveOpen != "" {
		f, err := os.Open(resolveOpen) //nolint:gosec // intentional: path from user
		if err != nil {
			return fmt.Errorf("open %s: %w", resolveOpen, err)
		}
		defer func() { _ = f.Close() }()

		checks = append(checks, &fdcheck.Check{
			Handle:     f.Fd(),
			Label:      "open: " + resolveOpen,
			SameFileAs: resolveOpen,
			FS:         &fdcheck.RealFileSystem{},
		})
	}

	return runChecks(cmd, resolveJSON, checks...)
}
