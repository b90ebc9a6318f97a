package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/fdpath/pkg/check"
	"github.com/vertti/fdpath/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runChecks executes checks in order, prints every result, and returns
// ErrCheckFailed if any of them failed so Cobra exits with code 1.
func runChecks(cmd *cobra.Command, asJSON bool, checks ...check.Checker) error {
	results := make([]check.Result, 0, len(checks))
	failed := false
	for _, c := range checks {
		r := c.Run()
		if !r.OK() {
			failed = true
		}
		results = append(results, r)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		if err := output.PrintJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			output.PrintResult(out, r)
		}
	}

	if failed {
		return ErrCheckFailed
	}
	return nil
}
