package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/fdpath/pkg/fdcheck"
	"github.com/vertti/fdpath/pkg/fdpath"
)

var (
	checkExpect       string
	checkSameFile     string
	checkMatch        string
	checkAllowDeleted bool
	checkJSON         bool
)

var checkCmd = &cobra.Command{
	Use:   "check <fd>",
	Short: "Check that a descriptor resolves to the expected file",
	Long: `Resolve a descriptor and verify the reported path.

Examples:
  fdpath check 3 --same-file /etc/app/config.yaml 3</etc/app/config.yaml
  fdpath check stdout --match '^/var/log/'
  fdpath check 0 --expect /dev/null`,
	Args: cobra.ExactArgs(1),
	RunE: runFDCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkExpect, "expect", "", "exact path the descriptor must resolve to")
	checkCmd.Flags().StringVar(&checkSameFile, "same-file", "", "path that must be the same file (device and inode)")
	checkCmd.Flags().StringVar(&checkMatch, "match", "", "regex pattern the resolved path must match")
	checkCmd.Flags().BoolVar(&checkAllowDeleted, "allow-deleted", false, "accept a file that was unlinked while open")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runFDCheck(cmd *cobra.Command, args []string) error {
	h, err := parseHandle(args[0])
	if err != nil {
		return err
	}

	c := &fdcheck.Check{
		Handle:       h,
		Label:        "fd: " + args[0],
		ExpectPath:   checkExpect,
		SameFileAs:   checkSameFile,
		Match:        checkMatch,
		AllowDeleted: checkAllowDeleted,
		Resolver:     fdpath.OSResolver{},
		FS:           &fdcheck.RealFileSystem{},
	}

	return runChecks(cmd, checkJSON, c)
}
