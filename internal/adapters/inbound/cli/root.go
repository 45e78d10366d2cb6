package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logocheck/logocheck/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	opts := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "logocheck",
		Short: "Validate logo metadata files against a JSON schema",
		Long: "logocheck finds every " + domain.DefaultFileName + " under the logo directory, validates each one " +
			"against the schema and reports violations. Exits 0 when every file is valid, 1 when any " +
			"file is invalid and 2 when the schema cannot be loaded.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
	opts.bind(cmd)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, domain.ErrInvalidFiles) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return domain.ExitCode(err)
}
