package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/logocheck/logocheck/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		draft string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a " + domain.ConfigFileName + " configuration file",
		Long:  "Create a " + domain.ConfigFileName + " holding the default schema path, logo directory and schema draft.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, domain.ConfigFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", domain.ConfigFileName)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.Draft = draft
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", domain.ConfigFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft, "draft", domain.DefaultDraft, "Schema draft ("+strings.Join(domain.ValidDrafts, ", ")+")")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+domain.ConfigFileName)

	return cmd
}

func generateConfig(cfg domain.Config) string {
	return fmt.Sprintf(`# logocheck configuration
# Relative paths resolve against the repository root.

schema: %s
logo_dir: %s
file_name: %s
draft: %q

# exclude_dirs:
#   - drafts
#   - archive
`, cfg.Schema, cfg.LogoDir, cfg.FileName, cfg.Draft)
}
