package cli

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/logocheck/logocheck/internal/adapters/outbound/config"
	"github.com/logocheck/logocheck/internal/adapters/outbound/document"
	"github.com/logocheck/logocheck/internal/adapters/outbound/gitinfo"
	"github.com/logocheck/logocheck/internal/adapters/outbound/scanner"
	"github.com/logocheck/logocheck/internal/adapters/outbound/schema"
	"github.com/logocheck/logocheck/internal/adapters/outbound/tui"
	"github.com/logocheck/logocheck/internal/application"
	"github.com/logocheck/logocheck/internal/domain"
)

type checkFlags struct {
	schema     string
	root       string
	logoDir    string
	configPath string
	quiet      bool
	jsonOutput bool
	verbose    bool
}

func (f *checkFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.schema, "schema", "s", "", "Schema file (default <root>/"+domain.DefaultSchema+")")
	cmd.Flags().StringVarP(&f.root, "root", "r", "", "Repository root (default: enclosing git worktree or current directory)")
	cmd.Flags().StringVar(&f.logoDir, "logo-dir", "", "Directory to search, overriding <root>/"+domain.DefaultLogoDir)
	cmd.Flags().StringVar(&f.configPath, "config", "", "Config file (default <root>/"+domain.ConfigFileName+")")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Only print errors and the summary")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log progress to stderr")
}

func runCheck(cmd *cobra.Command, f *checkFlags) error {
	log := newLogger(cmd, f.verbose)

	resolver := application.NewOptionsResolver(gitinfo.New(), config.New(), log)
	opts, err := resolver.Resolve(application.Overrides{
		Schema:     f.schema,
		Root:       f.root,
		LogoDir:    f.logoDir,
		ConfigPath: f.configPath,
	})
	if err != nil {
		return err
	}

	par := document.New()
	svc := application.NewCheckService(scanner.New(log), par, schema.NewCompiler(par), log)

	result, err := svc.Run(opts)
	if err != nil {
		return err
	}

	if f.jsonOutput {
		if err := renderResultJSON(cmd, result); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		fmt.Fprint(out, tui.RenderReport(tui.NewStyles(out), result, f.quiet))
	}

	if !result.Passed() {
		return fmt.Errorf("%d of %d files: %w", result.Invalid, result.Total, domain.ErrInvalidFiles)
	}
	return nil
}

func renderResultJSON(cmd *cobra.Command, result *domain.RunResult) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func newLogger(cmd *cobra.Command, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
