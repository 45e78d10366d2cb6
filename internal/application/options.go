package application

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/logocheck/logocheck/internal/domain"
)

// Overrides are values passed explicitly on the command line. Empty fields
// are unset and fall back to the config file, then to built-in defaults.
type Overrides struct {
	Schema     string
	Root       string
	LogoDir    string
	ConfigPath string
}

// OptionsResolver turns command line overrides into CheckOptions.
type OptionsResolver struct {
	locator      domain.RepoLocator
	configLoader domain.ConfigLoader
	log          logrus.FieldLogger
}

func NewOptionsResolver(locator domain.RepoLocator, configLoader domain.ConfigLoader, log logrus.FieldLogger) *OptionsResolver {
	return &OptionsResolver{locator: locator, configLoader: configLoader, log: log}
}

// Resolve determines the root, loads configuration and derives every path.
// Without --root the enclosing git worktree is used, else the working directory.
func (r *OptionsResolver) Resolve(o Overrides) (CheckOptions, error) {
	root, err := r.resolveRoot(o.Root)
	if err != nil {
		return CheckOptions{}, &domain.SetupError{Stage: "root", Path: o.Root, Err: err}
	}
	r.log.WithField("root", root).Debug("resolved root")

	var cfg domain.Config
	if o.ConfigPath != "" {
		cfg, err = r.configLoader.LoadFile(o.ConfigPath)
		if err != nil {
			return CheckOptions{}, &domain.SetupError{Stage: "config", Path: o.ConfigPath, Err: err}
		}
	} else {
		cfg, err = r.configLoader.Load(root)
		if err != nil {
			return CheckOptions{}, &domain.SetupError{Stage: "config", Path: filepath.Join(root, domain.ConfigFileName), Err: err}
		}
	}

	opts := CheckOptions{
		RootPath:    root,
		SchemaPath:  underRoot(root, cfg.Schema),
		SearchDir:   underRoot(root, cfg.LogoDir),
		FileName:    cfg.FileName,
		ExcludeDirs: cfg.ExcludeDirs,
		Draft:       cfg.Draft,
	}
	if o.Schema != "" {
		opts.SchemaPath = o.Schema
	}
	if o.LogoDir != "" {
		opts.SearchDir = o.LogoDir
	}
	return opts, nil
}

func (r *OptionsResolver) resolveRoot(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := r.locator.RepoRoot(cwd)
	if err != nil {
		r.log.WithError(err).Debug("not inside a git repository, using working directory")
		return cwd, nil
	}
	return root, nil
}

func underRoot(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
