package application

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logocheck/logocheck/internal/adapters/outbound/config"
	"github.com/logocheck/logocheck/internal/domain"
)

type fakeLocator struct {
	root string
	err  error
}

func (f fakeLocator) RepoRoot(string) (string, error) { return f.root, f.err }

func TestResolve_DefaultsUnderExplicitRoot(t *testing.T) {
	root := t.TempDir()
	r := NewOptionsResolver(fakeLocator{err: errors.New("unused")}, config.New(), discardLogger())

	opts, err := r.Resolve(Overrides{Root: root})
	require.NoError(t, err)

	assert.Equal(t, root, opts.RootPath)
	assert.Equal(t, filepath.Join(root, "schemas", "logo.schema.json"), opts.SchemaPath)
	assert.Equal(t, filepath.Join(root, "logos"), opts.SearchDir)
	assert.Equal(t, "logo.json", opts.FileName)
	assert.Equal(t, "draft7", opts.Draft)
}

func TestResolve_UsesRepoRootWhenUnset(t *testing.T) {
	repo := t.TempDir()
	r := NewOptionsResolver(fakeLocator{root: repo}, config.New(), discardLogger())

	opts, err := r.Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, repo, opts.RootPath)
	assert.Equal(t, filepath.Join(repo, "logos"), opts.SearchDir)
}

func TestResolve_FallsBackToWorkingDir(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	r := NewOptionsResolver(fakeLocator{err: errors.New("not a repo")}, config.New(), discardLogger())

	opts, err := r.Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, cwd, opts.RootPath)
}

func TestResolve_ConfigFileApplies(t *testing.T) {
	root, err := filepath.Abs(filepath.Join(testdataDir, "project"))
	require.NoError(t, err)
	r := NewOptionsResolver(fakeLocator{}, config.New(), discardLogger())

	opts, err := r.Resolve(Overrides{Root: root})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "brands"), opts.SearchDir)
	assert.Equal(t, filepath.Join(filepath.Dir(root), "schemas", "logo.schema.json"), opts.SchemaPath)
	assert.Equal(t, []string{"drafts"}, opts.ExcludeDirs)
}

func TestResolve_FlagsWinOverConfig(t *testing.T) {
	root, err := filepath.Abs(filepath.Join(testdataDir, "project"))
	require.NoError(t, err)
	r := NewOptionsResolver(fakeLocator{}, config.New(), discardLogger())

	opts, err := r.Resolve(Overrides{Root: root, Schema: "s.json", LogoDir: "elsewhere"})
	require.NoError(t, err)
	assert.Equal(t, "s.json", opts.SchemaPath)
	assert.Equal(t, "elsewhere", opts.SearchDir)
}

func TestResolve_InvalidConfigIsSetupError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".logocheck.yaml"), []byte("draft: draft3"), 0644))
	r := NewOptionsResolver(fakeLocator{}, config.New(), discardLogger())

	_, err := r.Resolve(Overrides{Root: root})
	require.Error(t, err)

	var setup *domain.SetupError
	require.True(t, errors.As(err, &setup))
	assert.Equal(t, "config", setup.Stage)
}

func TestResolve_ExplicitConfigMissing(t *testing.T) {
	r := NewOptionsResolver(fakeLocator{}, config.New(), discardLogger())

	_, err := r.Resolve(Overrides{Root: t.TempDir(), ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
