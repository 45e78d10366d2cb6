package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/logocheck/logocheck/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitInfo_RepoRoot_FromSubdirectory(t *testing.T) {
	dir := resolved(t, t.TempDir())
	runGit(t, dir, "init")

	sub := filepath.Join(dir, "logos", "acme")
	require.NoError(t, os.MkdirAll(sub, 0755))

	root, err := gitinfo.New().RepoRoot(sub)
	require.NoError(t, err)
	assert.Equal(t, dir, resolved(t, root))
}

func TestGitInfo_RepoRoot_NotGitRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := gitinfo.New().RepoRoot(dir)
	assert.Error(t, err)
}

func resolved(t *testing.T, path string) string {
	t.Helper()
	p, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return p
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}
