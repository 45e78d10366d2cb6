package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/logocheck/logocheck/internal/adapters/inbound/cli"
	appconfig "github.com/logocheck/logocheck/internal/adapters/outbound/config"
	"github.com/logocheck/logocheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".logocheck.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "schema: schemas/logo.schema.json")
	assert.Contains(t, string(data), "logo_dir: logos")
}

func TestInitCmd_GeneratedConfigLoads(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--draft", "2020-12"})
	require.NoError(t, root.Execute())

	cfg, err := appconfig.New().Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "2020-12", cfg.Draft)
	assert.Equal(t, domain.DefaultSchema, cfg.Schema)
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".logocheck.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".logocheck.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".logocheck.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "draft:")
	assert.NotEqual(t, "old", string(data))
}

func TestInitCmd_InvalidDraft(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--draft", "draft3"})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown draft")
}
