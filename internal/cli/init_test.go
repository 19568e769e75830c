package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/japarse/internal/cli"
	"github.com/yaklabco/japarse/pkg/config"
)

func runInit(t *testing.T, args ...string) int {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init"}, args...))
	return cli.ExitCode(cmd.Execute())
}

func TestInit(t *testing.T) {
	t.Parallel()

	t.Run("writes a loadable yaml template", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".japarse.yml")
		require.Equal(t, cli.ExitSuccess, runInit(t, "--output", path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		cfg, err := config.FromYAML(content)
		require.NoError(t, err)
		assert.True(t, cfg.PositionEnabled())
		assert.Equal(t, config.FormatJSON, cfg.Format)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".japarse.yml")
		require.NoError(t, os.WriteFile(path, []byte("format: yaml\n"), 0o644))

		assert.Equal(t, cli.ExitIOError, runInit(t, "--output", path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "format: yaml\n", string(content))

		require.Equal(t, cli.ExitSuccess, runInit(t, "--force", "--output", path))
		content, err = os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEqual(t, "format: yaml\n", string(content))
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "japarse.json")
		require.Equal(t, cli.ExitSuccess, runInit(t, "--format", "json", "-o", path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(content, &decoded))
		assert.Equal(t, "json", decoded["format"])
		assert.Equal(t, true, decoded["position"])
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out")
		assert.Equal(t, cli.ExitInvalidUsage, runInit(t, "--format", "toml", "-o", path))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}
