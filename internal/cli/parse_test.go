package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/japarse/internal/cli"
	"github.com/yaklabco/japarse/pkg/nlcst"
	"github.com/yaklabco/japarse/pkg/reporter"
)

// execute runs japarse with args against an isolated config file and
// returns stdout, stderr and the exit code.
func execute(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), ".japarse.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("jobs: 2\n"), 0o644))

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"parse", "--config", cfgFile, "--color", "never"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), cli.ExitCode(err)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_SingleFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "doc.txt", "本文｡\n")

	t.Run("compact without positions", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, code := execute(t, "", "--no-position", "--compact", path)
		assert.Equal(t, cli.ExitSuccess, code, stderr)
		assert.Equal(t,
			`{"type":"Root","children":[{"type":"Paragraph","children":[{"type":"Text","value":"本文。"},{"type":"WhiteSpace","value":"\n"}]}]}`+"\n",
			stdout)
	})

	t.Run("positions by default", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, code := execute(t, "", path)
		require.Equal(t, cli.ExitSuccess, code, stderr)

		var root nlcst.Node
		require.NoError(t, json.Unmarshal([]byte(stdout), &root))
		require.NotNil(t, root.Position)
		assert.Equal(t, nlcst.Position{Line: 1, Column: 1, Offset: 0}, root.Position.Start)
		assert.Equal(t, nlcst.Position{Line: 1, Column: 5, Offset: 4}, root.Position.End)
	})

	t.Run("inspect", func(t *testing.T) {
		t.Parallel()

		stdout, _, code := execute(t, "", "--format", "inspect", path)
		assert.Equal(t, cli.ExitSuccess, code)
		assert.Equal(t,
			"Root[1] (1:1-1:5, 0-4)\n"+
				"└─ Paragraph[2] (1:1-1:5, 0-4)\n"+
				"   ├─ Text: \"本文。\" (1:1-1:4, 0-3)\n"+
				"   └─ WhiteSpace: \"\\n\" (1:4-1:5, 3-4)\n",
			stdout)
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		stdout, _, code := execute(t, "", "--format", "text", path)
		assert.Equal(t, cli.ExitSuccess, code)
		assert.Equal(t, "本文。\n", stdout)
	})

	t.Run("forced envelope", func(t *testing.T) {
		t.Parallel()

		stdout, _, code := execute(t, "", "--envelope", path)
		assert.Equal(t, cli.ExitSuccess, code)

		var envelope reporter.Envelope
		require.NoError(t, json.Unmarshal([]byte(stdout), &envelope))
		assert.Len(t, envelope.Files, 1)
	})
}

func TestParse_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "一\n\n二\n")
	writeFile(t, dir, "sub/b.TXT", "三")
	writeFile(t, dir, "notes.md", "ignored")
	writeFile(t, dir, ".hidden/c.txt", "hidden")

	stdout, stderr, code := execute(t, "", dir)
	require.Equal(t, cli.ExitSuccess, code, stderr)

	var envelope reporter.Envelope
	require.NoError(t, json.Unmarshal([]byte(stdout), &envelope))
	require.Len(t, envelope.Files, 2)
	assert.Equal(t, 4, envelope.Summary.Paragraphs)
	assert.Equal(t, 1, envelope.Summary.BlankParagraphs)
	assert.Equal(t, 2, envelope.Summary.FilesParsed)
}

func TestParse_IgnoreAndExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "一")
	writeFile(t, dir, "b.text", "二")
	writeFile(t, dir, "skip/c.text", "三")

	stdout, stderr, code := execute(t, "",
		"--extensions", "text", "--ignore", "skip", "--format", "text", dir)
	require.Equal(t, cli.ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "二\n")
	assert.NotContains(t, stdout, "一")
	assert.NotContains(t, stdout, "三")
}

func TestParse_Stdin(t *testing.T) {
	t.Parallel()

	t.Run("implicit", func(t *testing.T) {
		t.Parallel()

		stdout, _, code := execute(t, "ａ｣\r\n\r\nb", "--format", "text")
		assert.Equal(t, cli.ExitSuccess, code)
		assert.Equal(t, "ａ」\n\nb\n", stdout)
	})

	t.Run("explicit dash", func(t *testing.T) {
		t.Parallel()

		stdout, _, code := execute(t, "", "--format", "yaml", "-")
		assert.Equal(t, cli.ExitSuccess, code)
		assert.Equal(t, "type: Root\nchildren: []\nposition: {}\n", stdout)
	})

	t.Run("dash with other paths", func(t *testing.T) {
		t.Parallel()

		_, _, code := execute(t, "", "-", "a.txt")
		assert.Equal(t, cli.ExitInvalidUsage, code)
	})
}

func TestParse_Failures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "良い")
	bad := writeFile(t, dir, "bad.txt", "\x00\x01\x02binary")

	t.Run("binary file", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, code := execute(t, "", bad)
		assert.Equal(t, cli.ExitParseErrors, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "error")
	})

	t.Run("missing file among good ones", func(t *testing.T) {
		t.Parallel()

		stdout, _, code := execute(t, "", good, filepath.Join(dir, "missing.txt"))
		assert.Equal(t, cli.ExitParseErrors, code)

		var envelope reporter.Envelope
		require.NoError(t, json.Unmarshal([]byte(stdout), &envelope))
		assert.Equal(t, 1, envelope.Summary.FilesParsed)
		assert.Equal(t, 1, envelope.Summary.FilesErrored)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, _, code := execute(t, "", "--format", "sarif", good)
		assert.Equal(t, cli.ExitConfigError, code)
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, _, code := execute(t, "", "--strict", good)
		assert.Equal(t, cli.ExitInvalidUsage, code)
	})
}

func TestParse_Output(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.txt", "本文")
	output := filepath.Join(dir, "tree.json")

	stdout, stderr, code := execute(t, "", "--no-position", "--compact", "-o", output, input)
	require.Equal(t, cli.ExitSuccess, code, stderr)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"Root","children":[{"type":"Paragraph","children":[{"type":"Text","value":"本文"},{"type":"WhiteSpace","value":"\n"}]}]}`+"\n",
		string(content))
}

func TestParse_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "doc.txt", "本文")
	cfgFile := writeFile(t, dir, "custom.yml", "position: 0\nformat: json\ncompact: yes\n")

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"parse", "--config", cfgFile, input})

	require.NoError(t, cmd.Execute(), stderr.String())
	assert.Equal(t,
		`{"type":"Root","children":[{"type":"Paragraph","children":[{"type":"Text","value":"本文"},{"type":"WhiteSpace","value":"\n"}]}]}`+"\n",
		stdout.String())

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		badCfg := writeFile(t, t.TempDir(), "bad.yml", "color: rainbow\n")

		cmd := cli.NewRootCommand(testInfo())
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"parse", "--config", badCfg, input})

		assert.Equal(t, cli.ExitConfigError, cli.ExitCode(cmd.Execute()))
	})
}
