package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/japarse/pkg/fsutil"
	"github.com/yaklabco/japarse/pkg/japanese"
	"github.com/yaklabco/japarse/pkg/nlcst"
	"github.com/yaklabco/japarse/pkg/reporter"
	"github.com/yaklabco/japarse/pkg/runner"
	"github.com/yaklabco/japarse/pkg/vfile"
)

func parsed(t *testing.T, opts japanese.Options, docs ...[2]string) *runner.Result {
	t.Helper()
	r := runner.New(opts)
	outcomes := make([]runner.FileOutcome, 0, len(docs))
	for _, doc := range docs {
		outcome := r.ParseFile(vfile.FromString(doc[0], doc[1]))
		require.NoError(t, outcome.Error)
		outcomes = append(outcomes, outcome)
	}
	return runner.ResultOf(outcomes...)
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	opts.Writer = &out
	opts.ErrorWriter = &errOut
	opts.Color = "never"

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	return out.String(), errOut.String(), count
}

func failed(path string) runner.FileOutcome {
	return runner.FileOutcome{Path: path, Error: errors.Join(fsutil.ErrBinary, errors.New(path))}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{"", reporter.FormatJSON, false},
		{"json", reporter.FormatJSON, false},
		{"yaml", reporter.FormatYAML, false},
		{"inspect", reporter.FormatInspect, false},
		{"text", reporter.FormatText, false},
		{"summary", reporter.FormatSummary, false},
		{"sarif", "", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(testCase.input)
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "sarif"})
	require.Error(t, err)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	t.Run("single file writes a bare tree", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{NoPosition: true}, [2]string{"a.txt", "本文"})
		out, _, count := report(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, result)

		assert.Equal(t, 1, count)
		assert.Equal(t,
			`{"type":"Root","children":[{"type":"Paragraph","children":[{"type":"Text","value":"本文"},{"type":"WhiteSpace","value":"\n"}]}]}`+"\n",
			out)
	})

	t.Run("indented by default", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{}, [2]string{"a.txt", ""})
		out, _, _ := report(t, reporter.Options{Format: reporter.FormatJSON}, result)

		assert.Equal(t, "{\n  \"type\": \"Root\",\n  \"children\": [],\n  \"position\": {}\n}\n", out)
	})

	t.Run("html characters are not escaped", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{NoPosition: true}, [2]string{"a.txt", "<a&b>"})
		out, _, _ := report(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, result)
		assert.Contains(t, out, `"value":"<a&b>"`)
	})

	t.Run("envelope for several files", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{}, [2]string{"/w/a.txt", "一"}, [2]string{"/w/b.txt", "二\n"})
		result = runner.ResultOf(append(result.Files, failed("/w/c.txt"))...)

		out, errOut, count := report(t, reporter.Options{Format: reporter.FormatJSON, WorkingDir: "/w"}, result)
		assert.Equal(t, 2, count)
		assert.Empty(t, errOut)

		var envelope reporter.Envelope
		require.NoError(t, json.Unmarshal([]byte(out), &envelope))
		require.Len(t, envelope.Files, 3)
		assert.Equal(t, "a.txt", envelope.Files[0].Path)
		assert.Equal(t, "一\n", envelope.Files[0].Tree.Text())
		assert.Nil(t, envelope.Files[2].Tree)
		assert.Contains(t, envelope.Files[2].Error, "binary")
		assert.Equal(t, reporter.Summary{FilesParsed: 2, FilesErrored: 1, Paragraphs: 2, CharUnits: 4}, envelope.Summary)
	})

	t.Run("forced envelope for one file", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{}, [2]string{"a.txt", "一"})
		out, _, _ := report(t, reporter.Options{Format: reporter.FormatJSON, Envelope: true}, result)
		assert.True(t, strings.HasPrefix(out, "{\n  \"version\": \"1.0.0\""))
	})

	t.Run("single failure goes to the error writer", func(t *testing.T) {
		t.Parallel()

		out, errOut, count := report(t, reporter.Options{Format: reporter.FormatJSON}, runner.ResultOf(failed("a.txt")))
		assert.Zero(t, count)
		assert.Empty(t, out)
		assert.True(t, strings.HasPrefix(errOut, "a.txt  error  "))
	})
}

func TestYAMLReporter(t *testing.T) {
	t.Parallel()

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{NoPosition: true}, [2]string{"a.txt", "本文"})
		out, _, count := report(t, reporter.Options{Format: reporter.FormatYAML}, result)

		assert.Equal(t, 1, count)
		expected := `type: Root
children:
  - type: Paragraph
    children:
      - type: Text
        value: 本文
      - type: WhiteSpace
        value: "\n"
`
		assert.Equal(t, expected, out)

		var decoded nlcst.Node
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, result.Files[0].Root, &decoded)
	})

	t.Run("empty document keeps placeholder", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{}, [2]string{"a.txt", ""})
		out, _, _ := report(t, reporter.Options{Format: reporter.FormatYAML}, result)
		assert.Equal(t, "type: Root\nchildren: []\nposition: {}\n", out)
	})

	t.Run("envelope", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{}, [2]string{"a.txt", "一"}, [2]string{"b.txt", "二"})
		out, _, count := report(t, reporter.Options{Format: reporter.FormatYAML}, result)
		assert.Equal(t, 2, count)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "1.0.0", decoded["version"])
		assert.Len(t, decoded["files"], 2)
	})
}

func TestInspectReporter(t *testing.T) {
	t.Parallel()

	t.Run("single file has no header", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{NoPosition: true}, [2]string{"a.txt", "本文"})
		out, _, count := report(t, reporter.Options{Format: reporter.FormatInspect}, result)

		assert.Equal(t, 1, count)
		assert.Equal(t, "Root[1]\n└─ Paragraph[2]\n   ├─ Text: \"本文\"\n   └─ WhiteSpace: \"\\n\"\n", out)
	})

	t.Run("several files get headers and a summary", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{NoPosition: true}, [2]string{"a.txt", "一"}, [2]string{"b.txt", "二"})
		result = runner.ResultOf(append(result.Files, failed("c.txt"))...)

		out, errOut, count := report(t, reporter.Options{Format: reporter.FormatInspect, ShowSummary: true}, result)
		assert.Equal(t, 2, count)
		assert.True(t, strings.HasPrefix(out, "a.txt\nRoot[1]\n"))
		assert.Contains(t, out, "\n\nb.txt\nRoot[1]\n")
		assert.True(t, strings.HasSuffix(out, "2 files parsed, 2 paragraphs (0 blank), 4 characters, 1 failed\n"))
		assert.Contains(t, errOut, "c.txt  error")
	})
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	t.Run("writes normalized text", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{}, [2]string{"a.txt", "｢引用｣\r\n本文､"})
		out, _, _ := report(t, reporter.Options{Format: reporter.FormatText}, result)
		assert.Equal(t, "「引用」\n本文、\n", out)
	})

	t.Run("several files", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{}, [2]string{"a.txt", "一"}, [2]string{"b.txt", "二"})
		out, _, count := report(t, reporter.Options{Format: reporter.FormatText}, result)
		assert.Equal(t, 2, count)
		assert.Equal(t, "==> a.txt <==\n一\n\n==> b.txt <==\n二\n", out)
	})
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	t.Run("table and totals", func(t *testing.T) {
		t.Parallel()

		result := parsed(t, japanese.Options{}, [2]string{"/w/a.txt", "一\n\n二"})
		out, _, count := report(t, reporter.Options{Format: reporter.FormatSummary, WorkingDir: "/w", TermWidth: 80}, result)

		assert.Equal(t, 1, count)
		assert.Contains(t, out, "FILE")
		assert.Contains(t, out, "a.txt ")
		assert.NotContains(t, out, "/w/a.txt")
		assert.Contains(t, out, "Parse succeeded")
	})

	t.Run("no files", func(t *testing.T) {
		t.Parallel()

		out, _, count := report(t, reporter.Options{Format: reporter.FormatSummary}, &runner.Result{})
		assert.Zero(t, count)
		assert.Equal(t, "No files to parse.\n", out)
	})
}
