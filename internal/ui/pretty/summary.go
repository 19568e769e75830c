package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/japarse/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files parsed, 41 paragraphs (5 blank), 1280 characters".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	parts := []string{
		fmt.Sprintf("%d %s parsed", stats.FilesParsed, plural(stats.FilesParsed, wordFile, wordFiles)),
		fmt.Sprintf("%d %s (%d blank)", stats.Paragraphs,
			plural(stats.Paragraphs, "paragraph", "paragraphs"), stats.BlankParagraphs),
		fmt.Sprintf("%d %s", stats.CharUnits, plural(stats.CharUnits, "character", "characters")),
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value string) {
		builder.WriteString("  " + PadRight(label+":", 20) + value + "\n")
	}

	row("Files parsed", s.SummaryValue.Render(strconv.Itoa(stats.FilesParsed)))
	if stats.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}
	row("Paragraphs", s.SummaryValue.Render(strconv.Itoa(stats.Paragraphs)))
	row("Blank paragraphs", s.SummaryValue.Render(strconv.Itoa(stats.BlankParagraphs)))
	row("Characters", s.SummaryValue.Render(strconv.Itoa(stats.CharUnits)))

	builder.WriteString("\n")

	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render(fmt.Sprintf("Parse failed for %d %s",
			stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles))))
	} else {
		builder.WriteString(s.Success.Render("Parse succeeded"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileError formats a per-file failure line.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s  %s  %s\n", s.FilePath.Render(path), s.Error.Render("error"), err)
}
