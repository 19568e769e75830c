package pretty

import (
	"strconv"
	"strings"

	"github.com/yaklabco/japarse/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minFileWidth     = 12
	numberColumn     = 10
	statusColumn     = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents one file in the stats table.
type TableRow struct {
	File    string
	Stats   runner.DocumentStats
	Failure string
}

// TableFormatter formats per-file statistics as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// RowsFromResult converts runner outcomes to table rows.
func RowsFromResult(result *runner.Result) []TableRow {
	if result == nil {
		return nil
	}
	rows := make([]TableRow, 0, len(result.Files))
	for _, file := range result.Files {
		row := TableRow{File: file.Path, Stats: file.Stats}
		if file.Error != nil {
			row.Failure = file.Error.Error()
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatTable formats runner results as a table with one row per file.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	rows := RowsFromResult(result)
	if len(rows) == 0 {
		return ""
	}

	fileWidth := t.fileColumnWidth(rows)
	total := fileWidth + 3*numberColumn + statusColumn + 4*tablePadding

	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(t.line(fileWidth, "FILE", "PARAGRAPHS", "BLANK", "CHARS", "STATUS")))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	for _, row := range rows {
		if row.Failure != "" {
			line := t.line(fileWidth, TruncateLeft(row.File, fileWidth), "-", "-", "-", "failed")
			builder.WriteString(t.styles.TableErrorRow.Render(line))
			builder.WriteString("\n")
			builder.WriteString(t.styles.Dim.Render("  " + Truncate(row.Failure, total-tablePadding)))
			builder.WriteString("\n")
			continue
		}
		builder.WriteString(t.line(fileWidth,
			TruncateLeft(row.File, fileWidth),
			strconv.Itoa(row.Stats.Paragraphs),
			strconv.Itoa(row.Stats.BlankParagraphs),
			strconv.Itoa(row.Stats.CharUnits),
			"ok",
		))
		builder.WriteString("\n")
	}

	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, total)))
	builder.WriteString("\n")

	return builder.String()
}

// fileColumnWidth sizes the file column to the longest path, capped so the
// table fits the terminal.
func (t *TableFormatter) fileColumnWidth(rows []TableRow) int {
	width := minFileWidth
	for _, row := range rows {
		width = max(width, DisplayWidth(row.File))
	}
	available := t.termWidth - 3*numberColumn - statusColumn - 4*tablePadding
	return max(minFileWidth, min(width, available))
}

func (t *TableFormatter) line(fileWidth int, file, paragraphs, blank, chars, status string) string {
	gap := strings.Repeat(" ", tablePadding)
	return PadRight(file, fileWidth) + gap +
		PadLeft(paragraphs, numberColumn) + gap +
		PadLeft(blank, numberColumn) + gap +
		PadLeft(chars, numberColumn) + gap +
		status
}
