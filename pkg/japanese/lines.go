package japanese

// SplitLines splits text on LF and CRLF terminators, removing them.
// A single trailing empty element produced by a final terminator is dropped;
// nothing else is trimmed. A lone CR is not a terminator.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	var lines []string
	lineStart := 0

	for idx := 0; idx < len(text); idx++ {
		if text[idx] != '\n' {
			continue
		}

		// Check for CRLF.
		contentEnd := idx
		if idx > lineStart && text[idx-1] == '\r' {
			contentEnd = idx - 1
		}

		lines = append(lines, text[lineStart:contentEnd])
		lineStart = idx + 1
	}

	// Handle last line (may not have trailing newline).
	if lineStart < len(text) {
		lines = append(lines, text[lineStart:])
	}

	return lines
}
