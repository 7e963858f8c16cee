package ui

import (
	"strings"
	"unicode/utf8"
)

const cellMaxWidth = 40
const cellEllipsis = "..."

// FormatTable renders headers and rows as an aligned two-space-gutter table.
func FormatTable(headers []string, rows [][]string) string {
	normalizedHeaders := make([]string, len(headers))
	for i, header := range headers {
		normalizedHeaders[i] = normalizeCell(header)
	}

	normalizedRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		normalized := make([]string, len(row))
		for i, cell := range row {
			normalized[i] = normalizeCell(cell)
		}
		normalizedRows = append(normalizedRows, normalized)
	}

	widths := make([]int, len(normalizedHeaders))
	for i, header := range normalizedHeaders {
		widths[i] = displayWidth(header)
	}
	for _, row := range normalizedRows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if width := displayWidth(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}

	var out strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			out.WriteString(cell)
			if i == len(row)-1 {
				out.WriteByte('\n')
				continue
			}
			out.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+2))
		}
	}

	writeRow(normalizedHeaders)
	for _, row := range normalizedRows {
		writeRow(row)
	}
	return out.String()
}

// TruncateCell limits cell width while preserving ANSI sequences.
func TruncateCell(value string) string {
	value = normalizeCell(value)
	if displayWidth(value) <= cellMaxWidth {
		return value
	}

	max := cellMaxWidth - displayWidth(cellEllipsis)
	if max <= 0 {
		return cellEllipsis
	}
	return truncateVisible(value, max) + cellEllipsis
}

func normalizeCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}

func displayWidth(value string) int {
	return utf8.RuneCountInString(stripANSI(value))
}

// truncateVisible keeps at most max visible runes, passing escape sequences
// through untouched.
func truncateVisible(value string, max int) string {
	if max <= 0 {
		return ""
	}

	var out strings.Builder
	visible := 0
	for i := 0; i < len(value); {
		if value[i] == '\x1b' && i+1 < len(value) && value[i+1] == '[' {
			end := i + 2
			for end < len(value) && value[end] != 'm' {
				end++
			}
			if end < len(value) {
				end++
			}
			out.WriteString(value[i:end])
			i = end
			continue
		}

		if visible >= max {
			break
		}
		r, size := utf8.DecodeRuneInString(value[i:])
		out.WriteRune(r)
		visible++
		i += size
	}
	return out.String()
}

func stripANSI(input string) string {
	var out strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		switch {
		case inEscape:
			if input[i] == 'm' {
				inEscape = false
			}
		case input[i] == '\x1b':
			inEscape = true
		default:
			out.WriteByte(input[i])
		}
	}
	return out.String()
}
