package dclgen

import "strings"

// COBOL fixed-format column boundaries: columns 1-6 hold the sequence
// number, column 7 the comment indicator, columns 73+ the
// identification area.
const (
	sequenceAreaEnd = 6
	contentAreaEnd  = 72
)

// NormalizeSource strips the COBOL book-keeping columns from raw
// fixed-format text so that the remaining content can be matched
// without regard to physical column positions. Comment lines (a '*'
// in column 7) are dropped entirely.
func NormalizeSource(raw string) string {
	lines := strings.Split(raw, "\n")
	normalized := make([]string, 0, len(lines))

	for _, line := range lines {
		if len(line) <= sequenceAreaEnd {
			normalized = append(normalized, line)
			continue
		}
		if line[sequenceAreaEnd] == '*' {
			continue
		}
		if len(line) > contentAreaEnd {
			line = line[:contentAreaEnd]
		}
		normalized = append(normalized, line[sequenceAreaEnd:])
	}

	return strings.Join(normalized, "\n")
}
