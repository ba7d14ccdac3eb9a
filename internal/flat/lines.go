package flat

import "strings"

const (
	crlf = "\r\n"
	lf   = "\n"
)

// Line is one retained line of a document.
type Line struct {
	// Text is the raw line without its terminator.
	Text string
	// Index is the position of the line in the unfiltered document.
	Index int
	// Kind classifies the line.
	Kind LineKind
}

// Number returns the 1-based line number in the unfiltered document.
func (l Line) Number() int {
	return l.Index + 1
}

// Trimmed returns the line text without surrounding whitespace.
func (l Line) Trimmed() string {
	return strings.TrimSpace(l.Text)
}

// HasColon reports whether the line contains a key separator.
func (l Line) HasColon() bool {
	return strings.Contains(l.Text, ":")
}

// Terminator returns the line terminator used by text: CRLF when it occurs
// anywhere in the text, LF otherwise.
func Terminator(text string) string {
	if strings.Contains(text, crlf) {
		return crlf
	}

	return lf
}

// SplitRaw splits text on its detected terminator without filtering anything.
func SplitRaw(text string) ([]string, string) {
	sep := Terminator(text)
	return strings.Split(text, sep), sep
}

// SplitLines splits text into retained lines, dropping blank, whitespace-only
// and comment lines. Order is preserved.
func SplitLines(text string) []Line {
	raw, _ := SplitRaw(text)

	lines := make([]Line, 0, len(raw))

	for i, s := range raw {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		lines = append(lines, Line{Text: s, Index: i, Kind: classify(trimmed)})
	}

	return lines
}

func classify(trimmed string) LineKind {
	switch {
	case strings.HasPrefix(trimmed, "-"):
		return KindListItem
	case strings.HasPrefix(trimmed, "'"):
		return KindQuoted
	default:
		return KindPair
	}
}

// Indent returns the column at which key first occurs in line. Keys are
// matched in the untrimmed text so the result includes leading indentation.
func Indent(line, key string) int {
	return strings.Index(line, key)
}

// ExtractQuoted returns the text between the first and second single quote
// of line. Without a closing quote the remainder of the line is returned.
// No escape processing is done, so '' inside a value ends it early.
func ExtractQuoted(line string) (string, bool) {
	parts := strings.Split(line, "'")
	if len(parts) < 2 {
		return "", false
	}

	return parts[1], true
}
