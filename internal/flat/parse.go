package flat

import "strings"

// Entry is one key-path recorded while walking a document.
type Entry struct {
	Key    string
	Value  string
	Indent int
	Line   Line
	// Truncated is set when an unquoted value contained ":" and everything
	// from the second ":" on was dropped.
	Truncated bool
}

// Walk calls fn for every key-path line of text in document order. Nothing
// is reported for documents outside the subset: no retained lines, or any
// retained line without ":". A non-nil error from fn stops the walk and is
// returned as is.
func Walk(text string, fn func(Entry) error) error {
	lines := SplitLines(text)
	if !inSubset(lines) {
		return nil
	}

	var w walker

	for _, line := range lines {
		if line.Kind.Skipped() {
			continue
		}

		pair := strings.Split(line.Trimmed(), ":")
		rawKey := strings.TrimSpace(pair[0])
		indent := Indent(line.Text, rawKey)

		e := Entry{
			Key:    w.next(indent, rawKey),
			Indent: indent,
			Line:   line,
		}

		if quoted, ok := ExtractQuoted(line.Text); ok {
			e.Value = quoted
		} else {
			// Only the text between the first and second ":" is kept.
			e.Value = strings.TrimSpace(pair[1])
			e.Truncated = len(pair) > 2
		}

		if err := fn(e); err != nil {
			return err
		}
	}

	return nil
}

// Parse flattens text into a Mapping. A key-path that resolves twice aborts
// the parse with a DuplicateKeyError.
func Parse(text string) (*Mapping, error) {
	m := NewMapping()

	err := Walk(text, func(e Entry) error {
		if m.Has(e.Key) {
			return &DuplicateKeyError{Key: e.Key, Line: e.Line.Number()}
		}

		return m.Add(e.Key, e.Value)
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

func inSubset(lines []Line) bool {
	if len(lines) == 0 {
		return false
	}

	for _, l := range lines {
		if !l.HasColon() {
			return false
		}
	}

	return true
}
