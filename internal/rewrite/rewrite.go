package rewrite

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"yamlsimple/internal/flat"
	"yamlsimple/internal/keypath"
)

// emptyScalar is how an empty value is written in the supported subset.
const emptyScalar = "''"

// Exists reports whether key is bound in text.
func Exists(text, key string) (bool, error) {
	if _, err := keypath.Parse(key); err != nil {
		return false, err
	}

	m, err := flat.Parse(text)
	if err != nil {
		return false, err
	}

	return m.Has(key), nil
}

// Replace rebinds key to value on the line that holds it. Only that line
// changes in the returned text.
//
// An empty current value is assumed to be written as '' and the new value is
// quoted to match. Otherwise the first occurrence of the current value on the
// first line mentioning both the leaf name and that value is substituted.
func Replace(text, key, value string) (string, error) {
	p, err := keypath.Parse(key)
	if err != nil {
		return "", err
	}

	m, err := flat.Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	oldValue, ok := m.Get(key)
	if !ok {
		return "", &KeyNotFoundError{Key: key}
	}

	oldRepr, newRepr := oldValue, value
	if strings.TrimSpace(oldValue) == "" {
		oldRepr = emptyScalar
		newRepr = "'" + value + "'"
	}

	leaf := p.Leaf()
	lines := flat.SplitLines(text)

	i := slices.IndexFunc(lines, func(l flat.Line) bool {
		return strings.Contains(l.Text, leaf) && strings.Contains(l.Text, oldRepr)
	})
	if i < 0 {
		return "", &AnchorNotFoundError{Key: key, Segment: leaf}
	}

	target := lines[i]
	raw, sep := flat.SplitRaw(text)
	raw[target.Index] = strings.Replace(target.Text, oldRepr, newRepr, 1)

	return strings.Join(raw, sep), nil
}

// Insert adds key with a single-quoted value below its parent's line. A key
// that already exists leaves text unchanged.
//
// The parent line is the first line naming the direct parent segment;
// a top-level key goes after the first retained line. The new line is
// indented by the number of spaces in the anchor line plus one step, which
// over-indents when the anchor's key or value contains spaces of its own.
func Insert(text, key, value string) (string, error) {
	p, err := keypath.Parse(key)
	if err != nil {
		return "", err
	}

	m, err := flat.Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	if m.Has(key) {
		return text, nil
	}

	lines := flat.SplitLines(text)

	anchor, err := findAnchor(lines, p)
	if err != nil {
		return "", err
	}

	anchorText := strings.TrimRightFunc(lines[anchor].Text, unicode.IsSpace)
	indent := strings.Count(anchorText, " ") + flat.IndentStep
	newLine := strings.Repeat(" ", indent) + p.Leaf() + ": '" + value + "'"

	out := make([]string, 0, len(lines)+1)
	for i, l := range lines {
		out = append(out, l.Text)
		if i == anchor {
			out = append(out, newLine)
		}
	}

	return strings.Join(out, flat.Terminator(text)), nil
}

// findAnchor returns the index of the line to insert after. Every ancestor
// is searched from the top of the document and the last one found wins.
func findAnchor(lines []flat.Line, p keypath.Path) (int, error) {
	if p.IsTopLevel() {
		if len(lines) == 0 {
			return 0, &AnchorNotFoundError{Key: p.String(), Segment: p.Leaf()}
		}

		return 0, nil
	}

	anchor := -1

	for _, name := range p.Ancestors() {
		i := slices.IndexFunc(lines, func(l flat.Line) bool {
			return strings.Contains(l.Text, name) && l.HasColon()
		})
		if i < 0 {
			return 0, &AnchorNotFoundError{Key: p.String(), Segment: name}
		}

		anchor = i
	}

	return anchor, nil
}
