// Package lint reports lines of a document that the flattener skips or reads
// differently from a YAML parser.
package lint

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"yamlsimple/internal/diagnostic"
	"yamlsimple/internal/flat"
	"yamlsimple/internal/keypath"
)

// Diagnostic codes.
const (
	CodeEmptyDocument   = "empty_document"
	CodeMissingColon    = "missing_colon"
	CodeSequenceSkipped = "sequence_skipped"
	CodeQuotedSkipped   = "quoted_line_skipped"
	CodeIndentStep      = "indent_step"
	CodeNestingMismatch = "nesting_mismatch"
	CodeEmbeddedColon   = "embedded_colon"
	CodeInnerSpaces     = "inner_spaces"
	CodeDuplicateKey    = "duplicate_key"
	CodeInvalidYAML     = "invalid_yaml"
)

// Check inspects text and returns every finding.
func Check(text string) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	lines := flat.SplitLines(text)
	if len(lines) == 0 {
		res.AddInfo(CodeEmptyDocument, "document has no key lines", 0, "")
		return res
	}

	checkLines(&res, lines)
	checkEntries(&res, text)
	checkYAML(&res, text)

	return res
}

func checkLines(res *diagnostic.Diagnostics, lines []flat.Line) {
	for _, l := range lines {
		if !l.HasColon() {
			res.AddWarning(CodeMissingColon,
				"line has no ':'; the whole document flattens to nothing", l.Number(), "")
		}

		switch l.Kind {
		case flat.KindListItem:
			res.AddInfo(CodeSequenceSkipped, "sequence item is skipped", l.Number(), "")
		case flat.KindQuoted:
			res.AddInfo(CodeQuotedSkipped, "line starting with a quote is skipped", l.Number(), "")
		}
	}
}

func checkEntries(res *diagnostic.Diagnostics, text string) {
	seen := flat.NewMapping()

	// The only error Walk can return here is the duplicate already recorded.
	_ = flat.Walk(text, func(e flat.Entry) error {
		line := e.Line.Number()

		if err := seen.Add(e.Key, e.Value); err != nil {
			res.AddError(CodeDuplicateKey, "key-path already defined; the document cannot be parsed", line, e.Key)
			return err
		}

		if e.Indent%flat.IndentStep != 0 {
			res.AddWarning(CodeIndentStep,
				fmt.Sprintf("indentation of %d columns is not a multiple of %d", e.Indent, flat.IndentStep),
				line, e.Key)
		}

		if e.Indent%flat.IndentStep == 0 {
			if depth := strings.Count(e.Key, keypath.Separator); depth != e.Indent/flat.IndentStep {
				res.AddWarning(CodeNestingMismatch,
					fmt.Sprintf("key resolves to nesting depth %d but is indented for depth %d", depth, e.Indent/flat.IndentStep),
					line, e.Key)
			}
		}

		if e.Truncated {
			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Code:        CodeEmbeddedColon,
				Message:     fmt.Sprintf("unquoted value is read as %q", e.Value),
				Line:        line,
				Key:         e.Key,
				Suggestions: []string{quoteSuggestion(e.Line.Trimmed())},
			})
		}

		if innerSpaces(e.Line.Text) > 1 {
			res.AddInfo(CodeInnerSpaces,
				"spaces inside the key or value over-indent keys inserted below this line", line, e.Key)
		}

		return nil
	})
}

func checkYAML(res *diagnostic.Diagnostics, text string) {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		res.AddWarning(CodeInvalidYAML, err.Error(), 0, "")
	}
}

// innerSpaces counts spaces between the first and last non-blank characters.
func innerSpaces(line string) int {
	return strings.Count(strings.TrimSpace(line), " ")
}

func quoteSuggestion(trimmed string) string {
	key, value, _ := strings.Cut(trimmed, ":")
	return key + ": '" + strings.TrimSpace(value) + "'"
}
