package flat

import (
	"strings"

	"yamlsimple/internal/keypath"
)

// IndentStep is the number of columns per nesting level.
const IndentStep = 4

// HeadKey resolves the nesting prefix for a line at indent, given the state
// left by the previous accepted line.
//
// Dedenting drops ceil(indent/IndentStep) trailing segments from prevHead.
// This assumes a fixed four-column step and is only right when the previous
// scope is twice as deep as the target level, as when returning from column 8
// to column 4. Other dedents resolve to the wrong prefix. Existing documents
// depend on this arithmetic, so it is kept as is.
func HeadKey(indent, prevIndent int, prevHead, prevKey string) string {
	switch {
	case indent == 0:
		return ""
	case indent > prevIndent:
		return prevKey
	case indent < prevIndent:
		segments := strings.Split(prevHead, keypath.Separator)
		n := len(segments)

		for i := indent; i > 0 && n > 0; i -= IndentStep {
			n--
		}

		return strings.Join(segments[:n], keypath.Separator)
	default:
		return prevHead
	}
}

// walker carries nesting context through a single pass over the lines.
type walker struct {
	headKey        string
	previousKey    string
	previousIndent int
}

// next resolves the full key-path of rawKey at indent and advances.
func (w *walker) next(indent int, rawKey string) string {
	w.headKey = HeadKey(indent, w.previousIndent, w.headKey, w.previousKey)
	key := keypath.Join(w.headKey, rawKey)

	w.previousKey = key
	w.previousIndent = indent

	return key
}
