package keypath

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins key-path segments.
const Separator = "."

// ErrInvalid is returned for empty key-paths and key-paths with empty segments.
var ErrInvalid = errors.New("invalid key path")

// Path is a parsed key-path.
type Path struct {
	Segments []string
}

// Parse parses a dotted key-path string into a Path.
func Parse(path string) (Path, error) {
	if path == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalid)
	}

	var segments []string

	for part := range strings.SplitSeq(path, Separator) {
		if part == "" {
			return Path{}, fmt.Errorf("%w %q: empty segment", ErrInvalid, path)
		}

		if strings.TrimSpace(part) != part {
			return Path{}, fmt.Errorf("%w %q: segment %q has surrounding whitespace", ErrInvalid, path, part)
		}

		segments = append(segments, part)
	}

	return Path{Segments: segments}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}

	return p
}

// String returns the dotted form of the path.
func (p Path) String() string {
	return strings.Join(p.Segments, Separator)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.Segments)
}

// IsTopLevel reports whether the path has a single segment.
func (p Path) IsTopLevel() bool {
	return len(p.Segments) == 1
}

// Leaf returns the last segment.
func (p Path) Leaf() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[len(p.Segments)-1]
}

// Ancestors returns every segment except the leaf, root first.
func (p Path) Ancestors() []string {
	if len(p.Segments) <= 1 {
		return nil
	}

	return p.Segments[:len(p.Segments)-1]
}

// Parent returns the path without its leaf. The parent of a top-level path
// is the zero Path.
func (p Path) Parent() Path {
	ancestors := p.Ancestors()
	if ancestors == nil {
		return Path{}
	}

	return Path{Segments: append([]string(nil), ancestors...)}
}

// Join joins a head key and a key with the separator. An empty head yields
// key unchanged.
func Join(head, key string) string {
	if head == "" {
		return key
	}

	return head + Separator + key
}
