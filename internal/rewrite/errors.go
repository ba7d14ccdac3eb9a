package rewrite

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is matched by every KeyNotFoundError.
	ErrKeyNotFound = errors.New("key not found")
	// ErrAnchorNotFound is matched by every AnchorNotFoundError.
	ErrAnchorNotFound = errors.New("anchor line not found")
)

// KeyNotFoundError reports a replace against a key-path that is not in the
// document.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

// AnchorNotFoundError reports that no line matched while looking for the
// line to edit or to insert after.
type AnchorNotFoundError struct {
	Key string
	// Segment is the text that was searched for.
	Segment string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("no line matches %q while editing %q", e.Segment, e.Key)
}

func (e *AnchorNotFoundError) Unwrap() error {
	return ErrAnchorNotFound
}
