package flat

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is matched by every DuplicateKeyError.
var ErrDuplicateKey = errors.New("duplicate key")

// DuplicateKeyError reports a key-path that resolved twice in one document.
type DuplicateKeyError struct {
	Key string
	// Line is the 1-based line of the second occurrence, 0 when unknown.
	Line int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("duplicate key %q at line %d", e.Key, e.Line)
	}

	return fmt.Sprintf("duplicate key %q", e.Key)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}
