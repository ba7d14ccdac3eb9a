// Package rewrite applies targeted edits to a document's text while leaving
// the rest of it alone.
//
// Replace swaps the scalar on a single line and keeps every other byte of
// the input. Insert adds one "leaf: 'value'" line below the line that names
// the key's parent; it rebuilds the document from retained lines only, so
// comments and blank lines do not survive an insert.
//
// Lines are located by substring search over the retained lines with the
// first match winning. Both operations parse the document first, so a
// duplicate key-path fails them with flat.ErrDuplicateKey.
package rewrite
