// Package diagnostic provides structured findings about a document: what was
// found, where, and how serious it is.
//
// Key capabilities:
//   - Errors that make a document unusable (duplicate key-paths)
//   - Warnings for lines that parse but not as a reader would expect
//   - Infos for content the flattener skips on purpose
package diagnostic
