// Package match ranks known key-paths by how close they are to one that was
// not found, for "did you mean" hints.
package match
