// Package docfile connects the flattener and rewriter to files on disk.
//
// Every operation treats a missing file as "nothing there": reads return an
// empty result and writes are skipped. Each mutation is one read followed by
// one whole-file write with no locking, so concurrent writers to the same
// path must be serialised by the caller.
package docfile
