package flat

//go:generate go tool stringer -type=LineKind -output=kind_string.go

// LineKind classifies a retained document line.
type LineKind int

const (
	_ LineKind = iota // zero value is not a valid kind

	KindPair     // "key: value" or "key:"
	KindListItem // trimmed text starts with "-"
	KindQuoted   // trimmed text starts with "'"
)

// Skipped reports whether lines of this kind are ignored while flattening.
func (k LineKind) Skipped() bool {
	return k == KindListItem || k == KindQuoted
}
