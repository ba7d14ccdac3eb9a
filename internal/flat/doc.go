// Package flat reads the mapping-only YAML subset and flattens it into an
// ordered key-path to value mapping.
//
// The supported shape is a tree of "key: value" lines where nesting is
// expressed by indenting four columns per level:
//
//	variables:
//	    instance_name: 'app1'
//	    protocol: https
//
// flattens to
//
//	variables               -> ""
//	variables.instance_name -> "app1"
//	variables.protocol      -> "https"
//
// Comment and blank lines are ignored. Sequence items ("- x") and bare quoted
// lines are skipped. A document in which any retained line has no ":" is
// treated as outside the subset and yields an empty mapping rather than an
// error. The only parse failure is a duplicate key-path.
package flat
