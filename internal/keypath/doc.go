// Package keypath handles the dotted key-paths used to address values in a
// flattened document.
//
// A key-path is one or more non-empty segments joined by ".":
//
//	variables
//	variables.instance_name
//	services_config.SungeroHaproxy.instance_name
//
// Segments are taken verbatim from document keys, so unlike Go identifiers
// they may contain hyphens, digits in leading position, or other characters
// allowed in a plain YAML key. Only the dot is reserved.
package keypath
