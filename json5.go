// Package json5 lexes, parses, and serializes JSON5 text against a typed
// Value tree.
//
// Parse turns JSON5 source into a Value. Stringify renders a Value back
// to JSON5 text, and Marshal does the same for arbitrary Go data reached
// via reflection. Both directions share one Format type and one Error
// type. The json5ext subpackage bridges a Value tree to and from a
// generic external JSON element type for callers that want to feed the
// result into a structured-data codec.
package json5
