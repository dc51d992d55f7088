// Package casefile loads conformance cases for the parsers from YAML.
//
// A case names the entry point family, the integer kind, the radix, the
// input bytes and the expected outcome: a base 10 value, absence, or a
// radix precondition panic. Validate reports malformed cases through
// internal/diagnostic before any of them is executed.
package casefile
