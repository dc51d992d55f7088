// Package diagnostic collects structured errors and warnings produced while
// checking conformance case files.
//
// Each diagnostic carries a stable code (e.g. "unknown_kind"), the name of the
// case it concerns and the offending field, so tests can assert on codes
// rather than on message text.
package diagnostic
