// Package match finds the closest known name to a misspelled one, so that
// errors about unknown kinds or functions can suggest a fix.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the nearest candidate within a small edit budget
package match
