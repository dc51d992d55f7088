// Package typed offers non-generic entry points for every Go integer type,
// for callers that want a plain function value such as typed.Uint16Radix.
//
// Each function delegates to the generic parser of package atoi with the
// same policy: signed types accept one leading sign, the Saturating forms
// clamp to the bounds of the type, and an invalid radix panics.
package typed

//go:generate go run atoi-radix/internal/cmd/typedgen -out . -pkg typed
