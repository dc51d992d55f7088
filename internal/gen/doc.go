// Package gen provides deterministic Go code generation for concrete,
// per-kind wrappers around the generic parsers in package atoi.
//
// Generation approach uses text/template + go/format, like:
//
//	func Int8Radix(s []byte, radix int) (int8, bool) {
//		return atoi.ParseIntRadix[int8](s, radix)
//	}
//
// Every kind yields four functions: decimal, explicit radix, and the
// saturating form of each. Signed kinds route to the Int family, unsigned
// kinds to the Uint family.
package gen
