// Package atoi converts ASCII digit bytes in a radix between 2 and 36 into
// fixed-width integers without intermediate text parsing and without
// panicking on overflow.
//
// Every function is generic over the integer type T and the input type S,
// which may be a byte slice or a string:
//
//	v, ok := atoi.ParseUintRadix[uint8]([]byte("ff"), 16) // 255, true
//	v, ok := atoi.ParseInt[int8]("-129")                  // 0, false
//	v, ok := atoi.ParseIntSaturating[int8]("-129")        // -128, true
//
// Two policies exist per signedness:
//   - strict (ParseUint, ParseInt): any invalid digit, empty input or
//     overflow yields false
//   - saturating (ParseUintSaturating, ParseIntSaturating): overflow yields
//     the bound of T instead; invalid digits and empty input still yield false
//
// The comma-ok results do not tell the failure reasons apart. DiagnoseUint and
// DiagnoseInt rescan the input and report the reason as a *NumError.
//
// A radix outside [MinRadix, MaxRadix] is a programming error and panics
// before any input byte is read.
package atoi
