package atoi

// ParseUintRadix interprets s as digits in the given radix, most significant
// first, and returns the value and true. It returns false if s is empty,
// contains a byte that is not a digit of radix, or denotes a value that
// overflows T. No sign is accepted.
//
// It panics if radix is outside [MinRadix, MaxRadix].
func ParseUintRadix[T Integer, S Bytes](s S, radix int) (T, bool) {
	checkRadix(radix)

	v, _, err := fold[T](s, 0, radix, false, false)

	return v, err == nil
}

// ParseUint is ParseUintRadix with radix 10.
func ParseUint[T Integer, S Bytes](s S) (T, bool) {
	return ParseUintRadix[T](s, 10)
}

// ParseIntRadix is like ParseUintRadix but accepts one leading '+' or '-'.
// Negative input is accumulated downwards, so the minimum of a signed T is
// reachable. A sign with no digits after it yields false.
//
// It panics if radix is outside [MinRadix, MaxRadix].
func ParseIntRadix[T Integer, S Bytes](s S, radix int) (T, bool) {
	checkRadix(radix)

	v, _, err := foldSigned[T](s, radix, false)

	return v, err == nil
}

// ParseInt is ParseIntRadix with radix 10.
func ParseInt[T Integer, S Bytes](s S) (T, bool) {
	return ParseIntRadix[T](s, 10)
}

// ParseUintSaturatingRadix is like ParseUintRadix except that a value too
// large for T yields the maximum of T and true. Scanning stops at the digit
// that overflows, so the bytes after it are not validated.
//
// It panics if radix is outside [MinRadix, MaxRadix].
func ParseUintSaturatingRadix[T Integer, S Bytes](s S, radix int) (T, bool) {
	checkRadix(radix)

	v, _, err := fold[T](s, 0, radix, false, true)

	return v, err == nil
}

// ParseUintSaturating is ParseUintSaturatingRadix with radix 10.
func ParseUintSaturating[T Integer, S Bytes](s S) (T, bool) {
	return ParseUintSaturatingRadix[T](s, 10)
}

// ParseIntSaturatingRadix is like ParseIntRadix except that out of range
// values yield the minimum or maximum of T and true. Scanning stops at the
// digit that overflows, so the bytes after it are not validated.
//
// It panics if radix is outside [MinRadix, MaxRadix].
func ParseIntSaturatingRadix[T Integer, S Bytes](s S, radix int) (T, bool) {
	checkRadix(radix)

	v, _, err := foldSigned[T](s, radix, true)

	return v, err == nil
}

// ParseIntSaturating is ParseIntSaturatingRadix with radix 10.
func ParseIntSaturating[T Integer, S Bytes](s S) (T, bool) {
	return ParseIntSaturatingRadix[T](s, 10)
}
