package atoi

import (
	"fmt"

	"atoi-radix/internal/arith"
)

// Radix bounds accepted by every function in this package.
const (
	MinRadix = 2
	MaxRadix = 36
)

// Integer is satisfied by every signed and unsigned Go integer type,
// including defined types such as time.Month.
type Integer = arith.Integer

// Signed and Unsigned split Integer by signedness.
type (
	Signed   = arith.Signed
	Unsigned = arith.Unsigned
)

// Bytes is satisfied by byte slices and strings.
type Bytes interface {
	~[]byte | ~string
}

func checkRadix(radix int) {
	if !arith.InRange(MinRadix, radix, MaxRadix) {
		panic(fmt.Sprintf("atoi: radix must lie in the range [%d, %d], found %d", MinRadix, MaxRadix, radix))
	}
}

// fold accumulates s[start:] most significant digit first.
//
// With negative set each digit is subtracted instead of added, so the
// accumulator runs through negative magnitudes and reaches Min[T] without
// ever negating. With saturate set a multiply overflow returns the bound in
// the direction of travel at once; the bytes that follow are not decoded.
//
// It returns the value, the offset at which scanning stopped and nil, or the
// reason the input was rejected.
func fold[T Integer, S Bytes](s S, start, radix int, negative, saturate bool) (T, int, error) {
	if start >= len(s) {
		return 0, start, ErrEmpty
	}

	base := T(radix)

	var acc T

	for i := start; i < len(s); i++ {
		d, ok := digit(s[i], radix)
		if !ok {
			return 0, i, ErrSyntax
		}

		acc, ok = arith.CheckedMul(acc, base)
		if !ok {
			if !saturate {
				return 0, i, ErrRange
			}

			if negative {
				return arith.Min[T](), i, nil
			}

			return arith.Max[T](), i, nil
		}

		switch {
		case saturate && negative:
			acc = arith.SaturatingSub(acc, T(d))
		case saturate:
			acc = arith.SaturatingAdd(acc, T(d))
		case negative:
			acc, ok = arith.CheckedSub(acc, T(d))
		default:
			acc, ok = arith.CheckedAdd(acc, T(d))
		}

		if !ok {
			return 0, i, ErrRange
		}
	}

	return acc, len(s), nil
}

// foldSigned strips an optional leading sign and folds the rest.
func foldSigned[T Integer, S Bytes](s S, radix int, saturate bool) (T, int, error) {
	if len(s) == 0 {
		return 0, 0, ErrEmpty
	}

	switch s[0] {
	case '+':
		return fold[T](s, 1, radix, false, saturate)
	case '-':
		return fold[T](s, 1, radix, true, saturate)
	default:
		return fold[T](s, 0, radix, false, saturate)
	}
}
