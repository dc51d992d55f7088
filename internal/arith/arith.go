// Package arith provides overflow-aware arithmetic over every Go integer
// kind through a single type parameter.
//
// Key functions:
//   - Min, Max: representable bounds of T
//   - CheckedMul, CheckedAdd, CheckedSub: report overflow instead of wrapping
//   - SaturatingAdd, SaturatingSub: clamp to the bounds instead of wrapping
package arith

import "unsafe"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is satisfied by every signed and unsigned Go integer type.
type Integer interface {
	Signed | Unsigned
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Integer]() bool {
	return ^T(0) < 0 // all bits set is -1 for signed T and the maximum for unsigned T
}

// Max returns the largest value representable by T.
func Max[T Integer]() T {
	if !IsSigned[T]() {
		return ^T(0)
	}

	bits := unsafe.Sizeof(T(0)) * 8

	return T(1)<<(bits-1) - 1
}

// Min returns the smallest value representable by T.
func Min[T Integer]() T {
	if !IsSigned[T]() {
		return 0
	}

	return ^Max[T]()
}

// InRange checks if a value is within the specified range, both inclusive.
func InRange[T Integer](min T, value T, max T) bool {
	return min <= value && value <= max
}

// CheckedMul returns a*b and true, or zero and false if the product overflows T.
func CheckedMul[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	// -1 * Min is the only signed product that division cannot detect
	if IsSigned[T]() {
		minusOne, lowest := ^T(0), Min[T]()
		if (a == minusOne && b == lowest) || (b == minusOne && a == lowest) {
			return 0, false
		}
	}

	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}

// CheckedAdd returns a+b and true, or zero and false if the sum overflows T.
func CheckedAdd[T Integer](a, b T) (T, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}

	return c, true
}

// CheckedSub returns a-b and true, or zero and false if the difference overflows T.
func CheckedSub[T Integer](a, b T) (T, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}

	return c, true
}

// SaturatingAdd returns a+b clamped to [Min, Max].
func SaturatingAdd[T Integer](a, b T) T {
	if c, ok := CheckedAdd(a, b); ok {
		return c
	}

	if b > 0 {
		return Max[T]()
	}

	return Min[T]()
}

// SaturatingSub returns a-b clamped to [Min, Max].
func SaturatingSub[T Integer](a, b T) T {
	if c, ok := CheckedSub(a, b); ok {
		return c
	}

	if b > 0 {
		return Min[T]()
	}

	return Max[T]()
}
