package atoi

import (
	"errors"
	"strconv"
)

// Reasons reported by the Diagnose functions.
var (
	ErrEmpty  = errors.New("no digits")
	ErrSyntax = errors.New("invalid digit")
	ErrRange  = errors.New("value out of range")
)

// NumError records why a strict parse rejected its input.
type NumError struct {
	Func   string // the failing function (ParseUint, ParseInt)
	Input  string // the input
	Offset int    // byte offset of the offending digit, or of the end of input for ErrEmpty
	Err    error  // ErrEmpty, ErrSyntax or ErrRange
}

func (e *NumError) Error() string {
	return "atoi." + e.Func + ": parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error() +
		" at offset " + strconv.Itoa(e.Offset)
}

func (e *NumError) Unwrap() error {
	return e.Err
}

// DiagnoseUint returns nil if ParseUintRadix[T](s, radix) succeeds and a
// *NumError describing the first problem otherwise.
//
// It panics if radix is outside [MinRadix, MaxRadix].
func DiagnoseUint[T Integer, S Bytes](s S, radix int) error {
	checkRadix(radix)

	_, offset, err := fold[T](s, 0, radix, false, false)
	if err != nil {
		return &NumError{Func: "ParseUint", Input: string(s), Offset: offset, Err: err}
	}

	return nil
}

// DiagnoseInt returns nil if ParseIntRadix[T](s, radix) succeeds and a
// *NumError describing the first problem otherwise.
//
// It panics if radix is outside [MinRadix, MaxRadix].
func DiagnoseInt[T Integer, S Bytes](s S, radix int) error {
	checkRadix(radix)

	_, offset, err := foldSigned[T](s, radix, false)
	if err != nil {
		return &NumError{Func: "ParseInt", Input: string(s), Offset: offset, Err: err}
	}

	return nil
}
