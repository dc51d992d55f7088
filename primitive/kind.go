package primitive

import (
	"math"
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Integers returns every valid kind, signed kinds first, narrowest first.
func Integers() []KindEnum {
	res := make([]KindEnum, 0, KindTotal-1)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		res = append(res, k)
	}

	return res
}

func (k KindEnum) IsInteger() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only integer kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}

		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	}
}

// TypeName returns the Go spelling of the kind, e.g. "int8".
func (k KindEnum) TypeName() string {
	if !k.IsInteger() {
		return ""
	}

	return strings.ToLower(strings.TrimPrefix(k.String(), "Kind"))
}

// Title returns the exported identifier fragment for the kind, e.g. "Int8".
func (k KindEnum) Title() string {
	if !k.IsInteger() {
		return ""
	}

	return strings.TrimPrefix(k.String(), "Kind")
}

// MinExpr returns a Go expression for the smallest value of the kind.
// It refers to package math for signed kinds.
func (k KindEnum) MinExpr() string {
	if !k.IsSigned() {
		return "0"
	}

	return "math.Min" + k.Title()
}

// MaxExpr returns a Go expression for the largest value of the kind.
func (k KindEnum) MaxExpr() string {
	if !k.IsInteger() {
		return ""
	}

	return "math.Max" + k.Title()
}

// ParseKind maps a Go integer type name to its kind.
func ParseKind(name string) (KindEnum, bool) {
	for _, k := range Integers() {
		if k.TypeName() == name {
			return k, true
		}
	}

	return 0, false
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// defined types such as time.Month resolve by their underlying kind
	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	}
}
