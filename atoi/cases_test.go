package atoi_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atoi-radix/atoi"
	"atoi-radix/internal/casefile"
	"atoi-radix/primitive"
)

func TestCaseFile(t *testing.T) {
	t.Parallel()

	f, err := casefile.LoadFile("testdata/cases.yaml")
	require.NoError(t, err)

	diags := casefile.Validate(f)
	require.True(t, diags.IsValid(), diags.Error())
	require.Empty(t, diags.Warnings)

	for _, c := range f.Cases {
		t.Run(c.Name, func(t *testing.T) {
			t.Parallel()

			if c.Panics {
				want := fmt.Sprintf("atoi: radix must lie in the range [2, 36], found %d", c.Radix)
				assert.PanicsWithValue(t, want, func() { runCase(c) }, spew.Sdump(c))

				return
			}

			got, ok := runCase(c)
			if c.Want == nil {
				assert.False(t, ok, "unexpected value %s\n%s", got, spew.Sdump(c))
				return
			}

			require.True(t, ok, spew.Sdump(c))
			assert.Equal(t, *c.Want, got)
		})
	}
}

func runCase(c casefile.Case) (string, bool) {
	switch c.KindEnum() {
	case primitive.KindInt:
		return runKind[int](c)
	case primitive.KindInt8:
		return runKind[int8](c)
	case primitive.KindInt16:
		return runKind[int16](c)
	case primitive.KindInt32:
		return runKind[int32](c)
	case primitive.KindInt64:
		return runKind[int64](c)
	case primitive.KindUint:
		return runKind[uint](c)
	case primitive.KindUint8:
		return runKind[uint8](c)
	case primitive.KindUint16:
		return runKind[uint16](c)
	case primitive.KindUint32:
		return runKind[uint32](c)
	case primitive.KindUint64:
		return runKind[uint64](c)
	default:
		panic("unvalidated kind " + c.Kind)
	}
}

// runKind executes c for both input forms and insists they agree. For the
// strict families it also insists the diagnosis agrees with the result.
func runKind[T atoi.Integer](c casefile.Case) (string, bool) {
	var (
		fromBytes, fromString T
		okBytes, okString     bool
		diagnosis             error
	)

	switch c.Func {
	case casefile.FuncUint:
		fromBytes, okBytes = atoi.ParseUintRadix[T]([]byte(c.Input), c.Radix)
		fromString, okString = atoi.ParseUintRadix[T](c.Input, c.Radix)
		diagnosis = atoi.DiagnoseUint[T](c.Input, c.Radix)
	case casefile.FuncInt:
		fromBytes, okBytes = atoi.ParseIntRadix[T]([]byte(c.Input), c.Radix)
		fromString, okString = atoi.ParseIntRadix[T](c.Input, c.Radix)
		diagnosis = atoi.DiagnoseInt[T](c.Input, c.Radix)
	case casefile.FuncUintSaturating:
		fromBytes, okBytes = atoi.ParseUintSaturatingRadix[T]([]byte(c.Input), c.Radix)
		fromString, okString = atoi.ParseUintSaturatingRadix[T](c.Input, c.Radix)
	case casefile.FuncIntSaturating:
		fromBytes, okBytes = atoi.ParseIntSaturatingRadix[T]([]byte(c.Input), c.Radix)
		fromString, okString = atoi.ParseIntSaturatingRadix[T](c.Input, c.Radix)
	default:
		panic("unvalidated func " + string(c.Func))
	}

	if fromBytes != fromString || okBytes != okString {
		panic(fmt.Sprintf("%s: []byte gives %v, %v but string gives %v, %v",
			c.Name, fromBytes, okBytes, fromString, okString))
	}

	if c.Func == casefile.FuncUint || c.Func == casefile.FuncInt {
		if okBytes != (diagnosis == nil) {
			panic(fmt.Sprintf("%s: parse ok=%v but diagnosis %v", c.Name, okBytes, diagnosis))
		}
	}

	if !okBytes {
		return "", false
	}

	return fmt.Sprint(fromBytes), true
}
