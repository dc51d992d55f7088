package primitive_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atoi-radix/primitive"
)

func Example() {
	type Port uint16
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Port(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Month(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindUint16
	// KindInt
	// KindEnum(0)
	// KindEnum(0)
}

func TestKindNames(t *testing.T) {
	t.Parallel()

	kinds := primitive.Integers()
	require.Len(t, kinds, primitive.KindTotal-1)

	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			t.Parallel()

			parsed, ok := primitive.ParseKind(k.TypeName())
			require.True(t, ok)
			assert.Equal(t, k, parsed)
			assert.NotEqual(t, k.IsSigned(), k.IsUnsigned())
			assert.Equal(t, "math.Max"+k.Title(), k.MaxExpr())
		})
	}

	assert.Equal(t, "int8", primitive.KindInt8.TypeName())
	assert.Equal(t, "Uint64", primitive.KindUint64.Title())
	assert.Equal(t, "math.MinInt16", primitive.KindInt16.MinExpr())
	assert.Equal(t, "0", primitive.KindUint32.MinExpr())
	assert.Equal(t, "", primitive.KindEnum(0).TypeName())

	_, ok := primitive.ParseKind("float64")
	assert.False(t, ok)
}

func TestKindBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, primitive.KindUint8.Bits())
	assert.Equal(t, 64, primitive.KindInt64.Bits())
	assert.Equal(t, reflect.TypeOf(int(0)).Bits(), primitive.KindInt.Bits())
	assert.Equal(t, reflect.TypeOf(uint(0)).Bits(), primitive.KindUint.Bits())
	assert.Panics(t, func() { primitive.KindEnum(0).Bits() })
}
