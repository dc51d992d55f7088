package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"int8", "int8", 0},
		{"", "uint", 4},
		{"uint", "", 4},
		{"int", "uint", 1},
		{"uint16", "uint1", 1},
		{"unit8", "uint8", 2},
		{"Int64", "int64", 1},
		{"kitten", "sitting", 3},
		{"uint_saturating", "int_saturating", 1},
		{"float64", "int64", 4},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSuggest(t *testing.T) {
	kinds := []string{"int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64"}

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"unit8", "uint8", true},
		{"UINT16", "uint16", true},
		{"int_64", "int64", true},
		{"int_8", "int8", true},
		{"float64", "", false},
		{"byte", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.name, kinds)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
