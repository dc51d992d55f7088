package casefile

import "atoi-radix/primitive"

// Func selects the entry point family a case exercises.
type Func string

const (
	FuncUint           Func = "uint"
	FuncInt            Func = "int"
	FuncUintSaturating Func = "uint_saturating"
	FuncIntSaturating  Func = "int_saturating"
)

// IsValid reports whether f names a known family.
func (f Func) IsValid() bool {
	switch f {
	case FuncUint, FuncInt, FuncUintSaturating, FuncIntSaturating:
		return true
	default:
		return false
	}
}

// File is the top-level document of a case file.
type File struct {
	Version string `yaml:"version"`
	Cases   []Case `yaml:"cases"`
}

// Case is a single conformance case.
type Case struct {
	Name   string  `yaml:"name"`
	Func   Func    `yaml:"func"`
	Kind   string  `yaml:"kind"`
	Radix  int     `yaml:"radix,omitempty"`
	Input  string  `yaml:"input"`
	Want   *string `yaml:"want,omitempty"`
	Panics bool    `yaml:"panics,omitempty"`
}

// KindEnum resolves the Kind field; zero if unknown.
func (c *Case) KindEnum() primitive.KindEnum {
	k, _ := primitive.ParseKind(c.Kind)
	return k
}
