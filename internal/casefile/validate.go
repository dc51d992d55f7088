package casefile

import (
	"fmt"
	"strconv"

	"atoi-radix/internal/diagnostic"
	"atoi-radix/internal/match"
	"atoi-radix/primitive"
)

// Radix bounds accepted by package atoi.
const (
	minRadix = 2
	maxRadix = 36
)

// Validate checks every case structurally. It does not run any parser.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "case file is nil", "", "")
		return res
	}

	if len(f.Cases) == 0 {
		res.AddWarning("no_cases", "case file declares no cases", "", "")
	}

	seen := map[string]struct{}{}

	for i := range f.Cases {
		c := &f.Cases[i]

		name := c.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			res.AddWarning("unnamed_case", "case has no name", name, "name")
		} else if _, ok := seen[name]; ok {
			res.AddError("duplicate_case", fmt.Sprintf("duplicate case %q", name), name, "name")
		}

		seen[name] = struct{}{}

		if !c.Func.IsValid() {
			res.AddErrorSuggesting("unknown_func", fmt.Sprintf("unknown func %q", c.Func), name, "func",
				suggest(string(c.Func), funcNames)...)
		}

		kind := c.KindEnum()
		if !kind.IsInteger() {
			res.AddErrorSuggesting("unknown_kind", fmt.Sprintf("unknown kind %q", c.Kind), name, "kind",
				suggest(c.Kind, kindNames())...)
		}

		inRange := minRadix <= c.Radix && c.Radix <= maxRadix
		if !inRange && !c.Panics {
			res.AddError("bad_radix",
				fmt.Sprintf("radix %d outside [%d, %d] without panics: true", c.Radix, minRadix, maxRadix), name, "radix")
		}

		if inRange && c.Panics {
			res.AddWarning("panic_unreachable", fmt.Sprintf("radix %d is valid, nothing can panic", c.Radix), name, "panics")
		}

		if c.Want == nil {
			continue
		}

		if c.Panics {
			res.AddError("want_with_panic", "a panicking case cannot expect a value", name, "want")
			continue
		}

		if kind.IsInteger() && !representable(*c.Want, kind.IsSigned(), kind.Bits()) {
			res.AddError("bad_want", fmt.Sprintf("want %q is not a base 10 %s", *c.Want, c.Kind), name, "want")
		}
	}

	return res
}

var funcNames = []string{
	string(FuncUint), string(FuncInt), string(FuncUintSaturating), string(FuncIntSaturating),
}

func kindNames() []string {
	var names []string
	for _, k := range primitive.Integers() {
		names = append(names, k.TypeName())
	}

	return names
}

func suggest(name string, candidates []string) []string {
	if s, ok := match.Suggest(name, candidates); ok {
		return []string{s}
	}

	return nil
}

func representable(s string, signed bool, bits int) bool {
	if signed {
		_, err := strconv.ParseInt(s, 10, bits)
		return err == nil
	}

	_, err := strconv.ParseUint(s, 10, bits)

	return err == nil
}
