package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path"
	"strings"
	"text/template"

	"atoi-radix/internal/match"
	"atoi-radix/primitive"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the package name for generated code.
	PackageName string
	// Filename is the name of the generated file.
	Filename string
	// AtoiImport is the import path of the generic parsers.
	AtoiImport string
	// Kinds lists the integer kinds to generate wrappers for, in output order.
	Kinds []primitive.KindEnum
	// DebugDir, if set, receives the unformatted source when formatting fails.
	DebugDir string
}

// DefaultGeneratorConfig returns a config with sensible defaults.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: "typed",
		Filename:    "typed_gen.go",
		AtoiImport:  "atoi-radix/atoi",
		Kinds:       primitive.Integers(),
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// Generator generates the per-kind wrapper file.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new code generator.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// templateData holds all data needed for the wrappers template.
type templateData struct {
	PackageName string
	AtoiImport  string
	AtoiAlias   string
	Kinds       []kindData
}

// kindData describes the wrappers of a single kind.
type kindData struct {
	Title   string // Int8
	Type    string // int8
	Article string // "an int8", "a uint8"
	Family  string // Int or Uint
	Signed  bool
	Min     string
	Max     string
}

// Generate renders and formats the wrapper file.
func (g *Generator) Generate() (*GeneratedFile, error) {
	if g.config.PackageName == "" {
		return nil, errors.New("package name is required")
	}

	if g.config.AtoiImport == "" {
		return nil, errors.New("atoi import path is required")
	}

	if len(g.config.Kinds) == 0 {
		return nil, errors.New("at least one kind is required")
	}

	data := templateData{
		PackageName: g.config.PackageName,
		AtoiImport:  g.config.AtoiImport,
		AtoiAlias:   path.Base(g.config.AtoiImport),
	}

	for _, k := range g.config.Kinds {
		if !k.IsInteger() {
			return nil, fmt.Errorf("%s is not an integer kind", k)
		}

		data.Kinds = append(data.Kinds, buildKindData(k))
	}

	var buf bytes.Buffer
	if err := wrappersTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if debugErr := writeDebugUnformatted(g.config.DebugDir, g.config.Filename, buf.Bytes()); debugErr != nil {
			err = errors.Join(err, debugErr)
		}

		return nil, fmt.Errorf("formatting generated code for %s: %w", g.config.Filename, err)
	}

	return &GeneratedFile{
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

func buildKindData(k primitive.KindEnum) kindData {
	d := kindData{
		Title:   k.Title(),
		Type:    k.TypeName(),
		Article: "a " + k.TypeName(),
		Family:  "Uint",
		Signed:  k.IsSigned(),
		Min:     k.MinExpr(),
		Max:     k.MaxExpr(),
	}

	if d.Signed {
		d.Article = "an " + k.TypeName()
		d.Family = "Int"
	}

	return d
}

// ParseKinds parses a comma-separated list of Go integer type names.
func ParseKinds(list string) ([]primitive.KindEnum, error) {
	var (
		res  []primitive.KindEnum
		seen = map[primitive.KindEnum]struct{}{}
	)

	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		k, ok := primitive.ParseKind(name)
		if !ok {
			return nil, unknownKindError(name)
		}

		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("integer type %q listed twice", name)
		}

		seen[k] = struct{}{}
		res = append(res, k)
	}

	return res, nil
}

func unknownKindError(name string) error {
	var names []string
	for _, k := range primitive.Integers() {
		names = append(names, k.TypeName())
	}

	if s, ok := match.Suggest(name, names); ok {
		return fmt.Errorf("unknown integer type %q (did you mean %s?)", name, s)
	}

	return fmt.Errorf("unknown integer type %q", name)
}

var wrappersTemplate = template.Must(template.New("wrappers").Parse(`// Code generated by typedgen. DO NOT EDIT.

package {{.PackageName}}

import "{{.AtoiImport}}"
{{range .Kinds}}
// {{.Title}} parses base 10 digits{{if .Signed}} with an optional leading sign{{end}} into {{.Article}}.
func {{.Title}}(s []byte) ({{.Type}}, bool) {
	return {{$.AtoiAlias}}.Parse{{.Family}}[{{.Type}}](s)
}

// {{.Title}}Radix parses digits in radix{{if .Signed}} with an optional leading sign{{end}} into {{.Article}}.
func {{.Title}}Radix(s []byte, radix int) ({{.Type}}, bool) {
	return {{$.AtoiAlias}}.Parse{{.Family}}Radix[{{.Type}}](s, radix)
}

// {{.Title}}Saturating is like {{.Title}} but clamps out of range values to [{{.Min}}, {{.Max}}].
func {{.Title}}Saturating(s []byte) ({{.Type}}, bool) {
	return {{$.AtoiAlias}}.Parse{{.Family}}Saturating[{{.Type}}](s)
}

// {{.Title}}SaturatingRadix is like {{.Title}}Radix but clamps out of range values to [{{.Min}}, {{.Max}}].
func {{.Title}}SaturatingRadix(s []byte, radix int) ({{.Type}}, bool) {
	return {{$.AtoiAlias}}.Parse{{.Family}}SaturatingRadix[{{.Type}}](s, radix)
}
{{end}}`))
