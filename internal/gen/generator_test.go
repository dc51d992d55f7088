package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atoi-radix/primitive"
)

func TestGenerate_AllKinds(t *testing.T) {
	t.Parallel()

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate()
	require.NoError(t, err)
	assert.Equal(t, "typed_gen.go", file.Filename)

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, file.Filename, file.Content, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "typed", parsed.Name.Name)

	var funcs []string

	for _, decl := range parsed.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			funcs = append(funcs, fn.Name.Name)
			assert.NotNil(t, fn.Doc, fn.Name.Name)
		}
	}

	require.Len(t, funcs, 4*(primitive.KindTotal-1))
	assert.Equal(t, []string{"Int", "IntRadix", "IntSaturating", "IntSaturatingRadix"}, funcs[:4])
	assert.Contains(t, funcs, "Uint64SaturatingRadix")
}

func TestGenerate_Content(t *testing.T) {
	t.Parallel()

	cfg := DefaultGeneratorConfig()
	cfg.PackageName = "wrappers"
	cfg.Kinds = []primitive.KindEnum{primitive.KindInt8, primitive.KindUint16}

	file, err := NewGenerator(cfg).Generate()
	require.NoError(t, err)

	src := string(file.Content)
	assert.Contains(t, src, "// Code generated by typedgen. DO NOT EDIT.")
	assert.Contains(t, src, "package wrappers")
	assert.Contains(t, src, `import "atoi-radix/atoi"`)
	assert.Contains(t, src, "func Int8Radix(s []byte, radix int) (int8, bool) {\n\treturn atoi.ParseIntRadix[int8](s, radix)\n}")
	assert.Contains(t, src, "func Uint16Saturating(s []byte) (uint16, bool) {\n\treturn atoi.ParseUintSaturating[uint16](s)\n}")
	assert.Contains(t, src, "into an int8.")
	assert.Contains(t, src, "into a uint16.")
	assert.Contains(t, src, "[math.MinInt8, math.MaxInt8]")
	assert.Contains(t, src, "[0, math.MaxUint16]")
	assert.NotContains(t, src, "Int16")
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	cfg := DefaultGeneratorConfig()
	cfg.Kinds = nil
	_, err := NewGenerator(cfg).Generate()
	require.Error(t, err)

	cfg = DefaultGeneratorConfig()
	cfg.PackageName = ""
	_, err = NewGenerator(cfg).Generate()
	require.Error(t, err)

	cfg = DefaultGeneratorConfig()
	cfg.Kinds = []primitive.KindEnum{primitive.KindEnum(0)}
	_, err = NewGenerator(cfg).Generate()
	require.ErrorContains(t, err, "KindEnum(0) is not an integer kind")
}

func TestGenerate_UnformattableWritesDebugFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg := DefaultGeneratorConfig()
	cfg.PackageName = "1typed"
	cfg.DebugDir = dir

	_, err := NewGenerator(cfg).Generate()
	require.ErrorContains(t, err, "formatting generated code for typed_gen.go")

	content, err := os.ReadFile(filepath.Join(dir, "typed_gen.unformatted.go.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package 1typed")
}

func TestParseKinds(t *testing.T) {
	t.Parallel()

	kinds, err := ParseKinds(" int8, uint64 ,,int")
	require.NoError(t, err)
	assert.Equal(t, []primitive.KindEnum{primitive.KindInt8, primitive.KindUint64, primitive.KindInt}, kinds)

	_, err = ParseKinds("int8,float32")
	require.ErrorContains(t, err, `unknown integer type "float32"`)

	_, err = ParseKinds("int8,unit32")
	require.EqualError(t, err, `unknown integer type "unit32" (did you mean uint32?)`)

	_, err = ParseKinds("int8,int8")
	require.ErrorContains(t, err, "listed twice")
}

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "out")
	files := []GeneratedFile{{Filename: "a_gen.go", Content: []byte("package a\n")}}

	require.NoError(t, WriteFiles(files, dir))

	content, err := os.ReadFile(filepath.Join(dir, "a_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(content))
}

func TestGenerate_MatchesCheckedInWrappers(t *testing.T) {
	t.Parallel()

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate()
	require.NoError(t, err)

	golden, err := os.ReadFile(filepath.Join("..", "..", "typed", file.Filename))
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(file.Content), "run go generate ./typed")
}

func TestGenerate_ForeignImportPath(t *testing.T) {
	t.Parallel()

	cfg := DefaultGeneratorConfig()
	cfg.AtoiImport = "example.com/vendor/fastatoi"
	cfg.Kinds = []primitive.KindEnum{primitive.KindUint}

	file, err := NewGenerator(cfg).Generate()
	require.NoError(t, err)
	assert.Contains(t, string(file.Content), "return fastatoi.ParseUintRadix[uint](s, radix)")

	cfg.AtoiImport = ""
	_, err = NewGenerator(cfg).Generate()
	require.Error(t, err)
}
