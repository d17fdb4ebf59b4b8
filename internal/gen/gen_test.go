package gen_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/on-the-ground/effect_ive_fn/internal/gen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(files []gen.File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestRender_AllArities(t *testing.T) {
	files, err := gen.Render(gen.NewConfig(0, ""))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"function1_gen.go", "function2_gen.go", "function3_gen.go", "function4_gen.go",
		"function5_gen.go", "function6_gen.go", "function7_gen.go", "function8_gen.go",
		"tuple_gen.go",
	}, names(files))

	for _, f := range files {
		assert.True(t, strings.HasPrefix(string(f.Source), "// Code generated by fngen. DO NOT EDIT.\n"), f.Name)
	}
}

func TestRender_SingleArityHasNoTuples(t *testing.T) {
	files, err := gen.Render(gen.NewConfig(1, ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"function1_gen.go"}, names(files))
	assert.NotContains(t, string(files[0].Source), "Tupled")
}

func TestRender_Declarations(t *testing.T) {
	files, err := gen.Render(gen.NewConfig(8, "fns"))
	require.NoError(t, err)

	decls := map[string]bool{}
	fset := token.NewFileSet()
	for _, f := range files {
		parsed, err := parser.ParseFile(fset, f.Name, f.Source, parser.ParseComments)
		require.NoError(t, err, f.Name)
		assert.Equal(t, "fns", parsed.Name.Name)
		for _, d := range parsed.Decls {
			switch d := d.(type) {
			case *ast.FuncDecl:
				if d.Recv == nil {
					decls[d.Name.Name] = true
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					if ts, ok := spec.(*ast.TypeSpec); ok {
						decls[ts.Name.Name] = true
					}
				}
			}
		}
	}

	for _, want := range []string{
		"Function1", "Func1", "Of1", "Constant1", "AndThen1", "Compose1At1", "Lift1", "LiftTry1", "Narrow1",
		"Function8", "Func8", "Of8", "Constant8", "AndThen8", "Lift8", "LiftTry8", "Narrow8",
		"Compose8At1", "Compose8At8", "memoized8",
		"Tuple2", "NewTuple2", "Tuple8", "NewTuple8",
	} {
		assert.True(t, decls[want], "missing declaration %s", want)
	}
	assert.False(t, decls["Tuple1"])
	assert.False(t, decls["Compose8At9"])
}

func TestRender_PartialsPerArity(t *testing.T) {
	files, err := gen.Render(gen.NewConfig(8, ""))
	require.NoError(t, err)

	for n, f := range files[:8] {
		src := string(f.Source)
		arity := n + 1
		for k := 1; k < arity; k++ {
			assert.Contains(t, src, ") Partial"+string(rune('0'+k))+"(", f.Name)
		}
		assert.NotContains(t, src, ") Partial"+string(rune('0'+arity))+"(", f.Name)
	}
}

func TestRender_InvalidArity(t *testing.T) {
	for _, n := range []int{-1, 9, 100} {
		_, err := gen.Render(gen.Config{MaxArity: n, Package: "purefn"})
		assert.ErrorIs(t, err, gen.ErrInvalidArity)
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	a, err := gen.Render(gen.NewConfig(8, ""))
	require.NoError(t, err)
	b, err := gen.Render(gen.NewConfig(8, ""))
	require.NoError(t, err)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, gen.Digest(a[i].Source), gen.Digest(b[i].Source), a[i].Name)
	}
}

func TestDigest(t *testing.T) {
	src := []byte("package purefn\n")
	assert.Equal(t, gen.Digest(src), gen.Digest([]byte("package purefn\n")))
	assert.NotEqual(t, gen.Digest(src), gen.Digest([]byte("package purefn // edited\n")))
}

func TestNewConfig_Defaults(t *testing.T) {
	config := gen.NewConfig(0, "")
	assert.Equal(t, gen.MaxArity, config.MaxArity)
	assert.Equal(t, "purefn", config.Package)
}
