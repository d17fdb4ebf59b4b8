// Package gen renders the fixed-arity function family of package purefn.
//
// Every arity shares one template: the contract interface FunctionN, the
// plain implementation FuncN, its memoized variant, and the free combinators
// that need extra type parameters (AndThenN, ComposeNAtK, ConstantN, LiftN,
// LiftTryN, NarrowN). TupleN values are rendered into a separate file.
package gen

import (
	"errors"
	"fmt"
	"go/format"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// MaxArity is the largest arity the generator renders.
const MaxArity = 8

const header = "// Code generated by fngen. DO NOT EDIT.\n\n"

var (
	ErrInvalidArity = errors.New("invalid arity")
	ErrStale        = errors.New("generated file is stale")
)

type Config struct {
	MaxArity int    // default: MaxArity
	Package  string // default: "purefn"
}

func NewConfig(maxArity int, pkg string) Config {
	if maxArity == 0 {
		maxArity = MaxArity
	}
	if pkg == "" {
		pkg = "purefn"
	}
	return Config{
		MaxArity: maxArity,
		Package:  pkg,
	}
}

// File is one rendered, gofmt-ed source file.
type File struct {
	Name   string
	Source []byte
}

// Digest fingerprints generated sources so stale files can be spotted
// without keeping the previous rendering around.
func Digest(src []byte) uint64 {
	return xxhash.Sum64(src)
}

// Render produces function1_gen.go up to functionN_gen.go, plus tuple_gen.go
// when the configured arity is at least 2.
func Render(config Config) ([]File, error) {
	config = NewConfig(config.MaxArity, config.Package)
	if config.MaxArity < 1 || config.MaxArity > MaxArity {
		return nil, fmt.Errorf("%w: %d, must be within [1, %d]", ErrInvalidArity, config.MaxArity, MaxArity)
	}

	files := make([]File, 0, config.MaxArity+1)
	for n := 1; n <= config.MaxArity; n++ {
		f, err := formatted(fmt.Sprintf("function%d_gen.go", n), renderFunction(config.Package, n))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	if config.MaxArity >= 2 {
		f, err := formatted("tuple_gen.go", renderTuples(config.Package, config.MaxArity))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func formatted(name, src string) (File, error) {
	out, err := format.Source([]byte(src))
	if err != nil {
		return File{}, fmt.Errorf("failed to format %s: %w", name, err)
	}
	return File{Name: name, Source: out}, nil
}

// sig holds the pieces of one arity's signature.
type sig struct {
	n      int
	types  []string // T1..Tn
	params []string // t1 T1..tn Tn
	args   []string // t1..tn
}

func newSig(n int) sig {
	s := sig{n: n}
	for i := 1; i <= n; i++ {
		s.types = append(s.types, fmt.Sprintf("T%d", i))
		s.params = append(s.params, fmt.Sprintf("t%d T%d", i, i))
		s.args = append(s.args, fmt.Sprintf("t%d", i))
	}
	return s
}

func join(xs ...[]string) string {
	all := []string{}
	for _, x := range xs {
		all = append(all, x...)
	}
	return strings.Join(all, ", ")
}

func reversed(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

// decl is the type parameter list with extra trailing parameters.
func (s sig) decl(extra ...string) string {
	return join(s.types, []string{"R"}, extra) + " any"
}

// use is the type argument list with the result type swapped for r.
func (s sig) use(r string) string {
	return join(s.types, []string{r})
}

func (s sig) function(r string) string {
	return fmt.Sprintf("Function%d[%s]", s.n, s.use(r))
}

func (s sig) fn(r string) string {
	return fmt.Sprintf("Func%d[%s]", s.n, s.use(r))
}

func (s sig) tuple() string {
	return fmt.Sprintf("Tuple%d[%s]", s.n, join(s.types))
}

// curried renders Function1[T1, Function1[T2, ... Function1[Tn, R]]].
func curried(types []string, r string) string {
	if len(types) == 1 {
		return fmt.Sprintf("Function1[%s, %s]", types[0], r)
	}
	return fmt.Sprintf("Function1[%s, %s]", types[0], curried(types[1:], r))
}

func renderFunction(pkg string, n int) string {
	s := newSig(n)
	anys := make([]string, n+1)
	for i := range anys {
		anys[i] = "any"
	}

	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/lightningnetwork/lnd/fn/v2\"\n")
	b.WriteString("\t\"github.com/on-the-ground/effect_ive_fn/pure\"\n")
	b.WriteString("\t\"github.com/on-the-ground/effect_ive_fn/shared/helper\"\n")
	b.WriteString(")\n\n")

	// contract
	fmt.Fprintf(&b, "// Function%d is a pure function of %d %s.\n", n, n, plural(n, "argument"))
	fmt.Fprintf(&b, "type Function%d[%s] interface {\n", n, s.decl())
	b.WriteString("\t// Apply invokes the function.\n")
	fmt.Fprintf(&b, "\tApply(%s) R\n", join(s.types))
	fmt.Fprintf(&b, "\t// Arity returns %d.\n", n)
	b.WriteString("\tArity() int\n")
	fmt.Fprintf(&b, "\t// Curried returns a chain of %d unary %s.\n", n, plural(n, "function"))
	fmt.Fprintf(&b, "\tCurried() %s\n", curried(s.types, "R"))
	if n >= 2 {
		fmt.Fprintf(&b, "\t// Tupled returns a unary function over one Tuple%d.\n", n)
		fmt.Fprintf(&b, "\tTupled() Function1[%s, R]\n", s.tuple())
	}
	b.WriteString("\t// Reversed returns the function taking its arguments in reverse order.\n")
	fmt.Fprintf(&b, "\tReversed() Function%d[%s]\n", n, join(reversed(s.types), []string{"R"}))
	if n >= 2 {
		b.WriteString("\t// PartialK binds the leading K arguments.\n")
		for k := 1; k < n; k++ {
			rest := newSig(n).types[k:]
			fmt.Fprintf(&b, "\tPartial%d(%s) Function%d[%s]\n", k, join(s.types[:k]), n-k, join(rest, []string{"R"}))
		}
	}
	b.WriteString("\t// Memoized returns a variant caching its results per argument tuple.\n")
	b.WriteString("\t// A memoized function returns itself.\n")
	fmt.Fprintf(&b, "\tMemoized() %s\n", s.function("R"))
	b.WriteString("\t// IsMemoized reports whether the function caches its results.\n")
	b.WriteString("\tIsMemoized() bool\n")
	b.WriteString("}\n\n")

	// plain implementation
	fmt.Fprintf(&b, "// Func%d is a plain func of %d %s implementing Function%d.\n", n, n, plural(n, "argument"), n)
	fmt.Fprintf(&b, "type Func%d[%s] func(%s) R\n\n", n, s.decl(), join(s.types))
	fmt.Fprintf(&b, "var _ Function%d[%s] = Func%d[%s](nil)\n\n", n, join(anys), n, join(anys))

	fmt.Fprintf(&b, "// Of%d adapts a func value or a method value to Function%d.\n", n, n)
	fmt.Fprintf(&b, "func Of%d[%s](f func(%s) R) %s {\n", n, s.decl(), join(s.types), s.function("R"))
	fmt.Fprintf(&b, "\treturn %s(f)\n", s.fn("R"))
	b.WriteString("}\n\n")

	recv := fmt.Sprintf("func (f %s)", s.fn("R"))

	fmt.Fprintf(&b, "%s Apply(%s) R {\n", recv, join(s.params))
	fmt.Fprintf(&b, "\treturn f(%s)\n", join(s.args))
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s Arity() int {\n", recv)
	fmt.Fprintf(&b, "\treturn %d\n", n)
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s Curried() %s {\n", recv, curried(s.types, "R"))
	if n == 1 {
		b.WriteString("\treturn f\n")
	} else {
		rest := curried(s.types[1:], "R")
		fmt.Fprintf(&b, "\treturn Func1[T1, %s](func(t1 T1) %s {\n", rest, rest)
		b.WriteString("\t\treturn f.Partial1(t1).Curried()\n")
		b.WriteString("\t})\n")
	}
	b.WriteString("}\n\n")

	if n >= 2 {
		fmt.Fprintf(&b, "%s Tupled() Function1[%s, R] {\n", recv, s.tuple())
		fmt.Fprintf(&b, "\treturn Func1[%s, R](func(t %s) R {\n", s.tuple(), s.tuple())
		fields := make([]string, n)
		for i := range fields {
			fields[i] = fmt.Sprintf("t.V%d", i+1)
		}
		fmt.Fprintf(&b, "\t\treturn f(%s)\n", join(fields))
		b.WriteString("\t})\n")
		b.WriteString("}\n\n")
	}

	revTypes := join(reversed(s.types), []string{"R"})
	fmt.Fprintf(&b, "%s Reversed() Function%d[%s] {\n", recv, n, revTypes)
	if n == 1 {
		b.WriteString("\treturn f\n")
	} else {
		fmt.Fprintf(&b, "\treturn Func%d[%s](func(%s) R {\n", n, revTypes, join(reversed(s.params)))
		fmt.Fprintf(&b, "\t\treturn f(%s)\n", join(s.args))
		b.WriteString("\t})\n")
	}
	b.WriteString("}\n\n")

	for k := 1; k < n; k++ {
		restTypes := join(s.types[k:], []string{"R"})
		fmt.Fprintf(&b, "%s Partial%d(%s) Function%d[%s] {\n", recv, k, join(s.params[:k]), n-k, restTypes)
		fmt.Fprintf(&b, "\treturn Func%d[%s](func(%s) R {\n", n-k, restTypes, join(s.params[k:]))
		fmt.Fprintf(&b, "\t\treturn f(%s)\n", join(s.args))
		b.WriteString("\t})\n")
		b.WriteString("}\n\n")
	}

	fmt.Fprintf(&b, "%s Memoized() %s {\n", recv, s.function("R"))
	fmt.Fprintf(&b, "\ttable := pure.NewTable[R](tableConfig(%d))\n", n)
	fmt.Fprintf(&b, "\tm := &memoized%d[%s]{table: table}\n", n, s.use("R"))
	fmt.Fprintf(&b, "\tm.Func%d = func(%s) R {\n", n, join(s.params))
	b.WriteString("\t\treturn table.Apply(func() R {\n")
	fmt.Fprintf(&b, "\t\t\treturn f(%s)\n", join(s.args))
	fmt.Fprintf(&b, "\t\t}, %s)\n", join(s.args))
	b.WriteString("\t}\n")
	b.WriteString("\treturn m\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s IsMemoized() bool {\n", recv)
	b.WriteString("\treturn false\n")
	b.WriteString("}\n\n")

	// memoized implementation
	fmt.Fprintf(&b, "// memoized%d owns the memo table of one Memoized call.\n", n)
	fmt.Fprintf(&b, "type memoized%d[%s] struct {\n", n, s.decl())
	fmt.Fprintf(&b, "\t%s\n", s.fn("R"))
	b.WriteString("\ttable *pure.Table[R]\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "var _ Function%d[%s] = (*memoized%d[%s])(nil)\n\n", n, join(anys), n, join(anys))

	mrecv := fmt.Sprintf("func (m *memoized%d[%s])", n, s.use("R"))
	fmt.Fprintf(&b, "%s Memoized() %s {\n", mrecv, s.function("R"))
	b.WriteString("\treturn m\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "%s IsMemoized() bool {\n", mrecv)
	b.WriteString("\treturn true\n")
	b.WriteString("}\n\n")
	if n == 1 {
		// the unary views are the function itself
		fmt.Fprintf(&b, "%s Curried() %s {\n", mrecv, s.function("R"))
		b.WriteString("\treturn m\n")
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "%s Reversed() %s {\n", mrecv, s.function("R"))
		b.WriteString("\treturn m\n")
		b.WriteString("}\n\n")
	}
	fmt.Fprintf(&b, "%s Stats() pure.Stats {\n", mrecv)
	b.WriteString("\treturn m.table.Stats()\n")
	b.WriteString("}\n\n")

	// combinators
	fmt.Fprintf(&b, "// Constant%d returns a function ignoring its arguments and always returning value.\n", n)
	fmt.Fprintf(&b, "func Constant%d[%s](value R) %s {\n", n, s.decl(), s.function("R"))
	fmt.Fprintf(&b, "\treturn %s(func(%s) R {\n", s.fn("R"), join(s.types))
	b.WriteString("\t\treturn value\n")
	b.WriteString("\t})\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "// AndThen%d returns a function applying after to the result of f.\n", n)
	fmt.Fprintf(&b, "func AndThen%d[%s](f %s, after Function1[R, V]) %s {\n", n, s.decl("V"), s.function("R"), s.function("V"))
	fmt.Fprintf(&b, "\treturn %s(func(%s) V {\n", s.fn("V"), join(s.params))
	fmt.Fprintf(&b, "\t\treturn after.Apply(f.Apply(%s))\n", join(s.args))
	b.WriteString("\t})\n")
	b.WriteString("}\n\n")

	for k := 1; k <= n; k++ {
		types := append([]string{}, s.types...)
		types[k-1] = "S"
		params := append([]string{}, s.params...)
		params[k-1] = "s S"
		args := append([]string{}, s.args...)
		args[k-1] = "before.Apply(s)"
		target := fmt.Sprintf("Function%d[%s]", n, join(types, []string{"R"}))

		fmt.Fprintf(&b, "// Compose%dAt%d returns a function applying before to argument %d of f.\n", n, k, k)
		fmt.Fprintf(&b, "func Compose%dAt%d[%s](f %s, before Function1[S, T%d]) %s {\n", n, k, s.decl("S"), s.function("R"), k, target)
		fmt.Fprintf(&b, "\treturn Func%d[%s](func(%s) R {\n", n, join(types, []string{"R"}), join(params))
		fmt.Fprintf(&b, "\t\treturn f.Apply(%s)\n", join(args))
		b.WriteString("\t})\n")
		b.WriteString("}\n\n")
	}

	fmt.Fprintf(&b, "// Lift%d turns a partial function into a total one.\n", n)
	b.WriteString("// A panic yields fn.None; a non-terminating call stays non-terminating.\n")
	fmt.Fprintf(&b, "func Lift%d[%s](partial %s) %s {\n", n, s.decl(), s.function("R"), s.function("fn.Option[R]"))
	fmt.Fprintf(&b, "\treturn %s(func(%s) fn.Option[R] {\n", s.fn("fn.Option[R]"), join(s.params))
	b.WriteString("\t\tres, err := helper.Try(func() R {\n")
	fmt.Fprintf(&b, "\t\t\treturn partial.Apply(%s)\n", join(s.args))
	b.WriteString("\t\t})\n")
	b.WriteString("\t\tif err != nil {\n")
	b.WriteString("\t\t\treturn fn.None[R]()\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t\treturn fn.Some(res)\n")
	b.WriteString("\t})\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "// LiftTry%d captures a panic of f into a failed fn.Result instead of propagating it.\n", n)
	fmt.Fprintf(&b, "func LiftTry%d[%s](f %s) %s {\n", n, s.decl(), s.function("R"), s.function("fn.Result[R]"))
	fmt.Fprintf(&b, "\treturn %s(func(%s) fn.Result[R] {\n", s.fn("fn.Result[R]"), join(s.params))
	b.WriteString("\t\tres, err := helper.Try(func() R {\n")
	fmt.Fprintf(&b, "\t\t\treturn f.Apply(%s)\n", join(s.args))
	b.WriteString("\t\t})\n")
	b.WriteString("\t\tif err != nil {\n")
	b.WriteString("\t\t\treturn fn.Err[R](err)\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t\treturn fn.Ok(res)\n")
	b.WriteString("\t})\n")
	b.WriteString("}\n\n")

	wides := make([]string, n)
	casts := make([]string, n)
	for i := range wides {
		wides[i] = fmt.Sprintf("W%d", i+1)
		casts[i] = fmt.Sprintf("helper.MustCast[W%d](t%d)", i+1, i+1)
	}
	fmt.Fprintf(&b, "// Narrow%d views wide, declared over wider types, through narrower ones.\n", n)
	b.WriteString("// Values pass through unchanged; a value not assignable to the target type panics.\n")
	fmt.Fprintf(&b, "func Narrow%d[%s](wide Function%d[%s]) %s {\n", n, join(s.types, []string{"R"}, wides, []string{"RW"})+" any", n, join(wides, []string{"RW"}), s.function("R"))
	fmt.Fprintf(&b, "\treturn %s(func(%s) R {\n", s.fn("R"), join(s.params))
	fmt.Fprintf(&b, "\t\treturn helper.MustCast[R](wide.Apply(%s))\n", join(casts))
	b.WriteString("\t})\n")
	b.WriteString("}\n")

	return b.String()
}

func renderTuples(pkg string, maxArity int) string {
	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n", pkg)

	for n := 2; n <= maxArity; n++ {
		s := newSig(n)
		values := make([]string, n)
		fields := make([]string, n)
		inits := make([]string, n)
		for i := range values {
			values[i] = fmt.Sprintf("v%d T%d", i+1, i+1)
			fields[i] = fmt.Sprintf("t.V%d", i+1)
			inits[i] = fmt.Sprintf("V%d: v%d", i+1, i+1)
		}
		tuple := s.tuple()

		fmt.Fprintf(&b, "\n// Tuple%d is an ordered group of %d values.\n", n, n)
		fmt.Fprintf(&b, "type Tuple%d[%s any] struct {\n", n, join(s.types))
		for i := 1; i <= n; i++ {
			fmt.Fprintf(&b, "\tV%d T%d\n", i, i)
		}
		b.WriteString("}\n\n")

		fmt.Fprintf(&b, "func NewTuple%d[%s any](%s) %s {\n", n, join(s.types), join(values), tuple)
		fmt.Fprintf(&b, "\treturn %s{%s}\n", tuple, join(inits))
		b.WriteString("}\n\n")

		b.WriteString("// Unpack returns the elements in order.\n")
		fmt.Fprintf(&b, "func (t %s) Unpack() (%s) {\n", tuple, join(s.types))
		fmt.Fprintf(&b, "\treturn %s\n", join(fields))
		b.WriteString("}\n")
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
