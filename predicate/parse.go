package predicate

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// expr is the grammar of a predicate expression: a kind name optionally
// followed by a parenthesised integer, e.g. "sparse(0)" or "clique".
type expr struct {
	Name string `parser:"@Ident"`
	K    *int   `parser:"( '(' @Int ')' )?"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z_-]*`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var exprParser = participle.MustBuild[expr](
	participle.Lexer(exprLexer),
)

// Parse reads a predicate expression as produced by Predicate.String.
// Parameterised kinds require "(k)"; independent and clique reject it.
func Parse(s string) (Predicate, error) {
	e, err := exprParser.ParseString("", s)
	if err != nil {
		return Predicate{}, fmt.Errorf("Parse(%q): %v: %w", s, err, ErrSyntax)
	}
	kind := kindByName(e.Name)
	switch {
	case kind == kindInvalid:
		return Predicate{}, fmt.Errorf("Parse(%q): %q: %w", s, e.Name, ErrUnknownKind)
	case kind.parameterised() && e.K == nil:
		return Predicate{}, fmt.Errorf("Parse(%q): %v needs (k): %w", s, kind, ErrSyntax)
	case !kind.parameterised() && e.K != nil:
		return Predicate{}, fmt.Errorf("Parse(%q): %v takes no argument: %w", s, kind, ErrSyntax)
	}
	k := 0
	if e.K != nil {
		k = *e.K
	}
	return New(kind, k)
}

// MustParse is Parse for fixtures; it panics on error.
func MustParse(s string) Predicate {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func kindByName(name string) Kind {
	for k := KindDivided; int(k) < len(kindNames); k++ {
		if kindNames[k] == name {
			return k
		}
	}
	return kindInvalid
}
