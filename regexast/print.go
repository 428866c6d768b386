package regexast

import (
	"fmt"
	"strings"
)

// precedence levels, low to high: alt(0) < concat(1) < postfix(2) < atom(3).
const (
	precAlt = iota
	precConcat
	precPostfix
	precAtom
)

// String pretty-prints r. Operator precedences are atom > postfix(+, ?) >
// concat(space-joined) > alt(|-joined); parentheses are inserted whenever
// a child's precedence is lower than the context requires. Grounded on
// original_source/rlex/src/ast/op.rs's `Pretty` impl for `RegOp`, which
// threads the same context-level integer through recursive calls instead
// of computing precedence from the tree shape after the fact.
func (r Regex[A]) String() string {
	var b strings.Builder
	printAt(&b, r, precAlt, func(a A) string { return fmt.Sprint(a) })
	return b.String()
}

// StringWith pretty-prints r using show to render atoms, for atom types
// that are not directly fmt.Stringer-compatible in the form the caller
// wants (e.g. an equivalence-class index set rendered as `{1, 2}`).
func (r Regex[A]) StringWith(show func(A) string) string {
	var b strings.Builder
	printAt(&b, r, precAlt, show)
	return b.String()
}

func precOf[A any](r Regex[A]) int {
	switch r.kind {
	case KindAtom:
		return precAtom
	case KindSome, KindOptional:
		return precPostfix
	case KindConcat:
		return precConcat
	case KindAlt:
		return precAlt
	default:
		panic("regexast: unreachable kind")
	}
}

func printAt[A any](b *strings.Builder, r Regex[A], ctx int, show func(A) string) {
	switch r.kind {
	case KindAtom:
		b.WriteString(show(r.atom))
	case KindAlt:
		wrap := ctx > precAlt
		if wrap {
			b.WriteByte('(')
		}
		for i, c := range r.children {
			if i > 0 {
				b.WriteString(" | ")
			}
			printAt(b, c, precAlt, show)
		}
		if wrap {
			b.WriteByte(')')
		}
	case KindConcat:
		wrap := ctx > precConcat
		if wrap {
			b.WriteByte('(')
		}
		for i, c := range r.children {
			if i > 0 {
				b.WriteByte(' ')
			}
			printAt(b, c, precConcat, show)
		}
		if wrap {
			b.WriteByte(')')
		}
	case KindSome:
		printPostfix(b, *r.child, ctx, "+", show)
	case KindOptional:
		printPostfix(b, *r.child, ctx, "?", show)
	}
}

func printPostfix[A any](b *strings.Builder, child Regex[A], ctx int, op string, show func(A) string) {
	wrap := ctx > precPostfix
	if wrap {
		b.WriteByte('(')
	}
	printAt(b, child, precPostfix, show)
	if wrap {
		b.WriteByte(')')
	}
	b.WriteString(op)
}
