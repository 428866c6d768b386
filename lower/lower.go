// Package lower translates a rawsyntax.Expr into a regexast.Regex over
// charclass.Class atoms, resolving property-name atoms ($WhiteSpace,
// $Alphabetic, ...) against a unicodeprop.Tables collaborator. Grounded
// on the TryFrom<&Expr>/TryFrom<&Concat>/TryFrom<&Repeat>/TryFrom<&Atom>
// chain in original_source/rlex/src/ast.rs, which performs exactly this
// lowering (and can fail exactly where a property name fails to resolve).
package lower

import (
	"fmt"

	"github.com/xrfeng/lexspec/charclass"
	"github.com/xrfeng/lexspec/diag"
	"github.com/xrfeng/lexspec/rawsyntax"
	"github.com/xrfeng/lexspec/regexast"
	"github.com/xrfeng/lexspec/unicodeprop"
)

// Expr lowers a raw alternation into a regexast.Regex[charclass.Class].
// Errors are accumulated onto d rather than returned, so that a rule set
// with several bad property names is reported in one pass instead of
// stopping at the first one — mirroring spec.md §7's "collect, don't
// abort" diagnostic discipline.
func Expr(tables unicodeprop.Tables, d *diag.Bag, e rawsyntax.Expr) regexast.Regex[charclass.Class] {
	children := make([]regexast.Regex[charclass.Class], 0, len(e.Variants))
	for _, c := range e.Variants {
		children = append(children, concat(tables, d, c))
	}
	return regexast.Alt(children)
}

func concat(tables unicodeprop.Tables, d *diag.Bag, c rawsyntax.Concat) regexast.Regex[charclass.Class] {
	children := make([]regexast.Regex[charclass.Class], 0, len(c.Terms))
	for _, t := range c.Terms {
		children = append(children, term(tables, d, t))
	}
	return regexast.Concat(children)
}

// term lowers one quantified atom. Repeat::Many(x) in the original lowers
// to Optional(Some(x)) rather than a dedicated "zero or more" AST node —
// spec.md §4.2 mandates the same encoding, so `*` never gets its own
// regexast.Kind.
func term(tables unicodeprop.Tables, d *diag.Bag, t rawsyntax.Term) regexast.Regex[charclass.Class] {
	a := atom(tables, d, t.Atom)
	switch t.Quantifier {
	case rawsyntax.QuantNone:
		return a
	case rawsyntax.QuantPlus:
		return regexast.Some(a)
	case rawsyntax.QuantQuestion:
		return regexast.Optional(a)
	case rawsyntax.QuantStar:
		return regexast.Many(a)
	default:
		panic(fmt.Sprintf("lower: unknown quantifier %q", t.Quantifier))
	}
}

func atom(tables unicodeprop.Tables, d *diag.Bag, a rawsyntax.Atom) regexast.Regex[charclass.Class] {
	switch a.Kind {
	case rawsyntax.AtomChar:
		r := []rune(a.Char)
		if len(r) != 1 {
			d.Errorf("char atom %q must be exactly one code point", a.Char)
			return regexast.Atom(charclass.Empty())
		}
		return regexast.Atom(charclass.FromSingleRange(r[0], r[0]+1))

	case rawsyntax.AtomString:
		runes := []rune(a.Str)
		children := make([]regexast.Regex[charclass.Class], 0, len(runes))
		for _, r := range runes {
			children = append(children, regexast.Atom(charclass.FromSingleRange(r, r+1)))
		}
		return regexast.Concat(children)

	case rawsyntax.AtomRange:
		lo, hi := []rune(a.RangeLo), []rune(a.RangeHi)
		if len(lo) != 1 || len(hi) != 1 {
			d.Errorf("range atom %q..%q must use single code points", a.RangeLo, a.RangeHi)
			return regexast.Atom(charclass.Empty())
		}
		if lo[0] > hi[0] {
			d.Errorf("range atom %q..%q is empty (lo > hi)", a.RangeLo, a.RangeHi)
			return regexast.Atom(charclass.Empty())
		}
		return regexast.Atom(charclass.FromSingleRange(lo[0], hi[0]+1))

	case rawsyntax.AtomProperty:
		return regexast.Atom(resolveProperty(tables, d, a.Property))

	case rawsyntax.AtomGroup:
		if a.Group == nil {
			d.Errorf("group atom is missing its sub-expression")
			return regexast.Atom(charclass.Empty())
		}
		return Expr(tables, d, *a.Group)

	default:
		panic(fmt.Sprintf("lower: unknown atom kind %q", a.Kind))
	}
}

// resolveProperty looks up name first as a binary Unicode property
// (White_Space, Alphabetic, ...), then as a General_Category value (L,
// Lu, Nd, ...), using UAX44-LM3 loose matching on both the stored table
// key and the caller-supplied name. On failure it records a diagnostic
// naming both the original and the normalized spelling, exactly as
// ast.rs's TryFrom<&CharClass> does, and returns the empty class so
// lowering can continue past the error.
func resolveProperty(tables unicodeprop.Tables, d *diag.Bag, name string) charclass.Class {
	normalized := unicodeprop.Normalize(name)

	if canonical, ok := tables.PropertyNameCanonical(normalized); ok {
		return rangesToClass(tables.ForProperty(canonical))
	}
	if canonical, ok := tables.GeneralCategoryValueCanonical(normalized); ok {
		return rangesToClass(tables.ForGeneralCategoryValue(canonical))
	}

	d.Errorf("unknown Unicode property %q (normalized: %q)", name, normalized)
	return charclass.Empty()
}

func rangesToClass(rs []unicodeprop.RawRange) charclass.Class {
	ranges := make([]charclass.Range, 0, len(rs))
	for _, r := range rs {
		ranges = append(ranges, charclass.Range{Lo: rune(r.Lo), Hi: rune(r.Hi) + 1})
	}
	return charclass.FromRanges(ranges)
}
