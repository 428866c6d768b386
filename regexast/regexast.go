// Package regexast is the regex tree shared by every stage of the
// compiler, generic over its atom type: a raw AST carries
// Regex[charclass.Class] atoms, a classified one carries
// Regex[alphabet.Classes] atoms. Grounded on the Alt/Concat/Some/Optional
// sum type in original_source/rlex/src/ast/op.rs (`RegOp`), translated
// from a Rust fixpoint-of-a-functor encoding to a single tagged struct —
// Go has no generic recursive sum types, so the teacher's own tag-plus-
// payload node encoding (graph.go's node/edge kind field) is the closer
// idiom than trying to fake an algebraic type with an interface per
// variant.
package regexast

// Kind tags which field of Regex is populated.
type Kind int

const (
	KindAtom Kind = iota
	KindAlt
	KindConcat
	KindSome
	KindOptional
)

// Regex is `R<A>` from spec.md §3: Atom(a), Alt(children), Concat(children),
// Some(child), Optional(child). Alt/Concat with exactly one child are never
// constructed — the smart constructors below collapse them, matching the
// invariant spec.md states explicitly.
type Regex[A any] struct {
	kind     Kind
	atom     A
	children []Regex[A]
	child    *Regex[A]
}

// Atom builds a single-atom regex.
func Atom[A any](a A) Regex[A] {
	return Regex[A]{kind: KindAtom, atom: a}
}

// Alt builds an alternation, collapsing the 1-child case to the child.
// Alt of zero children matches nothing.
func Alt[A any](children []Regex[A]) Regex[A] {
	if len(children) == 1 {
		return children[0]
	}
	return Regex[A]{kind: KindAlt, children: children}
}

// Concat builds a concatenation, collapsing the 1-child case to the
// child. Concat of zero children matches the empty string; it is
// represented with a children slice of length zero, not with a sentinel
// atom.
func Concat[A any](children []Regex[A]) Regex[A] {
	if len(children) == 1 {
		return children[0]
	}
	return Regex[A]{kind: KindConcat, children: children}
}

// Some builds `child+`.
func Some[A any](child Regex[A]) Regex[A] {
	return Regex[A]{kind: KindSome, child: &child}
}

// Optional builds `child?`.
func Optional[A any](child Regex[A]) Regex[A] {
	return Regex[A]{kind: KindOptional, child: &child}
}

// Many builds `child*`, expressed as Optional(Some(child)) exactly as
// spec.md §4.2 mandates ("`Many` (zero-or-more) is expressed as
// `Optional(Some(r))`").
func Many[A any](child Regex[A]) Regex[A] {
	return Optional(Some(child))
}

// Kind reports which variant r is.
func (r Regex[A]) Kind() Kind { return r.kind }

// AtomValue returns the atom payload; only meaningful when Kind() == KindAtom.
func (r Regex[A]) AtomValue() A { return r.atom }

// Children returns the child list; only meaningful for KindAlt/KindConcat.
func (r Regex[A]) Children() []Regex[A] { return r.children }

// Child returns the single child; only meaningful for KindSome/KindOptional.
func (r Regex[A]) Child() Regex[A] { return *r.child }

// ForEach visits every atom in left-to-right order.
func (r Regex[A]) ForEach(f func(A)) {
	switch r.kind {
	case KindAtom:
		f(r.atom)
	case KindAlt, KindConcat:
		for _, c := range r.children {
			c.ForEach(f)
		}
	case KindSome, KindOptional:
		r.child.ForEach(f)
	}
}

// Map is structure-preserving: it rebuilds the same shape with atoms
// translated by f.
func Map[A, B any](r Regex[A], f func(A) B) Regex[B] {
	switch r.kind {
	case KindAtom:
		return Atom(f(r.atom))
	case KindAlt:
		out := make([]Regex[B], len(r.children))
		for i, c := range r.children {
			out[i] = Map(c, f)
		}
		return Regex[B]{kind: KindAlt, children: out}
	case KindConcat:
		out := make([]Regex[B], len(r.children))
		for i, c := range r.children {
			out[i] = Map(c, f)
		}
		return Regex[B]{kind: KindConcat, children: out}
	case KindSome:
		c := Map(*r.child, f)
		return Regex[B]{kind: KindSome, child: &c}
	case KindOptional:
		c := Map(*r.child, f)
		return Regex[B]{kind: KindOptional, child: &c}
	default:
		panic("regexast: unreachable kind")
	}
}

// Fold is the catamorphism used to translate a regex into e.g. an NFA
// fragment: f is called bottom-up, once per node, with children already
// folded.
func Fold[A, B any](r Regex[A], f func(Op[A, B]) B) B {
	switch r.kind {
	case KindAtom:
		return f(Op[A, B]{Kind: KindAtom, Atom: r.atom})
	case KindAlt:
		out := make([]B, len(r.children))
		for i, c := range r.children {
			out[i] = Fold(c, f)
		}
		return f(Op[A, B]{Kind: KindAlt, Results: out})
	case KindConcat:
		out := make([]B, len(r.children))
		for i, c := range r.children {
			out[i] = Fold(c, f)
		}
		return f(Op[A, B]{Kind: KindConcat, Results: out})
	case KindSome:
		sub := Fold(*r.child, f)
		return f(Op[A, B]{Kind: KindSome, Results: []B{sub}})
	case KindOptional:
		sub := Fold(*r.child, f)
		return f(Op[A, B]{Kind: KindOptional, Results: []B{sub}})
	default:
		panic("regexast: unreachable kind")
	}
}

// Op is the single node passed to a Fold callback: the original atom (for
// KindAtom) or the already-folded results of the children (otherwise).
// Mirrors `RegOp<A, R>` in original_source/rlex/src/ast/op.rs.
type Op[A, B any] struct {
	Kind    Kind
	Atom    A
	Results []B
}
