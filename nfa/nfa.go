// Package nfa builds Thompson-construction NFA fragments from a
// classified regex (regexast.Regex[alphabet.Classes]): one state machine
// fragment per atom/alt/concat/some/optional node, composed bottom-up via
// regexast.Fold. Grounded on the atom/alt/concat/some/optional
// constructors in original_source/rlex/src/automata/builder.rs, adapted
// from that file's BTreeSet<Edge>-over-a-shared-counter style into an
// explicit Builder that many rules can share a state space with (needed
// so that C6 can alternate several independently-built rule fragments
// together without renumbering).
package nfa

import (
	"github.com/xrfeng/lexspec/alphabet"
	"github.com/xrfeng/lexspec/regexast"
)

// StateID names one NFA state within a Builder's state space.
type StateID int

// EdgeKind distinguishes a spontaneous (epsilon) transition from one
// that consumes an equivalence-class symbol.
type EdgeKind int

const (
	EdgeEpsilon EdgeKind = iota
	EdgeSymbol
)

// Edge is one transition out of a state. Symbol is only meaningful when
// Kind is EdgeSymbol, and names an equivalence-class index from the
// alphabet.SplitPoints table the regex was classified against.
type Edge struct {
	To     StateID
	Kind   EdgeKind
	Symbol uint32
}

// Builder accumulates states and edges for one or more fragments sharing
// a single state space, so that several rules can be built independently
// and then alternated together without colliding state ids.
type Builder struct {
	numStates int
	edges     map[StateID][]Edge
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{edges: map[StateID][]Edge{}}
}

// NewState allocates a fresh, edgeless state.
func (b *Builder) NewState() StateID {
	s := StateID(b.numStates)
	b.numStates++
	return s
}

// NumStates returns how many states have been allocated so far.
func (b *Builder) NumStates() int { return b.numStates }

// EdgesFrom returns the edges leaving s. The caller must not mutate the
// result.
func (b *Builder) EdgesFrom(s StateID) []Edge { return b.edges[s] }

// AddEpsilon adds a spontaneous transition from -> to.
func (b *Builder) AddEpsilon(from, to StateID) {
	b.edges[from] = append(b.edges[from], Edge{To: to, Kind: EdgeEpsilon})
}

// AddSymbol adds a transition from -> to that consumes equivalence class
// sym.
func (b *Builder) AddSymbol(from, to StateID, sym uint32) {
	b.edges[from] = append(b.edges[from], Edge{To: to, Kind: EdgeSymbol, Symbol: sym})
}

// Fragment is a sub-machine with exactly one entry and one exit state,
// the standard Thompson-construction invariant.
type Fragment struct {
	Start, Accept StateID
}

// Build lowers a classified regex into a fragment within b, allocating
// whatever new states and edges the construction needs. Concat([]) (the
// empty sequence) builds a single state that accepts the empty string,
// matching Concat's own "empty sequence matches empty string" contract.
func Build(b *Builder, r regexast.Regex[alphabet.Classes]) Fragment {
	return regexast.Fold(r, func(op regexast.Op[alphabet.Classes, Fragment]) Fragment {
		switch op.Kind {
		case regexast.KindAtom:
			return buildAtom(b, op.Atom)
		case regexast.KindConcat:
			return buildConcat(b, op.Results)
		case regexast.KindAlt:
			return buildAlt(b, op.Results)
		case regexast.KindSome:
			return buildSome(b, op.Results[0])
		case regexast.KindOptional:
			return buildOptional(b, op.Results[0])
		default:
			panic("nfa: unreachable regexast kind")
		}
	})
}

func buildAtom(b *Builder, classes alphabet.Classes) Fragment {
	start := b.NewState()
	accept := b.NewState()
	for _, sym := range classes {
		b.AddSymbol(start, accept, sym)
	}
	return Fragment{Start: start, Accept: accept}
}

func buildConcat(b *Builder, frags []Fragment) Fragment {
	if len(frags) == 0 {
		s := b.NewState()
		return Fragment{Start: s, Accept: s}
	}
	for i := 0; i < len(frags)-1; i++ {
		b.AddEpsilon(frags[i].Accept, frags[i+1].Start)
	}
	return Fragment{Start: frags[0].Start, Accept: frags[len(frags)-1].Accept}
}

func buildAlt(b *Builder, frags []Fragment) Fragment {
	start := b.NewState()
	accept := b.NewState()
	for _, f := range frags {
		b.AddEpsilon(start, f.Start)
		b.AddEpsilon(f.Accept, accept)
	}
	return Fragment{Start: start, Accept: accept}
}

// buildSome adds a back-edge from accept to start and reuses both states,
// rather than allocating a fresh wrapper fragment — grounded on builder.rs's
// `some` doing exactly this instead of the textbook "new start/accept"
// Thompson construction for `+`.
func buildSome(b *Builder, f Fragment) Fragment {
	b.AddEpsilon(f.Accept, f.Start)
	return f
}

func buildOptional(b *Builder, f Fragment) Fragment {
	start := b.NewState()
	accept := b.NewState()
	b.AddEpsilon(start, f.Start)
	b.AddEpsilon(start, accept)
	b.AddEpsilon(f.Accept, accept)
	return Fragment{Start: start, Accept: accept}
}
