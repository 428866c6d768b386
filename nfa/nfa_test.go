package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrfeng/lexspec/alphabet"
	"github.com/xrfeng/lexspec/regexast"
)

// accepts runs a small epsilon-NFA simulator over b, starting at start,
// consuming syms in order, and reports whether frag's accept state is
// reachable via epsilon closure at the end.
func accepts(b *Builder, start StateID, syms []uint32, accept StateID) bool {
	closure := func(states map[StateID]bool) map[StateID]bool {
		stack := make([]StateID, 0, len(states))
		for s := range states {
			stack = append(stack, s)
		}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, e := range b.EdgesFrom(s) {
				if e.Kind == EdgeEpsilon && !states[e.To] {
					states[e.To] = true
					stack = append(stack, e.To)
				}
			}
		}
		return states
	}

	cur := closure(map[StateID]bool{start: true})
	for _, sym := range syms {
		next := map[StateID]bool{}
		for s := range cur {
			for _, e := range b.EdgesFrom(s) {
				if e.Kind == EdgeSymbol && e.Symbol == sym {
					next[e.To] = true
				}
			}
		}
		cur = closure(next)
	}
	return cur[accept]
}

func TestBuildAtomAcceptsExactlyItsClasses(t *testing.T) {
	b := NewBuilder()
	f := Build(b, regexast.Atom[alphabet.Classes]([]uint32{1, 2}))
	assert.True(t, accepts(b, f.Start, []uint32{1}, f.Accept))
	assert.True(t, accepts(b, f.Start, []uint32{2}, f.Accept))
	assert.False(t, accepts(b, f.Start, []uint32{3}, f.Accept))
	assert.False(t, accepts(b, f.Start, []uint32{1, 1}, f.Accept))
}

func TestBuildConcat(t *testing.T) {
	b := NewBuilder()
	r := regexast.Concat([]regexast.Regex[alphabet.Classes]{
		regexast.Atom[alphabet.Classes]([]uint32{1}),
		regexast.Atom[alphabet.Classes]([]uint32{2}),
	})
	f := Build(b, r)
	assert.True(t, accepts(b, f.Start, []uint32{1, 2}, f.Accept))
	assert.False(t, accepts(b, f.Start, []uint32{2, 1}, f.Accept))
	assert.False(t, accepts(b, f.Start, []uint32{1}, f.Accept))
}

func TestBuildAltAcceptsEitherBranch(t *testing.T) {
	b := NewBuilder()
	r := regexast.Alt([]regexast.Regex[alphabet.Classes]{
		regexast.Atom[alphabet.Classes]([]uint32{1}),
		regexast.Atom[alphabet.Classes]([]uint32{2}),
	})
	f := Build(b, r)
	assert.True(t, accepts(b, f.Start, []uint32{1}, f.Accept))
	assert.True(t, accepts(b, f.Start, []uint32{2}, f.Accept))
	assert.False(t, accepts(b, f.Start, []uint32{3}, f.Accept))
}

func TestBuildSomeRequiresAtLeastOne(t *testing.T) {
	b := NewBuilder()
	r := regexast.Some(regexast.Atom[alphabet.Classes]([]uint32{1}))
	f := Build(b, r)
	assert.False(t, accepts(b, f.Start, nil, f.Accept))
	assert.True(t, accepts(b, f.Start, []uint32{1}, f.Accept))
	assert.True(t, accepts(b, f.Start, []uint32{1, 1, 1}, f.Accept))
}

func TestBuildOptionalAcceptsZeroOrOne(t *testing.T) {
	b := NewBuilder()
	r := regexast.Optional(regexast.Atom[alphabet.Classes]([]uint32{1}))
	f := Build(b, r)
	assert.True(t, accepts(b, f.Start, nil, f.Accept))
	assert.True(t, accepts(b, f.Start, []uint32{1}, f.Accept))
	assert.False(t, accepts(b, f.Start, []uint32{1, 1}, f.Accept))
}

func TestBuildManyAcceptsZeroOrMore(t *testing.T) {
	b := NewBuilder()
	r := regexast.Many(regexast.Atom[alphabet.Classes]([]uint32{1}))
	f := Build(b, r)
	assert.True(t, accepts(b, f.Start, nil, f.Accept))
	assert.True(t, accepts(b, f.Start, []uint32{1, 1, 1, 1}, f.Accept))
}

func TestEmptyConcatAcceptsEmptyStringOnly(t *testing.T) {
	b := NewBuilder()
	r := regexast.Concat[alphabet.Classes](nil)
	f := Build(b, r)
	require.Equal(t, f.Start, f.Accept)
	assert.True(t, accepts(b, f.Start, nil, f.Accept))
}
