package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrfeng/lexspec/alphabet"
	"github.com/xrfeng/lexspec/charclass"
	"github.com/xrfeng/lexspec/regexast"
	"github.com/xrfeng/lexspec/ruleset"
)

func hexIdentifierRegex() regexast.Regex[charclass.Class] {
	head := regexast.Alt([]regexast.Regex[charclass.Class]{
		regexast.Atom(charclass.FromSingleRange('a', 'f'+1)),
		regexast.Atom(charclass.FromSingleRange('A', 'F'+1)),
		regexast.Atom(charclass.FromSingleRange('_', '_'+1)),
	})
	tail := regexast.Alt([]regexast.Regex[charclass.Class]{
		regexast.Atom(charclass.FromSingleRange('0', '9'+1)),
		regexast.Atom(charclass.FromSingleRange('a', 'f'+1)),
		regexast.Atom(charclass.FromSingleRange('A', 'F'+1)),
		regexast.Atom(charclass.FromSingleRange('_', '_'+1)),
	})
	return regexast.Concat([]regexast.Regex[charclass.Class]{head, regexast.Some(tail)})
}

func TestMinimizeMergesHexIdentifierToThreeStates(t *testing.T) {
	p, classified := alphabet.Partition(hexIdentifierRegex())
	rules := []ruleset.Rule{{Name: "Ident", Regex: classified[0]}}

	automaton := Compile(p.NumClasses(), rules)
	minimized := Minimize(automaton)

	// subset construction yields 8 states: the start state, one per head
	// atom (a-f, A-F, _) and one per tail atom (digit, a-f, A-F, _), since
	// every atom has its own NFA accept state. Minimization merges the head
	// states and the tail states: head-consumed-with-no-tail-yet is
	// distinguishable from the start state (a digit is rejected from start
	// but accepted from there), and both are distinguishable from the
	// accepting tail loop, so three states remain.
	require.Equal(t, 8, automaton.NumStates)
	require.Equal(t, 3, minimized.NumStates)

	var acceptStates []StateID
	for s, tags := range minimized.Tags {
		assert.Equal(t, []string{"Ident"}, tags)
		acceptStates = append(acceptStates, s)
	}
	require.Len(t, acceptStates, 1)
	assert.NotEqual(t, minimized.Start, acceptStates[0])
}

func TestCompileAcceptsMatchingInput(t *testing.T) {
	p, classified := alphabet.Partition(hexIdentifierRegex())
	rules := []ruleset.Rule{{Name: "Ident", Regex: classified[0]}}
	automaton := Minimize(Compile(p.NumClasses(), rules))

	run := func(s string) (dfa StateID, ok bool) {
		cur := automaton.Start
		for _, r := range s {
			class := classOf(p, r)
			next, transitioned := automaton.Step(cur, class)
			if !transitioned {
				return 0, false
			}
			cur = next
		}
		_, accepted := automaton.Tags[cur]
		return cur, accepted
	}

	_, ok := run("a1")
	assert.True(t, ok)
	_, ok = run("_abc123")
	assert.True(t, ok)
	_, ok = run("a")
	assert.False(t, ok, "needs at least one tail character")
	_, ok = run("1a")
	assert.False(t, ok, "head class cannot be a digit")
}

func TestMultiRuleDFATagsConflictingAcceptState(t *testing.T) {
	ifKeyword := regexast.Concat([]regexast.Regex[charclass.Class]{
		regexast.Atom(charclass.FromSingleRange('i', 'i'+1)),
		regexast.Atom(charclass.FromSingleRange('f', 'f'+1)),
	})
	ident := regexast.Some(regexast.Alt([]regexast.Regex[charclass.Class]{
		regexast.Atom(charclass.FromSingleRange('a', 'z'+1)),
	}))

	p, classified := alphabet.Partition(ifKeyword, ident)
	rules := []ruleset.Rule{
		{Name: "Keyword", Regex: classified[0]},
		{Name: "Ident", Regex: classified[1]},
	}
	automaton := Minimize(Compile(p.NumClasses(), rules))

	var conflicting []StateID
	for s, tags := range automaton.Tags {
		if len(tags) > 1 {
			conflicting = append(conflicting, s)
		}
	}
	require.Len(t, conflicting, 1)
	assert.ElementsMatch(t, []string{"Keyword", "Ident"}, automaton.Tags[conflicting[0]])
}

// classOf finds the equivalence class containing r, mirroring what a
// caller outside the alphabet package would have to do to drive a
// compiled DFA from raw input.
func classOf(p alphabet.SplitPoints, r rune) uint32 {
	for c := 0; c < p.NumClasses(); c++ {
		rg := p.RangeOf(uint32(c))
		if r >= rg.Lo && r < rg.Hi {
			return uint32(c)
		}
	}
	panic("no class contains rune")
}
