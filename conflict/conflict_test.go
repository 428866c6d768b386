package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrfeng/lexspec/alphabet"
	"github.com/xrfeng/lexspec/charclass"
	"github.com/xrfeng/lexspec/dfa"
	"github.com/xrfeng/lexspec/diag"
	"github.com/xrfeng/lexspec/regexast"
	"github.com/xrfeng/lexspec/ruleset"
)

// "if" keyword vs. a one-or-more lowercase-letter Ident rule: both match
// the literal input "if", an unresolvable ambiguity.
func TestFindReportsKeywordIdentConflictWithWitness(t *testing.T) {
	ifKeyword := regexast.Concat([]regexast.Regex[charclass.Class]{
		regexast.Atom(charclass.FromSingleRange('i', 'i'+1)),
		regexast.Atom(charclass.FromSingleRange('f', 'f'+1)),
	})
	ident := regexast.Some(regexast.Atom(charclass.FromSingleRange('a', 'z'+1)))

	p, classified := alphabet.Partition(ifKeyword, ident)
	rules := []ruleset.Rule{
		{Name: "Keyword", Regex: classified[0]},
		{Name: "Ident", Regex: classified[1]},
	}
	automaton := dfa.Minimize(dfa.Compile(p.NumClasses(), rules))

	conflicts := Find(p, automaton)
	require.Len(t, conflicts, 1)
	assert.ElementsMatch(t, []string{"Keyword", "Ident"}, conflicts[0].Rules)
	assert.Equal(t, "if", conflicts[0].Witness)
}

func TestReportAddsOneDiagnosticPerConflict(t *testing.T) {
	ifKeyword := regexast.Concat([]regexast.Regex[charclass.Class]{
		regexast.Atom(charclass.FromSingleRange('i', 'i'+1)),
		regexast.Atom(charclass.FromSingleRange('f', 'f'+1)),
	})
	ident := regexast.Some(regexast.Atom(charclass.FromSingleRange('a', 'z'+1)))

	p, classified := alphabet.Partition(ifKeyword, ident)
	rules := []ruleset.Rule{
		{Name: "Keyword", Regex: classified[0]},
		{Name: "Ident", Regex: classified[1]},
	}
	automaton := dfa.Minimize(dfa.Compile(p.NumClasses(), rules))

	var d diag.Bag
	Report(&d, p, automaton)
	require.True(t, d.HasErrors())
	require.Len(t, d.All(), 1)
	assert.Contains(t, d.All()[0].Message, "if")
}

func TestFindReturnsNilWhenNoConflict(t *testing.T) {
	ident := regexast.Some(regexast.Atom(charclass.FromSingleRange('a', 'z'+1)))
	p, classified := alphabet.Partition(ident)
	rules := []ruleset.Rule{{Name: "Ident", Regex: classified[0]}}
	automaton := dfa.Minimize(dfa.Compile(p.NumClasses(), rules))

	assert.Nil(t, Find(p, automaton))
}
