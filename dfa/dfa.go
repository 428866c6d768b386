// Package dfa implements subset construction over a group of rule NFAs
// sharing one equivalence-class alphabet, producing a single DFA whose
// accept states may carry more than one rule tag (an unresolved
// ambiguity the conflict package reports on). Grounded on the
// Determiner/epsilon_closure/determine pipeline in
// original_source/rlex/src/automata/builder/determine.rs, generalized
// from that file's single-NFA, untagged DFA to track, per accept state,
// every rule name whose fragment accepted there — mirroring codegen.rs's
// `tags.insert(m.accepted, r.tag)` bookkeeping that the retrieved
// determine.rs snapshot predates.
package dfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xrfeng/lexspec/nfa"
	"github.com/xrfeng/lexspec/ruleset"
)

// StateID names one DFA state.
type StateID int

// deadState marks "no transition defined" in a Transitions row.
const deadState int32 = -1

// DFA is a deterministic automaton over NumClasses equivalence-class
// symbols. Transitions[s][c] is the destination state, or deadState if
// consuming class c from state s has no defined transition. Tags[s]
// lists every rule name accepted at s, sorted; a state with more than
// one name is an unresolved lexical conflict.
type DFA struct {
	NumClasses  int
	NumStates   int
	Start       StateID
	Transitions [][]int32
	Tags        map[StateID][]string
}

// Step returns the destination of consuming class c from s, and whether
// that transition is defined.
func (d DFA) Step(s StateID, class uint32) (StateID, bool) {
	t := d.Transitions[s][class]
	if t == deadState {
		return 0, false
	}
	return StateID(t), true
}

// Compile builds one Thompson NFA per rule, tags each rule's NFA accept
// state with its name, alternates every rule together under a shared
// start state, and determinizes the result. Every rule's regex must
// already be classified against an alphabet of numClasses equivalence
// classes (ruleset.Build guarantees this for every rule it returns).
func Compile(numClasses int, rules []ruleset.Rule) DFA {
	b := nfa.NewBuilder()
	tagsOf := map[nfa.StateID]string{}
	frags := make([]nfa.Fragment, 0, len(rules))
	for _, r := range rules {
		f := nfa.Build(b, r.Regex)
		tagsOf[f.Accept] = r.Name
		frags = append(frags, f)
	}
	start := b.NewState()
	for _, f := range frags {
		b.AddEpsilon(start, f.Start)
	}
	return determinize(b, start, numClasses, tagsOf)
}

func determinize(b *nfa.Builder, start nfa.StateID, numClasses int, tagsOf map[nfa.StateID]string) DFA {
	startSet := epsilonClosure(b, []nfa.StateID{start})
	idOf := map[string]StateID{stateSetKey(startSet): 0}
	sets := [][]nfa.StateID{startSet}
	transitions := [][]int32{make([]int32, numClasses)}
	queue := []StateID{0}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curSet := sets[cur]
		row := transitions[cur]

		for c := 0; c < numClasses; c++ {
			moved := moveOn(b, curSet, uint32(c))
			if len(moved) == 0 {
				row[c] = deadState
				continue
			}
			closure := epsilonClosure(b, moved)
			key := stateSetKey(closure)
			id, ok := idOf[key]
			if !ok {
				id = StateID(len(sets))
				idOf[key] = id
				sets = append(sets, closure)
				transitions = append(transitions, make([]int32, numClasses))
				queue = append(queue, id)
			}
			row[c] = int32(id)
		}
	}

	tags := map[StateID][]string{}
	for id, set := range sets {
		seen := map[string]bool{}
		var names []string
		for _, nfaState := range set {
			if name, ok := tagsOf[nfaState]; ok && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			sort.Strings(names)
			tags[StateID(id)] = names
		}
	}

	return DFA{
		NumClasses:  numClasses,
		NumStates:   len(sets),
		Start:       0,
		Transitions: transitions,
		Tags:        tags,
	}
}

func epsilonClosure(b *nfa.Builder, seeds []nfa.StateID) []nfa.StateID {
	seen := map[nfa.StateID]bool{}
	stack := append([]nfa.StateID{}, seeds...)
	for _, s := range seeds {
		seen[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range b.EdgesFrom(s) {
			if e.Kind == nfa.EdgeEpsilon && !seen[e.To] {
				seen[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	return sortedStates(seen)
}

func moveOn(b *nfa.Builder, states []nfa.StateID, class uint32) []nfa.StateID {
	seen := map[nfa.StateID]bool{}
	for _, s := range states {
		for _, e := range b.EdgesFrom(s) {
			if e.Kind == nfa.EdgeSymbol && e.Symbol == class {
				seen[e.To] = true
			}
		}
	}
	return sortedStates(seen)
}

func sortedStates(seen map[nfa.StateID]bool) []nfa.StateID {
	out := make([]nfa.StateID, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func stateSetKey(states []nfa.StateID) string {
	var b strings.Builder
	for _, s := range states {
		fmt.Fprintf(&b, "%d,", s)
	}
	return b.String()
}
