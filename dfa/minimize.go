// Minimization built on the generic partition-refinement structure,
// grounded on DFA::minimize in
// original_source/rlex/src/automata/builder/determine.rs: seed the
// partition by accept-state grouping, then repeatedly compute the
// preimage of a pivot set under each symbol and refine the partition
// against it until a fixed point is reached. Generalized from that
// file's single "accepted vs not" initial split to one part per distinct
// tag set (spec.md §4.8's "one part per distinct accept-tag, plus one
// part for all non-accept states"), since a state here may carry more
// than one rule tag.
package dfa

import (
	"sort"
	"strings"

	"github.com/xrfeng/lexspec/partition"
)

// Minimize collapses d into the coarsest DFA that preserves every
// accept-tag distinction, via Hopcroft-style partition refinement. The
// worklist itself lives inside *partition.Partitions — PopPivot hands
// back exactly the set ids that still need to serve as a splitter, so
// this loop never re-enqueues anything on its own.
func Minimize(d DFA) DFA {
	p := partition.New(d.NumStates)
	seedInitialPartition(p, d)

	rev := buildReverseTransitions(d)

	for a, ok := p.PopPivot(); ok; a, ok = p.PopPivot() {
		for c := 0; c < d.NumClasses; c++ {
			preimage := preimageOf(p, rev[c], a)
			if len(preimage) == 0 {
				continue
			}
			p.RefineWith(preimage)
		}
	}

	p.Simplify()
	return rebuildFromPartition(d, p)
}

// seedInitialPartition splits the trivial single-set partition into one
// set per distinct tag-name combination, plus whatever remains as the
// non-accepting set.
func seedInitialPartition(p *partition.Partitions, d DFA) {
	groups := map[string][]partition.Element{}
	for s := 0; s < d.NumStates; s++ {
		tags := d.Tags[StateID(s)]
		if len(tags) == 0 {
			continue
		}
		key := strings.Join(tags, "\x00")
		groups[key] = append(groups[key], partition.Element(s))
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.RefineWith(groups[k])
	}
}

// buildReverseTransitions indexes, per class, every state's predecessors.
func buildReverseTransitions(d DFA) []map[StateID][]StateID {
	perClass := make([]map[StateID][]StateID, d.NumClasses)
	for c := range perClass {
		perClass[c] = map[StateID][]StateID{}
	}
	for s := 0; s < d.NumStates; s++ {
		row := d.Transitions[s]
		for c := 0; c < d.NumClasses; c++ {
			t := row[c]
			if t == deadState {
				continue
			}
			dest := StateID(t)
			perClass[c][dest] = append(perClass[c][dest], StateID(s))
		}
	}
	return perClass
}

func preimageOf(p *partition.Partitions, predOf map[StateID][]StateID, pivot partition.SetIdx) []partition.Element {
	var preimage []partition.Element
	for _, e := range p.SetIter(pivot) {
		for _, pred := range predOf[StateID(e)] {
			preimage = append(preimage, partition.Element(pred))
		}
	}
	return preimage
}

func rebuildFromPartition(d DFA, p *partition.Partitions) DFA {
	startSet := p.ParentSetOf(partition.Element(d.Start))
	p.PromoteToHead(startSet)

	numStates := p.SetCount()
	transitions := make([][]int32, numStates)
	tags := map[StateID][]string{}

	for s := 0; s < numStates; s++ {
		members := p.SetIter(partition.SetIdx(s))
		rep := members[0]

		row := make([]int32, d.NumClasses)
		for c := 0; c < d.NumClasses; c++ {
			t := d.Transitions[rep][c]
			if t == deadState {
				row[c] = deadState
				continue
			}
			row[c] = int32(p.ParentSetOf(partition.Element(t)))
		}
		transitions[s] = row

		seen := map[string]bool{}
		var names []string
		for _, m := range members {
			for _, name := range d.Tags[StateID(m)] {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
		if len(names) > 0 {
			sort.Strings(names)
			tags[StateID(s)] = names
		}
	}

	return DFA{
		NumClasses:  d.NumClasses,
		NumStates:   numStates,
		Start:       0,
		Transitions: transitions,
		Tags:        tags,
	}
}
