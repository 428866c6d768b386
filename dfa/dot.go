package dfa

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xrfeng/lexspec/alphabet"
)

// WriteDot renders d as a GraphViz digraph named id, labeling each edge
// with a printable representative rune of the equivalence class it
// consumes (or U+XXXX for a non-printable one) and filling accept states
// green, the same visual convention as
// _examples/liran-funaro-nex/nex/graph.go's writeDotGraph.
func WriteDot(w io.Writer, id string, d DFA, p alphabet.SplitPoints) {
	fmt.Fprintf(w, "digraph %s {\n", id)
	for s := 0; s < d.NumStates; s++ {
		if tags, ok := d.Tags[StateID(s)]; ok {
			fmt.Fprintf(w, "  %d[style=filled,color=green,label=%q];\n", s, fmt.Sprintf("%d: %s", s, strings.Join(tags, ",")))
		}
	}
	for s := 0; s < d.NumStates; s++ {
		row := d.Transitions[s]
		for c := 0; c < d.NumClasses; c++ {
			t := row[c]
			if t == deadState {
				continue
			}
			fmt.Fprintf(w, "  %d -> %d[label=%q];\n", s, t, classLabel(p, uint32(c)))
		}
	}
	fmt.Fprintln(w, "}")
}

func classLabel(p alphabet.SplitPoints, class uint32) string {
	r := p.RangeOf(class)
	if strconv.IsPrint(r.Lo) {
		return string(r.Lo)
	}
	return fmt.Sprintf("U+%X", r.Lo)
}
