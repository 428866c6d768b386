// Package compiler wires the whole pipeline together: a raw rule set
// becomes one minimized, conflict-checked DFA per start condition,
// sharing a single equivalence-class alphabet throughout. This is the
// single entry point described as "C10" in the component breakdown this
// module was designed against; every other package under this module is
// a stage it drives. Grounded on nex.Builder.Process in
// _examples/liran-funaro-nex/nex/nex.go for the overall shape of a
// driver that walks several independently-buildable pieces and
// accumulates diagnostics rather than aborting on the first problem.
package compiler

import (
	"context"

	"github.com/xrfeng/lexspec/alphabet"
	"github.com/xrfeng/lexspec/conflict"
	"github.com/xrfeng/lexspec/dfa"
	"github.com/xrfeng/lexspec/diag"
	"github.com/xrfeng/lexspec/rawsyntax"
	"github.com/xrfeng/lexspec/ruleset"
	"github.com/xrfeng/lexspec/unicodeprop"
)

// Result is the compiled form of a whole rule set: one minimized DFA per
// start condition, any unresolved conflicts found in each, and the
// shared alphabet every DFA's transitions are indexed by.
type Result struct {
	SplitPoints alphabet.SplitPoints
	Automata    map[ruleset.StartCondition]dfa.DFA
	Conflicts   map[ruleset.StartCondition][]conflict.Conflict
	Rules       map[ruleset.StartCondition][]ruleset.Rule
}

// Compile lowers, aggregates, determinizes, minimizes and conflict-checks
// rs. Lowering and property-resolution failures accumulate onto d rather
// than stopping the pipeline; a caller should check d.HasErrors() before
// trusting the result. ctx is checked once per start condition, so a
// caller compiling a rule set with many conditions can cancel between
// groups without needing the automaton construction itself to be
// interruptible.
func Compile(ctx context.Context, tables unicodeprop.Tables, d *diag.Bag, rs rawsyntax.RuleSet) (Result, error) {
	compiled := ruleset.Build(tables, d, rs)
	numClasses := compiled.SplitPoints.NumClasses()

	result := Result{
		SplitPoints: compiled.SplitPoints,
		Automata:    map[ruleset.StartCondition]dfa.DFA{},
		Conflicts:   map[ruleset.StartCondition][]conflict.Conflict{},
		Rules:       compiled.ByCondition,
	}

	for _, sc := range compiled.Conditions() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		automaton := dfa.Minimize(dfa.Compile(numClasses, compiled.ByCondition[sc]))
		result.Automata[sc] = automaton
		result.Conflicts[sc] = conflict.Report(d, compiled.SplitPoints, automaton)
	}

	return result, nil
}
