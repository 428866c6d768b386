// Package ruleset aggregates a rawsyntax.RuleSet's rules by start
// condition and classifies every rule's regex against one split-point
// table shared across the whole set. Grounded on the TryFrom<LexemeDef>
// construction of RootDef in original_source/rlex/src/ast.rs, which
// defaults an absent start-condition list to the single default
// condition, fans a rule out into every condition it's active in, and
// computes split_points once across every rule before classifying any
// of them — never per rule, per spec.md §4.4.
package ruleset

import (
	"sort"

	"github.com/xrfeng/lexspec/alphabet"
	"github.com/xrfeng/lexspec/charclass"
	"github.com/xrfeng/lexspec/diag"
	"github.com/xrfeng/lexspec/lower"
	"github.com/xrfeng/lexspec/rawsyntax"
	"github.com/xrfeng/lexspec/regexast"
	"github.com/xrfeng/lexspec/unicodeprop"
)

// StartCondition names a lexer mode. A rule's active condition is never
// the zero value; DefaultStartCondition is substituted for it everywhere
// a rule omits its start-condition list. As a Rule.Target, the zero
// value means no transition.
type StartCondition string

// DefaultStartCondition is the sentinel condition every rule belongs to
// when no start-condition list is given, matching SCIdent::DEFAULT's
// literal "start" in ast.rs.
const DefaultStartCondition StartCondition = "start"

// Rule is one lexeme production active within a single start condition,
// already classified against the rule set's shared alphabet.
type Rule struct {
	Name   string
	Regex  regexast.Regex[alphabet.Classes]
	Target StartCondition // zero value means no condition transition on match
}

// Compiled is the aggregator's output: the shared split-point table plus
// every rule, grouped by the condition it is active in.
type Compiled struct {
	SplitPoints alphabet.SplitPoints
	ByCondition map[StartCondition][]Rule
}

// Conditions returns every start condition referenced, sorted, with the
// default condition first when present — used for deterministic
// iteration by the compiler driver.
func (c Compiled) Conditions() []StartCondition {
	out := make([]StartCondition, 0, len(c.ByCondition))
	for sc := range c.ByCondition {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i] == DefaultStartCondition {
			return true
		}
		if out[j] == DefaultStartCondition {
			return false
		}
		return out[i] < out[j]
	})
	return out
}

type pendingRule struct {
	name      string
	raw       regexast.Regex[charclass.Class]
	condition StartCondition
	target    StartCondition
}

// Build lowers and aggregates every rule in rs. Diagnostics from property
// resolution failures accumulate onto d; Build always returns a (possibly
// partial) Compiled value so a caller can keep going far enough to report
// every problem in one pass.
func Build(tables unicodeprop.Tables, d *diag.Bag, rs rawsyntax.RuleSet) Compiled {
	var all []pendingRule
	for _, g := range rs.Groups {
		conditions := conditionsOf(g)
		for _, rule := range g.Rules {
			raw := lower.Expr(tables, d, rule.Regex)
			for _, ct := range conditions {
				all = append(all, pendingRule{
					name:      rule.Name,
					raw:       raw,
					condition: ct.condition,
					target:    ct.target,
				})
			}
		}
	}

	rawRegexes := make([]regexast.Regex[charclass.Class], len(all))
	for i, p := range all {
		rawRegexes[i] = p.raw
	}
	splitPoints, classified := alphabet.Partition(rawRegexes...)

	byCondition := map[StartCondition][]Rule{}
	for i, p := range all {
		byCondition[p.condition] = append(byCondition[p.condition], Rule{
			Name:   p.name,
			Regex:  classified[i],
			Target: p.target,
		})
	}

	return Compiled{SplitPoints: splitPoints, ByCondition: byCondition}
}

type conditionTarget struct {
	condition StartCondition
	target    StartCondition
}

// conditionsOf expands a group's start-condition list, defaulting an
// absent list to [(DefaultStartCondition, no target)].
func conditionsOf(g rawsyntax.Group) []conditionTarget {
	if len(g.StartConditions) == 0 {
		return []conditionTarget{{condition: DefaultStartCondition}}
	}
	out := make([]conditionTarget, 0, len(g.StartConditions))
	for _, cs := range g.StartConditions {
		switch cs.Kind {
		case rawsyntax.ConditionSimple:
			out = append(out, conditionTarget{condition: normalizeCondition(cs.Name)})
		case rawsyntax.ConditionTransition:
			out = append(out, conditionTarget{
				condition: normalizeCondition(cs.Name),
				target:    normalizeCondition(cs.Target),
			})
		}
	}
	return out
}

func normalizeCondition(name string) StartCondition {
	if name == "" {
		return DefaultStartCondition
	}
	return StartCondition(name)
}
