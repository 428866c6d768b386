// Package rawsyntax defines the shape a surface-syntax parser hands to
// the core compiler (spec.md §6, "Parser → core"). The spec treats the
// parser itself as an external collaborator; this package only pins down
// the data it produces, with `yaml` struct tags so cmd/lexgen can decode
// a rule-set definition straight off disk without anyone having to write
// a bespoke text grammar for the grammar-description language — which
// would just reintroduce the excluded surface-syntax parser one level
// down. Grounded on the Rule/Concat/Repeat/Atom/CharClass/CharRange/
// ConditionTrans/StartCondition/Group/WithCondition/LexemeDef struct
// family in original_source/rlex/src/syntax.rs, translated from a
// syn/proc-macro parse tree into plain decodable Go structs.
package rawsyntax

// AtomKind tags which field of Atom is populated.
type AtomKind string

const (
	AtomChar     AtomKind = "char"
	AtomString   AtomKind = "string"
	AtomRange    AtomKind = "range"
	AtomProperty AtomKind = "property"
	AtomGroup    AtomKind = "group"
)

// Atom mirrors `Atom` in syntax.rs: char literal, string literal, char
// range, property class, or a parenthesized sub-expression.
type Atom struct {
	Kind AtomKind `yaml:"kind"`

	Char string `yaml:"char,omitempty"` // single rune, AtomChar
	Str  string `yaml:"str,omitempty"`  // AtomString, lowered to a Concat of literal atoms

	RangeLo string `yaml:"range_lo,omitempty"` // AtomRange, inclusive
	RangeHi string `yaml:"range_hi,omitempty"` // AtomRange, inclusive

	Property string `yaml:"property,omitempty"` // AtomProperty, e.g. "WhiteSpace"

	Group *Expr `yaml:"group,omitempty"` // AtomGroup
}

// Quantifier tags a postfix repetition operator, or its absence.
type Quantifier string

const (
	QuantNone     Quantifier = ""
	QuantStar     Quantifier = "*"
	QuantPlus     Quantifier = "+"
	QuantQuestion Quantifier = "?"
)

// Term is one quantified atom: `Repeat` in syntax.rs.
type Term struct {
	Atom       Atom       `yaml:"atom"`
	Quantifier Quantifier `yaml:"quantifier,omitempty"`
}

// Concat is a sequence of terms; the empty sequence matches the empty
// string.
type Concat struct {
	Terms []Term `yaml:"terms"`
}

// Expr is an alternation of concatenations: `Alt` in syntax.rs. Top-level
// type for a rule's right-hand side.
type Expr struct {
	Variants []Concat `yaml:"variants"`
}

// ConditionKind tags which field of ConditionSpec is populated.
type ConditionKind string

const (
	ConditionSimple     ConditionKind = "simple"
	ConditionTransition ConditionKind = "transition"
)

// ConditionSpec mirrors `ConditionTrans` in syntax.rs: either a rule is
// simply active in a start condition, or it is active in one condition
// and switches the scanner to a different one on match
// (`<begin -> end>`). Restored from original_source per SPEC_FULL.md §9
// — spec.md's LexemeRule.target already names this field, this is its
// concrete surface form.
type ConditionSpec struct {
	Kind   ConditionKind `yaml:"kind"`
	Name   string        `yaml:"name"`             // active-in condition (both kinds)
	Target string        `yaml:"target,omitempty"` // ConditionTransition only
}

// Rule is one named lexeme production: `Rule` in syntax.rs, minus
// visibility (no analog needed once there is no code-generation target).
type Rule struct {
	Name  string `yaml:"name"`
	Regex Expr   `yaml:"regex"`
}

// Group is a set of rules sharing the same start-condition list.
type Group struct {
	StartConditions []ConditionSpec `yaml:"start_conditions,omitempty"`
	Rules           []Rule          `yaml:"rules"`
}

// RuleSet is the whole input to the compiler: `LexemeDef` in syntax.rs.
type RuleSet struct {
	Name   string  `yaml:"name"`
	Groups []Group `yaml:"groups"`
}
