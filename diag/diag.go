// Package diag provides the structured diagnostic accumulation used
// across every compilation phase. Per spec.md §6/§7, the core never
// prints anything itself — diagnostics are collected into a Bag and
// handed back to the caller (cmd/lexgen) to render. Internal invariant
// violations (a bug in this module, not a malformed input) still use
// panics, never diagnostics; see each package's own doc comments for
// which failures belong where. Grounded on the sentinel-error style of
// _examples/liran-funaro-nex/nex/nex.go (package-level Err* vars for
// programmer-facing failures), generalized to an accumulating collection
// because spec.md §7 requires reporting more than one problem per run.
package diag

import "fmt"

// Severity distinguishes a hard failure from an advisory note.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported problem. Pos is optional (the zero Position
// means "no specific location").
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      Position
}

// Position is a source location a caller-supplied parser can attach;
// the core itself never constructs one with a non-zero value, since it
// operates on rawsyntax values that have already lost their source
// spans by the time they reach this module.
type Position struct {
	Line, Column int
}

func (d Diagnostic) String() string {
	if d.Pos == (Position{}) {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", d.Severity, d.Pos.Line, d.Pos.Column, d.Message)
}

// Bag accumulates diagnostics across a compilation phase. The zero value
// is ready to use.
type Bag struct {
	diags []Diagnostic
}

// Errorf records an error-severity diagnostic.
func (b *Bag) Errorf(format string, args ...any) {
	b.diags = append(b.diags, Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a warning-severity diagnostic.
func (b *Bag) Warnf(format string, args ...any) {
	b.diags = append(b.diags, Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

// Add appends an already-constructed diagnostic, e.g. one carrying a
// Position from an external parser.
func (b *Bag) Add(d Diagnostic) {
	b.diags = append(b.diags, d)
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// All returns every diagnostic recorded so far, in report order. The
// caller must not mutate the result.
func (b *Bag) All() []Diagnostic { return b.diags }

// Merge appends every diagnostic from other onto b, preserving order.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.diags = append(b.diags, other.diags...)
}
