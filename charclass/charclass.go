// Package charclass represents sets of Unicode code points as sorted,
// disjoint, non-adjacent half-open ranges.
package charclass

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// MaxCodePoint is one past the highest Unicode scalar value, 0x10FFFF.
const MaxCodePoint = 0x110000

// Range is a half-open interval [Lo, Hi) over the 21-bit Unicode space.
type Range struct {
	Lo, Hi rune
}

func (r Range) String() string {
	if r.Lo+1 == r.Hi {
		return escapeRune(r.Lo)
	}
	return "[" + escapeRune(r.Lo) + "-" + escapeRune(r.Hi-1) + "]"
}

// escapeRune renders one code point: tab, newline and carriage return as
// `\t`, `\n`, `\r`, other printable code points as themselves, and every
// other code point as `\u{hex}`.
func escapeRune(c rune) string {
	switch {
	case c == '\t':
		return `\t`
	case c == '\n':
		return `\n`
	case c == '\r':
		return `\r`
	case unicode.IsPrint(c):
		return string(c)
	}
	return fmt.Sprintf(`\u{%x}`, c)
}

// Class is an ordered, disjoint, non-adjacent sequence of ranges.
type Class struct {
	ranges []Range
}

// Empty returns the empty character class.
func Empty() Class { return Class{} }

// FromSingleRange builds a class from one range, [lo, hi).
func FromSingleRange(lo, hi rune) Class {
	if lo >= hi {
		return Empty()
	}
	return Class{ranges: []Range{{lo, hi}}}
}

// FromSorted takes rs as already sorted, disjoint and non-adjacent; it
// does not sort or merge. It checks that order and panics if rs breaks
// it, as an invariant violation rather than a diagnostic.
func FromSorted(rs []Range) Class {
	for i := 1; i < len(rs); i++ {
		if rs[i-1].Hi >= rs[i].Lo {
			panic("charclass: FromSorted given unsorted, overlapping or adjacent ranges")
		}
	}
	out := make([]Range, len(rs))
	copy(out, rs)
	return Class{ranges: out}
}

// FromRanges sorts and merges overlapping or touching ranges.
func FromRanges(rs []Range) Class {
	if len(rs) == 0 {
		return Empty()
	}
	cp := make([]Range, len(rs))
	copy(cp, rs)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].Lo != cp[j].Lo {
			return cp[i].Lo < cp[j].Lo
		}
		return cp[i].Hi < cp[j].Hi
	})
	out := cp[:1]
	for _, r := range cp[1:] {
		last := &out[len(out)-1]
		if r.Lo <= last.Hi {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	return Class{ranges: out}
}

// Union merges two classes.
func Union(a, b Class) Class {
	merged := make([]Range, 0, len(a.ranges)+len(b.ranges))
	merged = append(merged, a.ranges...)
	merged = append(merged, b.ranges...)
	return FromRanges(merged)
}

// IterRanges returns the ranges in sorted order. The caller must not
// mutate the result.
func (c Class) IterRanges() []Range { return c.ranges }

// IsEmpty reports whether the class matches no code points.
func (c Class) IsEmpty() bool { return len(c.ranges) == 0 }

// Contains reports whether r falls in the class.
func (c Class) Contains(r rune) bool {
	i := sort.Search(len(c.ranges), func(i int) bool { return c.ranges[i].Hi > r })
	return i < len(c.ranges) && c.ranges[i].Lo <= r
}

// LowestCodePoint returns the first code point of the class's lowest
// range; used by the conflict reporter to render a witness string.
func (c Class) LowestCodePoint() (rune, bool) {
	if c.IsEmpty() {
		return 0, false
	}
	return c.ranges[0].Lo, true
}

// EndPoints returns every range boundary (both Lo and Hi of every range),
// the raw material for the alphabet partitioner's split-point collection.
func (c Class) EndPoints() []rune {
	pts := make([]rune, 0, 2*len(c.ranges))
	for _, r := range c.ranges {
		pts = append(pts, r.Lo, r.Hi)
	}
	return pts
}

// String renders the class. A lone non-singleton range already
// self-brackets ("[a-z]") and is printed as-is; every other shape
// (a lone single code point, or several ranges) is wrapped in one more
// set of brackets around the concatenated range renderings — otherwise a
// lone range would double-bracket to "[[a-z]]". Grounded on the Display
// impl for UnicodeCharClass in original_source/rlex/src/ast/char_class.rs.
func (c Class) String() string {
	if len(c.ranges) == 1 && c.ranges[0].Lo+1 != c.ranges[0].Hi {
		return c.ranges[0].String()
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range c.ranges {
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}
