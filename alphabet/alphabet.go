// Package alphabet computes the minimal set of split points that turns an
// arbitrary collection of Unicode character-class atoms into equivalence
// classes, and rewrites a regex over character classes into a regex over
// equivalence-class index sets. Grounded on
// original_source/rlex/src/ast.rs's `collect_split_points` /
// `classify_chars_with` / `classify_chars`, and exercised against the
// exact worked example in spec.md §8 scenario 1.
package alphabet

import (
	"sort"

	"github.com/xrfeng/lexspec/charclass"
	"github.com/xrfeng/lexspec/regexast"
)

// Classes is a classified atom: a sorted, distinct list of equivalence
// class indices into a SplitPoints table.
type Classes []uint32

// SplitPoints is `P` from spec.md §3: a strictly increasing sequence with
// P[0] = 0 and P[len(P)-1] = 0x110000, defining len(P)-1 equivalence
// classes, class i covering [P[i], P[i+1]).
type SplitPoints []rune

// NumClasses returns the number of equivalence classes the table defines.
func (p SplitPoints) NumClasses() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// RangeOf returns the half-open code-point range equivalence class i
// covers.
func (p SplitPoints) RangeOf(class uint32) charclass.Range {
	return charclass.Range{Lo: p[class], Hi: p[class+1]}
}

// indexOf returns the position of x within p; x is always present because
// CollectSplitPoints inserted every endpoint used by every atom, plus the
// universe bounds.
func (p SplitPoints) indexOf(x rune) int {
	i := sort.Search(len(p), func(i int) bool { return p[i] >= x })
	if i == len(p) || p[i] != x {
		panic("alphabet: split point missing an endpoint — invariant violation")
	}
	return i
}

// CollectSplitPoints gathers the universe bounds and every range endpoint
// used by any atom of r into a sorted, deduplicated SplitPoints table.
func CollectSplitPoints(rs ...regexast.Regex[charclass.Class]) SplitPoints {
	set := map[rune]struct{}{0: {}, charclass.MaxCodePoint: {}}
	for _, r := range rs {
		r.ForEach(func(cls charclass.Class) {
			for _, pt := range cls.EndPoints() {
				set[pt] = struct{}{}
			}
		})
	}
	pts := make([]rune, 0, len(set))
	for pt := range set {
		pts = append(pts, pt)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i] < pts[j] })
	return SplitPoints(pts)
}

// Classify rewrites a single character class into the set of equivalence
// class indices whose union equals it, given a split-point table that
// already contains every endpoint the class uses.
func Classify(p SplitPoints, cls charclass.Class) Classes {
	seen := map[uint32]struct{}{}
	for _, r := range cls.IterRanges() {
		lo := p.indexOf(r.Lo)
		hi := p.indexOf(r.Hi)
		for k := lo; k < hi; k++ {
			seen[uint32(k)] = struct{}{}
		}
	}
	out := make(Classes, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ClassifyRegex rewrites every atom of r using p, producing the
// "classified regex" of spec.md §3.
func ClassifyRegex(p SplitPoints, r regexast.Regex[charclass.Class]) regexast.Regex[Classes] {
	return regexast.Map(r, func(cls charclass.Class) Classes { return Classify(p, cls) })
}

// Partition computes split points across every given regex and classifies
// each of them against the shared table — the single entry point C3
// exposes, mirroring `classify_chars` but generalized to many regexes at
// once (spec.md §4.4 requires one shared table across a whole rule group).
func Partition(rs ...regexast.Regex[charclass.Class]) (SplitPoints, []regexast.Regex[Classes]) {
	p := CollectSplitPoints(rs...)
	out := make([]regexast.Regex[Classes], len(rs))
	for i, r := range rs {
		out[i] = ClassifyRegex(p, r)
	}
	return p, out
}
