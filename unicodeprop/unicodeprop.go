// Package unicodeprop is the thin collaborator the core calls to resolve
// `$PropertyName` regex atoms into character classes. The core never
// embeds Unicode Character Database data itself — spec.md §1 explicitly
// treats "Unicode property/category tables" as an external collaborator,
// "assumed available as sorted range lists keyed by canonical property
// name." This package defines that contract and ships one small built-in
// table, enough to exercise property-class atoms end to end; production
// callers supply their own Tables backed by the full UCD.
package unicodeprop

import (
	"sort"
	"strings"
)

// RawRange is an inclusive [Lo, Hi] code point range, the shape sorted
// Unicode data tables are conventionally published in (see
// golang.org/x/text/unicode/rangetable and the Go standard library's own
// unicode tables for the same convention).
type RawRange struct {
	Lo, Hi uint32
}

// Tables is the collaborator interface named in spec.md §6: two sorted
// lookups, by canonical property name and by canonical General_Category
// value.
type Tables interface {
	// PropertyNameCanonical returns the canonical spelling of a
	// normalized binary-property name, or ("", false) if unknown.
	PropertyNameCanonical(normalized string) (canonical string, ok bool)
	// ForProperty returns the sorted ranges for a canonical binary
	// property name.
	ForProperty(canonical string) []RawRange
	// GeneralCategoryValueCanonical returns the canonical spelling of a
	// normalized General_Category value, or ("", false) if unknown.
	GeneralCategoryValueCanonical(normalized string) (canonical string, ok bool)
	// ForGeneralCategoryValue returns the sorted ranges for a canonical
	// General_Category value.
	ForGeneralCategoryValue(canonical string) []RawRange
}

// Normalize applies UAX44-LM3 loose matching: strip whitespace,
// underscores and hyphens, and lowercase. The spec notes an exception for
// preserving the ASCII case of certain contextual suffixes (UAX §5.9.2,
// e.g. trailing "_Letter" fragments in some script names); none of the
// properties in the Builtin table require that exception, so it is not
// implemented here — a Tables implementation backed by the full UCD would
// need to special-case it before calling into loose matching.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case ' ', '\t', '\n', '\r', '_', '-':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}

type builtinTables struct{}

// Builtin returns a small fixed Tables: the White_Space binary property
// and four General_Category values (L, Lu, Ll, Nd), sourced from the
// Unicode Character Database. Sufficient for the spec's own worked
// examples ($WhiteSpace) and basic identifier/digit grammars.
func Builtin() Tables { return builtinTables{} }

var propertyNames = map[string]string{
	"whitespace": "White_Space",
}

// whiteSpaceRanges is the White_Space=Yes property from UCD PropList.txt.
var whiteSpaceRanges = []RawRange{
	{0x0009, 0x000D},
	{0x0020, 0x0020},
	{0x0085, 0x0085},
	{0x00A0, 0x00A0},
	{0x1680, 0x1680},
	{0x2000, 0x200A},
	{0x2028, 0x2029},
	{0x202F, 0x202F},
	{0x205F, 0x205F},
	{0x3000, 0x3000},
}

var generalCategoryNames = map[string]string{
	"l":  "L",
	"lu": "Lu",
	"ll": "Ll",
	"nd": "Nd",
}

var generalCategoryRanges = map[string][]RawRange{
	"Lu": {{0x0041, 0x005A}, {0x00C0, 0x00D6}, {0x00D8, 0x00DE}},
	"Ll": {{0x0061, 0x007A}, {0x00DF, 0x00F6}, {0x00F8, 0x00FF}},
	"Nd": {{0x0030, 0x0039}, {0x0660, 0x0669}, {0x06F0, 0x06F9}},
}

func init() {
	l := make([]RawRange, 0, len(generalCategoryRanges["Lu"])+len(generalCategoryRanges["Ll"]))
	l = append(l, generalCategoryRanges["Lu"]...)
	l = append(l, generalCategoryRanges["Ll"]...)
	sort.Slice(l, func(i, j int) bool { return l[i].Lo < l[j].Lo })
	generalCategoryRanges["L"] = l
}

func (builtinTables) PropertyNameCanonical(normalized string) (string, bool) {
	c, ok := propertyNames[normalized]
	return c, ok
}

func (builtinTables) ForProperty(canonical string) []RawRange {
	if canonical == "White_Space" {
		return whiteSpaceRanges
	}
	return nil
}

func (builtinTables) GeneralCategoryValueCanonical(normalized string) (string, bool) {
	c, ok := generalCategoryNames[normalized]
	return c, ok
}

func (builtinTables) ForGeneralCategoryValue(canonical string) []RawRange {
	return generalCategoryRanges[canonical]
}
