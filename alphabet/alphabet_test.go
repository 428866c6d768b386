package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrfeng/lexspec/charclass"
	"github.com/xrfeng/lexspec/regexast"
)

func digitUpperLower() regexast.Regex[charclass.Class] {
	digit := charclass.FromSingleRange('0', '9'+1)
	lower := charclass.FromSingleRange('a', 'f'+1)
	upper := charclass.FromSingleRange('A', 'F'+1)
	return regexast.Alt([]regexast.Regex[charclass.Class]{
		regexast.Atom(digit),
		regexast.Atom(lower),
		regexast.Atom(upper),
	})
}

// hex-digit split points/classification, the worked example of a shared
// alphabet across three disjoint, non-adjacent ranges.
func TestCollectSplitPointsHexDigits(t *testing.T) {
	r := digitUpperLower()
	p := CollectSplitPoints(r)
	require.Equal(t, []rune{0, '0', '9' + 1, 'A', 'F' + 1, 'a', 'f' + 1, charclass.MaxCodePoint}, []rune(p))
}

func TestClassifyRegexHexDigits(t *testing.T) {
	r := digitUpperLower()
	p, classified := Partition(r)
	require.Len(t, classified, 1)

	classOf := func(ch rune) uint32 {
		for c := 0; c < p.NumClasses(); c++ {
			rg := p.RangeOf(uint32(c))
			if ch >= rg.Lo && ch < rg.Hi {
				return uint32(c)
			}
		}
		t.Fatalf("no class contains %q", ch)
		return 0
	}

	digitClass := classOf('5')
	lowerClass := classOf('c')
	upperClass := classOf('C')

	got := classified[0]
	require.Equal(t, regexast.KindAlt, got.Kind())
	children := got.Children()
	require.Len(t, children, 3)
	assert.Equal(t, Classes{digitClass}, children[0].AtomValue())
	assert.Equal(t, Classes{lowerClass}, children[1].AtomValue())
	assert.Equal(t, Classes{upperClass}, children[2].AtomValue())
}

func TestPartitionSharesTableAcrossRegexes(t *testing.T) {
	digit := regexast.Atom(charclass.FromSingleRange('0', '9'+1))
	lower := regexast.Atom(charclass.FromSingleRange('a', 'z'+1))
	p, classified := Partition(digit, lower)
	require.Len(t, classified, 2)
	// both regexes are classified against the same table: the digit
	// regex's class index must never appear in the lower regex's set and
	// vice versa, since the ranges are disjoint.
	assert.NotEqual(t, classified[0].AtomValue(), classified[1].AtomValue())
	// 0, '0', '9'+1, 'a', 'z'+1, MaxCodePoint: 6 split points, 5 classes.
	assert.Equal(t, 5, p.NumClasses())
}
