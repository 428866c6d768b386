package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeString(t *testing.T) {
	assert.Equal(t, "a", Range{'a', 'b'}.String())
	assert.Equal(t, "[a-z]", Range{'a', 'z' + 1}.String())
}

func TestClassStringBracketing(t *testing.T) {
	// a lone singleton range still needs brackets: "[a]", not bare "a".
	assert.Equal(t, "[a]", FromSingleRange('a', 'a'+1).String())
	// a lone wide range already self-brackets.
	assert.Equal(t, "[a-z]", FromSingleRange('a', 'z'+1).String())
	// several ranges get one more wrapping pair of brackets.
	multi := FromRanges([]Range{{'0', '7'}, {'A', 'Z' + 1}, {'a', 'z' + 1}})
	assert.Equal(t, "[[0-6][A-Z][a-z]]", multi.String())
}

func TestFromRangesMergesOverlapAndAdjacency(t *testing.T) {
	c := FromRanges([]Range{{'a', 'd'}, {'c', 'f'}, {'f', 'h'}})
	require.Equal(t, []Range{{'a', 'h'}}, c.IterRanges())
}

func TestContains(t *testing.T) {
	c := FromRanges([]Range{{'0', '9' + 1}, {'a', 'f' + 1}})
	assert.True(t, c.Contains('5'))
	assert.True(t, c.Contains('a'))
	assert.False(t, c.Contains('g'))
	assert.False(t, c.Contains('/'))
}

func TestEndPoints(t *testing.T) {
	c := FromRanges([]Range{{'0', '9' + 1}, {'a', 'f' + 1}})
	assert.Equal(t, []rune{'0', '9' + 1, 'a', 'f' + 1}, c.EndPoints())
}

func TestUnion(t *testing.T) {
	a := FromSingleRange('a', 'f'+1)
	b := FromSingleRange('c', 'z'+1)
	u := Union(a, b)
	require.Equal(t, []Range{{'a', 'z' + 1}}, u.IterRanges())
}

func TestEmpty(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.True(t, FromSingleRange('z', 'a').IsEmpty())
}
