package rawsyntax

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRuleSetYAMLRoundTrip(t *testing.T) {
	rs := RuleSet{
		Name: "identifier",
		Groups: []Group{
			{
				Rules: []Rule{
					{
						Name: "Ident",
						Regex: Expr{Variants: []Concat{{
							Terms: []Term{
								{Atom: Atom{Kind: AtomRange, RangeLo: "a", RangeHi: "z"}},
								{Atom: Atom{Kind: AtomRange, RangeLo: "a", RangeHi: "z"}, Quantifier: QuantStar},
							},
						}}},
					},
				},
			},
			{
				StartConditions: []ConditionSpec{
					{Kind: ConditionTransition, Name: "start", Target: "comment"},
				},
				Rules: []Rule{
					{Name: "CommentStart", Regex: Expr{Variants: []Concat{{
						Terms: []Term{{Atom: Atom{Kind: AtomString, Str: "/*"}}},
					}}}},
				},
			},
		},
	}

	out, err := yaml.Marshal(rs)
	require.NoError(t, err)

	var decoded RuleSet
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Equal(t, rs, decoded)
}
