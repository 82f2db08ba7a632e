package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/toypascal/internal/grammar"
)

func TestNewHasEveryNonTerminal(t *testing.T) {
	g := grammar.New()
	want := []string{
		"A", "C", "H", "E", "U", "V", "T", "F", "G",
		"L", "M", "W", "X", "N", "O", "P", "B", "K", "R", "I'", "Z",
	}
	got := g.NonTerminals()
	require.Len(t, got, len(want))
	for _, nt := range want {
		assert.True(t, g.IsNonTerminal(nt), "expected %s to be a non-terminal", nt)
	}
}

func TestRuleActionsNeverExceedSymbols(t *testing.T) {
	g := grammar.New()
	for _, nt := range g.NonTerminals() {
		for i, rule := range g.RulesFor(nt) {
			assert.LessOrEqualf(t, len(rule.Actions), len(rule.Symbols),
				"%s rule %d: %d actions for %d symbols", nt, i, len(rule.Actions), len(rule.Symbols))
		}
	}
}

func TestAssignmentRuleActionAlignment(t *testing.T) {
	g := grammar.New()
	var assign grammar.Rule
	for _, rule := range g.RulesFor("A") {
		if len(rule.Symbols) > 0 && rule.Symbols[0] == "a" && len(rule.Symbols) > 2 && rule.Symbols[2] == ":=" {
			assign = rule
		}
	}
	require.NotEmpty(t, assign.Symbols, "expected to find the assignment rule for A")
	require.Equal(t, []string{"a", "H", ":=", "E", "Z", ";", "A"}, assign.Symbols)
	// The pending-assign flag ":" attaches to Z, the finalizing "=" to the
	// following ";" — both fire only after E has been fully emitted, so the
	// net OPS order (identifier, H's ops, E's ops, ":=") comes out right
	// regardless of exactly which symbol slot each is nailed to.
	require.Equal(t, []string{"a", grammar.NoAction, grammar.NoAction, grammar.NoAction, ":", "="}, assign.Actions)
}

func TestElseBranchHasNoSpecialAction(t *testing.T) {
	g := grammar.New()
	rules := g.RulesFor("C")
	require.Len(t, rules, 2)
	require.Equal(t, []string{"ELSE", "{", "A", "}"}, rules[0].Symbols)
	require.Equal(t, "2", rules[0].Actions[0])
}
