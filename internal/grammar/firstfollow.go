package grammar

import (
	"sort"

	"github.com/jcorbin/toypascal/internal/token"
)

// Set is a read-only string set: a FIRST or FOLLOW set, or the terminal
// alphabet.
type Set map[string]bool

// Contains reports whether sym is a member of the set.
func (s Set) Contains(sym string) bool { return s[sym] }

// Sorted returns the set's members in sorted order, for deterministic
// iteration in diagnostics and tests.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Tables holds the FIRST and FOLLOW sets derived from a Grammar, along with
// its terminal alphabet. FOLLOW sets and the terminals are computed once at
// construction and never change afterward. FIRST sets are memoized on first
// use; construction already memoizes every one that SelectRule consults, so
// SelectRule, Follow and IsTerminal only read, but First on a symbol not yet
// memoized writes to the shared cache.
type Tables struct {
	g           *Grammar
	firstCache  map[string]Set
	followCache map[string]Set
	terminals   map[string]bool
}

// NewTables computes the FIRST/FOLLOW/terminal tables for g.
func NewTables(g *Grammar) *Tables {
	t := &Tables{
		g:           g,
		firstCache:  make(map[string]Set),
		followCache: make(map[string]Set),
		terminals:   make(map[string]bool),
	}
	t.collectTerminals()
	t.initializeFollow()
	return t
}

func (t *Tables) collectTerminals() {
	for _, rules := range t.g.AllRules() {
		for _, rule := range rules {
			for _, sym := range rule.Symbols {
				if !t.g.IsNonTerminal(sym) && sym != token.Epsilon {
					t.terminals[sym] = true
				}
			}
		}
	}
	t.terminals[token.End] = true
}

// Terminals returns every terminal symbol in the grammar, including the
// end-of-input sentinel, sorted for deterministic iteration.
func (t *Tables) Terminals() []string {
	out := make([]string, 0, len(t.terminals))
	for sym := range t.terminals {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// IsTerminal reports whether sym is one of the grammar's terminal symbols.
func (t *Tables) IsTerminal(sym string) bool { return t.terminals[sym] }

// First computes FIRST(symbol): the set of terminals (and possibly λ) that
// can begin a string derived from symbol. A terminal (or λ itself) is its
// own singleton FIRST set; a non-terminal's FIRST is the union of
// FirstOfSequence(rule.Symbols) over its rules, in whatever order they
// happen to be visited (the result does not depend on that order).
func (t *Tables) First(symbol string) Set {
	if cached, ok := t.firstCache[symbol]; ok {
		return cached
	}
	if !t.g.IsNonTerminal(symbol) {
		result := Set{symbol: true}
		t.firstCache[symbol] = result
		return result
	}

	result := Set{}
	for _, rule := range t.g.RulesFor(symbol) {
		for sym := range t.FirstOfSequence(rule.Symbols) {
			result[sym] = true
		}
	}
	t.firstCache[symbol] = result
	return result
}

// FirstOfSequence computes FIRST of a full symbol sequence: walk left to
// right, taking each symbol's non-λ FIRST members, and stop at the first
// symbol that cannot vanish. λ is included in the result only if every
// symbol in the sequence can vanish.
func (t *Tables) FirstOfSequence(sequence []string) Set {
	result := Set{}
	allNullable := true
	for _, sym := range sequence {
		symFirst := t.First(sym)
		for member := range symFirst {
			if member != token.Epsilon {
				result[member] = true
			}
		}
		if !symFirst.Contains(token.Epsilon) {
			allNullable = false
			break
		}
	}
	if allNullable {
		result[token.Epsilon] = true
	}
	return result
}

// Follow returns FOLLOW(nonTerminal): the set of terminals (including the
// end-of-input sentinel) that can immediately follow nonTerminal in some
// derivation from the start symbol. Callers must not mutate the result.
func (t *Tables) Follow(nonTerminal string) Set {
	return t.followCache[nonTerminal]
}

// initializeFollow computes every non-terminal's FOLLOW set by fixed-point
// iteration: seed FOLLOW(Start) with the end-of-input sentinel, then
// repeatedly walk each rule's right-hand side right to left, propagating a
// trailer set backward through each non-terminal position, until a full
// pass over every rule adds nothing new.
func (t *Tables) initializeFollow() {
	for _, nt := range t.g.NonTerminals() {
		t.followCache[nt] = Set{}
	}
	t.followCache[Start][token.End] = true

	for changed := true; changed; {
		changed = false
		for lhs, rules := range t.g.AllRules() {
			for _, rule := range rules {
				if len(rule.Symbols) == 1 && rule.Symbols[0] == token.Epsilon {
					continue
				}
				trailer := Set{}
				for sym := range t.followCache[lhs] {
					trailer[sym] = true
				}
				for i := len(rule.Symbols) - 1; i >= 0; i-- {
					sym := rule.Symbols[i]
					if !t.g.IsNonTerminal(sym) {
						trailer = Set{sym: true}
						continue
					}
					followSet := t.followCache[sym]
					for member := range trailer {
						if !followSet[member] {
							followSet[member] = true
							changed = true
						}
					}
					firstSym := t.First(sym)
					if firstSym.Contains(token.Epsilon) {
						for member := range firstSym {
							if member != token.Epsilon {
								trailer[member] = true
							}
						}
					} else {
						next := Set{}
						for member := range firstSym {
							next[member] = true
						}
						trailer = next
					}
				}
			}
		}
	}
}

// SelectRule picks the first rule for nonTerminal, in grammar declaration
// order, whose FIRST set admits lookahead — or, for a rule that can vanish,
// whose FOLLOW(nonTerminal) admits it. Grammar order is load-bearing here:
// see the package doc.
func (t *Tables) SelectRule(nonTerminal, lookahead string) (Rule, bool) {
	for _, rule := range t.g.RulesFor(nonTerminal) {
		first := t.FirstOfSequence(rule.Symbols)
		if first.Contains(lookahead) {
			return rule, true
		}
		if first.Contains(token.Epsilon) && t.Follow(nonTerminal).Contains(lookahead) {
			return rule, true
		}
	}
	return Rule{}, false
}
