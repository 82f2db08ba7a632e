// Package grammar holds the toy language's Greibach-style rule table: for
// each non-terminal, an ordered list of productions, each carrying a
// parallel action-tag list and a short comment. It is built once, immutable
// thereafter, and shared read-only by any number of parsers (see
// internal/parser).
//
// Insertion order is load-bearing: internal/parser's rule selection picks
// the first rule, in this order, whose FIRST set (or nullable FOLLOW) admits
// the current lookahead. The grammar is not strictly LL(1) under
// set-based choice alone; it is disambiguated by this ordering.
package grammar

import "github.com/jcorbin/toypascal/internal/token"

// Start is the grammar's start non-terminal.
const Start = "A"

// NoAction marks a symbol position with no semantic action.
const NoAction = "□"

// Rule is one production: LHS -> Symbols, with a parallel Actions list
// (never longer than Symbols; nil for a λ production) naming the semantic
// action to run immediately after each symbol is matched or recursively
// parsed. A position past the end of Actions carries no action. Comment is free text
// carried over for documentation, matched to how it reads in a trace.
type Rule struct {
	Symbols []string
	Actions []string
	Comment string
}

// Grammar is an immutable, insertion-ordered non-terminal -> []Rule table.
type Grammar struct {
	order []string
	rules map[string][]Rule
}

// RulesFor returns the ordered list of productions for a non-terminal, or
// nil if it names no rules.
func (g *Grammar) RulesFor(nonTerminal string) []Rule {
	return g.rules[nonTerminal]
}

// NonTerminals returns every non-terminal in the grammar, in the order
// their first rule was added.
func (g *Grammar) NonTerminals() []string {
	return g.order
}

// AllRules returns the full ordered non-terminal -> []Rule table. Callers
// must not mutate the returned slices.
func (g *Grammar) AllRules() map[string][]Rule {
	return g.rules
}

// IsNonTerminal reports whether sym names a non-terminal in g.
func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.rules[sym]
	return ok
}

type builder struct {
	g *Grammar
}

func (b *builder) add(nonTerminal string, symbols, actions []string, comment string) {
	if _, ok := b.g.rules[nonTerminal]; !ok {
		b.g.order = append(b.g.order, nonTerminal)
	}
	b.g.rules[nonTerminal] = append(b.g.rules[nonTerminal], Rule{
		Symbols: symbols,
		Actions: actions,
		Comment: comment,
	})
}

// New constructs the toy language's fixed grammar table. The productions
// below are the accepted language; see the surface grammar in the package
// doc of cmd/toypascal for the equivalent EBNF.
func New() *Grammar {
	g := &Grammar{rules: make(map[string][]Rule)}
	b := &builder{g: g}

	e := token.Epsilon

	b.add("A", ss("VAR", "P", ";", "A"), ss(na, na, na, na), "scalar declaration")
	b.add("A", ss("ARRAY", "K", ";", "A"), ss(na, na, na, na), "array declaration")
	b.add("A", ss("IF", "(", "L", ")", "THEN", "{", "A", "}", "C", "Z", ";", "A"),
		ss(na, na, na, na, "7", na, na, na, na, "8", na, na), "conditional")
	b.add("A", ss("WHILE", "(", "L", ")", "DO", "{", "A", "}", "Z", ";", "A"),
		ss("9", na, na, na, "7", na, na, na, "10", na, na), "while loop")
	b.add("A", ss("a", "H", ":=", "E", "Z", ";", "A"),
		ss("a", na, na, na, ":", "=", na), "assignment to a variable")
	b.add("A", ss("OUTPUT", "E", ";", "A"), ss(na, na, "o", na), "program output")
	b.add("A", ss("INPUT", "I'", ";", "A"), ss(na, na, "s", na), "read a variable")
	b.add("A", ss(e), nil, "end of program")

	b.add("C", ss("ELSE", "{", "A", "}"), ss("2", na, na, na), "conditional: alternate branch")
	b.add("C", ss(e), nil, "conditional: no alternate branch")

	b.add("H", ss("[", "E", "]"), ss(na, na, "i"), "array index")
	b.add("H", ss(e), nil, "plain variable")

	b.add("E", ss("-", "G", "V", "U"), ss(na, na, "-'", na), "")
	b.add("E", ss("(", "E", ")", "V", "U"), ss(na, na, na, na, na), "")
	b.add("E", ss("a", "H", "V", "U"), ss("a", na, na, na), "")
	b.add("E", ss("k", "V", "U"), ss("k", na, na), "")

	b.add("U", ss("+", "T", "U"), ss(na, na, "+"), "")
	b.add("U", ss("-", "T", "U"), ss(na, na, "-"), "")
	b.add("U", ss(e), nil, "")

	b.add("V", ss("*", "F", "V"), ss(na, na, "*"), "")
	b.add("V", ss("/", "F", "V"), ss(na, na, "/"), "")
	b.add("V", ss(e), nil, "")

	b.add("T", ss("-", "G", "V"), ss(na, na, "-'"), "")
	b.add("T", ss("(", "E", ")", "V"), ss(na, na, na, na), "")
	b.add("T", ss("a", "H", "V"), ss("a", na, na), "")
	b.add("T", ss("k", "V"), ss("k", na), "")

	b.add("F", ss("-", "G", "Z"), ss(na, na, "-'"), "")
	b.add("F", ss("(", "E", ")"), ss(na, na, na), "")
	b.add("F", ss("a", "H"), ss("a", na), "")
	b.add("F", ss("k"), ss("k"), "")

	b.add("G", ss("(", "E", ")"), ss(na, na, na), "")
	b.add("G", ss("a", "H"), ss("a", na), "")
	b.add("G", ss("k"), ss("k"), "")

	b.add("L", ss("-", "G", "Z", "U", "O", "X", "W"), ss(na, na, "-'", na, na, na, na), "")
	b.add("L", ss("(", "L", ")", "X", "W"), ss(na, na, na, na, na), "")
	b.add("L", ss("a", "H", "V", "U", "O", "X", "W"), ss("a", na, na, na, na, na, na), "")
	b.add("L", ss("k", "V", "U", "O", "X", "W"), ss("k", na, na, na, na, na), "")
	b.add("L", ss("!", "(", "L", ")", "X", "W"), ss(na, na, na, na, na, "!"), "")

	b.add("M", ss("-", "G", "Z", "V", "U", "O", "X"), ss(na, na, "-'", na, na, na, na), "")
	b.add("M", ss("(", "L", ")", "X"), ss(na, na, na, na), "")
	b.add("M", ss("a", "H", "V", "U", "O", "X"), ss("a", na, na, na, na, na), "")
	b.add("M", ss("k", "V", "U", "O", "X"), ss("k", na, na, na), "")
	b.add("M", ss("!", "(", "L", ")", "X"), ss(na, na, na, na, "!"), "")

	b.add("W", ss("OR", "M", "W"), ss(na, na, "OR"), "")
	b.add("W", ss(e), nil, "")

	b.add("X", ss("AND", "N", "X"), ss(na, na, "AND"), "")
	b.add("X", ss(e), nil, "")

	b.add("N", ss("-", "G", "Z", "V", "U", "O"), ss(na, na, "-'", na, na, na), "")
	b.add("N", ss("(", "L", ")"), ss(na, na, na), "")
	b.add("N", ss("a", "H", "V", "U", "O"), ss("a", na, na, na, na), "")
	b.add("N", ss("k", "V", "U", "O"), ss("k", na, na, na), "")
	b.add("N", ss("!", "(", "L", ")", "Z"), ss(na, na, na, na, "!"), "")

	b.add("O", ss("<", "E", "Z"), ss(na, na, "<"), "")
	b.add("O", ss(">", "E", "Z"), ss(na, na, ">"), "")
	b.add("O", ss(">=", "E", "Z"), ss(na, na, ">="), "")
	b.add("O", ss("<=", "E", "Z"), ss(na, na, "<="), "")
	b.add("O", ss("==", "E", "Z"), ss(na, na, "=="), "")
	b.add("O", ss("!=", "E", "Z"), ss(na, na, "!="), "")

	b.add("P", ss("a", "Z", "B"), ss("a", "n", na), "")
	b.add("B", ss(":=", "E", "Z"), ss(na, na, "f"), "")
	b.add("B", ss(e), nil, "")

	b.add("K", ss("a", "R"), ss("a", na), "")
	b.add("R", ss("(", "E", ")"), ss(na, na, "ar"), "")
	b.add("I'", ss("a", "H"), ss("a", na), "")
	b.add("Z", ss(e), nil, "")

	return g
}

const na = NoAction

func ss(symbols ...string) []string { return symbols }
