// Package parser implements the toy language's predictive parser: given a
// grammar and a token stream, it walks non-terminals top-down, matching
// terminals against lookahead and firing semantic actions positionally
// alongside each symbol, to produce a finished OPS program.
package parser

import (
	"fmt"

	"github.com/jcorbin/toypascal/internal/grammar"
	"github.com/jcorbin/toypascal/internal/token"
)

// Parser drives predictive parsing over a fixed grammar. It is stateless
// beyond the grammar and its derived FIRST/FOLLOW tables, both computed
// once at construction, so a *Parser may be reused (and shared) across any
// number of independent parses.
type Parser struct {
	g   *grammar.Grammar
	tab *grammar.Tables
}

// New builds a Parser over g.
func New(g *grammar.Grammar) *Parser {
	return &Parser{g: g, tab: grammar.NewTables(g)}
}

// Tables exposes the parser's derived FIRST/FOLLOW tables.
func (p *Parser) Tables() *grammar.Tables { return p.tab }

// Parse consumes an already-lexed token stream (see internal/lexer) and
// returns the finished OPS program, or the first ParseError encountered.
func (p *Parser) Parse(tokens []token.Token) (Program, error) {
	for _, tok := range tokens {
		if !p.tab.IsTerminal(tok.Terminal()) {
			return Program{}, ParseError{
				Pos:     tok.Pos.String(),
				Message: fmt.Sprintf("token %q is not covered by any grammar terminal", tok.Lexeme),
			}
		}
	}

	st := &parseState{g: p.g, tab: p.tab, tokens: tokens}
	if err := st.parseNonTerminal(grammar.Start); err != nil {
		return Program{}, err
	}
	if sym := st.currentSymbol(); sym != token.End {
		return Program{}, st.errorf("unexpected trailing input, found %q", sym)
	}
	return Program{Elements: st.output}, nil
}

// parseState is the mutable, single-parse working state: cursor position,
// the back-patch stacks, the pending-assignment flag, and the OPS output
// built up so far. A fresh parseState backs every call to Parse.
type parseState struct {
	g   *grammar.Grammar
	tab *grammar.Tables

	tokens   []token.Token
	position int

	output []Element

	lastLexeme string
	lastKind   string

	exitLabelStack      []int
	loopStartLabelStack []int
	pendingAssignOp     bool
}

// parseNonTerminal selects and applies one rule for nonTerminal: for each
// symbol in the chosen rule's right-hand side, recurse (non-terminal) or
// match (terminal), then fire the action at the same index, if any.
func (p *parseState) parseNonTerminal(nonTerminal string) error {
	lookahead := p.currentSymbol()
	rule, ok := p.tab.SelectRule(nonTerminal, lookahead)
	if !ok {
		return p.errorf("no rule for %s at lookahead %q", nonTerminal, lookahead)
	}

	for i, sym := range rule.Symbols {
		if sym != token.Epsilon {
			if p.g.IsNonTerminal(sym) {
				if err := p.parseNonTerminal(sym); err != nil {
					return err
				}
			} else if err := p.match(sym); err != nil {
				return err
			}
		}

		if i >= len(rule.Actions) {
			continue
		}
		tag := rule.Actions[i]
		if tag == "" || tag == grammar.NoAction {
			continue
		}
		elems, err := p.resolveAction(tag)
		if err != nil {
			return err
		}
		p.output = append(p.output, elems...)
	}
	return nil
}

// match compares the current lookahead against terminal, advancing the
// cursor and recording the matched token as "last matched" on success.
func (p *parseState) match(terminal string) error {
	lookahead := p.currentSymbol()
	if lookahead != terminal {
		return p.errorf("expected %q, found %q", terminal, lookahead)
	}
	tok := p.tokens[p.position]
	p.lastLexeme = tok.Lexeme
	p.lastKind = tok.Kind.String()
	p.position++
	return nil
}

// currentSymbol is the grammar terminal for the token under the cursor, or
// the end-of-input sentinel once the cursor runs past the token stream.
func (p *parseState) currentSymbol() string {
	if p.position >= len(p.tokens) {
		return token.End
	}
	return p.tokens[p.position].Terminal()
}
