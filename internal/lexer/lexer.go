// Package lexer implements the toy language's scanner: source text in, an
// ordered token sequence out. This is a collaborator, not part of the core
// grammar/parser/VM design (see spec's component table), but it is built to
// the fixed contract those packages are tested against: token.Token values
// tagged with one of the four token.Kind values.
package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jcorbin/toypascal/internal/runeio"
	"github.com/jcorbin/toypascal/internal/srcio"
	"github.com/jcorbin/toypascal/internal/token"
)

var keywords = map[string]bool{
	"VAR": true, "ARRAY": true, "INPUT": true, "IF": true, "THEN": true,
	"ELSE": true, "WHILE": true, "DO": true, "OUTPUT": true,
	"AND": true, "OR": true,
}

// twoCharOperators is checked before oneCharOperators so that longer
// operators are never split into two shorter ones.
var twoCharOperators = map[string]bool{
	":=": true, ">=": true, "<=": true, "==": true, "!=": true,
}

var oneCharOperators = map[rune]bool{
	'+': true, '-': true, '*': true, '/': true, '<': true, '>': true,
	'(': true, ')': true, '{': true, '}': true, '[': true, ']': true,
	';': true, '!': true,
}

// Error reports an unknown character encountered while scanning, along with
// its source position.
type Error struct {
	Pos srcio.Pos
	R   rune
}

func (err Error) Error() string {
	return fmt.Sprintf("%v: unknown character %s", err.Pos, runeio.Describe(err.R))
}

// Tokenize turns source into an ordered token sequence. name is used only to
// stamp positions in diagnostics (e.g. a file path, or "<stdin>").
func Tokenize(name, source string) ([]token.Token, error) {
	runes := []rune(source)
	tr := srcio.NewTracker(name)
	var tokens []token.Token

	for i := 0; i < len(runes); {
		r := runes[i]

		if unicode.IsSpace(r) {
			tr.Advance(r)
			i++
			continue
		}

		if isIdentStart(r) {
			start := i
			pos := tr.Advance(r)
			i++
			for i < len(runes) && isIdentPart(runes[i]) {
				tr.Advance(runes[i])
				i++
			}
			lexeme := string(runes[start:i])
			kind := token.Identifier
			if keywords[strings.ToUpper(lexeme)] {
				kind = token.Keyword
			}
			tokens = append(tokens, token.Token{Lexeme: lexeme, Kind: kind, Pos: pos})
			continue
		}

		if unicode.IsDigit(r) {
			start := i
			pos := tr.Advance(r)
			i++
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				tr.Advance(runes[i])
				i++
			}
			tokens = append(tokens, token.Token{Lexeme: string(runes[start:i]), Kind: token.Number, Pos: pos})
			continue
		}

		if i+1 < len(runes) {
			two := string(runes[i : i+2])
			if twoCharOperators[two] {
				pos := tr.Advance(r)
				tr.Advance(runes[i+1])
				i += 2
				tokens = append(tokens, token.Token{Lexeme: two, Kind: token.Operator, Pos: pos})
				continue
			}
		}

		if oneCharOperators[r] {
			pos := tr.Advance(r)
			i++
			tokens = append(tokens, token.Token{Lexeme: string(r), Kind: token.Operator, Pos: pos})
			continue
		}

		return tokens, Error{Pos: tr.Pos(), R: r}
	}

	return tokens, nil
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentPart(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }
