package parser

import "fmt"

// ParseError reports why a parse could not proceed: an unmatched terminal,
// no applicable rule for a non-terminal at the current lookahead, trailing
// tokens after the start symbol, or a semantic-action invariant violation
// (an empty back-patch stack at action 8 or 10).
type ParseError struct {
	Pos     string
	Message string
}

func (err ParseError) Error() string {
	if err.Pos == "" {
		return err.Message
	}
	return fmt.Sprintf("%s: %s", err.Pos, err.Message)
}

func (p *parseState) errorf(format string, args ...any) error {
	pos := ""
	if p.position < len(p.tokens) {
		pos = p.tokens[p.position].Pos.String()
	} else if len(p.tokens) > 0 {
		pos = p.tokens[len(p.tokens)-1].Pos.String()
	}
	return ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
