package vm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// InputSource is the "INPUT" collaborator: it blocks for one integer,
// given a hint (typically the destination variable's name) to show the
// user, and may reject non-integer input and retry rather than erroring.
type InputSource interface {
	NextInteger(hint string) (int64, error)
}

// ReaderInput is the default InputSource: whitespace-delimited integers
// read from an io.Reader, with an optional prompt sink for the "INPUT
// name: " hint and re-prompt-on-garbage messages (pass a nil prompt to
// read silently, e.g. from a file).
type ReaderInput struct {
	sc     *bufio.Scanner
	prompt io.Writer
}

// NewReaderInput builds a ReaderInput scanning r for whitespace-delimited
// integer tokens, echoing prompts to prompt (or nowhere, if prompt is
// nil).
func NewReaderInput(r io.Reader, prompt io.Writer) *ReaderInput {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &ReaderInput{sc: sc, prompt: prompt}
}

func (in *ReaderInput) NextInteger(hint string) (int64, error) {
	for {
		if in.prompt != nil {
			fmt.Fprintf(in.prompt, "INPUT %s: ", hint)
		}
		if !in.sc.Scan() {
			if err := in.sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		tok := in.sc.Text()
		n, err := strconv.ParseInt(tok, 10, 64)
		if err == nil {
			return n, nil
		}
		if in.prompt != nil {
			fmt.Fprintf(in.prompt, "not an integer: %q, enter an integer for %s\n", tok, hint)
		}
	}
}
