package vm

import (
	"fmt"
	"io"
	"sort"

	"github.com/jcorbin/toypascal/internal/parser"
)

// DumpOps writes prog's elements one per line, each tagged with its type
// and OPS index, for a --dump-ops diagnostic.
func DumpOps(w io.Writer, prog parser.Program) error {
	for i, el := range prog.Elements {
		if _, err := fmt.Fprintf(w, "% 4d  %-16s %s\n", i, el.Type, el.Value); err != nil {
			return err
		}
	}
	return nil
}

// DumpVars writes the final variable table, one entry per line sorted by
// name, for a --dump-vars diagnostic.
func DumpVars(w io.Writer, variables map[string]*Var) error {
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, variables[name]); err != nil {
			return err
		}
	}
	return nil
}
