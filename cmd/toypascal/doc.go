// Command toypascal is the reference embedding of the lexer, grammar,
// parser and VM packages: it reads a toy-language source file (or stdin),
// runs it end to end, and prints its OUTPUT lines to stdout.
//
// Usage:
//
//	toypascal [path] [flags]
//
// If path is omitted or "-", source is read from stdin. Flags:
//
//	-quiet, -q       suppress the "ERROR: ..." line on failure (exit code
//	                 still reflects the failure)
//	-trace           log one line per executed OPS element to stderr
//	-timeout DURATION
//	                 abort a runaway program after DURATION (e.g. "5s");
//	                 zero (the default) means no timeout
//	-input FILE      read INPUT values from FILE instead of stdin
//	-cell-budget N   cap total array cells reserved by ARRAY declarations;
//	                 zero (the default) means unlimited
//	-dump-ops        print the compiled OPS program before running it
//	-dump-vars       print the final variable table after running it
//
// Exit code is nonzero on any lexical, parse, or runtime error, per the
// three-kind error taxonomy documented on internal/lexer.Error,
// internal/parser.ParseError, and internal/vm.RuntimeError.
package main
