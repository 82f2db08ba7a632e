package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jcorbin/toypascal/internal/grammar"
	"github.com/jcorbin/toypascal/internal/lexer"
	"github.com/jcorbin/toypascal/internal/logio"
	"github.com/jcorbin/toypascal/internal/parser"
	"github.com/jcorbin/toypascal/internal/perr"
	"github.com/jcorbin/toypascal/internal/vm"
)

// nopWriteCloser adapts a plain io.Writer (os.Stderr, io.Discard) to the
// io.WriteCloser a logio.Logger wants, without letting the logger's own
// bookkeeping ever actually close stderr.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func main() {
	os.Exit(runMain())
}

// runMain wraps run in the same panic-boundary the pipeline itself uses
// internally (see internal/perr), so a bug that manages to panic past the
// VM's own recover still exits cleanly with a message instead of a raw Go
// stack trace, mirroring the teacher's api.go/panicerr.Recover pairing.
func runMain() int {
	var code int
	err := perr.Recover("toypascal", func() error {
		code = run()
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	return code
}

func run() int {
	var quiet, trace, dumpOps, dumpVars bool
	var timeout time.Duration
	var inputPath string
	var cellBudget int

	fs := flag.NewFlagSet("toypascal", flag.ContinueOnError)
	fs.BoolVar(&quiet, "quiet", false, "suppress the ERROR: line on failure")
	fs.BoolVar(&quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&trace, "trace", false, "log one line per executed OPS element to stderr")
	fs.DurationVar(&timeout, "timeout", 0, "abort a runaway program after this long (0 = no timeout)")
	fs.StringVar(&inputPath, "input", "", "read INPUT values from this file instead of stdin")
	fs.IntVar(&cellBudget, "cell-budget", 0, "cap total array cells reserved by ARRAY (0 = unlimited)")
	fs.BoolVar(&dumpOps, "dump-ops", false, "print the compiled OPS program before running it")
	fs.BoolVar(&dumpVars, "dump-vars", false, "print the final variable table after running it")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	path := "-"
	if fs.NArg() > 0 {
		path = fs.Arg(0)
		// flags may also follow the path, as in "toypascal prog.toy -q"
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return 2
		}
	}

	var cliLog logio.Logger
	if quiet {
		cliLog.SetOutput(nopWriteCloser{io.Discard})
	} else {
		cliLog.SetOutput(nopWriteCloser{os.Stderr})
	}
	defer cliLog.Close()

	src, err := readSource(path)
	if err != nil {
		cliLog.Errorf("%v", err)
		return cliLog.ExitCode()
	}

	toks, err := lexer.Tokenize(path, src)
	if err != nil {
		cliLog.Errorf("%v", err)
		return cliLog.ExitCode()
	}

	prog, err := parser.New(grammar.New()).Parse(toks)
	if err != nil {
		cliLog.Errorf("%v", err)
		return cliLog.ExitCode()
	}
	if dumpOps {
		_ = vm.DumpOps(os.Stdout, prog)
	}

	in, closeIn := buildInput(inputPath)
	defer closeIn()

	var opts = []vm.Option{
		vm.WithInput(in),
		vm.WithOutput(os.Stdout),
		vm.WithCellBudget(cellBudget),
	}
	if trace {
		// Route the VM's per-step trace through a stdlib *log.Logger writing
		// into a logio.Writer, so each formatted line reaches stderr through
		// the same line-splitting writer the teacher's own tests use to
		// adapt a printf-style callback into an io.Writer.
		traceOut := &logio.Writer{Logf: func(mess string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, mess+"\n", args...)
		}}
		defer traceOut.Sync()
		tracer := log.New(traceOut, "", log.LstdFlags)
		opts = append(opts, vm.WithLogf(tracer.Printf))
	}
	machine := vm.New(opts...)

	if err := machine.RunWithTimeout(context.Background(), prog, timeout); err != nil {
		cliLog.Errorf("%v", err)
		return cliLog.ExitCode()
	}

	if dumpVars {
		_ = vm.DumpVars(os.Stdout, machine.Variables())
	}
	return 0
}

func readSource(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// buildInput picks the INPUT collaborator: a file, if -input names one;
// otherwise an interactive liner.State prompt when stdin is a real
// terminal, or a silent whitespace-delimited reader over stdin when it is not (piped or
// redirected, e.g. under a test harness).
func buildInput(inputPath string) (vm.InputSource, func()) {
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "toypascal: cannot open -input file: %v\n", err)
			os.Exit(1)
		}
		return vm.NewReaderInput(f, nil), func() { f.Close() }
	}

	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
		ln := liner.NewLiner()
		ln.SetCtrlCAborts(true)
		return &linerInput{ln: ln}, func() { ln.Close() }
	}

	return vm.NewReaderInput(os.Stdin, nil), func() {}
}

// linerInput is the interactive InputSource: one liner.Prompt per requested
// integer, re-prompting on non-integer input, giving the reference CLI
// line editing and history for INPUT the way a REPL front-end would.
type linerInput struct {
	ln *liner.State
}

func (in *linerInput) NextInteger(hint string) (int64, error) {
	for {
		line, err := in.ln.Prompt(fmt.Sprintf("INPUT %s: ", hint))
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err == nil {
			in.ln.AppendHistory(line)
			return n, nil
		}
		fmt.Fprintf(os.Stderr, "not an integer: %q, enter an integer for %s\n", line, hint)
	}
}

