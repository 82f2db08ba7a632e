package vm

import (
	"io"
	"strings"

	"github.com/jcorbin/toypascal/internal/flushio"
	"github.com/jcorbin/toypascal/internal/mem"
)

// Option configures a VM at construction time.
type Option interface{ apply(vm *VM) }

var defaultOptions = []Option{
	WithInput(NewReaderInput(strings.NewReader(""), nil)),
	WithOutput(io.Discard),
}

type inputOption struct{ InputSource }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type budgetOption struct{ limit int }
type logfnOption func(mess string, args ...any)

func (o inputOption) apply(vm *VM)  { vm.in = o.InputSource }
func (o outputOption) apply(vm *VM) { vm.out = flushLineWriter{flushio.NewWriteFlusher(o.Writer)} }
func (o teeOption) apply(vm *VM) {
	var existing flushio.WriteFlusher
	if flw, ok := vm.out.(flushLineWriter); ok {
		existing = flw.wf
	}
	vm.out = flushLineWriter{flushio.WriteFlushers(existing, flushio.NewWriteFlusher(o.Writer))}
}
func (o budgetOption) apply(vm *VM) { vm.budget = mem.NewBudget(o.limit) }
func (fn logfnOption) apply(vm *VM) { vm.logfn = fn }

// WithInput sets the "INPUT" collaborator.
func WithInput(in InputSource) Option { return inputOption{in} }

// WithOutput sets the "OUTPUT" line sink, replacing any previously
// configured output (including one set by WithTee).
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee additionally mirrors output to w, alongside whatever sink is
// already configured.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithCellBudget caps total array cells reserved by "ar" across execution;
// limit <= 0 means unlimited.
func WithCellBudget(limit int) Option { return budgetOption{limit} }

// WithLogf enables a step-by-step execution trace, one call per OPS
// element executed.
func WithLogf(logfn func(mess string, args ...any)) Option { return logfnOption(logfn) }
