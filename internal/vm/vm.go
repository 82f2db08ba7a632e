package vm

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jcorbin/toypascal/internal/mem"
	"github.com/jcorbin/toypascal/internal/parser"
)

// VM is the stack-machine executor for a finished OPS program: an operand
// stack, a variable table, an init stack, and the collaborators (input
// source, output sink) an embedder wires in through Option-s.
type VM struct {
	logging

	variables map[string]*Var
	stack     []Value
	initStack []string

	prog []parser.Element
	ip   int

	in     InputSource
	out    lineWriter
	budget *mem.Budget
}

// lineWriter is the output-sink shape the executor needs: append one
// finished text line.
type lineWriter interface {
	WriteLine(line string) error
}

// New builds a VM with defaults applied first (discard output, empty
// input, unlimited cell budget), then opts in order.
func New(opts ...Option) *VM {
	vm := &VM{variables: make(map[string]*Var)}
	for _, opt := range defaultOptions {
		opt.apply(vm)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
	return vm
}

// Variables exposes the final variable table, e.g. for a --dump-vars
// diagnostic. Callers must not mutate the returned map or its array
// entries.
func (vm *VM) Variables() map[string]*Var { return vm.variables }

// Execute runs prog to completion (or to the first RuntimeError, or until
// ctx is done), writing each "o" line to the configured output as it is
// produced.
func (vm *VM) Execute(ctx context.Context, prog parser.Program) (err error) {
	vm.prog = prog.Elements
	vm.ip = 0

	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(RuntimeError); ok {
				err = rerr
				return
			}
			panic(r)
		}
	}()

	for vm.ip < len(vm.prog) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		vm.step()
	}
	return nil
}

func (vm *VM) step() {
	el := vm.prog[vm.ip]
	vm.logf(fmt.Sprintf("@%d", vm.ip), "%v %v -- stack:%v", el.Type, el.Value, vm.stack)

	switch el.Type {
	case parser.Identifier, parser.Label, parser.LabelPlaceholder:
		vm.push(StrValue(el.Value))
		vm.ip++
		return
	case parser.Number:
		n, err := strconv.ParseInt(el.Value, 10, 64)
		if err != nil {
			vm.failf("malformed number literal %q: %v", el.Value, err)
		}
		vm.push(IntValue(n))
		vm.ip++
		return
	}

	vm.execOp(el.Value)
}

func (vm *VM) push(v Value) { vm.stack = append(vm.stack, v) }

func (vm *VM) pop() Value {
	if len(vm.stack) == 0 {
		vm.fail(ErrEmptyStack)
	}
	i := len(vm.stack) - 1
	v := vm.stack[i]
	vm.stack = vm.stack[:i]
	return v
}
