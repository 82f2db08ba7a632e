// Package vm executes a finished OPS program (see internal/parser) against
// a variable table and an input/output collaborator pair: the stack
// machine described by the design's "OPS executor".
package vm

import "fmt"

// Kind tags the shape of an operand-stack Value.
type Kind int

const (
	// Int is a signed 64-bit integer.
	Int Kind = iota
	// Bool is a boolean.
	Bool
	// Str is a bare string: an identifier name, or a label/label-placeholder
	// value (both textual forms like "M12" or "M?"). All three source forms
	// collapse to the same runtime shape once pushed, exactly as they do in
	// the reference implementation this executes — only the opcode that
	// consumes the value decides whether it means a variable name or a jump
	// target.
	Str
	// ArrayRef is an (name, index) pair produced by the "i" opcode.
	ArrayRef
)

// Value is one entry on the operand stack.
type Value struct {
	Kind  Kind
	Int   int64
	Bool  bool
	Str   string
	Name  string
	Index int64
}

func IntValue(n int64) Value    { return Value{Kind: Int, Int: n} }
func BoolValue(b bool) Value    { return Value{Kind: Bool, Bool: b} }
func StrValue(s string) Value   { return Value{Kind: Str, Str: s} }
func ArrayRefValue(name string, index int64) Value {
	return Value{Kind: ArrayRef, Name: name, Index: index}
}

func (v Value) String() string {
	switch v.Kind {
	case Int:
		return fmt.Sprintf("%d", v.Int)
	case Bool:
		return fmt.Sprintf("%t", v.Bool)
	case Str:
		return v.Str
	case ArrayRef:
		return fmt.Sprintf("%s[%d]", v.Name, v.Index)
	default:
		return "<invalid>"
	}
}

// VarKind tags the shape of a variable-table entry.
type VarKind int

const (
	VarInt VarKind = iota
	VarBool
	VarArray
)

// Var is one entry in the variable table: a scalar integer, a boolean, or
// a fixed-length integer array. Once created (by "n" or "ar"), a variable
// is never destroyed for the lifetime of the executor.
type Var struct {
	Kind  VarKind
	Int   int64
	Bool  bool
	Array []int64
}

func (v *Var) String() string {
	switch v.Kind {
	case VarInt:
		return fmt.Sprintf("%d", v.Int)
	case VarBool:
		return fmt.Sprintf("%t", v.Bool)
	case VarArray:
		return fmt.Sprintf("%v", v.Array)
	default:
		return "<invalid>"
	}
}

// asValue lifts a variable's current value back onto the operand stack
// shape, used where a bound name resolves to "its value" (resolveValue).
func (v *Var) asValue() Value {
	switch v.Kind {
	case VarBool:
		return BoolValue(v.Bool)
	default:
		return IntValue(v.Int)
	}
}
