package vm

import "strconv"

// asInteger implements the design's asInteger coercion: an integer is used
// as-is; a bare identifier must be bound to an integer variable; an array
// reference is read (bounds-checked); anything else — notably a boolean —
// is a type error. Failures panic with a RuntimeError, recovered at the
// Run boundary.
func (vm *VM) asInteger(v Value) int64 {
	switch v.Kind {
	case Int:
		return v.Int
	case Str:
		variable, ok := vm.variables[v.Str]
		if !ok {
			vm.failWrap(ErrUninitialized, "variable %q is not initialized", v.Str)
		}
		if variable.Kind != VarInt {
			vm.failf("expected an integer, found %q bound to a %s", v.Str, kindName(variable.Kind))
		}
		return variable.Int
	case ArrayRef:
		return vm.readArray(v.Name, v.Index)
	default:
		vm.failf("expected an integer, found %s", v)
		return 0
	}
}

// asBoolean implements the design's asBoolean coercion: a boolean is used
// as-is; an integer is truthy when non-zero; anything else is a type
// error.
func (vm *VM) asBoolean(v Value) bool {
	switch v.Kind {
	case Bool:
		return v.Bool
	case Int:
		return v.Int != 0
	default:
		vm.failf("expected a boolean, found %s", v)
		return false
	}
}

// asIdentifier requires a bare name — used by opcodes ("n", "ar", "i", "s")
// that name a variable rather than read its value. A label, array
// reference, or literal value here is a type error; in particular this is
// what makes "INPUT arr[i];" a runtime error rather than silently working.
func (vm *VM) asIdentifier(v Value) string {
	if v.Kind != Str {
		vm.failf("expected an identifier, found %s", v)
	}
	return v.Str
}

// resolveValue dereferences an array reference to its element, and a bound
// identifier to its current value — but returns an *unbound* identifier's
// name back verbatim. That asymmetry is load-bearing: it is what lets "o"
// tell "display this variable" apart from "there is no such variable, so
// treat the name itself as the message".
func (vm *VM) resolveValue(v Value) Value {
	switch v.Kind {
	case ArrayRef:
		return IntValue(vm.readArray(v.Name, v.Index))
	case Str:
		if variable, ok := vm.variables[v.Str]; ok {
			return variable.asValue()
		}
		return v
	default:
		return v
	}
}

// formatOutputValue implements "o"'s asymmetric formatting: a bare
// identifier that is currently bound renders as "name=value"; anything
// else — an unbound name, an array element, a literal — renders as its
// resolved value alone.
func (vm *VM) formatOutputValue(v Value) string {
	if v.Kind == Str {
		if variable, ok := vm.variables[v.Str]; ok {
			return v.Str + "=" + variable.String()
		}
	}
	return vm.resolveValue(v).String()
}

// parseLabel requires a value of the form "M<n>" and returns n as an OPS
// index.
func (vm *VM) parseLabel(v Value) int {
	if v.Kind != Str || len(v.Str) < 2 || v.Str[0] != 'M' {
		vm.failf("expected a label of the form M<n>, found %s", v)
	}
	n, err := strconv.Atoi(v.Str[1:])
	if err != nil {
		vm.failf("malformed label %q: %v", v.Str, err)
	}
	return n
}

func (vm *VM) readArray(name string, index int64) int64 {
	variable, ok := vm.variables[name]
	if !ok || variable.Kind != VarArray {
		vm.failf("expected an array for %q", name)
	}
	if index < 0 || index >= int64(len(variable.Array)) {
		vm.failWrap(ErrIndexOutOfRange, "index %d out of range for array %q of length %d", index, name, len(variable.Array))
	}
	return variable.Array[index]
}

func (vm *VM) assignArray(name string, index int64, value Value) {
	variable, ok := vm.variables[name]
	if !ok || variable.Kind != VarArray {
		vm.failf("expected an array for %q", name)
	}
	if index < 0 || index >= int64(len(variable.Array)) {
		vm.failWrap(ErrIndexOutOfRange, "index %d out of range for array %q of length %d", index, name, len(variable.Array))
	}
	variable.Array[index] = vm.asInteger(value)
}

func kindName(k VarKind) string {
	switch k {
	case VarInt:
		return "integer"
	case VarBool:
		return "boolean"
	case VarArray:
		return "array"
	default:
		return "unknown"
	}
}
