package parser

// resolveAction maps one action tag to zero or more OPS elements, per
// §4.4. Tags "7", "8", "9", "10" manage the back-patch stacks; ":" and "="
// fuse into a single ":=" element when they fire as a pair; everything else
// not in that set — including "2", the ELSE-branch marker — is emitted
// verbatim as an operation. That fallthrough for "2" is deliberate: the
// grammar names an action for the ELSE branch, but no case here gives it
// special handling, so it becomes a literal "2" operation element in the
// program, which the executor has no opcode for.
func (p *parseState) resolveAction(tag string) ([]Element, error) {
	switch tag {
	case "a":
		return []Element{{Value: p.lastLexeme, Type: Identifier}}, nil

	case "k":
		return []Element{{Value: p.lastLexeme, Type: Number}}, nil

	case ":":
		p.pendingAssignOp = true
		return nil, nil

	case "=":
		if p.pendingAssignOp {
			p.pendingAssignOp = false
			return []Element{{Value: ":=", Type: Operation}}, nil
		}
		return []Element{{Value: "=", Type: Operation}}, nil

	case "7":
		placeholder := len(p.output)
		p.exitLabelStack = append(p.exitLabelStack, placeholder)
		return []Element{
			{Value: "M?", Type: LabelPlaceholder},
			{Value: "jf", Type: Operation},
		}, nil

	case "8":
		if len(p.exitLabelStack) == 0 {
			return nil, p.errorf("empty exit-label stack while resolving action 8")
		}
		var placeholder int
		placeholder, p.exitLabelStack = pop(p.exitLabelStack)
		p.output[placeholder] = label(len(p.output))
		return nil, nil

	case "9":
		p.loopStartLabelStack = append(p.loopStartLabelStack, len(p.output))
		return nil, nil

	case "10":
		if len(p.loopStartLabelStack) == 0 || len(p.exitLabelStack) == 0 {
			return nil, p.errorf("empty loop-start or exit-label stack while resolving action 10")
		}
		var startPos, exitPlaceholder int
		startPos, p.loopStartLabelStack = pop(p.loopStartLabelStack)
		exitPlaceholder, p.exitLabelStack = pop(p.exitLabelStack)
		exitTarget := len(p.output) + 2 // the label and "j" this case emits next
		p.output[exitPlaceholder] = label(exitTarget)
		return []Element{
			label(startPos),
			{Value: "j", Type: Operation},
		}, nil

	default:
		return []Element{{Value: tag, Type: Operation}}, nil
	}
}

func pop(stack []int) (int, []int) {
	n := len(stack) - 1
	return stack[n], stack[:n]
}
