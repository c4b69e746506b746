package cpu

import (
	"fmt"
	"strings"
)

// Op is an instruction kind.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INBOX         = Op(0)  // inbox
	OP_OUTBOX        = Op(1)  // outbox
	OP_ADD           = Op(2)  // add
	OP_SUB           = Op(3)  // sub
	OP_COPYFROM      = Op(4)  // copyfrom
	OP_COPYTO        = Op(5)  // copyto
	OP_BUMP_PLUS     = Op(6)  // bump+
	OP_BUMP_MINUS    = Op(7)  // bump-
	OP_LABEL         = Op(8)  // label
	OP_JUMP          = Op(9)  // jump
	OP_JUMP_ZERO     = Op(10) // jumpz
	OP_JUMP_NEGATIVE = Op(11) // jumpn
)

// opMap maps mnemonics, including aliases, to operations.
var opMap = map[string]Op{
	"inbox":    OP_INBOX,
	"outbox":   OP_OUTBOX,
	"add":      OP_ADD,
	"sub":      OP_SUB,
	"copyfrom": OP_COPYFROM,
	"copyto":   OP_COPYTO,
	"bump+":    OP_BUMP_PLUS,
	"bumpup":   OP_BUMP_PLUS,
	"bump-":    OP_BUMP_MINUS,
	"bumpdn":   OP_BUMP_MINUS,
	"label":    OP_LABEL,
	"jump":     OP_JUMP,
	"jumpz":    OP_JUMP_ZERO,
	"jumpzero": OP_JUMP_ZERO,
	"jumpn":    OP_JUMP_NEGATIVE,
	"jumpneg":  OP_JUMP_NEGATIVE,
}

// ParseOp returns the operation named by a mnemonic, ignoring case.
func ParseOp(word string) (op Op, ok bool) {
	op, ok = opMap[strings.ToLower(word)]
	return
}

// HasLocation is true for operations that take a memory operand.
func (op Op) HasLocation() bool {
	switch op {
	case OP_ADD, OP_SUB, OP_COPYFROM, OP_COPYTO, OP_BUMP_PLUS, OP_BUMP_MINUS:
		return true
	}
	return false
}

// IsJump is true for operations that take a jump target.
func (op Op) IsJump() bool {
	switch op {
	case OP_JUMP, OP_JUMP_ZERO, OP_JUMP_NEGATIVE:
		return true
	}
	return false
}

// Instruction is a single machine instruction.
//
// Memory operations use Location. Jumps use Target, an absolute
// instruction index, once linked; before linking Label holds the symbolic
// target. OP_LABEL uses Label as its name.
type Instruction struct {
	Op       Op
	Location Location
	Target   int
	Label    string
}

// MakeInbox creates an inbox instruction.
func MakeInbox() Instruction {
	return Instruction{Op: OP_INBOX}
}

// MakeOutbox creates an outbox instruction.
func MakeOutbox() Instruction {
	return Instruction{Op: OP_OUTBOX}
}

// MakeMemory creates an instruction with a memory operand.
func MakeMemory(op Op, loc Location) Instruction {
	return Instruction{Op: op, Location: loc}
}

// MakeLabel creates a label definition.
func MakeLabel(name string) Instruction {
	return Instruction{Op: OP_LABEL, Label: name}
}

// MakeJump creates a jump to an absolute instruction index.
func MakeJump(op Op, target int) Instruction {
	return Instruction{Op: op, Target: target}
}

// MakeJumpLabel creates a jump to a label, to be resolved by Program.Link.
func MakeJumpLabel(op Op, label string) Instruction {
	return Instruction{Op: op, Target: -1, Label: label}
}

// Linked is true once a jump has an absolute target.
func (ins Instruction) Linked() bool {
	return !ins.Op.IsJump() || ins.Target >= 0
}

// String returns the assembly language form of the instruction.
func (ins Instruction) String() string {
	switch {
	case ins.Op.HasLocation():
		return fmt.Sprintf("%v %v", ins.Op, ins.Location)
	case ins.Op == OP_LABEL:
		return fmt.Sprintf("%v:", ins.Label)
	case ins.Op.IsJump() && ins.Target >= 0:
		return fmt.Sprintf("%v %d", ins.Op, ins.Target)
	case ins.Op.IsJump():
		return fmt.Sprintf("%v %v", ins.Op, ins.Label)
	}
	return ins.Op.String()
}

// Flow is the instruction pointer action requested by an operator.
type Flow int

//go:generate go tool stringer -linecomment -type=Flow
const (
	FLOW_ADVANCE = Flow(0) // advance
	FLOW_JUMP    = Flow(1) // jump
	FLOW_HALT    = Flow(2) // halt
)

// Next is the outcome of an operator for the instruction pointer.
type Next struct {
	Flow   Flow
	Target int // Destination for FLOW_JUMP.
}

var (
	nextAdvance = Next{Flow: FLOW_ADVANCE}
	nextHalt    = Next{Flow: FLOW_HALT}
)

// nextJump requests a jump to target.
func nextJump(target int) Next {
	return Next{Flow: FLOW_JUMP, Target: target}
}

// Opcode represents a line of assembled code with its source location
// and generated instruction.
type Opcode struct {
	LineNo      int
	Words       []string
	Instruction Instruction
}
