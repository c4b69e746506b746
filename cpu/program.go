package cpu

import (
	"iter"
)

// Program is an assembled, unlinked, instruction listing.
type Program struct {
	Opcodes []Opcode
}

// Instructions returns the instructions of the program, in order.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, ins Instruction) bool) {
		for ip, op := range prog.Opcodes {
			if !yield(ip, op.Instruction) {
				return
			}
		}
	}
}

// Debug returns the source opcode for an instruction index, or nil.
func (prog *Program) Debug(ip int) *Opcode {
	if ip < 0 || ip >= len(prog.Opcodes) {
		return nil
	}

	return &prog.Opcodes[ip]
}

// LineNo returns the source line of an instruction index, or 0.
func (prog *Program) LineNo(ip int) int {
	op := prog.Debug(ip)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// ResolveLabels maps every label name to the index of its OP_LABEL
// instruction. When a name is defined more than once the last definition
// wins.
func ResolveLabels(insts iter.Seq2[int, Instruction]) (labels map[string]int) {
	labels = make(map[string]int)
	for ip, ins := range insts {
		if ins.Op == OP_LABEL {
			labels[ins.Label] = ip
		}
	}

	return
}

// Link resolves symbolic jump targets to instruction indexes, and checks
// every instruction against a machine with memorySize cells. The program
// itself is left unchanged.
func (prog *Program) Link(memorySize int) (insts []Instruction, err error) {
	labels := ResolveLabels(prog.Instructions())

	insts = make([]Instruction, len(prog.Opcodes))
	for ip, op := range prog.Opcodes {
		ins := op.Instruction
		ins, err = link(ins, labels, len(prog.Opcodes), memorySize)
		if err != nil {
			err = &ErrLink{LineNo: op.LineNo, Err: err}
			insts = nil
			return
		}
		insts[ip] = ins
	}

	return
}

// Link resolves and checks a bare instruction sequence, as Program.Link.
func Link(code []Instruction, memorySize int) (insts []Instruction, err error) {
	prog := &Program{Opcodes: make([]Opcode, len(code))}
	for n, ins := range code {
		prog.Opcodes[n] = Opcode{LineNo: n + 1, Instruction: ins}
	}

	return prog.Link(memorySize)
}

// link resolves a single instruction.
func link(ins Instruction, labels map[string]int, count int, memorySize int) (out Instruction, err error) {
	out = ins

	switch {
	case ins.Op.HasLocation():
		if ins.Location.Mode != LOC_CELL && ins.Location.Mode != LOC_ADDRESS {
			err = ErrOperandInvalid
			return
		}
		if ins.Location.Index < 0 || ins.Location.Index >= memorySize {
			err = ErrCellRange(ins.Location.Index)
			return
		}
	case ins.Op.IsJump():
		if len(ins.Label) != 0 {
			target, ok := labels[ins.Label]
			if !ok {
				err = ErrLabelMissing(ins.Label)
				return
			}
			out.Target = target
		}
		if out.Target < 0 || out.Target >= count {
			err = ErrTargetRange(out.Target)
			return
		}
	case ins.Op == OP_LABEL, ins.Op == OP_INBOX, ins.Op == OP_OUTBOX:
	default:
		err = ErrOpInvalid
		return
	}

	return
}
