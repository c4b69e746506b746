package cpu

import (
	"log"
)

// Execute applies a single instruction to the machine state and returns
// what the instruction pointer should do next. Execute never moves the
// instruction pointer itself; see Apply.
//
// An empty inbox returns FLOW_HALT together with ErrInboxEmpty: the program
// has run out of input. Any other failure returns FLOW_ADVANCE and an error,
// and leaves the state as it was before the instruction.
func (cpu *Cpu) Execute(ins Instruction) (next Next, err error) {
	defer func() {
		if err != nil {
			err = &ErrExecute{Instruction: ins, Err: err}
		}
	}()

	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, ins)
	}

	switch ins.Op {
	case OP_INBOX:
		return cpu.inbox()
	case OP_OUTBOX:
		return cpu.outbox()
	case OP_ADD:
		return cpu.arithmetic(ins.Location, doAdd)
	case OP_SUB:
		return cpu.arithmetic(ins.Location, doSub)
	case OP_COPYFROM:
		return cpu.copyFrom(ins.Location)
	case OP_COPYTO:
		return cpu.copyTo(ins.Location)
	case OP_BUMP_PLUS:
		return cpu.bump(ins.Location, 1)
	case OP_BUMP_MINUS:
		return cpu.bump(ins.Location, -1)
	case OP_LABEL:
		return nextAdvance, nil
	case OP_JUMP:
		return nextJump(ins.Target), nil
	case OP_JUMP_ZERO:
		return cpu.jumpIf(ins.Target, func(v Value) (bool, error) {
			return v.IsNumber() && v.Number == 0, nil
		})
	case OP_JUMP_NEGATIVE:
		return cpu.jumpIf(ins.Target, func(v Value) (bool, error) {
			if !v.IsNumber() {
				return false, ErrJumpCharacter
			}
			return v.Number < 0, nil
		})
	}

	err = ErrOpInvalid
	return
}

// inbox moves the next inbox value into the register.
func (cpu *Cpu) inbox() (next Next, err error) {
	value, ok := cpu.Inbox.Shift()
	if !ok {
		next = nextHalt
		err = ErrInboxEmpty
		return
	}

	cpu.Register = value
	next = nextAdvance
	return
}

// outbox copies the register to the end of the outbox.
func (cpu *Cpu) outbox() (next Next, err error) {
	if cpu.Register.Empty() {
		err = ErrRegisterEmpty
		return
	}

	cpu.Outbox.Push(cpu.Register)
	next = nextAdvance
	return
}

// copyFrom loads the register from memory.
func (cpu *Cpu) copyFrom(loc Location) (next Next, err error) {
	_, value, err := cpu.load(loc)
	if err != nil {
		return
	}

	cpu.Register = value
	next = nextAdvance
	return
}

// copyTo stores the register into memory.
func (cpu *Cpu) copyTo(loc Location) (next Next, err error) {
	if cpu.Register.Empty() {
		err = ErrRegisterEmpty
		return
	}

	index, err := cpu.Resolve(loc)
	if err != nil {
		return
	}

	cpu.Memory[index] = cpu.Register
	next = nextAdvance
	return
}

// bump adds delta to a numeric memory cell, and copies the result to
// the register.
func (cpu *Cpu) bump(loc Location, delta int) (next Next, err error) {
	index, value, err := cpu.load(loc)
	if err != nil {
		return
	}

	if !value.IsNumber() {
		err = ErrBumpCharacter(index)
		return
	}

	value = Number(value.Number + delta)
	cpu.Memory[index] = value
	cpu.Register = value
	next = nextAdvance
	return
}

// arithmetic replaces the register with alu(register, memory).
func (cpu *Cpu) arithmetic(loc Location, alu func(a, b Value) (Value, error)) (next Next, err error) {
	if cpu.Register.Empty() {
		err = ErrRegisterEmpty
		return
	}

	_, value, err := cpu.load(loc)
	if err != nil {
		return
	}

	result, err := alu(cpu.Register, value)
	if err != nil {
		return
	}

	cpu.Register = result
	next = nextAdvance
	return
}

// jumpIf jumps to target when cond holds for the register.
func (cpu *Cpu) jumpIf(target int, cond func(v Value) (bool, error)) (next Next, err error) {
	if cpu.Register.Empty() {
		err = ErrRegisterEmpty
		return
	}

	taken, err := cond(cpu.Register)
	if err != nil {
		return
	}

	if taken {
		next = nextJump(target)
	} else {
		next = nextAdvance
	}
	return
}
