package io

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ezrec/hrm/cpu"
)

// jsonOpcode is a single entry of a JSON program.
type jsonOpcode struct {
	Operation string `json:"operation"`
	Operand   any    `json:"operand"`
}

// ReadProgram reads a JSON program: a list of operation and operand
// pairs. Operands are a cell ("3"), an indirect cell ("[3]"), or a label.
func ReadProgram(input io.Reader) (prog *cpu.Program, err error) {
	var entries []jsonOpcode
	err = json.NewDecoder(input).Decode(&entries)
	if err != nil {
		return
	}

	prog = &cpu.Program{}
	for n, entry := range entries {
		var ins cpu.Instruction
		ins, err = entry.instruction()
		if err != nil {
			err = &cpu.ErrSyntax{LineNo: n + 1, Line: entry.String(), Err: err}
			prog = nil
			return
		}
		prog.Opcodes = append(prog.Opcodes, cpu.Opcode{
			LineNo:      n + 1,
			Words:       strings.Fields(entry.String()),
			Instruction: ins,
		})
	}

	return
}

func (entry jsonOpcode) String() string {
	if entry.Operand == nil {
		return entry.Operation
	}
	return fmt.Sprintf("%v %v", entry.Operation, entry.Operand)
}

// instruction converts a JSON entry.
func (entry jsonOpcode) instruction() (ins cpu.Instruction, err error) {
	op, ok := cpu.ParseOp(entry.Operation)
	if !ok {
		err = cpu.ErrInstructionInvalid
		return
	}

	var operand string
	switch value := entry.Operand.(type) {
	case nil:
	case string:
		operand = strings.TrimSpace(value)
	case float64:
		if value != math.Trunc(value) {
			err = cpu.ErrOperandInvalid
			return
		}
		operand = fmt.Sprintf("%d", int(value))
	default:
		err = cpu.ErrOperandInvalid
		return
	}

	needed := op.HasLocation() || op.IsJump() || op == cpu.OP_LABEL
	switch {
	case needed && len(operand) == 0:
		err = ErrOperandMissing
		return
	case !needed && len(operand) != 0:
		err = cpu.ErrOpcodeExtraArgs
		return
	}

	switch {
	case op.HasLocation():
		var loc cpu.Location
		loc, err = cpu.ParseLocation(operand)
		if err != nil {
			return
		}
		ins = cpu.MakeMemory(op, loc)
	case op.IsJump():
		target, num_err := strconv.Atoi(operand)
		if num_err == nil {
			ins = cpu.MakeJump(op, target)
		} else {
			ins = cpu.MakeJumpLabel(op, operand)
		}
	case op == cpu.OP_LABEL:
		ins = cpu.MakeLabel(operand)
	default:
		ins = cpu.Instruction{Op: op}
	}

	return
}

// LoadProgram reads a program file. Files ending in .json are JSON
// programs, anything else is assembled by asm.
func LoadProgram(path string, asm *cpu.Assembler) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		prog, err = ReadProgram(inf)
	} else {
		prog, err = asm.Parse(inf)
	}
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}
