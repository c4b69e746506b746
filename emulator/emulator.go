// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/hrm/cpu"
	"github.com/ezrec/hrm/internal"
)

const (
	MEMORY_SIZE = cpu.MEMORY_SIZE_DEFAULT // Default memory cells.
)

// State is the machine state after a tick, with the emulator's halt state.
type State struct {
	cpu.Snapshot
	Halt  Halt   `json:"halt"`
	Error string `json:"error,omitempty"`
}

// Emulator steps a CPU through a linked program.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	MaxTicks int               // If non-zero, the run fails after this many ticks.
	Trace    func(state State) // If set, called after every tick.

	code []cpu.Instruction
	halt Halt
	err  error
}

// NewEmulator creates a new emulator with size memory cells.
func NewEmulator(size uint) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(size),
		Program: &cpu.Program{},
		halt:    HALT_END,
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"MAX_TICKS": fmt.Sprintf("%d", emu.MaxTicks),
	}
	return internal.IterSeq2Concat(maps.All(defines),
		emu.Cpu.Defines(),
	)
}

// Load links a program against the CPU's memory, and resets the machine
// with the given inbox and memory contents. Nothing runs if the program
// fails to link.
func (emu *Emulator) Load(prog *cpu.Program, inbox []cpu.Value, memory []cpu.Value) (err error) {
	code, err := prog.Link(len(emu.Cpu.Memory))
	if err != nil {
		emu.code = nil
		emu.halt = HALT_ERROR
		emu.err = err
		return
	}

	emu.Program = prog
	emu.code = code

	return emu.Reset(inbox, memory)
}

// Reset restarts the loaded program with the given inbox and memory.
func (emu *Emulator) Reset(inbox []cpu.Value, memory []cpu.Value) (err error) {
	if emu.code == nil && len(emu.Program.Opcodes) != 0 {
		err = ErrNotLoaded
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	err = emu.Cpu.Reset(inbox, memory)
	if err != nil {
		emu.halt = HALT_ERROR
		emu.err = err
		return
	}

	emu.err = nil
	emu.halt = HALT_NONE
	if len(emu.code) == 0 {
		emu.halt = HALT_END
	}

	return
}

// Halt returns the current halt state.
func (emu *Emulator) Halt() Halt {
	return emu.halt
}

// Err returns the error that halted the emulator, if any.
func (emu *Emulator) Err() error {
	return emu.err
}

// Code returns the linked instructions.
func (emu *Emulator) Code() []cpu.Instruction {
	return emu.code
}

// Instruction returns the instruction at the instruction pointer.
func (emu *Emulator) Instruction() (ins cpu.Instruction, ok bool) {
	ip := emu.Cpu.Ip
	if ip < 0 || ip >= len(emu.code) {
		return
	}

	return emu.code[ip], true
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Ip)
}

// State returns a copy of the current state.
func (emu *Emulator) State() (state State) {
	state = State{
		Snapshot: emu.Cpu.Snapshot(),
		Halt:     emu.halt,
	}
	if emu.err != nil {
		state.Error = emu.err.Error()
	}

	return
}

// fetch returns the instruction at the instruction pointer.
func (emu *Emulator) fetch() (ins cpu.Instruction, err error) {
	ins, ok := emu.Instruction()
	if !ok {
		err = cpu.ErrIpEmpty
	}
	return
}

// Tick performs a single tick of the emulator.
//
// done is set once the emulator has halted. A graceful halt (end of
// program, or an empty inbox) has no error. Ticking a halted emulator
// does nothing.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.halt.Halted() {
		done = true
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Cpu.Ip
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Ip: ip, Err: err}
			emu.halt = HALT_ERROR
			emu.err = err
		}
		if emu.Verbose && emu.halt.Halted() {
			log.Printf("emulator: halt %v after %d ticks", emu.halt, emu.Cpu.Ticks)
		}
		done = emu.halt.Halted()
		if emu.Trace != nil {
			emu.Trace(emu.State())
		}
	}()

	if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	ins, err := emu.fetch()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		emu.halt = HALT_END
		return
	}

	next, err := emu.Cpu.Execute(ins)
	if err != nil {
		if next.Flow == cpu.FLOW_HALT {
			if emu.Verbose {
				log.Printf("emulator: %v", err)
			}
			err = nil
			emu.halt = HALT_INBOX
		}
		return
	}

	emu.Cpu.Apply(next)
	emu.Cpu.Ticks++

	if emu.Cpu.Ip >= len(emu.code) {
		emu.halt = HALT_END
	}

	return
}

// Run ticks the emulator until it halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
