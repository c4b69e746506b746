package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"
)

const (
	MEMORY_SIZE_DEFAULT = 16 // Memory cells when a configuration gives none.
)

// Cpu is the simulation context of the machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register Value   // Accumulator, empty until the first inbox.
	Inbox    Tape    // Input tape, consumed from the front.
	Outbox   Tape    // Output tape, append only.
	Memory   []Value // Memory cells, empty cells hold no value.
	Ip       int     // Index of the next instruction to execute.

	Ticks int // Count of successfully applied instructions.
}

// NewCpu creates a new CPU with a specifically sized memory.
func NewCpu(size uint) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: make([]Value, size),
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"MEMORY_SIZE": fmt.Sprintf("%d", len(cpu.Memory)),
	})
}

// Reset the CPU state.
//   - Clears the register and the outbox.
//   - Loads the inbox.
//   - Loads memory; missing cells are left empty.
//   - Zeros the instruction pointer and the tick counter.
func (cpu *Cpu) Reset(inbox []Value, memory []Value) (err error) {
	if len(memory) > len(cpu.Memory) {
		err = ErrCellRange(len(memory) - 1)
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: reset, %d inbox values, %d memory cells", len(inbox), len(cpu.Memory))
	}

	cpu.Register = Value{}
	cpu.Inbox.Reset(inbox...)
	cpu.Outbox.Reset()
	clear(cpu.Memory)
	copy(cpu.Memory, memory)
	cpu.Ip = 0
	cpu.Ticks = 0

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	values := func(vals []Value) string {
		strs := make([]string, len(vals))
		for n, val := range vals {
			strs[n] = val.String()
		}
		return "[" + strings.Join(strs, " ") + "]"
	}

	regs := []string{"ip", "ticks", "reg", "inbox", "outbox", "memory"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%d", cpu.Ip)
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		case "reg":
			strval = cpu.Register.String()
		case "inbox":
			strval = values(cpu.Inbox.Data)
		case "outbox":
			strval = values(cpu.Outbox.Data)
		case "memory":
			strval = values(cpu.Memory)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// Snapshot is a copy of the machine state, safe to keep after the
// machine moves on.
type Snapshot struct {
	Register Value   `json:"register"`
	Inbox    []Value `json:"inbox"`
	Outbox   []Value `json:"outbox"`
	Memory   []Value `json:"memory"`
	Ip       int     `json:"ip"`
	Ticks    int     `json:"ticks"`
}

// Snapshot copies the current state.
func (cpu *Cpu) Snapshot() Snapshot {
	return Snapshot{
		Register: cpu.Register,
		Inbox:    cpu.Inbox.Values(),
		Outbox:   cpu.Outbox.Values(),
		Memory:   append([]Value{}, cpu.Memory...),
		Ip:       cpu.Ip,
		Ticks:    cpu.Ticks,
	}
}

// Apply moves the instruction pointer as requested by an operator.
// FLOW_HALT leaves it where it is.
func (cpu *Cpu) Apply(next Next) {
	switch next.Flow {
	case FLOW_ADVANCE:
		cpu.Ip++
	case FLOW_JUMP:
		cpu.Ip = next.Target
	}
}
