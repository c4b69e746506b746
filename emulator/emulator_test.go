package emulator

import (
	"encoding/json"
	"maps"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hrm/cpu"
)

// program wraps bare instructions, one per line.
func program(code ...cpu.Instruction) (prog *cpu.Program) {
	prog = &cpu.Program{}
	for n, ins := range code {
		prog.Opcodes = append(prog.Opcodes, cpu.Opcode{LineNo: n + 1, Instruction: ins})
	}
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(MEMORY_SIZE)

	assert.False(emu.Verbose)
	assert.Equal(MEMORY_SIZE, len(emu.Cpu.Memory))
	assert.Equal(HALT_END, emu.Halt())

	done, err := emu.Tick()
	assert.True(done)
	assert.NoError(err)

	emu.MaxTicks = 100
	defines := maps.Collect(emu.Defines())
	assert.Equal("100", defines["MAX_TICKS"])
	assert.Equal("16", defines["MEMORY_SIZE"])
}

func TestEmulatorDouble(t *testing.T) {
	assert := assert.New(t)

	code := []cpu.Instruction{
		cpu.MakeInbox(),
		cpu.MakeMemory(cpu.OP_COPYTO, cpu.Cell(0)),
		cpu.MakeMemory(cpu.OP_ADD, cpu.Cell(0)),
		cpu.MakeOutbox(),
	}

	emu := NewEmulator(MEMORY_SIZE)
	err := emu.Load(program(code...), []cpu.Value{cpu.Number(8)}, nil)
	assert.NoError(err)
	assert.Equal(HALT_NONE, emu.Halt())

	err = emu.Run()
	assert.NoError(err)
	assert.Equal(HALT_END, emu.Halt())
	assert.True(emu.Halt().Success())
	assert.Equal([]cpu.Value{cpu.Number(16)}, emu.Cpu.Outbox.Data)
	assert.Equal(4, emu.Cpu.Ticks)

	// Looping back asks the empty inbox for more.
	code = append(code, cpu.MakeJump(cpu.OP_JUMP, 0))
	err = emu.Load(program(code...), []cpu.Value{cpu.Number(8)}, nil)
	assert.NoError(err)

	err = emu.Run()
	assert.NoError(err)
	assert.Equal(HALT_INBOX, emu.Halt())
	assert.NoError(emu.Err())
	assert.Equal([]cpu.Value{cpu.Number(16)}, emu.Cpu.Outbox.Data)
	assert.Equal(5, emu.Cpu.Ticks)
	assert.Equal(0, emu.Cpu.Ip)
}

func TestEmulatorErrorHalt(t *testing.T) {
	assert := assert.New(t)

	code := []cpu.Instruction{
		cpu.MakeInbox(),
		cpu.MakeMemory(cpu.OP_ADD, cpu.Cell(1)),
	}

	emu := NewEmulator(2)
	err := emu.Load(program(code...), []cpu.Value{cpu.Number(1), cpu.Number(2)}, nil)
	assert.NoError(err)

	done, err := emu.Tick()
	assert.False(done)
	assert.NoError(err)

	before := emu.State()

	done, err = emu.Tick()
	assert.True(done)
	assert.ErrorIs(err, cpu.ErrCellEmpty(1))

	var rerr *ErrRuntime
	if assert.ErrorAs(err, &rerr) {
		assert.Equal(2, rerr.LineNo)
		assert.Equal(1, rerr.Ip)
	}
	assert.Equal(HALT_ERROR, emu.Halt())
	assert.False(emu.Halt().Success())
	assert.Equal(err, emu.Err())

	after := emu.State()
	assert.Equal(before.Snapshot, after.Snapshot)
	assert.Equal(err.Error(), after.Error)
}

func TestEmulatorHaltIdempotent(t *testing.T) {
	assert := assert.New(t)

	traced := 0

	for _, code := range [][]cpu.Instruction{
		{cpu.MakeOutbox()},
		{cpu.MakeInbox()},
		{cpu.MakeLabel("end")},
	} {
		emu := NewEmulator(1)
		emu.Trace = func(state State) { traced++ }
		err := emu.Load(program(code...), nil, nil)
		assert.NoError(err)

		_ = emu.Run()
		assert.True(emu.Halt().Halted())

		halt := emu.Halt()
		state := emu.State()
		count := traced

		for range 3 {
			done, err := emu.Tick()
			assert.True(done)
			assert.NoError(err)
		}

		assert.Equal(halt, emu.Halt())
		assert.Equal(state, emu.State())
		assert.Equal(count, traced)
	}
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	code := []cpu.Instruction{
		cpu.MakeLabel("spin"),
		cpu.MakeJumpLabel(cpu.OP_JUMP, "spin"),
	}

	emu := NewEmulator(1)
	emu.MaxTicks = 10
	err := emu.Load(program(code...), nil, nil)
	assert.NoError(err)

	err = emu.Run()
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(HALT_ERROR, emu.Halt())
	assert.Equal(10, emu.Cpu.Ticks)
}

func TestEmulatorLoad(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(2)

	err := emu.Load(program(cpu.MakeJumpLabel(cpu.OP_JUMP, "gone")), nil, nil)
	assert.ErrorIs(err, cpu.ErrLabelMissing("gone"))
	assert.Equal(HALT_ERROR, emu.Halt())

	done, err := emu.Tick()
	assert.True(done)
	assert.NoError(err)
	assert.Equal(0, emu.Cpu.Ticks)

	err = emu.Load(program(cpu.MakeMemory(cpu.OP_COPYTO, cpu.Cell(2))), nil, nil)
	assert.ErrorIs(err, cpu.ErrCellRange(2))

	err = emu.Load(program(cpu.MakeInbox()), nil, make([]cpu.Value, 3))
	assert.ErrorIs(err, cpu.ErrCellRange(2))
	assert.Equal(HALT_ERROR, emu.Halt())

	err = emu.Load(program(), nil, nil)
	assert.NoError(err)
	assert.Equal(HALT_END, emu.Halt())
}

func TestEmulatorTrace(t *testing.T) {
	assert := assert.New(t)

	var states []State

	emu := NewEmulator(1)
	emu.Trace = func(state State) { states = append(states, state) }

	code := []cpu.Instruction{
		cpu.MakeInbox(),
		cpu.MakeOutbox(),
	}
	err := emu.Load(program(code...), []cpu.Value{cpu.Character('h')}, nil)
	assert.NoError(err)

	err = emu.Run()
	assert.NoError(err)

	expected := []State{
		{
			Snapshot: cpu.Snapshot{
				Register: cpu.Character('h'),
				Memory:   []cpu.Value{{}},
				Ip:       1,
				Ticks:    1,
			},
			Halt: HALT_NONE,
		},
		{
			Snapshot: cpu.Snapshot{
				Register: cpu.Character('h'),
				Outbox:   []cpu.Value{cpu.Character('h')},
				Memory:   []cpu.Value{{}},
				Ip:       2,
				Ticks:    2,
			},
			Halt: HALT_END,
		},
	}

	if diff := cmp.Diff(expected, states, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestEmulatorAssembler(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		inbox   []cpu.Value
		memory  []cpu.Value
		outbox  []cpu.Value
		halt    Halt
	}){
		{
			name: "pairs",
			program: []string{
				"loop:",
				"    inbox",
				"    copyto 0",
				"    inbox",
				"    add 0",
				"    outbox",
				"    jump loop",
			},
			inbox:  []cpu.Value{cpu.Number(1), cpu.Number(2), cpu.Number(3), cpu.Number(4)},
			outbox: []cpu.Value{cpu.Number(3), cpu.Number(7)},
			halt:   HALT_INBOX,
		},
		{
			name: "shift",
			program: []string{
				"loop: inbox",
				"    add 0",
				"    outbox",
				"    jump loop",
			},
			inbox:  []cpu.Value{cpu.Character('a'), cpu.Character('Y')},
			memory: []cpu.Value{cpu.Number(1)},
			outbox: []cpu.Value{cpu.Character('b'), cpu.Character('Z')},
			halt:   HALT_INBOX,
		},
		{
			name: "string",
			program: []string{
				".equ PTR 0",
				"loop:",
				"    copyfrom [PTR]",
				"    jumpz done",
				"    outbox",
				"    bump+ PTR",
				"    jump loop",
				"done:",
			},
			memory: []cpu.Value{cpu.Number(2), {}, cpu.Character('h'), cpu.Character('i'), cpu.Number(0)},
			outbox: []cpu.Value{cpu.Character('h'), cpu.Character('i')},
			halt:   HALT_END,
		},
		{
			name: "negative",
			program: []string{
				"    inbox",
				"    jumpn done",
				"    outbox",
				"done:",
				"    inbox",
				"    jumpn done",
			},
			inbox:  []cpu.Value{cpu.Character('x')},
			outbox: nil,
			halt:   HALT_ERROR,
		},
	}

	for _, entry := range table {
		emu := NewEmulator(MEMORY_SIZE)

		asm := &cpu.Assembler{}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}

		prog, err := asm.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
		if !assert.NoError(err, entry.name) {
			continue
		}

		err = emu.Load(prog, entry.inbox, entry.memory)
		assert.NoError(err, entry.name)

		err = emu.Run()
		if entry.halt == HALT_ERROR {
			assert.Error(err, entry.name)
		} else {
			assert.NoError(err, entry.name)
		}
		assert.Equal(entry.halt, emu.Halt(), entry.name)
		assert.Equal(entry.outbox, emu.Cpu.Outbox.Data, entry.name)
	}
}

func TestHaltText(t *testing.T) {
	assert := assert.New(t)

	for _, halt := range []Halt{HALT_NONE, HALT_END, HALT_INBOX, HALT_ERROR} {
		text, err := halt.MarshalText()
		assert.NoError(err)

		var decoded Halt
		err = decoded.UnmarshalText(text)
		assert.NoError(err)
		assert.Equal(halt, decoded)
	}

	var decoded Halt
	assert.ErrorIs(decoded.UnmarshalText([]byte("sideways")), ErrHaltUnknown)

	data, err := json.Marshal(State{Halt: HALT_INBOX})
	assert.NoError(err)
	assert.True(strings.Contains(string(data), `"halt":"inbox"`), string(data))
}
