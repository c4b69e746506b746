package cpu

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// LocationMode is the addressing mode of a memory operand.
type LocationMode int

//go:generate go tool stringer -linecomment -type=LocationMode
const (
	LOC_CELL    = LocationMode(0) // cell
	LOC_ADDRESS = LocationMode(1) // address
)

// Location is a memory operand. A LOC_CELL location names its cell
// directly; a LOC_ADDRESS location names a cell holding the number of
// the target cell.
type Location struct {
	Mode  LocationMode
	Index int
}

// Cell makes a direct Location.
func Cell(index int) Location {
	return Location{Mode: LOC_CELL, Index: index}
}

// Address makes an indirect Location.
func Address(index int) Location {
	return Location{Mode: LOC_ADDRESS, Index: index}
}

func (loc Location) String() string {
	if loc.Mode == LOC_ADDRESS {
		return fmt.Sprintf("[%d]", loc.Index)
	}
	return fmt.Sprintf("%d", loc.Index)
}

// ParseLocation parses "N" as a direct cell and "[N]" as an indirect one.
func ParseLocation(word string) (loc Location, err error) {
	text := strings.TrimSpace(word)
	mode := LOC_CELL
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		mode = LOC_ADDRESS
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	index, err := strconv.ParseInt(text, 0, 32)
	if err != nil || index < 0 {
		err = ErrParseLocation(word)
		return
	}

	loc = Location{Mode: mode, Index: int(index)}
	return
}

// inRange checks a memory index against the size of memory.
func (cpu *Cpu) inRange(index int) (err error) {
	if index < 0 || index >= len(cpu.Memory) {
		err = ErrCellRange(index)
	}
	return
}

// Resolve returns the memory index a Location refers to, following at most
// one level of indirection. The index is always inside memory.
func (cpu *Cpu) Resolve(loc Location) (index int, err error) {
	err = cpu.inRange(loc.Index)
	if err != nil {
		return
	}

	switch loc.Mode {
	case LOC_CELL:
		index = loc.Index
	case LOC_ADDRESS:
		pointer := cpu.Memory[loc.Index]
		switch pointer.Kind {
		case VALUE_NONE:
			err = ErrPointerEmpty(loc.Index)
			return
		case VALUE_CHARACTER:
			err = ErrPointerCharacter(loc.Index)
			return
		}
		index = pointer.Number
		err = cpu.inRange(index)
		if err != nil {
			return
		}
	default:
		err = ErrOperandInvalid
		return
	}

	if cpu.Verbose && loc.Mode == LOC_ADDRESS {
		log.Printf("cpu: %v -> cell %d", loc, index)
	}

	return
}

// load resolves a Location and returns the index and the value stored there.
// An empty cell is an error.
func (cpu *Cpu) load(loc Location) (index int, value Value, err error) {
	index, err = cpu.Resolve(loc)
	if err != nil {
		return
	}

	value = cpu.Memory[index]
	if value.Empty() {
		err = ErrCellEmpty(index)
		return
	}

	return
}
