package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.True(tape.Empty())

	_, ok := tape.Shift()
	assert.False(ok)

	tape.Push(Number(1))
	tape.Push(Character('b'))
	assert.Equal(2, tape.Len())

	value, ok := tape.Peek()
	assert.True(ok)
	assert.Equal(Number(1), value)

	value, ok = tape.Shift()
	assert.True(ok)
	assert.Equal(Number(1), value)

	value, ok = tape.Shift()
	assert.True(ok)
	assert.Equal(Character('b'), value)
	assert.True(tape.Empty())
}

func TestTapeReset(t *testing.T) {
	assert := assert.New(t)

	values := []Value{Number(1), Number(2)}

	tape := &Tape{}
	tape.Reset(values...)
	tape.Shift()
	assert.Equal(Number(1), values[0])

	copied := tape.Values()
	copied[0] = Number(99)
	assert.Equal([]Value{Number(2)}, tape.Data)

	tape.Reset()
	assert.True(tape.Empty())
}
