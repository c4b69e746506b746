package cpu

// Tape is a sequence of values. The inbox is read from the front with
// Shift, the outbox is written to the back with Push.
type Tape struct {
	Data []Value
}

// Push appends a value to the end of the tape.
func (t *Tape) Push(value Value) {
	t.Data = append(t.Data, value)
}

// Shift removes and returns the value at the front of the tape.
func (t *Tape) Shift() (value Value, ok bool) {
	value, ok = t.Peek()
	if ok {
		t.Data = t.Data[1:]
	}
	return
}

// Peek returns the value at the front of the tape.
func (t *Tape) Peek() (value Value, ok bool) {
	if t.Empty() {
		return
	}

	return t.Data[0], true
}

func (t *Tape) Empty() bool {
	return len(t.Data) == 0
}

func (t *Tape) Len() int {
	return len(t.Data)
}

// Reset replaces the contents of the tape with a copy of values.
func (t *Tape) Reset(values ...Value) {
	t.Data = append([]Value(nil), values...)
}

// Values returns a copy of the tape contents.
func (t *Tape) Values() []Value {
	return append([]Value{}, t.Data...)
}
