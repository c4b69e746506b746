package emulator

// Halt is the run state of the emulator.
type Halt int

//go:generate go tool stringer -linecomment -type=Halt
const (
	HALT_NONE  = Halt(0) // running
	HALT_END   = Halt(1) // end
	HALT_INBOX = Halt(2) // inbox
	HALT_ERROR = Halt(3) // error
)

// Halted is true once the emulator has stopped, for any reason.
func (h Halt) Halted() bool {
	return h != HALT_NONE
}

// Success is true if the program ran off the end of its instructions,
// or stopped because its inbox was empty.
func (h Halt) Success() bool {
	return h == HALT_END || h == HALT_INBOX
}

// MarshalText encodes the halt state by name.
func (h Halt) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes a halt state name.
func (h *Halt) UnmarshalText(text []byte) error {
	for _, halt := range []Halt{HALT_NONE, HALT_END, HALT_INBOX, HALT_ERROR} {
		if halt.String() == string(text) {
			*h = halt
			return nil
		}
	}
	return ErrHaltUnknown
}
