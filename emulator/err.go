package emulator

import (
	"errors"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	ErrTickLimit   = errors.New(f("tick limit reached"))
	ErrNotLoaded   = errors.New(f("no program loaded"))
	ErrHaltUnknown = errors.New(f("unknown halt state"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Ip     int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d (ip %d) %v", err.LineNo, err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
