package io

import (
	"errors"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	ErrFormatUnknown  = errors.New(f("unknown file format"))
	ErrMemorySyntax   = errors.New(f("memory must be a list or a table of cell to value"))
	ErrSizeInvalid    = errors.New(f("memory size invalid"))
	ErrOperandMissing = errors.New(f("operand missing"))
)

// ErrInbox is a bad inbox entry.
type ErrInbox struct {
	Index int
	Err   error
}

func (err *ErrInbox) Error() string {
	return f("inbox %d: %v", err.Index, err.Err)
}

func (err *ErrInbox) Unwrap() error {
	return err.Err
}

// ErrMemory is a bad memory entry.
type ErrMemory struct {
	Cell string
	Err  error
}

func (err *ErrMemory) Error() string {
	return f("memory %v: %v", err.Cell, err.Err)
}

func (err *ErrMemory) Unwrap() error {
	return err.Err
}
