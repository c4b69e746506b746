package cpu

import (
	"errors"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty              = errors.New(f("ip empty"))
	ErrInboxEmpty           = errors.New(f("inbox empty"))
	ErrRegisterEmpty        = errors.New(f("register holds no value"))
	ErrSumOfCharacters      = errors.New(f("cannot add two characters"))
	ErrNumberMinusCharacter = errors.New(f("cannot subtract a number from a character"))
	ErrJumpCharacter        = errors.New(f("register holds a character, not a number"))
	ErrOpInvalid            = errors.New(f("operation invalid"))

	// Link errors
	ErrOperandInvalid = errors.New(f("operand invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("operand missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrCellRange is a memory index outside of the machine's memory.
type ErrCellRange int

func (err ErrCellRange) Error() string {
	return f("cell %d out of range", int(err))
}

// ErrCellEmpty is a read of a memory cell that holds no value.
type ErrCellEmpty int

func (err ErrCellEmpty) Error() string {
	return f("no value at cell %d", int(err))
}

// ErrPointerEmpty is an indirect access through an empty cell.
type ErrPointerEmpty int

func (err ErrPointerEmpty) Error() string {
	return f("no value at pointer cell %d", int(err))
}

// ErrPointerCharacter is an indirect access through a cell holding a character.
type ErrPointerCharacter int

func (err ErrPointerCharacter) Error() string {
	return f("pointer cell %d must hold a number", int(err))
}

type ErrBumpCharacter int

func (err ErrBumpCharacter) Error() string {
	return f("cannot bump the character in cell %d", int(err))
}

type ErrCharacterInvalid rune

func (err ErrCharacterInvalid) Error() string {
	return f("'%c' is not a letter", rune(err))
}

// ErrOverflow is a character arithmetic result past 'z'.
type ErrOverflow struct {
	A  Value
	Op string
	B  Value
}

func (err ErrOverflow) Error() string {
	return f("overflow: %v %v %v is not representable as a letter", err.A, err.Op, err.B)
}

// ErrUnderflow is a character arithmetic result before 'a'.
type ErrUnderflow struct {
	A  Value
	Op string
	B  Value
}

func (err ErrUnderflow) Error() string {
	return f("underflow: %v %v %v is not representable as a letter", err.A, err.Op, err.B)
}

type ErrTargetRange int

func (err ErrTargetRange) Error() string {
	return f("jump target %d out of range", int(err))
}

// ErrExecute is an operator failure, annotated with the failing instruction.
type ErrExecute struct {
	Instruction Instruction
	Err         error
}

func (err *ErrExecute) Error() string {
	return f("%v: %v", err.Instruction, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}

// ErrLink is a load-time failure of a single instruction.
type ErrLink struct {
	LineNo int
	Err    error
}

func (err *ErrLink) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrLink) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a number or a single character", string(err))
}

type ErrParseLocation string

func (err ErrParseLocation) Error() string {
	return f("'%v' is not a cell or [cell]", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
