// Package cpu implements the accumulator machine and its assembler.
//
// The machine consists of a single accumulator register, an inbox tape that
// is consumed front to back, an outbox tape that is only ever appended to, a
// fixed number of memory cells, and an instruction pointer (Ip). Values are
// either signed numbers or single letters. Memory operands address a cell
// directly, or indirectly through a cell that holds the index of the target.
//
// Programs are sequences of Instruction. Labels occupy a position in the
// sequence and are resolved to absolute jump targets once, by Program.Link,
// before anything executes.
//
// The assembler provides a small line oriented language for these programs,
// supporting labels, equates, and compile-time expression evaluation.
package cpu
