// Copyright (C) 2019-2022 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package avm

import (
	"errors"
	"fmt"

	"github.com/algorand-avm/tealvm/internal/serr"
)

// ErrorKind enumerates the fatal fault categories a run can end in. Every
// kind here is terminal: there is no in-program recovery from any of them.
type ErrorKind int

const (
	// UnsupportedVersion: program version exceeds the interpreter/config max,
	// or is outside the supported 1..=10 range.
	UnsupportedVersion ErrorKind = iota
	// InvalidOpcode: unknown opcode, or one below its minimum program version.
	InvalidOpcode
	// TruncatedProgram: an immediate's decode runs past the end of the program.
	TruncatedProgram
	// TypeError: an opcode was handed a value of the wrong shape.
	TypeError
	// StackUnderflow: a pop was attempted against too few stack elements.
	StackUnderflow
	// StackOverflow: a push was attempted against a full (1000-deep) stack.
	StackOverflow
	// CallStackOverflow: callsub was attempted at call-stack depth 8.
	CallStackOverflow
	// CallStackUnderflow: retsub was attempted against an empty call stack.
	CallStackUnderflow
	// ArithmeticOverflow: +, -, or * wrapped past the uint64 range.
	ArithmeticOverflow
	// DivisionByZero: / or % was given a zero divisor.
	DivisionByZero
	// CostBudgetExceeded: the next instruction's cost would drive the budget negative.
	CostBudgetExceeded
	// AssertFailed: assert popped a zero value.
	AssertFailed
	// ModeError: an opcode ran in a mode it is not permitted in.
	ModeError
	// BytesTooLong: a byte-string value exceeds MaxByteStringLen.
	BytesTooLong
	// BranchOutOfBounds: a branch target lies outside the program or inside an instruction.
	BranchOutOfBounds
	// ExecutionFailed: the explicit err opcode fired.
	ExecutionFailed
)

var errorKindNames = map[ErrorKind]string{
	UnsupportedVersion: "UnsupportedVersion",
	InvalidOpcode:       "InvalidOpcode",
	TruncatedProgram:    "TruncatedProgram",
	TypeError:           "TypeError",
	StackUnderflow:      "StackUnderflow",
	StackOverflow:       "StackOverflow",
	CallStackOverflow:   "CallStackOverflow",
	CallStackUnderflow:  "CallStackUnderflow",
	ArithmeticOverflow:  "ArithmeticOverflow",
	DivisionByZero:      "DivisionByZero",
	CostBudgetExceeded:  "CostBudgetExceeded",
	AssertFailed:        "AssertFailed",
	ModeError:           "ModeError",
	BytesTooLong:        "BytesTooLong",
	BranchOutOfBounds:   "BranchOutOfBounds",
	ExecutionFailed:     "ExecutionFailed",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the runtime fault type surfaced by the interpreter. It carries the
// program counter at which the fault occurred, in addition to serr's
// message/attribute bag.
type Error struct {
	Cause *serr.Error
	Kind  ErrorKind
	PC    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at pc=%d: %s", e.Kind, e.PC, e.Cause.Error())
}

// Unwrap exposes the structured cause to errors.As/errors.Is.
func (e *Error) Unwrap() error { return e.Cause }

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Cause: serr.New(fmt.Sprintf(format, args...)), Kind: kind}
}

func newErrorPC(kind ErrorKind, pc int, format string, args ...any) *Error {
	e := newError(kind, format, args...)
	e.PC = pc
	return e
}

// KindOf returns the ErrorKind of err if it is (or wraps) an *avm.Error, and
// reports whether that was the case.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// AssemblyError is raised only by package asm; kept here so both packages
// share one taxonomy type the CLI can type-switch on.
type AssemblyError struct {
	Cause *serr.Error
}

func (e *AssemblyError) Error() string {
	return "assembly error: " + e.Cause.Error()
}

// Unwrap exposes the structured cause to errors.As/errors.Is.
func (e *AssemblyError) Unwrap() error { return e.Cause }

// NewAssemblyError constructs an AssemblyError with the given message and
// serr-style key/value attributes.
func NewAssemblyError(msg string, pairs ...any) *AssemblyError {
	return &AssemblyError{Cause: serr.New(msg, pairs...)}
}
