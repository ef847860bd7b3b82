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

import "fmt"

// ImmKind describes how an opcode's immediate bytes are laid out.
type ImmKind int

const (
	// ImmNone: no immediate bytes.
	ImmNone ImmKind = iota
	// ImmByte: one raw byte (scratch slot, constant-pool index, small field tag).
	ImmByte
	// ImmByte2: two raw bytes (e.g. gtxn's group/field, txna's field/array-index, extract's start/length).
	ImmByte2
	// ImmUint: ULEB128-encoded unsigned integer.
	ImmUint
	// ImmBytes: ULEB128 length prefix followed by that many raw bytes (pushbytes).
	ImmBytes
	// ImmLabel: signed 16-bit big-endian branch offset, relative to the byte after the immediate.
	ImmLabel
	// ImmSwitch: a count byte followed by that many 16-bit offsets (switch/match).
	ImmSwitch
	// ImmIntBlock: the intcblock prelude encoding (count + ULEB128 values).
	ImmIntBlock
	// ImmByteBlock is the bytecblock variant of ImmIntBlock.
	ImmByteBlock
	// ImmSignedByte: one signed byte (frame_dig/frame_bury offsets).
	ImmSignedByte
	// ImmTwoBytes: two unsigned bytes (proto's args/returns counts).
	ImmTwoBytes
	// ImmThreeBytes: three unsigned bytes (gtxna's group/field/array-index).
	ImmThreeBytes
)

// ControlOutcome is the result of an opcode's semantics function: whether
// execution continues, branches, halts, or faults.
type ControlOutcome struct {
	kind    controlKind
	target  int  // for branch
	verdict bool // for halt
	err     error
}

type controlKind int

const (
	ctrlContinue controlKind = iota
	ctrlBranch
	ctrlHalt
	ctrlError
)

// Continue resumes normal pc advancement.
func Continue() ControlOutcome { return ControlOutcome{kind: ctrlContinue} }

// BranchTo jumps to an absolute program offset.
func BranchTo(target int) ControlOutcome { return ControlOutcome{kind: ctrlBranch, target: target} }

// Halt ends the run with a verdict.
func Halt(verdict bool) ControlOutcome { return ControlOutcome{kind: ctrlHalt, verdict: verdict} }

// Fail ends the run with a fatal error.
func Fail(err error) ControlOutcome { return ControlOutcome{kind: ctrlError, err: err} }

// semanticsFunc executes one opcode's effect on cx, given its already-decoded
// immediates (found on cx.imm). It must not advance cx.pc itself except via
// the returned ControlOutcome.
type semanticsFunc func(cx *EvalContext) ControlOutcome

// OpSpec is one opcode's complete specification: identity, typing, cost,
// immediate layout and the function that executes it. The registry (opcode
// byte -> *OpSpec) is built once at package init and treated as read-only
// thereafter; there is no global mutable state beyond that one-time build.
type OpSpec struct {
	Opcode     byte
	Name       string
	MinVersion uint64
	Cost       int
	Pops       []StackType
	Pushes     []StackType
	Imm        ImmKind
	Modes      RunMode
	run        semanticsFunc
}

// Size returns the total instruction length (opcode byte + immediates) for
// fixed-size encodings; variable-length encodings (ImmBytes, ImmSwitch,
// ImmIntBlock/ImmByteBlock) return 0 and must be measured during decode.
func (s *OpSpec) Size() int {
	switch s.Imm {
	case ImmNone:
		return 1
	case ImmByte, ImmSignedByte:
		return 2
	case ImmByte2, ImmTwoBytes:
		return 3
	case ImmThreeBytes:
		return 4
	case ImmLabel:
		return 3
	case ImmUint, ImmBytes, ImmSwitch, ImmIntBlock, ImmByteBlock:
		return 0
	default:
		return 0
	}
}

// opRegistry maps opcode byte to spec. Built once in init(); never mutated
// after that, so concurrent reads from many interpreter runs are safe.
var opRegistry [256]*OpSpec

func register(s OpSpec) {
	cp := s
	if opRegistry[s.Opcode] != nil {
		panic(fmt.Sprintf("duplicate opcode registration for 0x%02x (%s)", s.Opcode, s.Name))
	}
	opRegistry[s.Opcode] = &cp
}

// LookupOpcode returns the spec for an opcode byte, or false if the byte is
// unassigned in this build's opcode table.
func LookupOpcode(b byte) (*OpSpec, bool) {
	s := opRegistry[b]
	return s, s != nil
}

// LookupMnemonic returns the spec for an assembler mnemonic, or false. Each
// mnemonic is registered under exactly one opcode byte, so this returns the
// first (and only) registry entry whose name matches.
func LookupMnemonic(name string) (*OpSpec, bool) {
	for _, s := range opRegistry {
		if s != nil && s.Name == name {
			return s, true
		}
	}
	return nil, false
}
