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

import "encoding/binary"

// Program is a loaded, version-checked byte stream ready to execute. Callers
// obtain one via LoadProgram; Eval takes a *Program rather than a raw []byte
// so the version-prefix parsing and instruction-boundary scan happen exactly
// once even if a program is run many times (e.g. once per group member).
type Program struct {
	Bytes   []byte // full byte stream, including the version prefix
	Version uint64
	Body    []byte // Bytes[headerLen:], the instruction stream
	// instrStart[pc] is true iff pc (an offset into Body) is the first byte
	// of an instruction. Computed once by a linear scan so branch targets can
	// be validated against it in O(1) instead of re-walking the program on
	// every jump.
	instrStart []bool
}

// LoadProgram parses the ULEB128 version prefix, validates it against
// maxVersion, and pre-scans the instruction stream to find legal branch
// targets. It does not execute anything.
func LoadProgram(bytecode []byte, maxVersion uint64) (*Program, error) {
	version, n := binary.Uvarint(bytecode)
	if n <= 0 {
		return nil, newError(TruncatedProgram, "missing or malformed version prefix")
	}
	if version < MinVersion || version > MaxVersion {
		return nil, newError(UnsupportedVersion, "program version %d outside supported range %d..%d", version, MinVersion, MaxVersion)
	}
	if version > maxVersion {
		return nil, newError(UnsupportedVersion, "program version %d exceeds configured max %d", version, maxVersion)
	}

	p := &Program{
		Bytes:   bytecode,
		Version: version,
		Body:    bytecode[n:],
	}
	if err := p.scanInstructionStarts(); err != nil {
		return nil, err
	}
	return p, nil
}

// scanInstructionStarts walks Body once, decoding each instruction's size
// (without invoking any semantics), and records every offset at which an
// instruction begins. This is what lets the interpreter reject a branch that
// would land inside an instruction's immediate bytes as BranchOutOfBounds
// rather than silently misinterpreting immediate bytes as a fresh opcode.
func (p *Program) scanInstructionStarts() error {
	p.instrStart = make([]bool, len(p.Body)+1)
	pc := 0
	for pc < len(p.Body) {
		p.instrStart[pc] = true
		spec, ok := LookupOpcode(p.Body[pc])
		if !ok {
			// Unknown opcodes are reported lazily at dispatch time (so a
			// branch that never actually reaches dead code full of unknown
			// bytes doesn't spuriously fail to load); treat it here as a
			// single byte so the scan can continue.
			pc++
			continue
		}
		size, err := instructionSize(p.Body, pc, spec)
		if err != nil {
			return err
		}
		pc += size
	}
	p.instrStart[len(p.Body)] = true // one-past-the-end is a legal landing spot (halts)
	return nil
}

// isInstructionStart reports whether pc is 0, len(Body), or the start of a
// decoded instruction.
func (p *Program) isInstructionStart(pc int) bool {
	if pc < 0 || pc >= len(p.instrStart) {
		return false
	}
	return p.instrStart[pc]
}
