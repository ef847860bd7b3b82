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

// Package asm assembles TEAL source text into loadable AVM bytecode and
// disassembles it back (disassembly itself lives in package avm, since it
// needs the interpreter's own instruction decoder). The assembler makes one
// linear pass over the source, recording label addresses as it goes and
// bytecode positions for any branch targets it hasn't seen yet, then patches
// those forward references once the whole program has been emitted. No
// constant pool is built for int/byte literals; each one is assembled as an
// inline pushint/pushbytes, matching the reference implementation's simpler
// encoding over the older, pooled intcblock/bytecblock convention.
package asm

import (
	"encoding/binary"
	"strings"

	"github.com/algorand-avm/tealvm/avm"
)

const defaultVersion = uint64(avm.MaxVersion)

type forwardRef struct {
	pos   int // byte offset of the 2-byte placeholder
	base  int // byte offset the branch target is relative to
	label string
}

// Assembler holds the state accumulated over one Assemble call. It is not
// reusable across programs.
type Assembler struct {
	version uint64
	out     []byte
	labels  map[string]int
	refs    []forwardRef
	line    int
}

// Assemble compiles TEAL source text into a versioned bytecode stream
// (ULEB128 version prefix followed by the instruction body), ready for
// avm.LoadProgram.
func Assemble(source string) ([]byte, error) {
	a := &Assembler{version: defaultVersion, labels: map[string]int{}}
	lines := strings.Split(source, "\n")
	for i, raw := range lines {
		a.line = i + 1
		if err := a.assembleLine(raw); err != nil {
			return nil, err
		}
	}
	if err := a.resolveForwardRefs(); err != nil {
		return nil, err
	}

	header := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(header, a.version)
	return append(header[:n], a.out...), nil
}

func (a *Assembler) assembleLine(raw string) error {
	line := stripComment(raw)
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if strings.HasPrefix(line, "#pragma") {
		return a.assemblePragma(line)
	}

	fields := tokenize(line)
	if len(fields) == 0 {
		return nil
	}

	if first := fields[0]; len(first) > 1 && strings.HasSuffix(first, ":") {
		name := strings.TrimSuffix(first, ":")
		if _, dup := a.labels[name]; dup {
			return a.errf("label %q redefined", name)
		}
		a.labels[name] = len(a.out)
		fields = fields[1:]
		if len(fields) == 0 {
			return nil
		}
	}

	return a.assembleOp(fields[0], fields[1:])
}

func (a *Assembler) assemblePragma(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[1] != "version" {
		if len(fields) >= 2 && fields[1] == "typetrack" {
			return nil // accepted, but this assembler does not type-track
		}
		return a.errf("unrecognized pragma: %s", line)
	}
	v, err := parseUint(fields[2])
	if err != nil {
		return a.wrap(err)
	}
	if v < avm.MinVersion || v > avm.MaxVersion {
		return a.errf("pragma version %d outside supported range %d..%d", v, avm.MinVersion, avm.MaxVersion)
	}
	a.version = v
	return nil
}

func (a *Assembler) assembleOp(mnemonic string, args []string) error {
	switch mnemonic {
	case "int", "pushint":
		return a.assembleInt(args)
	case "byte", "pushbytes":
		return a.assembleByte(args)
	case "addr":
		return a.assembleAddr(args)
	case "method":
		return a.assembleMethod(args)
	case "intcblock":
		return a.assembleIntcblock(args)
	case "bytecblock":
		return a.assembleBytecblock(args)
	}

	spec, ok := avm.LookupMnemonic(mnemonic)
	if !ok {
		return a.errf("unknown opcode %q", mnemonic)
	}
	if a.version < spec.MinVersion {
		return a.errf("%s requires version >= %d, program is version %d", mnemonic, spec.MinVersion, a.version)
	}
	return a.encodeInstruction(spec, args)
}

func (a *Assembler) assembleInt(args []string) error {
	if len(args) != 1 {
		return a.errf("int/pushint takes exactly one argument")
	}
	if err := a.requirePushLiteralVersion(); err != nil {
		return err
	}
	v, err := parseUint(args[0])
	if err != nil {
		return a.wrap(err)
	}
	spec, _ := avm.LookupMnemonic("pushint")
	a.emitByte(spec.Opcode)
	a.emitUvarint(v)
	return nil
}

func (a *Assembler) assembleByte(args []string) error {
	if len(args) == 0 {
		return a.errf("byte/pushbytes requires an argument")
	}
	if err := a.requirePushLiteralVersion(); err != nil {
		return err
	}
	b, err := parseByteLiteral(joinByteLiteralArgs(args))
	if err != nil {
		return a.wrap(err)
	}
	a.emitPushBytes(b)
	return nil
}

// requirePushLiteralVersion guards the int/byte/addr/method pseudo-ops,
// which this assembler always lowers to pushint/pushbytes rather than the
// older intcblock/bytecblock-pooled encoding.
func (a *Assembler) requirePushLiteralVersion() error {
	spec, _ := avm.LookupMnemonic("pushint")
	if a.version < spec.MinVersion {
		return a.errf("int/byte/addr/method literals require version >= %d, program is version %d", spec.MinVersion, a.version)
	}
	return nil
}

func (a *Assembler) assembleAddr(args []string) error {
	if len(args) != 1 {
		return a.errf("addr takes exactly one argument")
	}
	if err := a.requirePushLiteralVersion(); err != nil {
		return err
	}
	b, err := parseAddress(args[0])
	if err != nil {
		return a.wrap(err)
	}
	a.emitPushBytes(b)
	return nil
}

func (a *Assembler) assembleMethod(args []string) error {
	if len(args) != 1 {
		return a.errf("method takes exactly one quoted signature argument")
	}
	if err := a.requirePushLiteralVersion(); err != nil {
		return err
	}
	sig := strings.Trim(args[0], `"`)
	a.emitPushBytes(methodSelector(sig))
	return nil
}

func (a *Assembler) assembleIntcblock(args []string) error {
	spec, _ := avm.LookupMnemonic("intcblock")
	a.emitByte(spec.Opcode)
	a.emitUvarint(uint64(len(args)))
	for _, tok := range args {
		v, err := parseUint(tok)
		if err != nil {
			return a.wrap(err)
		}
		a.emitUvarint(v)
	}
	return nil
}

func (a *Assembler) assembleBytecblock(args []string) error {
	spec, _ := avm.LookupMnemonic("bytecblock")
	a.emitByte(spec.Opcode)
	a.emitUvarint(uint64(len(args)))
	for _, tok := range args {
		b, err := parseByteLiteral(tok)
		if err != nil {
			return a.wrap(err)
		}
		a.emitUvarint(uint64(len(b)))
		a.out = append(a.out, b...)
	}
	return nil
}

func (a *Assembler) emitPushBytes(b []byte) {
	spec, _ := avm.LookupMnemonic("pushbytes")
	a.emitByte(spec.Opcode)
	a.emitUvarint(uint64(len(b)))
	a.out = append(a.out, b...)
}

func (a *Assembler) emitByte(b byte) { a.out = append(a.out, b) }

func (a *Assembler) emitUvarint(v uint64) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	a.out = append(a.out, buf[:n]...)
}

func (a *Assembler) errf(format string, args ...any) error {
	return avm.NewAssemblyError(sprintfLine(a.line, format, args...))
}

func (a *Assembler) wrap(err error) error {
	return avm.NewAssemblyError(sprintfLine(a.line, "%s", err))
}
