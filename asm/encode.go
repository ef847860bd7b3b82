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

package asm

import (
	"encoding/binary"

	"github.com/algorand-avm/tealvm/avm"
)

// encodeInstruction emits one real (non-pseudo) opcode and its immediate
// bytes. Field-taking opcodes (txn, gtxn and kin, global, asset/app param
// getters) resolve their field argument by name via the avm package's
// exported field lookups; everything else is a plain integer.
func (a *Assembler) encodeInstruction(spec *avm.OpSpec, args []string) error {
	switch spec.Imm {
	case avm.ImmNone:
		if len(args) != 0 {
			return a.errf("%s takes no arguments", spec.Name)
		}
		a.emitByte(spec.Opcode)

	case avm.ImmByte:
		if len(args) != 1 {
			return a.errf("%s takes exactly one argument", spec.Name)
		}
		v, err := a.resolveByteArg(spec.Name, 0, args)
		if err != nil {
			return err
		}
		a.emitByte(spec.Opcode)
		a.emitByte(v)

	case avm.ImmSignedByte:
		if len(args) != 1 {
			return a.errf("%s takes exactly one argument", spec.Name)
		}
		v, err := parseInt(args[0])
		if err != nil {
			return a.wrap(err)
		}
		a.emitByte(spec.Opcode)
		a.emitByte(byte(int8(v)))

	case avm.ImmByte2, avm.ImmTwoBytes:
		if len(args) != 2 {
			return a.errf("%s takes exactly two arguments", spec.Name)
		}
		v0, err := a.resolveByteArg(spec.Name, 0, args)
		if err != nil {
			return err
		}
		v1, err := a.resolveByteArg(spec.Name, 1, args)
		if err != nil {
			return err
		}
		a.emitByte(spec.Opcode)
		a.emitByte(v0)
		a.emitByte(v1)

	case avm.ImmThreeBytes:
		if len(args) != 3 {
			return a.errf("%s takes exactly three arguments", spec.Name)
		}
		v0, err := a.resolveByteArg(spec.Name, 0, args)
		if err != nil {
			return err
		}
		v1, err := a.resolveByteArg(spec.Name, 1, args)
		if err != nil {
			return err
		}
		v2, err := a.resolveByteArg(spec.Name, 2, args)
		if err != nil {
			return err
		}
		a.emitByte(spec.Opcode)
		a.emitByte(v0)
		a.emitByte(v1)
		a.emitByte(v2)

	case avm.ImmUint:
		if len(args) != 1 {
			return a.errf("%s takes exactly one argument", spec.Name)
		}
		v, err := parseUint(args[0])
		if err != nil {
			return a.wrap(err)
		}
		a.emitByte(spec.Opcode)
		a.emitUvarint(v)

	case avm.ImmBytes:
		if len(args) == 0 {
			return a.errf("%s requires an argument", spec.Name)
		}
		b, err := parseByteLiteral(joinByteLiteralArgs(args))
		if err != nil {
			return a.wrap(err)
		}
		a.emitByte(spec.Opcode)
		a.emitUvarint(uint64(len(b)))
		a.out = append(a.out, b...)

	case avm.ImmLabel:
		if len(args) != 1 {
			return a.errf("%s takes exactly one label argument", spec.Name)
		}
		a.emitByte(spec.Opcode)
		pos := len(a.out)
		a.emitByte(0)
		a.emitByte(0)
		a.refs = append(a.refs, forwardRef{pos: pos, base: len(a.out), label: args[0]})

	case avm.ImmSwitch:
		if len(args) == 0 {
			return a.errf("%s requires at least one label argument", spec.Name)
		}
		a.emitByte(spec.Opcode)
		a.emitByte(byte(len(args)))
		start := len(a.out)
		for range args {
			a.emitByte(0)
			a.emitByte(0)
		}
		base := len(a.out)
		for i, label := range args {
			a.refs = append(a.refs, forwardRef{pos: start + 2*i, base: base, label: label})
		}

	case avm.ImmIntBlock:
		a.emitByte(spec.Opcode)
		a.emitUvarint(uint64(len(args)))
		for _, tok := range args {
			v, err := parseUint(tok)
			if err != nil {
				return a.wrap(err)
			}
			a.emitUvarint(v)
		}

	case avm.ImmByteBlock:
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

	default:
		return a.errf("%s has an immediate kind this assembler doesn't know how to encode", spec.Name)
	}
	return nil
}

// resolveByteArg resolves argument idx of a field-taking opcode by name, or
// falls back to a plain integer for opcodes that don't take a field there.
func (a *Assembler) resolveByteArg(mnemonic string, idx int, args []string) (byte, error) {
	tok := args[idx]
	switch mnemonic {
	case "txn", "txna", "txnas", "gtxns", "gtxnsa", "gtxnsas":
		if idx == 0 {
			return a.txnFieldByte(tok)
		}
	case "gtxn", "gtxna":
		if idx == 1 {
			return a.txnFieldByte(tok)
		}
	case "gtxnas":
		if idx == 1 {
			return a.txnFieldByte(tok)
		}
	case "global":
		if idx == 0 {
			f, ok := avm.LookupGlobalField(tok)
			if !ok {
				return 0, a.errf("unknown global field %q", tok)
			}
			return byte(f), nil
		}
	case "asset_holding_get":
		if idx == 0 {
			f, ok := avm.LookupAssetHoldingField(tok)
			if !ok {
				return 0, a.errf("unknown asset holding field %q", tok)
			}
			return byte(f), nil
		}
	case "asset_params_get":
		if idx == 0 {
			f, ok := avm.LookupAssetParamsField(tok)
			if !ok {
				return 0, a.errf("unknown asset params field %q", tok)
			}
			return byte(f), nil
		}
	case "app_params_get":
		if idx == 0 {
			f, ok := avm.LookupAppParamsField(tok)
			if !ok {
				return 0, a.errf("unknown app params field %q", tok)
			}
			return byte(f), nil
		}
	}

	v, err := parseInt(tok)
	if err != nil {
		return 0, a.wrap(err)
	}
	return byte(v), nil
}

func (a *Assembler) txnFieldByte(tok string) (byte, error) {
	f, ok := avm.LookupTxnField(tok)
	if !ok {
		return 0, a.errf("unknown txn field %q", tok)
	}
	return byte(f), nil
}

// resolveForwardRefs patches every recorded branch/switch target now that
// every label in the program has a known address.
func (a *Assembler) resolveForwardRefs() error {
	for _, ref := range a.refs {
		target, ok := a.labels[ref.label]
		if !ok {
			return avm.NewAssemblyError("undefined label", "label", ref.label)
		}
		dist := target - ref.base
		if dist < -32768 || dist > 32767 {
			return avm.NewAssemblyError("BranchTooFar", "label", ref.label, "distance", dist)
		}
		offset := int16(dist)
		binary.BigEndian.PutUint16(a.out[ref.pos:ref.pos+2], uint16(offset))
	}
	return nil
}
