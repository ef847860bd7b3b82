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
	"encoding/hex"
	"fmt"
	"strings"
)

type decodedInstr struct {
	pc   int
	spec *OpSpec
	d    decoded
	size int
}

// Disassemble renders a loaded program back to assembler text. Branch and
// switch/match targets are rendered as label_<offset> markers; constant pool
// and field-immediate opcodes are rendered with their mnemonic operand form
// rather than raw numbers, so re-assembling the output reproduces the
// program byte for byte except for intcblock/bytecblock opcode choice (intc
// indices always round-trip through the same pool).
func Disassemble(p *Program) (string, error) {
	instrs, targets, err := decodeAll(p)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#pragma version %d\n", p.Version)
	for _, in := range instrs {
		if targets[in.pc] {
			fmt.Fprintf(&b, "label_%d:\n", in.pc)
		}
		b.WriteString(formatInstr(in))
		b.WriteByte('\n')
	}
	if targets[len(p.Body)] {
		fmt.Fprintf(&b, "label_%d:\n", len(p.Body))
	}
	return b.String(), nil
}

func decodeAll(p *Program) ([]decodedInstr, map[int]bool, error) {
	targets := make(map[int]bool)
	var instrs []decodedInstr
	pc := 0
	for pc < len(p.Body) {
		opcode := p.Body[pc]
		spec, ok := LookupOpcode(opcode)
		if !ok {
			return nil, nil, newErrorPC(InvalidOpcode, pc, "unrecognized opcode 0x%02x", opcode)
		}
		d, size, err := decodeImmediate(p.Body, pc, spec)
		if err != nil {
			return nil, nil, err
		}
		instrs = append(instrs, decodedInstr{pc: pc, spec: spec, d: d, size: size})
		switch spec.Imm {
		case ImmLabel:
			targets[d.branchAbs] = true
		case ImmSwitch:
			for _, t := range d.switchAbs {
				targets[t] = true
			}
		}
		pc += size
	}
	return instrs, targets, nil
}

// fieldMnemonic returns the field name operand for opcodes whose immediate
// byte indexes one of the field enums, or "" if name isn't one of them.
func fieldMnemonic(name string, byteVal byte) (string, bool) {
	switch name {
	case "txn", "txna", "txnas", "gtxns", "gtxnsa", "gtxnsas":
		return TxnField(byteVal).String(), true
	case "gtxn", "gtxna":
		// field is the second immediate byte for these; caller handles it.
		return "", false
	case "global":
		return GlobalField(byteVal).String(), true
	case "asset_holding_get":
		return AssetHoldingField(byteVal).String(), true
	case "asset_params_get":
		return AssetParamsField(byteVal).String(), true
	case "app_params_get":
		return AppParamsField(byteVal).String(), true
	}
	return "", false
}

func formatInstr(in decodedInstr) string {
	spec, d := in.spec, in.d
	switch spec.Imm {
	case ImmNone:
		return spec.Name

	case ImmByte:
		if f, ok := fieldMnemonic(spec.Name, d.byteVal); ok {
			return fmt.Sprintf("%s %s", spec.Name, f)
		}
		return fmt.Sprintf("%s %d", spec.Name, d.byteVal)

	case ImmSignedByte:
		return fmt.Sprintf("%s %d", spec.Name, d.signedByte)

	case ImmByte2, ImmTwoBytes:
		switch spec.Name {
		case "gtxn":
			return fmt.Sprintf("%s %d %s", spec.Name, d.byteVal, TxnField(d.byteVal2).String())
		case "txna", "gtxnsa", "gtxnas":
			// txna/gtxnsa: field, idx; gtxnas: group, field -- all need the field name.
			if spec.Name != "gtxnas" {
				return fmt.Sprintf("%s %s %d", spec.Name, TxnField(d.byteVal).String(), d.byteVal2)
			}
			return fmt.Sprintf("%s %d %s", spec.Name, d.byteVal, TxnField(d.byteVal2).String())
		}
		return fmt.Sprintf("%s %d %d", spec.Name, d.byteVal, d.byteVal2)

	case ImmThreeBytes:
		if spec.Name == "gtxna" {
			return fmt.Sprintf("%s %d %s %d", spec.Name, d.byteVal, TxnField(d.byteVal2).String(), d.byteVal3)
		}
		return fmt.Sprintf("%s %d %d %d", spec.Name, d.byteVal, d.byteVal2, d.byteVal3)

	case ImmUint:
		return fmt.Sprintf("pushint %d", d.uintVal)

	case ImmBytes:
		return fmt.Sprintf("pushbytes 0x%s", hex.EncodeToString(d.bytesVal))

	case ImmLabel:
		return fmt.Sprintf("%s label_%d", spec.Name, d.branchAbs)

	case ImmSwitch:
		labels := make([]string, len(d.switchAbs))
		for i, t := range d.switchAbs {
			labels[i] = fmt.Sprintf("label_%d", t)
		}
		return fmt.Sprintf("%s %s", spec.Name, strings.Join(labels, " "))

	case ImmIntBlock:
		parts := make([]string, len(d.ints))
		for i, v := range d.ints {
			parts[i] = fmt.Sprintf("%d", v)
		}
		return fmt.Sprintf("intcblock %s", strings.Join(parts, " "))

	case ImmByteBlock:
		parts := make([]string, len(d.byteStrs))
		for i, v := range d.byteStrs {
			parts[i] = "0x" + hex.EncodeToString(v)
		}
		return fmt.Sprintf("bytecblock %s", strings.Join(parts, " "))

	default:
		return spec.Name
	}
}
