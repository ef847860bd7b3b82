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

// decoded holds whatever a single instruction's immediate bytes resolved to.
// Only the fields relevant to the instruction's ImmKind are meaningful.
type decoded struct {
	byteVal    byte
	signedByte int8
	byteVal2   byte
	byteVal3   byte
	uintVal    uint64
	bytesVal   []byte
	branchAbs  int // absolute Body offset the branch targets
	switchAbs  []int
	ints       []uint64
	byteStrs   [][]byte
}

// instructionSize returns the number of bytes (opcode + immediates) that
// instruction at pc occupies, without allocating or following branches.
func instructionSize(body []byte, pc int, spec *OpSpec) (int, error) {
	if fixed := spec.Size(); fixed != 0 {
		if pc+fixed > len(body) {
			return 0, newErrorPC(TruncatedProgram, pc, "%s immediate runs past end of program", spec.Name)
		}
		return fixed, nil
	}
	_, size, err := decodeImmediate(body, pc, spec)
	return size, err
}

// decodeImmediate parses the immediate bytes of the instruction at pc and
// returns the decoded value plus the instruction's total size (opcode byte
// included). It performs no side effects and does not require an EvalContext,
// so both the load-time instruction scan and the dispatch loop share it.
func decodeImmediate(body []byte, pc int, spec *OpSpec) (decoded, int, error) {
	var d decoded
	switch spec.Imm {
	case ImmNone:
		return d, 1, nil

	case ImmByte:
		if pc+1 >= len(body) {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s missing 1-byte immediate", spec.Name)
		}
		d.byteVal = body[pc+1]
		return d, 2, nil

	case ImmSignedByte:
		if pc+1 >= len(body) {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s missing 1-byte immediate", spec.Name)
		}
		d.signedByte = int8(body[pc+1])
		return d, 2, nil

	case ImmByte2, ImmTwoBytes:
		if pc+2 >= len(body) {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s missing 2-byte immediate", spec.Name)
		}
		d.byteVal = body[pc+1]
		d.byteVal2 = body[pc+2]
		return d, 3, nil

	case ImmThreeBytes:
		if pc+3 >= len(body) {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s missing 3-byte immediate", spec.Name)
		}
		d.byteVal = body[pc+1]
		d.byteVal2 = body[pc+2]
		d.byteVal3 = body[pc+3]
		return d, 4, nil

	case ImmUint:
		u, n := binary.Uvarint(body[min(pc+1, len(body)):])
		if n <= 0 {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s has malformed ULEB128 immediate", spec.Name)
		}
		d.uintVal = u
		return d, 1 + n, nil

	case ImmBytes:
		if pc+1 > len(body) {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s missing length-prefixed bytes", spec.Name)
		}
		l, n := binary.Uvarint(body[pc+1:])
		if n <= 0 {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s has malformed length prefix", spec.Name)
		}
		start := pc + 1 + n
		end := start + int(l)
		if end > len(body) || end < start {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s byte literal runs past end of program", spec.Name)
		}
		d.bytesVal = body[start:end]
		return d, end - pc, nil

	case ImmLabel:
		if pc+3 > len(body) {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s missing 2-byte branch offset", spec.Name)
		}
		offset := int16(binary.BigEndian.Uint16(body[pc+1 : pc+3]))
		d.branchAbs = pc + 3 + int(offset)
		return d, 3, nil

	case ImmSwitch:
		if pc+1 >= len(body) {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s missing count byte", spec.Name)
		}
		n := int(body[pc+1])
		size := 2 + 2*n
		if pc+size > len(body) {
			return d, 0, newErrorPC(TruncatedProgram, pc, "%s targets run past end of program", spec.Name)
		}
		afterImm := pc + size
		targets := make([]int, n)
		for i := 0; i < n; i++ {
			off := int16(binary.BigEndian.Uint16(body[pc+2+2*i : pc+4+2*i]))
			targets[i] = afterImm + int(off)
		}
		d.switchAbs = targets
		return d, size, nil

	case ImmIntBlock:
		ints, size, err := decodeUintBlock(body, pc)
		d.ints = ints
		return d, size, err

	case ImmByteBlock:
		strs, size, err := decodeByteBlock(body, pc)
		d.byteStrs = strs
		return d, size, err

	default:
		return d, 0, newErrorPC(InvalidOpcode, pc, "%s has unrecognized immediate kind", spec.Name)
	}
}

// decodeUintBlock decodes the intcblock prelude: opcode byte, ULEB128 count,
// then that many ULEB128 values.
func decodeUintBlock(body []byte, pc int) ([]uint64, int, error) {
	if pc+1 > len(body) {
		return nil, 0, newErrorPC(TruncatedProgram, pc, "intcblock missing count")
	}
	count, n := binary.Uvarint(body[pc+1:])
	if n <= 0 {
		return nil, 0, newErrorPC(TruncatedProgram, pc, "intcblock has malformed count")
	}
	offset := pc + 1 + n
	vals := make([]uint64, 0, count)
	for i := uint64(0); i < count; i++ {
		if offset >= len(body) {
			return nil, 0, newErrorPC(TruncatedProgram, pc, "intcblock value runs past end of program")
		}
		v, vn := binary.Uvarint(body[offset:])
		if vn <= 0 {
			return nil, 0, newErrorPC(TruncatedProgram, pc, "intcblock has malformed value")
		}
		vals = append(vals, v)
		offset += vn
	}
	return vals, offset - pc, nil
}

// decodeByteBlock decodes the bytecblock prelude: opcode byte, ULEB128
// count, then that many (ULEB128 length, bytes) pairs.
func decodeByteBlock(body []byte, pc int) ([][]byte, int, error) {
	if pc+1 > len(body) {
		return nil, 0, newErrorPC(TruncatedProgram, pc, "bytecblock missing count")
	}
	count, n := binary.Uvarint(body[pc+1:])
	if n <= 0 {
		return nil, 0, newErrorPC(TruncatedProgram, pc, "bytecblock has malformed count")
	}
	offset := pc + 1 + n
	vals := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		l, ln := binary.Uvarint(body[min(offset, len(body)):])
		if ln <= 0 {
			return nil, 0, newErrorPC(TruncatedProgram, pc, "bytecblock has malformed length")
		}
		start := offset + ln
		end := start + int(l)
		if end > len(body) || end < start {
			return nil, 0, newErrorPC(TruncatedProgram, pc, "bytecblock value runs past end of program")
		}
		vals = append(vals, body[start:end])
		offset = end
	}
	return vals, offset - pc, nil
}
