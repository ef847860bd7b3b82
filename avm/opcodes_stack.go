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

// pushChecked appends a value, rejecting the push if it would exceed
// MaxStackDepth. Opcodes that produce more than one value call this per value.
func (cx *EvalContext) pushChecked(v Value) error {
	if len(cx.stack) >= MaxStackDepth {
		return newErrorPC(StackOverflow, cx.pc, "stack depth would exceed %d", MaxStackDepth)
	}
	cx.stack = append(cx.stack, v)
	return nil
}

func opPop(cx *EvalContext) ControlOutcome {
	cx.stack = cx.stack[:len(cx.stack)-1]
	return Continue()
}

func opDup(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	if err := cx.pushChecked(cx.stack[last]); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opDup2(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	a, b := cx.stack[last-1], cx.stack[last]
	if len(cx.stack)+2 > MaxStackDepth {
		return Fail(newErrorPC(StackOverflow, cx.pc, "stack depth would exceed %d", MaxStackDepth))
	}
	cx.stack = append(cx.stack, a, b)
	return Continue()
}

func opDupN(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	n := int(cx.imm.byteVal)
	if len(cx.stack)+n > MaxStackDepth {
		return Fail(newErrorPC(StackOverflow, cx.pc, "stack depth would exceed %d", MaxStackDepth))
	}
	v := cx.stack[last]
	for i := 0; i < n; i++ {
		cx.stack = append(cx.stack, v)
	}
	return Continue()
}

func opPopN(cx *EvalContext) ControlOutcome {
	n := int(cx.imm.byteVal)
	if n > len(cx.stack) {
		return Fail(newErrorPC(StackUnderflow, cx.pc, "popn %d with stack depth %d", n, len(cx.stack)))
	}
	cx.stack = cx.stack[:len(cx.stack)-n]
	return Continue()
}

func opSwap(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	cx.stack[last-1], cx.stack[last] = cx.stack[last], cx.stack[last-1]
	return Continue()
}

func opSelect(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	cond := cx.stack[last].Uint
	b, a := cx.stack[last-1], cx.stack[last-2]
	cx.stack = cx.stack[:last-1]
	if cond != 0 {
		cx.stack[last-2] = b
	} else {
		cx.stack[last-2] = a
	}
	return Continue()
}

func opDig(cx *EvalContext) ControlOutcome {
	depth := int(cx.imm.byteVal)
	idx := len(cx.stack) - 1 - depth
	if idx < 0 {
		return Fail(newErrorPC(StackUnderflow, cx.pc, "dig %d with stack depth %d", depth, len(cx.stack)))
	}
	if err := cx.pushChecked(cx.stack[idx]); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opBury(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	depth := int(cx.imm.byteVal)
	idx := last - depth
	if idx < 0 || idx == last {
		return Fail(newErrorPC(StackUnderflow, cx.pc, "bury %d outside stack of depth %d", depth, len(cx.stack)))
	}
	cx.stack[idx] = cx.stack[last]
	cx.stack = cx.stack[:last]
	return Continue()
}

func opCover(cx *EvalContext) ControlOutcome {
	depth := int(cx.imm.byteVal)
	topIdx := len(cx.stack) - 1
	idx := topIdx - depth
	if idx < 0 {
		return Fail(newErrorPC(StackUnderflow, cx.pc, "cover %d with stack depth %d", depth, len(cx.stack)))
	}
	v := cx.stack[topIdx]
	copy(cx.stack[idx+1:], cx.stack[idx:topIdx])
	cx.stack[idx] = v
	return Continue()
}

func opUncover(cx *EvalContext) ControlOutcome {
	depth := int(cx.imm.byteVal)
	topIdx := len(cx.stack) - 1
	idx := topIdx - depth
	if idx < 0 {
		return Fail(newErrorPC(StackUnderflow, cx.pc, "uncover %d with stack depth %d", depth, len(cx.stack)))
	}
	v := cx.stack[idx]
	copy(cx.stack[idx:topIdx], cx.stack[idx+1:topIdx+1])
	cx.stack[topIdx] = v
	return Continue()
}

// --- scratch space ---

func opLoad(cx *EvalContext) ControlOutcome {
	v, err := cx.scratch.load(uint64(cx.imm.byteVal))
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.pushChecked(v); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opStore(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	v := cx.stack[last]
	cx.stack = cx.stack[:last]
	if err := cx.scratch.store(uint64(cx.imm.byteVal), v); err != nil {
		return Fail(withPC(err, cx.pc))
	}
	return Continue()
}

func opLoads(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	i := cx.stack[last].Uint
	v, err := cx.scratch.load(i)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.stack[last] = v
	return Continue()
}

func opStores(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	v := cx.stack[last]
	i := cx.stack[last-1].Uint
	cx.stack = cx.stack[:last-1]
	if err := cx.scratch.store(i, v); err != nil {
		return Fail(withPC(err, cx.pc))
	}
	return Continue()
}

// --- subroutine frames ---

func opProto(cx *EvalContext) ControlOutcome {
	if !cx.fromCallsub {
		return Fail(newErrorPC(TypeError, cx.pc, "proto executed without a preceding callsub"))
	}
	cx.fromCallsub = false
	nargs := int(cx.imm.byteVal)
	if nargs > len(cx.stack) {
		return Fail(newErrorPC(StackUnderflow, cx.pc, "proto requires %d args, stack has %d", nargs, len(cx.stack)))
	}
	top, ok := cx.calls.top()
	if !ok {
		return Fail(newErrorPC(TypeError, cx.pc, "proto with empty call stack"))
	}
	top.framed = true
	top.height = len(cx.stack) - nargs
	top.args = nargs
	top.returns = int(cx.imm.byteVal2)
	return Continue()
}

func opFrameDig(cx *EvalContext) ControlOutcome {
	top, ok := cx.calls.top()
	if !ok {
		return Fail(newErrorPC(TypeError, cx.pc, "frame_dig with empty call stack"))
	}
	i := int(cx.imm.signedByte)
	if top.framed && -i > top.args {
		return Fail(newErrorPC(TypeError, cx.pc, "frame_dig %d in frame with %d args", i, top.args))
	}
	idx := top.height + i
	if idx < 0 || idx >= len(cx.stack) {
		return Fail(newErrorPC(TypeError, cx.pc, "frame_dig %d out of stack range", i))
	}
	if err := cx.pushChecked(cx.stack[idx]); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opFrameBury(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	top, ok := cx.calls.top()
	if !ok {
		return Fail(newErrorPC(TypeError, cx.pc, "frame_bury with empty call stack"))
	}
	i := int(cx.imm.signedByte)
	if top.framed && -i > top.args {
		return Fail(newErrorPC(TypeError, cx.pc, "frame_bury %d in frame with %d args", i, top.args))
	}
	idx := top.height + i
	if idx < 0 || idx >= last {
		return Fail(newErrorPC(TypeError, cx.pc, "frame_bury %d out of stack range", i))
	}
	cx.stack[idx] = cx.stack[last]
	cx.stack = cx.stack[:last]
	return Continue()
}
