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

func opErr(cx *EvalContext) ControlOutcome {
	return Fail(newErrorPC(ExecutionFailed, cx.pc, "err"))
}

func opReturn(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	verdict, err := cx.stack[last].AsBool()
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	return Halt(verdict)
}

func opAssert(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	v, err := cx.stack[last].AsBool()
	cx.stack = cx.stack[:last]
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if !v {
		return Fail(newErrorPC(AssertFailed, cx.pc, "assert failed"))
	}
	return Continue()
}

func opB(cx *EvalContext) ControlOutcome {
	return BranchTo(cx.imm.branchAbs)
}

func opBnz(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	nonzero := cx.stack[last].Uint != 0
	cx.stack = cx.stack[:last]
	if nonzero {
		return BranchTo(cx.imm.branchAbs)
	}
	return Continue()
}

func opBz(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	isZero := cx.stack[last].Uint == 0
	cx.stack = cx.stack[:last]
	if isZero {
		return BranchTo(cx.imm.branchAbs)
	}
	return Continue()
}

func opSwitch(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	idx := cx.stack[last].Uint
	cx.stack = cx.stack[:last]
	if idx < uint64(len(cx.imm.switchAbs)) {
		return BranchTo(cx.imm.switchAbs[idx])
	}
	return Continue()
}

func opMatch(cx *EvalContext) ControlOutcome {
	n := len(cx.imm.switchAbs)
	// match pops n match values followed by the needle.
	if len(cx.stack) < n+1 {
		return Fail(newErrorPC(StackUnderflow, cx.pc, "match needs %d operands, stack has %d", n+1, len(cx.stack)))
	}
	base := len(cx.stack) - n - 1
	needle := cx.stack[len(cx.stack)-1]
	matches := cx.stack[base : len(cx.stack)-1]
	target := -1
	for i, m := range matches {
		eq, err := Equal(needle, m)
		if err != nil {
			continue // mismatched types never match, per type-aware equality
		}
		if eq {
			target = cx.imm.switchAbs[i]
			break
		}
	}
	cx.stack = cx.stack[:base]
	if target >= 0 {
		return BranchTo(target)
	}
	return Continue()
}

func opCallSub(cx *EvalContext) ControlOutcome {
	if err := cx.calls.push(frame{returnPC: cx.pc + cx.immSize}); err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.fromCallsub = true
	return BranchTo(cx.imm.branchAbs)
}

func opRetSub(cx *EvalContext) ControlOutcome {
	f, err := cx.calls.pop()
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if f.framed {
		// Drop any locals above the declared return values, matching proto's
		// contract: stack above `height` is [args..., locals..., returns...].
		nret := f.returns
		if nret > len(cx.stack)-f.height {
			return Fail(newErrorPC(StackUnderflow, cx.pc, "retsub expected %d return values above frame", nret))
		}
		rets := append([]Value(nil), cx.stack[len(cx.stack)-nret:]...)
		cx.stack = cx.stack[:f.height]
		cx.stack = append(cx.stack, rets...)
	}
	return BranchTo(f.returnPC)
}

func opLog(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	msg := cx.stack[last].Bytes
	cx.stack = cx.stack[:last]
	appID, err := cx.currentAppID()
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.Ledger.Log(appID, msg); err != nil {
		return Fail(withPC(err, cx.pc))
	}
	return Continue()
}

// currentAppID resolves ApplicationID for the transaction at the config's
// group index, used by opcodes that need to know which app they're running
// as (log, app_global_*, app_local_*).
func (cx *EvalContext) currentAppID() (AppID, error) {
	v, err := cx.Ledger.TxnField(cx.Config.GroupIndex, ApplicationID, 0)
	if err != nil {
		return 0, err
	}
	u, err := v.AsUint()
	if err != nil {
		return 0, err
	}
	return AppID(u), nil
}

// --- constant pools ---

func opIntCBlock(cx *EvalContext) ControlOutcome {
	cx.intc = cx.imm.ints
	return Continue()
}

func opByteCBlock(cx *EvalContext) ControlOutcome {
	cx.bytec = cx.imm.byteStrs
	return Continue()
}

func (cx *EvalContext) intcAt(i uint64) (uint64, error) {
	if i >= uint64(len(cx.intc)) {
		return 0, newErrorPC(TypeError, cx.pc, "intc index %d out of range, pool has %d entries", i, len(cx.intc))
	}
	return cx.intc[i], nil
}

func (cx *EvalContext) bytecAt(i uint64) ([]byte, error) {
	if i >= uint64(len(cx.bytec)) {
		return nil, newErrorPC(TypeError, cx.pc, "bytec index %d out of range, pool has %d entries", i, len(cx.bytec))
	}
	return cx.bytec[i], nil
}

func intcOp(index uint64) semanticsFunc {
	return func(cx *EvalContext) ControlOutcome {
		v, err := cx.intcAt(index)
		if err != nil {
			return Fail(err)
		}
		if err := cx.pushChecked(Uint64(v)); err != nil {
			return Fail(err)
		}
		return Continue()
	}
}

func bytecOp(index uint64) semanticsFunc {
	return func(cx *EvalContext) ControlOutcome {
		b, err := cx.bytecAt(index)
		if err != nil {
			return Fail(err)
		}
		if err := cx.pushChecked(Bytestring(b)); err != nil {
			return Fail(err)
		}
		return Continue()
	}
}

func opIntC(cx *EvalContext) ControlOutcome {
	v, err := cx.intcAt(uint64(cx.imm.byteVal))
	if err != nil {
		return Fail(err)
	}
	if err := cx.pushChecked(Uint64(v)); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opByteC(cx *EvalContext) ControlOutcome {
	b, err := cx.bytecAt(uint64(cx.imm.byteVal))
	if err != nil {
		return Fail(err)
	}
	if err := cx.pushChecked(Bytestring(b)); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opPushInt(cx *EvalContext) ControlOutcome {
	if err := cx.pushChecked(Uint64(cx.imm.uintVal)); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opPushBytes(cx *EvalContext) ControlOutcome {
	if err := checkByteLen(cx.imm.bytesVal); err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.pushChecked(Bytestring(append([]byte(nil), cx.imm.bytesVal...))); err != nil {
		return Fail(err)
	}
	return Continue()
}

// --- LogicSig call arguments ---

func argOp(index int) semanticsFunc {
	return func(cx *EvalContext) ControlOutcome {
		if index >= len(cx.args) {
			return Fail(newErrorPC(TypeError, cx.pc, "arg %d requested, only %d args supplied", index, len(cx.args)))
		}
		if err := cx.pushChecked(Bytestring(cx.args[index])); err != nil {
			return Fail(err)
		}
		return Continue()
	}
}

func opArg(cx *EvalContext) ControlOutcome {
	i := int(cx.imm.byteVal)
	if i >= len(cx.args) {
		return Fail(newErrorPC(TypeError, cx.pc, "arg %d requested, only %d args supplied", i, len(cx.args)))
	}
	if err := cx.pushChecked(Bytestring(cx.args[i])); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opArgs(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	i := cx.stack[last].Uint
	if i >= uint64(len(cx.args)) {
		return Fail(newErrorPC(TypeError, cx.pc, "args %d requested, only %d args supplied", i, len(cx.args)))
	}
	cx.stack[last] = Bytestring(cx.args[i])
	return Continue()
}
