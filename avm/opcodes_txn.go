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

func (cx *EvalContext) txnField(groupIndex int, field TxnField, arrayIndex int) (Value, error) {
	if groupIndex < 0 || groupIndex >= cx.Config.GroupSize {
		return Value{}, newErrorPC(TypeError, cx.pc, "group index %d out of range [0, %d)", groupIndex, cx.Config.GroupSize)
	}
	return cx.Ledger.TxnField(groupIndex, field, arrayIndex)
}

func opTxn(cx *EvalContext) ControlOutcome {
	field := TxnField(cx.imm.byteVal)
	v, err := cx.txnField(cx.Config.GroupIndex, field, 0)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.pushChecked(v); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opTxna(cx *EvalContext) ControlOutcome {
	field := TxnField(cx.imm.byteVal)
	idx := int(cx.imm.byteVal2)
	v, err := cx.txnField(cx.Config.GroupIndex, field, idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.pushChecked(v); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opTxnas(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	idx := int(cx.stack[last].Uint)
	field := TxnField(cx.imm.byteVal)
	v, err := cx.txnField(cx.Config.GroupIndex, field, idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.stack[last] = v
	return Continue()
}

func opGtxn(cx *EvalContext) ControlOutcome {
	group := int(cx.imm.byteVal)
	field := TxnField(cx.imm.byteVal2)
	v, err := cx.txnField(group, field, 0)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.pushChecked(v); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opGtxna(cx *EvalContext) ControlOutcome {
	group := int(cx.imm.byteVal)
	field := TxnField(cx.imm.byteVal2)
	idx := int(cx.imm.byteVal3)
	v, err := cx.txnField(group, field, idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.pushChecked(v); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opGtxns(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	group := int(cx.stack[last].Uint)
	field := TxnField(cx.imm.byteVal)
	v, err := cx.txnField(group, field, 0)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.stack[last] = v
	return Continue()
}

func opGtxnsa(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	group := int(cx.stack[last].Uint)
	field := TxnField(cx.imm.byteVal)
	idx := int(cx.imm.byteVal2)
	v, err := cx.txnField(group, field, idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.stack[last] = v
	return Continue()
}

func opGtxnas(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	group := int(cx.imm.byteVal)
	field := TxnField(cx.imm.byteVal2)
	idx := int(cx.stack[last].Uint)
	v, err := cx.txnField(group, field, idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.stack[last] = v
	return Continue()
}

func opGtxnsas(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	idx := int(cx.stack[last].Uint)
	group := int(cx.stack[last-1].Uint)
	field := TxnField(cx.imm.byteVal)
	v, err := cx.txnField(group, field, idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.stack = cx.stack[:last]
	cx.stack[last-1] = v
	return Continue()
}

func opGlobal(cx *EvalContext) ControlOutcome {
	field := GlobalField(cx.imm.byteVal)
	v, err := cx.Ledger.GlobalField(field)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.pushChecked(v); err != nil {
		return Fail(err)
	}
	return Continue()
}

// opGaid reads the application or asset ID created by a prior transaction in
// the group, addressed by its CreatedApplicationID/CreatedAssetID field.
func opGaid(cx *EvalContext) ControlOutcome {
	group := int(cx.imm.byteVal)
	v, err := cx.createdIDFor(group)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.pushChecked(v); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opGaids(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	group := int(cx.stack[last].Uint)
	v, err := cx.createdIDFor(group)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.stack[last] = v
	return Continue()
}

func (cx *EvalContext) createdIDFor(group int) (Value, error) {
	if group < 0 || group >= cx.Config.GroupIndex {
		return Value{}, newErrorPC(TypeError, cx.pc, "gaid %d: must refer to an earlier transaction in the group", group)
	}
	v, err := cx.txnField(group, CreatedApplicationID, 0)
	if err != nil {
		return Value{}, err
	}
	if v.Uint != 0 {
		return v, nil
	}
	return cx.txnField(group, CreatedAssetID, 0)
}

// opGload/opGloads read a scratch slot from an earlier transaction in the
// group's evaluation. The current ledger abstraction does not expose other
// transactions' scratch spaces (no SPEC_FULL component threads shared
// cross-transaction scratch state), so these consistently report ModeError
// rather than silently returning zero.
func opGload(cx *EvalContext) ControlOutcome {
	return Fail(newErrorPC(ModeError, cx.pc, "gload: cross-transaction scratch space is not available in this runtime"))
}

func opGloads(cx *EvalContext) ControlOutcome {
	return Fail(newErrorPC(ModeError, cx.pc, "gloads: cross-transaction scratch space is not available in this runtime"))
}

func opGloadss(cx *EvalContext) ControlOutcome {
	return Fail(newErrorPC(ModeError, cx.pc, "gloadss: cross-transaction scratch space is not available in this runtime"))
}
