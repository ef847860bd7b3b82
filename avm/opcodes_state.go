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

func (cx *EvalContext) addressAt(index int) (Address, error) {
	v, err := cx.Ledger.TxnField(cx.Config.GroupIndex, Accounts, index)
	if err != nil {
		return Address{}, err
	}
	b, err := v.AsBytes()
	if err != nil {
		return Address{}, err
	}
	var a Address
	if len(b) != len(a) {
		return Address{}, newErrorPC(TypeError, cx.pc, "account reference is not a 32-byte address")
	}
	copy(a[:], b)
	return a, nil
}

func opBalance(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	idx := int(cx.stack[last].Uint)
	addr, err := cx.addressAt(idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	bal, err := cx.Ledger.Balance(addr)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.stack[last] = Uint64(uint64(bal))
	return Continue()
}

func opMinBalance(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	idx := int(cx.stack[last].Uint)
	addr, err := cx.addressAt(idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	bal, err := cx.Ledger.MinBalance(addr)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.stack[last] = Uint64(uint64(bal))
	return Continue()
}

func opAppOptedIn(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	appID := cx.stack[last].Uint
	idx := int(cx.stack[last-1].Uint)
	addr, err := cx.addressAt(idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	_, ok, err := cx.Ledger.AppLocalGet(addr, AppID(appID), []byte{})
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	cx.stack = cx.stack[:last]
	cx.stack[last-1] = Uint64(boolUint(ok))
	return Continue()
}

func opAppGlobalGet(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	key := cx.stack[last].Bytes
	appID, err := cx.currentAppID()
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	v, ok, err := cx.Ledger.AppGlobalGet(appID, key)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if !ok {
		v = Uint64(0)
	}
	cx.stack[last] = v
	return Continue()
}

func opAppGlobalGetEx(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	key := cx.stack[last].Bytes
	appID := AppID(cx.stack[last-1].Uint)
	v, ok, err := cx.Ledger.AppGlobalGet(appID, key)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if !ok {
		v = Uint64(0)
	}
	cx.stack[last-1] = v
	cx.stack[last] = Uint64(boolUint(ok))
	return Continue()
}

func opAppGlobalPut(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	value := cx.stack[last]
	key := cx.stack[last-1].Bytes
	cx.stack = cx.stack[:last-1]
	appID, err := cx.currentAppID()
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.Ledger.AppGlobalPut(appID, key, value); err != nil {
		return Fail(withPC(err, cx.pc))
	}
	return Continue()
}

func opAppGlobalDel(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	key := cx.stack[last].Bytes
	cx.stack = cx.stack[:last]
	appID, err := cx.currentAppID()
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.Ledger.AppGlobalDel(appID, key); err != nil {
		return Fail(withPC(err, cx.pc))
	}
	return Continue()
}

func opAppLocalGet(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	key := cx.stack[last].Bytes
	idx := int(cx.stack[last-1].Uint)
	addr, err := cx.addressAt(idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	appID, err := cx.currentAppID()
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	v, ok, err := cx.Ledger.AppLocalGet(addr, appID, key)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if !ok {
		v = Uint64(0)
	}
	cx.stack = cx.stack[:last]
	cx.stack[last-1] = v
	return Continue()
}

func opAppLocalGetEx(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	key := cx.stack[last].Bytes
	appID := AppID(cx.stack[last-1].Uint)
	idx := int(cx.stack[last-2].Uint)
	addr, err := cx.addressAt(idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	v, ok, err := cx.Ledger.AppLocalGet(addr, appID, key)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if !ok {
		v = Uint64(0)
	}
	cx.stack = cx.stack[:last-1]
	cx.stack[last-2] = v
	cx.stack[last-1] = Uint64(boolUint(ok))
	return Continue()
}

func opAppLocalPut(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	value := cx.stack[last]
	key := cx.stack[last-1].Bytes
	idx := int(cx.stack[last-2].Uint)
	cx.stack = cx.stack[:last-2]
	addr, err := cx.addressAt(idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	appID, err := cx.currentAppID()
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.Ledger.AppLocalPut(addr, appID, key, value); err != nil {
		return Fail(withPC(err, cx.pc))
	}
	return Continue()
}

func opAppLocalDel(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	key := cx.stack[last].Bytes
	idx := int(cx.stack[last-1].Uint)
	cx.stack = cx.stack[:last-1]
	addr, err := cx.addressAt(idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	appID, err := cx.currentAppID()
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if err := cx.Ledger.AppLocalDel(addr, appID, key); err != nil {
		return Fail(withPC(err, cx.pc))
	}
	return Continue()
}

func opAssetHoldingGet(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	field := AssetHoldingField(cx.imm.byteVal)
	assetID := AssetID(cx.stack[last].Uint)
	idx := int(cx.stack[last-1].Uint)
	addr, err := cx.addressAt(idx)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	v, ok, err := cx.Ledger.AssetHolding(addr, assetID, field)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if !ok {
		v = Uint64(0)
	}
	cx.stack[last-1] = v
	cx.stack[last] = Uint64(boolUint(ok))
	return Continue()
}

func opAssetParamsGet(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	field := AssetParamsField(cx.imm.byteVal)
	assetID := AssetID(cx.stack[last].Uint)
	v, ok, err := cx.Ledger.AssetParams(assetID, field)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if !ok {
		v = Uint64(0)
	}
	cx.stack[last] = v
	if err := cx.pushChecked(Uint64(boolUint(ok))); err != nil {
		return Fail(err)
	}
	return Continue()
}

func opAppParamsGet(cx *EvalContext) ControlOutcome {
	last := len(cx.stack) - 1
	field := AppParamsField(cx.imm.byteVal)
	appID := AppID(cx.stack[last].Uint)
	v, ok, err := cx.Ledger.AppParams(appID, field)
	if err != nil {
		return Fail(withPC(err, cx.pc))
	}
	if !ok {
		v = Uint64(0)
	}
	cx.stack[last] = v
	if err := cx.pushChecked(Uint64(boolUint(ok))); err != nil {
		return Fail(err)
	}
	return Continue()
}
