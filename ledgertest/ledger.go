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

// Package ledgertest is a convenient in-memory avm.LedgerForLogic, used by
// this module's own opcode tests and by the execute CLI subcommand, which
// runs without a real backing ledger. It is in its own package, the way
// the reference implementation keeps its mock ledger separate from the
// interpreter, so that programs developed against it can be exercised
// without pulling in a real network client.
package ledgertest

import (
	"fmt"

	"github.com/algorand-avm/tealvm/avm"
)

type holding struct {
	amount uint64
	frozen bool
}

type account struct {
	balance  uint64
	minExtra uint64
	locals   map[avm.AppID]map[string]avm.Value
	holdings map[avm.AssetID]holding
}

func newAccount() *account {
	return &account{
		locals:   make(map[avm.AppID]map[string]avm.Value),
		holdings: make(map[avm.AssetID]holding),
	}
}

type appRecord struct {
	creator           avm.Address
	global            map[string]avm.Value
	approvalProgram   []byte
	clearStateProgram []byte
	globalNumUint     uint64
	globalNumBytes    uint64
	localNumUint      uint64
	localNumBytes     uint64
	extraPages        uint64
}

type assetRecord struct {
	creator       avm.Address
	total         uint64
	decimals      uint64
	defaultFrozen bool
	unitName      string
	name          string
	url           string
	metadataHash  []byte
	manager       avm.Address
	reserve       avm.Address
	freeze        avm.Address
	clawback      avm.Address
}

// Txn is one transaction's worth of field values, enough of the real
// transaction shape for the txn/gtxn/global opcode family to read from.
type Txn struct {
	Sender            avm.Address
	Fee               uint64
	FirstValid        uint64
	LastValid         uint64
	Note              []byte
	Lease             []byte
	Receiver          avm.Address
	Amount            uint64
	CloseRemainderTo  avm.Address
	VotePK            []byte
	SelectionPK       []byte
	VoteFirst         uint64
	VoteLast          uint64
	VoteKeyDilution   uint64
	Type              string
	TypeEnum          uint64
	XferAsset         avm.AssetID
	AssetAmount       uint64
	AssetSender       avm.Address
	AssetReceiver     avm.Address
	AssetCloseTo      avm.Address
	TxID              []byte
	ApplicationID     avm.AppID
	OnCompletion      uint64
	ApplicationArgs   [][]byte
	Accounts          []avm.Address
	ApprovalProgram   []byte
	ClearStateProgram []byte
	RekeyTo           avm.Address
	ConfigAsset       avm.AssetID
	Assets            []avm.AssetID
	Applications      []avm.AppID
	GlobalNumUint     uint64
	GlobalNumByteSlice uint64
	LocalNumUint      uint64
	LocalNumByteSlice uint64
	CreatedAssetID    avm.AssetID
	CreatedApplicationID avm.AppID
}

// GlobalState holds the values the 'global' opcode reads.
type GlobalState struct {
	MinTxnFee       uint64
	MinBalance      uint64
	MaxTxnLife      uint64
	ZeroAddress     avm.Address
	LogicSigVersion uint64
	Round           uint64
	LatestTimestamp uint64
}

// Ledger is a mutable, in-memory stand-in for a real chain's state, adequate
// for running and testing TEAL programs without a network. It implements
// avm.LedgerForLogic.
type Ledger struct {
	accounts map[avm.Address]*account
	apps     map[avm.AppID]*appRecord
	assets   map[avm.AssetID]*assetRecord

	currentApp avm.AppID
	group      []Txn
	global     GlobalState
}

// New constructs an empty Ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[avm.Address]*account),
		apps:     make(map[avm.AppID]*appRecord),
		assets:   make(map[avm.AssetID]*assetRecord),
		global: GlobalState{
			MinTxnFee:  1000,
			MinBalance: 100000,
			MaxTxnLife: 1000,
		},
	}
}

func (l *Ledger) account(addr avm.Address) *account {
	a, ok := l.accounts[addr]
	if !ok {
		a = newAccount()
		l.accounts[addr] = a
	}
	return a
}

// SetGroup installs the transaction group this run evaluates against, and
// the ID of the application currently executing.
func (l *Ledger) SetGroup(group []Txn, currentApp avm.AppID) {
	l.group = group
	l.currentApp = currentApp
}

// SetGlobalState overrides the values the 'global' opcode reads.
func (l *Ledger) SetGlobalState(g GlobalState) { l.global = g }

// NewAccount seeds addr with the given microAlgo balance.
func (l *Ledger) NewAccount(addr avm.Address, balance uint64) {
	l.account(addr).balance = balance
}

// NewApp registers an application with the given creator.
func (l *Ledger) NewApp(creator avm.Address, appID avm.AppID) {
	l.apps[appID] = &appRecord{creator: creator, global: make(map[string]avm.Value)}
}

// NewAsset registers an asset with the given creator and total supply.
func (l *Ledger) NewAsset(creator avm.Address, assetID avm.AssetID, total uint64, defaultFrozen bool) {
	l.assets[assetID] = &assetRecord{creator: creator, total: total, defaultFrozen: defaultFrozen}
	l.account(creator).holdings[assetID] = holding{amount: total, frozen: defaultFrozen}
}

// OptIn opts addr into appID's local state.
func (l *Ledger) OptIn(addr avm.Address, appID avm.AppID) {
	l.account(addr).locals[appID] = make(map[string]avm.Value)
}

// OptInAsset opts addr into holding assetID with a zero balance.
func (l *Ledger) OptInAsset(addr avm.Address, assetID avm.AssetID) {
	l.account(addr).holdings[assetID] = holding{}
}

// Balance implements avm.LedgerForLogic.
func (l *Ledger) Balance(addr avm.Address) (avm.MicroAlgos, error) {
	return avm.MicroAlgos(l.account(addr).balance), nil
}

// MinBalance implements avm.LedgerForLogic. The test ledger charges a flat
// base plus a per-asset-holding and per-app surcharge, mirroring (without
// replicating exactly) the real consensus minimum-balance formula.
func (l *Ledger) MinBalance(addr avm.Address) (avm.MicroAlgos, error) {
	a := l.account(addr)
	min := l.global.MinBalance
	min += uint64(len(a.holdings)) * l.global.MinBalance
	min += uint64(len(a.locals)) * l.global.MinBalance
	min += a.minExtra
	return avm.MicroAlgos(min), nil
}

func (l *Ledger) AppGlobalGet(appID avm.AppID, key []byte) (avm.Value, bool, error) {
	app, ok := l.apps[appID]
	if !ok {
		return avm.Value{}, false, fmt.Errorf("ledgertest: no such app %d", appID)
	}
	v, ok := app.global[string(key)]
	return v, ok, nil
}

func (l *Ledger) AppGlobalPut(appID avm.AppID, key []byte, value avm.Value) error {
	app, ok := l.apps[appID]
	if !ok {
		return fmt.Errorf("ledgertest: no such app %d", appID)
	}
	app.global[string(key)] = value.Clone()
	return nil
}

func (l *Ledger) AppGlobalDel(appID avm.AppID, key []byte) error {
	app, ok := l.apps[appID]
	if !ok {
		return fmt.Errorf("ledgertest: no such app %d", appID)
	}
	delete(app.global, string(key))
	return nil
}

func (l *Ledger) AppLocalGet(addr avm.Address, appID avm.AppID, key []byte) (avm.Value, bool, error) {
	a, ok := l.accounts[addr]
	if !ok {
		return avm.Value{}, false, nil
	}
	local, ok := a.locals[appID]
	if !ok {
		return avm.Value{}, false, nil
	}
	v, ok := local[string(key)]
	if len(key) == 0 {
		// app_opted_in probes the empty key: an opted-in account reports ok.
		ok = true
	}
	return v, ok, nil
}

func (l *Ledger) AppLocalPut(addr avm.Address, appID avm.AppID, key []byte, value avm.Value) error {
	a := l.account(addr)
	local, ok := a.locals[appID]
	if !ok {
		return fmt.Errorf("ledgertest: %x not opted into app %d", addr, appID)
	}
	local[string(key)] = value.Clone()
	return nil
}

func (l *Ledger) AppLocalDel(addr avm.Address, appID avm.AppID, key []byte) error {
	a := l.account(addr)
	local, ok := a.locals[appID]
	if !ok {
		return fmt.Errorf("ledgertest: %x not opted into app %d", addr, appID)
	}
	delete(local, string(key))
	return nil
}

func (l *Ledger) AssetHolding(addr avm.Address, assetID avm.AssetID, field avm.AssetHoldingField) (avm.Value, bool, error) {
	a, ok := l.accounts[addr]
	if !ok {
		return avm.Value{}, false, nil
	}
	h, ok := a.holdings[assetID]
	if !ok {
		return avm.Value{}, false, nil
	}
	switch field {
	case avm.AssetBalance:
		return avm.Uint64(h.amount), true, nil
	case avm.AssetFrozen:
		return avm.Uint64(boolUint(h.frozen)), true, nil
	}
	return avm.Value{}, false, fmt.Errorf("ledgertest: unknown asset holding field %v", field)
}

func (l *Ledger) AssetParams(assetID avm.AssetID, field avm.AssetParamsField) (avm.Value, bool, error) {
	asset, ok := l.assets[assetID]
	if !ok {
		return avm.Value{}, false, nil
	}
	switch field {
	case avm.AssetTotal:
		return avm.Uint64(asset.total), true, nil
	case avm.AssetDecimals:
		return avm.Uint64(asset.decimals), true, nil
	case avm.AssetDefaultFrozen:
		return avm.Uint64(boolUint(asset.defaultFrozen)), true, nil
	case avm.AssetUnitName:
		return avm.Bytestring([]byte(asset.unitName)), true, nil
	case avm.AssetName:
		return avm.Bytestring([]byte(asset.name)), true, nil
	case avm.AssetURL:
		return avm.Bytestring([]byte(asset.url)), true, nil
	case avm.AssetMetadataHash:
		return avm.Bytestring(asset.metadataHash), true, nil
	case avm.AssetManager:
		return avm.Bytestring(asset.manager[:]), true, nil
	case avm.AssetReserve:
		return avm.Bytestring(asset.reserve[:]), true, nil
	case avm.AssetFreeze:
		return avm.Bytestring(asset.freeze[:]), true, nil
	case avm.AssetClawback:
		return avm.Bytestring(asset.clawback[:]), true, nil
	case avm.AssetCreator:
		return avm.Bytestring(asset.creator[:]), true, nil
	}
	return avm.Value{}, false, fmt.Errorf("ledgertest: unknown asset params field %v", field)
}

func (l *Ledger) AppParams(appID avm.AppID, field avm.AppParamsField) (avm.Value, bool, error) {
	app, ok := l.apps[appID]
	if !ok {
		return avm.Value{}, false, nil
	}
	switch field {
	case avm.AppApprovalProgram:
		return avm.Bytestring(app.approvalProgram), true, nil
	case avm.AppClearStateProgram:
		return avm.Bytestring(app.clearStateProgram), true, nil
	case avm.AppGlobalNumUint:
		return avm.Uint64(app.globalNumUint), true, nil
	case avm.AppGlobalNumByteSlice:
		return avm.Uint64(app.globalNumBytes), true, nil
	case avm.AppLocalNumUint:
		return avm.Uint64(app.localNumUint), true, nil
	case avm.AppLocalNumByteSlice:
		return avm.Uint64(app.localNumBytes), true, nil
	case avm.AppExtraProgramPages:
		return avm.Uint64(app.extraPages), true, nil
	case avm.AppCreator:
		return avm.Bytestring(app.creator[:]), true, nil
	case avm.AppAddress:
		return avm.Bytestring(app.creator[:]), true, nil
	}
	return avm.Value{}, false, fmt.Errorf("ledgertest: unknown app params field %v", field)
}

func (l *Ledger) TxnField(groupIndex int, field avm.TxnField, arrayIndex int) (avm.Value, error) {
	if groupIndex < 0 || groupIndex >= len(l.group) {
		return avm.Value{}, fmt.Errorf("ledgertest: group index %d out of range", groupIndex)
	}
	t := l.group[groupIndex]
	switch field {
	case avm.Sender:
		return avm.Bytestring(t.Sender[:]), nil
	case avm.Fee:
		return avm.Uint64(t.Fee), nil
	case avm.FirstValid:
		return avm.Uint64(t.FirstValid), nil
	case avm.LastValid:
		return avm.Uint64(t.LastValid), nil
	case avm.Note:
		return avm.Bytestring(t.Note), nil
	case avm.Lease:
		return avm.Bytestring(t.Lease), nil
	case avm.Receiver:
		return avm.Bytestring(t.Receiver[:]), nil
	case avm.Amount:
		return avm.Uint64(t.Amount), nil
	case avm.CloseRemainderTo:
		return avm.Bytestring(t.CloseRemainderTo[:]), nil
	case avm.VotePK:
		return avm.Bytestring(t.VotePK), nil
	case avm.SelectionPK:
		return avm.Bytestring(t.SelectionPK), nil
	case avm.VoteFirst:
		return avm.Uint64(t.VoteFirst), nil
	case avm.VoteLast:
		return avm.Uint64(t.VoteLast), nil
	case avm.VoteKeyDilution:
		return avm.Uint64(t.VoteKeyDilution), nil
	case avm.Type:
		return avm.Bytestring([]byte(t.Type)), nil
	case avm.TypeEnum:
		return avm.Uint64(t.TypeEnum), nil
	case avm.XferAsset:
		return avm.Uint64(uint64(t.XferAsset)), nil
	case avm.AssetAmount:
		return avm.Uint64(t.AssetAmount), nil
	case avm.AssetSender:
		return avm.Bytestring(t.AssetSender[:]), nil
	case avm.AssetReceiver:
		return avm.Bytestring(t.AssetReceiver[:]), nil
	case avm.AssetCloseTo:
		return avm.Bytestring(t.AssetCloseTo[:]), nil
	case avm.GroupIndex:
		return avm.Uint64(uint64(groupIndex)), nil
	case avm.TxID:
		return avm.Bytestring(t.TxID), nil
	case avm.ApplicationID:
		return avm.Uint64(uint64(t.ApplicationID)), nil
	case avm.OnCompletion:
		return avm.Uint64(t.OnCompletion), nil
	case avm.ApplicationArgs:
		if arrayIndex < 0 || arrayIndex >= len(t.ApplicationArgs) {
			return avm.Value{}, fmt.Errorf("ledgertest: application arg index %d out of range", arrayIndex)
		}
		return avm.Bytestring(t.ApplicationArgs[arrayIndex]), nil
	case avm.NumAppArgs:
		return avm.Uint64(uint64(len(t.ApplicationArgs))), nil
	case avm.Accounts:
		if arrayIndex < 0 || arrayIndex >= len(t.Accounts) {
			return avm.Value{}, fmt.Errorf("ledgertest: account index %d out of range", arrayIndex)
		}
		return avm.Bytestring(t.Accounts[arrayIndex][:]), nil
	case avm.NumAccounts:
		return avm.Uint64(uint64(len(t.Accounts))), nil
	case avm.ApprovalProgram:
		return avm.Bytestring(t.ApprovalProgram), nil
	case avm.ClearStateProgram:
		return avm.Bytestring(t.ClearStateProgram), nil
	case avm.RekeyTo:
		return avm.Bytestring(t.RekeyTo[:]), nil
	case avm.ConfigAsset:
		return avm.Uint64(uint64(t.ConfigAsset)), nil
	case avm.Assets:
		if arrayIndex < 0 || arrayIndex >= len(t.Assets) {
			return avm.Value{}, fmt.Errorf("ledgertest: asset index %d out of range", arrayIndex)
		}
		return avm.Uint64(uint64(t.Assets[arrayIndex])), nil
	case avm.NumAssets:
		return avm.Uint64(uint64(len(t.Assets))), nil
	case avm.Applications:
		if arrayIndex < 0 || arrayIndex >= len(t.Applications) {
			return avm.Value{}, fmt.Errorf("ledgertest: application index %d out of range", arrayIndex)
		}
		return avm.Uint64(uint64(t.Applications[arrayIndex])), nil
	case avm.NumApplications:
		return avm.Uint64(uint64(len(t.Applications))), nil
	case avm.GlobalNumUint:
		return avm.Uint64(t.GlobalNumUint), nil
	case avm.GlobalNumByteSlice:
		return avm.Uint64(t.GlobalNumByteSlice), nil
	case avm.LocalNumUint:
		return avm.Uint64(t.LocalNumUint), nil
	case avm.LocalNumByteSlice:
		return avm.Uint64(t.LocalNumByteSlice), nil
	case avm.CreatedAssetID:
		return avm.Uint64(uint64(t.CreatedAssetID)), nil
	case avm.CreatedApplicationID:
		return avm.Uint64(uint64(t.CreatedApplicationID)), nil
	}
	return avm.Value{}, fmt.Errorf("ledgertest: unknown txn field %v", field)
}

func (l *Ledger) GlobalField(field avm.GlobalField) (avm.Value, error) {
	switch field {
	case avm.GroupSizeField:
		return avm.Uint64(uint64(len(l.group))), nil
	case avm.MinTxnFee:
		return avm.Uint64(l.global.MinTxnFee), nil
	case avm.MinBalance:
		return avm.Uint64(l.global.MinBalance), nil
	case avm.MaxTxnLife:
		return avm.Uint64(l.global.MaxTxnLife), nil
	case avm.ZeroAddress:
		return avm.Bytestring(l.global.ZeroAddress[:]), nil
	case avm.LogicSigVersionField:
		return avm.Uint64(l.global.LogicSigVersion), nil
	case avm.Round:
		return avm.Uint64(l.global.Round), nil
	case avm.LatestTimestamp:
		return avm.Uint64(l.global.LatestTimestamp), nil
	case avm.CurrentApplicationID:
		return avm.Uint64(uint64(l.currentApp)), nil
	case avm.CreatorAddress:
		app, ok := l.apps[l.currentApp]
		if !ok {
			return avm.Value{}, fmt.Errorf("ledgertest: no current app")
		}
		return avm.Bytestring(app.creator[:]), nil
	}
	return avm.Value{}, fmt.Errorf("ledgertest: unknown global field %v", field)
}

func (l *Ledger) Log(appID avm.AppID, msg []byte) error {
	app, ok := l.apps[appID]
	if !ok {
		return fmt.Errorf("ledgertest: no such app %d", appID)
	}
	_ = app // logs are accepted and discarded; nothing in this test ledger reads them back.
	return nil
}

func boolUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
