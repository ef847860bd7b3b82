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

// TxnField is an enum for the 'txn'/'gtxn'/'txna'/'gtxna' opcodes' field
// immediate. Values keep the real AVM's relative field order over the fields
// this module supports, but omitted fields (FirstValidTime, for one) take no
// number, so from LastValid on the values differ from the published field
// numbers. The disassembler prints field names, not these numbers.
type TxnField int

const (
	Sender TxnField = iota
	Fee
	FirstValid
	LastValid
	Note
	Lease
	Receiver
	Amount
	CloseRemainderTo
	VotePK
	SelectionPK
	VoteFirst
	VoteLast
	VoteKeyDilution
	Type
	TypeEnum
	XferAsset
	AssetAmount
	AssetSender
	AssetReceiver
	AssetCloseTo
	GroupIndex
	TxID
	ApplicationID
	OnCompletion
	ApplicationArgs
	NumAppArgs
	Accounts
	NumAccounts
	ApprovalProgram
	ClearStateProgram
	RekeyTo
	ConfigAsset
	Assets
	NumAssets
	Applications
	NumApplications
	GlobalNumUint
	GlobalNumByteSlice
	LocalNumUint
	LocalNumByteSlice
	CreatedAssetID
	CreatedApplicationID

	numTxnFields
)

type txnFieldSpec struct {
	name    string
	ftype   StackType
	array   bool // indexable via txna/gtxna, and requires an array index immediate
	version uint64
}

var txnFieldSpecs = [numTxnFields]txnFieldSpec{
	Sender:                {"Sender", StackBytes, false, 1},
	Fee:                   {"Fee", StackUint64, false, 1},
	FirstValid:            {"FirstValid", StackUint64, false, 1},
	LastValid:             {"LastValid", StackUint64, false, 1},
	Note:                  {"Note", StackBytes, false, 1},
	Lease:                 {"Lease", StackBytes, false, 1},
	Receiver:              {"Receiver", StackBytes, false, 1},
	Amount:                {"Amount", StackUint64, false, 1},
	CloseRemainderTo:      {"CloseRemainderTo", StackBytes, false, 1},
	VotePK:                {"VotePK", StackBytes, false, 1},
	SelectionPK:           {"SelectionPK", StackBytes, false, 1},
	VoteFirst:             {"VoteFirst", StackUint64, false, 1},
	VoteLast:              {"VoteLast", StackUint64, false, 1},
	VoteKeyDilution:       {"VoteKeyDilution", StackUint64, false, 1},
	Type:                  {"Type", StackBytes, false, 1},
	TypeEnum:              {"TypeEnum", StackUint64, false, 1},
	XferAsset:             {"XferAsset", StackUint64, false, 1},
	AssetAmount:           {"AssetAmount", StackUint64, false, 1},
	AssetSender:           {"AssetSender", StackBytes, false, 1},
	AssetReceiver:         {"AssetReceiver", StackBytes, false, 1},
	AssetCloseTo:          {"AssetCloseTo", StackBytes, false, 1},
	GroupIndex:            {"GroupIndex", StackUint64, false, 1},
	TxID:                  {"TxID", StackBytes, false, 1},
	ApplicationID:         {"ApplicationID", StackUint64, false, 2},
	OnCompletion:          {"OnCompletion", StackUint64, false, 2},
	ApplicationArgs:       {"ApplicationArgs", StackBytes, true, 2},
	NumAppArgs:            {"NumAppArgs", StackUint64, false, 2},
	Accounts:              {"Accounts", StackBytes, true, 2},
	NumAccounts:           {"NumAccounts", StackUint64, false, 2},
	ApprovalProgram:       {"ApprovalProgram", StackBytes, false, 2},
	ClearStateProgram:     {"ClearStateProgram", StackBytes, false, 2},
	RekeyTo:               {"RekeyTo", StackBytes, false, 2},
	ConfigAsset:           {"ConfigAsset", StackUint64, false, 2},
	Assets:                {"Assets", StackUint64, true, 3},
	NumAssets:             {"NumAssets", StackUint64, false, 3},
	Applications:          {"Applications", StackUint64, true, 3},
	NumApplications:       {"NumApplications", StackUint64, false, 3},
	GlobalNumUint:         {"GlobalNumUint", StackUint64, false, 3},
	GlobalNumByteSlice:    {"GlobalNumByteSlice", StackUint64, false, 3},
	LocalNumUint:          {"LocalNumUint", StackUint64, false, 3},
	LocalNumByteSlice:     {"LocalNumByteSlice", StackUint64, false, 3},
	CreatedAssetID:        {"CreatedAssetID", StackUint64, false, 6},
	CreatedApplicationID:  {"CreatedApplicationID", StackUint64, false, 6},
}

// String returns the assembler mnemonic for f.
func (f TxnField) String() string {
	if f < 0 || f >= numTxnFields {
		return "TxnField(?)"
	}
	return txnFieldSpecs[f].name
}

// Type reports the stack shape this field pushes.
func (f TxnField) Type() StackType {
	return txnFieldSpecs[f].ftype
}

// Array reports whether this field must be indexed (txna/gtxna), as opposed
// to a scalar field usable with plain txn/gtxn.
func (f TxnField) Array() bool {
	return txnFieldSpecs[f].array
}

// lookupTxnField resolves an assembler mnemonic to its TxnField, or false if unknown.
func lookupTxnField(name string) (TxnField, bool) {
	for i := TxnField(0); i < numTxnFields; i++ {
		if txnFieldSpecs[i].name == name {
			return i, true
		}
	}
	return 0, false
}

// LookupTxnField resolves a 'txn'/'gtxn' field mnemonic for the assembler.
func LookupTxnField(name string) (TxnField, bool) { return lookupTxnField(name) }

// GlobalField is an enum for the 'global' opcode's field immediate.
type GlobalField int

const (
	GroupSizeField GlobalField = iota
	MinTxnFee
	MinBalance
	MaxTxnLife
	ZeroAddress
	LogicSigVersionField
	Round
	LatestTimestamp
	CurrentApplicationID
	CreatorAddress

	numGlobalFields
)

type globalFieldSpec struct {
	name    string
	ftype   StackType
	mode    RunMode
	version uint64
}

var globalFieldSpecs = [numGlobalFields]globalFieldSpec{
	GroupSizeField:        {"GroupSize", StackUint64, modeAny, 1},
	MinTxnFee:             {"MinTxnFee", StackUint64, modeAny, 1},
	MinBalance:            {"MinBalance", StackUint64, modeAny, 1},
	MaxTxnLife:            {"MaxTxnLife", StackUint64, modeAny, 1},
	ZeroAddress:           {"ZeroAddress", StackBytes, modeAny, 1},
	LogicSigVersionField:  {"LogicSigVersion", StackUint64, modeAny, 2},
	Round:                 {"Round", StackUint64, ModeApplication, 2},
	LatestTimestamp:       {"LatestTimestamp", StackUint64, ModeApplication, 2},
	CurrentApplicationID:  {"CurrentApplicationID", StackUint64, ModeApplication, 2},
	CreatorAddress:        {"CreatorAddress", StackBytes, ModeApplication, 3},
}

func (f GlobalField) String() string {
	if f < 0 || f >= numGlobalFields {
		return "GlobalField(?)"
	}
	return globalFieldSpecs[f].name
}

func (f GlobalField) Type() StackType { return globalFieldSpecs[f].ftype }

func lookupGlobalField(name string) (GlobalField, bool) {
	for i := GlobalField(0); i < numGlobalFields; i++ {
		if globalFieldSpecs[i].name == name {
			return i, true
		}
	}
	return 0, false
}

// LookupGlobalField resolves a 'global' field mnemonic for the assembler.
func LookupGlobalField(name string) (GlobalField, bool) { return lookupGlobalField(name) }

// AssetHoldingField is an enum for 'asset_holding_get'.
type AssetHoldingField int

const (
	AssetBalance AssetHoldingField = iota
	AssetFrozen

	numAssetHoldingFields
)

var assetHoldingFieldNames = [numAssetHoldingFields]string{
	AssetBalance: "AssetBalance",
	AssetFrozen:  "AssetFrozen",
}

func (f AssetHoldingField) String() string {
	if f < 0 || f >= numAssetHoldingFields {
		return "AssetHoldingField(?)"
	}
	return assetHoldingFieldNames[f]
}

func lookupAssetHoldingField(name string) (AssetHoldingField, bool) {
	for i := AssetHoldingField(0); i < numAssetHoldingFields; i++ {
		if assetHoldingFieldNames[i] == name {
			return i, true
		}
	}
	return 0, false
}

// LookupAssetHoldingField resolves an 'asset_holding_get' field mnemonic.
func LookupAssetHoldingField(name string) (AssetHoldingField, bool) { return lookupAssetHoldingField(name) }

// AssetParamsField is an enum for 'asset_params_get'.
type AssetParamsField int

const (
	AssetTotal AssetParamsField = iota
	AssetDecimals
	AssetDefaultFrozen
	AssetUnitName
	AssetName
	AssetURL
	AssetMetadataHash
	AssetManager
	AssetReserve
	AssetFreeze
	AssetClawback
	AssetCreator

	numAssetParamsFields
)

type assetParamsFieldSpec struct {
	name  string
	ftype StackType
}

var assetParamsFieldSpecs = [numAssetParamsFields]assetParamsFieldSpec{
	AssetTotal:         {"AssetTotal", StackUint64},
	AssetDecimals:      {"AssetDecimals", StackUint64},
	AssetDefaultFrozen: {"AssetDefaultFrozen", StackUint64},
	AssetUnitName:      {"AssetUnitName", StackBytes},
	AssetName:          {"AssetName", StackBytes},
	AssetURL:           {"AssetURL", StackBytes},
	AssetMetadataHash:  {"AssetMetadataHash", StackBytes},
	AssetManager:       {"AssetManager", StackBytes},
	AssetReserve:       {"AssetReserve", StackBytes},
	AssetFreeze:        {"AssetFreeze", StackBytes},
	AssetClawback:      {"AssetClawback", StackBytes},
	AssetCreator:       {"AssetCreator", StackBytes},
}

func (f AssetParamsField) String() string {
	if f < 0 || f >= numAssetParamsFields {
		return "AssetParamsField(?)"
	}
	return assetParamsFieldSpecs[f].name
}

func lookupAssetParamsField(name string) (AssetParamsField, bool) {
	for i := AssetParamsField(0); i < numAssetParamsFields; i++ {
		if assetParamsFieldSpecs[i].name == name {
			return i, true
		}
	}
	return 0, false
}

// LookupAssetParamsField resolves an 'asset_params_get' field mnemonic.
func LookupAssetParamsField(name string) (AssetParamsField, bool) { return lookupAssetParamsField(name) }

// AppParamsField is an enum for 'app_params_get'.
type AppParamsField int

const (
	AppApprovalProgram AppParamsField = iota
	AppClearStateProgram
	AppGlobalNumUint
	AppGlobalNumByteSlice
	AppLocalNumUint
	AppLocalNumByteSlice
	AppExtraProgramPages
	AppCreator
	AppAddress

	numAppParamsFields
)

type appParamsFieldSpec struct {
	name  string
	ftype StackType
}

var appParamsFieldSpecs = [numAppParamsFields]appParamsFieldSpec{
	AppApprovalProgram:    {"AppApprovalProgram", StackBytes},
	AppClearStateProgram:  {"AppClearStateProgram", StackBytes},
	AppGlobalNumUint:      {"AppGlobalNumUint", StackUint64},
	AppGlobalNumByteSlice: {"AppGlobalNumByteSlice", StackUint64},
	AppLocalNumUint:       {"AppLocalNumUint", StackUint64},
	AppLocalNumByteSlice:  {"AppLocalNumByteSlice", StackUint64},
	AppExtraProgramPages:  {"AppExtraProgramPages", StackUint64},
	AppCreator:            {"AppCreator", StackBytes},
	AppAddress:            {"AppAddress", StackBytes},
}

func (f AppParamsField) String() string {
	if f < 0 || f >= numAppParamsFields {
		return "AppParamsField(?)"
	}
	return appParamsFieldSpecs[f].name
}

func lookupAppParamsField(name string) (AppParamsField, bool) {
	for i := AppParamsField(0); i < numAppParamsFields; i++ {
		if appParamsFieldSpecs[i].name == name {
			return i, true
		}
	}
	return 0, false
}

// LookupAppParamsField resolves an 'app_params_get' field mnemonic.
func LookupAppParamsField(name string) (AppParamsField, bool) { return lookupAppParamsField(name) }
