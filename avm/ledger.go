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

import "encoding/hex"

// Address is a 32-byte Algorand account address (the raw ed25519 public key,
// without the base32 checksum the textual form carries).
type Address [32]byte

func (a Address) String() string { return hex.EncodeToString(a[:]) }

// IsZero reports whether a is the all-zero address.
func (a Address) IsZero() bool { return a == Address{} }

// AssetID identifies an Algorand Standard Asset.
type AssetID uint64

// AppID identifies a stateful application.
type AppID uint64

// MicroAlgos is an amount of microAlgos, the base Algorand currency unit.
type MicroAlgos uint64

// LedgerForLogic is the abstract, read-mostly capability set the interpreter
// consumes for transaction introspection and application/asset state. It is
// the sole point of contact between the interpreter and the host's concrete
// storage; the interpreter holds only this interface, never a concrete
// ledger type.
//
// Implementations must reject mutation in LogicSig runs themselves if they
// are handed out in a context where that matters; the interpreter separately
// enforces the RunMode gate in its opcode registry so AppGlobalPut et al. are
// never reachable from a Signature-mode run in the first place.
type LedgerForLogic interface {
	// Balance returns the account's current microAlgo balance.
	Balance(addr Address) (MicroAlgos, error)
	// MinBalance returns the account's minimum required balance.
	MinBalance(addr Address) (MicroAlgos, error)

	// AppGlobalGet reads a key from appID's global state. ok is false, value
	// zero, when the key is absent (the interpreter substitutes Uint(0)).
	AppGlobalGet(appID AppID, key []byte) (value Value, ok bool, err error)
	// AppGlobalPut writes a key in appID's global state. Application mode only.
	AppGlobalPut(appID AppID, key []byte, value Value) error
	// AppGlobalDel removes a key from appID's global state. Application mode only.
	AppGlobalDel(appID AppID, key []byte) error

	// AppLocalGet reads a key from addr's local state under appID.
	AppLocalGet(addr Address, appID AppID, key []byte) (value Value, ok bool, err error)
	// AppLocalPut writes a key in addr's local state under appID. Application mode only.
	AppLocalPut(addr Address, appID AppID, key []byte, value Value) error
	// AppLocalDel removes a key from addr's local state under appID. Application mode only.
	AppLocalDel(addr Address, appID AppID, key []byte) error

	// AssetHolding reads a field of addr's holding of assetID. ok is false if
	// addr has no holding of that asset.
	AssetHolding(addr Address, assetID AssetID, field AssetHoldingField) (value Value, ok bool, err error)
	// AssetParams reads a field of assetID's parameters. ok is false if the
	// asset does not exist.
	AssetParams(assetID AssetID, field AssetParamsField) (value Value, ok bool, err error)
	// AppParams reads a field of appID's parameters. ok is false if the
	// application does not exist.
	AppParams(appID AppID, field AppParamsField) (value Value, ok bool, err error)

	// TxnField reads a field of the transaction at groupIndex within the
	// enclosing group. arrayIndex is used only for array fields (txna/gtxna);
	// it is ignored for scalar fields.
	TxnField(groupIndex int, field TxnField, arrayIndex int) (Value, error)
	// GlobalField reads a field exposed by the 'global' opcode.
	GlobalField(field GlobalField) (Value, error)

	// Log appends msg to appID's log buffer for this run. Application mode only.
	Log(appID AppID, msg []byte) error
}
