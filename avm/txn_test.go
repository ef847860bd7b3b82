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

package avm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand-avm/tealvm/avm"
	"github.com/algorand-avm/tealvm/ledgertest"
)

func TestEvalTxnSenderField(t *testing.T) {
	var sender avm.Address
	sender[0] = 0xaa

	ledger := ledgertest.New()
	ledger.SetGroup([]ledgertest.Txn{{Sender: sender}}, avm.AppID(0))

	src := `#pragma version 3
txn Sender
len
pushint 32
==
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledger, nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalGlobalMinTxnFee(t *testing.T) {
	ledger := ledgertest.New()
	ledger.SetGlobalState(ledgertest.GlobalState{MinTxnFee: 1000})
	ledger.SetGroup([]ledgertest.Txn{{}}, avm.AppID(0))

	src := `#pragma version 3
global MinTxnFee
pushint 1000
==
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledger, nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalAppOptedInAfterOptIn(t *testing.T) {
	var addr avm.Address
	addr[0] = 0xbb

	ledger := ledgertest.New()
	ledger.NewApp(avm.Address{}, avm.AppID(7))
	ledger.NewAccount(addr, 1_000_000)
	ledger.OptIn(addr, avm.AppID(7))
	ledger.SetGroup([]ledgertest.Txn{{Accounts: []avm.Address{addr}, ApplicationID: avm.AppID(7)}}, avm.AppID(7))

	src := `#pragma version 3
pushint 0
pushint 7
app_opted_in
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, applicationConfig(100), ledger, nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalAppLocalPutThenGet(t *testing.T) {
	var addr avm.Address
	addr[0] = 0xcc

	ledger := ledgertest.New()
	ledger.NewApp(avm.Address{}, avm.AppID(9))
	ledger.NewAccount(addr, 1_000_000)
	ledger.OptIn(addr, avm.AppID(9))
	ledger.SetGroup([]ledgertest.Txn{{Accounts: []avm.Address{addr}, ApplicationID: avm.AppID(9)}}, avm.AppID(9))

	src := `#pragma version 3
pushint 0
byte "score"
pushint 99
app_local_put
pushint 0
byte "score"
app_local_get
pushint 99
==
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, applicationConfig(100), ledger, nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalAppOptedInFalseForStranger(t *testing.T) {
	var addr avm.Address
	addr[0] = 0xdd

	ledger := ledgertest.New()
	ledger.NewApp(avm.Address{}, avm.AppID(3))
	ledger.NewAccount(addr, 1_000_000)
	// no OptIn call
	ledger.SetGroup([]ledgertest.Txn{{Accounts: []avm.Address{addr}, ApplicationID: avm.AppID(3)}}, avm.AppID(3))

	src := `#pragma version 3
pushint 0
pushint 3
app_opted_in
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, applicationConfig(100), ledger, nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.False(t, result.Verdict)
}
