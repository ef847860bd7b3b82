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

func TestEvalByteMathAddition(t *testing.T) {
	src := `#pragma version 4
byte 0x00ff
byte 0x0001
b+
byte 0x0100
==
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalByteMathSubtractionUnderflowFaults(t *testing.T) {
	src := `#pragma version 4
byte 0x01
byte 0x02
b-
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.ArithmeticOverflow, kind)
}

func TestEvalByteMathDivisionByZeroFaults(t *testing.T) {
	src := `#pragma version 4
byte 0x0a
byte 0x00
b/
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.DivisionByZero, kind)
}

func TestEvalByteMathZeroResultIsSingleZeroByte(t *testing.T) {
	src := `#pragma version 4
byte 0x05
byte 0x05
b-
byte 0x00
==
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalByteMathComparison(t *testing.T) {
	src := `#pragma version 4
byte 0x0005
byte 0x0009
b<
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}
