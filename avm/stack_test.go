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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand-avm/tealvm/avm"
	"github.com/algorand-avm/tealvm/ledgertest"
)

func TestEvalSwap(t *testing.T) {
	// pushint 1, pushint 2, swap -> top is 1, approve iff nonzero.
	src := `#pragma version 3
pushint 1
pushint 2
swap
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict) // top after swap is the original bottom value, 1
}

func TestEvalDig(t *testing.T) {
	// dig 1 duplicates the second-from-top value onto the top.
	src := `#pragma version 3
pushint 5
pushint 0
dig 1
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict) // top is the dug copy of 5
}

func TestEvalLoadStoreScratch(t *testing.T) {
	src := `#pragma version 3
pushint 77
store 3
pushint 0
load 3
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalUntouchedScratchIsZero(t *testing.T) {
	src := `#pragma version 3
load 200
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.False(t, result.Verdict) // untouched slot reads as Uint(0)
}

// Repeated pushint past MaxStackDepth must fault with StackOverflow rather
// than growing the operand stack without bound.
func TestEvalPushIntStackOverflow(t *testing.T) {
	var src strings.Builder
	src.WriteString("#pragma version 8\n")
	for i := 0; i < avm.MaxStackDepth+1; i++ {
		src.WriteString("pushint 1\n")
	}
	p := mustAssemble(t, src.String())
	result := avm.Eval(p, signatureConfig(avm.MaxStackDepth+10), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.StackOverflow, kind)
}

func TestEvalStackUnderflow(t *testing.T) {
	p := mustAssemble(t, "#pragma version 3\npop\n")
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.StackUnderflow, kind)
}
