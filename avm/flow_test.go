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

// A two-arg, one-return subroutine declared with proto, reading its args
// through frame_dig rather than the bare stack.
func TestEvalProtoFrameDigAddsArgs(t *testing.T) {
	src := `#pragma version 8
pushint 3
pushint 4
callsub add2
return
add2:
proto 2 1
frame_dig 0
frame_dig 1
+
retsub
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict) // 3 + 4 = 7, nonzero top approves
}

// frame_bury overwrites a framed local in place rather than pushing a new one.
func TestEvalFrameBuryOverwritesLocal(t *testing.T) {
	src := `#pragma version 8
pushint 1
callsub setone
return
setone:
proto 1 1
pushint 99
frame_bury 0
retsub
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict) // bury replaces the arg slot with 99
}

func TestEvalProtoWithoutCallsubFaults(t *testing.T) {
	p := mustAssemble(t, "#pragma version 8\nproto 0 0\n")
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.TypeError, kind)
}

// match pushes its case values first and the needle last; it must branch to
// the label paired with the case equal to the needle on top of the stack.
func TestEvalMatchBranchesToMatchingCase(t *testing.T) {
	src := `#pragma version 8
pushint 10
pushint 20
pushint 20
match case10 case20
pushint 0
return
case10:
pushint 111
return
case20:
pushint 222
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict) // branched to case20, top is 222
}

func TestEvalMatchFallsThroughWhenNoCaseMatches(t *testing.T) {
	src := `#pragma version 8
pushint 10
pushint 20
pushint 30
match case10 case20
pushint 0
return
case10:
pushint 111
return
case20:
pushint 222
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.False(t, result.Verdict) // no case equals 30, falls through to pushint 0
}
