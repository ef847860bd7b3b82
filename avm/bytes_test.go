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
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand-avm/tealvm/avm"
	"github.com/algorand-avm/tealvm/ledgertest"
)

func TestEvalConcatAndLen(t *testing.T) {
	src := `#pragma version 3
byte 0x0102
byte 0x0304
concat
len
pushint 4
==
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalItobBtoiRoundTrip(t *testing.T) {
	src := `#pragma version 3
pushint 12345
itob
btoi
pushint 12345
==
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalConcatTooLong(t *testing.T) {
	// A maximal byte string concatenated with one more byte exceeds the 4096-byte cap.
	long := make([]byte, 4096)
	for i := range long {
		long[i] = 0x41
	}

	src := "#pragma version 3\nbyte 0x" + hex.EncodeToString(long) + "\nbyte 0x01\nconcat\n"
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(1000), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.BytesTooLong, kind)
}
