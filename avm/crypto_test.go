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
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand-avm/tealvm/avm"
	"github.com/algorand-avm/tealvm/ledgertest"
)

func TestEvalSha256KnownVector(t *testing.T) {
	sum := sha256.Sum256([]byte("abc"))
	src := "#pragma version 3\nbyte \"abc\"\nsha256\nbyte 0x" + hex.EncodeToString(sum[:]) + "\n==\nreturn\n"
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(1000), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalEd25519VerifyValidSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	data := []byte("hello world")
	sig := ed25519.Sign(priv, data)

	src := "#pragma version 3\n" +
		"byte \"hello world\"\n" +
		"byte 0x" + hex.EncodeToString(sig) + "\n" +
		"byte 0x" + hex.EncodeToString(pub) + "\n" +
		"ed25519verify\n" +
		"return\n"
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(5000), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalEd25519VerifyRejectsTamperedSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	data := []byte("hello world")
	sig := ed25519.Sign(priv, data)
	sig[0] ^= 0xff // corrupt the signature

	src := "#pragma version 3\n" +
		"byte \"hello world\"\n" +
		"byte 0x" + hex.EncodeToString(sig) + "\n" +
		"byte 0x" + hex.EncodeToString(pub) + "\n" +
		"ed25519verify\n" +
		"return\n"
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(5000), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.False(t, result.Verdict)
}

func TestEvalSha256CostExactBudget(t *testing.T) {
	// byte(1) + sha256(35) + pop(1) + pushint(1) + return(1) = 39, exactly the budget.
	src := "#pragma version 3\nbyte 0x0102\nsha256\npop\npushint 1\nreturn\n"
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(39), ledgertest.New(), nil, nil)
	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}
