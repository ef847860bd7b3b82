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

package asm

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand-avm/tealvm/avm"
)

func TestAssembleArithmetic(t *testing.T) {
	src := `#pragma version 6
int 1
int 2
+
`
	program, err := Assemble(src)
	require.NoError(t, err)

	want, _ := hex.DecodeString("068101810208")
	require.Equal(t, want, program)
}

func TestAssembleBranchToLabel(t *testing.T) {
	src := `#pragma version 6
int 1
bnz done
err
done:
int 2
`
	program, err := Assemble(src)
	require.NoError(t, err)

	want, _ := hex.DecodeString("068101400001008102")
	require.Equal(t, want, program)
}

func TestAssembleUnknownOpcode(t *testing.T) {
	_, err := Assemble("#pragma version 6\nnotanopcode\n")
	require.Error(t, err)
	var aerr *avm.AssemblyError
	require.ErrorAs(t, err, &aerr)
}

func TestAssembleUndefinedLabel(t *testing.T) {
	_, err := Assemble("#pragma version 6\nint 1\nbnz nowhere\n")
	require.Error(t, err)
}

func TestAssembleByteLiteralForms(t *testing.T) {
	src := `#pragma version 6
byte 0x0102
byte "hi"
byte base64 aGk=
byte base64(aGk=)
byte b64(aGk=)
byte base32(NBUQ)
byte b32(NBUQ)
`
	program, err := Assemble(src)
	require.NoError(t, err)

	p, err := avm.LoadProgram(program, avm.MaxVersion)
	require.NoError(t, err)
	require.EqualValues(t, 6, p.Version)
}

// The name(...) encodings are equivalent to their space-separated forms.
func TestParseByteLiteralParenForms(t *testing.T) {
	spaceForm, err := parseByteLiteral("base64 aGk=")
	require.NoError(t, err)
	parenForm, err := parseByteLiteral("base64(aGk=)")
	require.NoError(t, err)
	require.Equal(t, spaceForm, parenForm)

	spaceForm, err = parseByteLiteral("b64 aGk=")
	require.NoError(t, err)
	parenForm, err = parseByteLiteral("b64(aGk=)")
	require.NoError(t, err)
	require.Equal(t, spaceForm, parenForm)

	spaceForm, err = parseByteLiteral("base32 NBUQ")
	require.NoError(t, err)
	parenForm, err = parseByteLiteral("base32(NBUQ)")
	require.NoError(t, err)
	require.Equal(t, spaceForm, parenForm)

	spaceForm, err = parseByteLiteral("b32 NBUQ")
	require.NoError(t, err)
	parenForm, err = parseByteLiteral("b32(NBUQ)")
	require.NoError(t, err)
	require.Equal(t, spaceForm, parenForm)
}

func TestAssembleFieldMnemonics(t *testing.T) {
	src := `#pragma version 6
txn Sender
global MinTxnFee
gtxn 0 Receiver
asset_holding_get AssetBalance
`
	program, err := Assemble(src)
	require.NoError(t, err)
	_, err = avm.LoadProgram(program, avm.MaxVersion)
	require.NoError(t, err)
}

func TestAssembleDisassembleRoundTrip(t *testing.T) {
	src := `#pragma version 6
int 1
bnz skip
byte 0x010203
pop
skip:
int 2
+
return
`
	program, err := Assemble(src)
	require.NoError(t, err)

	p, err := avm.LoadProgram(program, avm.MaxVersion)
	require.NoError(t, err)

	text, err := avm.Disassemble(p)
	require.NoError(t, err)

	reassembled, err := Assemble(text)
	require.NoError(t, err)
	require.Equal(t, program, reassembled, "disassembled text %q did not reassemble to the same bytes", text)
}

func TestAssembleMethodSelector(t *testing.T) {
	src := `#pragma version 6
method "transfer(address,uint64)void"
`
	program, err := Assemble(src)
	require.NoError(t, err)
	require.Equal(t, byte(0x80), program[1]) // pushbytes opcode
	require.Equal(t, byte(4), program[2])    // 4-byte selector length
}
