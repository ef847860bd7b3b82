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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand-avm/tealvm/avm"
)

func TestParseRunMode(t *testing.T) {
	m, err := parseRunMode("signature")
	require.NoError(t, err)
	require.Equal(t, avm.ModeSignature, m)

	m, err = parseRunMode("application")
	require.NoError(t, err)
	require.Equal(t, avm.ModeApplication, m)

	_, err = parseRunMode("bogus")
	require.Error(t, err)
	var ee *exitError
	require.True(t, asExitError(err, &ee))
	require.Equal(t, 2, ee.code)
}

func TestDecodeHexArgs(t *testing.T) {
	out, err := decodeHexArgs([]string{"0102", "ff"})
	require.NoError(t, err)
	require.Equal(t, [][]byte{{0x01, 0x02}, {0xff}}, out)

	_, err = decodeHexArgs([]string{"not-hex"})
	require.Error(t, err)
}

func TestProgramBytesInline(t *testing.T) {
	program, err := programBytes("inline", "#pragma version 6\nint 1\n")
	require.NoError(t, err)
	require.NotEmpty(t, program)

	p, err := avm.LoadProgram(program, avm.MaxVersion)
	require.NoError(t, err)
	require.EqualValues(t, 6, p.Version)
}

func TestProgramBytesUnknownType(t *testing.T) {
	_, err := programBytes("nonsense", "whatever")
	require.Error(t, err)
	var ee *exitError
	require.True(t, asExitError(err, &ee))
	require.Equal(t, 2, ee.code)
}

func TestRunExecuteApprove(t *testing.T) {
	executeType = "inline"
	executeMode = "signature"
	executeBudget = avm.DefaultCostBudget
	executeVersion = avm.MaxVersion
	executeStep = false
	executeShowStack = false
	executeArgs = nil

	err := runExecute("#pragma version 6\nint 1\nreturn\n")
	require.NoError(t, err)
}

func TestRunExecuteReject(t *testing.T) {
	executeType = "inline"
	executeMode = "signature"
	executeBudget = avm.DefaultCostBudget
	executeVersion = avm.MaxVersion
	executeStep = false
	executeShowStack = false
	executeArgs = nil

	err := runExecute("#pragma version 6\nint 0\nreturn\n")
	require.Error(t, err)
	var ee *exitError
	require.True(t, asExitError(err, &ee))
	require.Equal(t, 1, ee.code)
}
