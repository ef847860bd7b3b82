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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUintMaxValue(t *testing.T) {
	v, err := parseUint("18446744073709551615")
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709551615), v)
}

func TestParseUintRejectsNegative(t *testing.T) {
	_, err := parseUint("-1")
	require.Error(t, err)
}

func TestParseUintHexHighBit(t *testing.T) {
	v, err := parseUint("0xffffffffffffffff")
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709551615), v)
}

func TestParseIntSignedRange(t *testing.T) {
	v, err := parseInt("-128")
	require.NoError(t, err)
	require.Equal(t, int64(-128), v)
}
