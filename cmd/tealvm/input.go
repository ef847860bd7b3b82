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
	"os"

	"github.com/algorand-avm/tealvm/asm"
)

// programBytes turns the execute/disassemble commands' shared
// --type/path argument pair into raw (version-prefixed) bytecode, assembling
// source text along the way when the input isn't already bytecode.
func programBytes(inputType, path string) ([]byte, error) {
	switch inputType {
	case "inline":
		program, err := asm.Assemble(path)
		if err != nil {
			return nil, usageErrorf("assembling inline source: %w", err)
		}
		return program, nil

	case "file":
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, usageErrorf("reading %s: %w", path, err)
		}
		program, err := asm.Assemble(string(src))
		if err != nil {
			return nil, usageErrorf("assembling %s: %w", path, err)
		}
		return program, nil

	case "bytecode":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, usageErrorf("reading %s: %w", path, err)
		}
		return raw, nil

	default:
		return nil, usageErrorf("unknown --type %q, want file, inline or bytecode", inputType)
	}
}
