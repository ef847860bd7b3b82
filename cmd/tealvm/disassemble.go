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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algorand-avm/tealvm/avm"
)

var disassembleType string
var disassembleVersion uint64

var disassembleCmd = &cobra.Command{
	Use:   "disassemble <path>",
	Short: "Render assembled bytecode back into TEAL source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDisassemble(args[0])
	},
}

func init() {
	disassembleCmd.Flags().StringVar(&disassembleType, "type", "bytecode", "input kind: file, inline or bytecode")
	disassembleCmd.Flags().Uint64Var(&disassembleVersion, "version", avm.MaxVersion, "maximum program version to admit")
}

func runDisassemble(path string) error {
	bytecode, err := programBytes(disassembleType, path)
	if err != nil {
		return err
	}

	p, err := avm.LoadProgram(bytecode, disassembleVersion)
	if err != nil {
		return rejectf("loading %s: %w", path, err)
	}

	text, err := avm.Disassemble(p)
	if err != nil {
		return internalErrorf("disassembling %s: %w", path, err)
	}

	fmt.Print(text)
	return nil
}
