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
	"os"

	"github.com/spf13/cobra"

	"github.com/algorand-avm/tealvm/asm"
	"github.com/algorand-avm/tealvm/avm"
)

var validateVersion uint64

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Assemble and load-check a TEAL program without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

func init() {
	validateCmd.Flags().Uint64Var(&validateVersion, "version", avm.MaxVersion, "maximum program version to admit")
}

func runValidate(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return usageErrorf("reading %s: %w", path, err)
	}

	program, err := asm.Assemble(string(src))
	if err != nil {
		return rejectf("assembling %s: %w", path, err)
	}

	p, err := avm.LoadProgram(program, validateVersion)
	if err != nil {
		return rejectf("loading %s: %w", path, err)
	}

	fmt.Printf("OK: version %d, %d instruction bytes\n", p.Version, len(p.Body))
	return nil
}
