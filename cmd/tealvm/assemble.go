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
	"encoding/base64"
	"encoding/hex"
	"os"

	"github.com/spf13/cobra"

	"github.com/algorand-avm/tealvm/asm"
)

var (
	assembleOutput string
	assembleFormat string
)

var assembleCmd = &cobra.Command{
	Use:   "assemble <path>",
	Short: "Assemble TEAL source into bytecode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssemble(args[0])
	},
}

func init() {
	assembleCmd.Flags().StringVarP(&assembleOutput, "output", "o", "", "output path (default: stdout)")
	assembleCmd.Flags().StringVar(&assembleFormat, "format", "binary", "output encoding: binary, hex or base64")
}

func runAssemble(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return usageErrorf("reading %s: %w", path, err)
	}

	program, err := asm.Assemble(string(src))
	if err != nil {
		return rejectf("assembling %s: %w", path, err)
	}

	var encoded []byte
	switch assembleFormat {
	case "binary":
		encoded = program
	case "hex":
		encoded = []byte(hex.EncodeToString(program))
	case "base64":
		encoded = []byte(base64.StdEncoding.EncodeToString(program))
	default:
		return usageErrorf("unknown --format %q, want binary, hex or base64", assembleFormat)
	}

	if assembleOutput == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(assembleOutput, encoded, 0644)
}
