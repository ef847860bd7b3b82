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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/algorand-avm/tealvm/avm"
	"github.com/algorand-avm/tealvm/internal/logging"
	"github.com/algorand-avm/tealvm/ledgertest"
)

var (
	executeType      string
	executeMode      string
	executeBudget    int
	executeVersion   uint64
	executeStep      bool
	executeShowStack bool
	executeArgs      []string
)

var executeCmd = &cobra.Command{
	Use:   "execute <path>",
	Short: "Run a TEAL program and report its verdict",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExecute(args[0])
	},
}

func init() {
	executeCmd.Flags().StringVar(&executeType, "type", "file", "input kind: file, inline or bytecode")
	executeCmd.Flags().StringVar(&executeMode, "mode", "signature", "run mode: signature or application")
	executeCmd.Flags().IntVar(&executeBudget, "budget", avm.DefaultCostBudget, "opcode cost budget for this run")
	executeCmd.Flags().Uint64Var(&executeVersion, "version", avm.MaxVersion, "maximum program version to admit")
	executeCmd.Flags().BoolVar(&executeStep, "step", false, "print each instruction as it executes")
	executeCmd.Flags().BoolVar(&executeShowStack, "show-stack", false, "print the stack top after each instruction (implies --step)")
	executeCmd.Flags().StringArrayVar(&executeArgs, "arg", nil, "hex-encoded LogicSig argument (repeatable)")
}

func runExecute(path string) error {
	mode, err := parseRunMode(executeMode)
	if err != nil {
		return err
	}

	bytecode, err := programBytes(executeType, path)
	if err != nil {
		return err
	}

	program, err := avm.LoadProgram(bytecode, executeVersion)
	if err != nil {
		return internalErrorf("loading program: %w", err)
	}

	args, err := decodeHexArgs(executeArgs)
	if err != nil {
		return usageErrorf("%w", err)
	}

	cfg := avm.Config{
		RunMode:    mode,
		CostBudget: executeBudget,
		Version:    executeVersion,
		GroupIndex: 0,
		GroupSize:  1,
	}

	var tracer avm.Tracer
	if executeStep || executeShowStack {
		stepLog := logging.NewLogger()
		stepLog.SetOutput(os.Stdout)
		stepLog.SetLevel(logging.Debug)
		tracer = &stepTracer{log: stepLog, showStack: executeShowStack}
	}

	ledger := ledgertest.New()
	result := avm.Eval(program, cfg, ledger, args, tracer)

	switch result.State {
	case avm.Halted:
		if result.Verdict {
			fmt.Println("PASS")
			return nil
		}
		fmt.Println("REJECT")
		return rejectf("program rejected at pc %d", result.PC)
	case avm.Errored:
		fmt.Fprintf(os.Stderr, "ERROR at pc %d: %s\n", result.PC, result.Err)
		return internalErrorf("%w", result.Err)
	default:
		return internalErrorf("unexpected terminal state %v", result.State)
	}
}

func parseRunMode(s string) (avm.RunMode, error) {
	switch s {
	case "signature":
		return avm.ModeSignature, nil
	case "application":
		return avm.ModeApplication, nil
	default:
		return 0, usageErrorf("unknown --mode %q, want signature or application", s)
	}
}

func decodeHexArgs(hexArgs []string) ([][]byte, error) {
	if len(hexArgs) == 0 {
		return nil, nil
	}
	out := make([][]byte, len(hexArgs))
	for i, a := range hexArgs {
		b, err := hex.DecodeString(a)
		if err != nil {
			return nil, fmt.Errorf("--arg %q is not valid hex: %w", a, err)
		}
		out[i] = b
	}
	return out, nil
}
