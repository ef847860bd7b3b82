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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand-avm/tealvm/asm"
	"github.com/algorand-avm/tealvm/avm"
	"github.com/algorand-avm/tealvm/ledgertest"
)

func mustAssemble(t *testing.T, src string) *avm.Program {
	t.Helper()
	bytecode, err := asm.Assemble(src)
	require.NoError(t, err)
	p, err := avm.LoadProgram(bytecode, avm.MaxVersion)
	require.NoError(t, err)
	return p
}

func signatureConfig(budget int) avm.Config {
	return avm.Config{RunMode: avm.ModeSignature, CostBudget: budget, Version: avm.MaxVersion, GroupIndex: 0, GroupSize: 1}
}

func applicationConfig(budget int) avm.Config {
	return avm.Config{RunMode: avm.ModeApplication, CostBudget: budget, Version: avm.MaxVersion, GroupIndex: 0, GroupSize: 1}
}

// Scenario 1: arithmetic halt with approval.
func TestEvalArithmeticApproval(t *testing.T) {
	p := mustAssemble(t, "#pragma version 3\npushint 42\npushint 24\n+\nreturn\n")
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

// Scenario 2: division by zero.
func TestEvalDivisionByZero(t *testing.T) {
	p := mustAssemble(t, "#pragma version 3\npushint 10\npushint 0\n/\n")
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.DivisionByZero, kind)
}

// Scenario 3: branch taken.
func TestEvalBranchTaken(t *testing.T) {
	src := `#pragma version 3
pushint 1
bnz skip
err
skip:
pushint 7
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

// Scenario 4: subroutine call and return, plus retsub underflow.
func TestEvalSubroutine(t *testing.T) {
	src := `#pragma version 4
callsub sub
return
sub:
pushint 1
retsub
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

func TestEvalRetsubUnderflow(t *testing.T) {
	p := mustAssemble(t, "#pragma version 4\nretsub\n")
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.CallStackUnderflow, kind)
}

// Scenario 5: cost exhaustion on the first unaffordable sha256.
func TestEvalCostExhaustion(t *testing.T) {
	src := `#pragma version 3
byte 0x0102
sha256
sha256
sha256
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.CostBudgetExceeded, kind)
}

// Scenario 6: mode violation.
func TestEvalModeViolation(t *testing.T) {
	src := `#pragma version 3
byte "k"
pushint 1
app_global_put
pushint 1
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.ModeError, kind)
}

func TestEvalModeAllowedInApplication(t *testing.T) {
	src := `#pragma version 3
byte "k"
pushint 1
app_global_put
pushint 1
return
`
	p := mustAssemble(t, src)
	ledger := ledgertest.New()
	ledger.NewApp(avm.Address{}, avm.AppID(1))
	ledger.SetGroup([]ledgertest.Txn{{ApplicationID: avm.AppID(1)}}, avm.AppID(1))

	cx := applicationConfig(100)
	result := avm.Eval(p, cx, ledger, nil, nil)

	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)

	v, ok, err := ledger.AppGlobalGet(avm.AppID(1), []byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(1), v.Uint)
}

// Scenario 7: assembler/disassembler round-trip (see DESIGN.md for the
// version-number note).
func TestEvalAssembleDisassembleRoundTrip(t *testing.T) {
	src := "#pragma version 3\npushint 1\npushint 2\n+\nreturn\n"
	bytecode, err := asm.Assemble(src)
	require.NoError(t, err)

	p, err := avm.LoadProgram(bytecode, avm.MaxVersion)
	require.NoError(t, err)

	text, err := avm.Disassemble(p)
	require.NoError(t, err)

	reassembled, err := asm.Assemble(text)
	require.NoError(t, err)
	require.Equal(t, bytecode, reassembled)
}

// Universal invariant: dup then pop is a stack no-op.
func TestEvalDupPopIsNoop(t *testing.T) {
	src := `#pragma version 3
pushint 5
dup
pop
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

// Universal invariant: addition overflow is fatal.
func TestEvalArithmeticOverflow(t *testing.T) {
	src := `#pragma version 3
pushint 18446744073709551615
pushint 1
+
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.ArithmeticOverflow, kind)
}

// Universal invariant: double bitwise-not is the identity.
func TestEvalDoubleBitNotIdentity(t *testing.T) {
	src := `#pragma version 3
pushint 12345
~
~
pushint 12345
==
return
`
	p := mustAssemble(t, src)
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}

// Universal invariant: remaining cost is exactly initial - sum of executed costs.
func TestEvalRemainingCostAccounting(t *testing.T) {
	src := "#pragma version 3\npushint 42\npushint 24\n+\nreturn\n"
	p := mustAssemble(t, src)

	var lastCost int
	tracer := traceFn(func(cx *avm.EvalContext, spec *avm.OpSpec) {
		lastCost = cx.RemainingCost()
	})

	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, tracer)
	require.Equal(t, avm.Halted, result.State)
	require.Equal(t, 96, lastCost) // 100 - (1 pushint + 1 pushint + 1 '+' + 1 return)
}

type traceFn func(cx *avm.EvalContext, spec *avm.OpSpec)

func (f traceFn) OnStep(cx *avm.EvalContext, spec *avm.OpSpec) { f(cx, spec) }

// Program that falls off the end of a version >= 2 program without an
// explicit return is a fault, not an implicit halt.
func TestEvalFallOffEndIsFatalAboveVersion1(t *testing.T) {
	p := mustAssemble(t, "#pragma version 3\npushint 1\n")
	result := avm.Eval(p, signatureConfig(100), ledgertest.New(), nil, nil)

	require.Equal(t, avm.Errored, result.State)
	kind, ok := avm.KindOf(result.Err)
	require.True(t, ok)
	require.Equal(t, avm.ExecutionFailed, kind)
}

// Version 1 programs fall off the end with an implicit return of the top of stack.
func TestEvalFallOffEndVersion1ImplicitReturn(t *testing.T) {
	bytecode, err := asm.Assemble("#pragma version 1\nintcblock 9\nintc 0\n")
	require.NoError(t, err)
	p, err := avm.LoadProgram(bytecode, avm.MaxVersion)
	require.NoError(t, err)

	cfg := signatureConfig(100)
	cfg.Version = avm.MaxVersion
	result := avm.Eval(p, cfg, ledgertest.New(), nil, nil)

	require.Equal(t, avm.Halted, result.State)
	require.True(t, result.Verdict)
}
