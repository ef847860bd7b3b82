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

package avm

const (
	// MaxStackDepth is the maximum number of values the operand stack may hold.
	MaxStackDepth = 1000
)

// RunState is the coarse state machine of one interpreter run.
type RunState int

const (
	// Ready: created, not yet stepped.
	Ready RunState = iota
	// Running: at least one instruction has executed and no halt/fault has occurred.
	Running
	// Halted: the program returned a verdict.
	Halted
	// Errored: a fatal fault occurred; terminal.
	Errored
)

// Tracer is an optional observer notified after every instruction. It is
// used by the CLI's --step/--show-stack modes and is otherwise a no-op hook;
// implementations must not mutate the EvalContext they are given.
type Tracer interface {
	OnStep(cx *EvalContext, spec *OpSpec)
}

// EvalContext is the mutable state of a single interpreter run: stack,
// scratch, call stack, program counter, and remaining cost. It is created
// fresh for every Eval call and is never shared across runs.
type EvalContext struct {
	Config Config
	Ledger LedgerForLogic
	Tracer Tracer

	program *Program

	stack   []Value
	scratch *scratchSpace
	calls   callStack

	intc  []uint64
	bytec [][]byte

	pc            int
	remainingCost int

	args [][]byte // LogicSig arguments (the 'arg' family of opcodes)

	// imm/immSize are the decoded immediate and total instruction size for
	// the instruction currently being executed; valid only inside the
	// semantics call that step() makes.
	imm     decoded
	immSize int

	state RunState
	err   error

	// fromCallsub is true for the single instruction immediately following a
	// callsub target jump, so proto can tell it was reached correctly.
	fromCallsub bool
}

// State reports the current coarse run state.
func (cx *EvalContext) State() RunState { return cx.state }

// PC returns the current program counter (an offset into the body, i.e. past
// the version prefix).
func (cx *EvalContext) PC() int { return cx.pc }

// RemainingCost returns the opcode-cost budget left in this run.
func (cx *EvalContext) RemainingCost() int { return cx.remainingCost }

// StackDepth returns the number of values currently on the operand stack.
func (cx *EvalContext) StackDepth() int { return len(cx.stack) }

// StackTop returns the value on top of the stack without popping it, for
// tracers and tests; callers must not mutate the returned Value's Bytes.
func (cx *EvalContext) StackTop() (Value, bool) {
	if len(cx.stack) == 0 {
		return Value{}, false
	}
	return cx.stack[len(cx.stack)-1], true
}

// Scratch returns the value in scratch slot i, for tracers and tests.
func (cx *EvalContext) Scratch(i int) (Value, error) {
	if i < 0 || i >= ScratchSize {
		return Value{}, newError(TypeError, "scratch index %d out of range", i)
	}
	return cx.scratch[i], nil
}

// Result is the outcome of a completed Eval call.
type Result struct {
	Verdict bool
	State   RunState
	Err     error
	PC      int
}

// Eval runs program to completion under cfg, consulting ledger for state and
// transaction introspection. It never mutates cfg or program.Bytes, and it
// allocates a fresh EvalContext per call so concurrent Eval calls over the
// same *Program are safe.
func Eval(program *Program, cfg Config, ledger LedgerForLogic, args [][]byte, tracer Tracer) Result {
	if err := cfg.validate(); err != nil {
		return Result{State: Errored, Err: err}
	}
	cx := &EvalContext{
		Config:        cfg,
		Ledger:        ledger,
		Tracer:        tracer,
		program:       program,
		scratch:       newScratchSpace(),
		remainingCost: cfg.CostBudget,
		args:          args,
		state:         Ready,
	}
	return cx.run()
}

func (cx *EvalContext) run() Result {
	cx.state = Running
	for {
		if cx.pc == len(cx.program.Body) {
			// Version 1 programs fall off the end with an implicit return of
			// the top stack value; version >= 2 requires an explicit return
			// and treats fall-off as a fault.
			if cx.program.Version == 1 {
				return cx.haltFallOff()
			}
			return cx.fault(newErrorPC(ExecutionFailed, cx.pc, "program fell off the end without an explicit return (version %d requires one)", cx.program.Version))
		}

		outcome, err := cx.step()
		if err != nil {
			return cx.fault(err)
		}
		switch outcome.kind {
		case ctrlContinue:
			// pc already advanced inside step()
		case ctrlBranch:
			if !cx.program.isInstructionStart(outcome.target) {
				return cx.fault(newErrorPC(BranchOutOfBounds, cx.pc, "branch target %d is not an instruction boundary", outcome.target))
			}
			cx.pc = outcome.target
		case ctrlHalt:
			cx.state = Halted
			return Result{Verdict: outcome.verdict, State: Halted, PC: cx.pc}
		case ctrlError:
			return cx.fault(outcome.err)
		}
	}
}

func (cx *EvalContext) haltFallOff() Result {
	top, ok := cx.StackTop()
	if !ok {
		return cx.fault(newErrorPC(StackUnderflow, cx.pc, "program ended with an empty stack"))
	}
	verdict, err := top.AsBool()
	if err != nil {
		return cx.fault(newErrorPC(TypeError, cx.pc, "top of stack at program end is not a uint64"))
	}
	cx.state = Halted
	return Result{Verdict: verdict, State: Halted, PC: cx.pc}
}

func (cx *EvalContext) fault(err error) Result {
	cx.state = Errored
	cx.err = err
	pc := cx.pc
	if ae, ok := err.(*Error); ok {
		pc = ae.PC
	}
	return Result{State: Errored, Err: err, PC: pc}
}

// step decodes and executes exactly one instruction, returning the control
// outcome it produced. On ctrlContinue it has already advanced cx.pc past
// the instruction; for every other outcome the caller (run) decides the next pc.
func (cx *EvalContext) step() (ControlOutcome, error) {
	opcode := cx.program.Body[cx.pc]
	spec, ok := LookupOpcode(opcode)
	if !ok {
		return ControlOutcome{}, newErrorPC(InvalidOpcode, cx.pc, "unrecognized opcode 0x%02x", opcode)
	}
	if spec.MinVersion > cx.program.Version {
		return ControlOutcome{}, newErrorPC(InvalidOpcode, cx.pc, "%s requires version >= %d, program is version %d", spec.Name, spec.MinVersion, cx.program.Version)
	}
	if !spec.Modes.allows(cx.Config.RunMode) {
		return ControlOutcome{}, newErrorPC(ModeError, cx.pc, "%s is not allowed in %s mode", spec.Name, cx.Config.RunMode)
	}

	d, size, err := decodeImmediate(cx.program.Body, cx.pc, spec)
	if err != nil {
		return ControlOutcome{}, err
	}

	if len(cx.stack) < len(spec.Pops) {
		return ControlOutcome{}, newErrorPC(StackUnderflow, cx.pc, "%s needs %d operands, stack has %d", spec.Name, len(spec.Pops), len(cx.stack))
	}
	base := len(cx.stack) - len(spec.Pops)
	for i, want := range spec.Pops {
		if want == StackAny {
			continue
		}
		if cx.stack[base+i].Type() != want {
			return ControlOutcome{}, newErrorPC(TypeError, cx.pc, "%s operand %d: expected %s, got %s", spec.Name, i, want, cx.stack[base+i].Type())
		}
	}

	if spec.Cost > cx.remainingCost {
		return ControlOutcome{}, newErrorPC(CostBudgetExceeded, cx.pc, "%s costs %d, only %d remaining", spec.Name, spec.Cost, cx.remainingCost)
	}
	cx.remainingCost -= spec.Cost

	cx.imm = d
	cx.immSize = size
	outcome := spec.run(cx)
	if spec.Name != "callsub" {
		cx.fromCallsub = false
	}

	if cx.Tracer != nil {
		cx.Tracer.OnStep(cx, spec)
	}

	if outcome.kind == ctrlContinue {
		cx.pc += size
	}
	return outcome, nil
}

// imm/immSize are transient per-instruction decode results, valid only for
// the duration of the semantics call that step() just made. They are fields
// on EvalContext (rather than parameters to every semantics func) because
// the semanticsFunc dispatch signature (see spec.go) takes only *EvalContext,
// matching the teacher's own evalFunc shape.
