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
	"github.com/algorand-avm/tealvm/avm"
	"github.com/algorand-avm/tealvm/internal/logging"
)

// stepTracer logs one entry per instruction executed, and optionally the
// stack depth and top value, for the execute command's --step/--show-stack flags.
// It logs at Debug level through the shared logger rather than writing
// directly, so --step output carries the same file/line/function tagging as
// every other diagnostic this module emits.
type stepTracer struct {
	log       logging.Logger
	showStack bool
}

func (t *stepTracer) OnStep(cx *avm.EvalContext, spec *avm.OpSpec) {
	entry := t.log.With("pc", cx.PC()).With("cost", cx.RemainingCost())
	if !t.showStack {
		entry.Debugf("%s", spec.Name)
		return
	}
	if top, ok := cx.StackTop(); ok {
		entry.With("depth", cx.StackDepth()).Debugf("%s top=%s", spec.Name, top.String())
	} else {
		entry.With("depth", cx.StackDepth()).Debugf("%s <empty stack>", spec.Name)
	}
}
