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

// MaxCallDepth is the maximum number of nested callsub frames.
const MaxCallDepth = 8

// frame is one callsub activation record: the pc to resume at on retsub, and
// (once a matching proto has executed) the stack height below the call's
// arguments plus the declared argument/return counts used by
// frame_dig/frame_bury.
type frame struct {
	returnPC int
	height   int // stack height when proto ran, minus its declared args
	args     int
	returns  int
	framed   bool // true once proto has run for this frame
}

// callStack is the bounded stack of pending subroutine returns.
type callStack struct {
	frames []frame
}

func (c *callStack) push(f frame) error {
	if len(c.frames) >= MaxCallDepth {
		return newError(CallStackOverflow, "call stack depth %d exceeds max %d", len(c.frames), MaxCallDepth)
	}
	c.frames = append(c.frames, f)
	return nil
}

func (c *callStack) pop() (frame, error) {
	if len(c.frames) == 0 {
		return frame{}, newError(CallStackUnderflow, "retsub with empty call stack")
	}
	top := c.frames[len(c.frames)-1]
	c.frames = c.frames[:len(c.frames)-1]
	return top, nil
}

func (c *callStack) top() (*frame, bool) {
	if len(c.frames) == 0 {
		return nil, false
	}
	return &c.frames[len(c.frames)-1], true
}

func (c *callStack) depth() int { return len(c.frames) }
