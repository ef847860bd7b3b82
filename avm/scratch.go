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

// ScratchSize is the fixed number of scratch slots available to a program.
const ScratchSize = 256

// scratchSpace holds 256 fixed slots, each initialized to Uint(0). It is
// disjoint from the stack: only load/store (and their stack-indexed
// loads/stores variants) touch it.
type scratchSpace [ScratchSize]Value

func newScratchSpace() *scratchSpace {
	// The zero Value is already Uint(0), so there is nothing to initialize;
	// named for clarity at call sites and to keep the invariant documented.
	return &scratchSpace{}
}

func (s *scratchSpace) load(i uint64) (Value, error) {
	if i >= ScratchSize {
		return Value{}, newError(TypeError, "scratch index %d out of range 0..%d", i, ScratchSize-1)
	}
	return s[i], nil
}

func (s *scratchSpace) store(i uint64, v Value) error {
	if i >= ScratchSize {
		return newError(TypeError, "scratch index %d out of range 0..%d", i, ScratchSize-1)
	}
	s[i] = v
	return nil
}
