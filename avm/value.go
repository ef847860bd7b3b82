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

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// MaxByteStringLen is the largest a Bytes value may be.
const MaxByteStringLen = 4096

// StackType tags the two shapes a Value may take.
type StackType int

const (
	// StackUint64 is the tag for Uint values.
	StackUint64 StackType = iota
	// StackBytes is the tag for Bytes values.
	StackBytes
	// StackAny is used only in opcode prototypes, never on an actual Value.
	StackAny
	// StackNone marks an opcode that never returns to the caller (err, return).
	StackNone
)

func (t StackType) String() string {
	switch t {
	case StackUint64:
		return "uint64"
	case StackBytes:
		return "[]byte"
	case StackAny:
		return "any"
	default:
		return "none"
	}
}

// Value is the tagged variant that lives on the stack, in scratch space, and
// in the constant pools. It is exactly two shapes: Uint(u64) or Bytes(b),
// distinguished by whether Bytes is non-nil. Bytes is treated as immutable by
// every opcode; callers that need to mutate must clone first.
type Value struct {
	Uint  uint64
	Bytes []byte
}

// Uint64 builds a Uint value.
func Uint64(u uint64) Value { return Value{Uint: u} }

// Bytestring builds a Bytes value. b is not copied; callers must not mutate
// it after handing it to Bytestring. A nil b builds the empty byte string.
func Bytestring(b []byte) Value {
	if b == nil {
		b = []byte{}
	}
	return Value{Bytes: b}
}

// Type reports the shape of v.
func (v Value) Type() StackType {
	if v.Bytes != nil {
		return StackBytes
	}
	return StackUint64
}

// IsBytes reports whether v holds a byte string.
func (v Value) IsBytes() bool { return v.Bytes != nil }

// Clone returns a deep copy, safe to mutate independently of v.
func (v Value) Clone() Value {
	if v.Bytes == nil {
		return Value{Uint: v.Uint}
	}
	b := make([]byte, len(v.Bytes))
	copy(b, v.Bytes)
	return Value{Bytes: b}
}

// AsUint returns the value's uint64, or a TypeError if v is a byte string.
func (v Value) AsUint() (uint64, error) {
	if v.Bytes != nil {
		return 0, newError(TypeError, "expected uint64, got []byte")
	}
	return v.Uint, nil
}

// AsBytes returns the value's byte string, or a TypeError if v is a uint64.
func (v Value) AsBytes() ([]byte, error) {
	if v.Bytes == nil {
		return nil, newError(TypeError, "expected []byte, got uint64")
	}
	return v.Bytes, nil
}

// AsBool interprets a Uint value as a boolean per TEAL's nonzero-is-true rule.
func (v Value) AsBool() (bool, error) {
	u, err := v.AsUint()
	if err != nil {
		return false, err
	}
	return u != 0, nil
}

func (v Value) String() string {
	if v.Bytes != nil {
		return hex.EncodeToString(v.Bytes)
	}
	return fmt.Sprintf("%d", v.Uint)
}

// Equal implements type-aware equality: Uint/Uint and Bytes/Bytes compare
// their payloads; cross-type comparisons are a TypeError, per spec.
func Equal(a, b Value) (bool, error) {
	if a.Type() != b.Type() {
		return false, newError(TypeError, "cannot compare %s to %s", a.Type(), b.Type())
	}
	if a.IsBytes() {
		return bytes.Equal(a.Bytes, b.Bytes), nil
	}
	return a.Uint == b.Uint, nil
}

// checkByteLen validates the 4096-byte length invariant on a freshly produced
// byte string; concat and pushbytes call it on their results (bzero checks
// its requested length against MaxByteStringLen itself).
func checkByteLen(b []byte) error {
	if len(b) > MaxByteStringLen {
		return newError(BytesTooLong, "result is %d bytes, max is %d", len(b), MaxByteStringLen)
	}
	return nil
}
