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

package asm

import (
	"crypto/sha512"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/algorand-avm/tealvm/avm"
)

var b32Raw = base32.StdEncoding.WithPadding(base32.NoPadding)

// parseInt accepts decimal, 0x hex, 0o octal and 0b binary literals, plus a
// leading '-' for the handful of pseudo-ops that take a signed byte.
func parseInt(tok string) (int64, error) {
	neg := false
	if strings.HasPrefix(tok, "-") {
		neg = true
		tok = tok[1:]
	}
	var v uint64
	var err error
	switch {
	case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
		v, err = strconv.ParseUint(tok[2:], 16, 64)
	case strings.HasPrefix(tok, "0o") || strings.HasPrefix(tok, "0O"):
		v, err = strconv.ParseUint(tok[2:], 8, 64)
	case strings.HasPrefix(tok, "0b") || strings.HasPrefix(tok, "0B"):
		v, err = strconv.ParseUint(tok[2:], 2, 64)
	default:
		v, err = strconv.ParseUint(tok, 10, 64)
	}
	if err != nil {
		return 0, avm.NewAssemblyError("malformed integer literal", "token", tok)
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}

// parseUint parses the unsigned literals pushint/intcblock take, across the
// full uint64 range. It does not go through parseInt: a literal like
// 18446744073709551615 (max uint64) doesn't fit in an int64, so parseInt's
// signed return would wrap it negative and parseUint would then reject it.
func parseUint(tok string) (uint64, error) {
	if strings.HasPrefix(tok, "-") {
		return 0, avm.NewAssemblyError("integer literal must not be negative", "token", tok)
	}
	var v uint64
	var err error
	switch {
	case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
		v, err = strconv.ParseUint(tok[2:], 16, 64)
	case strings.HasPrefix(tok, "0o") || strings.HasPrefix(tok, "0O"):
		v, err = strconv.ParseUint(tok[2:], 8, 64)
	case strings.HasPrefix(tok, "0b") || strings.HasPrefix(tok, "0B"):
		v, err = strconv.ParseUint(tok[2:], 2, 64)
	default:
		v, err = strconv.ParseUint(tok, 10, 64)
	}
	if err != nil {
		return 0, avm.NewAssemblyError("malformed integer literal", "token", tok)
	}
	return v, nil
}

// parseByteLiteral decodes a 'byte'/'pushbytes' operand. tok is the whole
// operand as one string: the scanner never splits inside quotes, and the
// space-separated base64/base32 forms ("base64 AAAA") arrive already
// re-joined into one token by joinByteLiteralArgs.
func parseByteLiteral(tok string) ([]byte, error) {
	switch {
	case strings.HasPrefix(tok, "0x"):
		b, err := hex.DecodeString(tok[2:])
		if err != nil {
			return nil, avm.NewAssemblyError("malformed hex byte literal", "token", tok)
		}
		return b, nil

	case strings.HasPrefix(tok, "base64 ") || strings.HasPrefix(tok, "b64 "):
		data := tok[strings.IndexByte(tok, ' ')+1:]
		b, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, avm.NewAssemblyError("malformed base64 byte literal", "token", tok)
		}
		return b, nil

	case strings.HasPrefix(tok, "base32 ") || strings.HasPrefix(tok, "b32 "):
		data := tok[strings.IndexByte(tok, ' ')+1:]
		b, err := b32Raw.DecodeString(strings.ToUpper(data))
		if err != nil {
			return nil, avm.NewAssemblyError("malformed base32 byte literal", "token", tok)
		}
		return b, nil

	case hasParenForm(tok, "base64") || hasParenForm(tok, "b64"):
		data := parenContents(tok)
		b, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, avm.NewAssemblyError("malformed base64 byte literal", "token", tok)
		}
		return b, nil

	case hasParenForm(tok, "base32") || hasParenForm(tok, "b32"):
		data := parenContents(tok)
		b, err := b32Raw.DecodeString(strings.ToUpper(data))
		if err != nil {
			return nil, avm.NewAssemblyError("malformed base32 byte literal", "token", tok)
		}
		return b, nil

	case strings.HasPrefix(tok, `"`):
		return unquoteByteString(tok)
	}

	// No recognized prefix: accept a bare 32-byte base32 blob, matching the
	// reference assembler's fallback for byte-string literals that look like
	// an address but weren't introduced with the addr pseudo-op.
	if b, err := b32Raw.DecodeString(strings.ToUpper(tok)); err == nil && len(b) == 32 {
		return b, nil
	}
	return nil, avm.NewAssemblyError("unrecognized byte literal", "token", tok)
}

// hasParenForm reports whether tok is the name(...) encoding of a byte
// literal prefix, e.g. "base64(aGk=)".
func hasParenForm(tok, name string) bool {
	return strings.HasPrefix(tok, name+"(") && strings.HasSuffix(tok, ")")
}

// parenContents strips a name(...) literal down to what's between the
// parens, e.g. "base64(aGk=)" -> "aGk=".
func parenContents(tok string) string {
	open := strings.IndexByte(tok, '(')
	return tok[open+1 : len(tok)-1]
}

// unquoteByteString decodes a double-quoted byte literal with \n \t \r \\ \"
// and \xHH escapes.
func unquoteByteString(tok string) ([]byte, error) {
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return nil, avm.NewAssemblyError("unterminated quoted byte literal", "token", tok)
	}
	inner := tok[1 : len(tok)-1]
	out := make([]byte, 0, len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(inner) {
			return nil, avm.NewAssemblyError("dangling escape in quoted byte literal", "token", tok)
		}
		switch inner[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '\\':
			out = append(out, '\\')
		case '"':
			out = append(out, '"')
		case 'x':
			if i+2 >= len(inner) {
				return nil, avm.NewAssemblyError("truncated \\x escape", "token", tok)
			}
			b, err := hex.DecodeString(inner[i+1 : i+3])
			if err != nil {
				return nil, avm.NewAssemblyError("malformed \\x escape", "token", tok)
			}
			out = append(out, b[0])
			i += 2
		default:
			return nil, avm.NewAssemblyError("unrecognized escape in quoted byte literal", "char", string(inner[i]))
		}
	}
	return out, nil
}

// parseAddress decodes a 58-character Algorand address literal: 32 address
// bytes followed by a 4-byte checksum equal to the last 4 bytes of
// SHA512-256 of those 32 bytes.
func parseAddress(tok string) ([]byte, error) {
	raw, err := b32Raw.DecodeString(strings.ToUpper(tok))
	if err != nil || len(raw) != 36 {
		return nil, avm.NewAssemblyError("malformed address literal", "token", tok)
	}
	addr, checksum := raw[:32], raw[32:]
	sum := sha512.Sum512_256(addr)
	if !bytesEqual(sum[len(sum)-4:], checksum) {
		return nil, avm.NewAssemblyError("address checksum mismatch", "token", tok)
	}
	return addr, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// methodSelector returns the 4-byte ARC-4 selector for a method signature
// string, the first 4 bytes of SHA-512/256 of the signature.
func methodSelector(signature string) []byte {
	sum := sha512.Sum512_256([]byte(signature))
	return sum[:4]
}
