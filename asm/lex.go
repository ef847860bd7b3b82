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

import "fmt"

// stripComment cuts a line at the first unquoted "//" or ";", so that a
// comment marker embedded inside a quoted byte or method-signature literal
// is left alone.
func stripComment(line string) string {
	inQuote := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
			continue
		case c == ';':
			return line[:i]
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return line[:i]
		}
	}
	return line
}

// tokenize splits a line on whitespace, keeping double-quoted spans (and
// their quotes) intact as a single token.
func tokenize(line string) []string {
	var toks []string
	var cur []byte
	inQuote := false
	flush := func() {
		if len(cur) > 0 {
			toks = append(toks, string(cur))
			cur = cur[:0]
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			cur = append(cur, c)
		case !inQuote && (c == ' ' || c == '\t'):
			flush()
		default:
			cur = append(cur, c)
		}
	}
	flush()
	return toks
}

// joinByteLiteralArgs re-joins a two-word encoding prefix ("base64 AAAA")
// that tokenize split apart; every other byte literal form is one token.
func joinByteLiteralArgs(args []string) string {
	if len(args) >= 2 {
		switch args[0] {
		case "base64", "b64", "base32", "b32":
			return args[0] + " " + args[1]
		}
	}
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func sprintfLine(line int, format string, args ...any) string {
	return fmt.Sprintf("line %d: "+format, append([]any{line}, args...)...)
}
