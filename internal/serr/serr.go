// Copyright (C) 2019-2023 Algorand, Inc.
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

// Package serr provides a structured error type: a message plus a bag of
// key/value attributes, instead of ad-hoc fmt.Errorf string interpolation.
package serr

import (
	"errors"
	"strings"

	"golang.org/x/exp/slog"
)

// Error is a message with attached attributes and an optional wrapped cause.
type Error struct {
	Msg     string
	Attrs   map[string]any
	Wrapped error
}

// New creates a structured error from a message and alternating key/value pairs.
func New(msg string, pairs ...any) *Error {
	attrs := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		attrs[key] = pairs[i+1]
	}
	return &Error{Msg: msg, Attrs: attrs}
}

// Error renders the message, or the serialized attributes if Msg is blank.
func (e *Error) Error() string {
	if e.Msg == "" {
		var buf strings.Builder
		args := make([]any, 0, 2*len(e.Attrs))
		for key, val := range e.Attrs {
			args = append(args, key, val)
		}
		l := slog.New(slog.NewTextHandler(&buf, nil))
		l.Info("", args...)
		return buf.String()
	}
	return e.Msg
}

// Attr returns the value of a named attribute and whether it was present.
func (e *Error) Attr(key string) (any, bool) {
	v, ok := e.Attrs[key]
	return v, ok
}

// Extend adds attributes to err, wrapping it in a structured Error if it is
// not one already. A nil err produces a fresh attribute-only Error.
func Extend(err error, pairs ...any) error {
	if err == nil {
		return New("", pairs...)
	}
	var se *Error
	if errors.As(err, &se) {
		for i := 0; i+1 < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				continue
			}
			se.Attrs[key] = pairs[i+1]
		}
		return err
	}
	return wrap(err, pairs...)
}

func wrap(err error, pairs ...any) error {
	e := New(err.Error(), pairs...)
	e.Wrapped = err
	return e
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Wrapped
}
