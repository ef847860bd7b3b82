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

// Package logging wraps logrus with the file/line/function source tagging
// and leveled interface the rest of the module logs through. There is no
// telemetry hook here: nothing in this module uploads events to a remote
// collector, so that half of the original wrapper has no home.
package logging

import (
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level mirrors logrus's levels under our own name so callers don't import
// logrus directly.
type Level uint32

const (
	Panic Level = iota
	Fatal
	Error
	Warn
	Info
	Debug
)

// Fields is an alias for logrus.Fields, so WithFields call sites don't need
// to import logrus either.
type Fields = logrus.Fields

// Logger is the leveled logging interface every package in this module logs
// through, rather than calling logrus directly.
type Logger interface {
	Debug(...interface{})
	Debugln(...interface{})
	Debugf(string, ...interface{})

	Info(...interface{})
	Infoln(...interface{})
	Infof(string, ...interface{})

	Warn(...interface{})
	Warnln(...interface{})
	Warnf(string, ...interface{})

	Error(...interface{})
	Errorln(...interface{})
	Errorf(string, ...interface{})

	Fatal(...interface{})
	Fatalln(...interface{})
	Fatalf(string, ...interface{})

	With(key string, value interface{}) Logger
	WithFields(Fields) Logger

	SetLevel(Level)
	SetOutput(io.Writer)
	SetJSONFormatter()
	IsLevelEnabled(level Level) bool
}

type logger struct {
	entry *logrus.Entry
}

var (
	baseLogger Logger
	once       sync.Once
)

// Init sets up the process-wide base logger, defaulting to stderr at Warn
// level. Safe to call more than once; only the first call takes effect.
func Init() {
	once.Do(func() {
		baseLogger = NewLogger()
		baseLogger.SetLevel(Warn)
	})
}

func init() {
	Init()
}

// Base returns the process-wide default logger.
func Base() Logger { return baseLogger }

// NewLogger returns a fresh Logger writing to stderr with logrus's default
// text formatter.
func NewLogger() Logger {
	l := logrus.New()
	out := logger{entry: logrus.NewEntry(l)}
	if tf, ok := out.entry.Logger.Formatter.(*logrus.TextFormatter); ok {
		tf.TimestampFormat = "2006-01-02T15:04:05.000000 -0700"
	}
	return out
}

func (l logger) With(key string, value interface{}) Logger {
	return logger{entry: l.entry.WithField(key, value)}
}

func (l logger) WithFields(fields Fields) Logger {
	return logger{entry: l.entry.WithFields(fields)}
}

func (l logger) Debug(args ...interface{})                 { l.source().Debug(args...) }
func (l logger) Debugln(args ...interface{})                { l.source().Debugln(args...) }
func (l logger) Debugf(format string, args ...interface{})   { l.source().Debugf(format, args...) }

func (l logger) Info(args ...interface{})                  { l.source().Info(args...) }
func (l logger) Infoln(args ...interface{})                 { l.source().Infoln(args...) }
func (l logger) Infof(format string, args ...interface{})    { l.source().Infof(format, args...) }

func (l logger) Warn(args ...interface{})                  { l.source().Warn(args...) }
func (l logger) Warnln(args ...interface{})                 { l.source().Warnln(args...) }
func (l logger) Warnf(format string, args ...interface{})    { l.source().Warnf(format, args...) }

func (l logger) Error(args ...interface{}) {
	l.source().Error(args...)
}

func (l logger) Errorln(args ...interface{}) {
	l.source().Errorln(args...)
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.source().Errorf(format, args...)
}

func (l logger) Fatal(args ...interface{}) {
	l.source().Fatal(args...)
}

func (l logger) Fatalln(args ...interface{}) {
	l.source().Fatalln(args...)
}

func (l logger) Fatalf(format string, args ...interface{}) {
	l.source().Fatalf(format, args...)
}

func (l logger) SetLevel(lvl Level) {
	l.entry.Logger.Level = logrus.Level(lvl)
}

func (l logger) IsLevelEnabled(level Level) bool {
	return l.entry.Logger.Level >= logrus.Level(level)
}

func (l logger) SetOutput(w io.Writer) {
	l.entry.Logger.Out = w
}

func (l logger) SetJSONFormatter() {
	l.entry.Logger.Formatter = &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000000Z07:00"}
}

// source tags the log entry with the calling file, line and function name,
// two frames up (past source() and the Debug/Info/etc. wrapper).
func (l logger) source() *logrus.Entry {
	event := l.entry
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return event
	}
	if slash := strings.LastIndex(file, "/"); slash >= 0 {
		file = file[slash+1:]
	}
	event = event.WithFields(logrus.Fields{"file": file, "line": line})
	if fn := runtime.FuncForPC(pc); fn != nil {
		event = event.WithField("function", fn.Name())
	}
	return event
}
