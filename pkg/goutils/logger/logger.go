/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package logger

import (
	"sync/atomic"
)

// TLogLevel s.e.
type TLogLevel int32

// Log Levels enum
const (
	LogLevelNone = TLogLevel(iota)
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelVerbose // aka Debug
	LogLevelTrace
)

var logLevel atomic.Int32

func init() {
	logLevel.Store(int32(LogLevelInfo))
}

func SetLogLevel(level TLogLevel) (old TLogLevel) {
	return TLogLevel(logLevel.Swap(int32(level)))
}

func SetLogLevelWithRestore(level TLogLevel) (restore func()) {
	old := SetLogLevel(level)
	return func() {
		SetLogLevel(old)
		Info("LogLevel restored to", old)
	}
}

func Error(args ...any) {
	printIfLevel(0, LogLevelError, args...)
}

func Warning(args ...any) {
	printIfLevel(0, LogLevelWarning, args...)
}

func Info(args ...any) {
	printIfLevel(0, LogLevelInfo, args...)
}

func Verbose(args ...any) {
	printIfLevel(0, LogLevelVerbose, args...)
}

func Trace(args ...any) {
	printIfLevel(0, LogLevelTrace, args...)
}

func Log(skipStackFrames int, level TLogLevel, args ...any) {
	printIfLevel(skipStackFrames, level, args...)
}

func IsError() bool {
	return isEnabled(LogLevelError)
}

func IsInfo() bool {
	return isEnabled(LogLevelInfo)
}

func IsWarning() bool {
	return isEnabled(LogLevelWarning)
}

func IsVerbose() bool {
	return isEnabled(LogLevelVerbose)
}

func IsTrace() bool {
	return isEnabled(LogLevelTrace)
}

func isEnabled(level TLogLevel) bool {
	return TLogLevel(logLevel.Load()) >= level
}

// PrintLine, if not nil, receives every printed line instead of zap core.
var PrintLine func(level TLogLevel, line string)

func (l TLogLevel) String() string {
	switch l {
	case LogLevelNone:
		return "NONE"
	case LogLevelError:
		return "ERROR"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelInfo:
		return "INFO"
	case LogLevelVerbose:
		return "VERBOSE"
	case LogLevelTrace:
		return "TRACE"
	}
	return "UNKNOWN"
}
