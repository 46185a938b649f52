/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap level used for trace messages.
const zapTraceLevel = zapcore.DebugLevel - 1

// Frames between printIfLevel caller and zap Check.
const callerSkip = 2

var zapLogger atomic.Pointer[zap.Logger]

func init() {
	SetOutput(os.Stdout, os.Stderr)
}

// SetOutput replaces writers used by logger.
//
// Errors are written to errOut, other levels to out.
func SetOutput(out, errOut io.Writer) {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout("01/02 15:04:05.000"),
		EncodeLevel:    encodeLevel,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})

	// level gating is done by isEnabled()
	errOnly := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= zapcore.ErrorLevel })
	notErr := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l < zapcore.ErrorLevel })

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(errOut), errOnly),
		zapcore.NewCore(enc, zapcore.AddSync(out), notErr),
	)
	zapLogger.Store(zap.New(core, zap.AddCaller()))
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString("VERBOSE")
	case zapTraceLevel:
		enc.AppendString("TRACE")
	case zapcore.WarnLevel:
		enc.AppendString("WARNING")
	default:
		enc.AppendString(l.CapitalString())
	}
}

func zapLevel(level TLogLevel) zapcore.Level {
	switch level {
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelWarning:
		return zapcore.WarnLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelVerbose:
		return zapcore.DebugLevel
	}
	return zapTraceLevel
}

func printIfLevel(skipStackFrames int, level TLogLevel, args ...any) {
	if level == LogLevelNone || !isEnabled(level) {
		return
	}
	msg := strings.TrimSuffix(fmt.Sprintln(args...), "\n")

	if PrintLine != nil {
		PrintLine(level, msg)
		return
	}

	l := zapLogger.Load().WithOptions(zap.AddCallerSkip(callerSkip + skipStackFrames))
	if ce := l.Check(zapLevel(level), msg); ce != nil {
		ce.Write()
	}
}
