package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger is the logging interface handed to anything that logs. It is satisfied by a zap SugaredLogger plus
// the level and naming helpers below.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Sublogger returns a logger named "<parent>.<subname>" that starts at the parent's level.
	Sublogger(subname string) Logger
	SetLevel(level Level)
	GetLevel() Level
	AsZap() *zap.SugaredLogger
	Sync() error
}

type impl struct {
	*zap.SugaredLogger
	name  string
	level zap.AtomicLevel
}

func (imp *impl) Sublogger(subname string) Logger {
	newName := subname
	if imp.name != "" {
		newName = fmt.Sprintf("%s.%s", imp.name, subname)
	}
	level := zap.NewAtomicLevelAt(imp.level.Level())
	return &impl{
		SugaredLogger: imp.SugaredLogger.Named(subname).WithOptions(zap.IncreaseLevel(level)),
		name:          newName,
		level:         level,
	}
}

// SetLevel changes the level of this logger. A Sublogger cannot be set below the level of its parent.
func (imp *impl) SetLevel(level Level) {
	imp.level.SetLevel(level.AsZap())
}

func (imp *impl) GetLevel() Level {
	switch imp.level.Level() {
	case zap.DebugLevel:
		return DEBUG
	case zap.WarnLevel:
		return WARN
	case zap.ErrorLevel:
		return ERROR
	default:
		return INFO
	}
}

func (imp *impl) AsZap() *zap.SugaredLogger {
	return imp.SugaredLogger
}
