package xlog

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// xLogMultiCore fans every entry out to all of its cores, one per writer.
type xLogMultiCore []xLogCore

func (mc xLogMultiCore) With(fields []zap.Field) zapcore.Core {
	clone := make([]zapcore.Core, len(mc))
	for i := range mc {
		clone[i] = mc[i].With(fields)
	}
	return zapcore.NewTee(clone...)
}

func (mc xLogMultiCore) Enabled(lvl zapcore.Level) bool {
	for i := range mc {
		if mc[i].Enabled(lvl) {
			return true
		}
	}
	return false
}

func (mc xLogMultiCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	for i := range mc {
		ce = mc[i].Check(ent, ce)
	}
	return ce
}

func (mc xLogMultiCore) Write(ent zapcore.Entry, fields []zap.Field) error {
	var err error
	for i := range mc {
		err = multierr.Append(err, mc[i].Write(ent, fields))
	}
	return err
}

func (mc xLogMultiCore) Sync() error {
	var err error
	for i := range mc {
		err = multierr.Append(err, mc[i].Sync())
	}
	return err
}

func xLogTeeCore(cores ...xLogCore) zapcore.Core {
	nonNil := make(xLogMultiCore, 0, len(cores))
	for _, c := range cores {
		if c != nil {
			nonNil = append(nonNil, c)
		}
	}
	if len(nonNil) == 1 {
		return nonNil[0]
	}
	return nonNil
}

// wrapCores rebuilds every core of a tee, or the single core, with cfg.
func wrapCores(core zapcore.Core, cfg zapcore.EncoderConfig) zapcore.Core {
	switch c := core.(type) {
	case xLogMultiCore:
		newCores := make(xLogMultiCore, 0, len(c))
		for i := range c {
			newCores = append(newCores, wrapCore(c[i], cfg))
		}
		return newCores
	case xLogCore:
		return wrapCore(c, cfg)
	default:
	}
	return core
}
