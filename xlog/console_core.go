package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ xLogCore = (*commonCore)(nil)

// commonCore remembers how its zapcore.Core was built, so a child logger is
// able to rebuild the core with another encoder config.
type commonCore struct {
	lvlEnabler zapcore.LevelEnabler
	lvlEnc     zapcore.LevelEncoder
	tsEnc      zapcore.TimeEncoder
	ws         zapcore.WriteSyncer
	enc        func(cfg zapcore.EncoderConfig) zapcore.Encoder
	core       zapcore.Core
}

func (cc *commonCore) timeEncoder() zapcore.TimeEncoder                            { return cc.tsEnc }
func (cc *commonCore) levelEncoder() zapcore.LevelEncoder                          { return cc.lvlEnc }
func (cc *commonCore) writeSyncer() zapcore.WriteSyncer                            { return cc.ws }
func (cc *commonCore) outEncoder() func(cfg zapcore.EncoderConfig) zapcore.Encoder { return cc.enc }
func (cc *commonCore) Enabled(lvl zapcore.Level) bool                              { return cc.lvlEnabler.Enabled(lvl) }
func (cc *commonCore) With(fields []zap.Field) zapcore.Core                         { return cc.core.With(fields) }
func (cc *commonCore) Sync() error                                                 { return cc.core.Sync() }

func (cc *commonCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return cc.core.Check(ent, ce)
}

func (cc *commonCore) Write(ent zapcore.Entry, fields []zap.Field) error {
	return cc.core.Write(ent, fields)
}

func newConsoleCore(
	lvlEnabler zapcore.LevelEnabler,
	encoder logEncoderType,
	writer logOutWriterType,
	lvlEnc zapcore.LevelEncoder,
	tsEnc zapcore.TimeEncoder,
) xLogCore {
	if writer >= _writerMax {
		return nil
	}
	cc := &commonCore{
		lvlEnabler: lvlEnabler,
		lvlEnc:     lvlEnc,
		tsEnc:      tsEnc,
		ws:         getOutWriterByType(writer),
		enc:        getEncoderByType(encoder),
	}
	config := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   cc.lvlEnc,
		TimeKey:       "ts",
		EncodeTime:    cc.tsEnc,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   "fn",
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
	cc.core = zapcore.NewCore(cc.enc(config), cc.ws, cc.lvlEnabler)
	return cc
}

var componentCoreEncoderCfg = zapcore.EncoderConfig{
	MessageKey:    "msg",
	LevelKey:      "lvl",
	TimeKey:       "ts",
	CallerKey:     coreKeyIgnored,
	EncodeCaller:  zapcore.ShortCallerEncoder,
	FunctionKey:   coreKeyIgnored,
	NameKey:       "component",
	EncodeName:    zapcore.FullNameEncoder,
	StacktraceKey: coreKeyIgnored,
}

// wrapCore rebuilds core with cfg, keeping its writer, encoders and level.
func wrapCore(core xLogCore, cfg zapcore.EncoderConfig) xLogCore {
	cfg.EncodeLevel = core.levelEncoder()
	cfg.EncodeTime = core.timeEncoder()
	cc := &commonCore{
		ws:         core.writeSyncer(),
		enc:        core.outEncoder(),
		lvlEnabler: zap.LevelEnablerFunc(core.Enabled),
		lvlEnc:     core.levelEncoder(),
		tsEnc:      core.timeEncoder(),
	}
	cc.core = zapcore.NewCore(cc.enc(cfg), cc.ws, cc.lvlEnabler)
	return cc
}
