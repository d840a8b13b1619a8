package xlog

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ fxevent.Logger = (*FxXLogger)(nil)

// FxXLogger prints the fx lifecycle through an XLogger. Successful steps go
// to DEBUG, so an INFO level roster search only prints its own results.
type FxXLogger struct {
	logger XLogger
}

func (l *FxXLogger) LogEvent(event fxevent.Event) {
	if l == nil || l.logger == nil {
		return
	}

	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		l.logger.Debug("hook OnStart executing",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.logger.Error(e.Err, "hook OnStart failed",
				zap.String("function", e.FunctionName),
				zap.String("caller", e.CallerName),
				zap.Duration("in", e.Runtime),
			)
			return
		}
		l.logger.Debug("hook OnStart executed",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
			zap.Duration("in", e.Runtime),
		)
	case *fxevent.OnStopExecuting:
		l.logger.Debug("hook OnStop executing",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.logger.Error(e.Err, "hook OnStop failed",
				zap.String("function", e.FunctionName),
				zap.String("caller", e.CallerName),
				zap.Duration("in", e.Runtime),
			)
			return
		}
		l.logger.Debug("hook OnStop executed",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
			zap.Duration("in", e.Runtime),
		)
	case *fxevent.Supplied:
		if e.Err != nil {
			l.logger.Error(e.Err, "supply failed",
				zap.String("type", e.TypeName),
				zap.Strings("stacktrace", e.StackTrace),
			)
			return
		}
		l.logger.Debug("supplied",
			zap.String("type", e.TypeName),
			zap.String("module", e.ModuleName),
		)
	case *fxevent.Provided:
		for _, rtype := range e.OutputTypeNames {
			l.logger.Debug("provided",
				zap.Bool("private", e.Private),
				zap.String("rtype", rtype),
				zap.String("constructor", e.ConstructorName),
				zap.String("module", e.ModuleName),
			)
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "provide failed",
				zap.Strings("stacktrace", e.StackTrace),
			)
		}
	case *fxevent.Decorated:
		for _, rtype := range e.OutputTypeNames {
			l.logger.Debug("decorated",
				zap.String("rtype", rtype),
				zap.String("decorator", e.DecoratorName),
				zap.String("module", e.ModuleName),
			)
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "decorate failed",
				zap.Strings("stacktrace", e.StackTrace),
			)
		}
	case *fxevent.Invoking:
		l.logger.Debug("invoking",
			zap.String("function", e.FunctionName),
			zap.String("module", e.ModuleName),
		)
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Error(e.Err, "invoke failed",
				zap.String("function", e.FunctionName),
				zap.String("trace", e.Trace),
			)
		}
	case *fxevent.Stopping:
		l.logger.Info("stopping", zap.String("signal", e.Signal.String()))
	case *fxevent.Stopped:
		if e.Err != nil {
			l.logger.Error(e.Err, "stop failed")
		}
	case *fxevent.RollingBack:
		l.logger.Error(e.StartErr, "start failed, rolling back")
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.logger.Error(e.Err, "roll back failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.logger.Error(e.Err, "start failed")
			return
		}
		l.logger.Debug("running")
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.logger.Error(e.Err, "custom logger initialization failed")
			return
		}
		l.logger.Debug("custom logger initialized", zap.String("constructor", e.ConstructorName))
	default:
	}
}

// NewFxXLogger prints fx events under the "fx" component without caller info.
func NewFxXLogger(logger XLogger) *FxXLogger {
	if logger == nil {
		panic("[XLogger] fx logger requires a non-nil xlogger")
	}
	l := &xLogger{}
	if xl, ok := logger.(*xLogger); ok {
		l.ctxFields, l.ctxKeys = xl.ctxFields, xl.ctxKeys
		l.dynamicLevelEnabler = xl.dynamicLevelEnabler
	}
	l.logger.Store(logger.
		zap().
		Named("fx").
		WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return wrapCores(core, componentCoreEncoderCfg)
		})),
	)
	return &FxXLogger{logger: l}
}
