package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the service-wide Logger from config. Falls back to a sane
// development logger when config values are unknown.
func Init(cfg ZapConfig) Logger {
	level := zapcore.DebugLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	var encoderCfg zapcore.EncoderConfig
	if cfg.Mode == "production" {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != "json" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &zapLogger{sugar: logger.Sugar()}
}

// fields extracts request-scoped values placed in the context by middleware.
func (z *zapLogger) fields(ctx context.Context) *zap.SugaredLogger {
	s := z.sugar
	if ctx == nil {
		return s
	}
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok && reqID != "" {
		s = s.With("request_id", reqID)
	}
	return s
}

type ctxKey string

// RequestIDKey is the context key under which middleware stores the request id.
const RequestIDKey ctxKey = "request_id"

func (z *zapLogger) Debug(ctx context.Context, args ...any) { z.fields(ctx).Debug(args...) }
func (z *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.fields(ctx).Debugf(format, args...)
}
func (z *zapLogger) Info(ctx context.Context, args ...any) { z.fields(ctx).Info(args...) }
func (z *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.fields(ctx).Infof(format, args...)
}
func (z *zapLogger) Warn(ctx context.Context, args ...any) { z.fields(ctx).Warn(args...) }
func (z *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.fields(ctx).Warnf(format, args...)
}
func (z *zapLogger) Error(ctx context.Context, args ...any) { z.fields(ctx).Error(args...) }
func (z *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.fields(ctx).Errorf(format, args...)
}
func (z *zapLogger) DPanic(ctx context.Context, args ...any) { z.fields(ctx).DPanic(args...) }
func (z *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	z.fields(ctx).DPanicf(format, args...)
}
func (z *zapLogger) Panic(ctx context.Context, args ...any) { z.fields(ctx).Panic(args...) }
func (z *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	z.fields(ctx).Panicf(format, args...)
}
func (z *zapLogger) Fatal(ctx context.Context, args ...any) { z.fields(ctx).Fatal(args...) }
func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	z.fields(ctx).Fatalf(format, args...)
}
