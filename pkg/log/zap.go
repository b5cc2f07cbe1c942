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

// Init builds the service-wide Logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode == "debug" {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding == "console" {
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

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &zapLogger{sugar: logger.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, arg ...any)  { z.sugar.Debug(arg...) }
func (z *zapLogger) Info(ctx context.Context, arg ...any)   { z.sugar.Info(arg...) }
func (z *zapLogger) Warn(ctx context.Context, arg ...any)   { z.sugar.Warn(arg...) }
func (z *zapLogger) Error(ctx context.Context, arg ...any)  { z.sugar.Error(arg...) }
func (z *zapLogger) Fatal(ctx context.Context, arg ...any)  { z.sugar.Fatal(arg...) }
func (z *zapLogger) DPanic(ctx context.Context, arg ...any) { z.sugar.DPanic(arg...) }
func (z *zapLogger) Panic(ctx context.Context, arg ...any)  { z.sugar.Panic(arg...) }

func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.sugar.Debugf(template, arg...)
}

func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.sugar.Infof(template, arg...)
}

func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.sugar.Warnf(template, arg...)
}

func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.sugar.Errorf(template, arg...)
}

func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.sugar.Fatalf(template, arg...)
}

func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.sugar.DPanicf(template, arg...)
}

func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.sugar.Panicf(template, arg...)
}
