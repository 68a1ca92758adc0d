// Package log 提供全局zap日志
package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// 初始化全局日志，level为debug/info/warn/error，json为true时输出JSON格式
func Init(level string, json bool) (err error) {
	var lv zapcore.Level
	if err = lv.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return
	}
	cfg := zap.NewDevelopmentConfig()
	if json {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lv)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}
	SetLogger(l)
	return
}

func SetLogger(l *zap.Logger) {
	logger = l
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Sync() error {
	return logger.Sync()
}
