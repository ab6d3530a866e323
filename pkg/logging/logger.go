// Package logging 构建全局共用的 zap 日志器
//
// 与桌面端 --verbose 参数配合：未开启详细日志时返回 Nop 日志器，
// 所有系统的日志调用都不会产生输出。
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 日志配置
type Config struct {
	// Verbose 启用日志输出；为 false 时返回 Nop 日志器
	Verbose bool
	// Debug 输出 Debug 级别日志（每帧日志只在此级别输出）
	Debug bool
	// JSON 使用 JSON 编码（默认使用便于阅读的 console 编码）
	JSON bool
	// OutputPaths 日志输出目标，默认 stderr
	OutputPaths []string
}

// New 根据配置创建日志器
//
// 参数:
//   - cfg: 日志配置
//
// 返回:
//   - *zap.Logger: 日志器实例，Verbose 关闭时为 zap.NewNop()
//   - error: 构建 zap 日志器失败时返回错误
func New(cfg Config) (*zap.Logger, error) {
	if !cfg.Verbose {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	encoding := "console"
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	if cfg.JSON {
		encoding = "json"
		encoderConfig = zap.NewProductionEncoderConfig()
	}

	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Debug,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// OrNop 保证返回非 nil 的日志器，供可选日志参数使用
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Vec3 将三维坐标编码为日志字段
func Vec3(key string, x, y, z float64) zap.Field {
	return zap.Float64s(key, []float64{x, y, z})
}
