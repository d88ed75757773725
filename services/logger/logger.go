package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel đọc mức log từ cấu hình ("debug", "info", "error"); mặc định info
func ParseLevel(level string) Level {
	switch level {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface trên nền zap
type DefaultLogger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultLogger tạo logger. format là "json" hoặc "console".
func NewDefaultLogger(level Level, format string, serviceName string) (*DefaultLogger, error) {
	var config zap.Config
	if format == "console" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	}
	config.Level = zap.NewAtomicLevelAt(level.zapLevel())

	base, err := config.Build()
	if err != nil {
		return nil, err
	}
	if serviceName != "" {
		base = base.With(zap.String("service_name", serviceName))
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		base = base.With(zap.String("hostname", hostname))
	}
	return &DefaultLogger{sugar: base.Sugar()}, nil
}

// NewFromZap bọc một *zap.Logger có sẵn
func NewFromZap(z *zap.Logger) *DefaultLogger {
	return &DefaultLogger{sugar: z.Sugar()}
}

// NewNop trả về logger bỏ qua mọi bản ghi, dùng trong test
func NewNop() *DefaultLogger {
	return &DefaultLogger{sugar: zap.NewNop().Sugar()}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Sync đẩy log còn trong bộ đệm, gọi trước khi thoát
func (l *DefaultLogger) Sync() error {
	return l.sugar.Sync()
}
