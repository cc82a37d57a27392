package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a no-op until InitLogger runs
var Logger = zap.NewNop()

// InitLogger initializes the global logger.
// stdout is left to the verification report, so console output goes to
// stderr. A log file is only written when logPath is set.
func InitLogger(isDevelopment bool, logPath string, logLevel string) error {
	level := zap.WarnLevel
	if logLevel != "" {
		parsed, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		level = parsed
	}

	var logger *zap.Logger
	var err error

	if isDevelopment {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig = newEncoderConfig()
		config.OutputPaths = []string{"stderr"}
		config.Level = zap.NewAtomicLevelAt(level)
		if logPath != "" {
			if err := createLogDir(logPath); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
			config.OutputPaths = append(config.OutputPaths, logPath)
		}
		logger, err = config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	} else {
		logger, err = NewProductionLogger(logPath, level)
	}

	if err != nil {
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(logger)

	return nil
}

// NewProductionLogger creates a stderr console logger. With a logPath it
// also writes JSON to a rotating file and stderr only carries warnings
// and errors.
func NewProductionLogger(logPath string, level zapcore.Level) (*zap.Logger, error) {
	encoderConfig := newEncoderConfig()

	stderrLevel := level
	var cores []zapcore.Core

	if logPath != "" {
		if err := createLogDir(logPath); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), w, level))

		if stderrLevel < zapcore.WarnLevel {
			stderrLevel = zapcore.WarnLevel
		}
	}

	cores = append(cores, zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		stderrLevel,
	))

	return zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

func newEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		// fixed width keeps console columns aligned
		enc.AppendString(fmt.Sprintf("%-5s", level.CapitalString()))
	}
	encoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
	encoderConfig.MessageKey = "msg"
	encoderConfig.LevelKey = "level"
	encoderConfig.CallerKey = "caller"
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(formatCallerPath(caller))
	}
	return encoderConfig
}

// Sync flushes any buffered log entries
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

func createLogDir(logPath string) error {
	dir := filepath.Dir(logPath)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// formatCallerPath renders package/file.go:line padded to a fixed width
func formatCallerPath(caller zapcore.EntryCaller) string {
	result := caller.TrimmedPath()
	for _, prefix := range []string{"pkg/", "cmd/", "internal/"} {
		result = strings.TrimPrefix(result, prefix)
	}

	const callerWidth = 24
	if len(result) > callerWidth {
		result = "..." + result[len(result)-(callerWidth-3):]
	}

	return fmt.Sprintf("%-*s", callerWidth, result)
}
