package common

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *zap.Logger
	once   sync.Once
)

func getLogger() *zap.Logger {
	if logger == nil {
		initLogger()
	}
	return logger
}

func GetLogger() *zap.Logger {
	logger = getLogger()
	return logger.Named("default")
}

func GetLoggerWith(name string, fields ...zap.Field) *zap.Logger {
	logger = getLogger()
	return logger.Named(name).With(fields...)
}

func logsDir() string {
	if dir, found := os.LookupEnv(EnvKeyLogDir); found && dir != "" {
		return dir
	}

	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting current directory: %v", err)
	}
	return filepath.Join(dir, "logs")
}

func rotatingFile(dir, name string) zapcore.WriteSyncer {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		log.Fatalf("Error find/create logs directory: %v", err)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28,   // days
		Compress:   true, // gzip
	})
}

func fileCore(dir, name string) zapcore.Core {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		rotatingFile(dir, name),
		zap.InfoLevel,
	)
}

func newLogger(dir string, production bool) *zap.Logger {
	core := fileCore(dir, "app.log")

	if !production {
		// console output goes to stderr so cli output on stdout stays clean
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), zap.DebugLevel)
		core = zapcore.NewTee(core, consoleCore)
	}

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

func initLogger() {
	once.Do(func() {
		logger = newLogger(logsDir(), IsProduction())
	})
}

// SetupLogger replaces the default logger with one writing app.log under
// dir (the default logs dir when empty). Production drops the console core.
func SetupLogger(dir string, production bool) {
	once.Do(func() {})

	if dir == "" {
		dir = logsDir()
	}
	logger = newLogger(dir, production)
}

// SetFileOnlyLogger writes cli.log under dir (the default logs dir when
// empty) and drops the console core, used by the cli where stderr chatter
// would interleave with command output.
func SetFileOnlyLogger(dir string) {
	once.Do(func() {})

	if dir == "" {
		dir = logsDir()
	}
	logger = zap.New(fileCore(dir, "cli.log"), zap.AddCaller())
}

func SetTestCaptureLogger(buf *bytes.Buffer, level zapcore.Level) {
	_ = GetLogger()

	writer := zapcore.AddSync(buf)
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writer, level)
	logger = zap.New(core)
}

func SetTestLoggerNop() {
	_ = GetLogger()

	logger = zap.NewNop()
}
