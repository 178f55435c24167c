package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

type Options struct {
	Level  string // debug|info|warn|error (default info)
	Format string // console|json (default console)
	File   string // opcional: si viene, sink JSON rotado con lumberjack
}

// New construye el logger del servicio sobre zap.
// Siempre escribe a stdout; con File se agrega un sink rotado en disco.
func New(opts Options) *zap.SugaredLogger {
	level := parseLevel(opts.Level)

	encCfg := zapcore.EncoderConfig{
		TimeKey:     "ts",
		LevelKey:    "level",
		MessageKey:  "msg",
		EncodeTime:  zapcore.ISO8601TimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}

	var stdoutEnc zapcore.Encoder
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		stdoutEnc = zapcore.NewJSONEncoder(encCfg)
	} else {
		stdoutEnc = zapcore.NewConsoleEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEnc, zapcore.AddSync(os.Stdout), level),
	}

	if strings.TrimSpace(opts.File) != "" {
		fileSink := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // MB
			MaxBackups: 7,
			MaxAge:     14, // días
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(fileSink),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...)).Sugar()
}

// NewFromEnv crea el logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=console|json (default console)
// - LOG_FILE=/ruta/app.log (opcional)
func NewFromEnv() *zap.SugaredLogger {
	return New(Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
		File:   os.Getenv("LOG_FILE"),
	})
}

// Nop es el logger para tests y wiring sin observabilidad.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
