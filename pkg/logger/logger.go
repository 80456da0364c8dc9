package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	TargetConsole = "console"
	TargetFile    = "file"
)

type Config struct {
	Filename   string   `yaml:"filename"`
	LogLevel   string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	MaxSize    int      `yaml:"max_size_in_mb"`
	MaxBackups int      `yaml:"max_backups"`
	MaxAge     int      `yaml:"max_age_in_days"`
	Compress   bool     `yaml:"compress"`
}

var global = newLogger(&Config{LogLevel: "info", Targets: []string{TargetConsole}})

// InitGlobalLogger replaces the process logger. It must be called before serving traffic.
func InitGlobalLogger(cfg *Config) {
	global = newLogger(cfg)
}

func newLogger(cfg *Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		switch target {
		case TargetConsole:
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

		case TargetFile:
			if cfg.Filename == "" {
				continue
			}

			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func Debug(msg string, keyvals ...any) {
	write(global.Debug(), msg, keyvals)
}

func Info(msg string, keyvals ...any) {
	write(global.Info(), msg, keyvals)
}

func Warn(msg string, keyvals ...any) {
	write(global.Warn(), msg, keyvals)
}

func Error(msg string, keyvals ...any) {
	write(global.Error(), msg, keyvals)
}

// write attaches alternating key/value pairs to the event.
// A trailing key without a value is logged under "!BADKEY".
func write(e *zerolog.Event, msg string, keyvals []any) {
	if e == nil {
		return
	}

	for i := 0; i < len(keyvals); i += 2 {
		if i+1 == len(keyvals) {
			e = e.Interface("!BADKEY", keyvals[i])

			break
		}

		key := fmt.Sprint(keyvals[i])
		switch v := keyvals[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case string:
			e = e.Str(key, v)
		default:
			e = e.Interface(key, v)
		}
	}

	e.Msg(msg)
}
