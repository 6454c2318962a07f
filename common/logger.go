package common

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LogLevel int32

const (
	DEBUG_INFO_DETAIL LogLevel = 1
	DEBUG_INFO        LogLevel = 2
	PLAN_BUILD        LogLevel = 4
	DEBUGGING         LogLevel = 8
	INFO              LogLevel = 16
	WARN              LogLevel = 32
	ERROR             LogLevel = 64
	FATAL             LogLevel = 128
)

const (
	LogFormatJsonValue = "json"
	LogFormatTextValue = "text"
)

// LogLevelSetting is the bitmask of levels ShPrintf lets through
var LogLevelSetting = INFO | WARN | ERROR | FATAL

func ShPrintf(logLevel LogLevel, fmtStl string, a ...interface{}) {
	if logLevel&LogLevelSetting == 0 {
		return
	}
	msg := strings.TrimSuffix(fmt.Sprintf(fmtStl, a...), "\n")
	switch {
	case logLevel >= FATAL:
		log.Error().Str("severity", "fatal").Msg(msg)
	case logLevel >= ERROR:
		log.Error().Msg(msg)
	case logLevel >= WARN:
		log.Warn().Msg(msg)
	case logLevel >= INFO:
		log.Info().Msg(msg)
	default:
		log.Debug().Msg(msg)
	}
}

// SetLogLevel configures the global zerolog logger and the ShPrintf mask.
func SetLogLevel(logLevelStr string, logFormat string) error {
	var logLevel zerolog.Level
	switch logLevelStr {
	case zerolog.LevelDebugValue:
		logLevel = zerolog.DebugLevel
		LogLevelSetting = DEBUG_INFO | PLAN_BUILD | DEBUGGING | INFO | WARN | ERROR | FATAL
	case zerolog.LevelInfoValue:
		logLevel = zerolog.InfoLevel
		LogLevelSetting = INFO | WARN | ERROR | FATAL
	case zerolog.LevelWarnValue:
		logLevel = zerolog.WarnLevel
		LogLevelSetting = WARN | ERROR | FATAL
	default:
		return errors.Errorf("unknown log level %s", logLevelStr)
	}

	var formatWriter io.Writer
	switch logFormat {
	case LogFormatJsonValue:
		formatWriter = os.Stderr
	case LogFormatTextValue:
		formatWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	default:
		return errors.Errorf("unknown log format %s", logFormat)
	}

	if logLevel == zerolog.DebugLevel {
		log.Logger = zerolog.New(formatWriter).
			Level(logLevel).
			With().
			Timestamp().
			Caller().
			Int("pid", os.Getpid()).Logger()
	} else {
		log.Logger = zerolog.New(formatWriter).
			Level(logLevel).
			With().
			Timestamp().
			Logger()
	}
	return nil
}
