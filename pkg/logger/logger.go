package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mock/logger_mock.go -package=mock github.com/savioruz/pexiblock-checkout/pkg/logger Interface

type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message interface{}, args ...interface{})
	Warn(message interface{}, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

type Logger struct {
	logger *zerolog.Logger
}

var _ Interface = (*Logger)(nil)

const (
	_maxSizeMB  = 50
	_maxBackups = 3
	_maxAgeDays = 7
)

// New builds a zerolog logger writing to stdout, and additionally to a rotating
// file when file is not empty.
func New(level, file string) *Logger {
	var out io.Writer = os.Stdout

	if file != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    _maxSizeMB,
			MaxBackups: _maxBackups,
			MaxAge:     _maxAgeDays,
		})
	}

	return NewWithWriter(level, out)
}

func NewWithWriter(level string, out io.Writer) *Logger {
	skipFrameCount := 3
	logger := zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + skipFrameCount).
		Logger()

	return &Logger{
		logger: &logger,
	}
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) log(event *zerolog.Event, message string, args ...interface{}) {
	if len(args) == 0 {
		event.Msg(message)
	} else {
		event.Msgf(message, args...)
	}
}

func (l *Logger) msg(event *zerolog.Event, level string, message interface{}, args ...interface{}) {
	switch msg := message.(type) {
	case error:
		l.log(event, msg.Error(), args...)
	case string:
		l.log(event, msg, args...)
	default:
		l.log(event, fmt.Sprintf("%s message %v has an unknown type %T", level, message, msg), args...)
	}
}

func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.msg(l.logger.Debug(), "Debug", message, args...)
}

func (l *Logger) Info(message interface{}, args ...interface{}) {
	l.msg(l.logger.Info(), "Info", message, args...)
}

func (l *Logger) Warn(message interface{}, args ...interface{}) {
	l.msg(l.logger.Warn(), "Warn", message, args...)
}

func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.msg(l.logger.Error(), "Error", message, args...)
}

// Fatal logs at fatal level without exiting; callers decide how to stop.
func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.msg(l.logger.WithLevel(zerolog.FatalLevel), "Fatal", message, args...)
}
