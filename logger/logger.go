package logger

import (
	"io"
	"log"

	"github.com/luevano/imageset"
)

// Logger writes prefixed lines and forwards every message to an
// optional hook. By default nothing is written.
type Logger struct {
	onLog  func(format string, a ...any)
	logger *log.Logger
	prefix string
}

func NewLogger() *Logger {
	logger := log.New(io.Discard, "", log.Default().Flags())

	return &Logger{
		onLog:  func(format string, a ...any) {},
		logger: logger,
		prefix: "",
	}
}

// SetPrefix sets the prefix, written as "prefix: " before each message.
// An empty prefix disables it.
func (l *Logger) SetPrefix(prefix string) {
	l.prefix = prefix
}

func (l *Logger) Prefix() string {
	return l.prefix
}

func (l *Logger) Writer() io.Writer {
	return l.logger.Writer()
}

func (l *Logger) SetOutput(writer io.Writer) {
	l.logger.SetOutput(writer)
}

// SetFlags sets the output flags of the underlying log.Logger.
func (l *Logger) SetFlags(flags int) {
	l.logger.SetFlags(flags)
}

// SetOnLog sets the hook called for every message. When a prefix is set
// the format starts with "%s: " and the prefix is the first argument.
func (l *Logger) SetOnLog(hook func(format string, a ...any)) {
	l.onLog = hook
}

func (l *Logger) Log(format string, a ...any) {
	newFmt := format
	if l.prefix != "" {
		newFmt = "%s: " + format
		a = append([]any{l.prefix}, a...)
	}
	if l.onLog != nil {
		l.onLog(newFmt, a...)
	}
	newFmt += "\n"
	l.logger.Printf(newFmt, a...)
}

// ImageSetError logs a single image set error with its channel and key.
func (l *Logger) ImageSetError(err *imageset.Error) {
	l.Log("channel %s, key %v: %s", err.ChannelName(), err.Key(), err.Message())
}
