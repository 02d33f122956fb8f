// Package log provides the component loggers used across the application.
// Every line is prefixed with the component name in its own color, followed
// by the level: "[APP] [INFO] message key=value".
package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beka-birhanu/vinom-mazeviz/config"
	"github.com/beka-birhanu/vinom-mazeviz/service/i"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger is a prefixed logger backed by logrus.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger for one component, writing to out.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// SetLevel changes the minimum level written, e.g. "debug".
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.Logger.SetLevel(lvl)
	return nil
}

// WithField returns a logger that appends key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// WithRun tags every line with a run id.
func (l *Logger) WithRun(id uuid.UUID) i.Logger {
	return l.WithField("run", id.String())
}

func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

type prefixFormatter struct {
	prefix string
	color  string
}

func levelColor(level logrus.Level) string {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return config.LogErrorColor
	case logrus.WarnLevel:
		return config.LogWarnColor
	default:
		return config.LogInfoColor
	}
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s[%s]%s %s[%s]%s %s",
		f.color, f.prefix, config.ColorReset,
		levelColor(e.Level), strings.ToUpper(e.Level.String()), config.LogColorReset,
		e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
