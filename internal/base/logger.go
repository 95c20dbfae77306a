package base

import (
	"context"
	"errors"
	"fmt"
	"github.com/fatih/color"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/global"
	"io"
	"log/slog"
	"os"
)

const LevelFatal = slog.Level(12)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgHiBlack),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
	LevelFatal:      color.New(color.FgHiRed, color.Bold),
}

func levelName(level slog.Level) string {
	if level == LevelFatal {
		return "FATAL"
	}
	return level.String()
}

// replaceLevel 控制台输出时为日志级别着色
func replaceLevel(colored bool) func(groups []string, attr slog.Attr) slog.Attr {
	return func(groups []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.LevelKey || len(groups) > 0 {
			return attr
		}
		level, ok := attr.Value.Any().(slog.Level)
		if !ok {
			return attr
		}
		name := levelName(level)
		if c, exist := levelColors[level]; colored && exist {
			name = c.Sprint(name)
		}
		return slog.String(slog.LevelKey, name)
	}
}

// fanoutHandler 将同一条日志写入多个handler
type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h {
		if handler.Enabled(ctx, record.Level) {
			errs = append(errs, handler.Handle(ctx, record.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	result := make(fanoutHandler, 0, len(h))
	for _, handler := range h {
		result = append(result, handler.WithAttrs(attrs))
	}
	return result
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	result := make(fanoutHandler, 0, len(h))
	for _, handler := range h {
		result = append(result, handler.WithGroup(name))
	}
	return result
}

type LoggerShutdownCallback struct {
	logger *Logger
}

func (lc *LoggerShutdownCallback) Invoke(_ context.Context) error {
	if lc.logger.file == nil {
		return nil
	}
	err := lc.logger.file.Close()
	lc.logger.file = nil
	return err
}

type Logger struct {
	level  *slog.LevelVar
	logger *slog.Logger
	output io.Writer
	file   *os.File
}

func NewLogger() *Logger {
	return &Logger{level: &slog.LevelVar{}, output: os.Stdout}
}

// NewLoggerWithOutput 将日志写入指定的writer, 不着色
func NewLoggerWithOutput(output io.Writer) *Logger {
	return &Logger{level: &slog.LevelVar{}, output: output}
}

func (l *Logger) Init(debug bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}

	colored := l.output == os.Stdout && !color.NoColor
	handlers := fanoutHandler{
		slog.NewTextHandler(l.output, &slog.HandlerOptions{Level: l.level, ReplaceAttr: replaceLevel(colored)}),
	}

	if path := *global.LogFilePath; path != "" {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "fail to open log file %s: %v\n", path, err)
		} else {
			l.file = file
			handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: l.level, ReplaceAttr: replaceLevel(false)}))
		}
	}

	l.logger = slog.New(handlers)
	slog.SetDefault(l.logger)
}

func (l *Logger) ShutdownCallback() global.Callable {
	return &LoggerShutdownCallback{logger: l}
}

func (l *Logger) log(level slog.Level, msg string, v ...interface{}) {
	if l.logger == nil {
		l.Init(false)
	}
	l.logger.Log(context.Background(), level, msg, v...)
}

func (l *Logger) logF(level slog.Level, msg string, v ...interface{}) {
	if l.logger == nil {
		l.Init(false)
	}
	if !l.logger.Enabled(context.Background(), level) {
		return
	}
	l.logger.Log(context.Background(), level, fmt.Sprintf(msg, v...))
}

func (l *Logger) Debug(msg string, v ...interface{})  { l.log(slog.LevelDebug, msg, v...) }
func (l *Logger) DebugF(msg string, v ...interface{}) { l.logF(slog.LevelDebug, msg, v...) }
func (l *Logger) Info(msg string, v ...interface{})   { l.log(slog.LevelInfo, msg, v...) }
func (l *Logger) InfoF(msg string, v ...interface{})  { l.logF(slog.LevelInfo, msg, v...) }
func (l *Logger) Warn(msg string, v ...interface{})   { l.log(slog.LevelWarn, msg, v...) }
func (l *Logger) WarnF(msg string, v ...interface{})  { l.logF(slog.LevelWarn, msg, v...) }
func (l *Logger) Error(msg string, v ...interface{})  { l.log(slog.LevelError, msg, v...) }
func (l *Logger) ErrorF(msg string, v ...interface{}) { l.logF(slog.LevelError, msg, v...) }
func (l *Logger) Fatal(msg string, v ...interface{})  { l.log(LevelFatal, msg, v...) }
func (l *Logger) FatalF(msg string, v ...interface{}) { l.logF(LevelFatal, msg, v...) }
