// Package logger 为命令行工具提供简洁的分步日志，底层使用 log/slog。
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger 简洁的进度日志系统
type Logger struct {
	log        *slog.Logger
	step       string
	stepStart  time.Time
	totalStart time.Time
}

// New 创建日志记录器，输出到 w，低于 level 的消息被丢弃
func New(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// 命令行输出不需要时间戳
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &Logger{
		log:        slog.New(h),
		totalStart: time.Now(),
	}
}

// LevelFromFlags 根据命令行选项返回日志级别：
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - 默认: [slog.LevelWarn]
//
// 按上述顺序判断，同时指定 vv 和 q 时仍然是 Debug。
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Slog 返回底层的 slog.Logger
func (l *Logger) Slog() *slog.Logger {
	return l.log
}

// Step 开始一个处理步骤
func (l *Logger) Step(name string, params ...any) {
	l.step = name
	l.stepStart = time.Now()
	if len(params) > 0 {
		l.log.Debug(name, "params", fmt.Sprint(params...))
	} else {
		l.log.Debug(name)
	}
}

// Done 完成当前步骤
func (l *Logger) Done(result string) {
	elapsed := time.Since(l.stepStart)
	if elapsed > 100*time.Millisecond {
		l.log.Info(l.step, "result", result, "elapsed", elapsed.Round(time.Millisecond))
	} else {
		l.log.Info(l.step, "result", result)
	}
}

// Total 输出总耗时
func (l *Logger) Total() {
	l.log.Debug("总耗时", "elapsed", time.Since(l.totalStart).Round(time.Millisecond))
}

// Info 输出信息
func (l *Logger) Info(format string, args ...any) {
	l.log.Info(fmt.Sprintf(format, args...))
}

// Warn 输出警告
func (l *Logger) Warn(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

// Debug 输出调试信息
func (l *Logger) Debug(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}
