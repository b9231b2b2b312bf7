// Package logging 提供全局 *slog.Logger，默认丢弃全部输出
package logging

import (
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger 设置全局日志，传 nil 恢复为丢弃
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger 返回全局日志，未设置时返回丢弃日志
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	l := slog.New(slog.DiscardHandler)
	logger.CompareAndSwap(nil, l)
	return logger.Load()
}

// ParseLevel 解析 debug/info/warn/error，无法识别时返回 info
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewText 创建输出到 w 的文本日志
func NewText(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
