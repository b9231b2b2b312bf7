package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
)

// BufferedHandler 把日志记录为 JSON 行保存在内存里，测试中用来检查输出
type BufferedHandler struct {
	level  slog.Leveler
	mu     *sync.Mutex
	buffer *bytes.Buffer
	attrs  []slog.Attr
	groups []string
}

// NewBufferedHandler opts 为 nil 时记录所有级别
func NewBufferedHandler(opts *slog.HandlerOptions) *BufferedHandler {
	h := &BufferedHandler{mu: &sync.Mutex{}, buffer: &bytes.Buffer{}}
	if opts != nil {
		h.level = opts.Level
	}
	return h
}

func (h *BufferedHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.level == nil || level >= h.level.Level()
}

func (h *BufferedHandler) Handle(_ context.Context, r slog.Record) error {
	entry := record{Level: r.Level.String(), Message: r.Message}
	for _, a := range h.attrs {
		entry.Attrs = append(entry.Attrs, h.prefixed(a))
	}
	r.Attrs(func(a slog.Attr) bool {
		entry.Attrs = append(entry.Attrs, h.prefixed(a))
		return true
	})

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.buffer.Write(data)
	h.buffer.WriteByte('\n')
	return nil
}

func (h *BufferedHandler) prefixed(a slog.Attr) string {
	if len(h.groups) == 0 {
		return a.String()
	}
	return strings.Join(h.groups, ".") + "." + a.String()
}

func (h *BufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &c
}

func (h *BufferedHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.groups = append(append([]string(nil), h.groups...), name)
	return &c
}

// String 返回全部已记录内容
func (h *BufferedHandler) String() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buffer.String()
}

// Contains 已记录内容是否包含 s
func (h *BufferedHandler) Contains(s string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return bytes.Contains(h.buffer.Bytes(), []byte(s))
}

// Reset 清空记录
func (h *BufferedHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buffer.Reset()
}

type record struct {
	Level   string   `json:"level"`
	Message string   `json:"message"`
	Attrs   []string `json:"attrs,omitempty"`
}
