package cad2pdf

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// Format 输入文件的格式
type Format int

const (
	// Text 组码/值成对的文本交换格式
	Text Format = iota
	// Binary 带类型字节的二进制记录流
	Binary
)

var ErrUnknownFormat = errors.New("cad2pdf: unknown input format")

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case Binary:
		return "binary"
	}
	return "unknown"
}

// ParseFormat 解析 text/dxf 或 binary/bin
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "dxf":
		return Text, nil
	case "binary", "bin":
		return Binary, nil
	}
	return 0, ErrUnknownFormat
}

// DetectFormat 先看扩展名，再看文件开头：
// 文本格式以组码行开始，二进制格式以记录类型字节（1..25）开始
func DetectFormat(name string, head []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".dxf":
		return Text, nil
	case ".bin", ".cadb":
		return Binary, nil
	}

	head = bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] >= '0' && trimmed[0] <= '9' {
		return Text, nil
	}
	if len(head) > 0 && head[0] >= 1 && head[0] <= 25 {
		return Binary, nil
	}
	return 0, ErrUnknownFormat
}
