package dxf

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
)

const (
	header = "0\nSECTION\n2\nHEADER\n9\n$ACADVER\n1\nAC1009\n0\nENDSEC\n0\nSECTION\n2\nENTITIES\n"
	footer = "0\nENDSEC\n0\nEOF\n"
)

// ErrWriterClosed Close 之后继续写入
var ErrWriterClosed = errors.New("dxf: writer closed")

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Writer 按 R12 格式逐个写出实体，块定义直接写在 ENTITIES 段内
type Writer struct {
	w       *bufio.Writer
	err     error
	started bool
	closed  bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Encode 写出完整文档，只有写入失败才会返回错误
func Encode(w io.Writer, ents []entities.Entity) error {
	writer := NewWriter(w)
	for _, e := range ents {
		if err := writer.WriteEntity(e); err != nil {
			return err
		}
	}
	return writer.Close()
}

func (w *Writer) WriteEntity(e entities.Entity) error {
	if w.closed {
		return ErrWriterClosed
	}
	w.start()
	w.entity(e)
	return w.err
}

// Close 写出结束标记并刷新缓冲，不关闭底层 io.Writer
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.start()
	w.put(footer)
	w.closed = true
	if w.err == nil {
		w.err = w.w.Flush()
	}
	return w.err
}

func (w *Writer) start() {
	if !w.started {
		w.started = true
		w.put(header)
	}
}

func (w *Writer) entity(e entities.Entity) {
	switch e := e.(type) {
	case *entities.Block:
		// 嵌套的块定义提到外层块之前
		for _, child := range e.Entities {
			if b, ok := child.(*entities.Block); ok {
				w.entity(b)
			}
		}
		w.record("BLOCK", e.Tags())
		for _, child := range e.Entities {
			if _, ok := child.(*entities.Block); !ok {
				w.entity(child)
			}
		}
		w.record("ENDBLK", []core.Tag{core.String(8, e.Layer())})
	case *entities.Insert:
		w.record(e.Type(), e.Tags())
		if len(e.Attributes) == 0 {
			return
		}
		for _, a := range e.Attributes {
			w.record(a.Type(), a.Tags())
		}
		w.record("SEQEND", []core.Tag{core.String(8, e.Layer())})
	default:
		w.record(e.Type(), e.Tags())
	}
}

func (w *Writer) record(typeName string, tags []core.Tag) {
	w.tag(core.String(0, typeName))
	for _, t := range tags {
		w.tag(t)
	}
}

func (w *Writer) tag(t core.Tag) {
	w.put(strconv.Itoa(t.Code))
	w.put("\n")
	w.put(newlines.Replace(t.Value))
	w.put("\n")
}

func (w *Writer) put(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}
