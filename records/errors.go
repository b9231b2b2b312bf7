package records

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNegativeLength 计数或长度前缀为负数
	ErrNegativeLength = errors.New("records: negative length")
	// ErrNestingTooDeep 块嵌套超过上限
	ErrNestingTooDeep = errors.New("records: block nesting too deep")
	// ErrNotEncodable 实体没有对应的二进制记录
	ErrNotEncodable = errors.New("records: entity has no binary record")
)

// TruncatedStreamError 记录声明的字节数多于剩余字节
type TruncatedStreamError struct {
	Offset int64  // 记录开始处的偏移
	Record string // 记录类型名
	Want   int64
	Got    int64
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("records: truncated %s record at offset %d: want %d bytes, got %d", e.Record, e.Offset, e.Want, e.Got)
}

func (e *TruncatedStreamError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// UnknownRecordTypeError 无法识别的记录类型字节。
// 不作为错误返回，解码在此处停止，通过 Decoder.Unknown 查询
type UnknownRecordTypeError struct {
	Tag    byte
	Offset int64
}

func (e *UnknownRecordTypeError) Error() string {
	return fmt.Sprintf("records: unknown record type 0x%02x at offset %d", e.Tag, e.Offset)
}
