package core

import "errors"

var (
	// ErrEmptyValue 数值字段为空
	ErrEmptyValue = errors.New("empty value")
	// ErrOutOfRange 整数超出 32 位有符号范围
	ErrOutOfRange = errors.New("value out of int32 range")
	// ErrNonFinite 浮点数为 Inf 或 NaN
	ErrNonFinite = errors.New("non-finite number")
	// ErrLineTooLong 单行超过 MaxLineLength
	ErrLineTooLong = errors.New("line too long")
)
