package records

import "encoding/binary"

// DefaultMaxDepth 默认允许的块嵌套层数
const DefaultMaxDepth = 32

type options struct {
	order    binary.ByteOrder
	maxDepth int
}

// Option 解码/编码选项
type Option func(*options)

// WithByteOrder 设置数值字节序，默认小端
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *options) {
		if order != nil {
			o.order = order
		}
	}
}

// WithMaxDepth 设置块嵌套上限，超过时解码返回 ErrNestingTooDeep
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

func newOptions(opts []Option) options {
	o := options{order: binary.LittleEndian, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
