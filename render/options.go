package render

const (
	// DefaultMaxDepth 块嵌套展开的最大层数
	DefaultMaxDepth = 32
	// DefaultMaxExpansions 一次渲染最多绘制的实体数（含块展开）
	DefaultMaxExpansions = 1_000_000
	// DefaultTextHeight 字高为 0 时使用的图纸单位字高
	DefaultTextHeight = 2.5
)

type options struct {
	maxDepth      int
	maxExpansions int
	rotation      bool
	precisions    map[string]int
}

type Option func(*options)

// WithMaxDepth 设置块嵌套展开的最大层数，超过的层级跳过不画
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithMaxExpansions 设置一次渲染最多绘制的实体数，超过返回 ErrExpansionLimit
func WithMaxExpansions(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxExpansions = n
		}
	}
}

// WithInsertRotation 块插入时应用旋转和 X/Y 独立缩放。
// 默认只按 X 比例等比缩放
func WithInsertRotation(enable bool) Option {
	return func(o *options) {
		o.rotation = enable
	}
}

// WithDimPrecision 标注样式（大写名称）到小数位数的映射
func WithDimPrecision(precisions map[string]int) Option {
	return func(o *options) {
		o.precisions = precisions
	}
}

func newOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth, maxExpansions: DefaultMaxExpansions}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
