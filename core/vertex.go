package core

// VertexBuilder 按坐标组码到达顺序拼装顶点。
// X 先暂存，最后一个坐标到达时顶点才完整可见；
// 未完成时又来新的 X，旧的半成品直接丢弃；没有 X 的 Y/Z 被忽略。
type VertexBuilder struct {
	Dims    int // 2 或 3，其它值按 2 处理
	pending [3]float64
	n       int
}

// Add 写入第 axis 个坐标（0=X 1=Y 2=Z），顶点完整时返回 true
func (b *VertexBuilder) Add(axis int, v float64) (Point, bool) {
	switch {
	case axis == 0:
		b.pending[0] = v
		b.n = 1
	case axis > 0 && axis == b.n:
		b.pending[axis] = v
		b.n++
	default:
		return Point{}, false
	}

	if b.n < b.dims() {
		return Point{}, false
	}
	b.n = 0

	p := Point{X: b.pending[0], Y: b.pending[1]}
	if b.dims() == 3 {
		p.Z = b.pending[2]
	}
	return p, true
}

// Pending 是否有未完成的顶点
func (b *VertexBuilder) Pending() bool {
	return b.n > 0
}

// Reset 丢弃未完成的顶点
func (b *VertexBuilder) Reset() {
	b.n = 0
}

func (b *VertexBuilder) dims() int {
	if b.Dims == 3 {
		return 3
	}
	return 2
}
