package entities

import (
	"github.com/zooyer/cad2pdf/core"
)

// LWPolyline 多段线，顶点顺序即绘制顺序
type LWPolyline struct {
	BaseEntity
	Vertices []core.Point
	Closed   bool // 组码 70 第 1 位
}

func init() {
	register("LWPOLYLINE", func() Entity { return &LWPolyline{} })
}

func (l *LWPolyline) Type() string { return "LWPOLYLINE" }

func (l *LWPolyline) apply(t core.Tag, v *core.VertexBuilder) error {
	if l.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 70:
		var flags int
		if err := setInt(&flags, t); err != nil {
			return err
		}
		l.Closed = flags&1 != 0
	case 10:
		return addVertex(v, 0, t, &l.Vertices)
	case 20:
		return addVertex(v, 1, t, &l.Vertices)
	}
	return nil
}

func (l *LWPolyline) Tags() []core.Tag {
	flags := 0
	if l.Closed {
		flags = 1
	}
	tags := []core.Tag{l.layerTag(), core.Int(90, len(l.Vertices)), core.Int(70, flags)}
	return append(tags, vertexTags(l.Vertices, 2)...)
}
