package entities

import "github.com/zooyer/cad2pdf/core"

// Polyface 多面网格，只保留顶点，渲染时画线框
type Polyface struct {
	BaseEntity
	Vertices []core.Point
}

// Mesh 细分网格
type Mesh struct {
	BaseEntity
	Level    int // 细分级别
	Vertices []core.Point
}

func init() {
	register("POLYFACE", func() Entity { return &Polyface{} })
	register("MESH", func() Entity { return &Mesh{} })
}

func (p *Polyface) Type() string { return "POLYFACE" }

func (p *Polyface) vertexDims() int { return 3 }

func (p *Polyface) apply(t core.Tag, v *core.VertexBuilder) error {
	if p.applyLayer(t) {
		return nil
	}
	if axis, ok := axisOf(t.Code); ok {
		return addVertex(v, axis, t, &p.Vertices)
	}
	return nil
}

func (p *Polyface) Tags() []core.Tag {
	tags := []core.Tag{p.layerTag(), core.Int(90, len(p.Vertices))}
	return append(tags, vertexTags(p.Vertices, 3)...)
}

func (m *Mesh) Type() string { return "MESH" }

func (m *Mesh) vertexDims() int { return 3 }

func (m *Mesh) apply(t core.Tag, v *core.VertexBuilder) error {
	if m.applyLayer(t) {
		return nil
	}
	if t.Code == 91 {
		return setInt(&m.Level, t)
	}
	if axis, ok := axisOf(t.Code); ok {
		return addVertex(v, axis, t, &m.Vertices)
	}
	return nil
}

func (m *Mesh) Tags() []core.Tag {
	tags := []core.Tag{m.layerTag(), core.Int(91, m.Level), core.Int(92, len(m.Vertices))}
	return append(tags, vertexTags(m.Vertices, 3)...)
}

func axisOf(code int) (int, bool) {
	switch code {
	case 10:
		return 0, true
	case 20:
		return 1, true
	case 30:
		return 2, true
	}
	return 0, false
}
