package entities

import "github.com/zooyer/cad2pdf/core"

// Wipeout 遮罩：以背景色填充的闭合边界
type Wipeout struct {
	BaseEntity
	Vertices []core.Point
}

// Region 面域边界，Filled 时填充绘制
type Region struct {
	BaseEntity
	Vertices []core.Point
	Filled   bool // 组码 70 第 1 位
}

func init() {
	register("WIPEOUT", func() Entity { return &Wipeout{} })
	register("REGION", func() Entity { return &Region{} })
}

func (w *Wipeout) Type() string { return "WIPEOUT" }

func (w *Wipeout) apply(t core.Tag, v *core.VertexBuilder) error {
	if w.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 10:
		return addVertex(v, 0, t, &w.Vertices)
	case 20:
		return addVertex(v, 1, t, &w.Vertices)
	}
	return nil
}

func (w *Wipeout) Tags() []core.Tag {
	tags := []core.Tag{w.layerTag(), core.Int(90, len(w.Vertices))}
	return append(tags, vertexTags(w.Vertices, 2)...)
}

func (r *Region) Type() string { return "REGION" }

func (r *Region) apply(t core.Tag, v *core.VertexBuilder) error {
	if r.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 70:
		var flags int
		if err := setInt(&flags, t); err != nil {
			return err
		}
		r.Filled = flags&1 != 0
	case 10:
		return addVertex(v, 0, t, &r.Vertices)
	case 20:
		return addVertex(v, 1, t, &r.Vertices)
	}
	return nil
}

func (r *Region) Tags() []core.Tag {
	flags := 0
	if r.Filled {
		flags = 1
	}
	tags := []core.Tag{r.layerTag(), core.Int(90, len(r.Vertices)), core.Int(70, flags)}
	return append(tags, vertexTags(r.Vertices, 2)...)
}
