package entities

import "github.com/zooyer/cad2pdf/core"

// XRef 外部参照，只保留路径与插入点
type XRef struct {
	BaseEntity
	Path     string
	Position core.Point
}

func init() {
	register("XREF", func() Entity { return &XRef{} })
}

func (x *XRef) Type() string { return "XREF" }

func (x *XRef) apply(t core.Tag, _ *core.VertexBuilder) error {
	if x.applyLayer(t) {
		return nil
	}
	if t.Code == 1 {
		x.Path = t.AsString()
		return nil
	}
	_, err := applyPoint(&x.Position, 10, t)
	return err
}

func (x *XRef) Tags() []core.Tag {
	tags := []core.Tag{x.layerTag(), core.String(1, singleLine(x.Path))}
	return append(tags, pointTags(10, x.Position)...)
}
