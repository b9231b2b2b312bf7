package entities

import "github.com/zooyer/cad2pdf/core"

// Leader 引线：折线 + 末端注释文字
type Leader struct {
	BaseEntity
	Vertices   []core.Point
	TextAnchor core.Point
	Value      string
}

// Tolerance 形位公差框
type Tolerance struct {
	BaseEntity
	Position core.Point
	Height   float64
	Value    string
}

func init() {
	register("LEADER", func() Entity { return &Leader{} })
	register("TOLERANCE", func() Entity { return &Tolerance{} })
}

func (l *Leader) Type() string { return "LEADER" }

func (l *Leader) apply(t core.Tag, v *core.VertexBuilder) error {
	if l.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 1:
		l.Value = t.Value
	case 10:
		return addVertex(v, 0, t, &l.Vertices)
	case 20:
		return addVertex(v, 1, t, &l.Vertices)
	default:
		_, err := applyPoint(&l.TextAnchor, 11, t)
		return err
	}
	return nil
}

func (l *Leader) Tags() []core.Tag {
	tags := []core.Tag{l.layerTag(), core.Int(90, len(l.Vertices))}
	tags = append(tags, vertexTags(l.Vertices, 2)...)
	tags = append(tags, pointTags(11, l.TextAnchor)...)
	return append(tags, core.String(1, singleLine(l.Value)))
}

func (x *Tolerance) Type() string { return "TOLERANCE" }

func (x *Tolerance) apply(t core.Tag, _ *core.VertexBuilder) error {
	if x.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 1:
		x.Value = t.Value
	case 40:
		return setFloat(&x.Height, t)
	default:
		_, err := applyPoint(&x.Position, 10, t)
		return err
	}
	return nil
}

func (x *Tolerance) Tags() []core.Tag {
	tags := append([]core.Tag{x.layerTag()}, pointTags(10, x.Position)...)
	return append(tags, core.Float(40, x.Height), core.String(1, singleLine(x.Value)))
}
