package entities

import "github.com/zooyer/cad2pdf/core"

type Attrib struct {
	BaseEntity
	Location core.Point
	Tag      string // 属性标签，如 "序号"
	Prompt   string
	Text     string // 属性值
	Height   float64
}

func init() {
	register("ATTRIB", func() Entity { return &Attrib{} })
}

func (a *Attrib) Type() string { return "ATTRIB" }

func (a *Attrib) apply(t core.Tag, _ *core.VertexBuilder) error {
	if a.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 40:
		return setFloat(&a.Height, t)
	case 1:
		a.Text = t.AsString()
	case 2:
		a.Tag = t.AsString()
	case 3:
		a.Prompt = t.AsString()
	default:
		_, err := applyPoint(&a.Location, 10, t)
		return err
	}
	return nil
}

func (a *Attrib) Tags() []core.Tag {
	tags := append([]core.Tag{a.layerTag()}, pointTags(10, a.Location)...)
	return append(tags,
		core.Float(40, a.Height),
		core.String(1, singleLine(a.Text)),
		core.String(2, singleLine(a.Tag)),
		core.String(3, singleLine(a.Prompt)),
	)
}
