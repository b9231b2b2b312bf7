package entities

import "github.com/zooyer/cad2pdf/core"

type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64 // 度
	Attributes     []*Attrib
}

func init() {
	register("INSERT", func() Entity {
		return &Insert{
			Scale: core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
		}
	})
}

func (i *Insert) Type() string { return "INSERT" }

func (i *Insert) apply(t core.Tag, _ *core.VertexBuilder) error {
	if i.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 2:
		i.BlockName = t.AsString()
	case 41:
		return setFloat(&i.Scale.X, t)
	case 42:
		return setFloat(&i.Scale.Y, t)
	case 43:
		return setFloat(&i.Scale.Z, t)
	case 50:
		return setFloat(&i.Rotation, t)
	default:
		// 组码 66（后随属性）由解析器处理
		_, err := applyPoint(&i.InsertionPoint, 10, t)
		return err
	}
	return nil
}

func (i *Insert) Tags() []core.Tag {
	tags := []core.Tag{i.layerTag(), core.String(2, i.BlockName)}
	tags = append(tags, pointTags(10, i.InsertionPoint)...)
	tags = append(tags,
		core.Float(41, i.Scale.X),
		core.Float(42, i.Scale.Y),
		core.Float(43, i.Scale.Z),
		core.Float(50, i.Rotation),
	)
	if len(i.Attributes) > 0 {
		tags = append(tags, core.Int(66, 1))
	}
	return tags
}

// AddAttribute 追加一个属性（ATTRIB ... SEQEND 序列）
func (i *Insert) AddAttribute(a *Attrib) {
	i.Attributes = append(i.Attributes, a)
}
