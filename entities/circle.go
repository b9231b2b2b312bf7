package entities

import "github.com/zooyer/cad2pdf/core"

type Circle struct {
	BaseEntity
	Center core.Point
	Radius float64
}

// Arc 圆弧，角度单位为度，逆时针从 StartAngle 到 EndAngle
type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func init() {
	register("CIRCLE", func() Entity { return &Circle{} })
	register("ARC", func() Entity { return &Arc{} })
}

func (c *Circle) Type() string { return "CIRCLE" }

func (c *Circle) apply(t core.Tag, _ *core.VertexBuilder) error {
	if c.applyLayer(t) {
		return nil
	}
	if t.Code == 40 {
		return setFloat(&c.Radius, t)
	}
	_, err := applyPoint(&c.Center, 10, t)
	return err
}

func (c *Circle) Tags() []core.Tag {
	tags := append([]core.Tag{c.layerTag()}, pointTags(10, c.Center)...)
	return append(tags, core.Float(40, c.Radius))
}

func (c *Circle) BBox() core.BBox {
	return radiusBox(c.Center, c.Radius)
}

func (a *Arc) Type() string { return "ARC" }

func (a *Arc) apply(t core.Tag, _ *core.VertexBuilder) error {
	if a.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 40:
		return setFloat(&a.Radius, t)
	case 50:
		return setFloat(&a.StartAngle, t)
	case 51:
		return setFloat(&a.EndAngle, t)
	}
	_, err := applyPoint(&a.Center, 10, t)
	return err
}

func (a *Arc) Tags() []core.Tag {
	tags := append([]core.Tag{a.layerTag()}, pointTags(10, a.Center)...)
	return append(tags,
		core.Float(40, a.Radius),
		core.Float(50, a.StartAngle),
		core.Float(51, a.EndAngle),
	)
}

// BBox 圆弧按整圆估算
func (a *Arc) BBox() core.BBox {
	return radiusBox(a.Center, a.Radius)
}

func radiusBox(c core.Point, r float64) core.BBox {
	return core.BBox{
		Min: core.Point{X: c.X - r, Y: c.Y - r},
		Max: core.Point{X: c.X + r, Y: c.Y + r},
	}
}
