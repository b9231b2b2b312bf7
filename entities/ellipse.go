package entities

import (
	"math"

	"github.com/zooyer/cad2pdf/core"
)

// Ellipse 椭圆（弧），MajorAxis 是相对圆心的长轴端点，
// StartParam/EndParam 为参数角（弧度）
type Ellipse struct {
	BaseEntity
	Center     core.Point
	MajorAxis  core.Point
	Ratio      float64 // 短轴/长轴
	StartParam float64
	EndParam   float64
}

func init() {
	register("ELLIPSE", func() Entity {
		return &Ellipse{Ratio: 1, EndParam: 2 * math.Pi}
	})
}

func (e *Ellipse) Type() string { return "ELLIPSE" }

func (e *Ellipse) apply(t core.Tag, _ *core.VertexBuilder) error {
	if e.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 40:
		return setFloat(&e.Ratio, t)
	case 41:
		return setFloat(&e.StartParam, t)
	case 42:
		return setFloat(&e.EndParam, t)
	}
	if ok, err := applyPoint(&e.Center, 10, t); ok {
		return err
	}
	_, err := applyPoint(&e.MajorAxis, 11, t)
	return err
}

func (e *Ellipse) Tags() []core.Tag {
	tags := append([]core.Tag{e.layerTag()}, pointTags(10, e.Center)...)
	tags = append(tags, pointTags(11, e.MajorAxis)...)
	return append(tags,
		core.Float(40, e.Ratio),
		core.Float(41, e.StartParam),
		core.Float(42, e.EndParam),
	)
}

// MajorRadius 长半轴长度
func (e *Ellipse) MajorRadius() float64 {
	return math.Hypot(e.MajorAxis.X, e.MajorAxis.Y)
}

// Rotation 长轴方向（度）
func (e *Ellipse) Rotation() float64 {
	return math.Atan2(e.MajorAxis.Y, e.MajorAxis.X) * 180 / math.Pi
}
