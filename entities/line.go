package entities

import (
	"math"

	"github.com/zooyer/cad2pdf/core"
)

type Line struct {
	BaseEntity
	Start, End core.Point
}

func init() {
	register("LINE", func() Entity { return &Line{} })
}

func (l *Line) Type() string { return "LINE" }

func (l *Line) apply(t core.Tag, _ *core.VertexBuilder) error {
	if l.applyLayer(t) {
		return nil
	}
	if ok, err := applyPoint(&l.Start, 10, t); ok {
		return err
	}
	_, err := applyPoint(&l.End, 11, t)
	return err
}

func (l *Line) Tags() []core.Tag {
	tags := []core.Tag{l.layerTag()}
	tags = append(tags, pointTags(10, l.Start)...)
	return append(tags, pointTags(11, l.End)...)
}

func (l *Line) BBox() core.BBox {
	return core.BBox{
		Min: core.Point{X: math.Min(l.Start.X, l.End.X), Y: math.Min(l.Start.Y, l.End.Y)},
		Max: core.Point{X: math.Max(l.Start.X, l.End.X), Y: math.Max(l.Start.Y, l.End.Y)},
	}
}
