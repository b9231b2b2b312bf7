package entities

import "github.com/zooyer/cad2pdf/core"

type Point struct {
	BaseEntity
	Location core.Point
}

func init() {
	register("POINT", func() Entity { return &Point{} })
}

func (p *Point) Type() string { return "POINT" }

func (p *Point) apply(t core.Tag, _ *core.VertexBuilder) error {
	if p.applyLayer(t) {
		return nil
	}
	_, err := applyPoint(&p.Location, 10, t)
	return err
}

func (p *Point) Tags() []core.Tag {
	return append([]core.Tag{p.layerTag()}, pointTags(10, p.Location)...)
}

func (p *Point) BBox() core.BBox {
	return core.BBox{Min: p.Location, Max: p.Location}
}
