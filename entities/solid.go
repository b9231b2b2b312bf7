package entities

import "github.com/zooyer/cad2pdf/core"

// Solid 二维填充四边形，角点顺序为 DXF 约定（第 3、4 点交叉）
type Solid struct {
	BaseEntity
	Corners [4]core.Point
}

// Face3D 三维面，渲染时投影到 XY
type Face3D struct {
	BaseEntity
	Corners [4]core.Point
}

func init() {
	register("SOLID", func() Entity { return &Solid{} })
	register("3DFACE", func() Entity { return &Face3D{} })
}

func (s *Solid) Type() string { return "SOLID" }

func (s *Solid) apply(t core.Tag, _ *core.VertexBuilder) error {
	if s.applyLayer(t) {
		return nil
	}
	for i := range s.Corners {
		if ok, err := applyPoint(&s.Corners[i], 10+i, t); ok {
			return err
		}
	}
	return nil
}

func (s *Solid) Tags() []core.Tag {
	tags := []core.Tag{s.layerTag()}
	for i, c := range s.Corners {
		tags = append(tags, pointTags(10+i, c)...)
	}
	return tags
}

// Outline 按绘制顺序返回轮廓（交换第 3、4 点）
func (s *Solid) Outline() []core.Point {
	return []core.Point{s.Corners[0], s.Corners[1], s.Corners[3], s.Corners[2]}
}

func (f *Face3D) Type() string { return "3DFACE" }

func (f *Face3D) apply(t core.Tag, _ *core.VertexBuilder) error {
	if f.applyLayer(t) {
		return nil
	}
	for i := range f.Corners {
		if ok, err := applyPoint3(&f.Corners[i], 10+i, t); ok {
			return err
		}
	}
	return nil
}

func (f *Face3D) Tags() []core.Tag {
	tags := []core.Tag{f.layerTag()}
	for i, c := range f.Corners {
		tags = append(tags, point3Tags(10+i, c)...)
	}
	return tags
}
