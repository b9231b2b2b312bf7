package entities

import "github.com/zooyer/cad2pdf/core"

// Viewport 布局视口
type Viewport struct {
	BaseEntity
	Center core.Point
	Width  float64
	Height float64
	ID     int
}

// Image 光栅图像引用
type Image struct {
	BaseEntity
	Position core.Point // 左下角
	Width    float64
	Height   float64
	Path     string
}

// Underlay 参考底图（PDF/DWF/DGN）
type Underlay struct {
	BaseEntity
	Format   string // PDF、DWF 或 DGN
	Position core.Point
	Scale    float64
	Path     string
}

// OLEFrame OLE 对象框
type OLEFrame struct {
	BaseEntity
	UpperLeft   core.Point
	LowerRight  core.Point
	Description string
}

func init() {
	register("VIEWPORT", func() Entity { return &Viewport{} })
	register("IMAGE", func() Entity { return &Image{} })
	for _, format := range []string{"PDF", "DWF", "DGN"} {
		register(format+"UNDERLAY", func() Entity { return &Underlay{Format: format, Scale: 1} })
	}
	register("OLE2FRAME", func() Entity { return &OLEFrame{} })
}

func (v *Viewport) Type() string { return "VIEWPORT" }

func (v *Viewport) apply(t core.Tag, _ *core.VertexBuilder) error {
	if v.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 40:
		return setFloat(&v.Width, t)
	case 41:
		return setFloat(&v.Height, t)
	case 69:
		return setInt(&v.ID, t)
	}
	_, err := applyPoint(&v.Center, 10, t)
	return err
}

func (v *Viewport) Tags() []core.Tag {
	tags := append([]core.Tag{v.layerTag()}, pointTags(10, v.Center)...)
	return append(tags, core.Float(40, v.Width), core.Float(41, v.Height), core.Int(69, v.ID))
}

func (i *Image) Type() string { return "IMAGE" }

func (i *Image) apply(t core.Tag, _ *core.VertexBuilder) error {
	if i.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 1:
		i.Path = t.AsString()
		return nil
	case 41:
		return setFloat(&i.Width, t)
	case 42:
		return setFloat(&i.Height, t)
	}
	_, err := applyPoint(&i.Position, 10, t)
	return err
}

func (i *Image) Tags() []core.Tag {
	tags := append([]core.Tag{i.layerTag()}, pointTags(10, i.Position)...)
	return append(tags,
		core.Float(41, i.Width),
		core.Float(42, i.Height),
		core.String(1, singleLine(i.Path)),
	)
}

func (u *Underlay) Type() string { return u.Format + "UNDERLAY" }

func (u *Underlay) apply(t core.Tag, _ *core.VertexBuilder) error {
	if u.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 1:
		u.Path = t.AsString()
		return nil
	case 41:
		return setFloat(&u.Scale, t)
	}
	_, err := applyPoint(&u.Position, 10, t)
	return err
}

func (u *Underlay) Tags() []core.Tag {
	tags := append([]core.Tag{u.layerTag()}, pointTags(10, u.Position)...)
	return append(tags, core.Float(41, u.Scale), core.String(1, singleLine(u.Path)))
}

func (o *OLEFrame) Type() string { return "OLE2FRAME" }

func (o *OLEFrame) apply(t core.Tag, _ *core.VertexBuilder) error {
	if o.applyLayer(t) {
		return nil
	}
	if t.Code == 1 {
		o.Description = t.AsString()
		return nil
	}
	if ok, err := applyPoint(&o.UpperLeft, 10, t); ok {
		return err
	}
	_, err := applyPoint(&o.LowerRight, 11, t)
	return err
}

func (o *OLEFrame) Tags() []core.Tag {
	tags := []core.Tag{o.layerTag()}
	tags = append(tags, pointTags(10, o.UpperLeft)...)
	tags = append(tags, pointTags(11, o.LowerRight)...)
	return append(tags, core.String(1, singleLine(o.Description)))
}
