package entities

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zooyer/cad2pdf/core"
)

// hexChunk 每个组码 310 承载的最大字节数
const hexChunk = 127

// Solid3D 三维实体，只保留包围盒与原始 ACIS 数据
type Solid3D struct {
	BaseEntity
	Min, Max core.Point
	Data     []byte
}

// Surface 曲面外壳
type Surface struct {
	BaseEntity
	SurfaceType int
	UIsolines   int
	VIsolines   int
	Version     int
	Data        []byte
}

// Body ACIS 实体外壳
type Body struct {
	BaseEntity
	Version int
	Flags   int
	Data    []byte
}

func init() {
	register("3DSOLID", func() Entity { return &Solid3D{} })
	register("SURFACE", func() Entity { return &Surface{} })
	register("BODY", func() Entity { return &Body{} })
}

func (s *Solid3D) Type() string { return "3DSOLID" }

func (s *Solid3D) apply(t core.Tag, _ *core.VertexBuilder) error {
	if s.applyLayer(t) {
		return nil
	}
	if t.Code == 310 {
		return appendHex(&s.Data, t)
	}
	if ok, err := applyPoint3(&s.Min, 10, t); ok {
		return err
	}
	_, err := applyPoint3(&s.Max, 11, t)
	return err
}

func (s *Solid3D) Tags() []core.Tag {
	tags := []core.Tag{s.layerTag()}
	tags = append(tags, point3Tags(10, s.Min)...)
	tags = append(tags, point3Tags(11, s.Max)...)
	return append(tags, hexTags(s.Data)...)
}

func (s *Surface) Type() string { return "SURFACE" }

func (s *Surface) apply(t core.Tag, _ *core.VertexBuilder) error {
	if s.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 70:
		return setInt(&s.SurfaceType, t)
	case 71:
		return setInt(&s.UIsolines, t)
	case 72:
		return setInt(&s.VIsolines, t)
	case 90:
		return setInt(&s.Version, t)
	case 310:
		return appendHex(&s.Data, t)
	}
	return nil
}

func (s *Surface) Tags() []core.Tag {
	tags := []core.Tag{
		s.layerTag(),
		core.Int(70, s.SurfaceType),
		core.Int(71, s.UIsolines),
		core.Int(72, s.VIsolines),
		core.Int(90, s.Version),
	}
	return append(tags, hexTags(s.Data)...)
}

func (b *Body) Type() string { return "BODY" }

func (b *Body) apply(t core.Tag, _ *core.VertexBuilder) error {
	if b.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 70:
		return setInt(&b.Version, t)
	case 90:
		return setInt(&b.Flags, t)
	case 310:
		return appendHex(&b.Data, t)
	}
	return nil
}

func (b *Body) Tags() []core.Tag {
	tags := []core.Tag{b.layerTag(), core.Int(70, b.Version), core.Int(90, b.Flags)}
	return append(tags, hexTags(b.Data)...)
}

func appendHex(dst *[]byte, t core.Tag) error {
	data, err := hex.DecodeString(t.AsString())
	if err != nil {
		return fmt.Errorf("group %d: %w", t.Code, err)
	}
	*dst = append(*dst, data...)
	return nil
}

func hexTags(data []byte) []core.Tag {
	var tags []core.Tag
	for len(data) > 0 {
		n := min(len(data), hexChunk)
		tags = append(tags, core.String(310, strings.ToUpper(hex.EncodeToString(data[:n]))))
		data = data[n:]
	}
	return tags
}
