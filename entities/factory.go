package entities

import (
	"strings"

	"github.com/zooyer/cad2pdf/core"
)

// DefaultLayer 未指定图层时使用的图层名
const DefaultLayer = "0"

// Entity 是一切图元的接口。
// 实体种类是封闭集合：apply 未导出，包外无法扩展。
type Entity interface {
	// Type 组码 0 上的实体类型名
	Type() string
	Layer() string
	// Tags 编码时写出的组码/值（不含组码 0）
	Tags() []core.Tag

	apply(t core.Tag, v *core.VertexBuilder) error
}

// Bounded 可以低成本算出范围的实体
type Bounded interface {
	Entity
	BBox() core.BBox
}

// BaseEntity 存放所有实体通用的属性
type BaseEntity struct {
	LayerName string
}

func (b *BaseEntity) Layer() string {
	if b.LayerName == "" {
		return DefaultLayer
	}
	return b.LayerName
}

func (b *BaseEntity) applyLayer(t core.Tag) bool {
	if t.Code != 8 {
		return false
	}
	b.LayerName = t.AsString()
	return true
}

func (b *BaseEntity) layerTag() core.Tag {
	return core.String(8, b.Layer())
}

// entityFactory 定义了如何创建一个空实体
type entityFactory func() Entity

var registry = map[string]entityFactory{}

func register(typeName string, factory entityFactory) {
	registry[typeName] = factory
}

// Known 是否是支持的实体类型
func Known(typeName string) bool {
	_, ok := registry[normalize(typeName)]
	return ok
}

// Types 返回全部支持的实体类型名
func Types() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func normalize(typeName string) string {
	return strings.ToUpper(strings.TrimSpace(typeName))
}

// vertexed 顶点为三维的实体
type vertexed interface {
	vertexDims() int
}

// Builder 在读取组码期间构造一个实体
type Builder struct {
	entity   Entity
	vertices core.VertexBuilder
}

// NewBuilder 根据实体名称生产对应的构造器，未知类型返回 false
func NewBuilder(typeName string) (*Builder, bool) {
	factory, ok := registry[normalize(typeName)]
	if !ok {
		return nil, false
	}

	b := &Builder{entity: factory()}
	if v, ok := b.entity.(vertexed); ok {
		b.vertices.Dims = v.vertexDims()
	}
	return b, true
}

// Apply 按组码写入字段，数值非法时返回错误且字段保持不变
func (b *Builder) Apply(t core.Tag) error {
	return b.entity.apply(t, &b.vertices)
}

// Entity 返回构造中的实体，未完成的顶点不会出现在结果中
func (b *Builder) Entity() Entity {
	return b.entity
}

// Type 构造中的实体类型
func (b *Builder) Type() string {
	return b.entity.Type()
}

func setFloat(dst *float64, t core.Tag) error {
	f, err := t.AsFloat()
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

func setInt(dst *int, t core.Tag) error {
	i, err := t.AsInt()
	if err != nil {
		return err
	}
	*dst = i
	return nil
}

// addVertex 把坐标交给顶点构造器，顶点完整时追加到 dst
func addVertex(v *core.VertexBuilder, axis int, t core.Tag, dst *[]core.Point) error {
	f, err := t.AsFloat()
	if err != nil {
		return err
	}
	if p, ok := v.Add(axis, f); ok {
		*dst = append(*dst, p)
	}
	return nil
}

// applyPoint 处理 code/code+10 组成的二维点
func applyPoint(p *core.Point, code int, t core.Tag) (bool, error) {
	switch t.Code {
	case code:
		return true, setFloat(&p.X, t)
	case code + 10:
		return true, setFloat(&p.Y, t)
	}
	return false, nil
}

// applyPoint3 处理 code/code+10/code+20 组成的三维点
func applyPoint3(p *core.Point, code int, t core.Tag) (bool, error) {
	if t.Code == code+20 {
		return true, setFloat(&p.Z, t)
	}
	return applyPoint(p, code, t)
}

func pointTags(code int, p core.Point) []core.Tag {
	return []core.Tag{core.Float(code, p.X), core.Float(code+10, p.Y)}
}

func point3Tags(code int, p core.Point) []core.Tag {
	return append(pointTags(code, p), core.Float(code+20, p.Z))
}

func vertexTags(vertices []core.Point, dims int) []core.Tag {
	tags := make([]core.Tag, 0, len(vertices)*dims)
	for _, v := range vertices {
		if dims == 3 {
			tags = append(tags, point3Tags(10, v)...)
		} else {
			tags = append(tags, pointTags(10, v)...)
		}
	}
	return tags
}

// singleLine 单行文本中的换行替换为空格
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
