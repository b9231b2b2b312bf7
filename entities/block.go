package entities

import (
	"sort"

	"github.com/zooyer/cad2pdf/core"
)

// Block 块定义：命名的实体组 + 基点。块本身不直接绘制，只能被 Insert 引用
type Block struct {
	BaseEntity
	Name     string
	Base     core.Point
	Entities []Entity
}

func init() {
	register("BLOCK", func() Entity { return &Block{} })
}

func (b *Block) Type() string { return "BLOCK" }

func (b *Block) apply(t core.Tag, _ *core.VertexBuilder) error {
	if b.applyLayer(t) {
		return nil
	}
	if t.Code == 2 {
		b.Name = t.AsString()
		return nil
	}
	_, err := applyPoint(&b.Base, 10, t)
	return err
}

// Tags 只包含块头，子实体与 ENDBLK 由编码器写出
func (b *Block) Tags() []core.Tag {
	tags := []core.Tag{b.layerTag(), core.String(2, b.Name), core.Int(70, 0)}
	return append(tags, pointTags(10, b.Base)...)
}

// Registry 块名到块定义的映射，名称区分大小写，重名时后定义的生效。
// 只属于一次解析，不在任务之间共享。
type Registry struct {
	blocks map[string]*Block
}

func NewRegistry() *Registry {
	return &Registry{blocks: make(map[string]*Block)}
}

// Register 登记块定义
func (r *Registry) Register(b *Block) {
	r.blocks[b.Name] = b
}

// Lookup 查找块定义，nil 注册表视为空
func (r *Registry) Lookup(name string) (*Block, bool) {
	if r == nil {
		return nil, false
	}
	b, ok := r.blocks[name]
	return b, ok
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.blocks)
}

// Names 按字母序返回全部块名
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.blocks))
	for name := range r.blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
