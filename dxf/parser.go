package dxf

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/logging"
)

// parser 按组码 0 切分记录的状态机。
// 记录的字段按组码写入当前活动的目标：块头、顶点、属性或实体
type parser struct {
	doc     *Document
	decoder *encoding.Decoder

	section string // 当前段名，SECTION 之后的组码 2 决定
	record  string // 当前组码 0 的值

	// HEADER
	variable string

	// TABLES
	table string
	style *DimStyle

	// BLOCKS / ENTITIES
	blocks   []*entities.Block  // 打开的块定义
	header   *entities.Builder  // 正在读取块头
	entity   *entities.Builder  // 正在构造的实体
	polyline bool               // entity 是 R12 POLYLINE
	vertex   *core.VertexBuilder // 正在读取 VERTEX
	follows  bool               // INSERT 后随 ATTRIB 序列（组码 66）
	attrib   *entities.Builder  // 序列中的 ATTRIB
}

// Load 解析文本图形文件。
// 单个字段非法只跳过该字段并计入 Document.Skipped，只有读取错误才返回 error
func Load(reader io.Reader) (*Document, error) {
	var (
		scanner = core.NewScanner(reader)
		p       = &parser{doc: newDocument()}
	)

	for scanner.Next() {
		tag := scanner.LastTag
		if p.decoder != nil {
			if v, err := p.decoder.String(tag.Value); err == nil {
				tag.Value = v
			}
		}
		if tag.Code == 0 {
			if !p.marker(strings.ToUpper(strings.TrimSpace(tag.Value))) {
				break
			}
			continue
		}
		p.field(tag)
	}
	p.finish()

	p.doc.Skipped += scanner.Skipped
	logging.Logger().Debug("dxf loaded",
		"entities", len(p.doc.Entities),
		"blocks", p.doc.Blocks.Len(),
		"skipped", p.doc.Skipped,
	)

	if err := scanner.Err(); err != nil {
		return p.doc, fmt.Errorf("dxf: %w", err)
	}
	return p.doc, nil
}

// marker 处理组码 0 的值，遇到 EOF 返回 false
func (p *parser) marker(v string) bool {
	p.record = v

	switch v {
	case "SECTION":
		p.flush()
		p.section = ""
		return true
	case "ENDSEC":
		p.flush()
		p.flushStyle()
		p.section = ""
		return true
	case "EOF":
		p.flush()
		return false
	}

	switch p.section {
	case "TABLES":
		p.tableMarker(v)
	case "BLOCKS", "ENTITIES", "":
		p.entityMarker(v)
	}
	return true
}

// field 处理非 0 组码
func (p *parser) field(t core.Tag) {
	if p.record == "SECTION" {
		if t.Code == 2 {
			p.section = strings.ToUpper(t.AsString())
			p.record = ""
		}
		return
	}

	switch p.section {
	case "HEADER":
		p.headerField(t)
	case "TABLES":
		p.tableField(t)
	case "BLOCKS", "ENTITIES", "":
		p.entityField(t)
	}
}

func (p *parser) headerField(t core.Tag) {
	if t.Code == 9 {
		p.variable = t.AsString()
		return
	}
	if p.variable == "" {
		return
	}
	// 多值变量（如坐标）只保留第一个值
	if _, ok := p.doc.Header[p.variable]; ok {
		return
	}
	p.doc.Header[p.variable] = t.AsString()

	if p.variable == "$DWGCODEPAGE" {
		p.decoder = codepage(t.AsString())
	}
}

func (p *parser) tableMarker(v string) {
	p.flushStyle()
	switch v {
	case "TABLE":
		p.table = ""
	case "ENDTAB":
		p.table = ""
	case "DIMSTYLE":
		if p.table == "DIMSTYLE" {
			p.style = &DimStyle{Scale: 1.0} // 默认为 1.0，防止乘法归零
		}
	}
}

func (p *parser) tableField(t core.Tag) {
	if p.record == "TABLE" {
		if t.Code == 2 {
			p.table = strings.ToUpper(t.AsString())
		}
		return
	}
	if p.style == nil {
		return
	}

	var err error
	switch t.Code {
	case 2: // 样式名称
		p.style.Name = strings.ToUpper(t.AsString())
	case 271: // 精度
		var v int
		if v, err = t.AsInt(); err == nil {
			p.style.Precision = v
		}
	case 44: // 标注线超出延伸线长度 (DIMEXE)
		var v float64
		if v, err = t.AsFloat(); err == nil {
			p.style.ExLimit = v
		}
	case 40: // 全局标注比例 (DIMSCALE)
		var v float64
		if v, err = t.AsFloat(); err == nil {
			p.style.Scale = v
		}
	}
	if err != nil {
		p.skip(t, err)
	}
}

func (p *parser) flushStyle() {
	if p.style != nil && p.style.Name != "" {
		p.doc.DimStyles[p.style.Name] = p.style
	}
	p.style = nil
}

func (p *parser) entityMarker(v string) {
	switch {
	case v == "VERTEX" && p.polyline:
		p.vertex = &core.VertexBuilder{Dims: 2}
		return
	case v == "ATTRIB" && p.follows:
		p.attach()
		p.attrib, _ = entities.NewBuilder("ATTRIB")
		return
	case v == "SEQEND" && (p.polyline || p.follows):
		p.flush()
		return
	}

	p.flush()

	switch v {
	case "ENDBLK":
		if n := len(p.blocks); n > 0 {
			p.register(p.blocks[n-1])
			p.blocks = p.blocks[:n-1]
		}
	case "BLOCK":
		p.header, _ = entities.NewBuilder("BLOCK")
		p.blocks = append(p.blocks, p.header.Entity().(*entities.Block))
	case "POLYLINE":
		// R12 多段线：顶点在随后的 VERTEX 记录里，合并为一个 LWPOLYLINE
		p.entity, _ = entities.NewBuilder("LWPOLYLINE")
		p.polyline = true
	default:
		b, ok := entities.NewBuilder(v)
		if !ok {
			p.doc.Ignored[v]++
			return
		}
		p.entity = b
	}
}

func (p *parser) entityField(t core.Tag) {
	switch {
	case p.header != nil:
		p.apply(p.header, t)
	case p.vertex != nil:
		p.vertexField(t)
	case p.attrib != nil:
		p.apply(p.attrib, t)
	case p.entity == nil:
	case p.polyline:
		// POLYLINE 自身的 10/20 是占位点，只取图层和标志
		if t.Code == 8 || t.Code == 70 {
			p.apply(p.entity, t)
		}
	case t.Code == 66 && p.entity.Type() == "INSERT":
		v, err := t.AsInt()
		if err != nil {
			p.skip(t, err)
			return
		}
		p.follows = v == 1
	default:
		p.apply(p.entity, t)
	}
}

func (p *parser) vertexField(t core.Tag) {
	axis := -1
	switch t.Code {
	case 10:
		axis = 0
	case 20:
		axis = 1
	}
	if axis < 0 {
		return
	}

	f, err := t.AsFloat()
	if err != nil {
		p.skip(t, err)
		return
	}
	if v, ok := p.vertex.Add(axis, f); ok {
		pl := p.entity.Entity().(*entities.LWPolyline)
		pl.Vertices = append(pl.Vertices, v)
	}
}

func (p *parser) apply(b *entities.Builder, t core.Tag) {
	if err := b.Apply(t); err != nil {
		p.skip(t, err)
	}
}

func (p *parser) skip(t core.Tag, err error) {
	p.doc.Skipped++
	logging.Logger().Debug("skip malformed field", "record", p.record, "code", t.Code, "error", err)
}

// attach 把序列中已读完的 ATTRIB 挂到 INSERT 上
func (p *parser) attach() {
	if p.attrib == nil {
		return
	}
	if ins, ok := p.entity.Entity().(*entities.Insert); ok {
		ins.AddAttribute(p.attrib.Entity().(*entities.Attrib))
	}
	p.attrib = nil
}

// flush 结束当前记录：实体加入所在的块，不在块内则加入文档
func (p *parser) flush() {
	p.attach()
	p.header = nil
	p.vertex = nil

	if p.entity == nil {
		return
	}
	e := p.entity.Entity()
	p.entity = nil
	p.polyline = false
	p.follows = false

	if n := len(p.blocks); n > 0 {
		p.blocks[n-1].Entities = append(p.blocks[n-1].Entities, e)
		return
	}
	p.doc.Entities = append(p.doc.Entities, e)
}

func (p *parser) register(b *entities.Block) {
	if _, ok := p.doc.Blocks.Lookup(b.Name); ok {
		logging.Logger().Debug("block redefined", "name", b.Name)
	}
	p.doc.Blocks.Register(b)
}

// finish 流结束时提交未完成的实体，未闭合的块也要登记
func (p *parser) finish() {
	p.flush()
	p.flushStyle()
	for i := len(p.blocks) - 1; i >= 0; i-- {
		p.register(p.blocks[i])
	}
	p.blocks = nil
}
