package entities

import (
	"strings"
	"unicode/utf8"

	"github.com/zooyer/cad2pdf/core"
)

// mtextChunk 组码 3 分段的最大字节数
const mtextChunk = 250

type Text struct {
	BaseEntity
	Position core.Point
	Height   float64
	Rotation float64 // 度
	Value    string
}

// MText 多行文字，Value 中的换行在文件中写作 \P
type MText struct {
	BaseEntity
	Position core.Point
	Height   float64
	Width    float64 // 参考宽度，0 表示不限
	Value    string
}

func init() {
	register("TEXT", func() Entity { return &Text{} })
	register("MTEXT", func() Entity { return &MText{} })
}

func (x *Text) Type() string { return "TEXT" }

func (x *Text) apply(t core.Tag, _ *core.VertexBuilder) error {
	if x.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 1:
		x.Value = t.Value
	case 40:
		return setFloat(&x.Height, t)
	case 50:
		return setFloat(&x.Rotation, t)
	default:
		_, err := applyPoint(&x.Position, 10, t)
		return err
	}
	return nil
}

func (x *Text) Tags() []core.Tag {
	tags := append([]core.Tag{x.layerTag()}, pointTags(10, x.Position)...)
	return append(tags,
		core.Float(40, x.Height),
		core.Float(50, x.Rotation),
		core.String(1, singleLine(x.Value)),
	)
}

func (m *MText) Type() string { return "MTEXT" }

func (m *MText) apply(t core.Tag, _ *core.VertexBuilder) error {
	if m.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 1, 3:
		m.Value += unescapeMText(t.Value)
	case 40:
		return setFloat(&m.Height, t)
	case 41:
		return setFloat(&m.Width, t)
	default:
		_, err := applyPoint(&m.Position, 10, t)
		return err
	}
	return nil
}

func (m *MText) Tags() []core.Tag {
	tags := append([]core.Tag{m.layerTag()}, pointTags(10, m.Position)...)
	tags = append(tags, core.Float(40, m.Height), core.Float(41, m.Width))

	value := mtextEscaper.Replace(m.Value)
	for len(value) > mtextChunk {
		n := chunkLen(value, mtextChunk)
		tags = append(tags, core.String(3, value[:n]))
		value = value[n:]
	}
	return append(tags, core.String(1, value))
}

// Lines 按换行拆分文字
func (m *MText) Lines() []string {
	return strings.Split(m.Value, "\n")
}

// mtextEscaper 反斜杠写成 \\，换行写成 \P
var mtextEscaper = strings.NewReplacer(`\`, `\\`, "\r\n", `\P`, "\n", `\P`, "\r", `\P`)

// unescapeMText 还原 \\ 和 \P，其它格式码原样保留
func unescapeMText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
		case 'P':
			b.WriteByte('\n')
		default:
			b.WriteString(s[i : i+2])
		}
		i++
	}
	return b.String()
}

// chunkLen 不超过 max 字节、不切断 UTF-8 字符、不拆开转义序列
func chunkLen(s string, max int) int {
	n := max
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	// 转义序列固定两字节，从头扫描找到最后一个完整的边界
	for i := 0; i < n; i++ {
		if s[i] != '\\' {
			continue
		}
		if i+1 == n {
			n = i
			break
		}
		i++
	}
	if n == 0 {
		return max
	}
	return n
}
