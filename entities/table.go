package entities

import "github.com/zooyer/cad2pdf/core"

// Table 表格，Cells 按行优先排列，每个组码 1 追加一个单元格
type Table struct {
	BaseEntity
	Position    core.Point // 左上角
	Rows        int
	Columns     int
	RowHeight   float64
	ColumnWidth float64
	Cells       []string
}

func init() {
	register("ACAD_TABLE", func() Entity { return &Table{} })
}

func (x *Table) Type() string { return "ACAD_TABLE" }

func (x *Table) apply(t core.Tag, _ *core.VertexBuilder) error {
	if x.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 1:
		x.Cells = append(x.Cells, t.Value)
	case 90:
		return setInt(&x.Rows, t)
	case 91:
		return setInt(&x.Columns, t)
	case 141:
		return setFloat(&x.RowHeight, t)
	case 142:
		return setFloat(&x.ColumnWidth, t)
	default:
		_, err := applyPoint(&x.Position, 10, t)
		return err
	}
	return nil
}

func (x *Table) Tags() []core.Tag {
	tags := append([]core.Tag{x.layerTag()}, pointTags(10, x.Position)...)
	tags = append(tags,
		core.Int(90, x.Rows),
		core.Int(91, x.Columns),
		core.Float(141, x.RowHeight),
		core.Float(142, x.ColumnWidth),
	)
	for _, c := range x.Cells {
		tags = append(tags, core.String(1, singleLine(c)))
	}
	return tags
}

// Cell 返回第 row 行第 col 列的文字，越界返回空串
func (x *Table) Cell(row, col int) string {
	if row < 0 || col < 0 || col >= x.Columns {
		return ""
	}
	i := row*x.Columns + col
	if i >= len(x.Cells) {
		return ""
	}
	return x.Cells[i]
}
