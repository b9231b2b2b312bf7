package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/internal/sample"
)

func insert(name string, x, y, scale, rotation float64) *entities.Insert {
	return &entities.Insert{
		BlockName:      name,
		InsertionPoint: pt(x, y),
		Scale:          core.Point{X: scale, Y: scale, Z: 1},
		Rotation:       rotation,
	}
}

func assertBox(t *testing.T, want, got core.BBox) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, 1e-9)
	assert.InDelta(t, want.Min.Y, got.Min.Y, 1e-9)
	assert.InDelta(t, want.Max.X, got.Max.X, 1e-9)
	assert.InDelta(t, want.Max.Y, got.Max.Y, 1e-9)
}

func TestTransformPoint(t *testing.T) {
	p := TransformPoint(pt(1, 0), insert("B", 10, 10, 2, 90))
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 12, p.Y, 1e-9)
}

func TestTransformBBox(t *testing.T) {
	local := core.BBox{Min: pt(5, 5), Max: pt(15, 10)}
	got := TransformBBox(local, pt(5, 5), insert("B", 100, 100, 1, 0))
	assertBox(t, core.BBox{Min: pt(100, 100), Max: pt(110, 105)}, got)

	got = TransformBBox(local, pt(5, 5), insert("B", 0, 0, 1, 90))
	assertBox(t, core.BBox{Min: pt(-5, 0), Max: pt(0, 10)}, got)
}

func TestCombineInserts(t *testing.T) {
	parent := insert("P", 100, 0, 2, 90)
	child := insert("C", 10, 0, 3, 45)
	got := CombineInserts(parent, child)

	assert.Equal(t, "C", got.BlockName)
	assert.Equal(t, 135.0, got.Rotation)
	assert.Equal(t, core.Point{X: 6, Y: 6, Z: 1}, got.Scale)
	assert.InDelta(t, 100, got.InsertionPoint.X, 1e-9)
	assert.InDelta(t, 20, got.InsertionPoint.Y, 1e-9)
}

func TestExtents(t *testing.T) {
	blocks := entities.NewRegistry()
	blocks.Register(sample.Block("B"))
	blocks.Register(&entities.Block{
		Name: "NEST",
		Base: pt(0, 0),
		Entities: []entities.Entity{
			insert("B", 50, 0, 1, 0),
			&entities.Text{Position: pt(-999, -999)},
		},
	})
	// 自引用的块不会无限展开
	blocks.Register(&entities.Block{Name: "LOOP", Entities: []entities.Entity{insert("LOOP", 1, 1, 1, 0)}})

	// 块 B：直线 (5,5)-(15,5)，圆心 (10,10) 半径 2.5，基点 (5,5)
	box, ok := Extents(blocks, insert("B", 100, 100, 1, 0))
	require.True(t, ok)
	assertBox(t, core.BBox{Min: pt(100, 100), Max: pt(110, 107.5)}, box)

	box, ok = Extents(blocks, insert("NEST", 0, 0, 2, 0))
	require.True(t, ok)
	assertBox(t, core.BBox{Min: pt(100, 0), Max: pt(120, 15)}, box)

	box, ok = Extents(blocks, insert("MISSING", 7, 8, 1, 0))
	require.True(t, ok)
	assert.Equal(t, core.BBox{Min: pt(7, 8), Max: pt(7, 8)}, box)

	_, ok = Extents(blocks, insert("LOOP", 0, 0, 1, 0))
	assert.True(t, ok)

	_, ok = Extents(blocks, &entities.MText{})
	assert.False(t, ok)

	box, ok = Extents(nil, &entities.Point{Location: pt(1, 2)})
	require.True(t, ok)
	assert.Equal(t, core.BBox{Min: pt(1, 2), Max: pt(1, 2)}, box)
}

func TestMergeBoxes(t *testing.T) {
	boxes := []core.BBox{
		{Min: pt(0, 0), Max: pt(10, 10)},
		{Min: pt(100, 100), Max: pt(110, 110)},
		{Min: pt(12, 0), Max: pt(20, 5)},
		{Min: pt(21, 4), Max: pt(30, 30)},
	}
	merged := MergeBoxes(boxes, 3)
	require.Len(t, merged, 2)
	assert.Equal(t, core.BBox{Min: pt(0, 0), Max: pt(30, 30)}, merged[0])
	assert.Equal(t, core.BBox{Min: pt(100, 100), Max: pt(110, 110)}, merged[1])

	assert.True(t, IsSeparate(boxes[0], boxes[2], 1))
	assert.False(t, IsSeparate(boxes[0], boxes[2], 2))
}

func TestAttrs(t *testing.T) {
	ins := &entities.Insert{}
	ins.AddAttribute(&entities.Attrib{Tag: "序号", Text: "1"})
	ins.AddAttribute(&entities.Attrib{Tag: "楼号", Text: "A"})
	ins.AddAttribute(&entities.Attrib{Tag: "序号", Text: "2"})

	assert.Equal(t, map[string]string{"序号": "2", "楼号": "A"}, GetAttrs(ins))
	assert.Equal(t, "A", GetAttr(ins, "楼号"))
	assert.Equal(t, "", GetAttr(ins, "面积"))
}

func TestDimValue(t *testing.T) {
	precisions := map[string]int{"STANDARD": 2, "ISO-25": 0, "WILD": 99}

	dim := &entities.Dimension{ActualMeasurement: 1234.5678}
	assert.InDelta(t, 1234.57, GetDimValue(precisions, dim), 1e-9)
	assert.Equal(t, "1234.57", FormatDim(precisions, dim))

	dim.StyleName = "iso-25"
	assert.Equal(t, "1235", FormatDim(precisions, dim))

	dim.StyleName = "UNKNOWN"
	dim.Text = "W=<>"
	assert.Equal(t, "W=1234.57", FormatDim(precisions, dim))

	dim.Text = `\A1;900`
	dim.ActualMeasurement = 0
	assert.Equal(t, 900.0, GetDimValue(precisions, dim))
	assert.Equal(t, `\A1;900`, FormatDim(precisions, dim))

	dim.Text = ""
	dim.StyleName = "WILD"
	assert.Equal(t, 8, DimPrecision(precisions, dim))
	assert.Equal(t, 0, DimPrecision(nil, dim))
}
