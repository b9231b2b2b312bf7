// Package sample 提供覆盖全部实体类型的测试数据
package sample

import (
	"math"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
)

func base(layer string) entities.BaseEntity {
	return entities.BaseEntity{LayerName: layer}
}

func pt(x, y float64) core.Point { return core.Point{X: x, Y: y} }

func pt3(x, y, z float64) core.Point { return core.Point{X: x, Y: y, Z: z} }

// Block 一个含直线和圆的块
func Block(name string) *entities.Block {
	return &entities.Block{
		BaseEntity: base("0"),
		Name:       name,
		Base:       pt(5, 5),
		Entities: []entities.Entity{
			&entities.Line{BaseEntity: base("0"), Start: pt(5, 5), End: pt(15, 5)},
			&entities.Circle{BaseEntity: base("0"), Center: pt(10, 10), Radius: 2.5},
		},
	}
}

// Entities 每种实体一个，字段全部填充（文本格式可无损往返）
func Entities() []entities.Entity {
	return []entities.Entity{
		&entities.Line{BaseEntity: base("WALL"), Start: pt(0, 0), End: pt(100, 100)},
		&entities.Circle{BaseEntity: base("0"), Center: pt(50, 50), Radius: 25},
		&entities.Arc{BaseEntity: base("0"), Center: pt(-3.5, 7.25), Radius: 12, StartAngle: 15, EndAngle: 270.5},
		&entities.Point{BaseEntity: base("0"), Location: pt(1e-9, 123456.789)},
		&entities.LWPolyline{BaseEntity: base("PJ"), Vertices: []core.Point{pt(0, 0), pt(10, 0), pt(10, 10)}, Closed: true},
		&entities.Ellipse{BaseEntity: base("0"), Center: pt(20, 20), MajorAxis: pt(10, 5), Ratio: 0.5, StartParam: 0, EndParam: 2 * math.Pi},
		&entities.Solid{BaseEntity: base("0"), Corners: [4]core.Point{pt(0, 0), pt(4, 0), pt(0, 4), pt(4, 4)}},
		&entities.Text{BaseEntity: base("TXT"), Position: pt(1, 2), Height: 2.5, Rotation: 30, Value: "Hello 世界"},
		&entities.MText{BaseEntity: base("TXT"), Position: pt(3, 4), Height: 3, Width: 40, Value: "line one\nline two"},
		&entities.Dimension{
			BaseEntity: base("BZ"), DimType: 1, StyleName: "ISO-25", ActualMeasurement: 1200,
			Text: "<>", Angle: 90, TextMidPoint: pt(5, 600), DefPoint: pt(10, 0),
			MeasureStart: pt(0, 0), MeasureEnd: pt(0, 1200),
		},
		&entities.Leader{BaseEntity: base("0"), Vertices: []core.Point{pt(0, 0), pt(5, 5), pt(10, 5)}, TextAnchor: pt(11, 5), Value: "NOTE"},
		&entities.Tolerance{BaseEntity: base("0"), Position: pt(7, 8), Height: 1.8, Value: "{\\Fgdt;j}%%v0.05"},
		&entities.Table{
			BaseEntity: base("0"), Position: pt(0, 50), Rows: 2, Columns: 2, RowHeight: 5, ColumnWidth: 20,
			Cells: []string{"A1", "B1", "A2", ""},
		},
		&entities.Insert{
			BaseEntity: base("0"), BlockName: "SC", InsertionPoint: pt(100, 100),
			Scale: pt3(2, 2, 1), Rotation: 45,
			Attributes: []*entities.Attrib{
				{BaseEntity: base("0"), Location: pt(101, 101), Tag: "序号", Prompt: "serial", Text: "A-01", Height: 2},
			},
		},
		&entities.Attrib{BaseEntity: base("0"), Location: pt(9, 9), Tag: "TAG", Prompt: "p", Text: "v", Height: 1},
		&entities.XRef{BaseEntity: base("0"), Path: "site/plan.dwg", Position: pt(-10, -10)},
		&entities.Wipeout{BaseEntity: base("0"), Vertices: []core.Point{pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)}},
		&entities.Face3D{BaseEntity: base("0"), Corners: [4]core.Point{pt3(0, 0, 0), pt3(1, 0, 1), pt3(1, 1, 2), pt3(0, 1, 3)}},
		&entities.Polyface{BaseEntity: base("0"), Vertices: []core.Point{pt3(0, 0, 0), pt3(1, 0, 0), pt3(0, 1, 1)}},
		&entities.Mesh{BaseEntity: base("0"), Level: 2, Vertices: []core.Point{pt3(0, 0, 0), pt3(1, 1, 1)}},
		&entities.Solid3D{BaseEntity: base("0"), Min: pt3(0, 0, 0), Max: pt3(10, 20, 30), Data: []byte("ACIS body\x00\x01\x02")},
		&entities.Surface{BaseEntity: base("0"), SurfaceType: 1, UIsolines: 6, VIsolines: 8, Version: 2, Data: make([]byte, 300)},
		&entities.Body{BaseEntity: base("0"), Version: 1, Flags: 3, Data: []byte{0xde, 0xad}},
		&entities.Region{BaseEntity: base("0"), Vertices: []core.Point{pt(0, 0), pt(3, 0), pt(3, 3)}, Filled: true},
		&entities.Viewport{BaseEntity: base("0"), Center: pt(148.5, 105), Width: 297, Height: 210, ID: 2},
		&entities.Image{BaseEntity: base("0"), Position: pt(0, 0), Width: 64, Height: 48, Path: "logo.png"},
		&entities.Underlay{BaseEntity: base("0"), Format: "PDF", Position: pt(1, 1), Scale: 0.5, Path: "ref.pdf"},
		&entities.OLEFrame{BaseEntity: base("0"), UpperLeft: pt(0, 10), LowerRight: pt(10, 0), Description: "Excel"},
	}
}

// Binary 二进制记录能表达的实体，只填充记录里存在的字段
func Binary() []entities.Entity {
	l := base(entities.DefaultLayer)
	return []entities.Entity{
		&entities.Line{BaseEntity: l, Start: pt(0, 0), End: pt(100, 100)},
		&entities.Circle{BaseEntity: l, Center: pt(50, 50), Radius: 25},
		&entities.Arc{BaseEntity: l, Center: pt(1, 2), Radius: 3, StartAngle: 0, EndAngle: 90},
		&entities.Point{BaseEntity: l, Location: pt(7, 8)},
		&entities.LWPolyline{BaseEntity: l, Vertices: []core.Point{pt(0, 0), pt(1, 1), pt(2, 0)}},
		&entities.Ellipse{BaseEntity: l, Center: pt(0, 0), MajorAxis: pt(4, 0), Ratio: 0.25, StartParam: 0.5, EndParam: 3},
		&entities.Solid{BaseEntity: l, Corners: [4]core.Point{pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1)}},
		&entities.Text{BaseEntity: l, Position: pt(1, 1), Height: 2, Value: "abc"},
		&entities.MText{BaseEntity: l, Position: pt(2, 2), Height: 3, Width: 50, Value: "x\ny"},
		&entities.Dimension{BaseEntity: l, DimType: 0, DefPoint: pt(0, 10), MeasureStart: pt(0, 0), MeasureEnd: pt(30, 0), ActualMeasurement: 30},
		&entities.Leader{BaseEntity: l, Vertices: []core.Point{pt(0, 0), pt(3, 3)}, TextAnchor: pt(4, 3), Value: "L"},
		&entities.Tolerance{BaseEntity: l, Position: pt(5, 5), Height: 1, Value: "T"},
		&entities.Table{BaseEntity: l, Position: pt(0, 0), Rows: 1, Columns: 2, RowHeight: 4, ColumnWidth: 10, Cells: []string{"a", "b"}},
		Block("B1"),
		&entities.Insert{BaseEntity: l, BlockName: "B1", InsertionPoint: pt(100, 100), Scale: pt3(1, 1, 1), Rotation: 0},
		&entities.Attrib{BaseEntity: l, Location: pt(1, 2), Tag: "T", Prompt: "P", Text: "V", Height: 2},
		&entities.XRef{BaseEntity: l, Path: "a.dwg", Position: pt(1, 1)},
		&entities.Wipeout{BaseEntity: l, Vertices: []core.Point{pt(0, 0), pt(1, 0), pt(1, 1)}},
		&entities.Face3D{BaseEntity: l, Corners: [4]core.Point{pt3(0, 0, 0), pt3(1, 0, 0), pt3(1, 1, 0), pt3(0, 1, 0)}},
		&entities.Polyface{BaseEntity: l, Vertices: []core.Point{pt3(0, 0, 0), pt3(1, 2, 3)}},
		&entities.Mesh{BaseEntity: l, Level: 1, Vertices: []core.Point{pt3(1, 1, 1)}},
		&entities.Solid3D{BaseEntity: l, Min: pt3(0, 0, 0), Max: pt3(1, 1, 1), Data: []byte("solid")},
		&entities.Surface{BaseEntity: l, SurfaceType: 1, UIsolines: 2, VIsolines: 3, Version: 4, Data: []byte("surf")},
		&entities.Body{BaseEntity: l, Version: 1, Flags: 0, Data: []byte("body")},
		&entities.Region{BaseEntity: l, Vertices: []core.Point{pt(0, 0), pt(2, 0), pt(2, 2)}, Filled: true},
	}
}
