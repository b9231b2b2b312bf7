package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zooyer/cad2pdf"
	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/internal/sample"
)

func TestSummarize(t *testing.T) {
	blocks := entities.NewRegistry()
	blocks.Register(sample.Block("SC"))

	ins := &entities.Insert{BlockName: "SC", InsertionPoint: core.Point{X: 500, Y: 500}, Scale: core.Point{X: 1, Y: 1, Z: 1}}
	ins.AddAttribute(&entities.Attrib{Tag: "楼号", Text: "3"})
	ins.AddAttribute(&entities.Attrib{Tag: "序号", Text: "A-01"})

	res := &cad2pdf.Result{
		Entities: []entities.Entity{
			&entities.Line{End: core.Point{X: 10, Y: 10}},
			&entities.Line{Start: core.Point{X: 20, Y: 0}, End: core.Point{X: 30, Y: 10}},
			ins,
		},
		Blocks: blocks,
		Scale:  1,
	}

	report := summarize("plan.dxf", res)
	assert.Contains(t, report, "[plan.dxf] 实体 3 个，块定义 1 个")
	assert.Contains(t, report, "LINE         2")
	assert.Contains(t, report, "INSERT       1")
	assert.Contains(t, report, "未缩放")
	assert.Contains(t, report, "[视图1] | 30.0 x 10.0")
	assert.Contains(t, report, "[视图2] | 10.0 x 7.5")
	assert.Contains(t, report, "[SC.01] 序号:A-01 楼号:3")

	res.Scale = 4.95
	assert.Contains(t, summarize("plan.dxf", res), "[缩放]: 4.9500")
}
