package utils

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/internal/sample"
)

func pt(x, y float64) core.Point { return core.Point{X: x, Y: y} }

func TestBoundingBox(t *testing.T) {
	_, ok := BoundingBox(nil)
	assert.False(t, ok)

	// 只有不参与计算的实体
	_, ok = BoundingBox([]entities.Entity{&entities.Text{Position: pt(1, 1)}})
	assert.False(t, ok)

	box, ok := BoundingBox([]entities.Entity{
		&entities.Line{Start: pt(0, 0), End: pt(10, -5)},
		&entities.Circle{Center: pt(20, 20), Radius: 5},
		&entities.Arc{Center: pt(-10, 0), Radius: 1},
		&entities.Point{Location: pt(3, 40)},
		&entities.LWPolyline{Vertices: []core.Point{pt(1000, 1000)}},
	})
	assert.True(t, ok)
	assert.Equal(t, core.BBox{Min: pt(-11, -5), Max: pt(25, 40)}, box)
}

func TestCalculateScale(t *testing.T) {
	line := []entities.Entity{&entities.Line{Start: pt(0, 0), End: pt(100, 100)}}

	tests := []struct {
		name   string
		ents   []entities.Entity
		w, h   float64
		expect float64
	}{
		{"empty", nil, 595, 842, 1.0},
		{"unbounded kinds", []entities.Entity{&entities.MText{}}, 595, 842, 1.0},
		{"single point", []entities.Entity{&entities.Point{Location: pt(5, 5)}}, 595, 842, 1.0},
		{"horizontal line", []entities.Entity{&entities.Line{Start: pt(0, 0), End: pt(50, 0)}}, 595, 842, 1.0},
		{"square on A4", line, 595, 842, 4.95},
		{"landscape", line, 842, 595, 4.95},
		{"page smaller than margin", line, 80, 80, 1.0},
		{"wide drawing", []entities.Entity{&entities.Line{Start: pt(0, 0), End: pt(1000, 10)}}, 600, 600, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expect, CalculateScale(tt.ents, tt.w, tt.h), 1e-9)
		})
	}
}

func TestCalculateScale_PageFit(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	coord := func() float64 { return (r.Float64() - 0.5) * 1e4 }

	for i := 0; i < 200; i++ {
		var ents []entities.Entity
		for j := 0; j < 1+r.IntN(10); j++ {
			switch r.IntN(4) {
			case 0:
				ents = append(ents, &entities.Line{Start: pt(coord(), coord()), End: pt(coord(), coord())})
			case 1:
				ents = append(ents, &entities.Circle{Center: pt(coord(), coord()), Radius: r.Float64() * 100})
			case 2:
				ents = append(ents, &entities.Arc{Center: pt(coord(), coord()), Radius: r.Float64() * 100})
			default:
				ents = append(ents, &entities.Point{Location: pt(coord(), coord())})
			}
		}
		w, h := 200+r.Float64()*2000, 200+r.Float64()*2000

		scale := CalculateScale(ents, w, h)
		assert.Greater(t, scale, 0.0)
		assert.Equal(t, scale, CalculateScale(ents, w, h))

		box, ok := BoundingBox(ents)
		if !ok || box.Width() <= 0 || box.Height() <= 0 {
			continue
		}
		assert.LessOrEqual(t, box.Width()*scale, w-Margin+1e-6)
		assert.LessOrEqual(t, box.Height()*scale, h-Margin+1e-6)

		// 居中后落在页面边距以内
		x, y := PageOffset(ents, scale, w, h)
		assert.GreaterOrEqual(t, x+box.Min.X*scale, Margin/2-1e-6)
		assert.GreaterOrEqual(t, y+box.Min.Y*scale, Margin/2-1e-6)
		assert.LessOrEqual(t, x+box.Max.X*scale, w-Margin/2+1e-6)
		assert.LessOrEqual(t, y+box.Max.Y*scale, h-Margin/2+1e-6)
	}
}

func TestPageOffset(t *testing.T) {
	x, y := PageOffset(nil, 1, 595, 842)
	assert.Equal(t, Margin/2, x)
	assert.Equal(t, Margin/2, y)

	ents := []entities.Entity{&entities.Line{Start: pt(10, 10), End: pt(110, 60)}}
	x, y = PageOffset(ents, 2, 400, 300)
	// 宽 200 高 100，居中后左下角在 (100, 100)
	assert.InDelta(t, 100-20, x, 1e-9)
	assert.InDelta(t, 100-20, y, 1e-9)
}

func TestPageOffset_Overflow(t *testing.T) {
	tests := []struct {
		name string
		ents []entities.Entity
	}{
		{"width", []entities.Entity{&entities.Line{Start: pt(-1e308, 0), End: pt(1e308, 10)}}},
		{"height", []entities.Entity{&entities.Line{Start: pt(0, -1e308), End: pt(10, 1e308)}}},
		{"both", []entities.Entity{&entities.Line{Start: pt(-1e308, -1e308), End: pt(1e308, 1e308)}}},
		{"circle", []entities.Entity{&entities.Circle{Center: pt(1e308, 0), Radius: 1e308}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale := CalculateScale(tt.ents, 595, 842)
			x, y := PageOffset(tt.ents, scale, 595, 842)
			assert.Equal(t, Margin/2, x)
			assert.Equal(t, Margin/2, y)
		})
	}
}

func TestCalculateScale_Sample(t *testing.T) {
	ents := sample.Entities()
	s := CalculateScale(ents, 595, 842)
	box, _ := BoundingBox(ents)
	// 高度方向受限
	assert.InDelta(t, min((595-Margin)/box.Width(), (842-Margin)/box.Height()), s, 1e-12)
	assert.InDelta(t, (842-Margin)/box.Height(), s, 1e-12)
}
