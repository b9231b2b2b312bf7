package utils

import (
	"math"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
)

// Margin 页面宽高各自预留的边距总和（每边一半）
const Margin = 100.0

// BoundingBox 计算直线、圆、圆弧、点的范围，其它实体不参与。
// 没有可计算范围的实体时返回 false
func BoundingBox(ents []entities.Entity) (box core.BBox, ok bool) {
	for _, e := range ents {
		b, bounded := e.(entities.Bounded)
		if !bounded {
			continue
		}
		if !ok {
			box, ok = b.BBox(), true
			continue
		}
		box = box.Union(b.BBox())
	}
	return
}

// CalculateScale 返回把实体等比放进页面（扣除边距）的缩放比例。
// 没有实体、范围退化或页面放不下边距时返回 1.0
func CalculateScale(ents []entities.Entity, pageWidth, pageHeight float64) float64 {
	box, ok := BoundingBox(ents)
	if !ok {
		return 1.0
	}

	width, height := box.Width(), box.Height()
	if !(width > 0) || !(height > 0) {
		return 1.0
	}

	availableWidth, availableHeight := pageWidth-Margin, pageHeight-Margin
	if !(availableWidth > 0) || !(availableHeight > 0) {
		return 1.0
	}

	scale := math.Min(availableWidth/width, availableHeight/height)
	if !(scale > 0) || math.IsInf(scale, 0) {
		return 1.0
	}
	return scale
}

// PageOffset 返回让缩放后的范围居中于页面的偏移量。
// 没有实体或范围溢出为非有限值时返回半个边距
func PageOffset(ents []entities.Entity, scale, pageWidth, pageHeight float64) (x, y float64) {
	box, ok := BoundingBox(ents)
	if !ok {
		return Margin / 2, Margin / 2
	}

	x = (pageWidth-box.Width()*scale)/2 - box.Min.X*scale
	y = (pageHeight-box.Height()*scale)/2 - box.Min.Y*scale
	if !finite(x) || !finite(y) {
		return Margin / 2, Margin / 2
	}
	return x, y
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
