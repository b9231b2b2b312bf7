package utils

import (
	"math"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
)

// maxExtentsDepth 计算范围时展开嵌套块的最大层数
const maxExtentsDepth = 32

// TransformBBox 执行矩阵变换：将块内局部坐标（相对基点）变换到插入点所在的世界坐标
func TransformBBox(local core.BBox, base core.Point, ins *entities.Insert) core.BBox {
	corners := []core.Point{
		{X: local.Min.X, Y: local.Min.Y},
		{X: local.Max.X, Y: local.Min.Y},
		{X: local.Max.X, Y: local.Max.Y},
		{X: local.Min.X, Y: local.Max.Y},
	}

	wMinX, wMinY := math.MaxFloat64, math.MaxFloat64
	wMaxX, wMaxY := -math.MaxFloat64, -math.MaxFloat64

	for _, p := range corners {
		w := TransformPoint(core.Point{X: p.X - base.X, Y: p.Y - base.Y}, ins)

		wMinX = math.Min(wMinX, w.X)
		wMinY = math.Min(wMinY, w.Y)
		wMaxX = math.Max(wMaxX, w.X)
		wMaxY = math.Max(wMaxY, w.Y)
	}

	return core.BBox{
		Min: core.Point{X: wMinX, Y: wMinY},
		Max: core.Point{X: wMaxX, Y: wMaxY},
	}
}

// MergeBoxes 合并重叠的矩形
func MergeBoxes(boxes []core.BBox, gap float64) []core.BBox {
	if len(boxes) < 2 {
		return boxes
	}

	for {
		changed := false
		var merged []core.BBox
		visited := make([]bool, len(boxes))
		for i := 0; i < len(boxes); i++ {
			if visited[i] {
				continue
			}
			curr := boxes[i]
			visited[i] = true
			for j := i + 1; j < len(boxes); j++ {
				if !visited[j] && !IsSeparate(curr, boxes[j], gap) {
					curr = curr.Union(boxes[j])
					visited[j], changed = true, true
				}
			}
			merged = append(merged, curr)
		}
		boxes = merged
		if !changed {
			break
		}
	}

	return boxes
}

// IsSeparate 判断两个 BBox 是否完全分离
func IsSeparate(a, b core.BBox, gap float64) bool {
	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}

// Extents 单个实体在世界坐标中的范围，插入块会展开计算。
// 与 BoundingBox 不同，这里只用于统计展示，不影响缩放比例
func Extents(blocks *entities.Registry, entity entities.Entity) (core.BBox, bool) {
	switch e := entity.(type) {
	case *entities.Insert:
		return insertExtents(blocks, e, 0, map[string]bool{})
	case entities.Bounded:
		return e.BBox(), true
	}
	return core.BBox{}, false
}

func insertExtents(blocks *entities.Registry, ins *entities.Insert, depth int, path map[string]bool) (box core.BBox, ok bool) {
	block, found := blocks.Lookup(ins.BlockName)
	if !found || depth >= maxExtentsDepth || path[ins.BlockName] {
		return core.BBox{Min: ins.InsertionPoint, Max: ins.InsertionPoint}, true
	}
	path[ins.BlockName] = true
	defer delete(path, ins.BlockName)

	add := func(b core.BBox) {
		if !ok {
			box, ok = b, true
			return
		}
		box = box.Union(b)
	}

	for _, sub := range block.Entities {
		switch s := sub.(type) {
		case *entities.Insert:
			// 子插入点先换算到相对基点的坐标，再叠加父级变换
			local := *s
			local.InsertionPoint = core.Point{X: s.InsertionPoint.X - block.Base.X, Y: s.InsertionPoint.Y - block.Base.Y}
			if b, ok := insertExtents(blocks, CombineInserts(ins, &local), depth+1, path); ok {
				add(b)
			}
		case entities.Bounded:
			add(TransformBBox(s.BBox(), block.Base, ins))
		}
	}

	if !ok {
		return core.BBox{Min: ins.InsertionPoint, Max: ins.InsertionPoint}, true
	}
	return box, true
}
