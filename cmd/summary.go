package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/cad2pdf"
	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/utils"
)

const (
	viewGap = 50   // 范围间距不超过则认为是同一个视图
	epsilon = 1e-9 // 浮点数对比精度误差
)

// summarize 转换结果的文字报告
func summarize(filename string, res *cad2pdf.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] 实体 %d 个，块定义 %d 个\n", filename, len(res.Entities), res.Blocks.Len())

	// 1. 按类型统计
	counts := make(map[string]int)
	for _, e := range res.Entities {
		counts[e.Type()]++
	}
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(&b, "    |-- %-12s %d\n", kind, counts[kind])
	}

	// 2. 缩放
	if xmath.Equal(res.Scale, 1.0, epsilon) {
		fmt.Fprintln(&b, "    |-- [缩放]: 1 (未缩放)")
	} else {
		fmt.Fprintf(&b, "    |-- [缩放]: %.4f\n", res.Scale)
	}
	if res.Skipped > 0 {
		fmt.Fprintf(&b, "    |-- [跳过字段]: %d\n", res.Skipped)
	}
	if res.Unknown != nil {
		fmt.Fprintf(&b, "    |-- [提前结束]: %v\n", res.Unknown)
	}

	// 3. 视图：各实体范围合并成互不相邻的矩形
	var boxes []core.BBox
	for _, e := range res.Entities {
		if box, ok := utils.Extents(res.Blocks, e); ok {
			boxes = append(boxes, box)
		}
	}
	for i, box := range utils.MergeBoxes(boxes, viewGap) {
		fmt.Fprintf(&b, "    [视图%d] | %.1f x %.1f | RECTANG %.2f,%.2f %.2f,%.2f\n",
			i+1, box.Width(), box.Height(), box.Min.X, box.Min.Y, box.Max.X, box.Max.Y,
		)
	}

	// 4. 块属性
	n := 0
	for _, e := range res.Entities {
		ins, ok := e.(*entities.Insert)
		if !ok || len(ins.Attributes) == 0 {
			continue
		}
		n++
		attrs := utils.GetAttrs(ins)
		tags := make([]string, 0, len(attrs))
		for tag := range attrs {
			tags = append(tags, tag)
		}
		sort.Strings(tags)

		fmt.Fprintf(&b, "    [%s.%02d]", ins.BlockName, n)
		for _, tag := range tags {
			fmt.Fprintf(&b, " %s:%s", tag, attrs[tag])
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}
