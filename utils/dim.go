package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/zooyer/cad2pdf/entities"
)

// StandardStyle 标注没有指定样式时查找的样式名
const StandardStyle = "STANDARD"

// GetDimValue 标注的显示数值：有手动文字按文字提取，否则按样式精度四舍五入。
// precisions 为样式名（大写）到小数位数的映射
func GetDimValue(precisions map[string]int, dim *entities.Dimension) float64 {
	// 1. 如果有手动文字覆盖，直接按文字提取数字
	if dim.Text != "" && !strings.Contains(dim.Text, "<>") {
		return dim.GetCleanVal()
	}

	// 2. 查找标注样式定义的精度
	precision := DimPrecision(precisions, dim)

	// 3. 根据精度进行四舍五入
	p := math.Pow(10, float64(precision))

	return math.Round(dim.ActualMeasurement*p) / p
}

// DimPrecision 标注样式的小数位数，找不到样式时退回 STANDARD，默认取整
func DimPrecision(precisions map[string]int, dim *entities.Dimension) int {
	style := strings.ToUpper(dim.StyleName)
	if style == "" {
		style = StandardStyle
	}
	if p, ok := precisions[style]; ok {
		return clampPrecision(p)
	}
	if p, ok := precisions[StandardStyle]; ok {
		return clampPrecision(p)
	}
	return 0
}

// FormatDim 标注文字：<> 替换为按精度格式化的测量值
func FormatDim(precisions map[string]int, dim *entities.Dimension) string {
	value := strconv.FormatFloat(GetDimValue(precisions, dim), 'f', DimPrecision(precisions, dim), 64)
	switch {
	case dim.Text == "":
		return value
	case strings.Contains(dim.Text, "<>"):
		return strings.ReplaceAll(dim.Text, "<>", value)
	}
	return dim.Text
}

// 组码 271 的有效范围是 0..8
func clampPrecision(p int) int {
	return min(max(p, 0), 8)
}
