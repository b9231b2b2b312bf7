package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64，拒绝空值与非有限数（Inf/NaN）
func (t Tag) AsFloat() (float64, error) {
	s := strings.TrimSpace(t.Value)
	if s == "" {
		return 0, fmt.Errorf("group %d: %w", t.Code, ErrEmptyValue)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("group %d: %w", t.Code, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("group %d: %q: %w", t.Code, s, ErrNonFinite)
	}
	return f, nil
}

// AsInt 将值转换为 int，超出 32 位有符号范围时报错
func (t Tag) AsInt() (int, error) {
	s := strings.TrimSpace(t.Value)
	if s == "" {
		return 0, fmt.Errorf("group %d: %w", t.Code, ErrEmptyValue)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("group %d: %w", t.Code, err)
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, fmt.Errorf("group %d: %d: %w", t.Code, i, ErrOutOfRange)
	}
	return int(i), nil
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Float 生成数值标签
func Float(code int, v float64) Tag {
	return Tag{Code: code, Value: FormatFloat(v)}
}

// Int 生成整数标签
func Int(code int, v int) Tag {
	return Tag{Code: code, Value: strconv.Itoa(v)}
}

// String 生成文本标签
func String(code int, s string) Tag {
	return Tag{Code: code, Value: s}
}

// FormatFloat 输出可无损读回的最短十进制，整数补 ".0"
func FormatFloat(v float64) string {
	if a := math.Abs(v); a >= 1e15 || (a != 0 && a < 1e-6) {
		return strconv.FormatFloat(v, 'E', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// Width 包围盒宽度
func (b BBox) Width() float64 { return b.Max.X - b.Min.X }

// Height 包围盒高度
func (b BBox) Height() float64 { return b.Max.Y - b.Min.Y }

// Extend 扩展包围盒以包含点 p（只处理 XY）
func (b BBox) Extend(p Point) BBox {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	return b
}

// Union 合并两个包围盒
func (b BBox) Union(o BBox) BBox {
	return b.Extend(o.Min).Extend(o.Max)
}
