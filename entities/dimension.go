package entities

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zooyer/cad2pdf/core"
)

var (
	reFormat = regexp.MustCompile(`\\[A-Z].*?;`)
	reNum    = regexp.MustCompile(`[0-9.]+`)
)

type Dimension struct {
	BaseEntity
	DimType           int        // 组码 70 (低 3 位为类型，高位为标志)
	StyleName         string     // 组码 3 (标注样式名称，用于关联 TABLES)
	ActualMeasurement float64    // 组码 42
	Text              string     // 组码 1
	Angle             float64    // 组码 50
	TextMidPoint      core.Point // 组码 11 (中间的点)
	DefPoint          core.Point // 组码 10 (标注线起点)
	MeasureStart      core.Point // 组码 13 (被测量的起点)
	MeasureEnd        core.Point // 组码 14 (被测量的终点)
}

func init() {
	register("DIMENSION", func() Entity { return &Dimension{} })
}

func (d *Dimension) Type() string { return "DIMENSION" }

func (d *Dimension) apply(t core.Tag, _ *core.VertexBuilder) error {
	if d.applyLayer(t) {
		return nil
	}
	switch t.Code {
	case 3:
		// 核心：读取标注样式名称
		d.StyleName = strings.ToUpper(t.AsString())
	case 1:
		d.Text = t.AsString()
	case 42:
		return setFloat(&d.ActualMeasurement, t)
	case 50:
		return setFloat(&d.Angle, t)
	case 70:
		// 组码 70 同时带有类型和标志位，原样保存
		return setInt(&d.DimType, t)
	}

	// 解析 4 个核心点坐标
	for _, p := range []struct {
		code int
		dst  *core.Point
	}{
		{10, &d.DefPoint},
		{11, &d.TextMidPoint},
		{13, &d.MeasureStart},
		{14, &d.MeasureEnd},
	} {
		if ok, err := applyPoint(p.dst, p.code, t); ok {
			return err
		}
	}
	return nil
}

func (d *Dimension) Tags() []core.Tag {
	tags := []core.Tag{d.layerTag(), core.Int(70, d.DimType)}
	if d.StyleName != "" {
		tags = append(tags, core.String(3, d.StyleName))
	}
	tags = append(tags, pointTags(10, d.DefPoint)...)
	tags = append(tags, pointTags(11, d.TextMidPoint)...)
	tags = append(tags, pointTags(13, d.MeasureStart)...)
	tags = append(tags, pointTags(14, d.MeasureEnd)...)
	tags = append(tags, core.Float(42, d.ActualMeasurement), core.Float(50, d.Angle))
	if d.Text != "" {
		tags = append(tags, core.String(1, singleLine(d.Text)))
	}
	return tags
}

// Kind 标注类型 (组码 70 低 3 位)
func (d *Dimension) Kind() int {
	return d.DimType & 0x07
}

// GetExtensionPoints 计算标注线上的两个转角点
// 返回：对应 P13 的转角点, 对应 P14 的转角点
func (d *Dimension) GetExtensionPoints() (p13Corner, p14Corner core.Point) {
	// 将角度从角度制转为弧度制
	rad := d.Angle * math.Pi / 180.0

	// 标注线的单位方向向量
	v := core.Point{X: math.Cos(rad), Y: math.Sin(rad)}

	project := func(p core.Point) core.Point {
		dot := (p.X-d.DefPoint.X)*v.X + (p.Y-d.DefPoint.Y)*v.Y
		return core.Point{X: d.DefPoint.X + v.X*dot, Y: d.DefPoint.Y + v.Y*dot}
	}

	return project(d.MeasureStart), project(d.MeasureEnd)
}

// TextAnchor 文字位置：有 11 点用 11 点，否则取两个转角点中点
func (d *Dimension) TextAnchor() core.Point {
	if d.TextMidPoint != (core.Point{}) {
		return d.TextMidPoint
	}
	a, b := d.GetExtensionPoints()
	return core.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// GetCleanVal 正则提取数值
func (d *Dimension) GetCleanVal() float64 {
	val := d.ActualMeasurement
	if val <= 0 && d.Text != "" {
		cleanText := reFormat.ReplaceAllString(d.Text, "")
		if match := reNum.FindString(cleanText); match != "" {
			parsed, _ := strconv.ParseFloat(match, 64)
			val = parsed
		}
	}
	return val
}
