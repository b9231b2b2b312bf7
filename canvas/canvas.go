// Package canvas 定义渲染器使用的矢量画布，并提供内存记录和 PDF 两种实现
package canvas

import (
	"errors"
	"image/color"
)

// ErrStateUnderflow RestoreState 次数多于 SaveState
var ErrStateUnderflow = errors.New("canvas: restore without matching save")

// Canvas 路径式绘图接口。
// 坐标单位为点，原点在左下角。出错后后续调用全部忽略，错误由 Err 返回
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	// Stroke、Fill、FillAndStroke 消耗并清空当前路径
	Stroke()
	Fill()
	FillAndStroke()

	// Circle 追加一个闭合的整圆子路径
	Circle(x, y, r float64)
	// Arc 追加圆弧子路径，角度单位为度，从 start 逆时针到 end
	Arc(x, y, r, start, end float64)
	// Ellipse 追加椭圆弧子路径：rx/ry 为长短半轴，rotation 为长轴方向，
	// start/end 为参数角，单位均为弧度
	Ellipse(x, y, rx, ry, rotation, start, end float64)
	Rectangle(x, y, w, h float64)

	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	SetLineDash(pattern []float64, phase float64)

	// SaveState/RestoreState 成对使用，恢复颜色和线型
	SaveState()
	RestoreState()

	AddText(x, y float64, s string, size float64)

	Err() error
}

var (
	Black = color.Gray{Y: 0}
	White = color.Gray{Y: 0xff}
	Gray  = color.Gray{Y: 0x99}
)

// rgb 把颜色换算成 0..1 的分量
func rgb(c color.Color) (r, g, b float64) {
	if c == nil {
		return 0, 0, 0
	}
	cr, cg, cb, _ := c.RGBA()
	return float64(cr) / 0xffff, float64(cg) / 0xffff, float64(cb) / 0xffff
}
