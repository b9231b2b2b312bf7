package render

import (
	"math"

	"github.com/zooyer/cad2pdf/core"
)

// Matrix 二维仿射变换：x' = A*x + C*y + E，y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity 单位变换
var Identity = Matrix{A: 1, D: 1}

// Placement 等比缩放加平移，对应 offset + v*scale
func Placement(scale, offX, offY float64) Matrix {
	return Matrix{A: scale, D: scale, E: offX, F: offY}
}

// Translate 平移
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale 按轴缩放
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate 逆时针旋转，单位为度
func Rotate(deg float64) Matrix {
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Mul 返回先做 n 再做 m 的变换
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply 变换一个点，Z 被丢弃
func (m Matrix) Apply(p core.Point) (x, y float64) {
	return m.A*p.X + m.C*p.Y + m.E, m.B*p.X + m.D*p.Y + m.F
}

// Vector 只做线性部分
func (m Matrix) Vector(v core.Point) core.Point {
	return core.Point{X: m.A*v.X + m.C*v.Y, Y: m.B*v.X + m.D*v.Y}
}

// Det 线性部分的行列式
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Factor 面积缩放的平方根，用于字高和线宽
func (m Matrix) Factor() float64 {
	return math.Sqrt(math.Abs(m.Det()))
}

// conformal 是否为不含镜像的相似变换（圆仍然是圆）
func (m Matrix) conformal() bool {
	const eps = 1e-12
	scale := math.Max(math.Abs(m.A)+math.Abs(m.B), 1)
	return math.Abs(m.A-m.D) <= eps*scale && math.Abs(m.B+m.C) <= eps*scale && m.Det() > 0
}

// rotation 线性部分的旋转角，单位为度
func (m Matrix) rotation() float64 {
	return math.Atan2(m.B, m.A) * 180 / math.Pi
}

// axes 把共轭半径 u、v 描述的椭圆 c + u*cos(t) + v*sin(t)
// 分解成长短半轴、长轴方向和参数偏移（2x2 奇异值分解）
func axes(u, v core.Point) (rx, ry, phi, theta float64) {
	e := (u.X + v.Y) / 2
	f := (u.X - v.Y) / 2
	g := (u.Y + v.X) / 2
	h := (u.Y - v.X) / 2

	q := math.Hypot(e, h)
	r := math.Hypot(f, g)
	a1 := math.Atan2(g, f)
	a2 := math.Atan2(h, e)

	return q + r, q - r, (a2 + a1) / 2, (a2 - a1) / 2
}
