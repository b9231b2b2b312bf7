package render

import (
	"math"
	"unicode/utf8"

	"github.com/zooyer/cad2pdf/canvas"
	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/utils"
)

const (
	// PlaceholderSize 没有尺寸信息的占位框边长（图纸单位）
	PlaceholderSize = 10.0
	// PointRadius 点实体的圆点半径（画布单位）
	PointRadius = 0.5

	lineSpacing = 5.0 / 3.0 // 多行文字行距 / 字高
	charWidth   = 0.6       // 估算字宽 / 字高
	maxIsolines = 16
)

var (
	origin          core.Point
	placeholderDash = []float64{4, 2}
)

// decoration 占位框内的示意线段
type decoration func(outline []core.Point) [][2]core.Point

func diagonals(o []core.Point) [][2]core.Point {
	return [][2]core.Point{{o[0], o[2]}, {o[1], o[3]}}
}

// grid u/v 方向的等参线
func grid(u, v int) decoration {
	u, v = min(max(u, 0), maxIsolines), min(max(v, 0), maxIsolines)
	return func(o []core.Point) [][2]core.Point {
		var segs [][2]core.Point
		for i := 1; i <= u; i++ {
			t := float64(i) / float64(u+1)
			segs = append(segs, [2]core.Point{lerp(o[0], o[1], t), lerp(o[3], o[2], t)})
		}
		for i := 1; i <= v; i++ {
			t := float64(i) / float64(v+1)
			segs = append(segs, [2]core.Point{lerp(o[0], o[3], t), lerp(o[1], o[2], t)})
		}
		return segs
	}
}

func lerp(a, b core.Point, t float64) core.Point {
	return core.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// box 以 p 为左下角的矩形轮廓，逆时针
func box(p core.Point, w, h float64) []core.Point {
	return []core.Point{
		p,
		{X: p.X + w, Y: p.Y},
		{X: p.X + w, Y: p.Y + h},
		{X: p.X, Y: p.Y + h},
	}
}

// path 追加折线路径，少于两个点时不画
func (r *Renderer) path(m Matrix, closed bool, pts ...core.Point) bool {
	if len(pts) < 2 {
		return false
	}
	r.c.MoveTo(m.Apply(pts[0]))
	for _, p := range pts[1:] {
		r.c.LineTo(m.Apply(p))
	}
	if closed {
		r.c.ClosePath()
	}
	return true
}

func (r *Renderer) stroke(m Matrix, closed bool, pts ...core.Point) {
	if r.path(m, closed, pts...) {
		r.c.Stroke()
	}
}

func (r *Renderer) segments(m Matrix, segs [][2]core.Point) {
	for _, s := range segs {
		r.path(m, false, s[0], s[1])
	}
}

func (r *Renderer) circle(m Matrix, e *entities.Circle) {
	if !(e.Radius > 0) {
		return
	}
	if m.conformal() {
		x, y := m.Apply(e.Center)
		r.c.Circle(x, y, e.Radius*math.Hypot(m.A, m.B))
	} else if !r.conic(m, e.Center, core.Point{X: e.Radius}, core.Point{Y: e.Radius}, 0, 2*math.Pi) {
		return
	}
	r.c.Stroke()
}

func (r *Renderer) arc(m Matrix, e *entities.Arc) {
	if !(e.Radius > 0) {
		return
	}
	if m.conformal() {
		x, y := m.Apply(e.Center)
		rot := m.rotation()
		r.c.Arc(x, y, e.Radius*math.Hypot(m.A, m.B), e.StartAngle+rot, e.EndAngle+rot)
	} else {
		start, end := e.StartAngle*math.Pi/180, e.EndAngle*math.Pi/180
		for end <= start {
			end += 2 * math.Pi
		}
		if !r.conic(m, e.Center, core.Point{X: e.Radius}, core.Point{Y: e.Radius}, start, end) {
			return
		}
	}
	r.c.Stroke()
}

func (r *Renderer) ellipse(m Matrix, e *entities.Ellipse) {
	u := e.MajorAxis
	v := core.Point{X: -u.Y * e.Ratio, Y: u.X * e.Ratio}
	if r.conic(m, e.Center, u, v, e.StartParam, e.EndParam) {
		r.c.Stroke()
	}
}

// conic 绘制 c + u*cos(t) + v*sin(t)，t 从 start 到 end
func (r *Renderer) conic(m Matrix, c, u, v core.Point, start, end float64) bool {
	rx, ry, phi, theta := axes(m.Vector(u), m.Vector(v))
	if !(rx > 0) {
		return false
	}
	x, y := m.Apply(c)
	if ry >= 0 {
		r.c.Ellipse(x, y, rx, ry, phi, start+theta, end+theta)
	} else {
		// 镜像后方向相反
		r.c.Ellipse(x, y, rx, -ry, phi, -(end + theta), -(start + theta))
	}
	return true
}

func (r *Renderer) point(m Matrix, e *entities.Point) {
	x, y := m.Apply(e.Location)
	r.c.Circle(x, y, PointRadius)
	r.c.Fill()
}

func (r *Renderer) wipeout(m Matrix, e *entities.Wipeout) {
	r.c.SaveState()
	r.c.SetFillColor(canvas.White)
	if r.path(m, true, e.Vertices...) {
		r.c.FillAndStroke()
	}
	r.c.RestoreState()
}

func (r *Renderer) text(m Matrix, p core.Point, s string, height float64) {
	if s == "" {
		return
	}
	if !(height > 0) {
		height = DefaultTextHeight
	}
	x, y := m.Apply(p)
	r.c.AddText(x, y, s, height*m.Factor())
}

// mtext 插入点为左上角，先画外框再逐行写字
func (r *Renderer) mtext(m Matrix, e *entities.MText) {
	h := e.Height
	if !(h > 0) {
		h = DefaultTextHeight
	}
	lines := e.Lines()

	w := e.Width
	if !(w > 0) {
		widest := 0
		for _, line := range lines {
			widest = max(widest, utf8.RuneCountInString(line))
		}
		w = float64(widest) * h * charWidth
	}
	frameH := float64(len(lines)) * h * lineSpacing

	r.c.SaveState()
	r.c.SetStrokeColor(canvas.Gray)
	r.stroke(m, true, box(core.Point{X: e.Position.X, Y: e.Position.Y - frameH}, w, frameH)...)
	r.c.RestoreState()

	for i, line := range lines {
		p := core.Point{X: e.Position.X, Y: e.Position.Y - h - float64(i)*h*lineSpacing}
		r.text(m, p, line, h)
	}
}

// dimension 尺寸界线、尺寸线和按样式精度格式化的测量值
func (r *Renderer) dimension(m Matrix, e *entities.Dimension) {
	a, b := e.GetExtensionPoints()
	r.segments(m, [][2]core.Point{{e.MeasureStart, a}, {e.MeasureEnd, b}, {a, b}})
	r.c.Stroke()
	r.text(m, e.TextAnchor(), utils.FormatDim(r.opts.precisions, e), 0)
}

func (r *Renderer) tolerance(m Matrix, e *entities.Tolerance) {
	h := e.Height
	if !(h > 0) {
		h = DefaultTextHeight
	}
	w := float64(utf8.RuneCountInString(e.Value))*h*charWidth + h
	r.stroke(m, true, box(core.Point{X: e.Position.X, Y: e.Position.Y - h/2}, w, 2*h)...)
	r.text(m, core.Point{X: e.Position.X + h/2, Y: e.Position.Y}, e.Value, h)
}

// table 插入点为左上角，网格线计入绘制预算
func (r *Renderer) table(m Matrix, e *entities.Table) error {
	if e.Rows <= 0 || e.Columns <= 0 {
		return nil
	}
	if err := r.charge(e.Rows + e.Columns); err != nil {
		return err
	}

	x0, y0 := e.Position.X, e.Position.Y
	w := float64(e.Columns) * e.ColumnWidth
	h := float64(e.Rows) * e.RowHeight

	for i := 0; i <= e.Rows; i++ {
		y := y0 - float64(i)*e.RowHeight
		r.path(m, false, core.Point{X: x0, Y: y}, core.Point{X: x0 + w, Y: y})
	}
	for j := 0; j <= e.Columns; j++ {
		x := x0 + float64(j)*e.ColumnWidth
		r.path(m, false, core.Point{X: x, Y: y0}, core.Point{X: x, Y: y0 - h})
	}
	r.c.Stroke()

	pad := e.RowHeight / 4
	for i, s := range e.Cells {
		row, col := i/e.Columns, i%e.Columns
		if row >= e.Rows {
			break
		}
		p := core.Point{
			X: x0 + float64(col)*e.ColumnWidth + pad,
			Y: y0 - float64(row+1)*e.RowHeight + pad,
		}
		r.text(m, p, s, e.RowHeight/2)
	}
	return nil
}

// placeholder 无法绘制真实几何的实体：灰色虚线框加说明文字
func (r *Renderer) placeholder(m Matrix, at core.Point, outline []core.Point, label string, decorations ...decoration) {
	r.c.SaveState()
	r.c.SetStrokeColor(canvas.Gray)
	r.c.SetLineDash(placeholderDash, 0)
	r.path(m, true, outline...)
	for _, d := range decorations {
		r.segments(m, d(outline))
	}
	r.c.Stroke()
	r.text(m, core.Point{X: at.X + DefaultTextHeight/2, Y: at.Y + DefaultTextHeight/2}, label, 0)
	r.c.RestoreState()
}
