package canvas

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"
)

// Op 一次画布调用
type Op struct {
	Name string
	Args []float64
	Text string
}

func (op Op) String() string {
	var b strings.Builder
	b.WriteString(op.Name)
	for _, a := range op.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(a, 'g', 6, 64))
	}
	if op.Text != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(op.Text))
	}
	return b.String()
}

// State 记录器模拟的图形状态
type State struct {
	StrokeColor color.Color
	FillColor   color.Color
	LineWidth   float64
	Dash        []float64
	DashPhase   float64
}

// Recorder 把调用记录在内存中，并模拟图形状态栈
type Recorder struct {
	Ops   []Op
	state State
	stack []State
	path  bool // 是否有未消耗的路径
	err   error
}

func NewRecorder() *Recorder {
	return &Recorder{state: State{StrokeColor: Black, FillColor: Black, LineWidth: 1}}
}

// Fail 让后续调用失败，用于模拟输出错误
func (r *Recorder) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Recorder) Err() error { return r.err }

// State 当前图形状态
func (r *Recorder) State() State { return r.state }

// Depth 当前状态栈深度
func (r *Recorder) Depth() int { return len(r.stack) }

// HasPath 是否有尚未描边或填充的路径
func (r *Recorder) HasPath() bool { return r.path }

// Count 统计某种调用的次数
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Find 返回某种调用的全部记录
func (r *Recorder) Find(name string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Name == name {
			ops = append(ops, op)
		}
	}
	return ops
}

// Texts 按顺序返回全部文字
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.Find("text") {
		texts = append(texts, op.Text)
	}
	return texts
}

// Reset 清空记录和状态
func (r *Recorder) Reset() {
	*r = *NewRecorder()
}

func (r *Recorder) String() string {
	var b strings.Builder
	for _, op := range r.Ops {
		fmt.Fprintln(&b, op)
	}
	return b.String()
}

func (r *Recorder) record(name string, args ...float64) bool {
	if r.err != nil {
		return false
	}
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
	return true
}

func (r *Recorder) MoveTo(x, y float64) {
	if r.record("moveto", x, y) {
		r.path = true
	}
}

func (r *Recorder) LineTo(x, y float64) {
	if r.record("lineto", x, y) {
		r.path = true
	}
}

func (r *Recorder) ClosePath() { r.record("closepath") }

func (r *Recorder) Stroke() {
	if r.record("stroke") {
		r.path = false
	}
}

func (r *Recorder) Fill() {
	if r.record("fill") {
		r.path = false
	}
}

func (r *Recorder) FillAndStroke() {
	if r.record("fillstroke") {
		r.path = false
	}
}

func (r *Recorder) Circle(x, y, radius float64) {
	if r.record("circle", x, y, radius) {
		r.path = true
	}
}

func (r *Recorder) Arc(x, y, radius, start, end float64) {
	if r.record("arc", x, y, radius, start, end) {
		r.path = true
	}
}

func (r *Recorder) Ellipse(x, y, rx, ry, rotation, start, end float64) {
	if r.record("ellipse", x, y, rx, ry, rotation, start, end) {
		r.path = true
	}
}

func (r *Recorder) Rectangle(x, y, w, h float64) {
	if r.record("rect", x, y, w, h) {
		r.path = true
	}
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	cr, cg, cb := rgb(c)
	if r.record("strokecolor", cr, cg, cb) {
		r.state.StrokeColor = c
	}
}

func (r *Recorder) SetFillColor(c color.Color) {
	cr, cg, cb := rgb(c)
	if r.record("fillcolor", cr, cg, cb) {
		r.state.FillColor = c
	}
}

func (r *Recorder) SetLineWidth(w float64) {
	if r.record("linewidth", w) {
		r.state.LineWidth = w
	}
}

func (r *Recorder) SetLineDash(pattern []float64, phase float64) {
	if r.record("dash", append(slices.Clone(pattern), phase)...) {
		r.state.Dash = slices.Clone(pattern)
		r.state.DashPhase = phase
	}
}

func (r *Recorder) SaveState() {
	if r.record("save") {
		r.stack = append(r.stack, r.state)
	}
}

func (r *Recorder) RestoreState() {
	if len(r.stack) == 0 {
		r.Fail(ErrStateUnderflow)
		return
	}
	if r.record("restore") {
		r.state = r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
	}
}

func (r *Recorder) AddText(x, y float64, s string, size float64) {
	if r.err != nil {
		return
	}
	r.Ops = append(r.Ops, Op{Name: "text", Args: []float64{x, y, size}, Text: s})
}
