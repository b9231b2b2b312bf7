package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/font/type1"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// ErrClosed 页面已经写出
var ErrClosed = errors.New("canvas: pdf page closed")

// PDF 单页 PDF 画布
type PDF struct {
	page   *document.Page
	font   *type1.Instance
	Width  float64
	Height float64
	depth  int
	closed bool
	err    error
}

// NewPDF 创建一个 width x height（单位：点）的单页 PDF，Close 时写入 w
func NewPDF(w io.Writer, width, height float64) (*PDF, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("canvas: invalid page size %gx%g", width, height)
	}

	page, err := document.WriteSinglePage(w, &pdf.Rectangle{URx: width, URy: height}, pdf.V1_7, nil)
	if err != nil {
		return nil, fmt.Errorf("canvas: create pdf: %w", err)
	}

	return &PDF{page: page, font: standard.Helvetica.New(), Width: width, Height: height}, nil
}

func (p *PDF) ok() bool {
	if p.err != nil {
		return false
	}
	if p.closed {
		p.err = ErrClosed
		return false
	}
	if p.page.Err != nil {
		p.err = p.page.Err
		return false
	}
	return true
}

func (p *PDF) Err() error {
	if p.err == nil && !p.closed && p.page.Err != nil {
		p.err = p.page.Err
	}
	return p.err
}

// Close 关闭未恢复的状态并写出页面
func (p *PDF) Close() error {
	if p.closed {
		return p.err
	}
	for ; p.depth > 0; p.depth-- {
		p.page.PopGraphicsState()
	}
	if err := p.Err(); err != nil {
		p.closed = true
		return err
	}
	p.closed = true
	if err := p.page.Close(); err != nil {
		p.err = fmt.Errorf("canvas: write pdf: %w", err)
	}
	return p.err
}

func (p *PDF) MoveTo(x, y float64) {
	if p.ok() {
		p.page.MoveTo(x, y)
	}
}

func (p *PDF) LineTo(x, y float64) {
	if p.ok() {
		p.page.LineTo(x, y)
	}
}

func (p *PDF) ClosePath() {
	if p.ok() {
		p.page.ClosePath()
	}
}

func (p *PDF) Stroke() {
	if p.ok() {
		p.page.Stroke()
	}
}

func (p *PDF) Fill() {
	if p.ok() {
		p.page.Fill()
	}
}

func (p *PDF) FillAndStroke() {
	if p.ok() {
		p.page.FillAndStroke()
	}
}

func (p *PDF) Circle(x, y, r float64) {
	if p.ok() && r > 0 {
		p.page.Circle(x, y, r)
	}
}

func (p *PDF) Arc(x, y, r, start, end float64) {
	if !p.ok() || !(r > 0) {
		return
	}
	for end <= start {
		end += 360
	}
	p.page.MoveToArc(x, y, r, start*math.Pi/180, end*math.Pi/180)
}

func (p *PDF) Ellipse(x, y, rx, ry, rotation, start, end float64) {
	if !p.ok() || !(rx > 0) || !(ry > 0) {
		return
	}
	curves := ellipseCurves(x, y, rx, ry, rotation, start, end)
	p.page.MoveTo(curves[0].x0, curves[0].y0)
	for _, c := range curves {
		p.page.CurveTo(c.x1, c.y1, c.x2, c.y2, c.x3, c.y3)
	}
	if fullTurn(start, end) {
		p.page.ClosePath()
	}
}

func (p *PDF) Rectangle(x, y, w, h float64) {
	if p.ok() {
		p.page.Rectangle(x, y, w, h)
	}
}

func (p *PDF) SetStrokeColor(c color.Color) {
	if p.ok() {
		p.page.SetStrokeColor(pdfcolor.DeviceRGB(rgb(c)))
	}
}

func (p *PDF) SetFillColor(c color.Color) {
	if p.ok() {
		p.page.SetFillColor(pdfcolor.DeviceRGB(rgb(c)))
	}
}

func (p *PDF) SetLineWidth(w float64) {
	if p.ok() {
		p.page.SetLineWidth(math.Max(w, 0))
	}
}

func (p *PDF) SetLineDash(pattern []float64, phase float64) {
	if p.ok() {
		p.page.SetLineDash(pattern, phase)
	}
}

func (p *PDF) SaveState() {
	if p.ok() {
		p.page.PushGraphicsState()
		p.depth++
	}
}

func (p *PDF) RestoreState() {
	if !p.ok() {
		return
	}
	if p.depth == 0 {
		p.err = ErrStateUnderflow
		return
	}
	p.page.PopGraphicsState()
	p.depth--
}

func (p *PDF) AddText(x, y float64, s string, size float64) {
	if !p.ok() || s == "" || !(size > 0) {
		return
	}
	p.page.TextBegin()
	p.page.TextSetFont(p.font, size)
	p.page.TextFirstLine(x, y)
	p.page.TextShowRaw(pdf.String(latin(s)))
	p.page.TextEnd()
}

// latin 把文字转成标准字体可显示的 ASCII：
// 先做兼容分解去掉重音符号，仍无法表示的字符替换为 '?'
func latin(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
