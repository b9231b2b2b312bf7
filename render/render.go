// Package render 把实体按比例和偏移绘制到 canvas.Canvas 上，INSERT 递归展开块
package render

import (
	"errors"
	"fmt"

	"github.com/zooyer/cad2pdf/canvas"
	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/logging"
)

// ErrExpansionLimit 绘制的实体数超过 WithMaxExpansions
var ErrExpansionLimit = errors.New("render: block expansion limit exceeded")

// Renderer 单线程使用，一次 Render/RenderAll 为一轮绘制
type Renderer struct {
	c      canvas.Canvas
	blocks *entities.Registry
	opts   options

	count     int             // 本轮已绘制的实体数
	expanding map[string]bool // 正在展开的块
}

// frame 当前坐标系：块内坐标经 m 变换到画布坐标
type frame struct {
	m             Matrix
	localScale    float64
	localRotation float64
	depth         int
}

// New blocks 可以为 nil，此时所有 INSERT 都跳过
func New(c canvas.Canvas, blocks *entities.Registry, opts ...Option) *Renderer {
	return &Renderer{
		c:         c,
		blocks:    blocks,
		opts:      newOptions(opts),
		expanding: make(map[string]bool),
	}
}

// Render 绘制一个实体：canvasX = offX + x*scale，canvasY = offY + y*scale。
// localScale、localRotation 是所在块实例的累计缩放和旋转，
// 只有打开 WithInsertRotation 时才作用于坐标
func (r *Renderer) Render(e entities.Entity, scale, offX, offY, localScale, localRotation float64) error {
	r.count = 0
	if err := r.draw(e, r.frame(scale, offX, offY, localScale, localRotation)); err != nil {
		return fmt.Errorf("render %s: %w", e.Type(), err)
	}
	return nil
}

// RenderAll 按顺序绘制全部实体，第一个错误终止本轮绘制
func (r *Renderer) RenderAll(ents []entities.Entity, scale, offX, offY float64) error {
	r.count = 0
	f := r.frame(scale, offX, offY, 1, 0)
	for i, e := range ents {
		if err := r.draw(e, f); err != nil {
			return fmt.Errorf("render: entity %d (%s): %w", i, e.Type(), err)
		}
	}
	logging.Logger().Debug("entities rendered", "entities", len(ents), "drawn", r.count, "scale", scale)
	return nil
}

func (r *Renderer) frame(scale, offX, offY, localScale, localRotation float64) frame {
	m := Placement(scale, offX, offY)
	if r.opts.rotation {
		m = m.Mul(Rotate(localRotation)).Mul(Scale(localScale, localScale))
	}
	return frame{m: m, localScale: localScale, localRotation: localRotation}
}

// charge 计入绘制预算
func (r *Renderer) charge(n int) error {
	r.count += n
	if r.count > r.opts.maxExpansions {
		return ErrExpansionLimit
	}
	return nil
}

func (r *Renderer) draw(e entities.Entity, f frame) error {
	if e == nil {
		return nil
	}
	if err := r.charge(1); err != nil {
		return err
	}

	m := f.m
	switch e := e.(type) {
	case *entities.Line:
		r.stroke(m, false, e.Start, e.End)
	case *entities.LWPolyline:
		r.stroke(m, e.Closed, e.Vertices...)
	case *entities.Circle:
		r.circle(m, e)
	case *entities.Arc:
		r.arc(m, e)
	case *entities.Ellipse:
		r.ellipse(m, e)
	case *entities.Point:
		r.point(m, e)
	case *entities.Solid:
		if r.path(m, true, e.Outline()...) {
			r.c.FillAndStroke()
		}
	case *entities.Face3D:
		r.stroke(m, true, e.Corners[:]...)
	case *entities.Polyface:
		r.stroke(m, false, e.Vertices...)
	case *entities.Mesh:
		r.stroke(m, false, e.Vertices...)
	case *entities.Wipeout:
		r.wipeout(m, e)
	case *entities.Region:
		if r.path(m, true, e.Vertices...) {
			if e.Filled {
				r.c.FillAndStroke()
			} else {
				r.c.Stroke()
			}
		}
	case *entities.Text:
		r.text(m, e.Position, e.Value, e.Height)
	case *entities.MText:
		r.mtext(m, e)
	case *entities.Attrib:
		r.text(m, e.Location, e.Text, e.Height)
	case *entities.Dimension:
		r.dimension(m, e)
	case *entities.Leader:
		r.stroke(m, false, e.Vertices...)
		r.text(m, e.TextAnchor, e.Value, 0)
	case *entities.Tolerance:
		r.tolerance(m, e)
	case *entities.Table:
		if err := r.table(m, e); err != nil {
			return err
		}
	case *entities.Block:
		// 块定义只通过 INSERT 绘制
	case *entities.Insert:
		if err := r.insert(e, f); err != nil {
			return err
		}
	case *entities.XRef:
		r.placeholder(m, e.Position, box(e.Position, PlaceholderSize, PlaceholderSize), "XREF "+e.Path)
	case *entities.Solid3D:
		r.placeholder(m, e.Min, box(e.Min, e.Max.X-e.Min.X, e.Max.Y-e.Min.Y), "3DSOLID", diagonals)
	case *entities.Surface:
		r.placeholder(m, origin, box(origin, PlaceholderSize, PlaceholderSize), "SURFACE", grid(e.UIsolines, e.VIsolines))
	case *entities.Body:
		r.placeholder(m, origin, box(origin, PlaceholderSize, PlaceholderSize), "BODY", diagonals)
	case *entities.Viewport:
		corner := e.Center
		corner.X -= e.Width / 2
		corner.Y -= e.Height / 2
		r.placeholder(m, corner, box(corner, e.Width, e.Height), fmt.Sprintf("VIEWPORT %d", e.ID))
	case *entities.Image:
		r.placeholder(m, e.Position, box(e.Position, e.Width, e.Height), "IMAGE "+e.Path, diagonals)
	case *entities.Underlay:
		size := PlaceholderSize
		if e.Scale > 0 {
			size *= e.Scale
		}
		r.placeholder(m, e.Position, box(e.Position, size, size), e.Format+" UNDERLAY "+e.Path)
	case *entities.OLEFrame:
		corner := core.Point{X: e.UpperLeft.X, Y: e.LowerRight.Y}
		r.placeholder(m, corner, box(corner, e.LowerRight.X-e.UpperLeft.X, e.UpperLeft.Y-e.LowerRight.Y), "OLE "+e.Description)
	}

	return r.c.Err()
}

// insert 展开块：正在展开的块（循环引用）、超过最大层数、不存在的块都跳过
func (r *Renderer) insert(e *entities.Insert, f frame) error {
	log := logging.Logger()

	b, ok := r.blocks.Lookup(e.BlockName)
	switch {
	case !ok:
		log.Debug("skip insert of undefined block", "block", e.BlockName)
	case r.expanding[b.Name]:
		log.Debug("skip recursive block", "block", b.Name, "depth", f.depth)
	case f.depth >= r.opts.maxDepth:
		log.Debug("skip block nested too deep", "block", b.Name, "depth", f.depth)
	default:
		child := r.child(f, e, b)
		r.expanding[b.Name] = true
		defer delete(r.expanding, b.Name)
		for _, c := range b.Entities {
			if err := r.draw(c, child); err != nil {
				return err
			}
		}
	}

	// 属性坐标在 INSERT 所在的坐标系里
	for _, a := range e.Attributes {
		r.text(f.m, a.Location, a.Text, a.Height)
	}
	return nil
}

// child 块内坐标系：默认等比缩放 scale*ScaleX，偏移 offset + (insert - base*ScaleX)*scale
func (r *Renderer) child(f frame, e *entities.Insert, b *entities.Block) frame {
	sx := e.Scale.X
	child := frame{
		localScale:    f.localScale * sx,
		localRotation: f.localRotation + e.Rotation,
		depth:         f.depth + 1,
	}

	if r.opts.rotation {
		child.m = f.m.
			Mul(Translate(e.InsertionPoint.X, e.InsertionPoint.Y)).
			Mul(Rotate(e.Rotation)).
			Mul(Scale(sx, e.Scale.Y)).
			Mul(Translate(-b.Base.X, -b.Base.Y))
		return child
	}

	scale := f.m.A
	child.m = Placement(
		scale*sx,
		f.m.E+(e.InsertionPoint.X-b.Base.X*sx)*scale,
		f.m.F+(e.InsertionPoint.Y-b.Base.Y*sx)*scale,
	)
	return child
}
