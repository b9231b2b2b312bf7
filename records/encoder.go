package records

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
)

// Encoder 把实体写成二进制记录，是 Decoder 的逆过程。
// 记录中没有的字段（图层、旋转、闭合标志等）不会写出
type Encoder struct {
	w    *bufio.Writer
	opts options
	buf  [8]byte
	err  error
}

func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: bufio.NewWriter(w), opts: newOptions(opts)}
}

// Encode 写出全部实体
func Encode(w io.Writer, ents []entities.Entity, opts ...Option) error {
	enc := NewEncoder(w, opts...)
	for _, e := range ents {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return enc.Flush()
}

// Encode 写出一个实体，没有二进制记录的类型返回 ErrNotEncodable
func (enc *Encoder) Encode(e entities.Entity) error {
	if enc.err != nil {
		return enc.err
	}
	if err := enc.entity(e, 0); err != nil {
		return err
	}
	return enc.err
}

// Flush 把缓冲写入底层 io.Writer
func (enc *Encoder) Flush() error {
	if enc.err != nil {
		return enc.err
	}
	return enc.w.Flush()
}

func (enc *Encoder) entity(e entities.Entity, depth int) error {
	switch e := e.(type) {
	case *entities.Line:
		enc.tag(TagLine)
		enc.floats(e.Start.X, e.Start.Y, e.End.X, e.End.Y)
	case *entities.Circle:
		enc.tag(TagCircle)
		enc.floats(e.Center.X, e.Center.Y, e.Radius)
	case *entities.Arc:
		enc.tag(TagArc)
		enc.floats(e.Center.X, e.Center.Y, e.Radius, e.StartAngle, e.EndAngle)
	case *entities.Point:
		enc.tag(TagPoint)
		enc.floats(e.Location.X, e.Location.Y)
	case *entities.LWPolyline:
		enc.tag(TagPolyline)
		enc.points(e.Vertices, 2)
	case *entities.Ellipse:
		enc.tag(TagEllipse)
		enc.floats(e.Center.X, e.Center.Y, e.MajorAxis.X, e.MajorAxis.Y, e.Ratio, e.StartParam, e.EndParam)
	case *entities.Solid:
		enc.tag(TagSolid)
		for _, c := range e.Corners {
			enc.floats(c.X, c.Y)
		}
	case *entities.Text:
		enc.tag(TagText)
		enc.floats(e.Position.X, e.Position.Y, e.Height)
		enc.text(e.Value)
	case *entities.Tolerance:
		enc.tag(TagTolerance)
		enc.floats(e.Position.X, e.Position.Y, e.Height)
		enc.text(e.Value)
	case *entities.MText:
		enc.tag(TagMText)
		enc.floats(e.Position.X, e.Position.Y, e.Height, e.Width)
		enc.text(e.Value)
	case *entities.Dimension:
		enc.tag(TagDimension)
		enc.putByte(byte(min(max(e.DimType, 0), 255)))
		enc.floats(
			e.DefPoint.X, e.DefPoint.Y,
			e.MeasureStart.X, e.MeasureStart.Y,
			e.MeasureEnd.X, e.MeasureEnd.Y,
			e.ActualMeasurement,
		)
	case *entities.Leader:
		enc.tag(TagLeader)
		enc.points(e.Vertices, 2)
		enc.floats(e.TextAnchor.X, e.TextAnchor.Y)
		enc.text(e.Value)
	case *entities.Table:
		enc.tag(TagTable)
		enc.floats(e.Position.X, e.Position.Y)
		enc.putInt32(e.Rows)
		enc.putInt32(e.Columns)
		enc.floats(e.RowHeight, e.ColumnWidth)
		for i := 0; i < e.Rows*e.Columns; i++ {
			enc.text(e.Cell(i/e.Columns, i%e.Columns))
		}
	case *entities.Block:
		if depth >= enc.opts.maxDepth {
			return fmt.Errorf("%w: block %q, limit %d", ErrNestingTooDeep, e.Name, enc.opts.maxDepth)
		}
		enc.tag(TagBlock)
		enc.text(e.Name)
		enc.floats(e.Base.X, e.Base.Y)
		enc.putInt32(len(e.Entities))
		for _, child := range e.Entities {
			if err := enc.entity(child, depth+1); err != nil {
				return err
			}
		}
	case *entities.Insert:
		enc.tag(TagInsert)
		enc.text(e.BlockName)
		enc.floats(e.InsertionPoint.X, e.InsertionPoint.Y, e.Scale.X, e.Scale.Y, e.Rotation)
	case *entities.Attrib:
		enc.tag(TagAttrib)
		enc.text(e.Tag)
		enc.text(e.Prompt)
		enc.text(e.Text)
		enc.floats(e.Location.X, e.Location.Y, e.Height)
	case *entities.XRef:
		enc.tag(TagXRef)
		enc.text(e.Path)
		enc.floats(e.Position.X, e.Position.Y)
	case *entities.Wipeout:
		enc.tag(TagWipeout)
		enc.points(e.Vertices, 2)
	case *entities.Face3D:
		enc.tag(Tag3DFace)
		for _, c := range e.Corners {
			enc.floats(c.X, c.Y, c.Z)
		}
	case *entities.Polyface:
		enc.tag(TagPolyfaceMesh)
		enc.points(e.Vertices, 3)
	case *entities.Mesh:
		enc.tag(TagMesh)
		enc.putInt32(e.Level)
		enc.points(e.Vertices, 3)
	case *entities.Solid3D:
		enc.tag(Tag3DSolid)
		enc.floats(e.Min.X, e.Min.Y, e.Min.Z, e.Max.X, e.Max.Y, e.Max.Z)
		enc.blob(e.Data)
	case *entities.Surface:
		enc.tag(TagSurface)
		for _, v := range []int{e.SurfaceType, e.UIsolines, e.VIsolines, e.Version} {
			enc.putInt32(v)
		}
		enc.blob(e.Data)
	case *entities.Body:
		enc.tag(TagBody)
		enc.putInt32(e.Version)
		enc.putInt32(e.Flags)
		enc.blob(e.Data)
	case *entities.Region:
		enc.tag(TagRegion)
		enc.points(e.Vertices, 2)
		if e.Filled {
			enc.putByte(1)
		} else {
			enc.putByte(0)
		}
	default:
		return fmt.Errorf("%w: %s", ErrNotEncodable, e.Type())
	}
	return enc.err
}

func (enc *Encoder) write(p []byte) {
	if enc.err != nil {
		return
	}
	_, enc.err = enc.w.Write(p)
}

func (enc *Encoder) putByte(b byte) {
	enc.write([]byte{b})
}

func (enc *Encoder) tag(t byte) {
	enc.putByte(t)
}

func (enc *Encoder) floats(vs ...float64) {
	for _, v := range vs {
		enc.opts.order.PutUint64(enc.buf[:8], math.Float64bits(v))
		enc.write(enc.buf[:8])
	}
}

func (enc *Encoder) putInt32(v int) {
	enc.opts.order.PutUint32(enc.buf[:4], uint32(int32(v)))
	enc.write(enc.buf[:4])
}

func (enc *Encoder) blob(b []byte) {
	enc.putInt32(len(b))
	enc.write(b)
}

func (enc *Encoder) text(s string) {
	enc.blob([]byte(s))
}

func (enc *Encoder) points(points []core.Point, dims int) {
	enc.putInt32(len(points))
	for _, p := range points {
		enc.floats(p.X, p.Y)
		if dims == 3 {
			enc.floats(p.Z)
		}
	}
}
