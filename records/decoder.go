// Package records 读写二进制图形记录流：每条记录以一个类型字节开头，
// 后跟定长的 8 字节双精度数、4 字节有符号整数以及带长度前缀的文本/数据块。
package records

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/logging"
)

// 预分配顶点/单元格切片的上限，更多的数据随读随扩
const maxPrealloc = 1024

// Decoder 从字节流中逐条解码记录
type Decoder struct {
	r       *bufio.Reader
	opts    options
	offset  int64
	start   int64  // 当前记录的起始偏移
	record  string // 当前记录类型名
	unknown *UnknownRecordTypeError
	buf     [8]byte
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{
		r:    bufio.NewReader(r),
		opts: newOptions(opts),
	}
}

// Decode 解码整个流并返回实体
func Decode(r io.Reader, opts ...Option) ([]entities.Entity, error) {
	return NewDecoder(r, opts...).Decode()
}

// Decode 读到流结束或遇到未知类型字节为止。
// 出错时同时返回已解码的实体
func (d *Decoder) Decode() ([]entities.Entity, error) {
	var ents []entities.Entity
	for {
		e, err := d.next(0)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ents, err
		}
		if e != nil {
			ents = append(ents, e)
		}
		// 未知类型可能出现在块内部，之后的字节不再解析
		if e == nil || d.unknown != nil {
			break
		}
	}

	logging.Logger().Debug("binary records decoded", "entities", len(ents), "bytes", d.offset)
	return ents, nil
}

// Unknown 解码因未知类型字节停止时返回对应信息，否则为 nil
func (d *Decoder) Unknown() *UnknownRecordTypeError {
	return d.unknown
}

// Offset 已读取的字节数
func (d *Decoder) Offset() int64 {
	return d.offset
}

// next 解码一条记录，流在记录边界结束时返回 io.EOF，未知类型返回 nil 实体
func (d *Decoder) next(depth int) (entities.Entity, error) {
	tag, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}
	d.start = d.offset
	d.offset++

	name, ok := names[tag]
	if !ok {
		d.unknown = &UnknownRecordTypeError{Tag: tag, Offset: d.start}
		logging.Logger().Debug("stop at unknown record type", "tag", tag, "offset", d.start)
		return nil, nil
	}
	d.record = name

	base := entities.BaseEntity{LayerName: entities.DefaultLayer}

	switch tag {
	case TagLine:
		e := &entities.Line{BaseEntity: base}
		return e, d.floats(&e.Start.X, &e.Start.Y, &e.End.X, &e.End.Y)
	case TagCircle:
		e := &entities.Circle{BaseEntity: base}
		return e, d.floats(&e.Center.X, &e.Center.Y, &e.Radius)
	case TagArc:
		e := &entities.Arc{BaseEntity: base}
		return e, d.floats(&e.Center.X, &e.Center.Y, &e.Radius, &e.StartAngle, &e.EndAngle)
	case TagPoint:
		e := &entities.Point{BaseEntity: base}
		return e, d.floats(&e.Location.X, &e.Location.Y)
	case TagPolyline:
		e := &entities.LWPolyline{BaseEntity: base}
		e.Vertices, err = d.points(2)
		return e, err
	case TagEllipse:
		e := &entities.Ellipse{BaseEntity: base}
		return e, d.floats(&e.Center.X, &e.Center.Y, &e.MajorAxis.X, &e.MajorAxis.Y, &e.Ratio, &e.StartParam, &e.EndParam)
	case TagSolid:
		e := &entities.Solid{BaseEntity: base}
		c := &e.Corners
		return e, d.floats(&c[0].X, &c[0].Y, &c[1].X, &c[1].Y, &c[2].X, &c[2].Y, &c[3].X, &c[3].Y)
	case TagText:
		e := &entities.Text{BaseEntity: base}
		if err = d.floats(&e.Position.X, &e.Position.Y, &e.Height); err != nil {
			return nil, err
		}
		e.Value, err = d.text()
		return e, err
	case TagTolerance:
		e := &entities.Tolerance{BaseEntity: base}
		if err = d.floats(&e.Position.X, &e.Position.Y, &e.Height); err != nil {
			return nil, err
		}
		e.Value, err = d.text()
		return e, err
	case TagMText:
		e := &entities.MText{BaseEntity: base}
		if err = d.floats(&e.Position.X, &e.Position.Y, &e.Height, &e.Width); err != nil {
			return nil, err
		}
		e.Value, err = d.text()
		return e, err
	case TagDimension:
		return d.dimension(base)
	case TagLeader:
		e := &entities.Leader{BaseEntity: base}
		if e.Vertices, err = d.points(2); err != nil {
			return nil, err
		}
		if err = d.floats(&e.TextAnchor.X, &e.TextAnchor.Y); err != nil {
			return nil, err
		}
		e.Value, err = d.text()
		return e, err
	case TagTable:
		return d.table(base)
	case TagBlock:
		return d.block(base, depth)
	case TagInsert:
		e := &entities.Insert{BaseEntity: base, Scale: core.Point{Z: 1}}
		if e.BlockName, err = d.text(); err != nil {
			return nil, err
		}
		return e, d.floats(&e.InsertionPoint.X, &e.InsertionPoint.Y, &e.Scale.X, &e.Scale.Y, &e.Rotation)
	case TagAttrib:
		e := &entities.Attrib{BaseEntity: base}
		for _, dst := range []*string{&e.Tag, &e.Prompt, &e.Text} {
			if *dst, err = d.text(); err != nil {
				return nil, err
			}
		}
		return e, d.floats(&e.Location.X, &e.Location.Y, &e.Height)
	case TagXRef:
		e := &entities.XRef{BaseEntity: base}
		if e.Path, err = d.text(); err != nil {
			return nil, err
		}
		return e, d.floats(&e.Position.X, &e.Position.Y)
	case TagWipeout:
		e := &entities.Wipeout{BaseEntity: base}
		e.Vertices, err = d.points(2)
		return e, err
	case Tag3DFace:
		e := &entities.Face3D{BaseEntity: base}
		for i := range e.Corners {
			c := &e.Corners[i]
			if err = d.floats(&c.X, &c.Y, &c.Z); err != nil {
				return nil, err
			}
		}
		return e, nil
	case TagPolyfaceMesh:
		e := &entities.Polyface{BaseEntity: base}
		e.Vertices, err = d.points(3)
		return e, err
	case TagMesh:
		e := &entities.Mesh{BaseEntity: base}
		if e.Level, err = d.integer(); err != nil {
			return nil, err
		}
		e.Vertices, err = d.points(3)
		return e, err
	case Tag3DSolid:
		e := &entities.Solid3D{BaseEntity: base}
		if err = d.floats(&e.Min.X, &e.Min.Y, &e.Min.Z, &e.Max.X, &e.Max.Y, &e.Max.Z); err != nil {
			return nil, err
		}
		e.Data, err = d.blob()
		return e, err
	case TagSurface:
		e := &entities.Surface{BaseEntity: base}
		if err = d.ints(&e.SurfaceType, &e.UIsolines, &e.VIsolines, &e.Version); err != nil {
			return nil, err
		}
		e.Data, err = d.blob()
		return e, err
	case TagBody:
		e := &entities.Body{BaseEntity: base}
		if err = d.ints(&e.Version, &e.Flags); err != nil {
			return nil, err
		}
		e.Data, err = d.blob()
		return e, err
	case TagRegion:
		e := &entities.Region{BaseEntity: base}
		if e.Vertices, err = d.points(2); err != nil {
			return nil, err
		}
		var flag [1]byte
		if err = d.read(flag[:]); err != nil {
			return nil, err
		}
		e.Filled = flag[0] != 0
		return e, nil
	}

	return nil, fmt.Errorf("records: no decoder for %s", name)
}

func (d *Decoder) dimension(base entities.BaseEntity) (entities.Entity, error) {
	e := &entities.Dimension{BaseEntity: base}

	var kind [1]byte
	if err := d.read(kind[:]); err != nil {
		return nil, err
	}
	e.DimType = int(kind[0])

	err := d.floats(
		&e.DefPoint.X, &e.DefPoint.Y,
		&e.MeasureStart.X, &e.MeasureStart.Y,
		&e.MeasureEnd.X, &e.MeasureEnd.Y,
		&e.ActualMeasurement,
	)
	return e, err
}

func (d *Decoder) table(base entities.BaseEntity) (entities.Entity, error) {
	e := &entities.Table{BaseEntity: base}
	if err := d.floats(&e.Position.X, &e.Position.Y); err != nil {
		return nil, err
	}
	if err := d.ints(&e.Rows, &e.Columns); err != nil {
		return nil, err
	}
	if e.Rows < 0 || e.Columns < 0 {
		return nil, d.negative(min(e.Rows, e.Columns))
	}
	if err := d.floats(&e.RowHeight, &e.ColumnWidth); err != nil {
		return nil, err
	}

	cells := int64(e.Rows) * int64(e.Columns)
	e.Cells = make([]string, 0, min(cells, maxPrealloc))
	for i := int64(0); i < cells; i++ {
		s, err := d.text()
		if err != nil {
			return nil, err
		}
		e.Cells = append(e.Cells, s)
	}
	return e, nil
}

// block 解码块头后，按子实体数量递归解码随后的记录
func (d *Decoder) block(base entities.BaseEntity, depth int) (entities.Entity, error) {
	if depth >= d.opts.maxDepth {
		return nil, fmt.Errorf("%w: offset %d, limit %d", ErrNestingTooDeep, d.start, d.opts.maxDepth)
	}

	b := &entities.Block{BaseEntity: base}
	var err error
	if b.Name, err = d.text(); err != nil {
		return nil, err
	}
	if err = d.floats(&b.Base.X, &b.Base.Y); err != nil {
		return nil, err
	}
	count, err := d.length()
	if err != nil {
		return nil, err
	}

	start := d.start
	for i := 0; i < count; i++ {
		child, err := d.next(depth + 1)
		if errors.Is(err, io.EOF) {
			return nil, &TruncatedStreamError{Offset: start, Record: "BLOCK", Want: 1, Got: 0}
		}
		if err != nil {
			return nil, err
		}
		if child != nil {
			b.Entities = append(b.Entities, child)
		}
		if child == nil || d.unknown != nil {
			// 未知类型：块保留已解码的子实体，整个流停止
			break
		}
	}
	return b, nil
}

func (d *Decoder) read(p []byte) error {
	n, err := io.ReadFull(d.r, p)
	d.offset += int64(n)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return d.truncated(int64(len(p)), int64(n))
	}
	return err
}

func (d *Decoder) truncated(want, got int64) error {
	return &TruncatedStreamError{Offset: d.start, Record: d.record, Want: want, Got: got}
}

func (d *Decoder) negative(n int) error {
	return fmt.Errorf("%w: %s record at offset %d: %d", ErrNegativeLength, d.record, d.start, n)
}

func (d *Decoder) float() (float64, error) {
	if err := d.read(d.buf[:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(d.opts.order.Uint64(d.buf[:8])), nil
}

func (d *Decoder) floats(dst ...*float64) (err error) {
	for _, p := range dst {
		if *p, err = d.float(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) integer() (int, error) {
	if err := d.read(d.buf[:4]); err != nil {
		return 0, err
	}
	return int(int32(d.opts.order.Uint32(d.buf[:4]))), nil
}

func (d *Decoder) ints(dst ...*int) (err error) {
	for _, p := range dst {
		if *p, err = d.integer(); err != nil {
			return err
		}
	}
	return nil
}

// length 读取长度/计数前缀，拒绝负数
func (d *Decoder) length() (int, error) {
	n, err := d.integer()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, d.negative(n)
	}
	return n, nil
}

// blob 读取带长度前缀的数据块，按实际到达的字节增长缓冲区
func (d *Decoder) blob() ([]byte, error) {
	n, err := d.length()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	got, err := io.CopyN(&buf, d.r, int64(n))
	d.offset += got
	if errors.Is(err, io.EOF) {
		return nil, d.truncated(int64(n), got)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Decoder) text() (string, error) {
	b, err := d.blob()
	return string(b), err
}

func (d *Decoder) points(dims int) ([]core.Point, error) {
	n, err := d.length()
	if err != nil {
		return nil, err
	}

	points := make([]core.Point, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		var p core.Point
		if dims == 3 {
			err = d.floats(&p.X, &p.Y, &p.Z)
		} else {
			err = d.floats(&p.X, &p.Y)
		}
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}
