// Package cad2pdf 把图形文件转换成单页 PDF：
// 二进制记录先解码再编码成文本格式，文本格式解析成实体后按页面缩放、居中并绘制
package cad2pdf

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zooyer/cad2pdf/canvas"
	"github.com/zooyer/cad2pdf/config"
	"github.com/zooyer/cad2pdf/dxf"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/logging"
	"github.com/zooyer/cad2pdf/records"
	"github.com/zooyer/cad2pdf/render"
	"github.com/zooyer/cad2pdf/utils"
)

// 转换阶段，用于 ConversionError
const (
	StageDecode = "decode"
	StageEncode = "encode"
	StageParse  = "parse"
	StageRender = "render"
	StageWrite  = "write"
)

// ConversionError 转换失败的阶段和原因
type ConversionError struct {
	Stage string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cad2pdf: %s: %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

type Options struct {
	PageWidth      float64 // 单位：点
	PageHeight     float64
	MaxBlockDepth  int
	MaxExpansions  int
	InsertRotation bool
	ByteOrder      binary.ByteOrder
}

// DefaultOptions A4 纵向
func DefaultOptions() Options {
	return Options{
		PageWidth:     595.276,
		PageHeight:    841.89,
		MaxBlockDepth: render.DefaultMaxDepth,
		MaxExpansions: render.DefaultMaxExpansions,
		ByteOrder:     binary.LittleEndian,
	}
}

func OptionsFrom(cfg *config.Config) (Options, error) {
	order, err := cfg.Order()
	if err != nil {
		return Options{}, err
	}
	return Options{
		PageWidth:      cfg.PageWidth,
		PageHeight:     cfg.PageHeight,
		MaxBlockDepth:  cfg.MaxBlockDepth,
		MaxExpansions:  cfg.MaxExpansions,
		InsertRotation: cfg.InsertRotation,
		ByteOrder:      order,
	}, nil
}

type Result struct {
	Document *dxf.Document
	Entities []entities.Entity
	Blocks   *entities.Registry
	Scale    float64
	OffsetX  float64
	OffsetY  float64
	Skipped  int                            // 解析时跳过的非法字段数
	Unknown  *records.UnknownRecordTypeError // 二进制流在未知记录处停止
}

// Convert 读取 r 并绘制到 c。ctx 只在阶段之间检查。
// 出错时返回已完成阶段的结果，画布上可能已有部分输出
func Convert(ctx context.Context, r io.Reader, format Format, c canvas.Canvas, opt Options) (*Result, error) {
	res := &Result{}

	if format == Binary {
		text, err := res.transcode(r, opt)
		if err != nil {
			return res, err
		}
		r = text
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	doc, err := dxf.Load(r)
	if err != nil {
		return res, &ConversionError{Stage: StageParse, Err: err}
	}
	res.Document = doc
	res.Entities = doc.Entities
	res.Blocks = doc.Blocks
	res.Skipped = doc.Skipped

	if err = ctx.Err(); err != nil {
		return res, err
	}

	res.Scale = utils.CalculateScale(doc.Entities, opt.PageWidth, opt.PageHeight)
	res.OffsetX, res.OffsetY = utils.PageOffset(doc.Entities, res.Scale, opt.PageWidth, opt.PageHeight)

	rd := render.New(c, doc.Blocks,
		render.WithMaxDepth(opt.MaxBlockDepth),
		render.WithMaxExpansions(opt.MaxExpansions),
		render.WithInsertRotation(opt.InsertRotation),
		render.WithDimPrecision(doc.Precisions()),
	)
	if err = rd.RenderAll(doc.Entities, res.Scale, res.OffsetX, res.OffsetY); err != nil {
		return res, &ConversionError{Stage: StageRender, Err: err}
	}

	logging.Logger().Debug("conversion finished",
		"format", format,
		"entities", len(doc.Entities),
		"blocks", doc.Blocks.Len(),
		"scale", res.Scale,
		"skipped", res.Skipped,
	)
	return res, nil
}

// transcode 二进制记录 → 文本格式
func (res *Result) transcode(r io.Reader, opt Options) (io.Reader, error) {
	var opts []records.Option
	if opt.ByteOrder != nil {
		opts = append(opts, records.WithByteOrder(opt.ByteOrder))
	}
	if opt.MaxBlockDepth > 0 {
		opts = append(opts, records.WithMaxDepth(opt.MaxBlockDepth))
	}

	dec := records.NewDecoder(r, opts...)
	ents, err := dec.Decode()
	if err != nil {
		return nil, &ConversionError{Stage: StageDecode, Err: err}
	}
	res.Unknown = dec.Unknown()

	var buf bytes.Buffer
	if err = dxf.Encode(&buf, ents); err != nil {
		return nil, &ConversionError{Stage: StageEncode, Err: err}
	}
	return &buf, nil
}

// ConvertToPDF 转换并把 PDF 写入 w。失败时 w 中可能有部分内容
func ConvertToPDF(ctx context.Context, r io.Reader, format Format, w io.Writer, opt Options) (*Result, error) {
	c, err := canvas.NewPDF(w, opt.PageWidth, opt.PageHeight)
	if err != nil {
		return nil, &ConversionError{Stage: StageWrite, Err: err}
	}

	res, err := Convert(ctx, r, format, c, opt)
	if err != nil {
		return res, err
	}

	if err = c.Close(); err != nil {
		return res, &ConversionError{Stage: StageWrite, Err: err}
	}
	return res, nil
}
