package dxf_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/dxf"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/internal/sample"
)

const (
	header = "0\nSECTION\n2\nHEADER\n9\n$ACADVER\n1\nAC1009\n0\nENDSEC\n0\nSECTION\n2\nENTITIES\n"
	footer = "0\nENDSEC\n0\nEOF\n"
)

func TestEncode_Line(t *testing.T) {
	var buf bytes.Buffer
	err := dxf.Encode(&buf, []entities.Entity{
		&entities.Line{Start: core.Point{X: 0, Y: 0}, End: core.Point{X: 100, Y: 100}},
	})
	require.NoError(t, err)

	want := header +
		"0\nLINE\n8\n0\n10\n0.0\n20\n0.0\n11\n100.0\n21\n100.0\n" +
		footer
	assert.Equal(t, want, buf.String())
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dxf.Encode(&buf, nil))
	assert.Equal(t, header+footer, buf.String())
}

func TestEncode_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, dxf.Encode(&a, sample.Entities()))
	require.NoError(t, dxf.Encode(&b, sample.Entities()))
	assert.Equal(t, a.String(), b.String())
}

func TestEncode_BlockAndAttributes(t *testing.T) {
	inner := sample.Block("INNER")
	outer := &entities.Block{
		Name: "OUTER",
		Entities: []entities.Entity{
			inner,
			&entities.Insert{BlockName: "INNER", Scale: core.Point{X: 1, Y: 1, Z: 1}},
		},
	}
	ins := &entities.Insert{BlockName: "OUTER", Scale: core.Point{X: 1, Y: 1, Z: 1}}
	ins.AddAttribute(&entities.Attrib{Tag: "NO", Text: "1"})

	var buf bytes.Buffer
	require.NoError(t, dxf.Encode(&buf, []entities.Entity{outer, ins}))
	out := buf.String()

	// 内层块先于外层块写出
	assert.Less(t, strings.Index(out, "2\nINNER\n70"), strings.Index(out, "2\nOUTER\n70"))
	assert.Equal(t, 2, strings.Count(out, "0\nENDBLK\n"))
	assert.Contains(t, out, "66\n1\n0\nATTRIB\n")
	assert.Contains(t, out, "0\nSEQEND\n")
}

func TestEncode_SanitizesNewlines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dxf.Encode(&buf, []entities.Entity{
		&entities.XRef{BaseEntity: entities.BaseEntity{LayerName: "a\nb"}, Path: "x\r\ny"},
	}))
	assert.Contains(t, buf.String(), "8\na b\n")
	assert.Contains(t, buf.String(), "1\nx y\n")
}

func TestWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	w := dxf.NewWriter(&buf)
	require.NoError(t, w.WriteEntity(&entities.Point{}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	assert.ErrorIs(t, w.WriteEntity(&entities.Point{}), dxf.ErrWriterClosed)
	assert.True(t, strings.HasSuffix(buf.String(), footer))
	assert.Equal(t, 1, strings.Count(buf.String(), footer))
}

type failWriter struct{}

var errSink = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWriter_SinkError(t *testing.T) {
	err := dxf.Encode(failWriter{}, sample.Entities())
	assert.ErrorIs(t, err, errSink)
}
