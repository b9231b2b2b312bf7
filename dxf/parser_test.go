package dxf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/dxf"
	"github.com/zooyer/cad2pdf/entities"
	"github.com/zooyer/cad2pdf/internal/sample"
)

// lines 把组码/值对拼成文件内容
func lines(pairs ...string) string {
	return strings.Join(pairs, "\n") + "\n"
}

func load(t *testing.T, s string) *dxf.Document {
	t.Helper()
	doc, err := dxf.Load(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestLoad_Circle(t *testing.T) {
	doc := load(t, lines("0", "CIRCLE", "8", "0", "10", "50.0", "20", "50.0", "40", "25.0"))

	require.Len(t, doc.Entities, 1)
	c, ok := doc.Entities[0].(*entities.Circle)
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 50, Y: 50}, c.Center)
	assert.Equal(t, 25.0, c.Radius)
	assert.Equal(t, "0", c.Layer())
}

func TestRoundTrip(t *testing.T) {
	want := sample.Entities()

	var buf bytes.Buffer
	require.NoError(t, dxf.Encode(&buf, want))

	doc, err := dxf.Load(&buf)
	require.NoError(t, err)
	assert.Zero(t, doc.Skipped)
	assert.Equal(t, "AC1009", doc.Header["$ACADVER"])

	opts := cmp.Options{cmpopts.EquateEmpty(), cmpopts.EquateApprox(0, 1e-6)}
	if diff := cmp.Diff(want, doc.Entities, opts); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_Blocks(t *testing.T) {
	inner := sample.Block("INNER")
	outer := &entities.Block{
		BaseEntity: entities.BaseEntity{LayerName: "0"},
		Name:       "OUTER",
		Base:       core.Point{X: 1, Y: 2},
		Entities: []entities.Entity{
			inner,
			&entities.Insert{BaseEntity: entities.BaseEntity{LayerName: "0"}, BlockName: "INNER", Scale: core.Point{X: 1, Y: 1, Z: 1}},
		},
	}
	ins := &entities.Insert{BaseEntity: entities.BaseEntity{LayerName: "0"}, BlockName: "OUTER", InsertionPoint: core.Point{X: 100, Y: 100}, Scale: core.Point{X: 1, Y: 1, Z: 1}}

	var buf bytes.Buffer
	require.NoError(t, dxf.Encode(&buf, []entities.Entity{outer, ins}))
	doc, err := dxf.Load(&buf)
	require.NoError(t, err)

	// 块定义不出现在顶层实体中
	if diff := cmp.Diff([]entities.Entity{ins}, doc.Entities); diff != "" {
		t.Errorf("entities mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"INNER", "OUTER"}, doc.Blocks.Names())

	got, ok := doc.Blocks.Lookup("INNER")
	require.True(t, ok)
	if diff := cmp.Diff(inner, got); diff != "" {
		t.Errorf("inner block mismatch (-want +got):\n%s", diff)
	}

	got, ok = doc.Blocks.Lookup("OUTER")
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 1, Y: 2}, got.Base)
	require.Len(t, got.Entities, 1)
	assert.Equal(t, "INSERT", got.Entities[0].Type())
}

func TestLoad_MalformedField(t *testing.T) {
	doc := load(t, lines(
		"0", "CIRCLE", "10", "1", "20", "1", "40", "5",
		"0", "CIRCLE", "10", "2", "20", "2", "40", "NaN",
		"0", "CIRCLE", "10", "3", "20", "", "40", "5",
		"0", "CIRCLE", "10", "4", "20", "4", "40", "1e999",
		"0", "LWPOLYLINE", "70", "99999999999", "10", "0", "20", "0",
	))

	assert.Len(t, doc.Entities, 5)
	assert.Equal(t, 4, doc.Skipped)
	assert.Equal(t, 0.0, doc.Entities[1].(*entities.Circle).Radius)
	assert.Equal(t, 0.0, doc.Entities[2].(*entities.Circle).Center.Y)
	assert.Len(t, doc.Entities[4].(*entities.LWPolyline).Vertices, 1)
}

func TestLoad_MalformedCode(t *testing.T) {
	doc := load(t, lines(
		"0", "POINT", "abc", "junk", "10", "1", "20", "2",
		"99999999999", "x", "0", "POINT",
	))
	assert.Len(t, doc.Entities, 2)
	assert.Equal(t, 2, doc.Skipped)
	assert.Equal(t, core.Point{X: 1, Y: 2}, doc.Entities[0].(*entities.Point).Location)
}

func TestLoad_Tolerance(t *testing.T) {
	s := "\uFEFF0\r\nSECTION\r\n2\r\nENTITIES\r\n\r\n0\r\nLINE\r\n10\r\n1\r\n20\r\n2\r\n11\r\n3\r\n21\r\n4\r\n0\r\nENDSEC\r\n0\r\nEOF"
	doc := load(t, s)
	require.Len(t, doc.Entities, 1)
	l := doc.Entities[0].(*entities.Line)
	assert.Equal(t, core.Point{X: 3, Y: 4}, l.End)
}

func TestLoad_IgnoresUnknown(t *testing.T) {
	doc := load(t, lines(
		"0", "SECTION", "2", "ENTITIES",
		"0", "SPLINE", "10", "1", "20", "1", "40", "oops",
		"0", "POINT", "10", "1", "20", "1",
		"0", "SPLINE",
		"0", "ENDSEC",
		"0", "SECTION", "2", "OBJECTS",
		"0", "DICTIONARY", "3", "ACAD_GROUP",
		"0", "ENDSEC",
		"0", "EOF",
	))
	assert.Len(t, doc.Entities, 1)
	assert.Equal(t, map[string]int{"SPLINE": 2}, doc.Ignored)
	assert.Zero(t, doc.Skipped)
}

func TestLoad_StopsAtEOF(t *testing.T) {
	doc := load(t, lines("0", "POINT", "10", "1", "20", "1", "0", "EOF", "0", "POINT"))
	assert.Len(t, doc.Entities, 1)
}

func TestLoad_Polyline(t *testing.T) {
	doc := load(t, lines(
		"0", "POLYLINE", "8", "PL", "66", "1", "10", "0", "20", "0", "70", "1",
		"0", "VERTEX", "8", "PL", "10", "0", "20", "0",
		"0", "VERTEX", "10", "10", "20", "0",
		"0", "VERTEX", "10", "10",
		"0", "VERTEX", "10", "10", "20", "10",
		"0", "SEQEND", "8", "PL",
		"0", "POINT",
	))

	require.Len(t, doc.Entities, 2)
	want := &entities.LWPolyline{
		BaseEntity: entities.BaseEntity{LayerName: "PL"},
		Vertices:   []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		Closed:     true,
	}
	if diff := cmp.Diff(want, doc.Entities[0]); diff != "" {
		t.Errorf("polyline mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Attributes(t *testing.T) {
	doc := load(t, lines(
		"0", "INSERT", "2", "TK", "10", "5", "20", "5", "66", "1",
		"0", "ATTRIB", "2", "NO", "1", "A-01", "10", "6", "20", "6",
		"0", "ATTRIB", "2", "NAME", "1", "pump",
		"0", "SEQEND",
		"0", "ATTRIB", "2", "LOOSE",
		"0", "INSERT", "2", "TK",
	))

	require.Len(t, doc.Entities, 3)
	ins := doc.Entities[0].(*entities.Insert)
	require.Len(t, ins.Attributes, 2)
	assert.Equal(t, "A-01", ins.Attributes[0].Text)
	assert.Equal(t, core.Point{X: 6, Y: 6}, ins.Attributes[0].Location)
	assert.Equal(t, "pump", ins.Attributes[1].Text)

	assert.Equal(t, "LOOSE", doc.Entities[1].(*entities.Attrib).Tag)
	assert.Empty(t, doc.Entities[2].(*entities.Insert).Attributes)
}

func TestLoad_Blocks(t *testing.T) {
	doc := load(t, lines(
		"0", "SECTION", "2", "BLOCKS",
		"0", "BLOCK", "2", "A", "10", "1", "20", "1",
		"0", "LINE", "10", "0", "20", "0", "11", "1", "21", "1",
		"0", "ENDBLK",
		"0", "BLOCK", "2", "a",
		"0", "ENDBLK",
		"0", "BLOCK", "2", "A",
		"0", "POINT",
		"0", "POINT",
		"0", "ENDBLK",
		"0", "ENDSEC",
		"0", "SECTION", "2", "ENTITIES",
		"0", "BLOCK", "2", "OPEN",
		"0", "CIRCLE", "40", "1",
	))

	assert.Empty(t, doc.Entities)
	assert.Equal(t, []string{"A", "OPEN", "a"}, doc.Blocks.Names())

	a, _ := doc.Blocks.Lookup("A")
	assert.Len(t, a.Entities, 2, "重名时后定义的生效")

	open, ok := doc.Blocks.Lookup("OPEN")
	require.True(t, ok, "未闭合的块仍然登记")
	assert.Len(t, open.Entities, 1)
}

func TestLoad_DimStyles(t *testing.T) {
	doc := load(t, lines(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER", "70", "1",
		"0", "LAYER", "2", "WALL",
		"0", "ENDTAB",
		"0", "TABLE", "2", "DIMSTYLE", "70", "2",
		"0", "DIMSTYLE", "2", "Standard", "271", "2", "44", "1.25",
		"0", "DIMSTYLE", "2", "ISO-25", "271", "bad", "40", "100",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "EOF",
	))

	require.Len(t, doc.DimStyles, 2)
	assert.Equal(t, &dxf.DimStyle{Name: "STANDARD", Precision: 2, ExLimit: 1.25, Scale: 1}, doc.DimStyles["STANDARD"])
	assert.Equal(t, &dxf.DimStyle{Name: "ISO-25", Precision: 0, Scale: 100}, doc.DimStyles["ISO-25"])
	assert.Equal(t, 1, doc.Skipped)

	assert.Equal(t, "STANDARD", doc.DimStyle("MISSING").Name)
	assert.Equal(t, map[string]int{"STANDARD": 2, "ISO-25": 0}, doc.Precisions())
}

func TestLoad_Header(t *testing.T) {
	doc := load(t, lines(
		"0", "SECTION", "2", "HEADER",
		"9", "$ACADVER", "1", "AC1015",
		"9", "$EXTMIN", "10", "-5", "20", "-6",
		"0", "ENDSEC",
	))
	assert.Equal(t, map[string]string{"$ACADVER": "AC1015", "$EXTMIN": "-5"}, doc.Header)
}

func TestLoad_Codepage(t *testing.T) {
	value, err := simplifiedchinese.GBK.NewEncoder().String("中文标注")
	require.NoError(t, err)

	doc := load(t, lines(
		"0", "SECTION", "2", "HEADER", "9", "$DWGCODEPAGE", "3", "ANSI_936", "0", "ENDSEC",
		"0", "SECTION", "2", "ENTITIES",
		"0", "TEXT", "1", value,
		"0", "ENDSEC",
	))

	require.Len(t, doc.Entities, 1)
	assert.Equal(t, "中文标注", doc.Entities[0].(*entities.Text).Value)
}

func TestLoad_LineTooLong(t *testing.T) {
	s := lines("0", "TEXT", "1", strings.Repeat("x", core.MaxLineLength+1))
	_, err := dxf.Load(strings.NewReader(s))
	assert.ErrorIs(t, err, core.ErrLineTooLong)
}

func TestOpen_Missing(t *testing.T) {
	_, err := dxf.Open("testdata/does-not-exist.dxf")
	assert.Error(t, err)
}
