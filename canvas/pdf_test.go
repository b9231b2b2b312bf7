package canvas_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/cad2pdf/canvas"
)

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	c, err := canvas.NewPDF(&buf, 595, 842)
	require.NoError(t, err)

	c.SaveState()
	c.SetStrokeColor(canvas.Gray)
	c.SetLineWidth(0.5)
	c.SetLineDash([]float64{3, 3}, 0)
	c.MoveTo(10, 10)
	c.LineTo(100, 100)
	c.Stroke()
	c.RestoreState()

	c.Circle(200, 200, 50)
	c.Arc(200, 200, 60, 270, 90)
	c.Ellipse(300, 300, 40, 20, math.Pi/6, 0, 2*math.Pi)
	c.Stroke()

	c.SetFillColor(canvas.White)
	c.Rectangle(50, 50, 20, 10)
	c.FillAndStroke()
	c.AddText(60, 60, "Label", 10)
	require.NoError(t, c.Err())

	require.NoError(t, c.Close())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-1.7")))
	assert.Contains(t, buf.String(), "%%EOF")

	c.MoveTo(0, 0)
	assert.ErrorIs(t, c.Err(), canvas.ErrClosed)
}

func TestPDF_InvalidSize(t *testing.T) {
	_, err := canvas.NewPDF(&bytes.Buffer{}, 0, 100)
	assert.Error(t, err)
}

func TestPDF_Underflow(t *testing.T) {
	c, err := canvas.NewPDF(&bytes.Buffer{}, 100, 100)
	require.NoError(t, err)
	c.RestoreState()
	assert.ErrorIs(t, c.Err(), canvas.ErrStateUnderflow)
}
