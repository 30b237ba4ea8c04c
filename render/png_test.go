package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pivolan/chart_series/model"
	"github.com/pivolan/chart_series/series"
)

func TestRenderModelToPNG(t *testing.T) {
	m := model.New("Test Chart")
	m.AddSeries(
		series.NewLineSeries("line", []float64{0, 1, 2, 3}, []float64{1, 3, 2, 5}),
		series.NewBarSeries("bars", []float64{0, 1, 2, 3}, []float64{2, 4, 1, 3}),
	)
	m.Update()
	m.ApplyDefaults()

	ctx, err := NewPNGContext(m.Width, m.Height)
	assert.NoError(t, err)

	m.Render(ctx)

	buffer := bytes.NewBuffer([]byte{})
	err = ctx.Save(buffer)
	assert.NoError(t, err)
	assert.NotEmpty(t, buffer.Bytes())

	err = os.WriteFile(filepath.Join(t.TempDir(), "output.png"), buffer.Bytes(), 0655)
	assert.NoError(t, err)
}

func TestRenderPieToPNG(t *testing.T) {
	m := model.New("Doli")
	m.AddSeries(series.NewPieSeries("doli", []series.PieValue{
		{Label: "a", Value: 3},
		{Label: "b", Value: 7},
	}))
	m.Update()
	m.ApplyDefaults()

	ctx, err := NewPNGContext(m.Width, m.Height)
	assert.NoError(t, err)
	m.Render(ctx)

	buffer := bytes.NewBuffer([]byte{})
	assert.NoError(t, ctx.Save(buffer))
	assert.NotEmpty(t, buffer.Bytes())
}

func TestHiddenSeriesNotRendered(t *testing.T) {
	m := model.New("chart")
	s := series.NewLineSeries("h", []float64{0, 1}, []float64{0, 1})
	s.Hidden = true
	m.AddSeries(s)
	m.Update()

	ctx, err := NewPNGContext(m.Width, m.Height)
	assert.NoError(t, err)
	// скрытая серия не должна уронить отрисовку пустой модели
	m.Render(ctx)

	buffer := bytes.NewBuffer([]byte{})
	assert.NoError(t, ctx.Save(buffer))
	assert.NotEmpty(t, buffer.Bytes())
}
