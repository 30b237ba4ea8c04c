package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pivolan/chart_series/model"
	"github.com/pivolan/chart_series/series"
)

func TestExportHTML(t *testing.T) {
	m := model.New("Sales")
	m.AddSeries(
		series.NewLineSeries("revenue", []float64{1, 2, 3}, []float64{10, 20, 15}),
		series.NewPieSeries("shares", []series.PieValue{
			{Label: "a", Value: 1},
			{Label: "b", Value: 2},
		}),
	)
	m.Update()

	buffer := bytes.NewBuffer([]byte{})
	err := ExportHTML(m, buffer)
	assert.NoError(t, err)

	html := buffer.String()
	assert.Contains(t, html, "revenue")
	assert.Contains(t, html, "shares")
}

func TestExportHTMLSkipsHidden(t *testing.T) {
	m := model.New("Sales")
	hidden := series.NewLineSeries("secret", []float64{1}, []float64{1})
	hidden.Hidden = true
	m.AddSeries(hidden)
	m.Update()

	buffer := bytes.NewBuffer([]byte{})
	err := ExportHTML(m, buffer)
	assert.NoError(t, err)
	assert.NotContains(t, buffer.String(), "secret")
}
