package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/chart_series/model"
	"github.com/pivolan/chart_series/series"
)

// ExportHTML пишет интерактивную HTML-страницу с одним echarts-графиком на
// каждую видимую серию модели. Это превью для браузера, попиксельная
// точность с PNG-рендером не цель.
func ExportHTML(m *model.Model, w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = m.Title

	for i, s := range m.Series() {
		if !s.IsVisible() {
			continue
		}
		name := s.GetTitle()
		if name == "" {
			name = fmt.Sprintf("series_%d", i)
		}

		switch v := s.(type) {
		case *series.LineSeries:
			line := charts.NewLine()
			line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: m.Title}))
			xs, ys := splitPoints(v.ValidPoints())
			data := make([]opts.LineData, len(ys))
			for j, y := range ys {
				data[j] = opts.LineData{Value: y}
			}
			line.SetXAxis(xs).AddSeries(name, data)
			page.AddCharts(line)
		case *series.ScatterSeries:
			scatter := charts.NewScatter()
			scatter.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: m.Title}))
			xs, ys := splitPoints(v.ValidPoints())
			data := make([]opts.ScatterData, len(ys))
			for j, y := range ys {
				data[j] = opts.ScatterData{Value: y}
			}
			scatter.SetXAxis(xs).AddSeries(name, data)
			page.AddCharts(scatter)
		case *series.BarSeries:
			bar := charts.NewBar()
			bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: m.Title}))
			xs, ys := splitPoints(v.ValidPoints())
			data := make([]opts.BarData, len(ys))
			for j, y := range ys {
				data[j] = opts.BarData{Value: y}
			}
			bar.SetXAxis(xs).AddSeries(name, data)
			page.AddCharts(bar)
		case *series.PieSeries:
			pie := charts.NewPie()
			pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: m.Title}))
			values := v.ValidValues()
			data := make([]opts.PieData, len(values))
			for j, pv := range values {
				data[j] = opts.PieData{Name: pv.Label, Value: pv.Value}
			}
			pie.AddSeries(name, data)
			page.AddCharts(pie)
		default:
			// неизвестный вариант серии в превью не попадает
		}
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("error rendering echarts page: %v", err)
	}
	return nil
}

func splitPoints(points []series.Point) ([]string, []float64) {
	xs := make([]string, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = fmt.Sprintf("%g", p.X)
		ys[i] = p.Y
	}
	return xs, ys
}
