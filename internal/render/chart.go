package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/guptarohit/asciigraph"
)

const (
	chartWidth  = "900px"
	chartHeight = "480px"
)

// ValuesChart plots array values left to right. Empty input gives "".
func ValuesChart(values []int, width, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// CompareChart writes an HTML bar chart of step counts per algorithm.
func CompareChart(w io.Writer, rows []Row) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "sortscope",
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Recorded operations",
			Subtitle: "Same input, one bar group per algorithm",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	names := make([]string, len(rows))
	steps := make([]opts.BarData, len(rows))
	compares := make([]opts.BarData, len(rows))
	writes := make([]opts.BarData, len(rows))
	for i, r := range rows {
		names[i] = r.Algorithm.Name
		steps[i] = opts.BarData{Value: r.Summary.Total}
		compares[i] = opts.BarData{Value: r.Summary.Comparisons()}
		writes[i] = opts.BarData{Value: r.Summary.Writes()}
	}

	bar.SetXAxis(names).
		AddSeries("Steps", steps).
		AddSeries("Compares", compares).
		AddSeries("Writes", writes)

	return bar.Render(w)
}
