package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/landecol/landstats/dataset"
	"github.com/landecol/landstats/metrics"
)

// WriteChart renders one bar chart per metric column across the class
// rows and writes the result as a standalone HTML page. Metrics with
// no finite class value are skipped; the landscape row is summarized
// in each chart subtitle. Class bars take their legend names and
// colors from the dataset.
func WriteChart(w io.Writer, t *metrics.Table, ds dataset.Dataset) error {
	page := components.NewPage()
	page.PageTitle = "Landscape metrics"

	rows := t.ClassRows()
	land := t.Landscape()

	for _, id := range t.Columns {
		bar := classBar(id, rows, land, ds)
		if bar != nil {
			page.AddCharts(bar)
		}
	}
	return page.Render(w)
}

func classBar(id metrics.ID, rows []metrics.Row, land metrics.Row, ds dataset.Dataset) *charts.Bar {
	var (
		labels []string
		data   []opts.BarData
		finite bool
	)
	for _, r := range rows {
		v := r.Get(id)
		if math.IsNaN(v) {
			continue
		}
		finite = true
		labels = append(labels, classLabel(ds, r.Class))
		data = append(data, opts.BarData{
			Value: v,
			ItemStyle: &opts.ItemStyle{
				Color: classColor(ds, r.Class),
			},
		})
	}
	if !finite {
		return nil
	}

	subtitle := ""
	if lv := land.Get(id); !math.IsNaN(lv) {
		subtitle = fmt.Sprintf("landscape: %.4g", lv)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: string(id), Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: string(id)}),
	)
	bar.SetXAxis(labels).AddSeries(string(id), data)
	return bar
}

func classLabel(ds dataset.Dataset, code int) string {
	if name, ok := ds.Classes[code]; ok {
		return fmt.Sprintf("%d %s", code, name)
	}
	return fmt.Sprintf("class %d", code)
}

func classColor(ds dataset.Dataset, code int) string {
	c, ok := ds.Palette[code]
	if !ok {
		return "#808080"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
