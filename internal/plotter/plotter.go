// Package plotter renders processed traffic records as self-contained HTML
// charts, one page per repository.
package plotter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gitpulse/gitpulse/schema"
)

// Series palette, carried over from the original dashboard styling.
const (
	viewsColor    = "#48f"
	clonesColor   = "#0b0"
	starsColor    = "#fc0"
	forksColor    = "#f80"
	watchersColor = "#f00"
)

const chartWidth = "1100px"

// chartSeries defines a single line series to plot.
type chartSeries struct {
	Name   string
	Values []int
	Color  string
	Dashed bool
}

// dailyChart builds the windowed-metric chart: counts and uniques for clones
// and views over the canonical date axis.
func dailyChart(record *schema.ProcessedRepo) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s traffic", record.Repo)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "log"}),
	)
	line.SetXAxis(record.Daily.Dates)

	for _, s := range []chartSeries{
		{Name: "views", Values: record.Daily.Views, Color: viewsColor, Dashed: true},
		{Name: "viewers", Values: record.Daily.Viewers, Color: viewsColor},
		{Name: "clones", Values: record.Daily.Clones, Color: clonesColor, Dashed: true},
		{Name: "cloners", Values: record.Daily.Cloners, Color: clonesColor},
	} {
		addSeries(line, s)
	}
	return line
}

// pointChart builds the counter chart: stars, forks and watchers per poll.
func pointChart(record *schema.ProcessedRepo) *charts.Line {
	labels := make([]string, len(record.Point.Times))
	for i, t := range record.Point.Times {
		labels[i] = time.Unix(int64(t), 0).Format("2006-01-02 15:04")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s counters", record.Repo)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(labels)

	for _, s := range []chartSeries{
		{Name: "stars", Values: record.Point.Stars, Color: starsColor},
		{Name: "forks", Values: record.Point.Forks, Color: forksColor},
		{Name: "watchers", Values: record.Point.Watchers, Color: watchersColor},
	} {
		addSeries(line, s)
	}
	return line
}

func addSeries(line *charts.Line, s chartSeries) {
	data := make([]opts.LineData, len(s.Values))
	for i, v := range s.Values {
		data[i] = opts.LineData{Value: v}
	}

	lineStyle := opts.LineStyle{Width: 1}
	if s.Dashed {
		lineStyle.Type = "dashed"
	}

	line.AddSeries(s.Name, data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		charts.WithLineStyleOpts(lineStyle),
	)
}

// PlotFileName derives the chart filename for a repository.
func PlotFileName(repo string) string {
	return strings.ReplaceAll(repo, "/", ".") + ".html"
}

// WriteRepo renders one repository's page to the given path.
func WriteRepo(record *schema.ProcessedRepo, path string) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s traffic", record.Repo)
	page.AddCharts(dailyChart(record), pointChart(record))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render plot %s: %w", path, err)
	}
	return nil
}

// WriteAll wipes the plot directory and renders one page per record, the
// same full-rebuild contract the processed store follows.
func WriteAll(records []schema.ProcessedRepo, dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clear plot dir %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create plot dir %s: %w", dir, err)
	}

	for i := range records {
		path := filepath.Join(dir, PlotFileName(records[i].Repo))
		if err := WriteRepo(&records[i], path); err != nil {
			return err
		}
	}
	return nil
}
