package charts

import (
	"bytes"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/spec-kit/support-analytics/internal/analytics"
	"github.com/spec-kit/support-analytics/internal/service"
)

// Chart endpoint names, one per dashboard chart.
const (
	SatisfactionByType       = "satisfaction-by-type"
	SatisfactionByPriority   = "satisfaction-by-priority"
	SatisfactionByChannel    = "satisfaction-by-channel"
	ResolutionByPriority     = "resolution-by-priority"
	ResolutionVsSatisfaction = "resolution-vs-satisfaction"
	VolumeByChannel          = "volume-by-channel"
	VolumeByStatus           = "volume-by-status"
)

// ErrUnknownChart is returned for names outside the fixed chart set.
var ErrUnknownChart = errors.New("unknown chart")

// ErrNoData is returned when the filtered set leaves a chart with
// nothing to draw. Not a fault; the caller renders an empty state.
var ErrNoData = errors.New("no data for chart")

const (
	chartWidth  = 800
	chartHeight = 400
)

// Names lists all renderable charts.
func Names() []string {
	return []string{
		SatisfactionByType,
		SatisfactionByPriority,
		SatisfactionByChannel,
		ResolutionByPriority,
		ResolutionVsSatisfaction,
		VolumeByChannel,
		VolumeByStatus,
	}
}

// Render draws the named chart from a computed view as PNG.
func Render(name string, view service.ViewModel) ([]byte, error) {
	switch name {
	case SatisfactionByType:
		return barChart("Average Satisfaction by Ticket Type", view.SatisfactionByType)
	case SatisfactionByPriority:
		return barChart("Average Satisfaction by Priority", view.SatisfactionByPriority)
	case SatisfactionByChannel:
		return barChart("Average Satisfaction by Channel", view.SatisfactionByChannel)
	case ResolutionByPriority:
		return barChart("Average Resolution Time (hours) by Priority", view.ResolutionByPriority)
	case ResolutionVsSatisfaction:
		return scatterChart(view.Scatter)
	case VolumeByChannel:
		return donutChart("Ticket Volume by Channel", view.VolumeByChannel)
	case VolumeByStatus:
		return volumeBarChart("Ticket Volume by Status", view.VolumeByStatus)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownChart, name)
	}
}

func barChart(title string, groups []analytics.GroupMean) ([]byte, error) {
	if len(groups) == 0 {
		return nil, ErrNoData
	}
	bars := make([]chart.Value, 0, len(groups))
	for _, g := range groups {
		bars = append(bars, chart.Value{Value: g.Mean, Label: g.Key})
	}
	bc := chart.BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		Bars:     bars,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func volumeBarChart(title string, groups []analytics.GroupCount) ([]byte, error) {
	if len(groups) == 0 {
		return nil, ErrNoData
	}
	bars := make([]chart.Value, 0, len(groups))
	for _, g := range groups {
		bars = append(bars, chart.Value{Value: float64(g.Count), Label: g.Key})
	}
	bc := chart.BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		Bars:     bars,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func donutChart(title string, groups []analytics.GroupCount) ([]byte, error) {
	if len(groups) == 0 {
		return nil, ErrNoData
	}
	values := make([]chart.Value, 0, len(groups))
	for _, g := range groups {
		label := g.Key
		if label == "" {
			label = "(unknown)"
		}
		values = append(values, chart.Value{Value: float64(g.Count), Label: label})
	}
	dc := chart.DonutChart{
		Title:  title,
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}
	var buf bytes.Buffer
	if err := dc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scatterChart(points []analytics.ScatterPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.ResolutionHours)
		ys = append(ys, p.Satisfaction)
	}
	// go-chart needs at least two X values to build an axis range.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	sc := chart.Chart{
		Title:  "Resolution Time vs Satisfaction",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: "Time to Resolution (hours)"},
		YAxis:  chart.YAxis{Name: "Satisfaction Rating"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := sc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
