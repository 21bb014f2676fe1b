// Package charts renders the standard diagnostic charts for one training run
// and drives the batch over a whole log directory.
package charts

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/AgentTrainingCharts/src/analysis"
	"github.com/iafilius/AgentTrainingCharts/src/trainlog"
)

// lineStyle is the single-series plot style shared by all charts.
func lineStyle() chart.Style {
	return chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: chart.ColorBlue,
	}
}

// series builds the x/y line series, padding single-point data so go-chart
// has a drawable x-range.
func series(xs, ys []float64) chart.Series {
	if len(xs) == 1 {
		xs = []float64{xs[0], xs[0] + 1}
		ys = []float64{ys[0], ys[0]}
	}
	return chart.ContinuousSeries{XValues: xs, YValues: ys, Style: lineStyle()}
}

// yRange gives the y-axis an explicit range so flat series (constant model
// size, fixed cycle times) still have a drawable extent.
func yRange(ys []float64) *chart.ContinuousRange {
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	for _, v := range ys {
		if math.IsNaN(v) {
			continue
		}
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	if minY == math.MaxFloat64 {
		return nil
	}
	if maxY <= minY {
		maxY = minY + 1
	}
	return &chart.ContinuousRange{Min: minY, Max: maxY}
}

func line(title, yName string, xs, ys []float64) chart.Chart {
	yAxis := chart.YAxis{Name: yName}
	if r := yRange(ys); r != nil {
		yAxis.Range = r
	}
	return chart.Chart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: "Cycle"},
		YAxis:      yAxis,
		Series:     []chart.Series{series(xs, ys)},
	}
}

// AverageReward charts the agent's running average reward, unsmoothed.
func AverageReward(t *trainlog.Table) (chart.Chart, error) {
	cycle, err := t.Numeric(analysis.ColCycle)
	if err != nil {
		return chart.Chart{}, err
	}
	avg, err := t.Numeric(analysis.ColAverageReward)
	if err != nil {
		return chart.Chart{}, err
	}
	return line("Average reward vs. cycle", "Average reward", cycle, avg), nil
}

// Reward charts per-cycle reward smoothed by a trailing moving average.
func Reward(t *trainlog.Table, window int) (chart.Chart, error) {
	cycle, err := t.Numeric(analysis.ColCycle)
	if err != nil {
		return chart.Chart{}, err
	}
	reward, err := t.Numeric(analysis.ColReward)
	if err != nil {
		return chart.Chart{}, err
	}
	title := fmt.Sprintf("Reward vs. cycle (window size = %d)", window)
	return line(title, "Reward", cycle, analysis.MovingAverage(reward, window)), nil
}

// TimePerCycle charts smoothed wall-clock time spent per cycle.
func TimePerCycle(t *trainlog.Table, window int) (chart.Chart, error) {
	cycle, err := t.Numeric(analysis.ColCycle)
	if err != nil {
		return chart.Chart{}, err
	}
	times, err := t.Numeric(analysis.ColTime)
	if err != nil {
		return chart.Chart{}, err
	}
	title := fmt.Sprintf("Time per cycle vs. cycle (window size = %d)", window)
	return line(title, "Time per cycle [seconds]", cycle, analysis.MovingAverage(times, window)), nil
}

// ModelSize charts the agent's context tree growth, unsmoothed.
func ModelSize(t *trainlog.Table) (chart.Chart, error) {
	cycle, err := t.Numeric(analysis.ColCycle)
	if err != nil {
		return chart.Chart{}, err
	}
	size, err := t.Numeric(analysis.ColModelSize)
	if err != nil {
		return chart.Chart{}, err
	}
	return line("Model size vs. cycle", "Model size [number of nodes]", cycle, size), nil
}
