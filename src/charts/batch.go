package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/AgentTrainingCharts/src/config"
	"github.com/iafilius/AgentTrainingCharts/src/trainlog"
)

// FileResult is the outcome of charting one log file. Written lists every
// image that made it to disk; when Err is set the run failed partway and
// Written holds whatever was saved before the failure.
type FileResult struct {
	Run     string
	Written []string
	Err     error
}

// GenerateAll charts every regular file in the configured log directory. One
// bad log never aborts the batch: its failure is logged, recorded in the
// returned results, and the walk moves on. The returned error covers only the
// directory listing itself.
func GenerateAll(cfg config.Config) ([]FileResult, error) {
	entries, err := os.ReadDir(cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("read log dir %s: %w", cfg.LogDir, err)
	}
	var results []FileResult
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		res := generateOne(cfg, e.Name())
		if res.Err != nil {
			trainlog.Warnf("skipping %s: %v", res.Run, res.Err)
		} else {
			trainlog.Infof("%s: wrote %d chart file(s)", res.Run, len(res.Written))
		}
		results = append(results, res)
	}
	return results, nil
}

// generateOne parses one log and saves the four standard charts into the
// run's output directory. Charts are saved as they are rendered, so a
// mid-batch failure leaves the earlier charts on disk.
func generateOne(cfg config.Config, name string) FileResult {
	defer trainlog.TimeTrack(time.Now(), name)
	res := FileResult{Run: name}

	outDir := filepath.Join(cfg.ChartDir, name)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		res.Err = fmt.Errorf("create %s: %w", outDir, err)
		return res
	}

	tbl, err := trainlog.ParseFile(filepath.Join(cfg.LogDir, name))
	if err != nil {
		res.Err = err
		return res
	}

	steps := []struct {
		stem  string
		build func() (chart.Chart, error)
	}{
		{"average reward", func() (chart.Chart, error) { return AverageReward(tbl) }},
		{fmt.Sprintf("reward (window size = %d)", cfg.RewardWindow), func() (chart.Chart, error) { return Reward(tbl, cfg.RewardWindow) }},
		{fmt.Sprintf("time per cycle (window size = %d)", cfg.TimeWindow), func() (chart.Chart, error) { return TimePerCycle(tbl, cfg.TimeWindow) }},
		{"model size", func() (chart.Chart, error) { return ModelSize(tbl) }},
	}
	var caption string
	if cfg.Caption {
		caption = name
	}
	for _, step := range steps {
		ch, err := step.build()
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", step.stem, err)
			return res
		}
		ch.Width = cfg.ChartWidth
		ch.Height = cfg.ChartHeight
		written, err := Save(ch, filepath.Join(outDir, step.stem), cfg.Extensions, caption)
		res.Written = append(res.Written, written...)
		if err != nil {
			res.Err = err
			return res
		}
	}
	return res
}
