package analysis

import (
	"errors"
	"fmt"

	"github.com/iafilius/AgentTrainingCharts/src/trainlog"
)

// Column labels the training agent writes. The log format is open-ended, but
// these are the metrics the summary and the standard charts know about.
const (
	ColCycle         = "cycle"
	ColReward        = "reward"
	ColAverageReward = "average reward"
	ColTotalReward   = "total reward"
	ColTime          = "time"
	ColModelSize     = "model size"
)

// RunSummary captures the headline numbers of one training run, the same
// figures the agent itself reports on its power-of-two cycles.
type RunSummary struct {
	Cycles             int
	TotalReward        float64
	FinalAverageReward float64
	MeanTimePerCycle   float64
	FinalModelSize     float64
}

func (s RunSummary) String() string {
	return fmt.Sprintf("cycles=%d total_reward=%.4f avg_reward=%.4f mean_cycle_time=%.4fs model_size=%.0f",
		s.Cycles, s.TotalReward, s.FinalAverageReward, s.MeanTimePerCycle, s.FinalModelSize)
}

// Summarize rolls one parsed log up into a RunSummary. The reward column is
// required; total reward, average reward, time and model size are filled in
// when present and derived from reward otherwise.
func Summarize(t *trainlog.Table) (RunSummary, error) {
	reward, err := t.Numeric(ColReward)
	if err != nil {
		return RunSummary{}, err
	}
	s := RunSummary{Cycles: len(reward)}

	if total, err := t.Numeric(ColTotalReward); err == nil && len(total) > 0 {
		s.TotalReward = total[len(total)-1]
	} else if !missingOK(err) {
		return RunSummary{}, err
	} else {
		for _, r := range reward {
			s.TotalReward += r
		}
	}

	if avg, err := t.Numeric(ColAverageReward); err == nil && len(avg) > 0 {
		s.FinalAverageReward = avg[len(avg)-1]
	} else if !missingOK(err) {
		return RunSummary{}, err
	} else if s.Cycles > 0 {
		s.FinalAverageReward = s.TotalReward / float64(s.Cycles)
	}

	if times, err := t.Numeric(ColTime); err == nil && len(times) > 0 {
		var sum float64
		for _, v := range times {
			sum += v
		}
		s.MeanTimePerCycle = sum / float64(len(times))
	} else if !missingOK(err) {
		return RunSummary{}, err
	}

	if sizes, err := t.Numeric(ColModelSize); err == nil && len(sizes) > 0 {
		s.FinalModelSize = sizes[len(sizes)-1]
	} else if !missingOK(err) {
		return RunSummary{}, err
	}

	return s, nil
}

// missingOK separates "column absent" (fine for optional metrics, and fine
// when the column is simply empty) from "column present but textual", which
// points at a malformed log and is reported.
func missingOK(err error) bool {
	if err == nil {
		return true
	}
	var mc *trainlog.MissingColumnError
	return errors.As(err, &mc)
}
