package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/AgentTrainingCharts/src/charts"
	"github.com/iafilius/AgentTrainingCharts/src/config"
	"github.com/iafilius/AgentTrainingCharts/src/trainlog"
)

func renderCmd() *cobra.Command {
	var (
		configPath   string
		logDir       string
		chartDir     string
		rewardWindow int
		timeWindow   int
		extensions   []string
		caption      bool
		logLevel     string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Chart every training log in the log directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			trainlog.SetLogLevel(logLevel)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			// Flags the user set win over the config file.
			if cmd.Flags().Changed("log-dir") {
				cfg.LogDir = logDir
			}
			if cmd.Flags().Changed("chart-dir") {
				cfg.ChartDir = chartDir
			}
			if cmd.Flags().Changed("reward-window") {
				cfg.RewardWindow = rewardWindow
			}
			if cmd.Flags().Changed("time-window") {
				cfg.TimeWindow = timeWindow
			}
			if cmd.Flags().Changed("ext") {
				cfg.Extensions = extensions
			}
			if cmd.Flags().Changed("caption") {
				cfg.Caption = caption
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			results, err := charts.GenerateAll(cfg)
			if err != nil {
				return err
			}
			ok, failed := 0, 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				} else {
					ok++
				}
			}
			fmt.Printf("charted %d run(s), %d failed, output under %s\n", ok, failed, cfg.ChartDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to TOML config (default: ./"+config.DefaultFile+" when present)")
	cmd.Flags().StringVar(&logDir, "log-dir", "log", "Directory holding one training log per run")
	cmd.Flags().StringVar(&chartDir, "chart-dir", "graph", "Directory to write charts into, one subdirectory per run")
	cmd.Flags().IntVar(&rewardWindow, "reward-window", 100, "Moving-average window for the reward chart")
	cmd.Flags().IntVar(&timeWindow, "time-window", 100, "Moving-average window for the time-per-cycle chart")
	cmd.Flags().StringSliceVar(&extensions, "ext", []string{"png"}, "Image formats to write (png, svg)")
	cmd.Flags().BoolVar(&caption, "caption", false, "Stamp the run name onto raster charts")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	return cmd
}
