package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iafilius/AgentTrainingCharts/src/config"
)

func writeSampleLog(t *testing.T, path string, n int) {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("cycle, observation, reward, action, explored, explore_rate, total reward, average reward, time, model size\n")
	total := 0.0
	for i := 1; i <= n; i++ {
		r := float64(i % 2)
		total += r
		fmt.Fprintf(&sb, "%d, 0, %g, 1, 0, 0.9, %g, %g, 0.01, %d\n", i, r, total, total/float64(i), 10+i)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
}

func batchConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.LogDir = filepath.Join(root, "log")
	cfg.ChartDir = filepath.Join(root, "graph")
	cfg.RewardWindow = 3
	cfg.TimeWindow = 3
	cfg.ChartWidth = 400
	cfg.ChartHeight = 300
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		t.Fatalf("mkdir log: %v", err)
	}
	return cfg
}

func TestGenerateAll(t *testing.T) {
	cfg := batchConfig(t)
	writeSampleLog(t, filepath.Join(cfg.LogDir, "run-01"), 12)

	results, err := GenerateAll(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result got %d", len(results))
	}
	res := results[0]
	if res.Err != nil {
		t.Fatalf("unexpected failure: %v", res.Err)
	}
	want := []string{
		"average reward.png",
		"reward (window size = 3).png",
		"time per cycle (window size = 3).png",
		"model size.png",
	}
	if len(res.Written) != len(want) {
		t.Fatalf("expected %d files got %v", len(want), res.Written)
	}
	for _, name := range want {
		path := filepath.Join(cfg.ChartDir, "run-01", name)
		st, err := os.Stat(path)
		if err != nil {
			t.Fatalf("missing chart %s: %v", name, err)
		}
		if st.Size() == 0 {
			t.Fatalf("empty chart %s", name)
		}
	}
}

func TestGenerateAllFaultIsolation(t *testing.T) {
	cfg := batchConfig(t)
	writeSampleLog(t, filepath.Join(cfg.LogDir, "good"), 8)
	if err := os.WriteFile(filepath.Join(cfg.LogDir, "bad"), []byte("foo, bar\n1, 2\n"), 0o644); err != nil {
		t.Fatalf("write bad log: %v", err)
	}

	results, err := GenerateAll(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	byRun := map[string]FileResult{}
	for _, r := range results {
		byRun[r.Run] = r
	}
	good, ok := byRun["good"]
	if !ok || good.Err != nil {
		t.Fatalf("good run should succeed: %+v", good)
	}
	if len(good.Written) != 4 {
		t.Fatalf("good run should write 4 charts, wrote %v", good.Written)
	}
	bad, ok := byRun["bad"]
	if !ok || bad.Err == nil {
		t.Fatalf("bad run should fail: %+v", bad)
	}
	if len(bad.Written) != 0 {
		t.Fatalf("bad run should write nothing, wrote %v", bad.Written)
	}
}

func TestGenerateAllPartialOutput(t *testing.T) {
	cfg := batchConfig(t)
	// No "model size" column: the first three charts save, the fourth fails.
	body := "cycle, reward, average reward, time\n1, 0, 0, 0.01\n2, 1, 0.5, 0.01\n3, 1, 0.666, 0.01\n"
	if err := os.WriteFile(filepath.Join(cfg.LogDir, "truncated"), []byte(body), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	results, err := GenerateAll(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	res := results[0]
	if res.Err == nil {
		t.Fatalf("expected failure on model size chart")
	}
	if len(res.Written) != 3 {
		t.Fatalf("expected 3 charts before the failure, got %v", res.Written)
	}
}

func TestGenerateAllIdempotent(t *testing.T) {
	cfg := batchConfig(t)
	writeSampleLog(t, filepath.Join(cfg.LogDir, "run-01"), 6)

	for pass := 0; pass < 2; pass++ {
		results, err := GenerateAll(cfg)
		if err != nil {
			t.Fatalf("pass %d: %v", pass, err)
		}
		if results[0].Err != nil {
			t.Fatalf("pass %d: %v", pass, results[0].Err)
		}
	}
}

func TestGenerateAllSkipsDirectories(t *testing.T) {
	cfg := batchConfig(t)
	if err := os.MkdirAll(filepath.Join(cfg.LogDir, "subdir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeSampleLog(t, filepath.Join(cfg.LogDir, "run-01"), 4)

	results, err := GenerateAll(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(results) != 1 || results[0].Run != "run-01" {
		t.Fatalf("directories must be skipped: %+v", results)
	}
}

func TestGenerateAllMissingLogDir(t *testing.T) {
	cfg := batchConfig(t)
	cfg.LogDir = filepath.Join(cfg.LogDir, "absent")
	if _, err := GenerateAll(cfg); err == nil {
		t.Fatalf("expected error for unreadable log dir")
	}
}

func TestGenerateAllExtensions(t *testing.T) {
	cfg := batchConfig(t)
	cfg.Extensions = []string{"png", "svg"}
	writeSampleLog(t, filepath.Join(cfg.LogDir, "run-01"), 5)

	results, err := GenerateAll(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("unexpected failure: %v", results[0].Err)
	}
	if len(results[0].Written) != 8 {
		t.Fatalf("expected 4 charts x 2 extensions, got %v", results[0].Written)
	}
	if _, err := os.Stat(filepath.Join(cfg.ChartDir, "run-01", "model size.svg")); err != nil {
		t.Fatalf("missing svg output: %v", err)
	}
}

func TestGenerateAllCaption(t *testing.T) {
	cfg := batchConfig(t)
	cfg.Caption = true
	writeSampleLog(t, filepath.Join(cfg.LogDir, "run-01"), 5)

	results, err := GenerateAll(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("unexpected failure: %v", results[0].Err)
	}
}
