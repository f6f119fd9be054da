package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	out, err := execute(t, "run", "--size", "6", "--seed", "7", "--generations", "3", "--frame-rate", "0s")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "Reached maximum generations limit (3)") {
		t.Errorf("expected generation limit notice, got:\n%s", out)
	}
	if !strings.Contains(out, "Grid: 6x6 torus | Seed: 7") {
		t.Errorf("expected game info banner, got:\n%s", out)
	}
	if !strings.Contains(out, "Gen: 3 |") {
		t.Errorf("expected status for generation 3, got:\n%s", out)
	}
}

func TestRunUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	content := "rows: 4\ncols: 9\nframe_rate: 0s\nmax_generations: 1\nseed: 3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := execute(t, "run", "--config", path, "--cols", "5")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "Grid: 4x5 torus") {
		t.Errorf("expected flag to override file cols, got:\n%s", out)
	}
}

func TestRunRejectsInvalidSize(t *testing.T) {
	if _, err := execute(t, "run", "--size", "0", "--generations", "1"); err == nil {
		t.Error("expected error for zero sized grid")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("expected %q, got %q", version, out)
	}
}
