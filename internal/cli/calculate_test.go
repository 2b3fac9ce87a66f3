package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bitadd/internal/config"
	"github.com/agbru/bitadd/internal/orchestration"
	"github.com/agbru/bitadd/internal/ui"
)

func TestPrintExecutionConfig(t *testing.T) {
	ui.InitTheme(true)

	cfg := config.AppConfig{Barrier: 11, Timeout: time.Minute}
	var buf bytes.Buffer
	PrintExecutionConfig(cfg, 1<<20, &buf)

	output := buf.String()
	for _, s := range []string{"Execution Configuration", "1.0 Mib", "2^11", "logical processors"} {
		if !strings.Contains(output, s) {
			t.Errorf("Expected output to contain %q, got:\n%s", s, output)
		}
	}
}

func TestPrintExecutionMode(t *testing.T) {
	ui.InitTheme(true)

	single := []orchestration.Adder{orchestration.NewSequentialAdder()}
	var buf bytes.Buffer
	PrintExecutionMode(single, &buf)
	if !strings.Contains(buf.String(), "Single addition") {
		t.Errorf("expected single mode, got:\n%s", buf.String())
	}

	both := []orchestration.Adder{orchestration.NewSequentialAdder(), orchestration.NewParallelAdder(4)}
	buf.Reset()
	PrintExecutionMode(both, &buf)
	if !strings.Contains(buf.String(), "comparison") {
		t.Errorf("expected comparison mode, got:\n%s", buf.String())
	}
}
