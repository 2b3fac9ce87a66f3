package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/orchestration"
	"github.com/agbru/bitadd/internal/ui"
)

func TestPresentComparisonTable(t *testing.T) {
	ui.InitTheme(true)

	results := []orchestration.AdditionResult{
		{Name: "Ripple Carry", Duration: 3 * time.Millisecond},
		{Name: "Fork-Join", Duration: time.Millisecond},
		{Name: "Broken", Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	output := buf.String()

	for _, s := range []string{"Comparison Summary", "Ripple Carry", "Fork-Join", "Success", "Failure", "boom"} {
		if !strings.Contains(output, s) {
			t.Errorf("Expected table to contain %q, got:\n%s", s, output)
		}
	}
}

func TestPresentResult_WritesFile(t *testing.T) {
	ui.InitTheme(true)

	res := orchestration.AdditionResult{
		Name:     "Ripple Carry",
		Duration: time.Millisecond,
	}
	res.Result.Sum = mustVec(t, "1011")

	var buf bytes.Buffer
	p := CLIResultPresenter{}
	p.PresentResult(res, orchestration.PresentationOptions{ShowValue: true}, &buf)

	if !strings.Contains(buf.String(), "1011") {
		t.Errorf("expected result output to contain the sum, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Value = 11") {
		t.Errorf("expected decimal value, got:\n%s", buf.String())
	}
}

func TestHandleError_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if got := (CLIResultPresenter{}).HandleError(tt.err, time.Second, &buf); got != tt.want {
				t.Errorf("HandleError() = %d, want %d", got, tt.want)
			}
		})
	}
}
