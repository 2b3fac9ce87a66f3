package orchestration

import (
	"testing"

	"github.com/agbru/bitadd/internal/config"
)

func TestAddersToRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		algo      string
		wantNames []string
	}{
		{"Sequential only", "seq", []string{SequentialName}},
		{"Parallel only", "par", []string{ParallelName}},
		{"Both, sequential first", "both", []string{SequentialName, ParallelName}},
		{"Unknown selection", "bogus", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.AppConfig{Algo: tt.algo, Barrier: 4}
			adders := AddersToRun(cfg)
			if len(adders) != len(tt.wantNames) {
				t.Fatalf("expected %d adders, got %d", len(tt.wantNames), len(adders))
			}
			for i, want := range tt.wantNames {
				if got := adders[i].Name(); got != want {
					t.Errorf("adder %d: name = %q, want %q", i, got, want)
				}
			}
		})
	}
}
