package tui

import (
	"strings"
	"testing"
)

func TestRingBuffer_PushAndSlice(t *testing.T) {
	t.Parallel()

	r := NewRingBuffer(3)
	if r.Len() != 0 {
		t.Fatalf("new buffer should be empty, got %d", r.Len())
	}

	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.Push(4) // overwrites 1

	got := r.Slice()
	want := []float64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if r.Last() != 4 {
		t.Errorf("Last() = %v, want 4", r.Last())
	}
}

func TestRingBuffer_Reset(t *testing.T) {
	t.Parallel()

	r := NewRingBuffer(4)
	r.Push(7)
	r.Reset()
	if r.Len() != 0 || r.Last() != 0 {
		t.Error("Reset() should clear all samples")
	}
}

func TestRingBuffer_ZeroCapacity(t *testing.T) {
	t.Parallel()

	r := NewRingBuffer(0)
	r.Push(5)
	if r.Last() != 5 {
		t.Error("zero capacity should be clamped to 1")
	}
}

func TestRenderSparkline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		max    float64
		want   string
	}{
		{"Empty", nil, 100, ""},
		{"Extremes", []float64{0, 100}, 100, "▁█"},
		{"Clamped", []float64{-10, 200}, 100, "▁█"},
		{"Midpoint", []float64{50}, 100, "▄"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RenderSparkline(tt.values, tt.max); got != tt.want {
				t.Errorf("RenderSparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestRenderSparkline_UsesAllBlocks(t *testing.T) {
	t.Parallel()

	values := make([]float64, 8)
	for i := range values {
		values[i] = float64(i) / 7 * 100
	}
	got := RenderSparkline(values, 100)
	for _, c := range sparklineChars {
		if !strings.ContainsRune(got, c) {
			t.Errorf("expected block %q in %q", c, got)
		}
	}
}
