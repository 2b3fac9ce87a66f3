package adder

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/bitvec"
)

func TestAddParallelMatchesSequentialConcreteCases(t *testing.T) {
	t.Parallel()
	cases := []struct{ b1, b2 string }{
		{"101", "011"},
		{"000", "000"},
		{"1111", "0001"},
		{"10101010", "01010101"},
		{"11111111", "11111111"},
		{"1", "1"},
		{"", ""},
	}

	ctx := context.Background()
	for _, tc := range cases {
		b1 := mustParse(t, tc.b1)
		b2 := mustParse(t, tc.b2)

		want, err := AddSequential(b1, b2)
		if err != nil {
			t.Fatalf("AddSequential(%q, %q) failed: %v", tc.b1, tc.b2, err)
		}

		for barrier := 0; barrier <= 4; barrier++ {
			got, err := AddParallel(ctx, b1, b2, barrier)
			if err != nil {
				t.Fatalf("AddParallel(%q, %q, %d) failed: %v", tc.b1, tc.b2, barrier, err)
			}
			assertSameResult(t, got, want, tc.b1, tc.b2, barrier)
		}
	}
}

// TestAddParallelBarrierInvariance verifies that a fixed random pair of
// 1024-bit operands yields an identical result for every barrier from 0 to 10.
func TestAddParallelBarrierInvariance(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	b1 := bitvec.Random(rng, 1024)
	b2 := bitvec.Random(rng, 1024)

	want, err := AddSequential(b1, b2)
	if err != nil {
		t.Fatalf("AddSequential failed: %v", err)
	}

	ctx := context.Background()
	for barrier := 0; barrier <= 10; barrier++ {
		got, err := AddParallel(ctx, b1, b2, barrier)
		if err != nil {
			t.Fatalf("barrier %d: AddParallel failed: %v", barrier, err)
		}
		assertSameResult(t, got, want, "random-1024", "random-1024", barrier)
	}
}

func TestAddParallelRandomWidths(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		width := rng.Intn(513)
		barrier := rng.Intn(12)
		b1 := bitvec.Random(rng, width)
		b2 := bitvec.Random(rng, width)

		want, err := AddSequential(b1, b2)
		if err != nil {
			t.Fatalf("AddSequential failed: %v", err)
		}
		got, err := AddParallel(ctx, b1, b2, barrier)
		if err != nil {
			t.Fatalf("width %d barrier %d: AddParallel failed: %v", width, barrier, err)
		}
		assertSameResult(t, got, want, b1.String(), b2.String(), barrier)
	}
}

func TestAddParallelRejectsNegativeBarrier(t *testing.T) {
	t.Parallel()
	b := mustParse(t, "1010")

	_, err := AddParallel(context.Background(), b, b, -1)
	if err == nil {
		t.Fatal("expected InvalidBarrierError, got nil")
	}
	var barrierErr apperrors.InvalidBarrierError
	if !errors.As(err, &barrierErr) {
		t.Fatalf("expected InvalidBarrierError, got %T: %v", err, err)
	}
	if barrierErr.Barrier != -1 {
		t.Errorf("Barrier = %d, want -1", barrierErr.Barrier)
	}
}

func TestAddParallelRejectsLengthMismatch(t *testing.T) {
	t.Parallel()
	b1 := mustParse(t, "10")
	b2 := mustParse(t, "100")

	_, err := AddParallel(context.Background(), b1, b2, DefaultBarrier)
	var mismatch apperrors.LengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected LengthMismatchError, got %T: %v", err, err)
	}
}

// TestAddParallelOversizedBarrier verifies that a barrier far beyond any
// representable width is not an error and degrades to the sequential path.
func TestAddParallelOversizedBarrier(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	b1 := bitvec.Random(rng, 256)
	b2 := bitvec.Random(rng, 256)

	want, err := AddSequential(b1, b2)
	if err != nil {
		t.Fatalf("AddSequential failed: %v", err)
	}

	for _, barrier := range []int{63, 64, 100, 1 << 30} {
		got, err := AddParallel(context.Background(), b1, b2, barrier)
		if err != nil {
			t.Fatalf("barrier %d: AddParallel failed: %v", barrier, err)
		}
		assertSameResult(t, got, want, "random-256", "random-256", barrier)
	}
}

func TestAddParallelZeroWidthOperands(t *testing.T) {
	t.Parallel()
	res, err := AddParallel(context.Background(), bitvec.Vector{}, bitvec.Vector{}, 0)
	if err != nil {
		t.Fatalf("AddParallel on empty operands failed: %v", err)
	}
	if res.Carry {
		t.Error("empty addition should not carry")
	}
	if len(res.Sum) != 0 {
		t.Errorf("empty addition sum width = %d, want 0", len(res.Sum))
	}
}

func TestAddParallelCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rng := rand.New(rand.NewSource(5))
	b1 := bitvec.Random(rng, 1024)
	b2 := bitvec.Random(rng, 1024)

	_, err := AddParallel(ctx, b1, b2, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// TestAddParallelDoesNotMutateOperands guards the read-only view contract:
// concurrent branches must never write through their input slices.
func TestAddParallelDoesNotMutateOperands(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(9))
	b1 := bitvec.Random(rng, 512)
	b2 := bitvec.Random(rng, 512)
	snap1 := b1.Clone()
	snap2 := b2.Clone()

	if _, err := AddParallel(context.Background(), b1, b2, 4); err != nil {
		t.Fatalf("AddParallel failed: %v", err)
	}

	if b1.String() != snap1.String() || b2.String() != snap2.String() {
		t.Error("AddParallel mutated an input operand")
	}
}

func assertSameResult(t *testing.T, got, want Result, b1, b2 string, barrier int) {
	t.Helper()
	if got.Carry != want.Carry {
		t.Errorf("AddParallel(%s, %s, %d) carry = %v, want %v", b1, b2, barrier, got.Carry, want.Carry)
	}
	if got.Sum.String() != want.Sum.String() {
		t.Errorf("AddParallel(%s, %s, %d) sum = %s, want %s", b1, b2, barrier, got.Sum, want.Sum)
	}
}
