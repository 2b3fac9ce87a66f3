package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bitadd/internal/ui"
)

func newTestREPL(input string) (*REPL, *bytes.Buffer) {
	ui.InitTheme(true)
	r := NewREPL(REPLConfig{Barrier: 4, Timeout: 5 * time.Second})
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	return r, &out
}

func TestREPL_AddCommand(t *testing.T) {
	r, out := newTestREPL("add 11001010 00110101\nexit\n")
	r.Start()

	output := out.String()
	if !strings.Contains(output, "11111111") {
		t.Errorf("expected sum in output, got:\n%s", output)
	}
	if !strings.Contains(output, "Goodbye!") {
		t.Errorf("expected exit message, got:\n%s", output)
	}
}

func TestREPL_BareOperands(t *testing.T) {
	r, out := newTestREPL("101 011\nquit\n")
	r.Start()

	// 101 + 011 = 000 carry 1
	output := out.String()
	if !strings.Contains(output, "Sum  = 000") {
		t.Errorf("expected overflow sum, got:\n%s", output)
	}
	if !strings.Contains(output, "Carry: 1") {
		t.Errorf("expected carry-out, got:\n%s", output)
	}
}

func TestREPL_UnequalWidthsArePadded(t *testing.T) {
	r, out := newTestREPL("add 1 0001\nexit\n")
	r.Start()

	if !strings.Contains(out.String(), "Sum  = 0010") {
		t.Errorf("expected padded 4-bit sum, got:\n%s", out.String())
	}
}

func TestREPL_InvalidOperand(t *testing.T) {
	r, out := newTestREPL("add 10x1 0011\nexit\n")
	r.Start()

	if !strings.Contains(out.String(), "Invalid operand") {
		t.Errorf("expected rejection of non-binary digits, got:\n%s", out.String())
	}
}

func TestREPL_AlgoAndBarrierCommands(t *testing.T) {
	r, out := newTestREPL("algo seq\nbarrier 7\nstatus\nexit\n")
	r.Start()

	output := out.String()
	if !strings.Contains(output, "Adder changed to: seq") {
		t.Errorf("expected algo change, got:\n%s", output)
	}
	if !strings.Contains(output, "2^7") {
		t.Errorf("expected barrier change, got:\n%s", output)
	}
}

func TestREPL_UnknownCommand(t *testing.T) {
	r, out := newTestREPL("frobnicate\nexit\n")
	r.Start()

	if !strings.Contains(out.String(), "Unknown command") {
		t.Errorf("expected unknown command message, got:\n%s", out.String())
	}
}

func TestREPL_EOFExits(t *testing.T) {
	r, out := newTestREPL("")
	r.Start()

	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("expected clean EOF exit, got:\n%s", out.String())
	}
}

func TestREPL_RandomCommand(t *testing.T) {
	r, out := newTestREPL("random 32\nexit\n")
	r.Start()

	if !strings.Contains(out.String(), "Result:") {
		t.Errorf("expected a result from random add, got:\n%s", out.String())
	}
}
