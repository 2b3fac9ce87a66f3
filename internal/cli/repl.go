// Interactive session for repeated binary additions.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/bitadd/internal/adder"
	"github.com/agbru/bitadd/internal/bitvec"
	"github.com/agbru/bitadd/internal/ui"
)

// REPLConfig holds configuration for the interactive session.
type REPLConfig struct {
	// Barrier is the fork-join split barrier used by the parallel adder.
	Barrier int
	// Timeout is the maximum duration for each addition.
	Timeout time.Duration
	// ShowValue prints the decimal value of each sum.
	ShowValue bool
}

// REPL represents an interactive binary adder session.
type REPL struct {
	config REPLConfig
	algo   string
	rng    *rand.Rand
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new interactive session.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config: config,
		algo:   "par",
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It continuously reads user input and
// processes commands until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorSuccess()+"add> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorError(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the session welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorInfo(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sBinary Adder - Interactive Mode%s                      %s║%s\n",
		ui.ColorInfo(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorInfo(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorInfo(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sadd <a> <b>%s   - Add two binary numbers (MSB first)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %srandom <bits>%s - Add two random operands of the given width\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %salgo <name>%s   - Change adder (seq, par)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbarrier <k>%s   - Change the fork-join split barrier\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %svalue%s         - Toggle decimal value display\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current configuration\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s  - Exit interactive mode\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "Two bare binary numbers are treated as an add command.\n")
}

// processCommand parses and executes a user command.
// Returns false if the session should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "add", "a":
		r.cmdAdd(args)
	case "random", "rand", "r":
		r.cmdRandom(args)
	case "algo":
		r.cmdAlgo(args)
	case "barrier":
		r.cmdBarrier(args)
	case "value":
		r.cmdValue()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorSuccess(), ui.ColorReset())
		return false
	default:
		// A pair of bare binary numbers is a quick add
		if len(parts) == 2 && isBinary(parts[0]) && isBinary(parts[1]) {
			r.cmdAdd(parts)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorError(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorWarning(), ui.ColorReset())
		}
	}

	return true
}

func isBinary(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != '0' && c != '1' {
			return false
		}
	}
	return true
}

// cmdAdd handles the "add" command.
func (r *REPL) cmdAdd(args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: add <a> <b>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	a, err := bitvec.ParseBinary(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid operand: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}
	b, err := bitvec.ParseBinary(args[1])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid operand: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}

	a, b = bitvec.PadToEqual(a, b)
	r.compute(a, b)
}

// cmdRandom handles the "random" command.
func (r *REPL) cmdRandom(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: random <bits>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	bits, err := strconv.Atoi(args[0])
	if err != nil || bits <= 0 {
		fmt.Fprintf(r.out, "%sInvalid width: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}
	r.compute(bitvec.Random(r.rng, bits), bitvec.Random(r.rng, bits))
}

// compute performs one addition with the current adder and prints the result.
func (r *REPL) compute(a, b bitvec.Vector) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	var res adder.Result
	var err error
	start := time.Now()
	if r.algo == "seq" {
		res, err = adder.AddSequential(a, b)
	} else {
		res, err = adder.AddParallel(ctx, a, b, r.config.Barrier)
	}
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}

	DisplayResult(res, duration, false, r.config.ShowValue, r.out)
	fmt.Fprintln(r.out)
}

// cmdAlgo handles the "algo" command.
func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <seq|par>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	name := strings.ToLower(args[0])
	if name != "seq" && name != "par" {
		fmt.Fprintf(r.out, "%sUnknown adder: %s%s (available: seq, par)\n", ui.ColorError(), name, ui.ColorReset())
		return
	}

	r.algo = name
	fmt.Fprintf(r.out, "Adder changed to: %s%s%s\n", ui.ColorSuccess(), name, ui.ColorReset())
}

// cmdBarrier handles the "barrier" command.
func (r *REPL) cmdBarrier(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: barrier <k>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	k, err := strconv.Atoi(args[0])
	if err != nil || k < 0 {
		fmt.Fprintf(r.out, "%sInvalid barrier: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}
	r.config.Barrier = k
	fmt.Fprintf(r.out, "Split barrier changed to: %s2^%d%s bits\n", ui.ColorSuccess(), k, ui.ColorReset())
}

// cmdValue toggles decimal value display.
func (r *REPL) cmdValue() {
	r.config.ShowValue = !r.config.ShowValue
	status := "disabled"
	if r.config.ShowValue {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Decimal value display: %s%s%s\n", ui.ColorSuccess(), status, ui.ColorReset())
}

// cmdStatus displays the current session configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Adder:    %s%s%s\n", ui.ColorInfo(), r.algo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Barrier:  %s2^%d%s bits\n", ui.ColorInfo(), r.config.Barrier, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:  %s%s%s\n", ui.ColorInfo(), r.config.Timeout, ui.ColorReset())
	valueStatus := "no"
	if r.config.ShowValue {
		valueStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Decimal:  %s%s%s\n", ui.ColorInfo(), valueStatus, ui.ColorReset())
	fmt.Fprintln(r.out)
}
