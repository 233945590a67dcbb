// Package runner drives a cpu.CPU through repeated Step calls,
// applying the step limit, cycle throttling, and halt-hook
// conveniences a standalone interpreter needs around the bare
// instruction loop.
package runner

import (
	"errors"
	"log"
	"time"

	"github.com/florianehmann/6502-emulator/cpu"
	"github.com/florianehmann/6502-emulator/irq"
)

// ErrStepLimit is returned by Run when MaxSteps is reached without the
// program halting on its own (a BetweenStep hook returning false, or an
// illegal opcode).
var ErrStepLimit = errors.New("runner: step limit reached")

// Options configures a Run call.
type Options struct {
	// MaxSteps bounds how many instructions Run executes before giving
	// up and returning ErrStepLimit. Zero means unbounded.
	MaxSteps int

	// BetweenStep, if set, is called after every successfully executed
	// instruction. Returning false stops Run cleanly (nil error).
	BetweenStep func(c *cpu.CPU) bool

	// CyclesPerSecond, if nonzero, throttles Run to approximate that
	// clock rate by sleeping between steps based on cycles consumed.
	CyclesPerSecond int

	// IRQSource, if set, is polled after every successfully executed
	// instruction; whenever it reports Raised(), Run calls c.IRQ()
	// itself, so a caller only has to hand Run a level-triggered
	// peripheral instead of re-deriving this polling loop.
	IRQSource irq.Sender
}

// Run executes instructions on c until Step reports a BRK, a
// BetweenStep hook returns false, an illegal opcode is hit, or
// MaxSteps is exceeded. It returns the number of instructions
// executed.
func Run(c *cpu.CPU, opts Options) (int, error) {
	steps := 0
	lastCycles := c.Cycles
	start := time.Now()

	for {
		if opts.MaxSteps > 0 && steps >= opts.MaxSteps {
			return steps, ErrStepLimit
		}

		res, err := c.Step()
		steps++
		if err != nil {
			var illegal *cpu.IllegalOpcodeError
			if errors.As(err, &illegal) {
				log.Printf("runner: halting on illegal opcode: %v", err)
				return steps, err
			}
			return steps, err
		}
		if res == cpu.Break {
			return steps, nil
		}

		if opts.IRQSource != nil && opts.IRQSource.Raised() {
			c.IRQ()
		}

		if opts.CyclesPerSecond > 0 {
			elapsedCycles := c.Cycles - lastCycles
			wantElapsed := time.Duration(elapsedCycles) * time.Second / time.Duration(opts.CyclesPerSecond)
			if actual := time.Since(start); wantElapsed > actual {
				time.Sleep(wantElapsed - actual)
			}
		}

		if opts.BetweenStep != nil && !opts.BetweenStep(c) {
			return steps, nil
		}
	}
}
