// Package peripheral provides simple MMIO-mapped devices: a terminal
// for character I/O and a single-byte keyboard port, the two
// peripherals a hand-assembled monitor program needs to talk to the
// outside world.
package peripheral

import (
	"io"
	"os"

	"github.com/florianehmann/6502-emulator/irq"
)

var _ irq.Sender = (*Terminal)(nil)

// statusWaiting is the bit position of the input-waiting flag in the
// terminal's status register, matching the retrieved reference
// implementation's register layout.
const statusWaiting = 1 << 7

// Terminal is a three-register MMIO device: a status register, an
// output register that prints a written byte as a character, and an
// input register that returns the most recently buffered byte and
// clears the waiting flag. It implements mmio.Handler three times
// over via its Status/Output/Input accessors rather than as a single
// handler, since each register has independent read/write semantics.
type Terminal struct {
	out io.Writer

	inputBuffer  uint8
	inputWaiting bool
}

// NewTerminal constructs a Terminal that writes output to w. Passing
// nil defaults to os.Stdout.
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stdout
	}
	return &Terminal{out: w}
}

// Status returns the mmio.Handler for the status register (offset 0
// in the retrieved reference layout): its only live bit reports
// whether an input byte is waiting to be read.
func (t *Terminal) Status() *terminalStatus { return (*terminalStatus)(t) }

// Output returns the mmio.Handler for the output register (offset 1):
// writes are interpreted as an ASCII byte and sent to the underlying
// writer; reads always return 0.
func (t *Terminal) Output() *terminalOutput { return (*terminalOutput)(t) }

// Input returns the mmio.Handler for the input register (offset 2):
// reads return the buffered byte and clear the waiting flag; writes
// are how the emulator's keyboard feed delivers a byte to the guest
// program.
func (t *Terminal) Input() *terminalInput { return (*terminalInput)(t) }

// Feed delivers a byte to the guest as if it were typed at the
// keyboard: it becomes the input register's contents and the waiting
// flag is raised.
func (t *Terminal) Feed(b uint8) {
	t.inputBuffer = b
	t.inputWaiting = true
}

// Raised implements irq.Sender: a Terminal holds an interrupt line
// high for as long as an input byte is waiting to be read, so a
// driver loop can poll it (directly, or via runner.Options.IRQSource)
// instead of hand-rolling its own "is there input" check.
func (t *Terminal) Raised() bool {
	return t.inputWaiting
}

type terminalStatus Terminal

func (s *terminalStatus) Read() uint8 {
	var status uint8
	if s.inputWaiting {
		status |= statusWaiting
	}
	return status
}

func (s *terminalStatus) Write(uint8) {}

type terminalOutput Terminal

func (o *terminalOutput) Read() uint8 { return 0 }

func (o *terminalOutput) Write(val uint8) {
	o.out.Write([]byte{val})
}

type terminalInput Terminal

func (i *terminalInput) Read() uint8 {
	i.inputWaiting = false
	return i.inputBuffer
}

func (i *terminalInput) Write(val uint8) {
	(*Terminal)(i).Feed(val)
}
