package runner

import (
	"testing"

	"github.com/florianehmann/6502-emulator/cpu"
	"github.com/stretchr/testify/require"
)

type flatBus [65536]uint8

func (b *flatBus) Read(addr uint16) uint8       { return b[addr] }
func (b *flatBus) Write(addr uint16, val uint8) { b[addr] = val }

func TestRunStopsOnBetweenStepFalse(t *testing.T) {
	var bus flatBus
	bus[0xFFFC], bus[0xFFFD] = 0x00, 0x02
	bus[0x0200] = 0xA9 // LDA #$01
	bus[0x0201] = 0x01
	bus[0x0202] = 0xA9 // LDA #$02
	bus[0x0203] = 0x02
	bus[0x0204] = 0xA9 // LDA #$03 — never reached
	bus[0x0205] = 0x03

	c := cpu.New(&bus)
	c.Reset()

	calls := 0
	steps, err := Run(c, Options{
		BetweenStep: func(c *cpu.CPU) bool {
			calls++
			return calls < 2
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, steps)
	require.Equal(t, uint8(0x02), c.A)
}

func TestRunReturnsErrStepLimit(t *testing.T) {
	var bus flatBus
	bus[0xFFFC], bus[0xFFFD] = 0x00, 0x02
	for a := 0x0200; a < 0x0300; a++ {
		bus[a] = 0xEA // NOPs, more than MaxSteps can reach
	}

	c := cpu.New(&bus)
	c.Reset()

	steps, err := Run(c, Options{MaxSteps: 5})
	require.ErrorIs(t, err, ErrStepLimit)
	require.Equal(t, 5, steps)
}

func TestRunStopsOnBRK(t *testing.T) {
	var bus flatBus
	bus[0xFFFC], bus[0xFFFD] = 0x00, 0x02
	bus[0x0200] = 0xA9 // LDA #$01
	bus[0x0201] = 0x01
	bus[0x0202] = 0x00 // BRK
	bus[0x0203] = 0xEA // signature byte
	bus[0x0204] = 0xA9 // LDA #$FF — must never execute
	bus[0x0205] = 0xFF

	c := cpu.New(&bus)
	c.Reset()

	steps, err := Run(c, Options{})
	require.NoError(t, err)
	require.Equal(t, 2, steps)
	require.Equal(t, uint8(0x01), c.A)
}

type levelSender struct{ raised bool }

func (s *levelSender) Raised() bool { return s.raised }

func TestRunPollsIRQSourceAndDeliversIRQ(t *testing.T) {
	var bus flatBus
	bus[0xFFFC], bus[0xFFFD] = 0x00, 0x02
	bus[0xFFFE], bus[0xFFFF] = 0x00, 0x04 // IRQ vector
	bus[0x0200] = 0xEA                    // NOP
	bus[0x0201] = 0xEA                    // NOP, never reached once IRQ fires
	bus[0x0400] = 0x00                    // BRK, halts the handler so Run returns

	c := cpu.New(&bus)
	c.Reset()
	c.P &^= cpu.FlagI

	source := &levelSender{raised: true}
	steps, err := Run(c, Options{IRQSource: source})
	require.NoError(t, err)
	require.Equal(t, 2, steps) // NOP, then the IRQ-vector BRK
	require.Equal(t, uint16(0x0400), c.PC) // BRK at the IRQ vector re-enters itself
}

func TestRunStopsOnIllegalOpcode(t *testing.T) {
	var bus flatBus
	bus[0xFFFC], bus[0xFFFD] = 0x00, 0x02
	bus[0x0200] = 0x02 // illegal

	c := cpu.New(&bus)
	c.Reset()

	steps, err := Run(c, Options{})
	require.Error(t, err)
	require.Equal(t, 1, steps)
}
