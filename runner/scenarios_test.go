package runner

import (
	"testing"

	"github.com/florianehmann/6502-emulator/cpu"
	"github.com/stretchr/testify/require"
)

// These three tests reproduce the run-to-BRK scenarios verbatim,
// byte sequence and expected cycle total included, driven through
// Run rather than hand-stepping the CPU.

func TestScenarioS1MinimalStoreHalt(t *testing.T) {
	var bus flatBus
	bus[0xFFFC], bus[0xFFFD] = 0x00, 0x02
	copy(bus[0x0200:], []byte{0xA9, 0x01, 0x8D, 0x00, 0x02, 0xA9, 0x05, 0x8D, 0x01, 0x02, 0x00})

	c := cpu.New(&bus)
	c.Reset()

	_, err := Run(c, Options{})
	require.NoError(t, err)
	require.Equal(t, uint8(0x05), c.A)
	require.Equal(t, uint8(0x01), bus.Read(0x0200))
	require.Equal(t, uint8(0x05), bus.Read(0x0201))
	require.Equal(t, uint64(19), c.Cycles)
}

func TestScenarioS2CountedLoop(t *testing.T) {
	var bus flatBus
	bus[0xFFFC], bus[0xFFFD] = 0x00, 0x03
	copy(bus[0x0300:], []byte{
		0xA2, 0x05, // LDX #5
		0xA9, 0x00, // LDA #0
		0x18,       // loop: CLC
		0x69, 0x01, // ADC #1
		0xCA,       // DEX
		0xD0, 0xFA, // BNE loop
		0x8D, 0x00, 0x02, // STA $0200
		0x00, // BRK
	})

	c := cpu.New(&bus)
	c.Reset()

	_, err := Run(c, Options{})
	require.NoError(t, err)
	require.Equal(t, uint8(0x05), bus.Read(0x0200))
	require.Equal(t, uint64(59), c.Cycles)
}

func TestScenarioS3Subroutine(t *testing.T) {
	var bus flatBus
	bus[0xFFFC], bus[0xFFFD] = 0x00, 0x03
	copy(bus[0x0300:], []byte{
		0xA9, 0x05, // LDA #5
		0x20, 0x09, 0x03, // JSR $0309
		0x18,       // CLC
		0x69, 0x02, // ADC #2
		0x00, // BRK
	})
	copy(bus[0x0309:], []byte{
		0x38,       // SEC
		0xE9, 0x01, // SBC #1
		0x60, // RTS
	})

	c := cpu.New(&bus)
	c.Reset()

	_, err := Run(c, Options{})
	require.NoError(t, err)
	require.Equal(t, uint8(0x06), c.A)
	require.Equal(t, uint64(29), c.Cycles)
}
