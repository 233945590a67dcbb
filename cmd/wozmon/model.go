// wozmon is an interactive single-step debugger TUI for the emulator,
// modeled after a simple page-table-and-register view: step one
// instruction at a time, watch memory and flags change.
package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/florianehmann/6502-emulator/bus"
	"github.com/florianehmann/6502-emulator/cpu"
	"github.com/florianehmann/6502-emulator/disasm"
	"github.com/florianehmann/6502-emulator/irq"
)

type model struct {
	cpu       *cpu.CPU
	bus       *bus.Bus
	irqSource irq.Sender // polled after each step; raised means deliver an IRQ

	offset uint16 // base address of the rendered page table window
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		m.prevPC = m.cpu.PC
		res, err := m.cpu.Step()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		if res != cpu.Break && m.irqSource != nil && m.irqSource.Raised() {
			m.cpu.IRQ()
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.bus.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	names := []string{"N", "V", "_", "B", "D", "I", "Z", "C"}
	bits := []uint8{cpu.FlagN, cpu.FlagV, cpu.FlagUnused, cpu.FlagB, cpu.FlagD, cpu.FlagI, cpu.FlagZ, cpu.FlagC}
	var flags strings.Builder
	for _, b := range bits {
		if m.cpu.P&b != 0 {
			flags.WriteString("/ ")
		} else {
			flags.WriteString("  ")
		}
	}
	text, _ := disasm.Step(m.cpu.PC, m.bus)
	return fmt.Sprintf(`
PC: %04x (was %04x)
 A: %02x  X: %02x  Y: %02x  SP: %02x
NEXT: %s
%s
%s
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP,
		text,
		strings.Join(names, " "),
		flags.String(),
	)
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	lines := []string{header}
	base := m.cpu.PC &^ 0x000F
	for row := -2; row <= 2; row++ {
		lines = append(lines, m.renderPage(uint16(int32(base)+int32(row)*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		spew.Sdump(m.cpu),
	)
}

// run starts the interactive debugger against the given CPU/bus,
// blocking until the user quits. irqSource, if non-nil, is polled after
// every step the user single-steps through, same as runner.Run's
// Options.IRQSource.
func run(c *cpu.CPU, b *bus.Bus, irqSource irq.Sender) error {
	finalModel, err := tea.NewProgram(model{cpu: c, bus: b, irqSource: irqSource}).Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(model); ok && m.err != nil {
		fmt.Println("halted:", m.err)
	}
	return nil
}
