// Package disasm renders the bytes at a given address as one line of
// 6502 assembly, using the opcode table owned by the cpu package so
// the two can never disagree about what an opcode means.
package disasm

import (
	"fmt"

	"github.com/florianehmann/6502-emulator/cpu"
)

// Reader is the capability disasm needs from memory: a single-byte
// read at an address. bus.Bus and cpu's test doubles both satisfy it.
type Reader interface {
	Read(addr uint16) uint8
}

// Step disassembles the instruction at pc, returning its text and the
// number of bytes (including the opcode) it occupies. It reads as many
// bytes past pc as the instruction's operand takes (at most two), so
// r must tolerate reads in that range; bus.Bus returns 0 for unmapped
// addresses rather than panicking, so this is safe even near the end
// of a region.
func Step(pc uint16, r Reader) (string, int) {
	opcode := r.Read(pc)
	mnemonic, mode, length, ok := cpu.Lookup(opcode)
	if !ok {
		return mnemonic, 1
	}

	switch mode {
	case cpu.ModeImplied:
		return mnemonic, length
	case cpu.ModeAccumulator:
		return mnemonic + " A", length
	case cpu.ModeImmediate:
		return fmt.Sprintf("%s #$%02X", mnemonic, r.Read(pc+1)), length
	case cpu.ModeZeroPage:
		return fmt.Sprintf("%s $%02X", mnemonic, r.Read(pc+1)), length
	case cpu.ModeZeroPageX:
		return fmt.Sprintf("%s $%02X,X", mnemonic, r.Read(pc+1)), length
	case cpu.ModeZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", mnemonic, r.Read(pc+1)), length
	case cpu.ModeAbsolute:
		return fmt.Sprintf("%s $%04X", mnemonic, word(pc, r)), length
	case cpu.ModeAbsoluteX:
		return fmt.Sprintf("%s $%04X,X", mnemonic, word(pc, r)), length
	case cpu.ModeAbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", mnemonic, word(pc, r)), length
	case cpu.ModeIndirect:
		return fmt.Sprintf("%s ($%04X)", mnemonic, word(pc, r)), length
	case cpu.ModeIndirectX:
		return fmt.Sprintf("%s ($%02X,X)", mnemonic, r.Read(pc+1)), length
	case cpu.ModeIndirectY:
		return fmt.Sprintf("%s ($%02X),Y", mnemonic, r.Read(pc+1)), length
	case cpu.ModeRelative:
		offset := int8(r.Read(pc + 1))
		target := uint16(int32(pc) + 2 + int32(offset))
		return fmt.Sprintf("%s $%04X", mnemonic, target), length
	default:
		return mnemonic, length
	}
}

func word(pc uint16, r Reader) uint16 {
	lo := r.Read(pc + 1)
	hi := r.Read(pc + 2)
	return uint16(hi)<<8 | uint16(lo)
}

// Listing disassembles count instructions starting at pc, returning
// each line prefixed with its address. Useful for the wozmon TUI and
// the standalone disassembler command.
func Listing(pc uint16, r Reader, count int) []string {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		text, n := Step(pc, r)
		lines = append(lines, fmt.Sprintf("%04X: %s", pc, text))
		pc += uint16(n)
	}
	return lines
}
