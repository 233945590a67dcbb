package cpu

// opcodeEntry is one row of the dense 256-entry dispatch table: which
// instruction family, which addressing mode, the instruction's base
// cycle count, and whether an indexed/indirect read mode pays one more
// cycle when its address computation crosses a page boundary. Store
// instructions and unary read-modify-write instructions never set
// extraOnCross — their indexed forms already have the penalty cycle
// baked into the base count (the real hardware "pre-charges" it),
// per spec.md §4.4.
type opcodeEntry struct {
	mnemonic     mnemonic
	mode         AddressingMode
	cycles       int
	extraOnCross bool
}

// opcodeTable is the compile-time-constant 256-entry decode table
// spec.md §9 asks for: addressing mode travels with the opcode entry,
// decoded by one array lookup, rather than being baked into separate
// per-mode handler functions. Unlisted indices keep the zero value
// (mnUNDEFINED) and are treated as an illegal opcode by Step.
var opcodeTable = [256]opcodeEntry{
	0x00: {mnBRK, ModeImplied, 7, false},
	0x01: {mnORA, ModeIndirectX, 6, false},
	0x05: {mnORA, ModeZeroPage, 3, false},
	0x06: {mnASL, ModeZeroPage, 5, false},
	0x08: {mnPHP, ModeImplied, 3, false},
	0x09: {mnORA, ModeImmediate, 2, false},
	0x0A: {mnASL, ModeAccumulator, 2, false},
	0x0D: {mnORA, ModeAbsolute, 4, false},
	0x0E: {mnASL, ModeAbsolute, 6, false},

	0x10: {mnBPL, ModeRelative, 2, false},
	0x11: {mnORA, ModeIndirectY, 5, true},
	0x15: {mnORA, ModeZeroPageX, 4, false},
	0x16: {mnASL, ModeZeroPageX, 6, false},
	0x18: {mnCLC, ModeImplied, 2, false},
	0x19: {mnORA, ModeAbsoluteY, 4, true},
	0x1D: {mnORA, ModeAbsoluteX, 4, true},
	0x1E: {mnASL, ModeAbsoluteX, 7, false},

	0x20: {mnJSR, ModeAbsolute, 6, false},
	0x21: {mnAND, ModeIndirectX, 6, false},
	0x24: {mnBIT, ModeZeroPage, 3, false},
	0x25: {mnAND, ModeZeroPage, 3, false},
	0x26: {mnROL, ModeZeroPage, 5, false},
	0x28: {mnPLP, ModeImplied, 4, false},
	0x29: {mnAND, ModeImmediate, 2, false},
	0x2A: {mnROL, ModeAccumulator, 2, false},
	0x2C: {mnBIT, ModeAbsolute, 4, false},
	0x2D: {mnAND, ModeAbsolute, 4, false},
	0x2E: {mnROL, ModeAbsolute, 6, false},

	0x30: {mnBMI, ModeRelative, 2, false},
	0x31: {mnAND, ModeIndirectY, 5, true},
	0x35: {mnAND, ModeZeroPageX, 4, false},
	0x36: {mnROL, ModeZeroPageX, 6, false},
	0x38: {mnSEC, ModeImplied, 2, false},
	0x39: {mnAND, ModeAbsoluteY, 4, true},
	0x3D: {mnAND, ModeAbsoluteX, 4, true},
	0x3E: {mnROL, ModeAbsoluteX, 7, false},

	0x40: {mnRTI, ModeImplied, 6, false},
	0x41: {mnEOR, ModeIndirectX, 6, false},
	0x45: {mnEOR, ModeZeroPage, 3, false},
	0x46: {mnLSR, ModeZeroPage, 5, false},
	0x48: {mnPHA, ModeImplied, 3, false},
	0x49: {mnEOR, ModeImmediate, 2, false},
	0x4A: {mnLSR, ModeAccumulator, 2, false},
	0x4C: {mnJMP, ModeAbsolute, 3, false},
	0x4D: {mnEOR, ModeAbsolute, 4, false},
	0x4E: {mnLSR, ModeAbsolute, 6, false},

	0x50: {mnBVC, ModeRelative, 2, false},
	0x51: {mnEOR, ModeIndirectY, 5, true},
	0x55: {mnEOR, ModeZeroPageX, 4, false},
	0x56: {mnLSR, ModeZeroPageX, 6, false},
	0x58: {mnCLI, ModeImplied, 2, false},
	0x59: {mnEOR, ModeAbsoluteY, 4, true},
	0x5D: {mnEOR, ModeAbsoluteX, 4, true},
	0x5E: {mnLSR, ModeAbsoluteX, 7, false},

	0x60: {mnRTS, ModeImplied, 6, false},
	0x61: {mnADC, ModeIndirectX, 6, false},
	0x65: {mnADC, ModeZeroPage, 3, false},
	0x66: {mnROR, ModeZeroPage, 5, false},
	0x68: {mnPLA, ModeImplied, 4, false},
	0x69: {mnADC, ModeImmediate, 2, false},
	0x6A: {mnROR, ModeAccumulator, 2, false},
	0x6C: {mnJMP, ModeIndirect, 5, false},
	0x6D: {mnADC, ModeAbsolute, 4, false},
	0x6E: {mnROR, ModeAbsolute, 6, false},

	0x70: {mnBVS, ModeRelative, 2, false},
	0x71: {mnADC, ModeIndirectY, 5, true},
	0x75: {mnADC, ModeZeroPageX, 4, false},
	0x76: {mnROR, ModeZeroPageX, 6, false},
	0x78: {mnSEI, ModeImplied, 2, false},
	0x79: {mnADC, ModeAbsoluteY, 4, true},
	0x7D: {mnADC, ModeAbsoluteX, 4, true},
	0x7E: {mnROR, ModeAbsoluteX, 7, false},

	0x81: {mnSTA, ModeIndirectX, 6, false},
	0x84: {mnSTY, ModeZeroPage, 3, false},
	0x85: {mnSTA, ModeZeroPage, 3, false},
	0x86: {mnSTX, ModeZeroPage, 3, false},
	0x88: {mnDEY, ModeImplied, 2, false},
	0x8A: {mnTXA, ModeImplied, 2, false},
	0x8C: {mnSTY, ModeAbsolute, 4, false},
	0x8D: {mnSTA, ModeAbsolute, 4, false},
	0x8E: {mnSTX, ModeAbsolute, 4, false},

	0x90: {mnBCC, ModeRelative, 2, false},
	0x91: {mnSTA, ModeIndirectY, 6, false},
	0x94: {mnSTY, ModeZeroPageX, 4, false},
	0x95: {mnSTA, ModeZeroPageX, 4, false},
	0x96: {mnSTX, ModeZeroPageY, 4, false},
	0x98: {mnTYA, ModeImplied, 2, false},
	0x99: {mnSTA, ModeAbsoluteY, 5, false},
	0x9A: {mnTXS, ModeImplied, 2, false},
	0x9D: {mnSTA, ModeAbsoluteX, 5, false},

	0xA0: {mnLDY, ModeImmediate, 2, false},
	0xA1: {mnLDA, ModeIndirectX, 6, false},
	0xA2: {mnLDX, ModeImmediate, 2, false},
	0xA4: {mnLDY, ModeZeroPage, 3, false},
	0xA5: {mnLDA, ModeZeroPage, 3, false},
	0xA6: {mnLDX, ModeZeroPage, 3, false},
	0xA8: {mnTAY, ModeImplied, 2, false},
	0xA9: {mnLDA, ModeImmediate, 2, false},
	0xAA: {mnTAX, ModeImplied, 2, false},
	0xAC: {mnLDY, ModeAbsolute, 4, false},
	0xAD: {mnLDA, ModeAbsolute, 4, false},
	0xAE: {mnLDX, ModeAbsolute, 4, false},

	0xB0: {mnBCS, ModeRelative, 2, false},
	0xB1: {mnLDA, ModeIndirectY, 5, true},
	0xB4: {mnLDY, ModeZeroPageX, 4, false},
	0xB5: {mnLDA, ModeZeroPageX, 4, false},
	0xB6: {mnLDX, ModeZeroPageY, 4, false},
	0xB8: {mnCLV, ModeImplied, 2, false},
	0xB9: {mnLDA, ModeAbsoluteY, 4, true},
	0xBA: {mnTSX, ModeImplied, 2, false},
	0xBC: {mnLDY, ModeAbsoluteX, 4, true},
	0xBD: {mnLDA, ModeAbsoluteX, 4, true},
	0xBE: {mnLDX, ModeAbsoluteY, 4, true},

	0xC0: {mnCPY, ModeImmediate, 2, false},
	0xC1: {mnCMP, ModeIndirectX, 6, false},
	0xC4: {mnCPY, ModeZeroPage, 3, false},
	0xC5: {mnCMP, ModeZeroPage, 3, false},
	0xC6: {mnDEC, ModeZeroPage, 5, false},
	0xC8: {mnINY, ModeImplied, 2, false},
	0xC9: {mnCMP, ModeImmediate, 2, false},
	0xCA: {mnDEX, ModeImplied, 2, false},
	0xCC: {mnCPY, ModeAbsolute, 4, false},
	0xCD: {mnCMP, ModeAbsolute, 4, false},
	0xCE: {mnDEC, ModeAbsolute, 6, false},

	0xD0: {mnBNE, ModeRelative, 2, false},
	0xD1: {mnCMP, ModeIndirectY, 5, true},
	0xD5: {mnCMP, ModeZeroPageX, 4, false},
	0xD6: {mnDEC, ModeZeroPageX, 6, false},
	0xD8: {mnCLD, ModeImplied, 2, false},
	0xD9: {mnCMP, ModeAbsoluteY, 4, true},
	0xDD: {mnCMP, ModeAbsoluteX, 4, true},
	0xDE: {mnDEC, ModeAbsoluteX, 7, false},

	0xE0: {mnCPX, ModeImmediate, 2, false},
	0xE1: {mnSBC, ModeIndirectX, 6, false},
	0xE4: {mnCPX, ModeZeroPage, 3, false},
	0xE5: {mnSBC, ModeZeroPage, 3, false},
	0xE6: {mnINC, ModeZeroPage, 5, false},
	0xE8: {mnINX, ModeImplied, 2, false},
	0xE9: {mnSBC, ModeImmediate, 2, false},
	0xEA: {mnNOP, ModeImplied, 2, false},
	0xEC: {mnCPX, ModeAbsolute, 4, false},
	0xED: {mnSBC, ModeAbsolute, 4, false},
	0xEE: {mnINC, ModeAbsolute, 6, false},

	0xF0: {mnBEQ, ModeRelative, 2, false},
	0xF1: {mnSBC, ModeIndirectY, 5, true},
	0xF5: {mnSBC, ModeZeroPageX, 4, false},
	0xF6: {mnINC, ModeZeroPageX, 6, false},
	0xF8: {mnSED, ModeImplied, 2, false},
	0xF9: {mnSBC, ModeAbsoluteY, 4, true},
	0xFD: {mnSBC, ModeAbsoluteX, 4, true},
	0xFE: {mnINC, ModeAbsoluteX, 7, false},
}

// Lookup exposes one opcode's decode information to other packages
// (the disasm package in particular) so they share this table rather
// than keeping a second copy that could drift out of sync. ok is
// false for opcodes with no documented binding.
func Lookup(opcode uint8) (mnemonic string, mode AddressingMode, length int, ok bool) {
	e := opcodeTable[opcode]
	if e.mnemonic == mnUNDEFINED {
		return "???", e.mode, 1, false
	}
	return e.mnemonic.String(), e.mode, operandLength(e.mode), true
}

// operandLength is how many bytes, including the opcode byte itself,
// an instruction using mode occupies.
func operandLength(mode AddressingMode) int {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return 1
	case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY,
		ModeIndirectX, ModeIndirectY, ModeRelative:
		return 2
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect:
		return 3
	default:
		return 1
	}
}

// execute dispatches a decoded opcode entry to its family handler.
// This is the single switch spec.md §9 calls for: the addressing mode
// travels with the entry rather than being baked into per-mode
// handler variants.
func (c *CPU) execute(e opcodeEntry) {
	switch e.mnemonic {
	case mnADC:
		c.adc(e)
	case mnAND:
		c.logical(e, func(a, m uint8) uint8 { return a & m })
	case mnASL:
		c.shiftRotate(e, shiftASL)
	case mnBCC:
		c.branch(e, FlagC, false)
	case mnBCS:
		c.branch(e, FlagC, true)
	case mnBEQ:
		c.branch(e, FlagZ, true)
	case mnBIT:
		c.bit(e)
	case mnBMI:
		c.branch(e, FlagN, true)
	case mnBNE:
		c.branch(e, FlagZ, false)
	case mnBPL:
		c.branch(e, FlagN, false)
	case mnBRK:
		c.brk()
	case mnBVC:
		c.branch(e, FlagV, false)
	case mnBVS:
		c.branch(e, FlagV, true)
	case mnCLC:
		c.P &^= FlagC
		c.Cycles += 2
	case mnCLD:
		c.P &^= FlagD
		c.Cycles += 2
	case mnCLI:
		c.P &^= FlagI
		c.Cycles += 2
	case mnCLV:
		c.P &^= FlagV
		c.Cycles += 2
	case mnCMP:
		c.compare(e, c.A)
	case mnCPX:
		c.compare(e, c.X)
	case mnCPY:
		c.compare(e, c.Y)
	case mnDEC:
		c.incDecMem(e, 0xFF)
	case mnDEX:
		c.X--
		c.setNZ(c.X)
		c.Cycles += 2
	case mnDEY:
		c.Y--
		c.setNZ(c.Y)
		c.Cycles += 2
	case mnEOR:
		c.logical(e, func(a, m uint8) uint8 { return a ^ m })
	case mnINC:
		c.incDecMem(e, 1)
	case mnINX:
		c.X++
		c.setNZ(c.X)
		c.Cycles += 2
	case mnINY:
		c.Y++
		c.setNZ(c.Y)
		c.Cycles += 2
	case mnJMP:
		c.jmp(e)
	case mnJSR:
		c.jsr()
	case mnLDA:
		c.load(e, &c.A)
	case mnLDX:
		c.load(e, &c.X)
	case mnLDY:
		c.load(e, &c.Y)
	case mnLSR:
		c.shiftRotate(e, shiftLSR)
	case mnNOP:
		c.Cycles += 2
	case mnORA:
		c.logical(e, func(a, m uint8) uint8 { return a | m })
	case mnPHA:
		c.push(c.A)
		c.Cycles += 3
	case mnPHP:
		c.push(c.P | FlagB | FlagUnused)
		c.Cycles += 3
	case mnPLA:
		c.A = c.pull()
		c.setNZ(c.A)
		c.Cycles += 4
	case mnPLP:
		c.P = (c.pull() &^ FlagB) | FlagUnused
		c.Cycles += 4
	case mnROL:
		c.shiftRotate(e, shiftROL)
	case mnROR:
		c.shiftRotate(e, shiftROR)
	case mnRTI:
		c.P = (c.pull() &^ FlagB) | FlagUnused
		c.PC = c.pullWord()
		c.Cycles += 6
	case mnRTS:
		c.PC = c.pullWord() + 1
		c.Cycles += 6
	case mnSBC:
		c.sbc(e)
	case mnSEC:
		c.P |= FlagC
		c.Cycles += 2
	case mnSED:
		c.P |= FlagD
		c.Cycles += 2
	case mnSEI:
		c.P |= FlagI
		c.Cycles += 2
	case mnSTA:
		c.store(e, c.A)
	case mnSTX:
		c.store(e, c.X)
	case mnSTY:
		c.store(e, c.Y)
	case mnTAX:
		c.X = c.A
		c.setNZ(c.X)
		c.Cycles += 2
	case mnTAY:
		c.Y = c.A
		c.setNZ(c.Y)
		c.Cycles += 2
	case mnTSX:
		c.X = c.SP
		c.setNZ(c.X)
		c.Cycles += 2
	case mnTXA:
		c.A = c.X
		c.setNZ(c.A)
		c.Cycles += 2
	case mnTXS:
		c.SP = c.X
		c.Cycles += 2
	case mnTYA:
		c.A = c.Y
		c.setNZ(c.A)
		c.Cycles += 2
	default:
		panic("cpu: execute called with an unhandled mnemonic")
	}
}
