// Package cpu implements a behavioral, cycle-counting model of the
// NMOS 6502: the documented instruction set, NMOS flag semantics
// (including the indirect-JMP page-wrap bug and decimal-mode ADC/SBC),
// and the three hardware interrupt entry sequences. It is
// instruction-accurate (one Step call runs a whole instruction to
// completion) and aggregate-accurate on cycle counts, matching the
// scope the teacher repo's tick-level core intentionally trades away
// for simplicity here.
package cpu

import (
	"fmt"
)

// Bus is the capability a CPU needs from its memory map: byte
// addressable reads and writes over the full 16-bit address space.
// bus.Bus satisfies this structurally; tests commonly supply a flat
// array instead.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// Status register bit positions, named as in spec.md's data model.
const (
	FlagC      uint8 = 1 << 0 // Carry
	FlagZ      uint8 = 1 << 1 // Zero
	FlagI      uint8 = 1 << 2 // Interrupt disable
	FlagD      uint8 = 1 << 3 // Decimal mode
	FlagB      uint8 = 1 << 4 // Break (synthetic, only meaningful in a pushed copy)
	FlagUnused uint8 = 1 << 5 // Always reads as 1
	FlagV      uint8 = 1 << 6 // Overflow
	FlagN      uint8 = 1 << 7 // Negative
)

// Interrupt and reset vectors, little-endian pairs at the top of the
// address space. IRQ and BRK share a vector, as on real hardware.
const (
	VectorNMI   = uint16(0xFFFA)
	VectorReset = uint16(0xFFFC)
	VectorIRQ   = uint16(0xFFFE)
)

// StackBase is the fixed high byte of the 256-byte stack; the
// top-of-stack byte lives at StackBase + SP.
const StackBase = uint16(0x0100)

// StepResult reports what kind of instruction Step just executed.
type StepResult int

const (
	// Normal means the instruction was not a BRK.
	Normal StepResult = iota
	// Break means a BRK instruction was just executed; the pushed
	// status byte has its B bit set, but the in-CPU P is kept clean
	// of that synthetic bit per spec.md's "B flag" design note.
	Break
)

func (r StepResult) String() string {
	if r == Break {
		return "Break"
	}
	return "Normal"
}

// IllegalOpcodeError is returned (via Step) when the opcode at PC has
// no entry in the dispatch table. The CPU has already executed a BRK
// in its place, matching the documented "treat as BRK, diagnose
// loudly" policy; this error carries the diagnosis.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode %#02x at PC %#04x (executed as BRK)", e.Opcode, e.PC)
}

// CPU is a behavioral model of the MOS 6502 register file plus the
// bus it's wired to.
type CPU struct {
	A, X, Y uint8
	PC      uint16
	SP      uint8
	P       uint8
	Cycles  uint64

	bus Bus
}

// New constructs a CPU wired to bus, in the documented post-construction
// (pre-RESET) state: A=X=Y=0, PC=0, SP=0xFF, and P with Z, I, and the
// unused bit set.
func New(bus Bus) *CPU {
	return &CPU{
		SP:  0xFF,
		P:   FlagZ | FlagI | FlagUnused,
		bus: bus,
	}
}

// setZ sets or clears the Z flag based on whether v's low 8 bits are 0.
func (c *CPU) setZ(v uint8) {
	if v == 0 {
		c.P |= FlagZ
	} else {
		c.P &^= FlagZ
	}
}

// setN sets or clears the N flag from bit 7 of v.
func (c *CPU) setN(v uint8) {
	if v&0x80 != 0 {
		c.P |= FlagN
	} else {
		c.P &^= FlagN
	}
}

// setNZ is the common case of updating both flags from the same result byte.
func (c *CPU) setNZ(v uint8) {
	c.setZ(v)
	c.setN(v)
}

func (c *CPU) setC(set bool) {
	if set {
		c.P |= FlagC
	} else {
		c.P &^= FlagC
	}
}

func (c *CPU) setV(set bool) {
	if set {
		c.P |= FlagV
	} else {
		c.P &^= FlagV
	}
}

func (c *CPU) getC() bool { return c.P&FlagC != 0 }
func (c *CPU) getD() bool { return c.P&FlagD != 0 }

// setVForAdd computes the signed-overflow flag for an ADC-style
// addition: a + operand = result (the binary intermediate, computed
// even in decimal mode, per spec.md §4.4/§9).
func setVForAdd(a, operand, result uint8) bool {
	return (^(a ^ operand) & (a ^ result) & 0x80) != 0
}

func (c *CPU) push(b uint8) {
	c.bus.Write(StackBase+uint16(c.SP), b)
	c.SP--
}

func (c *CPU) pull() uint8 {
	c.SP++
	return c.bus.Read(StackBase + uint16(c.SP))
}

func (c *CPU) pushWord(w uint16) {
	c.push(uint8(w >> 8))
	c.push(uint8(w))
}

func (c *CPU) pullWord() uint16 {
	lo := c.pull()
	hi := c.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// fetch reads the byte at PC and advances PC past it.
func (c *CPU) fetch() uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

// Step executes exactly one instruction: fetch the opcode at PC,
// resolve its addressing mode (consuming operand bytes and advancing
// PC), perform the operation, and update flags/registers/Cycles. It
// returns Break if the instruction just executed was BRK.
func (c *CPU) Step() (StepResult, error) {
	opcode := c.fetch()
	entry := opcodeTable[opcode]
	if entry.mnemonic == mnUNDEFINED {
		err := &IllegalOpcodeError{Opcode: opcode, PC: c.PC - 1}
		c.brk()
		return Break, err
	}
	c.execute(entry)
	if entry.mnemonic == mnBRK {
		return Break, nil
	}
	return Normal, nil
}

// Reset performs the documented RESET entry sequence: SP decrements by
// 3 (as if PC/P were pushed, though nothing is actually written), I is
// set, D is cleared, and PC is loaded from the reset vector. A, X, Y
// and the remaining flags are left exactly as they were — spec.md
// deliberately leaves their post-reset contents implementation-defined
// and this module chooses "unchanged" over the teacher's randomized
// PowerOn, since deterministic test images depend on it.
func (c *CPU) Reset() {
	c.SP -= 3
	c.P |= FlagI
	c.P &^= FlagD
	c.PC = c.readVector(VectorReset)
}

// IRQ requests a maskable interrupt. It is a no-op if the I flag is
// set. Otherwise it runs the standard 7-cycle interrupt entry sequence
// against the IRQ/BRK vector, with B left clear in the pushed status.
func (c *CPU) IRQ() {
	if c.P&FlagI != 0 {
		return
	}
	c.interrupt(VectorIRQ, false)
}

// NMI requests a non-maskable interrupt. Unlike IRQ it always fires,
// regardless of the I flag.
func (c *CPU) NMI() {
	c.interrupt(VectorNMI, false)
}

// brk executes the BRK instruction's entry sequence: PC is advanced
// past the signature byte that follows the opcode, then the standard
// push sequence runs with B forced to 1 in the pushed status.
func (c *CPU) brk() {
	c.PC++
	c.interrupt(VectorIRQ, true)
}

// interrupt is the single entry routine shared by BRK/IRQ/NMI, per
// spec.md §9's consolidation guidance. Reset does not go through here
// since it pushes nothing.
func (c *CPU) interrupt(vector uint16, pushB bool) {
	c.pushWord(c.PC)
	status := c.P | FlagUnused
	if pushB {
		status |= FlagB
	} else {
		status &^= FlagB
	}
	c.push(status)
	c.P |= FlagI
	c.PC = c.readVector(vector)
	c.Cycles += 7
}

func (c *CPU) readVector(lo uint16) uint16 {
	return uint16(c.bus.Read(lo)) | uint16(c.bus.Read(lo+1))<<8
}
