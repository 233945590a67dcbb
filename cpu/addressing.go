package cpu

// AddressingMode tags how an opcode's operand bytes resolve to an
// effective address. Accumulator is a distinct tag from the memory
// modes (rather than a nullable mode parameter, as the retrieved
// Python original does) so a missing case shows up as a compile-time
// exhaustiveness gap during review rather than a runtime nil check.
type AddressingMode int

const (
	ModeImplied AddressingMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirectX
	ModeIndirectY
	ModeIndirect // JMP only
	ModeRelative // branches only
)

// resolved is what resolveAddress reports back to an instruction
// executor: the effective address to read/write and whether computing
// it crossed a page boundary (relevant only to modes that can pay an
// extra cycle for it).
type resolved struct {
	addr        uint16
	pageCrossed bool
}

// resolveAddress fetches whatever operand bytes mode requires,
// advancing PC past them, and computes the effective address per
// spec.md §4.2. ModeImplied, ModeAccumulator, ModeIndirect and
// ModeRelative are not handled here: Implied/Accumulator instructions
// never call this, ModeIndirect is JMP-only and decoded in jmp(), and
// ModeRelative is decoded directly in branch().
func (c *CPU) resolveAddress(mode AddressingMode) resolved {
	switch mode {
	case ModeImmediate:
		addr := c.PC
		c.PC++
		return resolved{addr: addr}

	case ModeZeroPage:
		return resolved{addr: uint16(c.fetch())}

	case ModeZeroPageX:
		zp := c.fetch()
		return resolved{addr: uint16(zp + c.X)}

	case ModeZeroPageY:
		zp := c.fetch()
		return resolved{addr: uint16(zp + c.Y)}

	case ModeAbsolute:
		lo := c.fetch()
		hi := c.fetch()
		return resolved{addr: uint16(hi)<<8 | uint16(lo)}

	case ModeAbsoluteX:
		lo := c.fetch()
		hi := c.fetch()
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.X)
		return resolved{addr: addr, pageCrossed: pageCrossed(base, addr)}

	case ModeAbsoluteY:
		lo := c.fetch()
		hi := c.fetch()
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		return resolved{addr: addr, pageCrossed: pageCrossed(base, addr)}

	case ModeIndirectX:
		zp := c.fetch() + c.X
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		return resolved{addr: uint16(hi)<<8 | uint16(lo)}

	case ModeIndirectY:
		zp := c.fetch()
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		return resolved{addr: addr, pageCrossed: pageCrossed(base, addr)}

	default:
		panic("cpu: resolveAddress called with a mode it does not decode")
	}
}

// pageCrossed reports whether base and effective fall in different
// 256-byte pages, per spec.md's definition.
func pageCrossed(base, effective uint16) bool {
	return base&0xFF00 != effective&0xFF00
}
