package cpu

// operand resolves the effective address for a non-implied,
// non-accumulator instruction and reads the operand byte there. It
// charges no cycles; callers pass the returned resolved to chargeRead,
// which adds the page-cross penalty when the entry is marked for it.
func (c *CPU) operand(e opcodeEntry) (uint8, resolved) {
	r := c.resolveAddress(e.mode)
	return c.bus.Read(r.addr), r
}

func (c *CPU) chargeRead(e opcodeEntry, r resolved) {
	c.Cycles += uint64(e.cycles)
	if e.extraOnCross && r.pageCrossed {
		c.Cycles++
	}
}

// load implements LDA/LDX/LDY: read the operand into dst and set N/Z.
func (c *CPU) load(e opcodeEntry, dst *uint8) {
	if e.mode == ModeImmediate {
		*dst = c.fetch()
		c.Cycles += uint64(e.cycles)
		c.setNZ(*dst)
		return
	}
	v, r := c.operand(e)
	*dst = v
	c.chargeRead(e, r)
	c.setNZ(*dst)
}

// store implements STA/STX/STY: write val to the resolved address.
// Indexed store addressing never carries extraOnCross (the penalty
// cycle is already folded into the base count for writes).
func (c *CPU) store(e opcodeEntry, val uint8) {
	r := c.resolveAddress(e.mode)
	c.bus.Write(r.addr, val)
	c.Cycles += uint64(e.cycles)
}

// logical implements AND/EOR/ORA: combine A with the operand via op
// and set N/Z. ORA and EOR do not pay the indexed page-cross penalty
// on the immediate form since there is no address to cross; the
// IndirectY/AbsoluteX/AbsoluteY forms do, per the opcode table.
func (c *CPU) logical(e opcodeEntry, op func(a, m uint8) uint8) {
	if e.mode == ModeImmediate {
		m := c.fetch()
		c.Cycles += uint64(e.cycles)
		c.A = op(c.A, m)
		c.setNZ(c.A)
		return
	}
	m, r := c.operand(e)
	c.chargeRead(e, r)
	c.A = op(c.A, m)
	c.setNZ(c.A)
}

// bit implements BIT: Z is set from A&M being zero, while N and V are
// copied directly from bits 7 and 6 of the memory operand (not of the
// AND result), per spec.md §4.4.
func (c *CPU) bit(e opcodeEntry) {
	m, r := c.operand(e)
	c.chargeRead(e, r)
	c.setZ(c.A & m)
	c.setN(m)
	c.setV(m&0x40 != 0)
}

// compare implements CMP/CPX/CPY: subtract the operand from reg
// (without affecting reg), setting C/Z/N from the comparison exactly
// as an SBC would, but discarding the result and never touching D/V.
func (c *CPU) compare(e opcodeEntry, reg uint8) {
	var m uint8
	var r resolved
	if e.mode == ModeImmediate {
		m = c.fetch()
		c.Cycles += uint64(e.cycles)
	} else {
		m, r = c.operand(e)
		c.chargeRead(e, r)
	}
	result := reg - m
	c.setC(reg >= m)
	c.setNZ(result)
}

// incDecMem implements INC/DEC: add delta (1, or 0xFF for -1 modulo 256) to the memory
// operand and write it back, setting N/Z from the new value. Always a
// read-modify-write; never pays a page-cross penalty cycle.
func (c *CPU) incDecMem(e opcodeEntry, delta uint8) {
	r := c.resolveAddress(e.mode)
	v := c.bus.Read(r.addr) + delta
	c.bus.Write(r.addr, v)
	c.Cycles += uint64(e.cycles)
	c.setNZ(v)
}

type shiftKind int

const (
	shiftASL shiftKind = iota
	shiftLSR
	shiftROL
	shiftROR
)

// shiftRotate implements ASL/LSR/ROL/ROR in both their accumulator
// and memory read-modify-write forms.
func (c *CPU) shiftRotate(e opcodeEntry, kind shiftKind) {
	if e.mode == ModeAccumulator {
		c.A = c.shift(kind, c.A)
		c.Cycles += uint64(e.cycles)
		return
	}
	r := c.resolveAddress(e.mode)
	v := c.bus.Read(r.addr)
	v = c.shift(kind, v)
	c.bus.Write(r.addr, v)
	c.Cycles += uint64(e.cycles)
}

func (c *CPU) shift(kind shiftKind, v uint8) uint8 {
	var result uint8
	var carryOut bool
	switch kind {
	case shiftASL:
		carryOut = v&0x80 != 0
		result = v << 1
	case shiftLSR:
		carryOut = v&0x01 != 0
		result = v >> 1
	case shiftROL:
		carryOut = v&0x80 != 0
		result = v << 1
		if c.getC() {
			result |= 0x01
		}
	case shiftROR:
		carryOut = v&0x01 != 0
		result = v >> 1
		if c.getC() {
			result |= 0x80
		}
	}
	c.setC(carryOut)
	c.setNZ(result)
	return result
}

// adc implements ADC, including NMOS decimal mode: N, Z and V are
// derived from the binary intermediate even when D is set (spec.md
// §4.4/§9), while C and the accumulator receive the decimal carry and
// the decimal-corrected result when D is set.
func (c *CPU) adc(e opcodeEntry) {
	m, _ := c.readOperandCharged(e)
	carryIn := uint8(0)
	if c.getC() {
		carryIn = 1
	}
	binSum16 := uint16(c.A) + uint16(m) + uint16(carryIn)
	binResult := uint8(binSum16)
	c.setV(setVForAdd(c.A, m, binResult))
	c.setNZ(binResult)
	c.setC(binSum16 > 0xFF)

	if !c.getD() {
		c.A = binResult
		return
	}

	lo := (c.A & 0x0F) + (m & 0x0F) + carryIn
	hi := (c.A >> 4) + (m >> 4)
	if lo > 9 {
		lo += 6
		hi++
	}
	if hi > 9 {
		hi += 6
	}
	c.setC(hi > 0x0F)
	c.A = (hi << 4) | (lo & 0x0F)
}

// sbc implements SBC as ADC with the operand's ones' complement, the
// standard NMOS identity; decimal mode applies the matching BCD
// borrow correction.
func (c *CPU) sbc(e opcodeEntry) {
	m, _ := c.readOperandCharged(e)
	carryIn := uint8(0)
	if c.getC() {
		carryIn = 1
	}
	compM := ^m
	binSum16 := uint16(c.A) + uint16(compM) + uint16(carryIn)
	binResult := uint8(binSum16)
	c.setV(setVForAdd(c.A, compM, binResult))
	c.setNZ(binResult)
	c.setC(binSum16 > 0xFF)

	if !c.getD() {
		c.A = binResult
		return
	}

	lo := int(c.A&0x0F) - int(m&0x0F) - int(1-carryIn)
	hi := int(c.A>>4) - int(m>>4)
	if lo < 0 {
		lo -= 6
		hi--
	}
	if hi < 0 {
		hi -= 6
	}
	c.A = uint8(hi<<4) | uint8(lo&0x0F)
}

// readOperandCharged fetches the operand for ADC/SBC, including the
// immediate form, and charges the page-cross penalty where the entry
// calls for it.
func (c *CPU) readOperandCharged(e opcodeEntry) (uint8, resolved) {
	if e.mode == ModeImmediate {
		m := c.fetch()
		c.Cycles += uint64(e.cycles)
		return m, resolved{}
	}
	m, r := c.operand(e)
	c.chargeRead(e, r)
	return m, r
}

// branch implements all 8 conditional branches sharing one relative
// decode: the signed 8-bit offset is read and PC advanced past it
// first (base cycle charged), then if flag's state matches wantSet,
// one more cycle is charged for taking the branch and a further cycle
// if the branch target crosses a page.
func (c *CPU) branch(e opcodeEntry, flag uint8, wantSet bool) {
	offset := int8(c.fetch())
	c.Cycles += uint64(e.cycles)
	taken := (c.P&flag != 0) == wantSet
	if !taken {
		return
	}
	base := c.PC
	target := uint16(int32(base) + int32(offset))
	c.Cycles++
	if pageCrossed(base, target) {
		c.Cycles++
	}
	c.PC = target
}

// jmp implements JMP in both its absolute and indirect forms. The
// indirect form reproduces the NMOS hardware bug: if the low byte of
// the pointer is 0xFF, the high byte is fetched from the start of the
// same page rather than the start of the next one.
func (c *CPU) jmp(e opcodeEntry) {
	if e.mode == ModeAbsolute {
		lo := c.fetch()
		hi := c.fetch()
		c.PC = uint16(hi)<<8 | uint16(lo)
		c.Cycles += uint64(e.cycles)
		return
	}

	lo := c.fetch()
	hi := c.fetch()
	ptr := uint16(hi)<<8 | uint16(lo)
	targetLo := c.bus.Read(ptr)
	var hiAddr uint16
	if lo == 0xFF {
		hiAddr = uint16(hi) << 8
	} else {
		hiAddr = ptr + 1
	}
	targetHi := c.bus.Read(hiAddr)
	c.PC = uint16(targetHi)<<8 | uint16(targetLo)
	c.Cycles += uint64(e.cycles)
}

// jsr pushes the address of the last byte of the JSR instruction
// (PC-1, per the documented 6502 convention) and jumps to the target.
func (c *CPU) jsr() {
	lo := c.fetch()
	hi := c.fetch()
	target := uint16(hi)<<8 | uint16(lo)
	c.pushWord(c.PC - 1)
	c.PC = target
	c.Cycles += 6
}
