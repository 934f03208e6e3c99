package cpu

// This file implements the 65C02 additions shared by both Rockwell and WDC
// parts, plus the WDC-only WAI/STP. Rockwell leaves their opcodes (0xCB,
// 0xDB) unbound, so they fall back to the generic reserved-opcode NOP.

func execBRA(c *Chip) { c.branch(true) }

func stzOp(addr func(*Chip) uint16) func(*Chip) {
	return func(c *Chip) { c.writeByte(addr(c), 0) }
}

// trsbOp implements TRB (set=false) and TSB (set=true): Z reports whether
// A&M was zero before the memory location is ANDed with ^A (TRB) or ORed
// with A (TSB).
func trsbOp(set bool) func(*Chip, uint8) uint8 {
	return func(c *Chip, v uint8) uint8 {
		c.setZero(c.A & v)
		if set {
			return v | c.A
		}
		return v &^ c.A
	}
}

func incOp(c *Chip, v uint8) uint8 {
	r := v + 1
	c.setZero(r)
	c.setNegative(r)
	return r
}

func decOp(c *Chip, v uint8) uint8 {
	r := v - 1
	c.setZero(r)
	c.setNegative(r)
	return r
}

func execINCAcc(c *Chip) { c.phantomImplied(); c.loadRegister(&c.A, c.A+1) }
func execDECAcc(c *Chip) { c.phantomImplied(); c.loadRegister(&c.A, c.A-1) }

// execBITImm implements the CMOS BIT #imm variant, which unlike every other
// BIT addressing mode only reports Z — there is no memory operand to copy
// N/V from.
func execBITImm(c *Chip) {
	v := c.readImmediate()
	c.setZero(c.A & v)
}

// rmbOp/smbOp implement RMBn/SMBn: clear or set bit n of a zero-page
// location, touching no flags.
func rmbOp(bit uint8) func(*Chip, uint8) uint8 {
	return func(c *Chip, v uint8) uint8 { return v &^ bit }
}

func smbOp(bit uint8) func(*Chip, uint8) uint8 {
	return func(c *Chip, v uint8) uint8 { return v | bit }
}

// bbxMode implements BBRn/BBSn: branch if bit n of a zero-page location is
// clear (setWhen=false) or set (setWhen=true). The zero-page byte is read
// twice (the second a phantom re-read) before the relative offset and
// branch decision, matching the 65C02's documented 5/6/7-cycle timing.
func bbxMode(bit uint8, setWhen bool) func(*Chip) {
	return func(c *Chip) {
		zp := c.readByte(c.PC)
		c.PC++
		val := c.readByte(uint16(zp))
		_ = c.readByte(uint16(zp))
		taken := (val&bit != 0) == setWhen
		c.branch(taken)
	}
}

// execWAI parks the chip until an interrupt is pending; Step wakes it
// without re-fetching an opcode.
func execWAI(c *Chip) {
	_ = c.readByte(c.PC)
	_ = c.readByte(c.PC)
	c.wait = true
}

// execSTP stops the chip; only Reset clears it. Like the NMOS HLT pool, PC
// is left on the stopping opcode so a host can see what killed the chip.
func execSTP(c *Chip) {
	_ = c.readByte(c.PC)
	_ = c.readByte(c.PC)
	c.PC--
	c.stop = true
}
