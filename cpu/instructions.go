package cpu

// This file implements the documented 6502/65C02 instruction set as small
// semantic functions composed with the addressing-mode readers/writers in
// addressing.go. Each opcode table (dispatch_*.go) binds a mnemonic's
// semantic function to one addressing-mode reader/writer/address pair.

// --- value/address readers per addressing mode, shared across mnemonics ---

func readImm(c *Chip) uint8   { return c.readImmediate() }
func readZP(c *Chip) uint8    { return c.readByte(c.addrZP()) }
func readZPX(c *Chip) uint8   { return c.readByte(c.addrZPIndexed(c.X)) }
func readZPY(c *Chip) uint8   { return c.readByte(c.addrZPIndexed(c.Y)) }
func readAbs(c *Chip) uint8   { return c.readByte(c.addrAbsolute()) }
func readAbsX(c *Chip) uint8  { return c.readByte(c.addrAbsoluteIndexed(c.X, modeLoad)) }
func readAbsY(c *Chip) uint8  { return c.readByte(c.addrAbsoluteIndexed(c.Y, modeLoad)) }
func readIndX(c *Chip) uint8  { return c.readByte(c.addrIndirectX()) }
func readIndY(c *Chip) uint8  { return c.readByte(c.addrIndirectY(modeLoad)) }
func readIndZP(c *Chip) uint8 { return c.readByte(c.addrIndirectZP()) }

func addrZPFn(c *Chip) uint16    { return c.addrZP() }
func addrZPXFn(c *Chip) uint16   { return c.addrZPIndexed(c.X) }
func addrZPYFn(c *Chip) uint16   { return c.addrZPIndexed(c.Y) }
func addrAbsFn(c *Chip) uint16   { return c.addrAbsolute() }
func addrAbsXFn(c *Chip) uint16  { return c.addrAbsoluteIndexed(c.X, modeStore) }
func addrAbsYFn(c *Chip) uint16  { return c.addrAbsoluteIndexed(c.Y, modeStore) }
func addrIndXFn(c *Chip) uint16  { return c.addrIndirectX() }
func addrIndYFn(c *Chip) uint16  { return c.addrIndirectY(modeStore) }
func addrIndZPFn(c *Chip) uint16 { return c.addrIndirectZP() }

// addrAbsXRMWFn serves the shift/rotate abs,X opcodes, whose indexing dummy
// cycle is unconditional on NMOS but page-cross-only on CMOS. INC/DEC abs,X
// stay on addrAbsXFn: CMOS always pays there.
func addrAbsXRMWFn(c *Chip) uint16 { return c.addrAbsoluteIndexed(c.X, modeRMW) }

// --- register selectors ---

type regPtr func(*Chip) *uint8

func regA(c *Chip) *uint8 { return &c.A }
func regX(c *Chip) *uint8 { return &c.X }
func regY(c *Chip) *uint8 { return &c.Y }

// --- generic instruction builders ---

func ldOp(reg regPtr, read func(*Chip) uint8) func(*Chip) {
	return func(c *Chip) { c.loadRegister(reg(c), read(c)) }
}

func stOp(reg regPtr, addr func(*Chip) uint16) func(*Chip) {
	return func(c *Chip) { c.writeByte(addr(c), *reg(c)) }
}

func rmwOp(addr func(*Chip) uint16, op func(*Chip, uint8) uint8) func(*Chip) {
	return func(c *Chip) {
		a := addr(c)
		c.rmw(a, func(v uint8) uint8 { return op(c, v) })
	}
}

func accOp(reg regPtr, op func(*Chip, uint8) uint8) func(*Chip) {
	return func(c *Chip) {
		c.phantomImplied()
		r := reg(c)
		*r = op(c, *r)
	}
}

func logicOp(read func(*Chip) uint8, combine func(a, v uint8) uint8) func(*Chip) {
	return func(c *Chip) { c.loadRegister(&c.A, combine(c.A, read(c))) }
}

func compareOp(reg regPtr, read func(*Chip) uint8) func(*Chip) {
	return func(c *Chip) { c.compare(*reg(c), read(c)) }
}

func bitOp(read func(*Chip) uint8) func(*Chip) {
	return func(c *Chip) { c.bit(read(c)) }
}

// --- value+address readers, used only by ADC/SBC for the CMOS BCD extra cycle ---

type valAddr func(*Chip) (val uint8, addr uint16, immediate bool)

func vaImm(c *Chip) (uint8, uint16, bool)  { return c.readImmediate(), 0, true }
func vaZP(c *Chip) (uint8, uint16, bool)   { a := c.addrZP(); return c.readByte(a), a, false }
func vaZPX(c *Chip) (uint8, uint16, bool)  { a := c.addrZPIndexed(c.X); return c.readByte(a), a, false }
func vaAbs(c *Chip) (uint8, uint16, bool)  { a := c.addrAbsolute(); return c.readByte(a), a, false }
func vaAbsX(c *Chip) (uint8, uint16, bool) {
	a := c.addrAbsoluteIndexed(c.X, modeLoad)
	return c.readByte(a), a, false
}
func vaAbsY(c *Chip) (uint8, uint16, bool) {
	a := c.addrAbsoluteIndexed(c.Y, modeLoad)
	return c.readByte(a), a, false
}
func vaIndX(c *Chip) (uint8, uint16, bool) { a := c.addrIndirectX(); return c.readByte(a), a, false }
func vaIndY(c *Chip) (uint8, uint16, bool) {
	a := c.addrIndirectY(modeLoad)
	return c.readByte(a), a, false
}
func vaIndZP(c *Chip) (uint8, uint16, bool) {
	a := c.addrIndirectZP()
	return c.readByte(a), a, false
}

func adcMode(va valAddr) func(*Chip) {
	return func(c *Chip) { v, a, imm := va(c); c.adc(v, a, imm) }
}

func sbcMode(va valAddr) func(*Chip) {
	return func(c *Chip) { v, a, imm := va(c); c.sbc(v, a, imm) }
}

// --- flag instructions ---

func execCLC(c *Chip) { c.P &^= FlagCarry }
func execCLD(c *Chip) { c.P &^= FlagDecimal }
func execCLI(c *Chip) { c.P &^= FlagInterrupt }
func execCLV(c *Chip) { c.P &^= FlagOverflow }
func execSEC(c *Chip) { c.P |= FlagCarry }
func execSED(c *Chip) { c.P |= FlagDecimal }
func execSEI(c *Chip) { c.P |= FlagInterrupt }

// Flag instructions are single-byte implied opcodes: fetch (already paid by
// the dispatcher) plus one phantom read of PC.
func withPhantom(f func(*Chip)) func(*Chip) {
	return func(c *Chip) { c.phantomImplied(); f(c) }
}

// --- transfers ---

func execTAX(c *Chip) { c.phantomImplied(); c.loadRegister(&c.X, c.A) }
func execTAY(c *Chip) { c.phantomImplied(); c.loadRegister(&c.Y, c.A) }
func execTXA(c *Chip) { c.phantomImplied(); c.loadRegister(&c.A, c.X) }
func execTYA(c *Chip) { c.phantomImplied(); c.loadRegister(&c.A, c.Y) }
func execTSX(c *Chip) { c.phantomImplied(); c.loadRegister(&c.X, c.SP) }
func execTXS(c *Chip) { c.phantomImplied(); c.SP = c.X }

func execINX(c *Chip) { c.phantomImplied(); c.loadRegister(&c.X, c.X+1) }
func execINY(c *Chip) { c.phantomImplied(); c.loadRegister(&c.Y, c.Y+1) }
func execDEX(c *Chip) { c.phantomImplied(); c.loadRegister(&c.X, c.X-1) }
func execDEY(c *Chip) { c.phantomImplied(); c.loadRegister(&c.Y, c.Y-1) }

func execNOP(c *Chip) { c.phantomImplied() }

// --- branches ---

func execBPL(c *Chip) { c.branch(c.P&FlagNegative == 0) }
func execBMI(c *Chip) { c.branch(c.P&FlagNegative != 0) }
func execBVC(c *Chip) { c.branch(c.P&FlagOverflow == 0) }
func execBVS(c *Chip) { c.branch(c.P&FlagOverflow != 0) }
func execBCC(c *Chip) { c.branch(c.P&FlagCarry == 0) }
func execBCS(c *Chip) { c.branch(c.P&FlagCarry != 0) }
func execBNE(c *Chip) { c.branch(c.P&FlagZero == 0) }
func execBEQ(c *Chip) { c.branch(c.P&FlagZero != 0) }

// orOp, andOp, eorOp used with logicOp.
func orOp(a, v uint8) uint8  { return a | v }
func andOp(a, v uint8) uint8 { return a & v }
func eorOp(a, v uint8) uint8 { return a ^ v }
