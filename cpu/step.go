package cpu

// Step executes exactly one instruction, or one interrupt-service sequence
// if an NMI or an unmasked IRQ is pending, and returns. If the chip is
// stopped (STP or a HLT opcode) this is a no-op. If the chip is waiting
// (WAI) it remains so unless an interrupt is pending, in which case it wakes
// and services that interrupt instead of fetching an opcode. cb, if
// non-nil, is invoked after the instruction or interrupt sequence completes.
func (c *Chip) Step(cb func(*Chip)) {
	if c.stop {
		return
	}
	if c.wait {
		if !c.pendingNMI && !(c.pendingIRQ && c.P&FlagInterrupt == 0) {
			return
		}
		c.wait = false
	}
	if c.pendingNMI {
		c.pendingNMI = false
		c.serviceInterrupt(NMIVector)
		if cb != nil {
			cb(c)
		}
		return
	}
	if c.pendingIRQ && c.P&FlagInterrupt == 0 {
		c.pendingIRQ = false
		c.serviceInterrupt(IRQVector)
		if cb != nil {
			cb(c)
		}
		return
	}
	c.sync = true
	op := c.readByte(c.PC)
	c.sync = false
	c.PC++
	c.dispatch[op].Exec(c)
	if cb != nil {
		cb(c)
	}
}

// StepN executes up to n instructions, stopping early if cb returns true
// after any of them (cb may be nil). It returns the number actually
// executed.
func (c *Chip) StepN(n int, cb func(*Chip) bool) int {
	i := 0
	for ; i < n; i++ {
		var halt bool
		c.Step(func(chip *Chip) {
			if cb != nil {
				halt = cb(chip)
			}
		})
		if halt {
			i++
			break
		}
	}
	return i
}

// StepCycles executes whole instructions until at least budget cycles have
// elapsed, returning the actual number of cycles consumed. Because
// instructions execute atomically the last one may push the total past
// budget.
func (c *Chip) StepCycles(budget uint64) uint64 {
	start := c.cycles
	for c.cycles-start < budget {
		before := c.cycles
		c.Step(nil)
		if c.cycles == before {
			// Stopped, or waiting with no interrupt pending. No forward
			// progress is possible until the host intervenes.
			break
		}
	}
	return c.cycles - start
}

// StepCyclesDebug behaves like StepCycles but invokes cb after every
// instruction, halting early if cb returns true.
func (c *Chip) StepCyclesDebug(budget uint64, cb func(*Chip) bool) uint64 {
	start := c.cycles
	for c.cycles-start < budget {
		before := c.cycles
		var halt bool
		c.Step(func(chip *Chip) {
			if cb != nil {
				halt = cb(chip)
			}
		})
		if halt || c.cycles == before {
			break
		}
	}
	return c.cycles - start
}

// serviceInterrupt runs the shared IRQ/NMI acknowledge sequence: push PC
// high, PC low, then P with B cleared; set I; clear D on CMOS; load PC from
// vector. This costs exactly 5 cycles (3 pushes, 2 vector reads) — unlike
// BRK, no opcode-like byte is fetched first.
func (c *Chip) serviceInterrupt(vector uint16) {
	c.pushStack(uint8(c.PC >> 8))
	c.pushStack(uint8(c.PC))
	push := (c.P | FlagUnused) &^ FlagBreak
	c.pushStack(push)
	c.P |= FlagInterrupt
	if c.flavor.isCMOS() {
		c.P &^= FlagDecimal
	}
	lo := c.readByte(vector)
	hi := c.readByte(vector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.wait = false
}

// execBRK implements BRK: reads and discards the signature byte following
// the opcode, then runs the same push/vector sequence as serviceInterrupt
// but with B set in the pushed P and always targeting IRQVector. Total cost
// is 7 cycles including the opcode fetch the dispatcher already paid for.
func execBRK(c *Chip) {
	_ = c.readByte(c.PC)
	c.PC++
	c.pushStack(uint8(c.PC >> 8))
	c.pushStack(uint8(c.PC))
	push := c.P | FlagUnused | FlagBreak
	c.pushStack(push)
	c.P |= FlagInterrupt
	if c.flavor.isCMOS() {
		c.P &^= FlagDecimal
	}
	lo := c.readByte(IRQVector)
	hi := c.readByte(IRQVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// execRTI implements RTI: pull P (forcing the unused bit on and clearing B),
// then pull PC unchanged — unlike RTS it is not incremented afterward.
func execRTI(c *Chip) {
	_ = c.readByte(c.PC)
	_ = c.readByte(StackPage + uint16(c.SP))
	p := c.popStack()
	c.P = (p | FlagUnused) &^ FlagBreak
	lo := c.popStack()
	hi := c.popStack()
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// execRTS implements RTS: pull PC and add one (to land past the JSR's
// operand bytes).
func execRTS(c *Chip) {
	_ = c.readByte(c.PC)
	_ = c.readByte(StackPage + uint16(c.SP))
	lo := c.popStack()
	hi := c.popStack()
	c.PC = uint16(hi)<<8 | uint16(lo)
	_ = c.readByte(c.PC)
	c.PC++
}

// execJSR implements JSR: push the address of the last byte of the JSR
// instruction (not the next instruction — RTS adds the one back).
func execJSR(c *Chip) {
	lo := c.readByte(c.PC)
	c.PC++
	_ = c.readByte(StackPage + uint16(c.SP))
	c.pushStack(uint8(c.PC >> 8))
	c.pushStack(uint8(c.PC))
	hi := c.readByte(c.PC)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

func execJMPAbsolute(c *Chip) {
	c.PC = c.addrAbsolute()
}

// execJMPIndirect implements JMP (abs). NMOS reproduces the page-wrap bug:
// the high byte is fetched from (ptr&0xFF00)|((ptr+1)&0xFF) instead of
// wrapping into the next page. CMOS fixes the bug and pays one extra cycle
// re-reading the pointer's low byte address before forming the corrected
// ptr+1 address.
func execJMPIndirect(c *Chip) {
	ptr := c.addrAbsolute()
	lo := c.readByte(ptr)
	if c.flavor == FlavorNMOS6502 {
		hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		hi := c.readByte(hiAddr)
		c.PC = uint16(hi)<<8 | uint16(lo)
		return
	}
	_ = c.readByte(ptr)
	hi := c.readByte(ptr + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// execJMPIndexedIndirect implements the 65C02's JMP (abs,X): PC is loaded
// from the two bytes at (operand+X), with one extra internal cycle to
// compute the index before dereferencing.
func execJMPIndexedIndirect(c *Chip) {
	lo := c.readByte(c.PC)
	c.PC++
	hi := c.readByte(c.PC)
	c.PC++
	base := uint16(hi)<<8 | uint16(lo)
	_ = c.readByte(c.PC)
	ptr := base + uint16(c.X)
	lo2 := c.readByte(ptr)
	hi2 := c.readByte(ptr + 1)
	c.PC = uint16(hi2)<<8 | uint16(lo2)
}

func execPHA(c *Chip) { c.phantomImplied(); c.pushStack(c.A) }
func execPHX(c *Chip) { c.phantomImplied(); c.pushStack(c.X) }
func execPHY(c *Chip) { c.phantomImplied(); c.pushStack(c.Y) }
func execPHP(c *Chip) { c.phantomImplied(); c.pushStack(c.P | FlagUnused | FlagBreak) }

func execPLA(c *Chip) {
	c.phantomImplied()
	_ = c.readByte(StackPage + uint16(c.SP))
	c.loadRegister(&c.A, c.popStack())
}
func execPLX(c *Chip) {
	c.phantomImplied()
	_ = c.readByte(StackPage + uint16(c.SP))
	c.loadRegister(&c.X, c.popStack())
}
func execPLY(c *Chip) {
	c.phantomImplied()
	_ = c.readByte(StackPage + uint16(c.SP))
	c.loadRegister(&c.Y, c.popStack())
}
func execPLP(c *Chip) {
	c.phantomImplied()
	_ = c.readByte(StackPage + uint16(c.SP))
	c.P = (c.popStack() | FlagUnused) &^ FlagBreak
}
