// Package disassemble implements a flavor-aware disassembler for the
// 6502/65C02 family, built on top of a cpu.Chip's own composed dispatch
// table rather than an independent opcode table — the same byte can be a
// different instruction on NMOS and CMOS, and Step always reports what the
// chip's actual flavor would execute.
package disassemble

import (
	"fmt"

	"github.com/corehart/sixfivetwo/cpu"
)

// peeker is the subset of cpu.Chip Step needs: non-cycle-counting reads and
// the active flavor's opcode descriptor.
type peeker interface {
	Peek(addr uint16) uint8
	GetOpInfo(opcode uint8) cpu.InstructionDescriptor
}

// Step disassembles the instruction at pc, returning a formatted line and
// the number of bytes (including the opcode) the instruction occupies. It
// never advances or otherwise perturbs c.
func Step(pc uint16, c peeker) (string, int) {
	op := c.Peek(pc)
	desc := c.GetOpInfo(op)
	b1 := c.Peek(pc + 1)
	b2 := c.Peek(pc + 2)

	out := fmt.Sprintf("%.4X %.2X ", pc, op)
	count := 1
	switch desc.Mode {
	case cpu.ModeImplied:
		out += fmt.Sprintf("        %s           ", desc.Mnemonic)
	case cpu.ModeAccumulator:
		out += fmt.Sprintf("        %s A         ", desc.Mnemonic)
	case cpu.ModeImmediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", b1, desc.Mnemonic, b1)
		count = 2
	case cpu.ModeZeroPage:
		out += fmt.Sprintf("%.2X      %s %.2X        ", b1, desc.Mnemonic, b1)
		count = 2
	case cpu.ModeZeroPageX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", b1, desc.Mnemonic, b1)
		count = 2
	case cpu.ModeZeroPageY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", b1, desc.Mnemonic, b1)
		count = 2
	case cpu.ModeIndirectX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", b1, desc.Mnemonic, b1)
		count = 2
	case cpu.ModeIndirectY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", b1, desc.Mnemonic, b1)
		count = 2
	case cpu.ModeIndirectZP:
		out += fmt.Sprintf("%.2X      %s (%.2X)      ", b1, desc.Mnemonic, b1)
		count = 2
	case cpu.ModeAbsolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", b1, b2, desc.Mnemonic, b2, b1)
		count = 3
	case cpu.ModeAbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", b1, b2, desc.Mnemonic, b2, b1)
		count = 3
	case cpu.ModeAbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", b1, b2, desc.Mnemonic, b2, b1)
		count = 3
	case cpu.ModeIndirect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", b1, b2, desc.Mnemonic, b2, b1)
		count = 3
	case cpu.ModeIndirectAbsX:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X,X)  ", b1, b2, desc.Mnemonic, b2, b1)
		count = 3
	case cpu.ModeRelative:
		target := pc + 2 + uint16(int16(int8(b1)))
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", b1, desc.Mnemonic, b1, target)
		count = 2
	case cpu.ModeRelativeZP:
		target := pc + 3 + uint16(int16(int8(b2)))
		out += fmt.Sprintf("%.2X %.2X   %s %.2X,%.2X (%.4X) ", b1, b2, desc.Mnemonic, b1, b2, target)
		count = 3
	default:
		panic(fmt.Sprintf("disassemble: unhandled addressing mode %d", desc.Mode))
	}
	return out, count
}
