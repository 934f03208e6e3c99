package cpu

import "fmt"

// AddrMode tags an instruction's operand shape, used only for disassembly
// and debug byte-length accounting — execution itself is driven entirely by
// the descriptor's Exec function.
type AddrMode uint8

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeIndirectX
	ModeIndirectY
	ModeIndirectZP
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectAbsX
	ModeRelative
	ModeRelativeZP
)

// addrModeLength returns the instruction's total byte length (opcode plus
// operand bytes) for the given addressing mode.
func addrModeLength(m AddrMode) int {
	switch m {
	case ModeImplied, ModeAccumulator:
		return 1
	case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY,
		ModeIndirectX, ModeIndirectY, ModeIndirectZP, ModeRelative:
		return 2
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect,
		ModeIndirectAbsX, ModeRelativeZP:
		return 3
	default:
		return 1
	}
}

// InstructionDescriptor names and executes one opcode under one flavor's
// composed dispatch table.
type InstructionDescriptor struct {
	Mnemonic string
	Mode     AddrMode
	Exec     func(c *Chip)
}

func execReservedNOP(c *Chip) {}

// buildDispatch composes the final 256-entry table for a flavor: start from
// the documented NMOS 6502 base table; for CMOS flavors overlay the shared
// 65C02 table and then the flavor-specific extension, filling any opcode
// still unset with a 1-cycle implied NOP; for NMOS overlay the undocumented
// opcode table, and panic if any opcode remains unset (a real NMOS part has
// well-defined, if unstable, behavior for all 256 opcodes — an unset slot at
// this point is a bug in the table data, not a runtime condition).
func buildDispatch(flavor Flavor) [256]InstructionDescriptor {
	table := nmosBaseTable

	switch flavor {
	case FlavorRockwell65C02, FlavorWDC65C02:
		overlay(&table, cmos65C02SharedTable)
		if flavor == FlavorWDC65C02 {
			overlay(&table, wdcExtraTable)
		}
		for i := range table {
			if table[i].Exec == nil {
				table[i] = InstructionDescriptor{Mnemonic: "NOP", Mode: ModeImplied, Exec: execReservedNOP}
			}
		}
	case FlavorNMOS6502:
		overlay(&table, nmosUndocumentedTable)
		for i := range table {
			if table[i].Exec == nil {
				panic(fmt.Sprintf("cpu: incomplete NMOS dispatch table, opcode 0x%02X unset", i))
			}
		}
	}
	return table
}

func overlay(base *[256]InstructionDescriptor, add [256]InstructionDescriptor) {
	for i := range add {
		if add[i].Exec != nil {
			base[i] = add[i]
		}
	}
}
