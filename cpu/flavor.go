// Package cpu implements a cycle-accurate instruction execution engine for
// the MOS 6502 and its CMOS successors, the Rockwell 65C02 and the WDC
// 65C02. It owns the register file, status flags, and elapsed-cycle
// counter; host programs supply the memory fabric through page handlers
// registered on the CPU's bus.
package cpu

// Flavor selects which of the three supported 65xx variants a Chip
// emulates. The base opcode table is always the documented NMOS 6502 ISA;
// CMOS flavors overlay the shared 65C02 extensions and then their own
// flavor-specific opcodes (WAI/STP on WDC), while NMOS overlays the
// undocumented opcode table instead.
type Flavor int

const (
	// FlavorUnknown is the zero value and never a valid construction argument.
	FlavorUnknown Flavor = iota
	// FlavorNMOS6502 is the original NMOS part, undocumented opcodes included.
	FlavorNMOS6502
	// FlavorRockwell65C02 is the Rockwell 65C02, which leaves WAI/STP as NOPs.
	FlavorRockwell65C02
	// FlavorWDC65C02 is the WDC 65C02, which adds WAI (0xCB) and STP (0xDB).
	FlavorWDC65C02
	flavorMax
)

// String returns a short human-readable name for the flavor.
func (f Flavor) String() string {
	switch f {
	case FlavorNMOS6502:
		return "6502"
	case FlavorRockwell65C02:
		return "rockwell65c02"
	case FlavorWDC65C02:
		return "wdc65c02"
	default:
		return "unknown"
	}
}

// isCMOS reports whether this flavor is one of the 65C02 variants.
func (f Flavor) isCMOS() bool {
	return f == FlavorRockwell65C02 || f == FlavorWDC65C02
}

// Status register flag bits.
const (
	FlagNegative  = uint8(0x80)
	FlagOverflow  = uint8(0x40)
	FlagUnused    = uint8(0x20) // Always reads as 1.
	FlagBreak     = uint8(0x10) // Only set in the byte pushed by BRK/PHP.
	FlagDecimal   = uint8(0x08)
	FlagInterrupt = uint8(0x04)
	FlagZero      = uint8(0x02)
	FlagCarry     = uint8(0x01)
)

// Fixed bus addresses: the stack page and the three interrupt vectors.
const (
	StackPage   = uint16(0x0100)
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)
