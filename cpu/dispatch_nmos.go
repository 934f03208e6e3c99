package cpu

// nmosBaseTable is the documented NMOS 6502 instruction set. CMOS flavors
// start from this table before overlaying the 65C02 extensions; NMOS
// overlays nmosUndocumentedTable on top of it to reach full 256-opcode
// coverage.
var nmosBaseTable = [256]InstructionDescriptor{
	0x00: {"BRK", ModeImplied, execBRK},
	0x01: {"ORA", ModeIndirectX, logicOp(readIndX, orOp)},
	0x05: {"ORA", ModeZeroPage, logicOp(readZP, orOp)},
	0x06: {"ASL", ModeZeroPage, rmwOp(addrZPFn, (*Chip).asl)},
	0x08: {"PHP", ModeImplied, execPHP},
	0x09: {"ORA", ModeImmediate, logicOp(readImm, orOp)},
	0x0A: {"ASL", ModeAccumulator, accOp(regA, (*Chip).asl)},
	0x0D: {"ORA", ModeAbsolute, logicOp(readAbs, orOp)},
	0x0E: {"ASL", ModeAbsolute, rmwOp(addrAbsFn, (*Chip).asl)},

	0x10: {"BPL", ModeRelative, execBPL},
	0x11: {"ORA", ModeIndirectY, logicOp(readIndY, orOp)},
	0x15: {"ORA", ModeZeroPageX, logicOp(readZPX, orOp)},
	0x16: {"ASL", ModeZeroPageX, rmwOp(addrZPXFn, (*Chip).asl)},
	0x18: {"CLC", ModeImplied, withPhantom(execCLC)},
	0x19: {"ORA", ModeAbsoluteY, logicOp(readAbsY, orOp)},
	0x1D: {"ORA", ModeAbsoluteX, logicOp(readAbsX, orOp)},
	0x1E: {"ASL", ModeAbsoluteX, rmwOp(addrAbsXRMWFn, (*Chip).asl)},

	0x20: {"JSR", ModeAbsolute, execJSR},
	0x21: {"AND", ModeIndirectX, logicOp(readIndX, andOp)},
	0x24: {"BIT", ModeZeroPage, bitOp(readZP)},
	0x25: {"AND", ModeZeroPage, logicOp(readZP, andOp)},
	0x26: {"ROL", ModeZeroPage, rmwOp(addrZPFn, (*Chip).rol)},
	0x28: {"PLP", ModeImplied, execPLP},
	0x29: {"AND", ModeImmediate, logicOp(readImm, andOp)},
	0x2A: {"ROL", ModeAccumulator, accOp(regA, (*Chip).rol)},
	0x2C: {"BIT", ModeAbsolute, bitOp(readAbs)},
	0x2D: {"AND", ModeAbsolute, logicOp(readAbs, andOp)},
	0x2E: {"ROL", ModeAbsolute, rmwOp(addrAbsFn, (*Chip).rol)},

	0x30: {"BMI", ModeRelative, execBMI},
	0x31: {"AND", ModeIndirectY, logicOp(readIndY, andOp)},
	0x35: {"AND", ModeZeroPageX, logicOp(readZPX, andOp)},
	0x36: {"ROL", ModeZeroPageX, rmwOp(addrZPXFn, (*Chip).rol)},
	0x38: {"SEC", ModeImplied, withPhantom(execSEC)},
	0x39: {"AND", ModeAbsoluteY, logicOp(readAbsY, andOp)},
	0x3D: {"AND", ModeAbsoluteX, logicOp(readAbsX, andOp)},
	0x3E: {"ROL", ModeAbsoluteX, rmwOp(addrAbsXRMWFn, (*Chip).rol)},

	0x40: {"RTI", ModeImplied, execRTI},
	0x41: {"EOR", ModeIndirectX, logicOp(readIndX, eorOp)},
	0x45: {"EOR", ModeZeroPage, logicOp(readZP, eorOp)},
	0x46: {"LSR", ModeZeroPage, rmwOp(addrZPFn, (*Chip).lsr)},
	0x48: {"PHA", ModeImplied, execPHA},
	0x49: {"EOR", ModeImmediate, logicOp(readImm, eorOp)},
	0x4A: {"LSR", ModeAccumulator, accOp(regA, (*Chip).lsr)},
	0x4C: {"JMP", ModeAbsolute, execJMPAbsolute},
	0x4D: {"EOR", ModeAbsolute, logicOp(readAbs, eorOp)},
	0x4E: {"LSR", ModeAbsolute, rmwOp(addrAbsFn, (*Chip).lsr)},

	0x50: {"BVC", ModeRelative, execBVC},
	0x51: {"EOR", ModeIndirectY, logicOp(readIndY, eorOp)},
	0x55: {"EOR", ModeZeroPageX, logicOp(readZPX, eorOp)},
	0x56: {"LSR", ModeZeroPageX, rmwOp(addrZPXFn, (*Chip).lsr)},
	0x58: {"CLI", ModeImplied, withPhantom(execCLI)},
	0x59: {"EOR", ModeAbsoluteY, logicOp(readAbsY, eorOp)},
	0x5D: {"EOR", ModeAbsoluteX, logicOp(readAbsX, eorOp)},
	0x5E: {"LSR", ModeAbsoluteX, rmwOp(addrAbsXRMWFn, (*Chip).lsr)},

	0x60: {"RTS", ModeImplied, execRTS},
	0x61: {"ADC", ModeIndirectX, adcMode(vaIndX)},
	0x65: {"ADC", ModeZeroPage, adcMode(vaZP)},
	0x66: {"ROR", ModeZeroPage, rmwOp(addrZPFn, (*Chip).ror)},
	0x68: {"PLA", ModeImplied, execPLA},
	0x69: {"ADC", ModeImmediate, adcMode(vaImm)},
	0x6A: {"ROR", ModeAccumulator, accOp(regA, (*Chip).ror)},
	0x6C: {"JMP", ModeIndirect, execJMPIndirect},
	0x6D: {"ADC", ModeAbsolute, adcMode(vaAbs)},
	0x6E: {"ROR", ModeAbsolute, rmwOp(addrAbsFn, (*Chip).ror)},

	0x70: {"BVS", ModeRelative, execBVS},
	0x71: {"ADC", ModeIndirectY, adcMode(vaIndY)},
	0x75: {"ADC", ModeZeroPageX, adcMode(vaZPX)},
	0x76: {"ROR", ModeZeroPageX, rmwOp(addrZPXFn, (*Chip).ror)},
	0x78: {"SEI", ModeImplied, withPhantom(execSEI)},
	0x79: {"ADC", ModeAbsoluteY, adcMode(vaAbsY)},
	0x7D: {"ADC", ModeAbsoluteX, adcMode(vaAbsX)},
	0x7E: {"ROR", ModeAbsoluteX, rmwOp(addrAbsXRMWFn, (*Chip).ror)},

	0x81: {"STA", ModeIndirectX, stOp(regA, addrIndXFn)},
	0x84: {"STY", ModeZeroPage, stOp(regY, addrZPFn)},
	0x85: {"STA", ModeZeroPage, stOp(regA, addrZPFn)},
	0x86: {"STX", ModeZeroPage, stOp(regX, addrZPFn)},
	0x88: {"DEY", ModeImplied, execDEY},
	0x8A: {"TXA", ModeImplied, execTXA},
	0x8C: {"STY", ModeAbsolute, stOp(regY, addrAbsFn)},
	0x8D: {"STA", ModeAbsolute, stOp(regA, addrAbsFn)},
	0x8E: {"STX", ModeAbsolute, stOp(regX, addrAbsFn)},

	0x90: {"BCC", ModeRelative, execBCC},
	0x91: {"STA", ModeIndirectY, stOp(regA, addrIndYFn)},
	0x94: {"STY", ModeZeroPageX, stOp(regY, addrZPXFn)},
	0x95: {"STA", ModeZeroPageX, stOp(regA, addrZPXFn)},
	0x96: {"STX", ModeZeroPageY, stOp(regX, addrZPYFn)},
	0x98: {"TYA", ModeImplied, execTYA},
	0x99: {"STA", ModeAbsoluteY, stOp(regA, addrAbsYFn)},
	0x9A: {"TXS", ModeImplied, execTXS},
	0x9D: {"STA", ModeAbsoluteX, stOp(regA, addrAbsXFn)},

	0xA0: {"LDY", ModeImmediate, ldOp(regY, readImm)},
	0xA1: {"LDA", ModeIndirectX, ldOp(regA, readIndX)},
	0xA2: {"LDX", ModeImmediate, ldOp(regX, readImm)},
	0xA4: {"LDY", ModeZeroPage, ldOp(regY, readZP)},
	0xA5: {"LDA", ModeZeroPage, ldOp(regA, readZP)},
	0xA6: {"LDX", ModeZeroPage, ldOp(regX, readZP)},
	0xA8: {"TAY", ModeImplied, execTAY},
	0xA9: {"LDA", ModeImmediate, ldOp(regA, readImm)},
	0xAA: {"TAX", ModeImplied, execTAX},
	0xAC: {"LDY", ModeAbsolute, ldOp(regY, readAbs)},
	0xAD: {"LDA", ModeAbsolute, ldOp(regA, readAbs)},
	0xAE: {"LDX", ModeAbsolute, ldOp(regX, readAbs)},

	0xB0: {"BCS", ModeRelative, execBCS},
	0xB1: {"LDA", ModeIndirectY, ldOp(regA, readIndY)},
	0xB4: {"LDY", ModeZeroPageX, ldOp(regY, readZPX)},
	0xB5: {"LDA", ModeZeroPageX, ldOp(regA, readZPX)},
	0xB6: {"LDX", ModeZeroPageY, ldOp(regX, readZPY)},
	0xB8: {"CLV", ModeImplied, withPhantom(execCLV)},
	0xB9: {"LDA", ModeAbsoluteY, ldOp(regA, readAbsY)},
	0xBA: {"TSX", ModeImplied, execTSX},
	0xBC: {"LDY", ModeAbsoluteX, ldOp(regY, readAbsX)},
	0xBD: {"LDA", ModeAbsoluteX, ldOp(regA, readAbsX)},
	0xBE: {"LDX", ModeAbsoluteY, ldOp(regX, readAbsY)},

	0xC0: {"CPY", ModeImmediate, compareOp(regY, readImm)},
	0xC1: {"CMP", ModeIndirectX, compareOp(regA, readIndX)},
	0xC4: {"CPY", ModeZeroPage, compareOp(regY, readZP)},
	0xC5: {"CMP", ModeZeroPage, compareOp(regA, readZP)},
	0xC6: {"DEC", ModeZeroPage, rmwOp(addrZPFn, decOp)},
	0xC8: {"INY", ModeImplied, execINY},
	0xC9: {"CMP", ModeImmediate, compareOp(regA, readImm)},
	0xCA: {"DEX", ModeImplied, execDEX},
	0xCC: {"CPY", ModeAbsolute, compareOp(regY, readAbs)},
	0xCD: {"CMP", ModeAbsolute, compareOp(regA, readAbs)},
	0xCE: {"DEC", ModeAbsolute, rmwOp(addrAbsFn, decOp)},

	0xD0: {"BNE", ModeRelative, execBNE},
	0xD1: {"CMP", ModeIndirectY, compareOp(regA, readIndY)},
	0xD5: {"CMP", ModeZeroPageX, compareOp(regA, readZPX)},
	0xD6: {"DEC", ModeZeroPageX, rmwOp(addrZPXFn, decOp)},
	0xD8: {"CLD", ModeImplied, withPhantom(execCLD)},
	0xD9: {"CMP", ModeAbsoluteY, compareOp(regA, readAbsY)},
	0xDD: {"CMP", ModeAbsoluteX, compareOp(regA, readAbsX)},
	0xDE: {"DEC", ModeAbsoluteX, rmwOp(addrAbsXFn, decOp)},

	0xE0: {"CPX", ModeImmediate, compareOp(regX, readImm)},
	0xE1: {"SBC", ModeIndirectX, sbcMode(vaIndX)},
	0xE4: {"CPX", ModeZeroPage, compareOp(regX, readZP)},
	0xE5: {"SBC", ModeZeroPage, sbcMode(vaZP)},
	0xE6: {"INC", ModeZeroPage, rmwOp(addrZPFn, incOp)},
	0xE8: {"INX", ModeImplied, execINX},
	0xE9: {"SBC", ModeImmediate, sbcMode(vaImm)},
	0xEA: {"NOP", ModeImplied, execNOP},
	0xEC: {"CPX", ModeAbsolute, compareOp(regX, readAbs)},
	0xED: {"SBC", ModeAbsolute, sbcMode(vaAbs)},
	0xEE: {"INC", ModeAbsolute, rmwOp(addrAbsFn, incOp)},

	0xF0: {"BEQ", ModeRelative, execBEQ},
	0xF1: {"SBC", ModeIndirectY, sbcMode(vaIndY)},
	0xF5: {"SBC", ModeZeroPageX, sbcMode(vaZPX)},
	0xF6: {"INC", ModeZeroPageX, rmwOp(addrZPXFn, incOp)},
	0xF8: {"SED", ModeImplied, withPhantom(execSED)},
	0xF9: {"SBC", ModeAbsoluteY, sbcMode(vaAbsY)},
	0xFD: {"SBC", ModeAbsoluteX, sbcMode(vaAbsX)},
	0xFE: {"INC", ModeAbsoluteX, rmwOp(addrAbsXFn, incOp)},
}

// nmosUndocumentedTable covers the remaining 105 opcode bytes a real NMOS
// part still does something (if unstable) with: the ASL/ROL/LSR/ROR+ALU
// combo instructions, SAX/LAX, the immediate-mode ALU quirks, the
// unstable high-byte-masking stores, the 1/2/3-byte NOPs, and the HLT pool.
var nmosUndocumentedTable = [256]InstructionDescriptor{
	0x02: {"HLT", ModeImplied, execHLT},
	0x03: {"SLO", ModeIndirectX, comboRMW(addrIndXFn, (*Chip).asl, orOp)},
	0x04: {"NOP", ModeZeroPage, execSKBZP},
	0x07: {"SLO", ModeZeroPage, comboRMW(addrZPFn, (*Chip).asl, orOp)},
	0x0B: {"ANC", ModeImmediate, execANC},
	0x0C: {"NOP", ModeAbsolute, execSKW},
	0x0F: {"SLO", ModeAbsolute, comboRMW(addrAbsFn, (*Chip).asl, orOp)},

	0x12: {"HLT", ModeImplied, execHLT},
	0x13: {"SLO", ModeIndirectY, comboRMW(addrIndYFn, (*Chip).asl, orOp)},
	0x14: {"NOP", ModeZeroPageX, execSKBZPX},
	0x17: {"SLO", ModeZeroPageX, comboRMW(addrZPXFn, (*Chip).asl, orOp)},
	0x1A: {"NOP", ModeImplied, execNOP},
	0x1B: {"SLO", ModeAbsoluteY, comboRMW(addrAbsYFn, (*Chip).asl, orOp)},
	0x1C: {"NOP", ModeAbsoluteX, execSKWX},
	0x1F: {"SLO", ModeAbsoluteX, comboRMW(addrAbsXFn, (*Chip).asl, orOp)},

	0x22: {"HLT", ModeImplied, execHLT},
	0x23: {"RLA", ModeIndirectX, comboRMW(addrIndXFn, (*Chip).rol, andOp)},
	0x27: {"RLA", ModeZeroPage, comboRMW(addrZPFn, (*Chip).rol, andOp)},
	0x2B: {"ANC", ModeImmediate, execANC},
	0x2F: {"RLA", ModeAbsolute, comboRMW(addrAbsFn, (*Chip).rol, andOp)},

	0x32: {"HLT", ModeImplied, execHLT},
	0x33: {"RLA", ModeIndirectY, comboRMW(addrIndYFn, (*Chip).rol, andOp)},
	0x34: {"NOP", ModeZeroPageX, execSKBZPX},
	0x37: {"RLA", ModeZeroPageX, comboRMW(addrZPXFn, (*Chip).rol, andOp)},
	0x3A: {"NOP", ModeImplied, execNOP},
	0x3B: {"RLA", ModeAbsoluteY, comboRMW(addrAbsYFn, (*Chip).rol, andOp)},
	0x3C: {"NOP", ModeAbsoluteX, execSKWX},
	0x3F: {"RLA", ModeAbsoluteX, comboRMW(addrAbsXFn, (*Chip).rol, andOp)},

	0x42: {"HLT", ModeImplied, execHLT},
	0x43: {"SRE", ModeIndirectX, comboRMW(addrIndXFn, (*Chip).lsr, eorOp)},
	0x44: {"NOP", ModeZeroPage, execSKBZP},
	0x47: {"SRE", ModeZeroPage, comboRMW(addrZPFn, (*Chip).lsr, eorOp)},
	0x4B: {"ALR", ModeImmediate, execALR},
	0x4F: {"SRE", ModeAbsolute, comboRMW(addrAbsFn, (*Chip).lsr, eorOp)},

	0x52: {"HLT", ModeImplied, execHLT},
	0x53: {"SRE", ModeIndirectY, comboRMW(addrIndYFn, (*Chip).lsr, eorOp)},
	0x54: {"NOP", ModeZeroPageX, execSKBZPX},
	0x57: {"SRE", ModeZeroPageX, comboRMW(addrZPXFn, (*Chip).lsr, eorOp)},
	0x5A: {"NOP", ModeImplied, execNOP},
	0x5B: {"SRE", ModeAbsoluteY, comboRMW(addrAbsYFn, (*Chip).lsr, eorOp)},
	0x5C: {"NOP", ModeAbsoluteX, execSKWX},
	0x5F: {"SRE", ModeAbsoluteX, comboRMW(addrAbsXFn, (*Chip).lsr, eorOp)},

	0x62: {"HLT", ModeImplied, execHLT},
	0x63: {"RRA", ModeIndirectX, rraMode(addrIndXFn)},
	0x64: {"NOP", ModeZeroPage, execSKBZP},
	0x67: {"RRA", ModeZeroPage, rraMode(addrZPFn)},
	0x6B: {"ARR", ModeImmediate, execARR},
	0x6F: {"RRA", ModeAbsolute, rraMode(addrAbsFn)},

	0x72: {"HLT", ModeImplied, execHLT},
	0x73: {"RRA", ModeIndirectY, rraMode(addrIndYFn)},
	0x74: {"NOP", ModeZeroPageX, execSKBZPX},
	0x77: {"RRA", ModeZeroPageX, rraMode(addrZPXFn)},
	0x7A: {"NOP", ModeImplied, execNOP},
	0x7B: {"RRA", ModeAbsoluteY, rraMode(addrAbsYFn)},
	0x7C: {"NOP", ModeAbsoluteX, execSKWX},
	0x7F: {"RRA", ModeAbsoluteX, rraMode(addrAbsXFn)},

	0x80: {"NOP", ModeImmediate, execSKB},
	0x82: {"NOP", ModeImmediate, execSKB},
	0x83: {"SAX", ModeIndirectX, saxOp(addrIndXFn)},
	0x87: {"SAX", ModeZeroPage, saxOp(addrZPFn)},
	0x89: {"NOP", ModeImmediate, execSKB},
	0x8B: {"XAA", ModeImmediate, execXAA},
	0x8F: {"SAX", ModeAbsolute, saxOp(addrAbsFn)},

	0x92: {"HLT", ModeImplied, execHLT},
	0x93: {"AHX", ModeIndirectY, execAHX(addrIndYFn)},
	0x97: {"SAX", ModeZeroPageY, saxOp(addrZPYFn)},
	0x9B: {"TAS", ModeAbsoluteY, execTAS},
	0x9C: {"SHY", ModeAbsoluteX, execSHY(addrAbsXFn)},
	0x9E: {"SHX", ModeAbsoluteY, execSHX(addrAbsYFn)},
	0x9F: {"AHX", ModeAbsoluteY, execAHX(addrAbsYFn)},

	0xA3: {"LAX", ModeIndirectX, laxMode(readIndX)},
	0xA7: {"LAX", ModeZeroPage, laxMode(readZP)},
	0xAB: {"LAX", ModeImmediate, execOAL},
	0xAF: {"LAX", ModeAbsolute, laxMode(readAbs)},

	0xB2: {"HLT", ModeImplied, execHLT},
	0xB3: {"LAX", ModeIndirectY, laxMode(readIndY)},
	0xB7: {"LAX", ModeZeroPageY, laxMode(readZPY)},
	0xBB: {"LAS", ModeAbsoluteY, execLAS},
	0xBF: {"LAX", ModeAbsoluteY, laxMode(readAbsY)},

	0xC2: {"NOP", ModeImmediate, execSKB},
	0xC3: {"DCP", ModeIndirectX, dcpMode(addrIndXFn)},
	0xC7: {"DCP", ModeZeroPage, dcpMode(addrZPFn)},
	0xCB: {"AXS", ModeImmediate, execAXS},
	0xCF: {"DCP", ModeAbsolute, dcpMode(addrAbsFn)},

	0xD2: {"HLT", ModeImplied, execHLT},
	0xD3: {"DCP", ModeIndirectY, dcpMode(addrIndYFn)},
	0xD4: {"NOP", ModeZeroPageX, execSKBZPX},
	0xD7: {"DCP", ModeZeroPageX, dcpMode(addrZPXFn)},
	0xDA: {"NOP", ModeImplied, execNOP},
	0xDB: {"DCP", ModeAbsoluteY, dcpMode(addrAbsYFn)},
	0xDC: {"NOP", ModeAbsoluteX, execSKWX},
	0xDF: {"DCP", ModeAbsoluteX, dcpMode(addrAbsXFn)},

	0xE2: {"NOP", ModeImmediate, execSKB},
	0xE3: {"ISC", ModeIndirectX, iscMode(addrIndXFn)},
	0xE7: {"ISC", ModeZeroPage, iscMode(addrZPFn)},
	0xEB: {"SBC", ModeImmediate, sbcMode(vaImm)},
	0xEF: {"ISC", ModeAbsolute, iscMode(addrAbsFn)},

	0xF2: {"HLT", ModeImplied, execHLT},
	0xF3: {"ISC", ModeIndirectY, iscMode(addrIndYFn)},
	0xF4: {"NOP", ModeZeroPageX, execSKBZPX},
	0xF7: {"ISC", ModeZeroPageX, iscMode(addrZPXFn)},
	0xFA: {"NOP", ModeImplied, execNOP},
	0xFB: {"ISC", ModeAbsoluteY, iscMode(addrAbsYFn)},
	0xFC: {"NOP", ModeAbsoluteX, execSKWX},
	0xFF: {"ISC", ModeAbsoluteX, iscMode(addrAbsXFn)},
}
