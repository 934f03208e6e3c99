package cpu

// cmos65C02SharedTable holds the 65C02 additions common to both the
// Rockwell and WDC parts: the new BRA/PHX/PHY/PLX/PLY/STZ/TRB/TSB/INC
// A/DEC A instructions, the RMBn/SMBn/BBRn/BBSn bit-manipulation family,
// BIT #imm, and the (zp) indirect addressing mode added to the eight ops
// (ORA, AND, EOR, ADC, STA, LDA, CMP, SBC) that previously lacked it. Rockwell's dispatch table stops here;
// WDC additionally overlays wdcExtraTable.
var cmos65C02SharedTable = [256]InstructionDescriptor{
	0x04: {"TSB", ModeZeroPage, rmwOp(addrZPFn, trsbOp(true))},
	0x07: {"RMB0", ModeZeroPage, rmwOp(addrZPFn, rmbOp(0x01))},
	0x0C: {"TSB", ModeAbsolute, rmwOp(addrAbsFn, trsbOp(true))},
	0x0F: {"BBR0", ModeRelativeZP, bbxMode(0x01, false)},

	0x12: {"ORA", ModeIndirectZP, logicOp(readIndZP, orOp)},
	0x14: {"TRB", ModeZeroPage, rmwOp(addrZPFn, trsbOp(false))},
	0x17: {"RMB1", ModeZeroPage, rmwOp(addrZPFn, rmbOp(0x02))},
	0x1A: {"INC", ModeAccumulator, execINCAcc},
	0x1C: {"TRB", ModeAbsolute, rmwOp(addrAbsFn, trsbOp(false))},
	0x1F: {"BBR1", ModeRelativeZP, bbxMode(0x02, false)},

	0x27: {"RMB2", ModeZeroPage, rmwOp(addrZPFn, rmbOp(0x04))},
	0x2F: {"BBR2", ModeRelativeZP, bbxMode(0x04, false)},

	0x32: {"AND", ModeIndirectZP, logicOp(readIndZP, andOp)},
	0x34: {"BIT", ModeZeroPageX, bitOp(readZPX)},
	0x37: {"RMB3", ModeZeroPage, rmwOp(addrZPFn, rmbOp(0x08))},
	0x3A: {"DEC", ModeAccumulator, execDECAcc},
	0x3C: {"BIT", ModeAbsoluteX, bitOp(readAbsX)},
	0x3F: {"BBR3", ModeRelativeZP, bbxMode(0x08, false)},

	0x47: {"RMB4", ModeZeroPage, rmwOp(addrZPFn, rmbOp(0x10))},
	0x4F: {"BBR4", ModeRelativeZP, bbxMode(0x10, false)},

	0x52: {"EOR", ModeIndirectZP, logicOp(readIndZP, eorOp)},
	0x57: {"RMB5", ModeZeroPage, rmwOp(addrZPFn, rmbOp(0x20))},
	0x5A: {"PHY", ModeImplied, execPHY},
	0x5F: {"BBR5", ModeRelativeZP, bbxMode(0x20, false)},

	0x64: {"STZ", ModeZeroPage, stzOp(addrZPFn)},
	0x67: {"RMB6", ModeZeroPage, rmwOp(addrZPFn, rmbOp(0x40))},
	0x6F: {"BBR6", ModeRelativeZP, bbxMode(0x40, false)},

	0x72: {"ADC", ModeIndirectZP, adcMode(vaIndZP)},
	0x74: {"STZ", ModeZeroPageX, stzOp(addrZPXFn)},
	0x77: {"RMB7", ModeZeroPage, rmwOp(addrZPFn, rmbOp(0x80))},
	0x7A: {"PLY", ModeImplied, execPLY},
	0x7C: {"JMP", ModeIndirectAbsX, execJMPIndexedIndirect},
	0x7F: {"BBR7", ModeRelativeZP, bbxMode(0x80, false)},

	0x80: {"BRA", ModeRelative, execBRA},
	0x87: {"SMB0", ModeZeroPage, rmwOp(addrZPFn, smbOp(0x01))},
	0x89: {"BIT", ModeImmediate, execBITImm},
	0x8F: {"BBS0", ModeRelativeZP, bbxMode(0x01, true)},

	0x92: {"STA", ModeIndirectZP, stOp(regA, addrIndZPFn)},
	0x97: {"SMB1", ModeZeroPage, rmwOp(addrZPFn, smbOp(0x02))},
	0x9C: {"STZ", ModeAbsolute, stzOp(addrAbsFn)},
	0x9E: {"STZ", ModeAbsoluteX, stzOp(addrAbsXFn)},
	0x9F: {"BBS1", ModeRelativeZP, bbxMode(0x02, true)},

	0xA7: {"SMB2", ModeZeroPage, rmwOp(addrZPFn, smbOp(0x04))},
	0xAF: {"BBS2", ModeRelativeZP, bbxMode(0x04, true)},

	0xB2: {"LDA", ModeIndirectZP, ldOp(regA, readIndZP)},
	0xB7: {"SMB3", ModeZeroPage, rmwOp(addrZPFn, smbOp(0x08))},
	0xBF: {"BBS3", ModeRelativeZP, bbxMode(0x08, true)},

	0xC7: {"SMB4", ModeZeroPage, rmwOp(addrZPFn, smbOp(0x10))},
	0xCF: {"BBS4", ModeRelativeZP, bbxMode(0x10, true)},

	0xD2: {"CMP", ModeIndirectZP, compareOp(regA, readIndZP)},
	0xD7: {"SMB5", ModeZeroPage, rmwOp(addrZPFn, smbOp(0x20))},
	0xDA: {"PHX", ModeImplied, execPHX},
	0xDF: {"BBS5", ModeRelativeZP, bbxMode(0x20, true)},

	0xE7: {"SMB6", ModeZeroPage, rmwOp(addrZPFn, smbOp(0x40))},
	0xEF: {"BBS6", ModeRelativeZP, bbxMode(0x40, true)},

	0xF2: {"SBC", ModeIndirectZP, sbcMode(vaIndZP)},
	0xF7: {"SMB7", ModeZeroPage, rmwOp(addrZPFn, smbOp(0x80))},
	0xFA: {"PLX", ModeImplied, execPLX},
	0xFF: {"BBS7", ModeRelativeZP, bbxMode(0x80, true)},
}

// wdcExtraTable holds the two opcodes WDC added beyond the Rockwell
// 65C02 core: WAI and STP. Rockwell parts leave these two bytes as
// reserved one-cycle NOPs.
var wdcExtraTable = [256]InstructionDescriptor{
	0xCB: {"WAI", ModeImplied, execWAI},
	0xDB: {"STP", ModeImplied, execSTP},
}
