package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// flatRAM is a minimal full-address-space PageHandler for test fixtures —
// no mirroring, no ROM, just 64K of directly addressable bytes.
type flatRAM struct {
	mem [65536]uint8
}

func (r *flatRAM) Start() uint8 { return 0 }
func (r *flatRAM) End() uint8   { return 255 }

func (r *flatRAM) Read(page, offset uint8) uint8 {
	return r.mem[uint16(page)<<8|uint16(offset)]
}

func (r *flatRAM) Write(page, offset, val uint8) {
	r.mem[uint16(page)<<8|uint16(offset)] = val
}

func newChip(t *testing.T, flavor Flavor) (*Chip, *flatRAM) {
	t.Helper()
	c, err := New(flavor)
	if err != nil {
		t.Fatalf("New(%v): %v", flavor, err)
	}
	r := &flatRAM{}
	c.AddPageHandler(r)
	r.mem[ResetVector] = 0x00
	r.mem[ResetVector+1] = 0x10
	c.Reset()
	return c, r
}

func allFlavors() []Flavor {
	return []Flavor{FlavorNMOS6502, FlavorRockwell65C02, FlavorWDC65C02}
}

func TestReset(t *testing.T) {
	for _, f := range allFlavors() {
		c, _ := newChip(t, f)
		want := State{A: 0, X: 0, Y: 0, SP: 0xFF, P: FlagUnused, PC: 0x1000, Cycles: 2}
		if diff := deep.Equal(c.GetState(), want); diff != nil {
			t.Errorf("%v: Reset state mismatch: %v\nfull: %s", f, diff, spew.Sdump(c.GetState()))
		}
	}
}

func TestNOP(t *testing.T) {
	for _, f := range allFlavors() {
		c, r := newChip(t, f)
		r.mem[0x1000] = 0xEA // NOP
		startCycles := c.Cycles()
		c.Step(nil)
		if c.PC != 0x1001 {
			t.Errorf("%v: PC after NOP = %.4X, want 0x1001", f, c.PC)
		}
		if got := c.Cycles() - startCycles; got != 2 {
			t.Errorf("%v: NOP cost %d cycles, want 2", f, got)
		}
	}
}

func TestLDAImmediateFlags(t *testing.T) {
	tests := []struct {
		val      uint8
		wantZero bool
		wantNeg  bool
	}{
		{0x00, true, false},
		{0x7F, false, false},
		{0x80, false, true},
		{0xFF, false, true},
	}
	for _, f := range allFlavors() {
		for _, tc := range tests {
			c, r := newChip(t, f)
			r.mem[0x1000] = 0xA9 // LDA #imm
			r.mem[0x1001] = tc.val
			c.Step(nil)
			if c.A != tc.val {
				t.Errorf("%v LDA #%.2X: A = %.2X", f, tc.val, c.A)
			}
			if (c.P&FlagZero != 0) != tc.wantZero {
				t.Errorf("%v LDA #%.2X: Z flag = %v, want %v", f, tc.val, c.P&FlagZero != 0, tc.wantZero)
			}
			if (c.P&FlagNegative != 0) != tc.wantNeg {
				t.Errorf("%v LDA #%.2X: N flag = %v, want %v", f, tc.val, c.P&FlagNegative != 0, tc.wantNeg)
			}
		}
	}
}

func TestJSRRTS(t *testing.T) {
	for _, f := range allFlavors() {
		c, r := newChip(t, f)
		r.mem[0x1000] = 0x20 // JSR
		r.mem[0x1001] = 0x00
		r.mem[0x1002] = 0x20
		r.mem[0x2000] = 0x60 // RTS
		c.Step(nil)
		if c.PC != 0x2000 {
			t.Fatalf("%v: PC after JSR = %.4X, want 0x2000", f, c.PC)
		}
		if c.SP != 0xFD {
			t.Fatalf("%v: SP after JSR = %.2X, want 0xFD", f, c.SP)
		}
		c.Step(nil)
		if c.PC != 0x1003 {
			t.Fatalf("%v: PC after RTS = %.4X, want 0x1003", f, c.PC)
		}
		if c.SP != 0xFF {
			t.Fatalf("%v: SP after RTS = %.2X, want 0xFF", f, c.SP)
		}
	}
}

func TestBranchCycleCounts(t *testing.T) {
	tests := []struct {
		name    string
		pc      uint16
		offset  uint8
		taken   bool
		cycles  uint64
		wantPC  uint16
	}{
		{"not taken", 0x1000, 0x10, false, 2, 0x1002},
		{"taken, same page", 0x1000, 0x10, true, 3, 0x1012},
		{"taken, crosses page", 0x10F0, 0x20, true, 4, 0x1112},
	}
	for _, f := range allFlavors() {
		for _, tc := range tests {
			c, r := newChip(t, f)
			c.PC = tc.pc
			if tc.taken {
				c.P |= FlagCarry // BCS
			} else {
				c.P &^= FlagCarry
			}
			r.mem[tc.pc] = 0xB0 // BCS
			r.mem[tc.pc+1] = tc.offset
			start := c.Cycles()
			c.Step(nil)
			if got := c.Cycles() - start; got != tc.cycles {
				t.Errorf("%v/%s: cycles = %d, want %d", f, tc.name, got, tc.cycles)
			}
			if c.PC != tc.wantPC {
				t.Errorf("%v/%s: PC = %.4X, want %.4X", f, tc.name, c.PC, tc.wantPC)
			}
		}
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	r.mem[0x1000] = 0x6C // JMP (abs)
	r.mem[0x1001] = 0xFF
	r.mem[0x1002] = 0x20
	r.mem[0x20FF] = 0x34
	r.mem[0x2000] = 0x12 // bug: high byte comes from 0x2000, not 0x2100
	r.mem[0x2100] = 0x99
	start := c.Cycles()
	c.Step(nil)
	if c.PC != 0x1234 {
		t.Errorf("NMOS JMP(abs) page-wrap bug: PC = %.4X, want 0x1234", c.PC)
	}
	if got := c.Cycles() - start; got != 5 {
		t.Errorf("NMOS JMP(abs): cycles = %d, want 5", got)
	}
}

func TestJMPIndirectCMOSFixed(t *testing.T) {
	for _, f := range []Flavor{FlavorRockwell65C02, FlavorWDC65C02} {
		c, r := newChip(t, f)
		r.mem[0x1000] = 0x6C
		r.mem[0x1001] = 0xFF
		r.mem[0x1002] = 0x20
		r.mem[0x20FF] = 0x34
		r.mem[0x2000] = 0x12
		r.mem[0x2100] = 0x99
		start := c.Cycles()
		c.Step(nil)
		if c.PC != 0x9934 {
			t.Errorf("%v: CMOS JMP(abs) = %.4X, want 0x9934", f, c.PC)
		}
		if got := c.Cycles() - start; got != 6 {
			t.Errorf("%v: CMOS JMP(abs) cycles = %d, want 6", f, got)
		}
	}
}

func TestADCDecimalModeFlagSource(t *testing.T) {
	// 0x58 + 0x46 BCD = 0x04 with carry out, but the uncorrected sums are
	// negative in two's complement — NMOS reports N from the 0xA4 nibble-sum
	// intermediate and Z from the binary sum 0x9E, while CMOS reports both
	// from the corrected BCD result.
	for _, f := range allFlavors() {
		c, r := newChip(t, f)
		c.P |= FlagDecimal
		c.A = 0x58
		r.mem[0x1000] = 0x69 // ADC #imm
		r.mem[0x1001] = 0x46
		c.Step(nil)
		if c.A != 0x04 {
			t.Errorf("%v: BCD ADC result = %.2X, want 0x04", f, c.A)
		}
		if c.P&FlagCarry == 0 {
			t.Errorf("%v: BCD ADC expected carry set", f)
		}
		// Z comes from the binary sum 0x9E on NMOS and from the BCD result
		// 0x04 on CMOS; neither is zero, so Z should be clear either way.
		if c.P&FlagZero != 0 {
			t.Errorf("%v: Z flag set, want clear", f)
		}
		wantNeg := f == FlavorNMOS6502 // NMOS N comes from the 0xA4 binary-nibble intermediate (bit7 set); CMOS N comes from the final 0x04 result (bit7 clear)
		if (c.P&FlagNegative != 0) != wantNeg {
			t.Errorf("%v: N flag = %v, want %v", f, c.P&FlagNegative != 0, wantNeg)
		}
	}
}

func TestBRKSequence(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	r.mem[IRQVector] = 0x00
	r.mem[IRQVector+1] = 0x30
	r.mem[0x1000] = 0x00 // BRK
	r.mem[0x1001] = 0xAA // signature byte, discarded
	start := c.Cycles()
	c.Step(nil)
	if got := c.Cycles() - start; got != 7 {
		t.Errorf("BRK cycles = %d, want 7", got)
	}
	if c.PC != 0x3000 {
		t.Errorf("BRK PC = %.4X, want 0x3000", c.PC)
	}
	if c.P&FlagInterrupt == 0 {
		t.Errorf("BRK did not set I")
	}
	if c.SP != 0xFC {
		t.Errorf("BRK SP = %.2X, want 0xFC", c.SP)
	}
	pushedP := r.mem[StackPage+uint16(c.SP)+1]
	if pushedP&FlagBreak == 0 {
		t.Errorf("BRK did not push B set")
	}
}

func TestIRQServicedAtInstructionBoundary(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	r.mem[IRQVector] = 0x00
	r.mem[IRQVector+1] = 0x40
	r.mem[0x1000] = 0xEA // NOP
	c.P &^= FlagInterrupt
	c.IRQ()
	c.Step(nil)
	if c.PC != 0x4000 {
		t.Errorf("IRQ not serviced: PC = %.4X, want 0x4000", c.PC)
	}
	if c.P&FlagInterrupt == 0 {
		t.Errorf("IRQ service did not set I")
	}
}

func TestIRQMaskedByI(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	r.mem[0x1000] = 0xEA
	c.P |= FlagInterrupt
	c.IRQ()
	c.Step(nil)
	if c.PC != 0x1001 {
		t.Errorf("masked IRQ was serviced anyway: PC = %.4X", c.PC)
	}
}

func TestNMIIgnoresI(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	r.mem[NMIVector] = 0x00
	r.mem[NMIVector+1] = 0x50
	r.mem[0x1000] = 0xEA
	c.P |= FlagInterrupt
	c.NMI()
	c.Step(nil)
	if c.PC != 0x5000 {
		t.Errorf("NMI ignored I: PC = %.4X, want 0x5000", c.PC)
	}
}

func TestHLTStopsChip(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	r.mem[0x1000] = 0x02 // HLT
	c.Step(nil)
	if !c.Stopped() {
		t.Fatal("HLT did not stop chip")
	}
	if c.PC != 0x1000 {
		t.Errorf("HLT advanced PC to %.4X, want it left at 0x1000", c.PC)
	}
	c.Step(nil)
	if c.PC != 0x1000 {
		t.Errorf("stopped chip advanced PC to %.4X", c.PC)
	}
	c.Reset()
	if c.Stopped() {
		t.Error("Reset did not clear stopped state")
	}
}

func TestLAXLoadsBothRegisters(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	r.mem[0x1000] = 0xA7 // LAX zp
	r.mem[0x1001] = 0x50
	r.mem[0x0050] = 0x77
	c.Step(nil)
	if c.A != 0x77 || c.X != 0x77 {
		t.Errorf("LAX: A=%.2X X=%.2X, want both 0x77", c.A, c.X)
	}
}

func TestSAXStoresAAndX(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	c.A = 0xF0
	c.X = 0x3C
	r.mem[0x1000] = 0x87 // SAX zp
	r.mem[0x1001] = 0x60
	c.Step(nil)
	if r.mem[0x0060] != 0x30 {
		t.Errorf("SAX stored %.2X, want 0x30", r.mem[0x0060])
	}
}

func TestCMOSAdditionsUnboundOnNMOS(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	r.mem[0x1000] = 0x80 // NMOS: undocumented 2-byte NOP; CMOS: BRA
	r.mem[0x1001] = 0x10
	c.Step(nil)
	if c.PC != 0x1002 {
		t.Errorf("NMOS 0x80 did not behave as a 2-byte NOP: PC = %.4X", c.PC)
	}
}

func TestBRAOnCMOS(t *testing.T) {
	for _, f := range []Flavor{FlavorRockwell65C02, FlavorWDC65C02} {
		c, r := newChip(t, f)
		r.mem[0x1000] = 0x80 // BRA
		r.mem[0x1001] = 0x10
		c.Step(nil)
		if c.PC != 0x1012 {
			t.Errorf("%v: BRA PC = %.4X, want 0x1012", f, c.PC)
		}
	}
}

func TestWAIOnlyOnWDC(t *testing.T) {
	c, r := newChip(t, FlavorWDC65C02)
	r.mem[0x1000] = 0xCB // WAI
	c.Step(nil)
	if !c.Waiting() {
		t.Fatal("WAI did not park the chip")
	}
	c.IRQ()
	c.P &^= FlagInterrupt
	r.mem[IRQVector] = 0x00
	r.mem[IRQVector+1] = 0x60
	c.Step(nil)
	if c.Waiting() {
		t.Error("pending IRQ did not wake WAI")
	}
	if c.PC != 0x6000 {
		t.Errorf("WAI wake PC = %.4X, want 0x6000", c.PC)
	}
}

func TestRockwellLacksWAI(t *testing.T) {
	c, r := newChip(t, FlavorRockwell65C02)
	r.mem[0x1000] = 0xCB // reserved NOP on Rockwell
	c.Step(nil)
	if c.Waiting() {
		t.Error("Rockwell 0xCB behaved as WAI")
	}
	if c.PC != 0x1001 {
		t.Errorf("Rockwell 0xCB PC = %.4X, want 0x1001", c.PC)
	}
}

func TestShiftAbsXCycleCounts(t *testing.T) {
	// ASL abs,X: the indexing dummy cycle is unconditional on NMOS (7 cycles
	// either way) but page-cross-only on CMOS (6 or 7).
	tests := []struct {
		flavor Flavor
		x      uint8
		want   uint64
	}{
		{FlavorNMOS6502, 0x01, 7},
		{FlavorNMOS6502, 0xFF, 7},
		{FlavorRockwell65C02, 0x01, 6},
		{FlavorRockwell65C02, 0xFF, 7},
		{FlavorWDC65C02, 0x01, 6},
		{FlavorWDC65C02, 0xFF, 7},
	}
	for _, tc := range tests {
		c, r := newChip(t, tc.flavor)
		c.X = tc.x
		r.mem[0x1000] = 0x1E // ASL abs,X
		r.mem[0x1001] = 0x80
		r.mem[0x1002] = 0x20
		start := c.Cycles()
		c.Step(nil)
		if got := c.Cycles() - start; got != tc.want {
			t.Errorf("%v ASL 2080,X with X=%.2X: cycles = %d, want %d", tc.flavor, tc.x, got, tc.want)
		}
	}
}

func TestINCAbsXAlwaysPaysOnCMOS(t *testing.T) {
	for _, f := range allFlavors() {
		c, r := newChip(t, f)
		c.X = 0x01 // no page cross
		r.mem[0x1000] = 0xFE // INC abs,X
		r.mem[0x1001] = 0x80
		r.mem[0x1002] = 0x20
		start := c.Cycles()
		c.Step(nil)
		if got := c.Cycles() - start; got != 7 {
			t.Errorf("%v INC 2080,X: cycles = %d, want 7", f, got)
		}
	}
}

func TestStatePushPullRoundTrips(t *testing.T) {
	for _, f := range allFlavors() {
		c, r := newChip(t, f)
		c.A = 0x5A
		r.mem[0x1000] = 0x48 // PHA
		r.mem[0x1001] = 0xA9 // LDA #00
		r.mem[0x1002] = 0x00
		r.mem[0x1003] = 0x68 // PLA
		c.StepN(3, nil)
		if c.A != 0x5A {
			t.Errorf("%v: PHA/PLA did not restore A: %.2X", f, c.A)
		}
		if c.P&FlagZero != 0 || c.P&FlagNegative != 0 {
			t.Errorf("%v: PLA flags wrong for 0x5A: P=%.2X", f, c.P)
		}

		c, r = newChip(t, f)
		c.P = FlagUnused | FlagNegative | FlagCarry
		r.mem[0x1000] = 0x08 // PHP
		r.mem[0x1001] = 0xA9 // LDA #00 (clobbers N, sets Z)
		r.mem[0x1002] = 0x00
		r.mem[0x1003] = 0x28 // PLP
		c.StepN(3, nil)
		want := FlagUnused | FlagNegative | FlagCarry
		if c.P != want {
			t.Errorf("%v: PHP/PLP restored P=%.2X, want %.2X (B forced clear, unused forced set)", f, c.P, want)
		}
	}
}

func TestSetStateGetStateIdentity(t *testing.T) {
	c, _ := newChip(t, FlavorNMOS6502)
	c.A, c.X, c.Y = 0x11, 0x22, 0x33
	c.P = FlagUnused | FlagCarry | FlagNegative
	c.PC = 0xBEEF
	c.SP = 0x80
	before := c.GetState()
	c.SetState(before)
	if diff := deep.Equal(c.GetState(), before); diff != nil {
		t.Errorf("SetState(GetState()) not identity: %v", diff)
	}
}

func TestStepCyclesOvershootsByWholeInstruction(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	for i := uint16(0); i < 0x100; i++ {
		r.mem[0x1000+i] = 0xEA // NOP sled
	}
	got := c.StepCycles(3)
	// Two NOPs: 4 cycles, overshooting the 3-cycle budget by one.
	if got != 4 {
		t.Errorf("StepCycles(3) = %d cycles, want 4", got)
	}
}

func TestStepCyclesStopsWhenHalted(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	r.mem[0x1000] = 0xEA // NOP
	r.mem[0x1001] = 0x02 // HLT
	got := c.StepCycles(1000)
	if !c.Stopped() {
		t.Fatal("chip did not stop")
	}
	if got >= 1000 {
		t.Errorf("StepCycles did not break out after halt: consumed %d cycles", got)
	}
}

func TestIRQCycleAndStackDelta(t *testing.T) {
	c, r := newChip(t, FlavorNMOS6502)
	r.mem[IRQVector] = 0x00
	r.mem[IRQVector+1] = 0x40
	c.P &^= FlagInterrupt
	c.PC = 0x1234
	c.IRQ()
	start := c.Cycles()
	sp := c.SP
	c.Step(nil)
	if got := c.Cycles() - start; got != 5 {
		t.Errorf("IRQ service cycles = %d, want 5", got)
	}
	if c.SP != sp-3 {
		t.Errorf("IRQ SP delta: %.2X -> %.2X, want -3", sp, c.SP)
	}
	if r.mem[StackPage+uint16(sp)] != 0x12 || r.mem[StackPage+uint16(sp)-1] != 0x34 {
		t.Errorf("IRQ pushed PC bytes %.2X %.2X, want 12 34",
			r.mem[StackPage+uint16(sp)], r.mem[StackPage+uint16(sp)-1])
	}
	if r.mem[StackPage+uint16(sp)-2]&FlagBreak != 0 {
		t.Error("IRQ pushed P with B set, want clear")
	}
}

func TestSingleStepsMatchBatchRun(t *testing.T) {
	program := []uint8{
		0xA9, 0x10, // LDA #10
		0xAA,       // TAX
		0x69, 0x25, // ADC #25
		0x9D, 0x00, 0x02, // STA 0200,X
		0xE8,       // INX
		0xD0, 0xFA, // BNE back to the STA
		0xEA, // NOP
	}
	run := func(single bool) State {
		c, r := newChip(t, FlavorNMOS6502)
		copy(r.mem[0x1000:], program)
		if single {
			for i := 0; i < 20; i++ {
				c.Step(nil)
			}
			return c.GetState()
		}
		c.StepN(20, nil)
		return c.GetState()
	}
	batch := run(false)
	singles := run(true)
	if diff := deep.Equal(batch, singles); diff != nil {
		t.Errorf("batch vs single-step divergence: %v\nbatch: %s", diff, spew.Sdump(batch))
	}
}

func TestPeekPokePageDoNotTouchCycles(t *testing.T) {
	c, _ := newChip(t, FlavorNMOS6502)
	start := c.Cycles()
	c.Poke(0x1234, 0x56)
	if got := c.Peek(0x1234); got != 0x56 {
		t.Errorf("Peek(0x1234) = %.2X, want 0x56", got)
	}
	c.PokePage(0x12, 0x35, 0x78)
	if got := c.PeekPage(0x12, 0x35); got != 0x78 {
		t.Errorf("PeekPage(12,35) = %.2X, want 0x78", got)
	}
	if c.Cycles() != start {
		t.Errorf("peek/poke advanced cycle counter by %d", c.Cycles()-start)
	}
}

func TestGetOpInfoNeverPanicsAcrossAllOpcodes(t *testing.T) {
	for _, f := range allFlavors() {
		c, err := New(f)
		if err != nil {
			t.Fatalf("New(%v): %v", f, err)
		}
		for op := 0; op < 256; op++ {
			desc := c.GetOpInfo(uint8(op))
			if desc.Exec == nil {
				t.Errorf("%v opcode 0x%.2X: nil Exec", f, op)
			}
		}
	}
}
