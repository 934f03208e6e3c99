package cpu

import (
	"fmt"
	"math/rand"
	"time"
)

// Chip is a single 65xx processor core: register file, status flags, a
// page-mapped Bus, and the composed opcode dispatch table for its Flavor.
type Chip struct {
	A, X, Y uint8
	SP      uint8
	P       uint8
	PC      uint16

	flavor Flavor
	bus    *Bus
	cycles uint64

	sync bool // True only during the single opcode-fetch read of an instruction.
	wait bool // Set by WAI; cleared by a pending interrupt or Reset.
	stop bool // Set by STP or a HLT opcode; only Reset clears it.

	pendingIRQ bool
	pendingNMI bool

	dispatch [256]InstructionDescriptor
}

// InvalidCPUState reports a construction or configuration error — never a
// runtime condition encountered while stepping.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// HaltOpcode reports that the CPU executed one of the NMOS undocumented HLT
// opcodes, or an explicit STP. The chip does not clear this on its own;
// only Reset does.
type HaltOpcode struct {
	Opcode uint8
}

func (e HaltOpcode) Error() string {
	return fmt.Sprintf("HALT(0x%.2X) executed", e.Opcode)
}

// New constructs a Chip for the given flavor. Construction is deterministic:
// P=FlagUnused, SP=0xFF, A=X=Y=0, PC=0, pending until Reset is
// called to load PC from the reset vector. Building the dispatch table for
// FlavorNMOS6502 panics if any of the 256 opcode slots is left unset after
// overlaying the undocumented-opcode table — that indicates a gap in the
// table data itself, not a recoverable runtime condition.
func New(flavor Flavor) (*Chip, error) {
	if flavor <= FlavorUnknown || flavor >= flavorMax {
		return nil, InvalidCPUState{Reason: fmt.Sprintf("flavor %d is invalid", flavor)}
	}
	c := &Chip{
		flavor:   flavor,
		bus:      NewBus(),
		dispatch: buildDispatch(flavor),
		P:        FlagUnused,
		SP:       0xFF,
	}
	return c, nil
}

// AddPageHandler installs h on the chip's bus. See Bus.AddPageHandler.
func (c *Chip) AddPageHandler(h PageHandler) {
	c.bus.AddPageHandler(h)
}

// Flavor returns the CPU variant this chip was constructed with.
func (c *Chip) Flavor() Flavor { return c.flavor }

// Cycles returns the number of bus-touching reads and writes performed since
// construction.
func (c *Chip) Cycles() uint64 { return c.cycles }

// Sync reports whether the chip is, at this instant, in the middle of an
// opcode-fetch read. Only a page handler's Read, called during that fetch,
// can observe it true; by the time a step callback runs it is false again.
func (c *Chip) Sync() bool { return c.sync }

// Waiting reports whether WAI has parked the chip pending an interrupt.
func (c *Chip) Waiting() bool { return c.wait }

// Stopped reports whether STP or a HLT opcode has parked the chip. Only
// Reset clears this.
func (c *Chip) Stopped() bool { return c.stop }

// State is a snapshot of every register, flag, and the cycle counter.
// Intended for test fixtures and simple save/restore; it is not a full
// machine snapshot (the Bus and its page handlers are not part of it).
type State struct {
	A, X, Y, SP, P uint8
	PC             uint16
	Cycles         uint64
}

// GetState returns the chip's current register/flag/cycle snapshot.
func (c *Chip) GetState() State {
	return State{A: c.A, X: c.X, Y: c.Y, SP: c.SP, P: c.P, PC: c.PC, Cycles: c.cycles}
}

// SetState restores a snapshot previously returned by GetState.
func (c *Chip) SetState(s State) {
	c.A, c.X, c.Y, c.SP, c.P, c.PC, c.cycles = s.A, s.X, s.Y, s.SP, s.P, s.PC, s.Cycles
}

// Peek reads a byte without touching the cycle counter or sync/phantom
// semantics — for host tooling (disassemblers, debuggers) that need to look
// at memory without perturbing the emulated machine.
func (c *Chip) Peek(addr uint16) uint8 {
	return c.bus.read(addr)
}

// Poke writes a byte without touching the cycle counter — for host tooling
// that needs to patch memory directly (e.g. loading a program image).
func (c *Chip) Poke(addr uint16, val uint8) {
	c.bus.write(addr, val)
}

// PeekPage is Peek addressed by page/offset coordinates instead of a flat
// 16-bit address.
func (c *Chip) PeekPage(page, offset uint8) uint8 {
	return c.bus.pages[page].Read(page, offset)
}

// PokePage is Poke addressed by page/offset coordinates instead of a flat
// 16-bit address.
func (c *Chip) PokePage(page, offset uint8, val uint8) {
	c.bus.pages[page].Write(page, offset, val)
}

// GetOpInfo returns the instruction descriptor the chip's active flavor has
// bound to the given opcode byte. This never panics, even for opcode bytes
// a CMOS flavor leaves unset (those report as a 1-cycle implied NOP); the
// only fatal gap-detection happens once, at construction.
func (c *Chip) GetOpInfo(opcode uint8) InstructionDescriptor {
	return c.dispatch[opcode]
}

// DebugInfo is a point-in-time view of the chip suitable for a stepper or
// monitor UI: the registers, the raw bytes of the instruction about to
// execute, and its decoded descriptor.
type DebugInfo struct {
	State
	Opcode uint8
	Bytes  []uint8
	Desc   InstructionDescriptor
}

// GetDebugInfo returns a DebugInfo for the instruction at the current PC,
// without advancing the chip or touching the cycle counter.
func (c *Chip) GetDebugInfo() DebugInfo {
	op := c.Peek(c.PC)
	desc := c.GetOpInfo(op)
	n := addrModeLength(desc.Mode)
	bs := make([]uint8, n)
	for i := 0; i < n; i++ {
		bs[i] = c.Peek(c.PC + uint16(i))
	}
	return DebugInfo{State: c.GetState(), Opcode: op, Bytes: bs, Desc: desc}
}

// Reset asserts the reset line. Per the reset protocol only two bus accesses
// are observable — the two bytes of the reset vector — even though the
// register file, stack pointer, and flags are all put back into their
// defined power-on relationship beforehand. Every registered Resetter is
// invoked, in first-registration order, before the vector is loaded.
func (c *Chip) Reset() {
	c.P = FlagUnused
	c.SP = 0xFF
	c.A, c.X, c.Y = 0, 0, 0
	c.wait = false
	c.stop = false
	c.pendingIRQ = false
	c.pendingNMI = false
	c.bus.resetHandlers()
	lo := c.readByte(ResetVector)
	hi := c.readByte(ResetVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// IRQ asserts the maskable interrupt line. It is level-style: the request is
// re-latched on every call and is only honored, at the next instruction
// boundary, while the I flag is clear. Calling it while I is set records the
// request but it takes no effect until I is later cleared and a subsequent
// instruction boundary is reached (mirroring a still-held IRQ pin).
func (c *Chip) IRQ() {
	c.pendingIRQ = true
}

// NMI asserts the non-maskable interrupt line. It is edge-latched: once
// requested it is always serviced at the next instruction boundary,
// regardless of the I flag.
func (c *Chip) NMI() {
	c.pendingNMI = true
}

// randomizePowerOnState gives callers undefined NMOS register/decimal state
// instead of New's deterministic zeroed registers. Only register contents and
// the decimal flag (NMOS/Ricoh-style parts leave it undefined) are
// randomized; SP, the interrupt-disable flag, and PC still come from Reset.
func (c *Chip) randomizePowerOnState() {
	rand.Seed(time.Now().UnixNano())
	c.A = uint8(rand.Intn(256))
	c.X = uint8(rand.Intn(256))
	c.Y = uint8(rand.Intn(256))
	flags := FlagUnused
	if c.flavor == FlavorNMOS6502 && rand.Float32() > 0.5 {
		flags |= FlagDecimal
	}
	c.P = flags
}

// PowerOn puts the chip into an undefined-register power-on state (A/X/Y and,
// on NMOS, the decimal flag, are randomized) and then runs Reset to establish
// SP, I, and PC.
func (c *Chip) PowerOn() {
	c.randomizePowerOnState()
	a, x, y, d := c.A, c.X, c.Y, c.P&FlagDecimal
	c.Reset()
	c.A, c.X, c.Y = a, x, y
	c.P |= d
}
