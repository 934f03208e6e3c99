// Package irq defines the basic interfaces for working with a 6502 family
// interrupt. A component that generates interrupts (IRQ/NMI) implements
// Sender so that the receiving side can poll its state without cross
// coupling component logic.
// NOTE: even though chips make a distinction between level and edge type
// interrupts, Sender itself doesn't care — Line and EdgeLine below account
// for that difference in how they drive the CPU.
package irq

// Sender defines the interface for an IRQ source.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

// ChipIRQ is the subset of a CPU chip a level-triggered IRQ line drives.
type ChipIRQ interface {
	IRQ()
}

// ChipNMI is the subset of a CPU chip an edge-triggered NMI line drives.
type ChipNMI interface {
	NMI()
}

// Line aggregates zero or more level-style IRQ sources and re-asserts the
// CPU's maskable interrupt line for as long as any of them is raised,
// mirroring a real wired-OR IRQ bus. Poll it once per instruction boundary.
type Line struct {
	sources []Sender
}

// NewLine returns a Line polling the given sources.
func NewLine(sources ...Sender) *Line {
	return &Line{sources: sources}
}

// Poll re-latches c.IRQ() if any source is currently raised.
func (l *Line) Poll(c ChipIRQ) {
	for _, s := range l.sources {
		if s.Raised() {
			c.IRQ()
			return
		}
	}
}

// EdgeLine tracks a single edge-triggered NMI source and calls c.NMI()
// exactly once per low-to-high transition, matching NMI's edge-latch
// behavior: a source that stays raised does not re-trigger it.
type EdgeLine struct {
	source Sender
	was    bool
}

// NewEdgeLine returns an EdgeLine tracking source.
func NewEdgeLine(source Sender) *EdgeLine {
	return &EdgeLine{source: source}
}

// Poll calls c.NMI() on a rising edge of the underlying source.
func (e *EdgeLine) Poll(c ChipNMI) {
	now := e.source.Raised()
	if now && !e.was {
		c.NMI()
	}
	e.was = now
}
