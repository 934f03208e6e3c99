// Package memory provides cpu.PageHandler implementations for the common
// shapes a 65xx address map is built from: flat read/write RAM, read-only
// ROM, and an address-mirroring wrapper for systems (like the NES) that
// alias a small RAM across a much larger page range.
package memory

import (
	"math/rand"
	"time"
)

// RAM implements a contiguous, power-on-randomized read/write region
// spanning the inclusive page range [Start,End]. It also implements
// cpu.Resetter: Reset re-randomizes its contents, mirroring real SRAM
// powering up into undefined garbage rather than all zeros.
type RAM struct {
	start, end uint8
	data       []uint8
	databusVal uint8
}

// NewRAM creates a RAM bank covering the inclusive page range [start,end].
func NewRAM(start, end uint8) *RAM {
	size := (int(end) - int(start) + 1) * 256
	r := &RAM{start: start, end: end, data: make([]uint8, size)}
	r.randomize()
	return r
}

func (r *RAM) Start() uint8 { return r.start }
func (r *RAM) End() uint8   { return r.end }

func (r *RAM) Read(page, offset uint8) uint8 {
	idx := int(page-r.start)*256 + int(offset)
	r.databusVal = r.data[idx]
	return r.databusVal
}

func (r *RAM) Write(page, offset, val uint8) {
	idx := int(page-r.start)*256 + int(offset)
	r.data[idx] = val
	r.databusVal = val
}

// DatabusVal returns the last value this bank saw cross its bus, win or
// lose — useful for emulating the open-bus reads some undocumented
// opcodes and peripherals rely on.
func (r *RAM) DatabusVal() uint8 { return r.databusVal }

// Reset re-randomizes the bank's contents, matching real SRAM's undefined
// power-on state.
func (r *RAM) Reset() { r.randomize() }

func (r *RAM) randomize() {
	rand.Seed(time.Now().UnixNano())
	for i := range r.data {
		r.data[i] = uint8(rand.Intn(256))
	}
}

// ROM implements a read-only region covering the inclusive page range
// [start,start+len(image)/256-1]. Writes are silently discarded, matching
// real ROM/mask-ROM behavior.
type ROM struct {
	start uint8
	data  []uint8
}

// NewROM creates a ROM bank starting at start and covering len(image) bytes,
// which must be a multiple of 256.
func NewROM(start uint8, image []uint8) *ROM {
	data := make([]uint8, len(image))
	copy(data, image)
	return &ROM{start: start, data: data}
}

func (r *ROM) Start() uint8 { return r.start }
func (r *ROM) End() uint8   { return r.start + uint8(len(r.data)/256-1) }

func (r *ROM) Read(page, offset uint8) uint8 {
	idx := int(page-r.start)*256 + int(offset)
	return r.data[idx]
}

func (r *ROM) Write(page, offset, val uint8) {}

// Mirror re-exposes an existing PageHandler across an additional page
// range, wrapping page/offset coordinates back into the target's own
// range before delegating. This is how small RAM (e.g. 2KB on the NES)
// gets aliased across a much larger page window.
type Mirror struct {
	start, end uint8
	target     cpuPageHandler
	period     int // number of pages the target actually spans
}

// cpuPageHandler is the subset of cpu.PageHandler Mirror needs; declared
// locally so this package does not import cpu (which imports memory's
// sibling packages only through the host wiring, never the reverse).
type cpuPageHandler interface {
	Start() uint8
	End() uint8
	Read(page, offset uint8) uint8
	Write(page, offset uint8, val uint8)
}

// NewMirror creates a handler covering [start,end] that aliases target,
// wrapping page addresses modulo target's own page span.
func NewMirror(start, end uint8, target cpuPageHandler) *Mirror {
	period := int(target.End()) - int(target.Start()) + 1
	return &Mirror{start: start, end: end, target: target, period: period}
}

func (m *Mirror) Start() uint8 { return m.start }
func (m *Mirror) End() uint8   { return m.end }

func (m *Mirror) targetPage(page uint8) uint8 {
	offsetPages := (int(page) - int(m.start)) % m.period
	return m.target.Start() + uint8(offsetPages)
}

func (m *Mirror) Read(page, offset uint8) uint8 {
	return m.target.Read(m.targetPage(page), offset)
}

func (m *Mirror) Write(page, offset, val uint8) {
	m.target.Write(m.targetPage(page), offset, val)
}
