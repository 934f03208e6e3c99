package cpu

// PageHandler answers reads and writes for one or more contiguous 256-byte
// pages of the 16-bit address space. Start and End are inclusive page
// numbers (the address's high byte); a handler covering more than one page
// is addressed with the same Read/Write pair for all of them, receiving the
// specific page in use on every call so it can tell its pages apart.
type PageHandler interface {
	Start() uint8
	End() uint8
	Read(page, offset uint8) uint8
	Write(page, offset uint8, val uint8)
}

// Resetter is implemented by page handlers that need to know when the CPU's
// reset line is asserted (typically RAM clearing its power-on garbage, or a
// peripheral returning its registers to a defined state).
type Resetter interface {
	Reset()
}

// Bus is the CPU's 256-entry page map. Every page starts mapped to an inert
// blank handler that reads zero and discards writes; AddPageHandler installs
// a real handler over the range it claims. Registering a second handler over
// a page already claimed replaces it — last registration wins.
type Bus struct {
	pages     [256]PageHandler
	resetters []Resetter
	seen      map[Resetter]bool
}

// NewBus returns a Bus with every page mapped to the blank handler.
func NewBus() *Bus {
	b := &Bus{seen: map[Resetter]bool{}}
	var blank blankPage
	for i := range b.pages {
		b.pages[i] = blank
	}
	return b
}

// AddPageHandler installs h across its [Start(),End()] page range. If h also
// implements Resetter it is appended to the reset registry the first time it
// is seen, in registration order; registering the same handler again (e.g.
// because it covers more than one disjoint range) does not duplicate it.
func (b *Bus) AddPageHandler(h PageHandler) {
	for p := int(h.Start()); p <= int(h.End()); p++ {
		b.pages[p] = h
	}
	if r, ok := h.(Resetter); ok {
		if !b.seen[r] {
			b.seen[r] = true
			b.resetters = append(b.resetters, r)
		}
	}
}

// resetHandlers invokes every registered Resetter in first-registration order.
func (b *Bus) resetHandlers() {
	for _, r := range b.resetters {
		r.Reset()
	}
}

func (b *Bus) read(addr uint16) uint8 {
	page := uint8(addr >> 8)
	return b.pages[page].Read(page, uint8(addr))
}

func (b *Bus) write(addr uint16, val uint8) {
	page := uint8(addr >> 8)
	b.pages[page].Write(page, uint8(addr), val)
}

// blankPage is installed on every page at construction and on any page never
// claimed by a host-supplied handler.
type blankPage struct{}

func (blankPage) Start() uint8                        { return 0 }
func (blankPage) End() uint8                          { return 255 }
func (blankPage) Read(page, offset uint8) uint8       { return 0 }
func (blankPage) Write(page, offset uint8, val uint8) {}
