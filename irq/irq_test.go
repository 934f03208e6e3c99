package irq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSource struct{ raised bool }

func (s *stubSource) Raised() bool { return s.raised }

type countingChip struct {
	irqs int
	nmis int
}

func (c *countingChip) IRQ() { c.irqs++ }
func (c *countingChip) NMI() { c.nmis++ }

func TestLineReassertsWhileRaised(t *testing.T) {
	src := &stubSource{}
	chip := &countingChip{}
	line := NewLine(src)

	line.Poll(chip)
	assert.Equal(t, 0, chip.irqs, "no source raised, no IRQ")

	src.raised = true
	line.Poll(chip)
	line.Poll(chip)
	assert.Equal(t, 2, chip.irqs, "level-style line re-latches on every poll while held")

	src.raised = false
	line.Poll(chip)
	assert.Equal(t, 2, chip.irqs)
}

func TestLineWiredOR(t *testing.T) {
	a := &stubSource{}
	b := &stubSource{raised: true}
	chip := &countingChip{}
	line := NewLine(a, b)

	line.Poll(chip)
	assert.Equal(t, 1, chip.irqs, "any raised source asserts the line")
}

func TestEdgeLineFiresOncePerRisingEdge(t *testing.T) {
	src := &stubSource{}
	chip := &countingChip{}
	edge := NewEdgeLine(src)

	edge.Poll(chip)
	assert.Equal(t, 0, chip.nmis)

	src.raised = true
	edge.Poll(chip)
	edge.Poll(chip)
	edge.Poll(chip)
	assert.Equal(t, 1, chip.nmis, "a held source must not re-trigger NMI")

	src.raised = false
	edge.Poll(chip)
	src.raised = true
	edge.Poll(chip)
	assert.Equal(t, 2, chip.nmis, "a fresh rising edge triggers again")
}
