// Command stepper is a full-screen interactive instruction stepper: each
// keypress advances the chip by one instruction and repaints its registers,
// flags, and a disassembly of the surrounding code.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/corehart/sixfivetwo/cpu"
	"github.com/corehart/sixfivetwo/disassemble"
	"github.com/corehart/sixfivetwo/memory"
)

var (
	image  = flag.String("image", "", "Path to the raw binary image to load")
	origin = flag.Uint("origin", 0, "Page the image is loaded at")
	flavor = flag.String("flavor", "6502", "CPU flavor: 6502, rockwell65c02, or wdc65c02")
)

func main() {
	flag.Parse()
	if *image == "" {
		fmt.Fprintln(os.Stderr, "-image is required")
		os.Exit(1)
	}

	var f cpu.Flavor
	switch *flavor {
	case "6502", "nmos", "nmos6502":
		f = cpu.FlavorNMOS6502
	case "rockwell", "rockwell65c02":
		f = cpu.FlavorRockwell65C02
	case "wdc", "wdc65c02":
		f = cpu.FlavorWDC65C02
	default:
		fmt.Fprintf(os.Stderr, "unknown flavor %q\n", *flavor)
		os.Exit(1)
	}

	data, err := os.ReadFile(*image)
	if err != nil {
		log.Fatalf("can't read image: %v", err)
	}

	chip, err := cpu.New(f)
	if err != nil {
		log.Fatalf("can't build chip: %v", err)
	}
	pages := (len(data) + 255) / 256
	padded := make([]uint8, pages*256)
	copy(padded, data)
	o := uint8(*origin)
	if o > 0 {
		chip.AddPageHandler(memory.NewRAM(0, o-1))
	}
	chip.AddPageHandler(memory.NewROM(o, padded))
	chip.Reset()
	chip.PC = uint16(o) << 8

	m := model{chip: chip}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("stepper exited: %v", err)
	}
}

type model struct {
	chip    *cpu.Chip
	lastErr error
	halted  bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "n":
			if !m.halted {
				m.chip.Step(nil)
				if m.chip.Stopped() {
					m.halted = true
				}
			}
		case "r":
			m.chip.Reset()
			m.halted = false
		}
	}
	return m, nil
}

func (m model) registers() string {
	c := m.chip
	return fmt.Sprintf(
		"PC: %.4X  A: %.2X  X: %.2X  Y: %.2X  SP: %.2X\nP:  %.2X  cycles: %d\n%s",
		c.PC, c.A, c.X, c.Y, c.SP, c.P, c.Cycles(), flagString(c.P))
}

func flagString(p uint8) string {
	names := []struct {
		bit  uint8
		name string
	}{
		{cpu.FlagNegative, "N"}, {cpu.FlagOverflow, "V"}, {cpu.FlagUnused, "-"},
		{cpu.FlagBreak, "B"}, {cpu.FlagDecimal, "D"}, {cpu.FlagInterrupt, "I"},
		{cpu.FlagZero, "Z"}, {cpu.FlagCarry, "C"},
	}
	var sb strings.Builder
	for _, n := range names {
		if p&n.bit != 0 {
			sb.WriteString(n.name)
		} else {
			sb.WriteString(".")
		}
		sb.WriteString(" ")
	}
	return sb.String()
}

func (m model) disassembly() string {
	pc := m.chip.PC
	var lines []string
	for i := 0; i < 12; i++ {
		line, n := disassemble.Step(pc, m.chip)
		if i == 0 {
			line = "> " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
		pc += uint16(n)
	}
	return strings.Join(lines, "\n")
}

var (
	regStyle  = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	codeStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
)

func (m model) View() string {
	status := "space/n: step   r: reset   q: quit"
	if m.halted {
		status = "chip halted (STP/HLT) -- r: reset   q: quit"
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, regStyle.Render(m.registers()), codeStyle.Render(m.disassembly())),
		status,
	)
}
