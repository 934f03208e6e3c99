// Command monitor is a lightweight, redraw-per-step terminal register dump,
// aimed at scripted or headless sessions rather than the full-screen stepper
// TUI. It shows registers and the cycle count only; memory contents are not
// displayed.
package main

import (
	"fmt"
	"os"
	"sort"

	term "github.com/nsf/termbox-go"
	"github.com/urfave/cli/v2"

	"github.com/corehart/sixfivetwo/cpu"
	"github.com/corehart/sixfivetwo/memory"
)

func flavorByName(name string) (cpu.Flavor, error) {
	switch name {
	case "6502", "nmos", "nmos6502":
		return cpu.FlavorNMOS6502, nil
	case "rockwell", "rockwell65c02":
		return cpu.FlavorRockwell65C02, nil
	case "wdc", "wdc65c02":
		return cpu.FlavorWDC65C02, nil
	default:
		return cpu.FlavorUnknown, fmt.Errorf("unknown flavor %q", name)
	}
}

func loadChip(c *cli.Context) (*cpu.Chip, error) {
	flavor, err := flavorByName(c.String("flavor"))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.String("image"))
	if err != nil {
		return nil, fmt.Errorf("can't read image: %w", err)
	}
	return buildChip(flavor, uint8(c.Uint("origin")), data)
}

// buildChip maps RAM below the image origin, the image itself as ROM padded
// to a page boundary, and points PC at the image's first byte.
func buildChip(flavor cpu.Flavor, origin uint8, data []uint8) (*cpu.Chip, error) {
	chip, err := cpu.New(flavor)
	if err != nil {
		return nil, err
	}
	pages := (len(data) + 255) / 256
	padded := make([]uint8, pages*256)
	copy(padded, data)
	if origin > 0 {
		chip.AddPageHandler(memory.NewRAM(0, origin-1))
	}
	chip.AddPageHandler(memory.NewROM(origin, padded))
	chip.Reset()
	chip.PC = uint16(origin) << 8
	return chip, nil
}

func imageAndFlavorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "image", Aliases: []string{"i"}, Usage: "Path to the raw binary image to load"},
		&cli.StringFlag{Name: "flavor", Aliases: []string{"f"}, Usage: "CPU flavor: 6502, rockwell65c02, or wdc65c02", Value: "6502"},
		&cli.UintFlag{Name: "origin", Aliases: []string{"o"}, Usage: "Page the image is loaded at", Value: 0},
	}
}

func main() {
	app := &cli.App{
		Name:    "monitor",
		Usage:   "Headless-friendly register monitor",
		Version: "v0.0.1",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run to completion (or STP/HLT), printing registers after every instruction",
				Flags: imageAndFlavorFlags(),
				Action: func(c *cli.Context) error {
					chip, err := loadChip(c)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					for !chip.Stopped() {
						chip.Step(func(chip *cpu.Chip) {
							printRegisters(chip)
						})
					}
					// A stopped chip leaves PC on the halting opcode.
					return cli.Exit(cpu.HaltOpcode{Opcode: chip.Peek(chip.PC)}.Error(), 0)
				},
			},
			{
				Name:      "step",
				Usage:     "Execute a fixed number of instructions",
				ArgsUsage: "<count>",
				Flags:     imageAndFlavorFlags(),
				Action: func(c *cli.Context) error {
					chip, err := loadChip(c)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					count := 1
					if c.Args().Len() > 0 {
						fmt.Sscanf(c.Args().First(), "%d", &count)
					}
					chip.StepN(count, func(chip *cpu.Chip) bool {
						printRegisters(chip)
						return false
					})
					return nil
				},
			},
			{
				Name:  "break",
				Usage: "Run until PC reaches a breakpoint address, using a raw-terminal live view",
				Flags: append(imageAndFlavorFlags(), &cli.UintFlag{Name: "at", Usage: "Breakpoint PC address", Required: true}),
				Action: func(c *cli.Context) error {
					chip, err := loadChip(c)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					target := uint16(c.Uint("at"))
					if err := term.Init(); err != nil {
						return cli.Exit(fmt.Sprintf("can't init terminal: %v", err), 1)
					}
					defer term.Close()
					for chip.PC != target && !chip.Stopped() {
						chip.Step(func(chip *cpu.Chip) {
							drawLiveView(chip)
						})
					}
					return nil
				},
			},
		},
	}
	for _, cmd := range app.Commands {
		sort.Sort(cli.FlagsByName(cmd.Flags))
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printRegisters(c *cpu.Chip) {
	fmt.Printf("PC=%.4X A=%.2X X=%.2X Y=%.2X SP=%.2X P=%.2X cycles=%d\n",
		c.PC, c.A, c.X, c.Y, c.SP, c.P, c.Cycles())
}

// drawLiveView redraws a single-screen register dump using termbox's cell
// grid.
func drawLiveView(c *cpu.Chip) {
	term.Clear(term.ColorDefault, term.ColorDefault)
	line := fmt.Sprintf("PC=%.4X A=%.2X X=%.2X Y=%.2X SP=%.2X P=%.2X cycles=%d",
		c.PC, c.A, c.X, c.Y, c.SP, c.P, c.Cycles())
	for i, r := range line {
		term.SetCell(i, 0, r, term.ColorDefault, term.ColorDefault)
	}
	term.Flush()
}
