// Command disassemble lists the instructions in a raw binary image, one per
// line, for whichever 65xx flavor the image targets.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/corehart/sixfivetwo/cpu"
	"github.com/corehart/sixfivetwo/disassemble"
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

func main() {
	app := &cli.App{
		Name:    "disassemble",
		Usage:   "Disassemble a raw 65xx binary image",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "Path to the raw binary image to disassemble",
			},
			&cli.StringFlag{
				Name:    "flavor",
				Aliases: []string{"f"},
				Usage:   "CPU flavor: 6502, rockwell65c02, or wdc65c02",
				Value:   "6502",
			},
			&cli.UintFlag{
				Name:    "origin",
				Aliases: []string{"o"},
				Usage:   "Page the image is loaded at (high byte of its load address)",
				Value:   0,
			},
			&cli.UintFlag{
				Name:  "start",
				Usage: "Address to start disassembling from (defaults to the image origin)",
				Value: 0,
			},
			&cli.UintFlag{
				Name:  "count",
				Usage: "Number of instructions to disassemble (0 means until the image ends)",
				Value: 0,
			},
		},
		Action: run,
	}
	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.String("image")
	if path == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("", 86)
	}
	flavor, err := flavorByName(c.String("flavor"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	image, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("can't read image: %v", err), 1)
	}

	origin := uint8(c.Uint("origin"))
	pages := (len(image) + 255) / 256
	padded := make([]uint8, pages*256)
	copy(padded, image)

	chip, err := cpu.New(flavor)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	rom := memory.NewROM(origin, padded)
	chip.AddPageHandler(rom)

	start := uint16(c.Uint("start"))
	if start == 0 {
		start = uint16(origin) << 8
	}
	count := int(c.Uint("count"))

	pc := start
	end := uint16(origin)<<8 + uint16(len(padded))
	for i := 0; count == 0 || i < count; i++ {
		if pc >= end {
			break
		}
		line, n := disassemble.Step(pc, chip)
		fmt.Println(line)
		pc += uint16(n)
	}
	return nil
}
