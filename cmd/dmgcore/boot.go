package main

import (
	"fmt"
	"strings"

	"github.com/brightlode/dmgcore/internal/cartridge"
	"github.com/brightlode/dmgcore/internal/cpu"
	"github.com/brightlode/dmgcore/internal/mmu"
	"github.com/brightlode/dmgcore/internal/ppu"
	"github.com/brightlode/dmgcore/internal/ppu/palette"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func bootCmd() *cobra.Command {
	var frames int
	var steps int
	cmd := &cobra.Command{
		Use:   "boot <rom>",
		Short: "Boot a cartridge, optionally step the CPU from its entry point, and print a terminal snapshot of the background",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoot(args[0], frames, steps)
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 90, "number of frames to tick before snapshotting")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of CPU instructions to execute from the cartridge's entry point before snapshotting")
	return cmd
}

func runBoot(path string, frames, steps int) error {
	cart := cartridge.Insert(path)
	bus := mmu.New()
	if err := bus.SetCartridge(cart); err != nil {
		return fmt.Errorf("boot %s: %w", path, err)
	}

	for i := 0; i < frames; i++ {
		bus.OnFrame()
	}

	if steps > 0 {
		c := cpu.New(bus)
		c.Start(cart)
		for i := 0; i < steps; i++ {
			c.Step()
		}
		fmt.Println(labelStyle.Render("CPU:"), c.String())
	}

	renderer := ppu.NewRenderer(bus.PPU(), palette.Default())
	fmt.Print(renderSnapshot(renderer.RenderBackground()))
	return nil
}

// swatch renders one "pixel" as two spaces of background color, since
// terminal cells are roughly twice as tall as wide.
func swatch(c palette.Color) string {
	rgb := c.RGB()
	hex := fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func renderSnapshot(bg [ppu.ScreenHeight][ppu.ScreenWidth]palette.Color) string {
	var b strings.Builder
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			b.WriteString(swatch(bg[y][x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
