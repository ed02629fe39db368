package main

import (
	"fmt"

	"github.com/brightlode/dmgcore/internal/cartridge"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true)
var labelStyle = lipgloss.NewStyle().Faint(true)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <rom>",
		Short: "Parse and print a cartridge's header fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart := cartridge.Insert(args[0])
			printHeader(cart)
			return nil
		},
	}
}

func printHeader(cart *cartridge.Cartridge) {
	h := cart.Header
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s", h.Title)))
	fmt.Printf("%s %s\n", labelStyle.Render("Cartridge type:"), h.CartridgeType)
	fmt.Printf("%s %s\n", labelStyle.Render("Licensee:"), h.Licensee)
	fmt.Printf("%s %d bytes (%d banks)\n", labelStyle.Render("ROM size:"), h.ROMSizeBytes, h.ROMBanks)
	fmt.Printf("%s %d bytes\n", labelStyle.Render("RAM size:"), h.RAMSizeBytes)
	fmt.Printf("%s %s\n", labelStyle.Render("Destination:"), h.Destination)
	fmt.Printf("%s %v\n", labelStyle.Render("Valid:"), cart.IsValid())
}
