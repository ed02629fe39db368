// Command dmgcore is a reference host for the core: it is not part of
// the core API, and the core never imports this package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dmgcore",
		Short: "Reference host for the DMG core",
	}
	root.AddCommand(inspectCmd())
	root.AddCommand(bootCmd())
	return root
}
