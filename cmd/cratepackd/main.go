package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "cratepackd",
		Short: "3D bin-packing engine: one-shot CLI and HTTP server",
	}

	root.AddCommand(serveCmd())
	root.AddCommand(packCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
