package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvantox/cratepack/api"
)

func packCmd() *cobra.Command {
	var rotationsFlag bool
	var rotationsSet bool

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Run one packing request from stdin and print the batch response to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := api.FromEnv()
			if rotationsSet {
				cfg.AllowItemRotation = rotationsFlag
			}

			if err := api.RunBatch(os.Stdin, os.Stdout, cfg); err != nil {
				return fmt.Errorf("pack: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rotationsFlag, "allow-rotations", false, "permit axis-aligned item rotation (overrides CRATEPACK_ALLOW_ITEM_ROTATION)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		rotationsSet = cmd.Flags().Changed("allow-rotations")
	}

	return cmd
}
