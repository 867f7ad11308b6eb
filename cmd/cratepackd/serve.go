package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kvantox/cratepack/api"
	"github.com/kvantox/cratepack/internal/applog"
	"github.com/kvantox/cratepack/packer"
)

func serveCmd() *cobra.Command {
	var addrFlag string
	var levelFlag string
	var logFileFlag string
	var allowRotationsFlag bool
	var gridStepFlag float64
	var supportRatioFlag float64
	var epsilonFlag float64
	var heightEpsilonFlag float64
	var balanceLimitRatioFlag float64

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP packing server (batch and SSE-streaming endpoints)",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := applog.New(levelFlag, logFileFlag)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			cfg := api.FromEnv()
			if addrFlag != "" {
				cfg.Addr = addrFlag
			}
			if cmd.Flags().Changed("allow-rotations") {
				cfg.AllowItemRotation = allowRotationsFlag
			}

			var opts []packer.Option
			if cmd.Flags().Changed("grid-step") {
				opts = append(opts, packer.WithGridStep(gridStepFlag))
			}
			if cmd.Flags().Changed("support-ratio") {
				opts = append(opts, packer.WithSupportRatio(supportRatioFlag))
			}
			if cmd.Flags().Changed("epsilon") {
				opts = append(opts, packer.WithEpsilon(epsilonFlag))
			}
			if cmd.Flags().Changed("height-epsilon") {
				opts = append(opts, packer.WithHeightEpsilon(heightEpsilonFlag))
			}
			if cmd.Flags().Changed("balance-limit-ratio") {
				opts = append(opts, packer.WithBalanceLimitRatio(balanceLimitRatioFlag))
			}
			if len(opts) > 0 {
				base := []packer.Option{
					packer.WithGridStep(cfg.Packer.Placement.GridStep),
					packer.WithSupportRatio(cfg.Packer.Placement.SupportRatio),
					packer.WithEpsilon(cfg.Packer.Placement.Epsilon),
					packer.WithHeightEpsilon(cfg.Packer.Placement.HeightEpsilon),
					packer.WithBalanceLimitRatio(cfg.Packer.Placement.BalanceLimitRatio),
					packer.WithFootprintClusterTolerance(cfg.Packer.FootprintClusterTolerance),
				}
				cfg.Packer = packer.NewConfig(append(base, opts...)...)
				cfg.Epsilon = cfg.Packer.Placement.Epsilon
			}

			srv := api.NewServer(cfg, log)
			httpSrv := &http.Server{Addr: cfg.Addr, Handler: srv}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("listening", "addr", cfg.Addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				log.Info("shutting down")
				return httpSrv.Shutdown(context.Background())
			case err := <-errCh:
				if err == http.ErrServerClosed {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (overrides CRATEPACK_ADDR)")
	cmd.Flags().StringVar(&levelFlag, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFileFlag, "log-file", "", "optional log file path, in addition to stdout")
	cmd.Flags().BoolVar(&allowRotationsFlag, "allow-rotations", false, "permit axis-aligned item rotation by default (overrides CRATEPACK_ALLOW_ITEM_ROTATION)")
	cmd.Flags().Float64Var(&gridStepFlag, "grid-step", 0, "XY candidate grid spacing (overrides CRATEPACK_GRID_STEP)")
	cmd.Flags().Float64Var(&supportRatioFlag, "support-ratio", 0, "minimum required support ratio (overrides CRATEPACK_SUPPORT_RATIO)")
	cmd.Flags().Float64Var(&epsilonFlag, "epsilon", 0, "general-purpose tolerance (overrides CRATEPACK_GENERAL_EPSILON)")
	cmd.Flags().Float64Var(&heightEpsilonFlag, "height-epsilon", 0, "coplanarity tolerance (overrides CRATEPACK_HEIGHT_EPSILON)")
	cmd.Flags().Float64Var(&balanceLimitRatioFlag, "balance-limit-ratio", 0, "balance limit ratio (overrides CRATEPACK_BALANCE_LIMIT_RATIO)")

	return cmd
}
