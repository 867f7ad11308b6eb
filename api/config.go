package api

import (
	"os"
	"strconv"

	"github.com/kvantox/cratepack/packer"
)

// Config holds the server-wide defaults that apply to every request unless
// overridden by the request body itself — allow_rotations is the only
// field a request may override.
type Config struct {
	Packer            packer.Config
	Epsilon           float64
	AllowItemRotation bool
	Addr              string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	pcfg := packer.DefaultConfig()
	return Config{
		Packer:            pcfg,
		Epsilon:           pcfg.Placement.Epsilon,
		AllowItemRotation: false,
		Addr:              ":8080",
	}
}

// FromEnv layers process environment variables over DefaultConfig. Every
// name is read once, at startup; a request never reaches back into the
// environment. Unset or unparseable variables fall back to the default.
func FromEnv() Config {
	cfg := DefaultConfig()

	cfg.Addr = envOr("CRATEPACK_ADDR", cfg.Addr)
	cfg.AllowItemRotation = envBool("CRATEPACK_ALLOW_ITEM_ROTATION", cfg.AllowItemRotation)

	gridStep := envFloat("CRATEPACK_GRID_STEP", cfg.Packer.Placement.GridStep)
	supportRatio := envFloat("CRATEPACK_SUPPORT_RATIO", cfg.Packer.Placement.SupportRatio)
	heightEps := envFloat("CRATEPACK_HEIGHT_EPSILON", cfg.Packer.Placement.HeightEpsilon)
	generalEps := envFloat("CRATEPACK_GENERAL_EPSILON", cfg.Packer.Placement.Epsilon)
	balanceLimit := envFloat("CRATEPACK_BALANCE_LIMIT_RATIO", cfg.Packer.Placement.BalanceLimitRatio)
	clusterTol := envFloat("CRATEPACK_FOOTPRINT_CLUSTER_TOLERANCE", cfg.Packer.FootprintClusterTolerance)

	cfg.Packer = packer.NewConfig(
		packer.WithGridStep(gridStep),
		packer.WithSupportRatio(supportRatio),
		packer.WithHeightEpsilon(heightEps),
		packer.WithEpsilon(generalEps),
		packer.WithBalanceLimitRatio(balanceLimit),
		packer.WithFootprintClusterTolerance(clusterTol),
	)
	cfg.Epsilon = cfg.Packer.Placement.Epsilon

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
