package api

import (
	"encoding/json"
	"io"

	"github.com/kvantox/cratepack/events"
	"github.com/kvantox/cratepack/packer"
)

// RunBatch decodes one request body from r, runs it through packer.Pack
// using cfg's thresholds, and writes the batch response as JSON to w. It
// is the transport-agnostic core shared by the HTTP batch handler and the
// one-shot CLI "pack" subcommand.
func RunBatch(r io.Reader, w io.Writer, cfg Config) error {
	var wire packRequest
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return err
	}

	req, err := decodeRequest(wire, cfg.Epsilon, cfg.AllowItemRotation)
	if err != nil {
		return err
	}

	result, err := packer.Pack(req, events.Nop, packerOptionsFor(cfg)...)
	if err != nil {
		return err
	}

	return json.NewEncoder(w).Encode(encodeResult(result))
}

func packerOptionsFor(cfg Config) []packer.Option {
	return []packer.Option{
		packer.WithGridStep(cfg.Packer.Placement.GridStep),
		packer.WithSupportRatio(cfg.Packer.Placement.SupportRatio),
		packer.WithEpsilon(cfg.Packer.Placement.Epsilon),
		packer.WithHeightEpsilon(cfg.Packer.Placement.HeightEpsilon),
		packer.WithBalanceLimitRatio(cfg.Packer.Placement.BalanceLimitRatio),
		packer.WithFootprintClusterTolerance(cfg.Packer.FootprintClusterTolerance),
	}
}
