package api

import (
	"github.com/kvantox/cratepack/diagnostics"
	"github.com/kvantox/cratepack/events"
	"github.com/kvantox/cratepack/geom"
	"github.com/kvantox/cratepack/model"
	"github.com/kvantox/cratepack/packer"
)

// decodeRequest translates a wire packRequest into a model.PackRequest,
// assigning each container a 1-based template ID in array order. defaultRotations
// is the process-wide allow_item_rotation default; the request's
// allow_rotations field, when present, overrides it.
func decodeRequest(req packRequest, eps float64, defaultRotations bool) (model.PackRequest, error) {
	templates := make([]model.ContainerTemplate, 0, len(req.Containers))
	for i, c := range req.Containers {
		tmpl, err := model.NewContainerTemplate(uint32(i+1), c.Dims[0], c.Dims[1], c.Dims[2], c.MaxWeight, c.Name, eps)
		if err != nil {
			return model.PackRequest{}, err
		}
		templates = append(templates, tmpl)
	}

	items := make([]model.Item, 0, len(req.Objects))
	for _, o := range req.Objects {
		item, err := model.NewItem(o.ID, o.Dims[0], o.Dims[1], o.Dims[2], o.Weight, eps)
		if err != nil {
			return model.PackRequest{}, err
		}
		items = append(items, item)
	}

	allow := defaultRotations
	if req.AllowRotations != nil {
		allow = *req.AllowRotations
	}

	return model.PackRequest{Templates: templates, Items: items, AllowRotations: allow}, nil
}

// encodeResult translates a packer.PackResult into the batch response body.
func encodeResult(res packer.PackResult) packResponse {
	results := make([]wireResult, 0, len(res.Containers))
	for i, c := range res.Containers {
		placed := make([]wirePlacement, 0, len(c.Placements))
		for _, p := range c.Placements {
			placed = append(placed, wirePlacement{
				ID:     p.ID,
				Pos:    vecToArray(p.Origin),
				Weight: p.Mass,
				Dims:   vecToArray(p.OrientedDims),
			})
		}
		templateID := c.TemplateID
		results = append(results, wireResult{
			ID:          i + 1,
			TemplateID:  &templateID,
			Label:       c.Label,
			Dims:        vecToArray(c.Cavity),
			MaxWeight:   c.MaxWeight,
			TotalWeight: c.TotalMass(),
			Placed:      placed,
		})
	}

	unplaced := make([]wireUnplaced, 0, len(res.Unplaced))
	for _, u := range res.Unplaced {
		unplaced = append(unplaced, wireUnplaced{ID: u.ID, Reason: u.Reason.String()})
	}

	return packResponse{
		Results:            results,
		Unplaced:           unplaced,
		DiagnosticsSummary: encodeSummary(res.Summary),
	}
}

func encodeSummary(s diagnostics.Summary) wireDiagnosticsSummary {
	return wireDiagnosticsSummary{
		MaxImbalanceRatio:     s.MaxImbalanceRatio,
		WorstSupportPercent:   s.WorstSupportPercent,
		AverageSupportPercent: s.AverageSupportPercent,
	}
}

func encodeDiagnostics(d diagnostics.ContainerDiagnostics) wireContainerDiagnostics {
	samples := make([]wireSupportSample, 0, len(d.Samples))
	for _, s := range d.Samples {
		samples = append(samples, wireSupportSample{
			ObjectID:       s.ObjectID,
			SupportPercent: s.SupportPercent,
			RestsOnFloor:   s.RestsOnFloor,
		})
	}
	return wireContainerDiagnostics{
		CentreOfMassOffset:    d.CentreOfMassOffset,
		BalanceLimit:          d.BalanceLimit,
		ImbalanceRatio:        d.ImbalanceRatio,
		AverageSupportPercent: d.AverageSupportPercent,
		MinimumSupportPercent: d.MinimumSupportPercent,
		SupportSamples:        samples,
	}
}

// eventName and eventData translate one events.Event into the SSE "event:"
// name and its JSON-encodable payload.
func eventName(e events.Event) string {
	switch e.Kind {
	case events.KindContainerStarted:
		return "container_started"
	case events.KindObjectPlaced:
		return "object_placed"
	case events.KindContainerDiagnostics:
		return "container_diagnostics"
	case events.KindObjectRejected:
		return "object_rejected"
	case events.KindFinished:
		return "finished"
	default:
		return "unknown"
	}
}

func eventData(e events.Event) any {
	switch e.Kind {
	case events.KindContainerStarted:
		p := e.ContainerStarted
		return wireContainerStarted{
			ID:         p.ID,
			Dims:       vecToArray(p.Dims),
			MaxWeight:  p.MaxWeight,
			Label:      p.Label,
			TemplateID: p.TemplateID,
		}
	case events.KindObjectPlaced:
		p := e.ObjectPlaced
		return wireObjectPlaced{
			ContainerID: p.ContainerID,
			ID:          p.ID,
			Pos:         vecToArray(p.Pos),
			Weight:      p.Weight,
			Dims:        vecToArray(p.Dims),
			TotalWeight: p.TotalWeight,
		}
	case events.KindContainerDiagnostics:
		p := e.ContainerDiagnostics
		return wireContainerDiagnosticsEvent{
			ContainerID: p.ContainerID,
			Diagnostics: encodeDiagnostics(p.Diagnostics),
		}
	case events.KindObjectRejected:
		p := e.ObjectRejected
		return wireObjectRejected{
			ID:         p.ID,
			Weight:     p.Weight,
			Dims:       vecToArray(p.Dims),
			ReasonCode: p.ReasonCode,
			ReasonText: p.ReasonText,
		}
	case events.KindFinished:
		p := e.Finished
		return wireFinished{
			Containers:         p.Containers,
			Unplaced:           p.Unplaced,
			DiagnosticsSummary: encodeSummary(p.DiagnosticsSummary),
		}
	default:
		return struct{}{}
	}
}

func vecToArray(v geom.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
