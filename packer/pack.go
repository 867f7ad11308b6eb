package packer

import (
	"github.com/kvantox/cratepack/cluster"
	"github.com/kvantox/cratepack/diagnostics"
	"github.com/kvantox/cratepack/events"
	"github.com/kvantox/cratepack/model"
	"github.com/kvantox/cratepack/orient"
	"github.com/kvantox/cratepack/placement"
)

// Pack validates req, then places every item into one or more containers
// instantiated from req.Templates, emitting progress events to sink as it
// goes. sink may be events.Nop if the caller has no interest in the live
// stream.
//
// Preconditions and validation (in order):
//  1. req.Templates must be non-empty (model.ErrMissingTemplates); this is
//     a request-level failure and no placement occurs at all.
//  2. If req.Items is empty, Pack succeeds immediately with zero
//     containers (after emitting a single Finished event).
//
// The algorithm is single-pass and irrevocable: once an item is accepted it
// is never moved. Identical req and opts always yield an identical
// PackResult and an identical sequence of events sent to sink.
func Pack(req model.PackRequest, sink events.Sink, opts ...Option) (PackResult, error) {
	if err := req.Validate(); err != nil {
		return PackResult{}, err
	}
	if sink == nil {
		sink = events.Nop
	}

	cfg := NewConfig(opts...)
	policy := orient.PolicyFromAllowRotations(req.AllowRotations)

	if len(req.Items) == 0 {
		sink.Emit(events.NewFinished(events.FinishedPayload{}))
		return PackResult{}, nil
	}

	templates := sortTemplates(req.Templates)
	items := cluster.Flatten(cluster.Group(sortItems(req.Items), cfg.FootprintClusterTolerance))

	d := &driver{
		templates: templates,
		policy:    policy,
		cfg:       cfg,
		sink:      sink,
	}

	for _, item := range items {
		d.place(item)
	}

	summary := diagnostics.Aggregate(d.diags)
	sink.Emit(events.NewFinished(events.FinishedPayload{
		Containers:         len(d.containers),
		Unplaced:           len(d.unplaced),
		DiagnosticsSummary: summary,
	}))

	return PackResult{
		Containers:  d.containers,
		Unplaced:    d.unplaced,
		Diagnostics: d.diags,
		Summary:     summary,
	}, nil
}

// driver carries the mutable state of one Pack call: the containers
// instantiated so far (in creation order), their current diagnostics
// (parallel to containers), and the items rejected so far.
type driver struct {
	templates []model.ContainerTemplate
	policy    orient.Policy
	cfg       Config
	sink      events.Sink

	containers []*model.Container
	diags      []diagnostics.ContainerDiagnostics
	unplaced   []model.UnplacedItem
	nextContID uint32
}

// place attempts to place a single item: first against every
// already-instantiated container in creation order, then by instantiating
// a fresh container from the first fitting template, finally classifying
// the item as unplaced.
func (d *driver) place(item model.Item) {
	for i, c := range d.containers {
		if c.RemainingMass()+d.cfg.Placement.Epsilon < item.Mass {
			continue
		}
		if !anyOrientationFits(item, c.Cavity, d.policy, d.cfg.Placement.Epsilon) {
			continue
		}
		if d.tryPlace(c, i, item) {
			return
		}
	}

	if d.instantiateAndPlace(item) {
		return
	}

	reason := classify(item, d.templates, d.policy, d.cfg.Placement.Epsilon)
	d.unplaced = append(d.unplaced, model.UnplacedItem{Item: item, Reason: reason})
	d.sink.Emit(events.NewObjectRejected(events.ObjectRejectedPayload{
		ID:         item.ID,
		Weight:     item.Mass,
		Dims:       item.Dims,
		ReasonCode: reason.String(),
		ReasonText: reason.String(),
	}))
}

// tryPlace attempts every permitted orientation of item against container
// c (at index idx in d.containers) and, on the first stable position
// found, accepts the placement, recomputes diagnostics, and emits the
// ObjectPlaced/ContainerDiagnostics pair.
func (d *driver) tryPlace(c *model.Container, idx int, item model.Item) bool {
	for _, oriented := range orient.Enumerate(item.Dims, d.policy, d.cfg.Placement.Epsilon) {
		origin, ok := placement.Find(c, oriented, item.Mass, d.cfg.Placement)
		if !ok {
			continue
		}

		c.AddPlacement(model.PlacedItem{Item: item, Origin: origin, OrientedDims: oriented})
		d.sink.Emit(events.NewObjectPlaced(events.ObjectPlacedPayload{
			ContainerID: c.ID,
			ID:          item.ID,
			Pos:         origin,
			Weight:      item.Mass,
			Dims:        oriented,
			TotalWeight: c.TotalMass(),
		}))

		diag := diagnostics.ComputeContainer(c, d.cfg.Placement)
		d.diags[idx] = diag
		d.sink.Emit(events.NewContainerDiagnostics(events.ContainerDiagnosticsPayload{
			ContainerID: c.ID,
			Diagnostics: diag,
		}))
		return true
	}
	return false
}

// instantiateAndPlace finds the first template (in sorted order) able to
// hold item by both mass cap and some permitted orientation, and attempts
// a placement search inside a fresh instance of it. Only the first fitting
// template is tried: if the search fails there, the item falls through to
// classification rather than trying the next template.
//
// The container is only instantiated — and ContainerStarted only emitted —
// once a stable position has actually been found for item, so a container
// that never holds anything never appears in the result or the event
// stream.
func (d *driver) instantiateAndPlace(item model.Item) bool {
	eps := d.cfg.Placement.Epsilon
	for _, tmpl := range d.templates {
		if tmpl.MaxWeight+eps < item.Mass {
			continue
		}
		if !anyOrientationFits(item, tmpl.Cavity, d.policy, eps) {
			continue
		}

		probe := model.NewContainer(0, tmpl)
		for _, oriented := range orient.Enumerate(item.Dims, d.policy, eps) {
			origin, ok := placement.Find(probe, oriented, item.Mass, d.cfg.Placement)
			if !ok {
				continue
			}

			d.nextContID++
			c := model.NewContainer(d.nextContID, tmpl)
			d.sink.Emit(events.NewContainerStarted(events.ContainerStartedPayload{
				ID:         c.ID,
				Dims:       c.Cavity,
				MaxWeight:  c.MaxWeight,
				Label:      c.Label,
				TemplateID: c.TemplateID,
			}))

			idx := len(d.containers)
			d.containers = append(d.containers, c)
			d.diags = append(d.diags, diagnostics.ContainerDiagnostics{})

			c.AddPlacement(model.PlacedItem{Item: item, Origin: origin, OrientedDims: oriented})
			d.sink.Emit(events.NewObjectPlaced(events.ObjectPlacedPayload{
				ContainerID: c.ID,
				ID:          item.ID,
				Pos:         origin,
				Weight:      item.Mass,
				Dims:        oriented,
				TotalWeight: c.TotalMass(),
			}))

			diag := diagnostics.ComputeContainer(c, d.cfg.Placement)
			d.diags[idx] = diag
			d.sink.Emit(events.NewContainerDiagnostics(events.ContainerDiagnosticsPayload{
				ContainerID: c.ID,
				Diagnostics: diag,
			}))
			return true
		}
		// This template could hold the item by mass/bounds but no stable
		// position exists inside a fresh instance of it; only the first
		// fitting template is tried.
		return false
	}
	return false
}
