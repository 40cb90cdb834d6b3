package objmeasure

import (
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/feature/builtin"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Tool owns a feature registry and drives measurements against it.
// Concurrent Measure calls on the same Tool are unsafe (spec section 5);
// two independent Tool instances are independent.
type Tool struct {
	registry *feature.Registry
}

// NewTool returns a Tool with the builtin feature catalog pre-registered.
func NewTool() *Tool {
	t := &Tool{registry: feature.NewRegistry()}
	builtin.Register(t.registry)
	return t
}

// Register adds a feature implementation. If a feature with the same
// name is already registered, the new one is silently dropped.
func (t *Tool) Register(f feature.Feature) { t.registry.Register(f) }

// Features enumerates every registered feature's static information, in
// registration order.
func (t *Tool) Features() []feature.Info { return t.registry.Features() }

// Measure is the entry point: spec section 4.5's eight-step algorithm.
// objectIDs may be empty, meaning "every positive label present in
// label". connectivity must lie in [1, label dimensionality]; beyond that
// range check it is only passed on to chain-code extraction.
func (t *Tool) Measure(label rasterimage.Image, grey rasterimage.Image, names []string, objectIDs []uint32, connectivity int) (*table.Table, error) {
	return t.measure(label, grey, names, objectIDs, connectivity)
}
