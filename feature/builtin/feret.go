package builtin

import (
	"github.com/latticevision/objmeasure/convexhull"
	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Feret measures the maximum and minimum caliper diameters of an
// object's convex hull, via rotating calipers.
type Feret struct{}

func NewFeret() *Feret { return &Feret{} }

func (f *Feret) Info() feature.Info {
	return feature.Info{Name: "Feret", Description: "max/min caliper diameter of the object's convex hull", Variant: feature.VariantConvexHull}
}

func (f *Feret) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	if label.Dimensionality() != 2 {
		return nil, errs.New(errs.UnsupportedInput, "Feret requires a two-dimensional label image")
	}
	return table.ValueInfoArray{
		{Name: "FeretMax", Unit: "px"},
		{Name: "FeretMin", Unit: "px"},
	}, nil
}

func (f *Feret) Cleanup() {}

func (f *Feret) Measure(hull *convexhull.Hull, cell table.Cell) error {
	max, min := hull.FeretDiameters()
	cell[0] = max
	cell[1] = min
	return nil
}
