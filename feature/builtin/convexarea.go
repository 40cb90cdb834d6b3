package builtin

import (
	"github.com/latticevision/objmeasure/convexhull"
	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// ConvexArea measures the area of an object's convex hull, via the
// shoelace formula.
type ConvexArea struct{}

func NewConvexArea() *ConvexArea { return &ConvexArea{} }

func (f *ConvexArea) Info() feature.Info {
	return feature.Info{Name: "ConvexArea", Description: "area of the object's convex hull", Variant: feature.VariantConvexHull}
}

func (f *ConvexArea) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	if label.Dimensionality() != 2 {
		return nil, errs.New(errs.UnsupportedInput, "ConvexArea requires a two-dimensional label image")
	}
	return table.ValueInfoArray{{Name: "ConvexArea", Unit: "px^2"}}, nil
}

func (f *ConvexArea) Cleanup() {}

func (f *ConvexArea) Measure(hull *convexhull.Hull, cell table.Cell) error {
	cell[0] = hull.Area()
	return nil
}
