package builtin

import (
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Solidity is Size/ConvexArea: how much of the object's convex hull the
// object's own pixels actually fill.
type Solidity struct{}

func NewSolidity() *Solidity { return &Solidity{} }

func (f *Solidity) Info() feature.Info {
	return feature.Info{Name: "Solidity", Description: "Size divided by ConvexArea", Variant: feature.VariantComposite}
}

func (f *Solidity) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	return table.ValueInfoArray{{Name: "Solidity", Unit: ""}}, nil
}

func (f *Solidity) Cleanup() {}

func (f *Solidity) Dependencies() []string { return []string{"Size", "ConvexArea"} }

func (f *Solidity) Measure(obj table.ObjectView, cell table.Cell) error {
	size, err := obj.Cell("Size")
	if err != nil {
		return err
	}
	convexArea, err := obj.Cell("ConvexArea")
	if err != nil {
		return err
	}
	if convexArea[0] != 0 {
		cell[0] = size[0] / convexArea[0]
	}
	return nil
}
