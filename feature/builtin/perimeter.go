package builtin

import (
	"github.com/latticevision/objmeasure/chaincode"
	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Perimeter measures the length of an object's boundary from its Freeman
// chain code: orthogonal steps weigh 1, diagonal steps weigh sqrt(2).
type Perimeter struct{}

func NewPerimeter() *Perimeter { return &Perimeter{} }

func (f *Perimeter) Info() feature.Info {
	return feature.Info{Name: "Perimeter", Description: "boundary length from the object's chain code", Variant: feature.VariantChainCode}
}

func (f *Perimeter) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	if label.Dimensionality() != 2 {
		return nil, errs.New(errs.UnsupportedInput, "Perimeter requires a two-dimensional label image")
	}
	return table.ValueInfoArray{{Name: "Perimeter", Unit: "px"}}, nil
}

func (f *Perimeter) Cleanup() {}

func (f *Perimeter) Measure(cc *chaincode.ChainCode, cell table.Cell) error {
	cell[0] = cc.Length()
	return nil
}
