package builtin

import (
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Ratio is Size/Perimeter for the same object, computed from already
// measured sibling columns. This is the literal formula spec section 8
// scenario S4 tests.
type Ratio struct{}

func NewRatio() *Ratio { return &Ratio{} }

func (f *Ratio) Info() feature.Info {
	return feature.Info{Name: "Ratio", Description: "Size divided by Perimeter", Variant: feature.VariantComposite}
}

func (f *Ratio) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	return table.ValueInfoArray{{Name: "Ratio", Unit: ""}}, nil
}

func (f *Ratio) Cleanup() {}

func (f *Ratio) Dependencies() []string { return []string{"Size", "Perimeter"} }

func (f *Ratio) Measure(obj table.ObjectView, cell table.Cell) error {
	size, err := obj.Cell("Size")
	if err != nil {
		return err
	}
	perimeter, err := obj.Cell("Perimeter")
	if err != nil {
		return err
	}
	if perimeter[0] != 0 {
		cell[0] = size[0] / perimeter[0]
	}
	return nil
}
