package builtin

import (
	"math"

	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Circularity is 4*pi*Size/Perimeter^2, 1.0 for a perfect disc and
// smaller for more elongated or irregular shapes. It shares dependencies
// with Ratio to exercise the resolver's de-duplication of a dependency
// requested by more than one composite.
type Circularity struct{}

func NewCircularity() *Circularity { return &Circularity{} }

func (f *Circularity) Info() feature.Info {
	return feature.Info{Name: "Circularity", Description: "4*pi*Size/Perimeter^2", Variant: feature.VariantComposite}
}

func (f *Circularity) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	return table.ValueInfoArray{{Name: "Circularity", Unit: ""}}, nil
}

func (f *Circularity) Cleanup() {}

func (f *Circularity) Dependencies() []string { return []string{"Size", "Perimeter"} }

func (f *Circularity) Measure(obj table.ObjectView, cell table.Cell) error {
	size, err := obj.Cell("Size")
	if err != nil {
		return err
	}
	perimeter, err := obj.Cell("Perimeter")
	if err != nil {
		return err
	}
	if perimeter[0] != 0 {
		cell[0] = 4 * math.Pi * size[0] / (perimeter[0] * perimeter[0])
	}
	return nil
}
