package builtin

import (
	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Size counts the number of pixels belonging to each object.
type Size struct {
	counts []float64
}

func NewSize() *Size { return &Size{} }

func (f *Size) Info() feature.Info {
	return feature.Info{Name: "Size", Description: "number of pixels in the object", Variant: feature.VariantScanLine}
}

func (f *Size) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	if !label.IsScalar() {
		return nil, errs.New(errs.UnsupportedInput, "Size requires a scalar label image")
	}
	f.counts = make([]float64, objectCount)
	return table.ValueInfoArray{{Name: "Size", Unit: "px"}}, nil
}

func (f *Size) Cleanup() { f.counts = nil }

func (f *Size) ScanLine(labelLine feature.LabelLine, greyLine feature.GreyLine, firstCoord []int, dimension int, idx table.IDIndexMap) {
	for _, lbl := range labelLine {
		if lbl == 0 {
			continue
		}
		if row, ok := idx[lbl]; ok {
			f.counts[row]++
		}
	}
}

func (f *Size) Finish(objectIndex int, out table.Cell) {
	out[0] = f.counts[objectIndex]
}
