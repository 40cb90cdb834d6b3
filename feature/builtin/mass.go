package builtin

import (
	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Mass sums the intensity image's values over each object's pixels.
// Grounded directly on original_source/src/measurement/feature_mass.h.
type Mass struct {
	sums []float64
}

func NewMass() *Mass { return &Mass{} }

func (f *Mass) Info() feature.Info {
	return feature.Info{Name: "Mass", Description: "sum of intensity over the object", NeedsGrey: true, Variant: feature.VariantScanLine}
}

func (f *Mass) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	if !label.IsScalar() {
		return nil, errs.New(errs.UnsupportedInput, "Mass requires a scalar label image")
	}
	if grey == nil || !grey.IsForged() {
		return nil, errs.New(errs.UnsupportedInput, "Mass requires an intensity image")
	}
	if !grey.IsScalar() {
		return nil, errs.New(errs.UnsupportedInput, "Mass requires a scalar intensity image")
	}
	f.sums = make([]float64, objectCount)
	return table.ValueInfoArray{{Name: "Mass", Unit: ""}}, nil
}

func (f *Mass) Cleanup() { f.sums = nil }

func (f *Mass) ScanLine(labelLine feature.LabelLine, greyLine feature.GreyLine, firstCoord []int, dimension int, idx table.IDIndexMap) {
	for i, lbl := range labelLine {
		if lbl == 0 {
			continue
		}
		row, ok := idx[lbl]
		if !ok {
			continue
		}
		f.sums[row] += greyLine.At(i)[0]
	}
}

func (f *Mass) Finish(objectIndex int, out table.Cell) {
	out[0] = f.sums[objectIndex]
}
