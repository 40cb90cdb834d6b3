package builtin

import (
	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Label writes each object's own identifier as its value. It exists to
// exercise spec section 8's testable property 6 (painter round-trip with
// an identity feature): painting Label back onto the image reproduces the
// label image itself, background included.
type Label struct {
	ids []uint32
}

func NewLabel() *Label { return &Label{} }

func (f *Label) Info() feature.Info {
	return feature.Info{Name: "Label", Description: "the object's own identifier", Variant: feature.VariantScanLine}
}

func (f *Label) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	if !label.IsScalar() {
		return nil, errs.New(errs.UnsupportedInput, "Label requires a scalar label image")
	}
	f.ids = make([]uint32, objectCount)
	return table.ValueInfoArray{{Name: "Label", Unit: ""}}, nil
}

func (f *Label) Cleanup() { f.ids = nil }

func (f *Label) ScanLine(labelLine feature.LabelLine, greyLine feature.GreyLine, firstCoord []int, dimension int, idx table.IDIndexMap) {
	for _, lbl := range labelLine {
		if lbl == 0 {
			continue
		}
		if row, ok := idx[lbl]; ok {
			f.ids[row] = lbl
		}
	}
}

func (f *Label) Finish(objectIndex int, out table.Cell) {
	out[0] = float64(f.ids[objectIndex])
}
