package builtin

import (
	"math"

	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// BoundingBox tracks the minimum and maximum coordinate, per dimension,
// of each object's pixels.
type BoundingBox struct {
	dims int
	min  []float64 // objectCount*dims
	max  []float64
	seen []bool
}

func NewBoundingBox() *BoundingBox { return &BoundingBox{} }

func (f *BoundingBox) Info() feature.Info {
	return feature.Info{Name: "BoundingBox", Description: "axis-aligned bounding box of the object", Variant: feature.VariantScanLine}
}

func (f *BoundingBox) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	if !label.IsScalar() {
		return nil, errs.New(errs.UnsupportedInput, "BoundingBox requires a scalar label image")
	}
	f.dims = label.Dimensionality()
	f.min = make([]float64, objectCount*f.dims)
	f.max = make([]float64, objectCount*f.dims)
	f.seen = make([]bool, objectCount)
	for i := range f.min {
		f.min[i] = math.Inf(1)
		f.max[i] = math.Inf(-1)
	}

	values := make(table.ValueInfoArray, 2*f.dims)
	for d := 0; d < f.dims; d++ {
		values[d] = table.ValueInfo{Name: "min" + axisName(d), Unit: "px"}
		values[f.dims+d] = table.ValueInfo{Name: "max" + axisName(d), Unit: "px"}
	}
	return values, nil
}

func (f *BoundingBox) Cleanup() {
	f.min, f.max, f.seen = nil, nil, nil
	f.dims = 0
}

func (f *BoundingBox) ScanLine(labelLine feature.LabelLine, greyLine feature.GreyLine, firstCoord []int, dimension int, idx table.IDIndexMap) {
	coord := append([]int(nil), firstCoord...)
	for i, lbl := range labelLine {
		coord[dimension] = firstCoord[dimension] + i
		if lbl == 0 {
			continue
		}
		row, ok := idx[lbl]
		if !ok {
			continue
		}
		base := row * f.dims
		f.seen[row] = true
		for d := 0; d < f.dims; d++ {
			v := float64(coord[d])
			if v < f.min[base+d] {
				f.min[base+d] = v
			}
			if v > f.max[base+d] {
				f.max[base+d] = v
			}
		}
	}
}

func (f *BoundingBox) Finish(objectIndex int, out table.Cell) {
	if !f.seen[objectIndex] {
		return
	}
	base := objectIndex * f.dims
	for d := 0; d < f.dims; d++ {
		out[d] = f.min[base+d]
		out[f.dims+d] = f.max[base+d]
	}
}
