package builtin

import (
	"strconv"

	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Centroid accumulates the per-dimension mean coordinate of each object's
// pixels, using the same running-sum accumulator pattern as Size and Mass.
type Centroid struct {
	dims   int
	sums   []float64 // objectCount*dims
	counts []float64
}

func NewCentroid() *Centroid { return &Centroid{} }

func (f *Centroid) Info() feature.Info {
	return feature.Info{Name: "Centroid", Description: "mean coordinate of the object's pixels", Variant: feature.VariantScanLine}
}

func (f *Centroid) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	if !label.IsScalar() {
		return nil, errs.New(errs.UnsupportedInput, "Centroid requires a scalar label image")
	}
	f.dims = label.Dimensionality()
	f.sums = make([]float64, objectCount*f.dims)
	f.counts = make([]float64, objectCount)

	values := make(table.ValueInfoArray, f.dims)
	for d := 0; d < f.dims; d++ {
		values[d] = table.ValueInfo{Name: axisName(d), Unit: "px"}
	}
	return values, nil
}

func (f *Centroid) Cleanup() {
	f.sums = nil
	f.counts = nil
	f.dims = 0
}

func (f *Centroid) ScanLine(labelLine feature.LabelLine, greyLine feature.GreyLine, firstCoord []int, dimension int, idx table.IDIndexMap) {
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
		for d := 0; d < f.dims; d++ {
			f.sums[base+d] += float64(coord[d])
		}
		f.counts[row]++
	}
}

func (f *Centroid) Finish(objectIndex int, out table.Cell) {
	n := f.counts[objectIndex]
	base := objectIndex * f.dims
	for d := 0; d < f.dims; d++ {
		if n > 0 {
			out[d] = f.sums[base+d] / n
		}
	}
}

func axisName(d int) string {
	switch d {
	case 0:
		return "row"
	case 1:
		return "col"
	default:
		return "dim" + strconv.Itoa(d)
	}
}
