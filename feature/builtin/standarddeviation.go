package builtin

import (
	"gonum.org/v1/gonum/stat"

	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// StandardDeviation computes the sample standard deviation of intensity
// over each object's pixels. Unlike Size/Mass/Centroid, this needs the
// whole intensity image at once (it is not a single running sum), so it
// is a whole-image feature rather than a scanline one, using
// gonum/stat.StdDev for the two-pass computation.
type StandardDeviation struct{}

func NewStandardDeviation() *StandardDeviation { return &StandardDeviation{} }

func (f *StandardDeviation) Info() feature.Info {
	return feature.Info{Name: "StandardDeviation", Description: "sample standard deviation of intensity over the object", NeedsGrey: true, Variant: feature.VariantWholeImage}
}

func (f *StandardDeviation) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	if !label.IsScalar() {
		return nil, errs.New(errs.UnsupportedInput, "StandardDeviation requires a scalar label image")
	}
	if grey == nil || !grey.IsForged() {
		return nil, errs.New(errs.UnsupportedInput, "StandardDeviation requires an intensity image")
	}
	if !grey.IsScalar() {
		return nil, errs.New(errs.UnsupportedInput, "StandardDeviation requires a scalar intensity image")
	}
	return table.ValueInfoArray{{Name: "StandardDeviation", Unit: ""}}, nil
}

func (f *StandardDeviation) Cleanup() {}

func (f *StandardDeviation) Measure(label, grey rasterimage.Image, view table.FeatureView) error {
	lab, ok := label.(rasterimage.LabelAccessor)
	if !ok {
		return errs.New(errs.UnsupportedInput, "StandardDeviation: label image has no At(coords) accessor")
	}
	grayAt, ok := grey.(rasterimage.GreyAccessor)
	if !ok {
		return errs.New(errs.UnsupportedInput, "StandardDeviation: intensity image has no At(coords) accessor")
	}

	objectIndex := make(map[uint32]int)
	for _, id := range view.Objects() {
		objectIndex[id] = -1
	}
	samples := make(map[uint32][]float64)
	rasterimage.EachCoordinate(label.Sizes(), func(coord []int) {
		lbl := lab.At(coord)
		if lbl == 0 {
			return
		}
		if _, wanted := objectIndex[lbl]; !wanted {
			return
		}
		samples[lbl] = append(samples[lbl], grayAt.At(coord)[0])
	})

	for _, id := range view.Objects() {
		cell, err := view.Cell(id)
		if err != nil {
			return err
		}
		values := samples[id]
		if len(values) < 2 {
			continue
		}
		cell[0] = stat.StdDev(values, nil)
	}
	return nil
}
