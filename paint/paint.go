package paint

import (
	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// ObjectToMeasurement paints a feature's per-object values onto a new
// image the same shape as label: for each pixel, if the label is
// positive and present in view, the pixel gets that object's cell
// written into it; otherwise it gets zero(s). The output is scalar if
// view has one value, otherwise a tensor image with that many channels.
//
// label and view are a caller contract: view must have been computed
// from label. This is not checked.
func ObjectToMeasurement(label rasterimage.Image, view table.FeatureView) (*rasterimage.GreyImage, error) {
	channels := view.NumberOfValues()
	sizes := label.Sizes()
	n := 1
	for _, s := range sizes {
		n *= s
	}
	out := rasterimage.NewGreyImage(sizes, channels, make([]float64, n*channels))
	if err := ObjectToMeasurementInto(label, out, view); err != nil {
		return nil, err
	}
	return out, nil
}

// ObjectToMeasurementInto paints into a pre-allocated out, which must be
// the same size as label and have view.NumberOfValues() channels.
func ObjectToMeasurementInto(label rasterimage.Image, out *rasterimage.GreyImage, view table.FeatureView) error {
	if !rasterimage.SameSize(label, out) {
		return errs.New(errs.InvalidArgument, "output image size does not match label image size")
	}
	if out.TensorElements() != view.NumberOfValues() {
		return errs.Newf(errs.InvalidArgument, "output image has %d channels, feature view has %d values", out.TensorElements(), view.NumberOfValues())
	}

	lab, ok := label.(rasterimage.LabelAccessor)
	if !ok {
		return errs.New(errs.UnsupportedInput, "label image has no At(coords) accessor")
	}

	zeros := make([]float64, out.TensorElements())

	rasterimage.EachCoordinate(label.Sizes(), func(coord []int) {
		id := lab.At(coord)
		if id == 0 {
			out.Set(coord, zeros)
			return
		}
		cell, err := view.Cell(id)
		if err != nil {
			out.Set(coord, zeros)
			return
		}
		out.Set(coord, []float64(cell))
	})
	return nil
}
