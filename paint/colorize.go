package paint

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/rasterimage"
)

// Colorize maps a single-channel painted GreyImage through a
// perceptually uniform color gradient (cool to warm, via HCL blending),
// after min-max normalizing its values. It is visualization sugar, not
// part of the measurement contract: ObjectToMeasurement's numeric result
// is the real output; Colorize exists so a human can look at it.
func Colorize(img *rasterimage.GreyImage) (image.Image, error) {
	if !img.IsScalar() {
		return nil, errs.New(errs.InvalidArgument, "Colorize requires a single-channel image")
	}
	sizes := img.Sizes()
	if len(sizes) != 2 {
		return nil, errs.New(errs.InvalidArgument, "Colorize requires a two-dimensional image")
	}
	rows, cols := sizes[0], sizes[1]

	min, max := math.Inf(1), math.Inf(-1)
	rasterimage.EachCoordinate(sizes, func(coord []int) {
		v := img.At(coord)[0]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	})
	span := max - min
	if span == 0 {
		span = 1
	}

	cool, _ := colorful.Hex("#2b6cb0")
	warm, _ := colorful.Hex("#e53e3e")

	out := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	rasterimage.EachCoordinate(sizes, func(coord []int) {
		v := img.At(coord)[0]
		t := (v - min) / span
		c := cool.BlendHcl(warm, t).Clamped()
		out.Set(coord[1], coord[0], c)
	})
	return out, nil
}
