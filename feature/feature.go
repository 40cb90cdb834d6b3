package feature

import (
	"github.com/latticevision/objmeasure/chaincode"
	"github.com/latticevision/objmeasure/convexhull"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Variant discriminates the five measurement-contract shapes a feature can
// implement. The driver partitions a resolved feature list by the
// interface each feature implements, not by this tag.
type Variant int

const (
	VariantScanLine Variant = iota
	VariantWholeImage
	VariantChainCode
	VariantConvexHull
	VariantComposite
)

func (v Variant) String() string {
	switch v {
	case VariantScanLine:
		return "ScanLine"
	case VariantWholeImage:
		return "WholeImage"
	case VariantChainCode:
		return "ChainCode"
	case VariantConvexHull:
		return "ConvexHull"
	case VariantComposite:
		return "Composite"
	default:
		return "Unknown"
	}
}

// Info is the static, per-kind description of a feature: its name, a
// human-readable description, whether it needs the intensity image, and
// which variant it implements.
type Info struct {
	Name        string
	Description string
	NeedsGrey   bool
	Variant     Variant
}

// Feature is the base contract every concrete measurement feature
// implements. Concrete features additionally implement exactly one of
// ScanLineFeature, WholeImageFeature, ChainCodeFeature, ConvexHullFeature,
// or CompositeFeature, matching their Info().Variant.
type Feature interface {
	// Info returns this feature's static description.
	Info() Info
	// Initialize validates label and grey against this feature's
	// requirements and returns the value-info array it will produce.
	// Fails with errs.UnsupportedInput if the images are unsuitable.
	Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error)
	// Cleanup releases any per-run state Initialize allocated.
	Cleanup()
}

// LabelLine is one scanline's worth of label values, in stride-ascending
// pixel order.
type LabelLine []uint32

// GreyLine is one scanline's worth of intensity values, channel-interleaved.
// It is the zero value (nil Data) when no intensity image was provided.
type GreyLine struct {
	Data     []float64
	Channels int
}

// At returns the channel values for pixel i along the line.
func (g GreyLine) At(i int) []float64 {
	if g.Data == nil {
		return nil
	}
	return g.Data[i*g.Channels : (i+1)*g.Channels]
}

// Present reports whether this line carries intensity data.
func (g GreyLine) Present() bool { return g.Data != nil }

// Len reports the number of pixels on the line.
func (g GreyLine) Len() int {
	if g.Channels == 0 {
		return 0
	}
	return len(g.Data) / g.Channels
}

// ScanLineFeature accumulates additive per-object quantities one scanline
// at a time, then writes final values in Finish.
type ScanLineFeature interface {
	Feature
	// ScanLine is called once per image scanline, in ascending pixel order
	// within the line. idToIndex maps object identifiers to table row
	// indices; implementations index their accumulator by row, not by
	// identifier.
	ScanLine(labelLine LabelLine, greyLine GreyLine, firstCoord []int, dimension int, idToIndex table.IDIndexMap)
	// Finish writes this feature's final values for one object, addressed
	// by table row index, into out.
	Finish(objectIndex int, out table.Cell)
}

// WholeImageFeature computes its result in a single pass over the whole
// image, writing directly into its column group via view.
type WholeImageFeature interface {
	Feature
	Measure(label, grey rasterimage.Image, view table.FeatureView) error
}

// ChainCodeFeature computes its result from one object's boundary chain
// code. Objects whose chain code could not be formed never reach Measure;
// the driver leaves their cell zero-filled.
type ChainCodeFeature interface {
	Feature
	Measure(cc *chaincode.ChainCode, cell table.Cell) error
}

// ConvexHullFeature computes its result from one object's convex hull.
type ConvexHullFeature interface {
	Feature
	Measure(hull *convexhull.Hull, cell table.Cell) error
}

// CompositeFeature computes its result from other, already-measured
// features' values for the same object.
type CompositeFeature interface {
	Feature
	// Dependencies returns the feature names this composite reads. The
	// resolver guarantees they appear earlier in column order.
	Dependencies() []string
	Measure(obj table.ObjectView, cell table.Cell) error
}
