package rasterimage

import "fmt"

// DataType tags the scalar type backing an Image's pixel data.
type DataType int

const (
	Uint8 DataType = iota
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

func (d DataType) String() string {
	switch d {
	case Uint8:
		return "Uint8"
	case Uint16:
		return "Uint16"
	case Uint32:
		return "Uint32"
	case Uint64:
		return "Uint64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	default:
		return fmt.Sprintf("DataType(%d)", int(d))
	}
}

// IsUnsignedInteger reports whether d is one of the unsigned integer types.
func (d DataType) IsUnsignedInteger() bool {
	switch d {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	default:
		return false
	}
}

// IsReal reports whether d is one of the floating-point types.
func (d DataType) IsReal() bool {
	switch d {
	case Float32, Float64:
		return true
	default:
		return false
	}
}

// Image is the minimal contract the measurement engine consumes. It deliberately
// does not expose pixel storage, codecs, or color models — those are the
// containing library's concern, not this module's.
type Image interface {
	// Sizes returns the number of pixels along each dimension.
	Sizes() []int
	// Strides returns the step, in elements, to advance one pixel along each
	// dimension.
	Strides() []int
	// Origin returns the element offset of pixel (0,0,...) within the
	// backing buffer.
	Origin() int
	// DataType reports the scalar type of one tensor element.
	DataType() DataType
	// IsScalar reports whether each pixel carries a single value.
	IsScalar() bool
	// TensorElements returns the number of values per pixel (1 if scalar).
	TensorElements() int
	// PhysicalSize returns the physical extent of one pixel along dim.
	PhysicalSize(dim int) float64
	// Dimensionality returns len(Sizes()).
	Dimensionality() int
	// IsForged reports whether the image carries allocated pixel data.
	IsForged() bool
}

// LabelAccessor is the minimal pixel-read contract a label image offers
// beyond Image: At(coords) returns the object identifier at coords, or
// zero for background. Concrete label images (LabelImage) satisfy it
// directly; callers that only need to read labels should accept this
// instead of the concrete type.
type LabelAccessor interface {
	Image
	At(coords []int) uint32
}

// GreyAccessor is the minimal pixel-read contract an intensity image
// offers beyond Image: At(coords) returns the (possibly multi-channel)
// value at coords.
type GreyAccessor interface {
	Image
	At(coords []int) []float64
}

func rowMajorStrides(sizes []int) []int {
	n := len(sizes)
	strides := make([]int, n)
	if n == 0 {
		return strides
	}
	strides[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * sizes[i+1]
	}
	return strides
}

func product(sizes []int) int {
	p := 1
	for _, s := range sizes {
		p *= s
	}
	return p
}

// LabelImage is a scalar, unsigned-integer raster of object identifiers.
// Zero means background.
type LabelImage struct {
	sizes     []int
	strides   []int
	origin    int
	pixelSize []float64
	data      []uint32
}

// NewLabelImage builds a LabelImage backed by data, which must have exactly
// product(sizes) elements laid out row-major (last dimension fastest).
func NewLabelImage(sizes []int, data []uint32) *LabelImage {
	if product(sizes) != len(data) {
		panic(fmt.Sprintf("rasterimage: sizes %v need %d elements, got %d", sizes, product(sizes), len(data)))
	}
	return &LabelImage{
		sizes:   append([]int(nil), sizes...),
		strides: rowMajorStrides(sizes),
		data:    data,
	}
}

func (l *LabelImage) Sizes() []int          { return l.sizes }
func (l *LabelImage) Strides() []int        { return l.strides }
func (l *LabelImage) Origin() int           { return l.origin }
func (l *LabelImage) DataType() DataType    { return Uint32 }
func (l *LabelImage) IsScalar() bool        { return true }
func (l *LabelImage) TensorElements() int   { return 1 }
func (l *LabelImage) Dimensionality() int   { return len(l.sizes) }
func (l *LabelImage) IsForged() bool        { return l.data != nil }

// PhysicalSize returns the physical extent of one pixel along dim, in
// whatever unit the caller set with SetPixelSize (default: 1.0, i.e. pixels).
func (l *LabelImage) PhysicalSize(dim int) float64 {
	if dim < len(l.pixelSize) && l.pixelSize[dim] != 0 {
		return l.pixelSize[dim]
	}
	return 1.0
}

// SetPixelSize records the physical size of one pixel along dim.
func (l *LabelImage) SetPixelSize(dim int, size float64) {
	for len(l.pixelSize) <= dim {
		l.pixelSize = append(l.pixelSize, 0)
	}
	l.pixelSize[dim] = size
}

func (l *LabelImage) index(coords []int) int {
	idx := l.origin
	for i, c := range coords {
		idx += c * l.strides[i]
	}
	return idx
}

// At returns the label value at coords.
func (l *LabelImage) At(coords []int) uint32 { return l.data[l.index(coords)] }

// Set writes the label value at coords.
func (l *LabelImage) Set(coords []int, v uint32) { l.data[l.index(coords)] = v }

// Data returns the raw backing slice. Pixel (0,...,0) is at index Origin().
func (l *LabelImage) Data() []uint32 { return l.data }

// GreyImage is a real-valued raster, scalar or tensor, providing the
// optional intensity channel alongside a LabelImage. Its zero value is
// "raw" (IsForged reports false), matching spec section 6's "grey image
// absent" case.
type GreyImage struct {
	sizes     []int
	strides   []int
	origin    int
	channels  int
	pixelSize []float64
	data      []float64
}

// NewGreyImage builds a forged GreyImage. channels must be >= 1; data must
// have exactly product(sizes)*channels elements.
func NewGreyImage(sizes []int, channels int, data []float64) *GreyImage {
	if channels < 1 {
		panic("rasterimage: channels must be >= 1")
	}
	want := product(sizes) * channels
	if want != len(data) {
		panic(fmt.Sprintf("rasterimage: sizes %v x %d channels need %d elements, got %d", sizes, channels, want, len(data)))
	}
	return &GreyImage{
		sizes:    append([]int(nil), sizes...),
		strides:  rowMajorStrides(sizes),
		channels: channels,
		data:     data,
	}
}

func (g *GreyImage) Sizes() []int          { return g.sizes }
func (g *GreyImage) Strides() []int        { return g.strides }
func (g *GreyImage) Origin() int           { return g.origin }
func (g *GreyImage) DataType() DataType    { return Float64 }
func (g *GreyImage) IsScalar() bool        { return g.channels == 1 }
func (g *GreyImage) TensorElements() int   { return g.channels }
func (g *GreyImage) Dimensionality() int   { return len(g.sizes) }
func (g *GreyImage) IsForged() bool        { return g.data != nil }

func (g *GreyImage) PhysicalSize(dim int) float64 {
	if dim < len(g.pixelSize) && g.pixelSize[dim] != 0 {
		return g.pixelSize[dim]
	}
	return 1.0
}

func (g *GreyImage) SetPixelSize(dim int, size float64) {
	for len(g.pixelSize) <= dim {
		g.pixelSize = append(g.pixelSize, 0)
	}
	g.pixelSize[dim] = size
}

func (g *GreyImage) pixelIndex(coords []int) int {
	idx := g.origin
	for i, c := range coords {
		idx += c * g.strides[i]
	}
	return idx * g.channels
}

// At returns the channels values at coords, as a slice view into the
// backing buffer (do not retain past a mutation of the image).
func (g *GreyImage) At(coords []int) []float64 {
	start := g.pixelIndex(coords)
	return g.data[start : start+g.channels]
}

// Set overwrites the channel values at coords. v must have length channels.
func (g *GreyImage) Set(coords []int, v []float64) {
	start := g.pixelIndex(coords)
	copy(g.data[start:start+g.channels], v)
}

// Data returns the raw backing slice, channels interleaved.
func (g *GreyImage) Data() []float64 { return g.data }

// SameSize reports whether a and b have identical dimensionality and sizes.
func SameSize(a, b Image) bool {
	sa, sb := a.Sizes(), b.Sizes()
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
