package rasterimage

import (
	"image"
	"image/color"
	"testing"

	"github.com/anthonynsimon/bild/paint"
)

// floodFillLabel draws two disjoint black squares on a white canvas,
// flood-fills each with a distinct marker color, and converts the
// result into a LabelImage (white -> 0, the two marker colors -> 1, 2).
// This is this package's synthetic-region fixture (chaincode's tests
// build a similar one of their own), grounded on bild/paint's
// region-filling primitive rather than hand-drawn pixel loops.
func floodFillLabel(t *testing.T) *LabelImage {
	t.Helper()
	const size = 6
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			canvas.Set(x, y, color.White)
		}
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			canvas.Set(x, y, color.Black)
		}
	}
	for y := 4; y < 6; y++ {
		for x := 4; x < 6; x++ {
			canvas.Set(x, y, color.Black)
		}
	}

	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	filled := paint.FloodFill(canvas, image.Point{X: 0, Y: 0}, red, 10)
	filled = paint.FloodFill(filled, image.Point{X: 4, Y: 4}, blue, 10)

	data := make([]uint32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch c := filled.At(x, y); {
			case colorEquals(c, red):
				data[y*size+x] = 1
			case colorEquals(c, blue):
				data[y*size+x] = 2
			default:
				data[y*size+x] = 0
			}
		}
	}
	return NewLabelImage([]int{size, size}, data)
}

func colorEquals(c color.Color, want color.RGBA) bool {
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := want.RGBA()
	return r == wr && g == wg && b == wb && a == wa
}

func TestLabelImageFromFloodFilledRegions(t *testing.T) {
	img := floodFillLabel(t)
	if img.At([]int{0, 0}) != 1 {
		t.Errorf("top-left region should carry label 1")
	}
	if img.At([]int{5, 5}) != 2 {
		t.Errorf("bottom-right region should carry label 2")
	}
	if img.At([]int{3, 3}) != 0 {
		t.Errorf("background pixel should carry label 0")
	}
}

func TestLabelImageAtSet(t *testing.T) {
	// 3x3 grid, row-major: [[0,1,1],[0,1,2],[2,2,0]]
	data := []uint32{0, 1, 1, 0, 1, 2, 2, 2, 0}
	img := NewLabelImage([]int{3, 3}, data)

	tests := []struct {
		y, x int
		want uint32
	}{
		{0, 0, 0}, {0, 1, 1}, {0, 2, 1},
		{1, 0, 0}, {1, 1, 1}, {1, 2, 2},
		{2, 0, 2}, {2, 1, 2}, {2, 2, 0},
	}
	for _, tt := range tests {
		if got := img.At([]int{tt.y, tt.x}); got != tt.want {
			t.Errorf("At(%d,%d) = %d, want %d", tt.y, tt.x, got, tt.want)
		}
	}

	img.Set([]int{0, 0}, 9)
	if got := img.At([]int{0, 0}); got != 9 {
		t.Errorf("after Set, At(0,0) = %d, want 9", got)
	}
}

func TestLabelImageMetadata(t *testing.T) {
	img := NewLabelImage([]int{4, 5}, make([]uint32, 20))
	if img.Dimensionality() != 2 {
		t.Errorf("Dimensionality() = %d, want 2", img.Dimensionality())
	}
	if !img.IsScalar() || img.TensorElements() != 1 {
		t.Errorf("LabelImage must be scalar")
	}
	if !img.DataType().IsUnsignedInteger() {
		t.Errorf("LabelImage DataType must be unsigned integer")
	}
	if !img.IsForged() {
		t.Errorf("LabelImage should always report forged")
	}
	if img.PhysicalSize(0) != 1.0 {
		t.Errorf("default PhysicalSize should be 1.0, got %v", img.PhysicalSize(0))
	}
	img.SetPixelSize(0, 0.5)
	if img.PhysicalSize(0) != 0.5 {
		t.Errorf("PhysicalSize(0) = %v, want 0.5", img.PhysicalSize(0))
	}
}

func TestGreyImageRawVsForged(t *testing.T) {
	var raw GreyImage
	if raw.IsForged() {
		t.Errorf("zero-value GreyImage should not be forged")
	}

	grey := NewGreyImage([]int{2, 2}, 1, []float64{1, 2, 3, 4})
	if !grey.IsForged() {
		t.Errorf("NewGreyImage result should be forged")
	}
	if !grey.DataType().IsReal() {
		t.Errorf("GreyImage DataType must be real")
	}
}

func TestGreyImageTensorAt(t *testing.T) {
	// 2x1 image, 3 channels per pixel
	data := []float64{1, 2, 3, 4, 5, 6}
	img := NewGreyImage([]int{2, 1}, 3, data)
	if img.IsScalar() {
		t.Errorf("3-channel image should not be scalar")
	}
	v := img.At([]int{0, 0})
	if len(v) != 3 || v[0] != 1 || v[1] != 2 || v[2] != 3 {
		t.Errorf("At(0,0) = %v, want [1 2 3]", v)
	}
	v2 := img.At([]int{1, 0})
	if v2[0] != 4 || v2[1] != 5 || v2[2] != 6 {
		t.Errorf("At(1,0) = %v, want [4 5 6]", v2)
	}

	img.Set([]int{0, 0}, []float64{9, 9, 9})
	if got := img.At([]int{0, 0}); got[0] != 9 {
		t.Errorf("after Set, At(0,0)[0] = %v, want 9", got[0])
	}
}

func TestSameSize(t *testing.T) {
	a := NewLabelImage([]int{3, 4}, make([]uint32, 12))
	b := NewGreyImage([]int{3, 4}, 1, make([]float64, 12))
	c := NewGreyImage([]int{3, 5}, 1, make([]float64, 15))

	if !SameSize(a, b) {
		t.Errorf("SameSize(a, b) = false, want true")
	}
	if SameSize(a, c) {
		t.Errorf("SameSize(a, c) = true, want false")
	}
}
