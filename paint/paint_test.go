package paint

import (
	"testing"

	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/feature/builtin"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

func buildLabelTable(t *testing.T, lab *rasterimage.LabelImage, ids []uint32) *table.Table {
	t.Helper()
	tb := table.New()
	if err := tb.AddObjectIDs(ids); err != nil {
		t.Fatalf("AddObjectIDs: %v", err)
	}
	l := builtin.NewLabel()
	values, err := l.Initialize(lab, &rasterimage.GreyImage{}, len(ids))
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := tb.AddFeature("Label", values); err != nil {
		t.Fatalf("AddFeature: %v", err)
	}
	if err := tb.Forge(); err != nil {
		t.Fatalf("Forge: %v", err)
	}

	idx := tb.IDIndex()
	sizes := lab.Sizes()
	rasterimage.EachLine(sizes, 1, func(first []int, length int) {
		line := make(feature.LabelLine, length)
		coord := append([]int(nil), first...)
		for i := 0; i < length; i++ {
			coord[1] = i
			line[i] = lab.At(coord)
		}
		l.ScanLine(line, feature.GreyLine{}, first, 1, idx)
	})
	for row, id := range tb.Objects() {
		fv, _ := tb.FeatureByName("Label")
		cell, _ := fv.Cell(id)
		l.Finish(row, cell)
	}
	return tb
}

func TestPainterRoundTripIdentity(t *testing.T) {
	data := []uint32{0, 1, 1, 0, 1, 2, 2, 2, 0}
	lab := rasterimage.NewLabelImage([]int{3, 3}, data)
	tb := buildLabelTable(t, lab, []uint32{1, 2})

	fv, err := tb.FeatureByName("Label")
	if err != nil {
		t.Fatalf("FeatureByName: %v", err)
	}
	out, err := ObjectToMeasurement(lab, fv)
	if err != nil {
		t.Fatalf("ObjectToMeasurement: %v", err)
	}

	for i, want := range data {
		row, col := i/3, i%3
		got := out.At([]int{row, col})[0]
		if got != float64(want) {
			t.Errorf("painted(%d,%d) = %v, want %v", row, col, got, want)
		}
	}
}

func TestPainterBackgroundStaysZero(t *testing.T) {
	data := []uint32{0, 1, 0}
	lab := rasterimage.NewLabelImage([]int{1, 3}, data)
	tb := buildLabelTable(t, lab, []uint32{1})
	fv, _ := tb.FeatureByName("Label")

	out, err := ObjectToMeasurement(lab, fv)
	if err != nil {
		t.Fatalf("ObjectToMeasurement: %v", err)
	}
	if out.At([]int{0, 0})[0] != 0 || out.At([]int{0, 2})[0] != 0 {
		t.Errorf("background pixels should paint to zero")
	}
}

func TestObjectToMeasurementIntoSizeMismatch(t *testing.T) {
	lab := rasterimage.NewLabelImage([]int{2, 2}, []uint32{1, 1, 1, 1})
	tb := buildLabelTable(t, lab, []uint32{1})
	fv, _ := tb.FeatureByName("Label")

	wrongSize := rasterimage.NewGreyImage([]int{3, 3}, 1, make([]float64, 9))
	if err := ObjectToMeasurementInto(lab, wrongSize, fv); err == nil {
		t.Errorf("expected an error for mismatched output size")
	}
}

func TestColorizeRejectsTensorImage(t *testing.T) {
	img := rasterimage.NewGreyImage([]int{2, 2}, 3, make([]float64, 12))
	if _, err := Colorize(img); err == nil {
		t.Errorf("Colorize should reject a multi-channel image")
	}
}

func TestColorizeProducesAnImage(t *testing.T) {
	img := rasterimage.NewGreyImage([]int{2, 2}, 1, []float64{0, 1, 2, 3})
	got, err := Colorize(img)
	if err != nil {
		t.Fatalf("Colorize: %v", err)
	}
	b := got.Bounds()
	if b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("Colorize image bounds = %v, want 2x2", b)
	}
}
