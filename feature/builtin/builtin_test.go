package builtin

import (
	"math"
	"testing"

	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// runScanLine drives a set of scanline features over a 2D label/grey pair
// exactly the way the driver's scanline pass would, without pulling in
// the objmeasure package (kept import-cycle-free for this test).
func runScanLine(t *testing.T, sf []feature.ScanLineFeature, lab *rasterimage.LabelImage, grey *rasterimage.GreyImage, ids []uint32) *table.Table {
	t.Helper()
	tb := table.New()
	if err := tb.AddObjectIDs(ids); err != nil {
		t.Fatalf("AddObjectIDs: %v", err)
	}
	for _, f := range sf {
		values, err := f.Initialize(lab, imageOrNil(grey), len(ids))
		if err != nil {
			t.Fatalf("Initialize %s: %v", f.Info().Name, err)
		}
		if err := tb.AddFeature(f.Info().Name, values); err != nil {
			t.Fatalf("AddFeature %s: %v", f.Info().Name, err)
		}
	}
	if err := tb.Forge(); err != nil {
		t.Fatalf("Forge: %v", err)
	}

	idx := tb.IDIndex()
	sizes := lab.Sizes()
	rasterimage.EachLine(sizes, 1, func(first []int, length int) {
		labLine := make(feature.LabelLine, length)
		for i := 0; i < length; i++ {
			coord := append([]int(nil), first...)
			coord[1] = i
			labLine[i] = lab.At(coord)
		}
		var greyLine feature.GreyLine
		if grey != nil {
			data := make([]float64, length)
			for i := 0; i < length; i++ {
				coord := append([]int(nil), first...)
				coord[1] = i
				data[i] = grey.At(coord)[0]
			}
			greyLine = feature.GreyLine{Data: data, Channels: 1}
		}
		for _, f := range sf {
			f.ScanLine(labLine, greyLine, first, 1, idx)
		}
	})

	for row, id := range tb.Objects() {
		for _, f := range sf {
			fv, _ := tb.FeatureByName(f.Info().Name)
			cell, _ := fv.Cell(id)
			f.Finish(row, cell)
		}
	}
	return tb
}

func imageOrNil(g *rasterimage.GreyImage) rasterimage.Image {
	if g == nil {
		return &rasterimage.GreyImage{}
	}
	return g
}

func TestSizeScenarioS1(t *testing.T) {
	// L = [[0,1,1],[0,1,2],[2,2,0]]
	data := []uint32{0, 1, 1, 0, 1, 2, 2, 2, 0}
	lab := rasterimage.NewLabelImage([]int{3, 3}, data)

	tb := runScanLine(t, []feature.ScanLineFeature{NewSize()}, lab, nil, []uint32{1, 2})

	fv, _ := tb.FeatureByName("Size")
	c1, _ := fv.Cell(1)
	c2, _ := fv.Cell(2)
	if c1[0] != 3 {
		t.Errorf("Size[1] = %v, want 3", c1[0])
	}
	if c2[0] != 3 {
		t.Errorf("Size[2] = %v, want 3", c2[0])
	}
}

func TestMassScenarioS2(t *testing.T) {
	labData := []uint32{0, 1, 1, 0, 1, 2, 2, 2, 0}
	lab := rasterimage.NewLabelImage([]int{3, 3}, labData)
	greyData := []float64{0, 4, 2, 0, 6, 8, 3, 5, 0}
	grey := rasterimage.NewGreyImage([]int{3, 3}, 1, greyData)

	tb := runScanLine(t, []feature.ScanLineFeature{NewMass()}, lab, grey, []uint32{1, 2})

	fv, _ := tb.FeatureByName("Mass")
	c1, _ := fv.Cell(1)
	c2, _ := fv.Cell(2)
	if c1[0] != 12 {
		t.Errorf("Mass[1] = %v, want 12", c1[0])
	}
	if c2[0] != 16 {
		t.Errorf("Mass[2] = %v, want 16", c2[0])
	}
}

func TestCentroidAndBoundingBox(t *testing.T) {
	// A single 2x2 block of object 1 at rows 1-2, cols 1-2 in a 4x4 image.
	data := []uint32{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}
	lab := rasterimage.NewLabelImage([]int{4, 4}, data)

	tb := runScanLine(t, []feature.ScanLineFeature{NewCentroid(), NewBoundingBox()}, lab, nil, []uint32{1})

	cv, _ := tb.FeatureByName("Centroid")
	centroid, _ := cv.Cell(1)
	if centroid[0] != 1.5 || centroid[1] != 1.5 {
		t.Errorf("Centroid = %v, want [1.5 1.5]", centroid)
	}

	bv, _ := tb.FeatureByName("BoundingBox")
	bbox, _ := bv.Cell(1)
	want := []float64{1, 1, 2, 2}
	for i := range want {
		if bbox[i] != want[i] {
			t.Errorf("BoundingBox[%d] = %v, want %v", i, bbox[i], want[i])
		}
	}
}

func TestLabelIdentity(t *testing.T) {
	data := []uint32{0, 1, 1, 0, 1, 2, 2, 2, 0}
	lab := rasterimage.NewLabelImage([]int{3, 3}, data)
	tb := runScanLine(t, []feature.ScanLineFeature{NewLabel()}, lab, nil, []uint32{1, 2})

	lv, _ := tb.FeatureByName("Label")
	c1, _ := lv.Cell(1)
	c2, _ := lv.Cell(2)
	if c1[0] != 1 || c2[0] != 2 {
		t.Errorf("Label cells = %v, %v, want 1, 2", c1, c2)
	}
}

func TestRatioScenarioS4(t *testing.T) {
	tb := table.New()
	if err := tb.AddObjectIDs([]uint32{1}); err != nil {
		t.Fatalf("AddObjectIDs: %v", err)
	}
	if err := tb.AddFeature("Size", table.ValueInfoArray{{Name: "Size"}}); err != nil {
		t.Fatalf("AddFeature Size: %v", err)
	}
	if err := tb.AddFeature("Perimeter", table.ValueInfoArray{{Name: "Perimeter"}}); err != nil {
		t.Fatalf("AddFeature Perimeter: %v", err)
	}
	if err := tb.AddFeature("Ratio", table.ValueInfoArray{{Name: "Ratio"}}); err != nil {
		t.Fatalf("AddFeature Ratio: %v", err)
	}
	if err := tb.Forge(); err != nil {
		t.Fatalf("Forge: %v", err)
	}
	sizeCell, _ := tb.FeatureByName("Size")
	sc, _ := sizeCell.Cell(1)
	sc[0] = 12
	perimCell, _ := tb.FeatureByName("Perimeter")
	pc, _ := perimCell.Cell(1)
	pc[0] = 16

	ov, err := tb.ObjectByID(1)
	if err != nil {
		t.Fatalf("ObjectByID: %v", err)
	}
	ratioCell, _ := tb.FeatureByName("Ratio")
	cell, _ := ratioCell.Cell(1)

	r := NewRatio()
	if err := r.Measure(ov, cell); err != nil {
		t.Fatalf("Ratio.Measure: %v", err)
	}
	want := 12.0 / 16.0
	if math.Abs(cell[0]-want) > 1e-9 {
		t.Errorf("Ratio = %v, want %v", cell[0], want)
	}
}

func TestCircularityAndSolidityDependencies(t *testing.T) {
	if got := NewCircularity().Dependencies(); len(got) != 2 || got[0] != "Size" || got[1] != "Perimeter" {
		t.Errorf("Circularity.Dependencies() = %v, want [Size Perimeter]", got)
	}
	if got := NewSolidity().Dependencies(); len(got) != 2 || got[0] != "Size" || got[1] != "ConvexArea" {
		t.Errorf("Solidity.Dependencies() = %v, want [Size ConvexArea]", got)
	}
}

func TestMassRejectsMissingGrey(t *testing.T) {
	lab := rasterimage.NewLabelImage([]int{2, 2}, []uint32{1, 1, 1, 1})
	m := NewMass()
	if _, err := m.Initialize(lab, &rasterimage.GreyImage{}, 1); err == nil {
		t.Errorf("Mass.Initialize with absent grey should fail")
	}
}
