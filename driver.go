package objmeasure

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/latticevision/objmeasure/chaincode"
	"github.com/latticevision/objmeasure/convexhull"
	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/internal/resolve"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

func greyPresent(grey rasterimage.Image) bool {
	return grey != nil && grey.IsForged()
}

func (t *Tool) measure(label, grey rasterimage.Image, names []string, objectIDs []uint32, connectivity int) (*table.Table, error) {
	// Step 1: validate L and, conditionally, G.
	if err := validateLabel(label); err != nil {
		return nil, err
	}
	if connectivity < 1 || connectivity > label.Dimensionality() {
		return nil, errs.Newf(errs.InvalidArgument, "connectivity %d out of range [1, %d]", connectivity, label.Dimensionality())
	}

	// Step 2: resolve dependencies.
	resolved, err := resolve.Resolve(t.registry, names)
	if err != nil {
		return nil, errors.Wrap(err, "resolving feature dependencies")
	}

	needsGrey := false
	for _, name := range resolved {
		f, _ := t.registry.Get(name)
		if f.Info().NeedsGrey {
			needsGrey = true
			break
		}
	}
	if needsGrey {
		if err := validateGrey(grey, label); err != nil {
			return nil, err
		}
	}

	// Step 3: determine the object-identifier set.
	ids, err := determineObjectIDs(label, objectIDs)
	if err != nil {
		return nil, errors.Wrap(err, "determining object identifiers")
	}

	// Step 4: build the table, initializing each feature in resolved order.
	tb := table.New()
	if err := tb.AddObjectIDs(ids); err != nil {
		return nil, errors.Wrap(err, "adding object identifiers")
	}

	impls := make([]feature.Feature, 0, len(resolved))
	var initErr error
	for _, name := range resolved {
		f, err := t.registry.Get(name)
		if err != nil {
			initErr = err
			break
		}
		values, err := f.Initialize(label, grey, len(ids))
		if err != nil {
			initErr = errors.Wrapf(err, "initializing feature %s", name)
			break
		}
		if err := tb.AddFeature(name, values); err != nil {
			f.Cleanup()
			initErr = errors.Wrapf(err, "adding feature %s to table", name)
			break
		}
		impls = append(impls, f)
	}
	if initErr != nil {
		cleanupReverse(impls)
		return nil, initErr
	}
	if err := tb.Forge(); err != nil {
		cleanupReverse(impls)
		return nil, errors.Wrap(err, "forging table")
	}

	// Step 5: identifier-to-row-index map, shared by reference.
	idx := tb.IDIndex()

	// Step 6: partition by variant and run each pass.
	var scanLine []feature.ScanLineFeature
	var chainCode []feature.ChainCodeFeature
	var convexHullFs []feature.ConvexHullFeature
	var wholeImage []feature.WholeImageFeature
	var composite []feature.CompositeFeature
	for _, f := range impls {
		switch v := f.(type) {
		case feature.ScanLineFeature:
			scanLine = append(scanLine, v)
		case feature.ChainCodeFeature:
			chainCode = append(chainCode, v)
		case feature.ConvexHullFeature:
			convexHullFs = append(convexHullFs, v)
		case feature.WholeImageFeature:
			wholeImage = append(wholeImage, v)
		case feature.CompositeFeature:
			composite = append(composite, v)
		}
	}

	runErr := runPasses(tb, label, grey, ids, idx, connectivity, scanLine, chainCode, convexHullFs, wholeImage, composite)

	// Step 7: Cleanup every initialized feature, even on failure, in
	// reverse order.
	cleanupReverse(impls)

	if runErr != nil {
		return nil, runErr
	}
	// Step 8: return the forged table.
	return tb, nil
}

func cleanupReverse(impls []feature.Feature) {
	for i := len(impls) - 1; i >= 0; i-- {
		impls[i].Cleanup()
	}
}

func validateLabel(label rasterimage.Image) error {
	if label == nil || !label.IsForged() {
		return errs.New(errs.InvalidArgument, "label image must be forged")
	}
	if !label.IsScalar() {
		return errs.New(errs.InvalidArgument, "label image must be scalar")
	}
	if !label.DataType().IsUnsignedInteger() {
		return errs.New(errs.InvalidArgument, "label image must have an unsigned-integer data type")
	}
	if label.Dimensionality() < 1 {
		return errs.New(errs.InvalidArgument, "label image must have dimensionality >= 1")
	}
	return nil
}

func validateGrey(grey, label rasterimage.Image) error {
	if !greyPresent(grey) {
		return errs.New(errs.InvalidArgument, "a requested feature needs an intensity image, but none was provided")
	}
	if !grey.DataType().IsReal() {
		return errs.New(errs.InvalidArgument, "intensity image must have a real-valued data type")
	}
	if !rasterimage.SameSize(label, grey) {
		return errs.New(errs.InvalidArgument, "intensity image size does not match label image size")
	}
	return nil
}

func determineObjectIDs(label rasterimage.Image, requested []uint32) ([]uint32, error) {
	if len(requested) > 0 {
		seen := make(map[uint32]bool, len(requested))
		out := make([]uint32, 0, len(requested))
		for _, id := range requested {
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
		return out, nil
	}

	lab, ok := label.(rasterimage.LabelAccessor)
	if !ok {
		return nil, errs.New(errs.UnsupportedInput, "label image has no At(coords) accessor to scan for identifiers")
	}
	seen := make(map[uint32]bool)
	rasterimage.EachCoordinate(label.Sizes(), func(coord []int) {
		v := lab.At(coord)
		if v > 0 {
			seen[v] = true
		}
	})
	out := make([]uint32, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func runPasses(
	tb *table.Table,
	label, grey rasterimage.Image,
	ids []uint32,
	idx table.IDIndexMap,
	connectivity int,
	scanLine []feature.ScanLineFeature,
	chainCode []feature.ChainCodeFeature,
	convexHullFs []feature.ConvexHullFeature,
	wholeImage []feature.WholeImageFeature,
	composite []feature.CompositeFeature,
) error {
	if err := runScanLinePass(tb, label, grey, idx, scanLine); err != nil {
		return errors.Wrap(err, "scanline pass")
	}

	var codes map[uint32]*chaincode.ChainCode
	if len(chainCode) > 0 || len(convexHullFs) > 0 {
		codes = chaincode.ExtractAll(label, ids, connectivity)
	}

	if err := runChainCodePass(tb, codes, chainCode); err != nil {
		return errors.Wrap(err, "chain-code pass")
	}
	if err := runConvexHullPass(tb, codes, convexHullFs); err != nil {
		return errors.Wrap(err, "convex-hull pass")
	}
	if err := runWholeImagePass(tb, label, grey, wholeImage); err != nil {
		return errors.Wrap(err, "whole-image pass")
	}
	if err := runCompositePass(tb, ids, composite); err != nil {
		return errors.Wrap(err, "composite pass")
	}
	return nil
}

func runScanLinePass(tb *table.Table, label, grey rasterimage.Image, idx table.IDIndexMap, features []feature.ScanLineFeature) error {
	if len(features) == 0 {
		return nil
	}
	lab, ok := label.(rasterimage.LabelAccessor)
	if !ok {
		return errs.New(errs.UnsupportedInput, "label image has no At(coords) accessor for the scanline pass")
	}
	var grayAt rasterimage.GreyAccessor
	if greyPresent(grey) {
		if ga, ok := grey.(rasterimage.GreyAccessor); ok {
			grayAt = ga
		}
	}

	sizes := label.Sizes()
	dimension := len(sizes) - 1

	rasterimage.EachLine(sizes, dimension, func(first []int, length int) {
		labelLine := make(feature.LabelLine, length)
		coord := append([]int(nil), first...)
		for i := 0; i < length; i++ {
			coord[dimension] = i
			labelLine[i] = lab.At(coord)
		}

		var greyLine feature.GreyLine
		if grayAt != nil {
			channels := grey.TensorElements()
			data := make([]float64, length*channels)
			for i := 0; i < length; i++ {
				coord[dimension] = i
				copy(data[i*channels:(i+1)*channels], grayAt.At(coord))
			}
			greyLine = feature.GreyLine{Data: data, Channels: channels}
		}

		for _, f := range features {
			f.ScanLine(labelLine, greyLine, first, dimension, idx)
		}
	})

	for row, id := range tb.Objects() {
		for _, f := range features {
			fv, err := tb.FeatureByName(f.Info().Name)
			if err != nil {
				continue
			}
			cell, err := fv.Cell(id)
			if err != nil {
				continue
			}
			f.Finish(row, cell)
		}
	}
	return nil
}

func runChainCodePass(tb *table.Table, codes map[uint32]*chaincode.ChainCode, features []feature.ChainCodeFeature) error {
	if len(features) == 0 {
		return nil
	}
	for _, id := range tb.Objects() {
		cc, ok := codes[id]
		if !ok {
			continue
		}
		for _, f := range features {
			fv, err := tb.FeatureByName(f.Info().Name)
			if err != nil {
				return err
			}
			cell, err := fv.Cell(id)
			if err != nil {
				return err
			}
			if err := f.Measure(cc, cell); err != nil {
				return err
			}
		}
	}
	return nil
}

func runConvexHullPass(tb *table.Table, codes map[uint32]*chaincode.ChainCode, features []feature.ConvexHullFeature) error {
	if len(features) == 0 {
		return nil
	}
	for _, id := range tb.Objects() {
		cc, ok := codes[id]
		if !ok {
			continue
		}
		hull := convexhull.FromChainCode(cc)
		for _, f := range features {
			fv, err := tb.FeatureByName(f.Info().Name)
			if err != nil {
				return err
			}
			cell, err := fv.Cell(id)
			if err != nil {
				return err
			}
			if err := f.Measure(hull, cell); err != nil {
				return err
			}
		}
	}
	return nil
}

func runWholeImagePass(tb *table.Table, label, grey rasterimage.Image, features []feature.WholeImageFeature) error {
	for _, f := range features {
		fv, err := tb.FeatureByName(f.Info().Name)
		if err != nil {
			return err
		}
		if err := f.Measure(label, grey, fv); err != nil {
			return err
		}
	}
	return nil
}

func runCompositePass(tb *table.Table, ids []uint32, features []feature.CompositeFeature) error {
	if len(features) == 0 {
		return nil
	}
	for _, id := range ids {
		ov, err := tb.ObjectByID(id)
		if err != nil {
			return err
		}
		for _, f := range features {
			fv, err := tb.FeatureByName(f.Info().Name)
			if err != nil {
				return err
			}
			cell, err := fv.Cell(id)
			if err != nil {
				return err
			}
			if err := f.Measure(ov, cell); err != nil {
				return err
			}
		}
	}
	return nil
}
