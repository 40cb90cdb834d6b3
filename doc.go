// Package objmeasure is an object-measurement engine for labeled raster
// images: given a labeled image and, optionally, a co-registered
// intensity image, it computes a user-selected set of per-object
// measurement features and returns them in a dense, column-oriented
// table.
//
// A Tool owns a feature registry, pre-populated with the builtin catalog
// (package feature/builtin). Register adds further implementations;
// Measure runs the full eight-step driver algorithm and returns a forged
// table.Table. Package paint inverts the result back onto the labeled
// image.
package objmeasure
