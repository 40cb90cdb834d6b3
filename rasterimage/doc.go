// Package rasterimage provides the minimal image contract consumed by the
// rest of objmeasure.
//
// The object-measurement engine intentionally does not own an image
// container: pixel format conversion, codecs, and color models live
// outside this module (see cmd/objmeasure for where decoded PNGs get
// turned into the types here). What the engine does need from an image —
// sizes, strides, an origin offset, a data type tag, per-dimension
// physical pixel size, and whether the image is scalar or a tensor — is
// captured by the Image interface. LabelImage and GreyImage are the two
// concrete implementations the driver actually receives: a label image is
// always scalar and unsigned-integer; a grey image is real-valued and may
// carry more than one channel.
//
// # Coordinate system
//
// Images of any dimensionality are supported. Coordinates are 0-based
// integer slices, one entry per dimension, row-major (the last dimension
// varies fastest).
//
// # Forged vs raw
//
// A GreyImage's zero value is "raw" (IsForged returns false) and stands in
// for "no intensity image was provided" per spec section 6. LabelImage has
// no raw state: a label image is always required.
package rasterimage
