// Package feature declares the measurement-feature contract: the base
// information every feature carries, and the five variant interfaces
// (scanline, whole-image, chain-code, convex-hull, composite) a concrete
// feature implements exactly one of. It also provides the feature
// registry.
//
// Every feature reports a Variant tag in its Info. The driver (package
// objmeasure) partitions a resolved feature list into passes with a
// single type switch on the variant interface each feature implements;
// it does not read the Variant tag.
package feature
