// Package builtin provides the canonical measurement-feature catalog:
// Size, Mass, Centroid, BoundingBox, StandardDeviation, Perimeter,
// ConvexArea, Feret, Ratio, Circularity, Solidity, and Label. Each is
// grounded on the accumulator pattern original_source/src/measurement/
// feature_mass.h uses, generalized to every other variant the registry
// needs to exercise.
//
// Register installs every feature in this catalog into a registry in a
// fixed, dependency-safe order (features a composite depends on are
// registered before the composite, though the resolver does not require
// registration order — only that the dependency itself be registered
// somewhere).
package builtin
