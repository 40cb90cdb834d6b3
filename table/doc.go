// Package table implements the column-oriented measurement table: dense
// storage of per-object feature values with build-then-freeze lifecycle and
// two dual views over the result.
//
// A Table is constructed empty and mutable. Callers add object identifiers
// (AddObjectIDs) and features (AddFeature/EnsureFeature) in any order, then
// call Forge exactly once to allocate the dense data buffer. After Forge,
// the schema (which objects, which features, how many values each feature
// has) is frozen; individual cell values remain writable so a driver can
// fill them in.
//
// # Layout
//
// Data is stored row-major, one row per object, rows in insertion order.
// Each feature owns a contiguous span of columns within every row; the row
// stride is the sum of every feature's value count. This means:
//
//	Stride() == sum of every FeatureInfo.NumberValues
//	len(Data()) == Stride() * NumberOfObjects(), once forged
//
// # Dual views
//
// FirstFeature/FeatureByName produce a FeatureView addressing one column
// group across every object row. FirstObject/ObjectByID produce an
// ObjectView addressing one row across every feature column. Indexing
// either view with the orthogonal key (an object ID for a FeatureView, a
// feature name for an ObjectView) yields the same Cell — the contiguous
// slice of values one feature wrote for one object. Advancing a view steps
// to the next column group or row without reallocating; the underlying
// Cell slices all alias the table's single data buffer.
package table
