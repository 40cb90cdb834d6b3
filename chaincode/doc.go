// Package chaincode extracts Freeman chain-code boundary representations
// of labeled objects.
//
// spec section 1 puts chain-code extraction out of scope for the
// measurement engine itself — the engine only consumes the result. Nothing
// in the retrieved example corpus supplies one, though, so this package
// exists to give the chain-code measurement pass (and the convex-hull pass
// built on top of it) something real to work with end to end. It traces
// one object's boundary at a time using an eight-connected Moore-neighbor
// walk, generalized from the flood-fill connected-component approach in
// detection/shapes.go (see DESIGN.md).
//
// Only two-dimensional label images are supported, matching spec section
// 4.3's restriction that chain-code and convex-hull features require
// exactly two dimensions.
package chaincode
