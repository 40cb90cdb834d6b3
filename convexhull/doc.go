// Package convexhull builds convex hulls over object boundaries and derives
// the measurements the convex-hull feature variant needs.
//
// spec section 1 puts convex-hull construction out of scope for the
// measurement engine — the engine only consumes the result. As with
// chaincode, nothing in the retrieved example corpus supplies a ready-made
// implementation, so this package exists to give the convex-hull feature
// pass something real to run against: Andrew's monotone-chain algorithm
// over the boundary points chaincode.ChainCode.Points returns, plus area,
// perimeter, and Feret-diameter measurements over the resulting hull. The
// rotating-calipers Feret search uses gonum's spatial/r2 vector type for
// the per-direction projections (see DESIGN.md).
package convexhull
