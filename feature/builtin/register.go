package builtin

import "github.com/latticevision/objmeasure/feature"

// Register installs the full canonical catalog into reg, dependencies
// before dependents (though the resolver does not require this
// ordering — only that every dependency be registered somewhere).
func Register(reg *feature.Registry) {
	reg.Register(NewSize())
	reg.Register(NewMass())
	reg.Register(NewCentroid())
	reg.Register(NewBoundingBox())
	reg.Register(NewStandardDeviation())
	reg.Register(NewPerimeter())
	reg.Register(NewConvexArea())
	reg.Register(NewFeret())
	reg.Register(NewRatio())
	reg.Register(NewCircularity())
	reg.Register(NewSolidity())
	reg.Register(NewLabel())
}
