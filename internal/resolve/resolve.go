package resolve

import (
	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
)

type visitState int

const (
	unvisited visitState = iota
	open
	done
)

// Resolve expands requested into the ordered, transitively-closed feature
// list the driver initializes and measures in. Every composite feature's
// declared dependencies appear strictly before it. Fails with
// errs.UnknownFeature if a name is not registered, or
// errs.CyclicDependency if a composite's dependency graph has a cycle.
func Resolve(reg *feature.Registry, requested []string) ([]string, error) {
	state := make(map[string]visitState)
	var order []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case open:
			return errs.Newf(errs.CyclicDependency, "cyclic feature dependency at %s", name)
		}

		f, err := reg.Get(name)
		if err != nil {
			return err
		}

		state[name] = open
		if composite, ok := f.(feature.CompositeFeature); ok {
			for _, dep := range composite.Dependencies() {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range requested {
		if state[name] == done {
			continue
		}
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
