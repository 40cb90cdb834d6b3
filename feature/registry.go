package feature

import "github.com/latticevision/objmeasure/errs"

// Registry is a case-sensitive name-to-implementation mapping. It owns
// every feature instance it holds for the instance's whole lifetime.
type Registry struct {
	byName map[string]Feature
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Feature)}
}

// Register adds f under its Info().Name. If a feature with that name is
// already registered, f is silently dropped — the earlier registration
// wins.
func (r *Registry) Register(f Feature) {
	name := f.Info().Name
	if _, exists := r.byName[name]; exists {
		return
	}
	r.byName[name] = f
	r.order = append(r.order, name)
}

// Features returns the information records of every registered feature,
// in registration order.
func (r *Registry) Features() []Info {
	out := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name].Info())
	}
	return out
}

// Exists reports whether name is registered.
func (r *Registry) Exists(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Index returns the registration-order position of name. Fails with
// errs.UnknownFeature if name is not registered.
func (r *Registry) Index(name string) (int, error) {
	if _, ok := r.byName[name]; !ok {
		return 0, errs.Newf(errs.UnknownFeature, "feature not registered: %s", name)
	}
	for i, n := range r.order {
		if n == name {
			return i, nil
		}
	}
	panic("feature: registry index inconsistent with byName map")
}

// Get returns the named feature implementation. Fails with
// errs.UnknownFeature if name is not registered.
func (r *Registry) Get(name string) (Feature, error) {
	f, ok := r.byName[name]
	if !ok {
		return nil, errs.Newf(errs.UnknownFeature, "feature not registered: %s", name)
	}
	return f, nil
}
