package resolve

import (
	"testing"

	"github.com/latticevision/objmeasure/errs"
	"github.com/latticevision/objmeasure/feature"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

type leafFeature struct{ name string }

func (l *leafFeature) Info() feature.Info { return feature.Info{Name: l.name} }
func (l *leafFeature) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	return table.ValueInfoArray{{Name: l.name}}, nil
}
func (l *leafFeature) Cleanup() {}

type compositeFeature struct {
	name string
	deps []string
}

func (c *compositeFeature) Info() feature.Info { return feature.Info{Name: c.name, Variant: feature.VariantComposite} }
func (c *compositeFeature) Initialize(label, grey rasterimage.Image, objectCount int) (table.ValueInfoArray, error) {
	return table.ValueInfoArray{{Name: c.name}}, nil
}
func (c *compositeFeature) Cleanup()                {}
func (c *compositeFeature) Dependencies() []string  { return c.deps }
func (c *compositeFeature) Measure(obj table.ObjectView, cell table.Cell) error { return nil }

func buildRegistry() *feature.Registry {
	reg := feature.NewRegistry()
	reg.Register(&leafFeature{name: "Size"})
	reg.Register(&leafFeature{name: "Perimeter"})
	reg.Register(&compositeFeature{name: "Ratio", deps: []string{"Size", "Perimeter"}})
	reg.Register(&compositeFeature{name: "Circularity", deps: []string{"Size", "Perimeter"}})
	reg.Register(&compositeFeature{name: "Solidity", deps: []string{"Size", "ConvexArea"}})
	reg.Register(&leafFeature{name: "ConvexArea"})
	return reg
}

func TestResolveDependencyOrdering(t *testing.T) {
	reg := buildRegistry()
	got, err := Resolve(reg, []string{"Ratio"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"Size", "Perimeter", "Ratio"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResolveDeduplicatesSharedDependency(t *testing.T) {
	reg := buildRegistry()
	got, err := Resolve(reg, []string{"Ratio", "Circularity"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// Size and Perimeter should each appear exactly once, before both composites.
	seen := map[string]int{}
	for _, name := range got {
		seen[name]++
	}
	if seen["Size"] != 1 || seen["Perimeter"] != 1 {
		t.Errorf("shared dependency duplicated: %v", got)
	}
	want := []string{"Size", "Perimeter", "Ratio", "Circularity"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResolveUnknownFeature(t *testing.T) {
	reg := buildRegistry()
	if _, err := Resolve(reg, []string{"Nope"}); !errs.Is(err, errs.UnknownFeature) {
		t.Errorf("Resolve unknown: got %v, want UnknownFeature", err)
	}
}

func TestResolveCyclicDependency(t *testing.T) {
	reg := feature.NewRegistry()
	reg.Register(&compositeFeature{name: "A", deps: []string{"B"}})
	reg.Register(&compositeFeature{name: "B", deps: []string{"A"}})

	if _, err := Resolve(reg, []string{"A"}); !errs.Is(err, errs.CyclicDependency) {
		t.Errorf("Resolve cyclic: got %v, want CyclicDependency", err)
	}
}

func TestResolveMultipleIndependentRequests(t *testing.T) {
	reg := buildRegistry()
	got, err := Resolve(reg, []string{"Size", "Solidity"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"Size", "ConvexArea", "Solidity"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
