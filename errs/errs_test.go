package errs

import (
	"testing"

	"github.com/pkg/errors"
)

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{"direct match", New(AlreadyForged, "table is forged"), AlreadyForged, true},
		{"direct mismatch", New(AlreadyForged, "table is forged"), NotForged, false},
		{"wrapped match", errors.Wrap(New(UnknownFeature, "Size"), "resolving dependencies"), UnknownFeature, true},
		{"double wrapped match", errors.Wrap(errors.Wrap(New(CyclicDependency, "Ratio"), "resolve"), "Measure"), CyclicDependency, true},
		{"plain error", errors.New("boom"), InvalidArgument, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	err := errors.Wrap(New(DuplicateObject, "7"), "AddObjectIDs")
	if got := KindOf(err); got != DuplicateObject {
		t.Errorf("KindOf() = %q, want %q", got, DuplicateObject)
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf() = %q, want empty", got)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(UnknownObject, "object %d not present", 42)
	if err.Error() != "UnknownObject: object 42 not present" {
		t.Errorf("Error() = %q", err.Error())
	}
}
