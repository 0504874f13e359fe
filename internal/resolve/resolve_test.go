// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"errors"
	"testing"

	"github.com/pdiddy/cad-engine/pkg/types"
)

func TestResolveDefaults(t *testing.T) {
	tests := []struct {
		object  types.ObjectType
		l, w, h float64
	}{
		{types.ObjectChair, 40, 40, 45},
		{types.ObjectTable, 160, 90, 75},
		{types.ObjectSofa, 200, 80, 80},
		{types.ObjectCabinet, 120, 60, 200},
		{types.ObjectShelf, 80, 30, 180},
		{types.ObjectRoom, 400, 500, 300},
		{types.ObjectHouse, 800, 1000, 350},
	}
	for _, tt := range tests {
		spec, err := Resolve(Input{Object: tt.object})
		if err != nil {
			t.Errorf("Resolve(%s) error: %v", tt.object, err)
			continue
		}
		if spec.Length.Value != tt.l || spec.Width.Value != tt.w || spec.Height.Value != tt.h {
			t.Errorf("%s = %g×%g×%g, want %g×%g×%g", tt.object,
				spec.Length.Value, spec.Width.Value, spec.Height.Value, tt.l, tt.w, tt.h)
		}
		for field, d := range map[string]types.ResolvedDimension{
			"length": spec.Length, "width": spec.Width, "height": spec.Height,
		} {
			if d.Provenance != types.ProvenanceDefault {
				t.Errorf("%s %s provenance = %s, want default", tt.object, field, d.Provenance)
			}
		}
	}
}

func TestResolveUserValuesKeepProvenance(t *testing.T) {
	spec, err := Resolve(Input{
		Object:     types.ObjectChair,
		Dimensions: types.RawDimensionSet{Length: 40, Width: 40, Height: 45},
		Provenance: types.DimensionProvenance{types.FieldHeight: types.ProvenanceRAG},
	})
	if err != nil {
		t.Fatal(err)
	}
	if spec.Length.Provenance != types.ProvenanceUser {
		t.Errorf("length provenance = %s, want user-specified", spec.Length.Provenance)
	}
	if spec.Height.Provenance != types.ProvenanceRAG {
		t.Errorf("height provenance = %s, want rag-validated", spec.Height.Provenance)
	}
}

func TestResolveDiameterClearsFootprint(t *testing.T) {
	spec, err := Resolve(Input{
		Object: types.ObjectTable,
		Dimensions: types.RawDimensionSet{
			Length: 160, Width: 90, Diameter: 120, Height: 75,
		},
		Features: types.FeatureSet{SeatShape: types.ShapeCircular},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !spec.Circular {
		t.Error("spec should be circular")
	}
	if spec.Diameter.Value != 120 {
		t.Errorf("diameter = %g, want 120", spec.Diameter.Value)
	}
	if spec.Length.Value != 0 || spec.Width.Value != 0 {
		t.Errorf("length/width = %g/%g, want cleared", spec.Length.Value, spec.Width.Value)
	}
}

func TestResolveCircularWithoutDiameterUsesDefault(t *testing.T) {
	spec, err := Resolve(Input{
		Object:   types.ObjectTable,
		Features: types.FeatureSet{SeatShape: types.ShapeCircular},
	})
	if err != nil {
		t.Fatal(err)
	}
	if spec.Diameter.Value != 120 {
		t.Errorf("diameter = %g, want default 120", spec.Diameter.Value)
	}
	if spec.Diameter.Provenance != types.ProvenanceDefault {
		t.Errorf("diameter provenance = %s, want default", spec.Diameter.Provenance)
	}
}

func TestResolveFeatureDefaults(t *testing.T) {
	tests := []struct {
		object types.ObjectType
		check  func(types.FeatureSet) bool
		what   string
	}{
		{types.ObjectChair, func(f types.FeatureSet) bool { return f.Legs == 4 }, "chair legs 4"},
		{types.ObjectTable, func(f types.FeatureSet) bool { return f.Legs == 4 }, "table legs 4"},
		{types.ObjectSofa, func(f types.FeatureSet) bool { return f.Seats == 2 }, "sofa seats 2"},
		{types.ObjectCabinet, func(f types.FeatureSet) bool { return f.Doors == 2 }, "cabinet doors 2"},
		{types.ObjectShelf, func(f types.FeatureSet) bool { return f.Shelves == 4 }, "shelf shelves 4"},
	}
	for _, tt := range tests {
		spec, err := Resolve(Input{Object: tt.object})
		if err != nil {
			t.Fatal(err)
		}
		if !tt.check(spec.Features) {
			t.Errorf("%s: got %+v", tt.what, spec.Features)
		}
	}
}

func TestResolveOpeningSideDefaults(t *testing.T) {
	spec, err := Resolve(Input{
		Object:   types.ObjectRoom,
		Features: types.FeatureSet{Doors: 1, Windows: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if spec.Features.DoorSide != types.SideSouth {
		t.Errorf("door side = %s, want south", spec.Features.DoorSide)
	}
	if spec.Features.WindowSide != types.SideNorth {
		t.Errorf("window side = %s, want north", spec.Features.WindowSide)
	}
}

func TestResolveExplicitLegCountKept(t *testing.T) {
	spec, err := Resolve(Input{
		Object:   types.ObjectTable,
		Features: types.FeatureSet{Legs: 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	if spec.Features.Legs != 3 {
		t.Errorf("legs = %d, want 3", spec.Features.Legs)
	}
}

func TestResolveRejectsNonPositive(t *testing.T) {
	_, err := Resolve(Input{
		Object:     types.ObjectChair,
		Dimensions: types.RawDimensionSet{Height: -5},
	})
	var invalid *InvalidSpecError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidSpecError, got %v", err)
	}
	if invalid.Field != types.FieldHeight {
		t.Errorf("field = %s, want height", invalid.Field)
	}
}

func TestResolveUnknownObject(t *testing.T) {
	_, err := Resolve(Input{Object: "spaceship"})
	var invalid *InvalidSpecError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidSpecError, got %v", err)
	}
	if invalid.Field != "object" {
		t.Errorf("field = %s, want object", invalid.Field)
	}
}
