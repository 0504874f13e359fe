// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns enhanced raw dimensions into a complete canonical
// specification: per-type defaults fill the gaps, diameter and
// length/width exclusivity is enforced, and every required dimension is
// checked positive. The default tables are immutable package data passed
// through one code path so a given input always resolves identically. See
// docs/ARCHITECTURE § Canonical Spec Resolver.
package resolve

import (
	"fmt"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// InvalidSpecError reports a specification that cannot produce geometry.
type InvalidSpecError struct {
	Field  string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid specification: %s %s", e.Field, e.Reason)
}

// defaultDims holds the per-type fallback dimensions in centimeters.
type defaultDims struct {
	length, width, height float64
	diameter              float64
}

var defaults = map[types.ObjectType]defaultDims{
	types.ObjectChair:   {length: 40, width: 40, height: 45, diameter: 40},
	types.ObjectTable:   {length: 160, width: 90, height: 75, diameter: 120},
	types.ObjectSofa:    {length: 200, width: 80, height: 80, diameter: 200},
	types.ObjectCabinet: {length: 120, width: 60, height: 200, diameter: 120},
	types.ObjectShelf:   {length: 80, width: 30, height: 180, diameter: 80},
	types.ObjectRoom:    {length: 400, width: 500, height: 300, diameter: 400},
	types.ObjectHouse:   {length: 800, width: 1000, height: 350, diameter: 800},
}

// Input is the material the resolver works from: parsed and enhanced
// dimensions plus the provenance and notes the enhancement pass recorded.
type Input struct {
	Object     types.ObjectType
	Dimensions types.RawDimensionSet
	Features   types.FeatureSet
	Provenance types.DimensionProvenance
	Notes      map[string]string
}

// Resolve produces the canonical spec. Dimension values present in the
// input keep their recorded provenance (user-specified when the
// enhancement pass left them unmarked); filled values are tagged default.
func Resolve(in Input) (types.CanonicalSpec, error) {
	def, ok := defaults[in.Object]
	if !ok {
		return types.CanonicalSpec{}, &InvalidSpecError{Field: "object", Reason: fmt.Sprintf("unknown type %q", in.Object)}
	}

	spec := types.CanonicalSpec{
		Object:   in.Object,
		Features: applyFeatureDefaults(in.Object, in.Features),
	}

	circular := in.Features.SeatShape == types.ShapeCircular || in.Dimensions.Diameter > 0

	dims := in.Dimensions
	if circular {
		// Diameter and length/width are mutually exclusive; the circular
		// shape wins and footprint values are discarded.
		spec.Circular = true
		spec.Features.SeatShape = types.ShapeCircular
		dims.Length = 0
		dims.Width = 0
		spec.Diameter = resolveField(types.FieldDiameter, dims.Diameter, def.diameter, in)
	} else {
		dims.Diameter = 0
		spec.Length = resolveField(types.FieldLength, dims.Length, def.length, in)
		spec.Width = resolveField(types.FieldWidth, dims.Width, def.width, in)
	}
	spec.Height = resolveField(types.FieldHeight, dims.Height, def.height, in)

	if err := validate(spec); err != nil {
		return types.CanonicalSpec{}, err
	}
	return spec, nil
}

// resolveField keeps any explicitly set value, including a bad negative
// one so validation can name the offending field. Only zero means unset.
func resolveField(field string, value, fallback float64, in Input) types.ResolvedDimension {
	if value != 0 {
		prov := types.ProvenanceUser
		if p, ok := in.Provenance[field]; ok {
			prov = p
		}
		return types.ResolvedDimension{
			Value:      value,
			Provenance: prov,
			Note:       in.Notes[field],
		}
	}
	return types.ResolvedDimension{Value: fallback, Provenance: types.ProvenanceDefault}
}

func validate(spec types.CanonicalSpec) error {
	check := func(field string, d types.ResolvedDimension) error {
		if d.Value <= 0 {
			return &InvalidSpecError{Field: field, Reason: fmt.Sprintf("must be positive, got %g", d.Value)}
		}
		return nil
	}

	if spec.Circular {
		if err := check(types.FieldDiameter, spec.Diameter); err != nil {
			return err
		}
	} else {
		if err := check(types.FieldLength, spec.Length); err != nil {
			return err
		}
		if err := check(types.FieldWidth, spec.Width); err != nil {
			return err
		}
	}
	return check(types.FieldHeight, spec.Height)
}

// applyFeatureDefaults fills the feature counts an object of the type
// always has when the description left them out.
func applyFeatureDefaults(object types.ObjectType, f types.FeatureSet) types.FeatureSet {
	switch object {
	case types.ObjectChair, types.ObjectTable:
		if f.Legs == 0 {
			f.Legs = 4
		}
	case types.ObjectSofa:
		if f.Seats == 0 {
			f.Seats = 2
		}
	case types.ObjectCabinet:
		if f.Doors == 0 {
			f.Doors = 2
		}
	case types.ObjectShelf:
		if f.Shelves == 0 {
			f.Shelves = 4
		}
	case types.ObjectRoom, types.ObjectHouse:
		if f.Doors > 0 && f.DoorSide == "" {
			f.DoorSide = types.SideSouth
		}
		if f.Windows > 0 && f.WindowSide == "" {
			f.WindowSide = types.SideNorth
		}
	}
	return f
}
