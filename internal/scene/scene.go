// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scene builds the parametric scene graph for a canonical spec.
// One placement function per object type, all emitting the same primitive
// vocabulary, so the 2D projector and the mesh synthesizer stay
// variant-agnostic. Coordinates are world centimeters: X along length
// (east positive), Y along width (north positive), Z up, footprint
// centered on the origin with the floor at zero. See docs/ARCHITECTURE
// § Parametric Scene Builder.
package scene

import (
	"fmt"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// Placement constants, all in centimeters or fractions of the governing
// dimension.
const (
	LegInset      = 5.0
	LegRadius     = 2.0
	SeatThickness = 4.0
	TopThickness  = 5.0

	// LegRingFraction puts circular-top legs on a ring of 0.7 × radius.
	LegRingFraction = 0.7

	CushionGap       = 2.0
	BackrestFraction = 0.20
	ArmrestFraction  = 0.12
	CornerRadius     = 3.0

	PanelThickness = 2.0
	StubLegHeight  = 10.0

	RoomWallThickness  = 20.0
	HouseWallThickness = 30.0
	FloorThickness     = 10.0

	DoorWidth              = 80.0
	RoomDoorHeightFraction = 0.85
	HouseDoorHeight        = 200.0

	WindowWidth          = 120.0
	WindowHeightFraction = 0.40

	GarageLengthFraction = 0.25
	GarageWidthFraction  = 0.50
	GarageHeightFraction = 0.70

	// LivingAreaFraction is the south share of a house footprint left
	// open; bedrooms partition the remaining north band.
	LivingAreaFraction = 0.40
)

// InternalError reports a scene graph inconsistency. It always indicates a
// bug, never bad user input: the resolver validates specs before they
// reach the builder.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal consistency error: " + e.Msg
}

// Build places the primitives for one canonical spec. The output depends
// only on the spec and name, so identical specs always yield identical
// graphs.
func Build(spec types.CanonicalSpec, name string) (types.SceneGraph, error) {
	g := types.SceneGraph{
		Name:        name,
		Object:      spec.Object,
		Annotations: make(map[string]float64),
	}
	annotateDimensions(&g, spec)

	switch spec.Object {
	case types.ObjectChair:
		buildChair(&g, spec)
	case types.ObjectTable:
		buildTable(&g, spec)
	case types.ObjectSofa:
		buildSofa(&g, spec)
	case types.ObjectCabinet:
		buildCabinet(&g, spec)
	case types.ObjectShelf:
		buildShelf(&g, spec)
	case types.ObjectRoom:
		buildRoom(&g, spec)
	case types.ObjectHouse:
		buildHouse(&g, spec)
	default:
		return types.SceneGraph{}, &InternalError{
			Msg: fmt.Sprintf("no placement rules for object type %q", spec.Object),
		}
	}

	return g, nil
}

func annotateDimensions(g *types.SceneGraph, spec types.CanonicalSpec) {
	if spec.Circular {
		g.Annotations["diameter"] = spec.Diameter.Value
	} else {
		g.Annotations["length"] = spec.Length.Value
		g.Annotations["width"] = spec.Width.Value
	}
	g.Annotations["height"] = spec.Height.Value
}

func box(label string, cx, cy, cz, sx, sy, sz float64) types.ScenePrimitive {
	return types.ScenePrimitive{
		Label:  label,
		Kind:   types.KindBox,
		Center: [3]float64{cx, cy, cz},
		Size:   [3]float64{sx, sy, sz},
	}
}

func cylinder(label string, cx, cy, cz, diameter, height float64) types.ScenePrimitive {
	return types.ScenePrimitive{
		Label:  label,
		Kind:   types.KindCylinder,
		Center: [3]float64{cx, cy, cz},
		Size:   [3]float64{diameter, diameter, height},
	}
}
