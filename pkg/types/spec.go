// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the cad-engine pipeline:
// parsed specifications, the canonical spec, scene graph primitives, and
// derived view/mesh geometry. See docs/ARCHITECTURE § Data Model.
package types

// ObjectType is the closed set of object families the pipeline can build.
// It selects the default dimension table and the scene placement rules.
type ObjectType string

const (
	ObjectChair   ObjectType = "chair"
	ObjectTable   ObjectType = "table"
	ObjectSofa    ObjectType = "sofa"
	ObjectCabinet ObjectType = "cabinet"
	ObjectShelf   ObjectType = "shelf"
	ObjectRoom    ObjectType = "room"
	ObjectHouse   ObjectType = "house"
)

// Valid reports whether t is one of the known object types.
func (t ObjectType) Valid() bool {
	switch t {
	case ObjectChair, ObjectTable, ObjectSofa, ObjectCabinet, ObjectShelf, ObjectRoom, ObjectHouse:
		return true
	}
	return false
}

// Unit is the length unit a dimension clause was written in. All stored
// values are normalized to centimeters at parse time; the tag records the
// source unit for diagnostics.
type Unit string

const (
	UnitCentimeter Unit = "cm"
	UnitMeter      Unit = "m"
	UnitMillimeter Unit = "mm"
)

// RawDimensionSet holds the dimensions extracted from a description, in
// centimeters. A zero value means the field was not mentioned. Diameter and
// length/width are reconciled later by the resolver, not here.
type RawDimensionSet struct {
	Length   float64 `json:"length,omitempty" yaml:"length,omitempty"`
	Width    float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height   float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Diameter float64 `json:"diameter,omitempty" yaml:"diameter,omitempty"`

	// Unit is the last explicit unit token seen in the description.
	Unit Unit `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Side is a compass direction used to place doors and windows on walls.
type Side string

const (
	SideNorth Side = "north"
	SideSouth Side = "south"
	SideEast  Side = "east"
	SideWest  Side = "west"
)

// SeatShape distinguishes rectangular from circular seats and tabletops.
type SeatShape string

const (
	ShapeRectangular SeatShape = "rectangular"
	ShapeCircular    SeatShape = "circular"
)

// FeatureSet holds the countable and boolean features extracted from a
// description. Zero counts mean the feature was not mentioned; defaults are
// applied by the resolver per object type.
type FeatureSet struct {
	Legs     int `json:"legs,omitempty" yaml:"legs,omitempty"`
	Seats    int `json:"seats,omitempty" yaml:"seats,omitempty"`
	Doors    int `json:"doors,omitempty" yaml:"doors,omitempty"`
	Windows  int `json:"windows,omitempty" yaml:"windows,omitempty"`
	Drawers  int `json:"drawers,omitempty" yaml:"drawers,omitempty"`
	Shelves  int `json:"shelves,omitempty" yaml:"shelves,omitempty"`
	Bedrooms int `json:"bedrooms,omitempty" yaml:"bedrooms,omitempty"`

	HasArmrest  bool `json:"has_armrest,omitempty" yaml:"has_armrest,omitempty"`
	HasBackrest bool `json:"has_backrest,omitempty" yaml:"has_backrest,omitempty"`
	HasGarage   bool `json:"has_garage,omitempty" yaml:"has_garage,omitempty"`

	SeatShape SeatShape `json:"seat_shape,omitempty" yaml:"seat_shape,omitempty"`
	Style     string    `json:"style,omitempty" yaml:"style,omitempty"`

	// DoorSide and WindowSide place openings on room/house walls.
	DoorSide   Side `json:"door_side,omitempty" yaml:"door_side,omitempty"`
	WindowSide Side `json:"window_side,omitempty" yaml:"window_side,omitempty"`
}

// Provenance records where a resolved dimension value came from.
type Provenance string

const (
	// ProvenanceUser marks a value written explicitly in the description.
	ProvenanceUser Provenance = "user-specified"
	// ProvenanceRAG marks a value validated or filled from the knowledge
	// index. A user value outside the retrieved standard range keeps this
	// tag with a deviation note; user intent is never silently overridden.
	ProvenanceRAG Provenance = "rag-validated"
	// ProvenanceDefault marks a value taken from the per-type default table.
	ProvenanceDefault Provenance = "default"
)

// Dimension field names used as provenance keys and in failure messages.
const (
	FieldLength   = "length"
	FieldWidth    = "width"
	FieldHeight   = "height"
	FieldDiameter = "diameter"
)

// ResolvedDimension is one fully resolved dimension in centimeters with its
// provenance. Note carries the deviation message when a user value fell
// outside the retrieved standard range.
type ResolvedDimension struct {
	Value      float64    `json:"value" yaml:"value"`
	Provenance Provenance `json:"provenance" yaml:"provenance"`
	Note       string     `json:"note,omitempty" yaml:"note,omitempty"`
}

// CanonicalSpec is the single fully resolved, centimeter-normalized
// description of one object. It is the sole input to geometry synthesis and
// must not be mutated after the resolver returns it.
//
// Invariant: every dimension the object type's placement rules require is
// strictly positive, and Diameter is mutually exclusive with Length/Width.
type CanonicalSpec struct {
	Object   ObjectType `json:"object" yaml:"object"`
	Circular bool       `json:"circular,omitempty" yaml:"circular,omitempty"`

	Length   ResolvedDimension `json:"length" yaml:"length"`
	Width    ResolvedDimension `json:"width" yaml:"width"`
	Height   ResolvedDimension `json:"height" yaml:"height"`
	Diameter ResolvedDimension `json:"diameter,omitempty" yaml:"diameter,omitempty"`

	Features FeatureSet `json:"features" yaml:"features"`
}

// DimensionProvenance maps a dimension field name to its provenance while a
// spec is still being assembled (parse → enhance → resolve).
type DimensionProvenance map[string]Provenance
