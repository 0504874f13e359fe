// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PrimitiveKind classifies scene primitives for projection and meshing.
type PrimitiveKind string

const (
	// KindBox is an axis-aligned box before rotation, sized Size[0] along
	// length (X), Size[1] along width (Y), Size[2] along height (Z).
	KindBox PrimitiveKind = "box"
	// KindCylinder is a vertical cylinder; Size[0] is the diameter and
	// Size[2] the height. Size[1] is ignored.
	KindCylinder PrimitiveKind = "cylinder"
	// KindPlane is a thin rectangular panel. A vertical plane (wall) spans
	// Size[0] horizontally and Size[2] vertically; a Flat plane lies in the
	// horizontal plane and spans Size[0] by Size[1].
	KindPlane PrimitiveKind = "plane"
	// KindOpening is a rectangular hole (door, window) cut into the wall
	// named by Wall. It produces a gap in 2D edges and a hole in the mesh,
	// never solid geometry of its own.
	KindOpening PrimitiveKind = "opening"
)

// ScenePrimitive is one placed solid, panel or opening in a scene graph.
// All coordinates are world-space centimeters: X along length (east
// positive), Y along width (north positive), Z up with the floor at zero.
// Center is the geometric center of the primitive, Rotation the
// counterclockwise rotation about the vertical axis in degrees.
type ScenePrimitive struct {
	Label    string        `json:"label" yaml:"label"`
	Kind     PrimitiveKind `json:"kind" yaml:"kind"`
	Center   [3]float64    `json:"center" yaml:"center"`
	Size     [3]float64    `json:"size" yaml:"size"`
	Rotation float64       `json:"rotation,omitempty" yaml:"rotation,omitempty"`

	// Rounded marks box primitives that get corner rounding in views and
	// subdivision smoothing in the mesh (sofa cushions, armrests).
	Rounded bool `json:"rounded,omitempty" yaml:"rounded,omitempty"`

	// Flat marks plane primitives lying horizontally (roof, shelf boards).
	Flat bool `json:"flat,omitempty" yaml:"flat,omitempty"`

	// SketchOnly marks primitives that appear in 2D views only and are
	// skipped by the mesh synthesizer (interior partition sketch lines).
	SketchOnly bool `json:"sketch_only,omitempty" yaml:"sketch_only,omitempty"`

	// Wall names the host wall primitive for openings.
	Wall string `json:"wall,omitempty" yaml:"wall,omitempty"`
}

// SceneGraph is the single geometric source of truth for one object. The
// 2D projector and the 3D synthesizer both read it and nothing else, so a
// given graph always yields identical views and meshes.
type SceneGraph struct {
	Name       string           `json:"name" yaml:"name"`
	Object     ObjectType       `json:"object" yaml:"object"`
	Primitives []ScenePrimitive `json:"primitives" yaml:"primitives"`

	// Annotations carries named measurements surfaced on drawings, such as
	// the distance from a circular tabletop edge to the leg ring.
	Annotations map[string]float64 `json:"annotations,omitempty" yaml:"annotations,omitempty"`

	// FrontWall names the wall primitive the front view faces for room and
	// house scenes. Empty for furniture.
	FrontWall string `json:"front_wall,omitempty" yaml:"front_wall,omitempty"`
}

// Line2D is a view line segment in centimeters. Dashed lines render
// interior sketch geometry such as bedroom partitions.
type Line2D struct {
	X1, Y1, X2, Y2 float64
	Dashed         bool
}

// Circle2D is a view circle.
type Circle2D struct {
	X, Y, R float64
}

// Rect2D is a view rectangle given by its lower-left corner, with an
// optional corner radius (zero means square corners).
type Rect2D struct {
	X, Y, W, H float64
	Radius     float64
}

// Label2D is a text annotation anchored at a point.
type Label2D struct {
	X, Y float64
	Text string
}

// ViewGeometry is one orthographic 2D view in world centimeters, axes
// already flattened: top views map world X/Y to view X/Y, front views map
// world X (or Y) and Z.
type ViewGeometry struct {
	Name    string
	Lines   []Line2D
	Circles []Circle2D
	Rects   []Rect2D
	Labels  []Label2D
}

// Vec3 is a point or direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// MeshGeometry is a triangle mesh. Faces index into Vertices with
// counterclockwise winding seen from outside; Normals holds one outward
// unit normal per face.
type MeshGeometry struct {
	Vertices []Vec3
	Faces    [][3]int
	Normals  []Vec3
}
