// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mesh

import (
	"math"
	"reflect"
	"testing"

	"github.com/pdiddy/cad-engine/internal/scene"
	"github.com/pdiddy/cad-engine/pkg/types"
)

func dim(v float64) types.ResolvedDimension {
	return types.ResolvedDimension{Value: v, Provenance: types.ProvenanceUser}
}

func TestBoxMeshShape(t *testing.T) {
	m := boxMesh(40, 40, 4)
	if len(m.verts) != 8 {
		t.Errorf("vertices = %d, want 8", len(m.verts))
	}
	if len(m.faces) != 12 {
		t.Errorf("faces = %d, want 12", len(m.faces))
	}
}

func TestBoxNormalsPointOutward(t *testing.T) {
	g := types.SceneGraph{
		Object: types.ObjectTable,
		Primitives: []types.ScenePrimitive{
			{Label: "b", Kind: types.KindBox, Center: [3]float64{0, 0, 5}, Size: [3]float64{10, 10, 10}},
		},
	}
	out, err := Synthesize(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Normals) != len(out.Faces) {
		t.Fatalf("normals = %d, faces = %d", len(out.Normals), len(out.Faces))
	}
	// Every face normal should point away from the box center.
	center := types.Vec3{X: 0, Y: 0, Z: 5}
	for i, f := range out.Faces {
		v := out.Vertices[f[0]]
		toFace := types.Vec3{X: v.X - center.X, Y: v.Y - center.Y, Z: v.Z - center.Z}
		n := out.Normals[i]
		dot := toFace.X*n.X + toFace.Y*n.Y + toFace.Z*n.Z
		if dot <= 0 {
			t.Errorf("face %d normal points inward", i)
		}
	}
}

func TestCylinderMeshCounts(t *testing.T) {
	m := cylinderMesh(60, 75, 16)
	if len(m.verts) != 2*16+2 {
		t.Errorf("vertices = %d, want %d", len(m.verts), 2*16+2)
	}
	// Two side triangles and two cap triangles per segment.
	if len(m.faces) != 4*16 {
		t.Errorf("faces = %d, want %d", len(m.faces), 4*16)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	spec := types.CanonicalSpec{
		Object: types.ObjectSofa,
		Length: dim(200), Width: dim(80), Height: dim(80),
		Features: types.FeatureSet{Seats: 2, HasArmrest: true},
	}
	g, err := scene.Build(spec, "sofa")
	if err != nil {
		t.Fatal(err)
	}
	a, err := Synthesize(g, 32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Synthesize(g, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same scene produced different meshes")
	}
}

func TestRoundedBoxIsSubdivided(t *testing.T) {
	plain := boxMesh(100, 80, 36)
	sub := subdivide(plain)
	if len(sub.faces) != 4*len(plain.faces) {
		t.Errorf("subdivided faces = %d, want %d", len(sub.faces), 4*len(plain.faces))
	}
	// Shared midpoints: 8 corners + one midpoint per unique edge.
	if len(sub.verts) >= len(plain.verts)+3*len(plain.faces) {
		t.Errorf("midpoints not shared: %d vertices", len(sub.verts))
	}
}

func TestSmoothShrinksCorners(t *testing.T) {
	m := subdivide(boxMesh(10, 10, 10))
	before := maxRadius(m.verts)
	smooth(&m, 0.2, 3)
	after := maxRadius(m.verts)
	if after >= before {
		t.Errorf("smoothing did not pull corners in: %g -> %g", before, after)
	}
}

func maxRadius(verts []types.Vec3) float64 {
	r := 0.0
	for _, v := range verts {
		r = math.Max(r, math.Sqrt(v.X*v.X+v.Y*v.Y+v.Z*v.Z))
	}
	return r
}

func TestWallOpeningLeavesHole(t *testing.T) {
	spec := types.CanonicalSpec{
		Object: types.ObjectRoom,
		Length: dim(400), Width: dim(500), Height: dim(300),
		Features: types.FeatureSet{Doors: 1, DoorSide: types.SideWest},
	}
	g, err := scene.Build(spec, "room")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Synthesize(g, 8)
	if err != nil {
		t.Fatal(err)
	}

	// The door occupies the center of the west wall from the floor up to
	// 85% of the wall height. No vertex may sit inside that void.
	doorHalf := scene.DoorWidth / 2
	doorTop := scene.RoomDoorHeightFraction * 300
	for _, v := range out.Vertices {
		if v.X < -200 && v.X > -200-scene.RoomWallThickness &&
			v.Y > -doorHalf+1 && v.Y < doorHalf-1 &&
			v.Z > 1 && v.Z < doorTop-1 {
			t.Fatalf("vertex (%g, %g, %g) lies inside the door opening", v.X, v.Y, v.Z)
		}
	}

	// The lintel above the door must exist: some vertex directly above
	// the opening between door top and wall top.
	found := false
	for _, v := range out.Vertices {
		if v.X <= -200 && v.Y >= -doorHalf && v.Y <= doorHalf && v.Z >= doorTop {
			found = true
			break
		}
	}
	if !found {
		t.Error("no wall geometry above the door opening")
	}
}

func TestSketchOnlySkipped(t *testing.T) {
	g := types.SceneGraph{
		Primitives: []types.ScenePrimitive{
			{Label: "p", Kind: types.KindPlane, Size: [3]float64{100, 2, 300}, SketchOnly: true},
		},
	}
	out, err := Synthesize(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Vertices) != 0 {
		t.Errorf("sketch-only primitive produced %d vertices", len(out.Vertices))
	}
}
