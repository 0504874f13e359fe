// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mesh triangulates a scene graph into a single 3D mesh. Walls are
// segmented around their openings so doors and windows appear as real
// holes, and rounded primitives get one subdivision pass plus Laplacian
// smoothing. Primitives are processed in graph order and every step is
// order-stable, so identical graphs produce identical meshes. See
// docs/ARCHITECTURE § Mesh Synthesizer.
package mesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// DefaultSegments is the radial resolution for cylinder primitives.
const DefaultSegments = 32

// subMesh is a primitive's triangulation in local coordinates before it is
// rotated and translated into the world.
type subMesh struct {
	verts []types.Vec3
	faces [][3]int
}

// Synthesize triangulates every solid primitive of the graph. Sketch-only
// primitives and openings contribute no geometry of their own; openings
// shape the triangulation of their host wall instead.
func Synthesize(g types.SceneGraph, segments int) (types.MeshGeometry, error) {
	if segments <= 0 {
		segments = DefaultSegments
	}

	var out types.MeshGeometry
	for _, p := range g.Primitives {
		if p.SketchOnly || p.Kind == types.KindOpening {
			continue
		}

		var sub subMesh
		switch p.Kind {
		case types.KindBox:
			sub = boxMesh(p.Size[0], p.Size[1], p.Size[2])
			if p.Rounded {
				sub = subdivide(sub)
				smooth(&sub, 0.2, 3)
			}
		case types.KindCylinder:
			sub = cylinderMesh(p.Size[0]/2, p.Size[2], segments)
		case types.KindPlane:
			if p.Flat {
				sub = boxMesh(p.Size[0], p.Size[1], p.Size[2])
			} else {
				sub = wallMesh(g, p)
			}
		default:
			return types.MeshGeometry{}, fmt.Errorf("unknown primitive kind %q on %s", p.Kind, p.Label)
		}

		appendSub(&out, sub, p.Rotation, p.Center)
	}

	out.Normals = faceNormals(out)
	return out, nil
}

// appendSub rotates the submesh about Z, translates it to center, and
// merges it into the output.
func appendSub(out *types.MeshGeometry, sub subMesh, rotation float64, center [3]float64) {
	offset := len(out.Vertices)

	sin, cos := 0.0, 1.0
	if rotation != 0 {
		rad := rotation * math.Pi / 180
		sin, cos = math.Sin(rad), math.Cos(rad)
	}

	for _, v := range sub.verts {
		out.Vertices = append(out.Vertices, types.Vec3{
			X: v.X*cos - v.Y*sin + center[0],
			Y: v.X*sin + v.Y*cos + center[1],
			Z: v.Z + center[2],
		})
	}
	for _, f := range sub.faces {
		out.Faces = append(out.Faces, [3]int{f[0] + offset, f[1] + offset, f[2] + offset})
	}
}

// boxMesh builds an origin-centered box of the given extents: 8 vertices,
// 12 triangles wound counterclockwise seen from outside.
func boxMesh(sx, sy, sz float64) subMesh {
	x, y, z := sx/2, sy/2, sz/2
	return subMesh{
		verts: []types.Vec3{
			{X: -x, Y: -y, Z: -z}, {X: x, Y: -y, Z: -z}, {X: x, Y: y, Z: -z}, {X: -x, Y: y, Z: -z},
			{X: -x, Y: -y, Z: z}, {X: x, Y: -y, Z: z}, {X: x, Y: y, Z: z}, {X: -x, Y: y, Z: z},
		},
		faces: [][3]int{
			{0, 2, 1}, {0, 3, 2}, // bottom
			{4, 5, 6}, {4, 6, 7}, // top
			{0, 1, 5}, {0, 5, 4}, // south
			{2, 3, 7}, {2, 7, 6}, // north
			{0, 4, 7}, {0, 7, 3}, // west
			{1, 2, 6}, {1, 6, 5}, // east
		},
	}
}

// cylinderMesh builds an origin-centered vertical cylinder with n radial
// segments, closed by triangle-fan caps.
func cylinderMesh(radius, height float64, n int) subMesh {
	var m subMesh
	h := height / 2

	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x, y := radius*math.Cos(angle), radius*math.Sin(angle)
		m.verts = append(m.verts, types.Vec3{X: x, Y: y, Z: -h})
	}
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x, y := radius*math.Cos(angle), radius*math.Sin(angle)
		m.verts = append(m.verts, types.Vec3{X: x, Y: y, Z: h})
	}
	bottomCenter := len(m.verts)
	m.verts = append(m.verts, types.Vec3{Z: -h}, types.Vec3{Z: h})
	topCenter := bottomCenter + 1

	for i := range n {
		j := (i + 1) % n
		bi, bj, ti, tj := i, j, i+n, j+n
		m.faces = append(m.faces,
			[3]int{bi, bj, tj}, [3]int{bi, tj, ti},
			[3]int{bottomCenter, bj, bi},
			[3]int{topCenter, ti, tj})
	}
	return m
}

// wallMesh triangulates a vertical wall, cutting out the openings bound to
// it. The wall is split into vertical bands at opening edges; bands under
// an opening contribute sill and lintel boxes, the rest full-height boxes.
func wallMesh(g types.SceneGraph, wall types.ScenePrimitive) subMesh {
	span, thickness, height := wall.Size[0], wall.Size[1], wall.Size[2]
	alongX := wall.Rotation != 90 && wall.Rotation != 270

	type hole struct {
		lo, hi   float64 // along the span axis, local
		zlo, zhi float64 // local z, wall-centered
	}
	var holes []hole
	for _, o := range g.Primitives {
		if o.Kind != types.KindOpening || o.Wall != wall.Label {
			continue
		}
		c := o.Center[1] - wall.Center[1]
		if alongX {
			c = o.Center[0] - wall.Center[0]
		}
		zc := o.Center[2] - wall.Center[2]
		holes = append(holes, hole{
			lo: c - o.Size[0]/2, hi: c + o.Size[0]/2,
			zlo: zc - o.Size[2]/2, zhi: zc + o.Size[2]/2,
		})
	}

	var m subMesh
	addPiece := func(ulo, uhi, zlo, zhi float64) {
		if uhi-ulo <= 0 || zhi-zlo <= 0 {
			return
		}
		piece := boxMesh(uhi-ulo, thickness, zhi-zlo)
		for i := range piece.verts {
			piece.verts[i].X += (ulo + uhi) / 2
			piece.verts[i].Z += (zlo + zhi) / 2
		}
		offset := len(m.verts)
		m.verts = append(m.verts, piece.verts...)
		for _, f := range piece.faces {
			m.faces = append(m.faces, [3]int{f[0] + offset, f[1] + offset, f[2] + offset})
		}
	}

	// Band edges at the wall ends and every opening side, in span order.
	edges := []float64{-span / 2, span / 2}
	for _, h := range holes {
		edges = append(edges, h.lo, h.hi)
	}
	sort.Float64s(edges)

	for i := 0; i+1 < len(edges); i++ {
		ulo, uhi := edges[i], edges[i+1]
		if uhi-ulo <= 0 {
			continue
		}
		mid := (ulo + uhi) / 2

		covered := false
		for _, h := range holes {
			if mid > h.lo && mid < h.hi {
				addPiece(ulo, uhi, -height/2, h.zlo)
				addPiece(ulo, uhi, h.zhi, height/2)
				covered = true
				break
			}
		}
		if !covered {
			addPiece(ulo, uhi, -height/2, height/2)
		}
	}
	return m
}

// faceNormals computes one outward unit normal per face. Degenerate faces
// get a zero normal rather than NaN.
func faceNormals(m types.MeshGeometry) []types.Vec3 {
	normals := make([]types.Vec3, len(m.Faces))
	for i, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
		vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
		nx, ny, nz := uy*vz-uz*vy, uz*vx-ux*vz, ux*vy-uy*vx
		length := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if length > 0 {
			normals[i] = types.Vec3{X: nx / length, Y: ny / length, Z: nz / length}
		}
	}
	return normals
}
