// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mesh

import "github.com/pdiddy/cad-engine/pkg/types"

// subdivide splits every triangle into four by inserting edge midpoints.
// Midpoints are shared between adjacent faces so the surface stays
// watertight.
func subdivide(m subMesh) subMesh {
	out := subMesh{verts: append([]types.Vec3(nil), m.verts...)}

	type edge struct{ a, b int }
	midpoints := make(map[edge]int)

	mid := func(a, b int) int {
		key := edge{a, b}
		if a > b {
			key = edge{b, a}
		}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		va, vb := out.verts[a], out.verts[b]
		idx := len(out.verts)
		out.verts = append(out.verts, types.Vec3{
			X: (va.X + vb.X) / 2,
			Y: (va.Y + vb.Y) / 2,
			Z: (va.Z + vb.Z) / 2,
		})
		midpoints[key] = idx
		return idx
	}

	for _, f := range m.faces {
		ab := mid(f[0], f[1])
		bc := mid(f[1], f[2])
		ca := mid(f[2], f[0])
		out.faces = append(out.faces,
			[3]int{f[0], ab, ca},
			[3]int{ab, f[1], bc},
			[3]int{ca, bc, f[2]},
			[3]int{ab, bc, ca})
	}
	return out
}

// smooth applies uniform-weight Laplacian smoothing in place: each vertex
// moves toward the average of its edge neighbors by lambda per iteration.
func smooth(m *subMesh, lambda float64, iterations int) {
	neighbors := make([][]int, len(m.verts))
	seen := make(map[[2]int]bool)
	addEdge := func(a, b int) {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if seen[key] {
			return
		}
		seen[key] = true
		neighbors[a] = append(neighbors[a], b)
		neighbors[b] = append(neighbors[b], a)
	}
	for _, f := range m.faces {
		addEdge(f[0], f[1])
		addEdge(f[1], f[2])
		addEdge(f[2], f[0])
	}

	for range iterations {
		next := make([]types.Vec3, len(m.verts))
		for i, v := range m.verts {
			ns := neighbors[i]
			if len(ns) == 0 {
				next[i] = v
				continue
			}
			var ax, ay, az float64
			for _, n := range ns {
				ax += m.verts[n].X
				ay += m.verts[n].Y
				az += m.verts[n].Z
			}
			inv := 1 / float64(len(ns))
			next[i] = types.Vec3{
				X: v.X + lambda*(ax*inv-v.X),
				Y: v.Y + lambda*(ay*inv-v.Y),
				Z: v.Z + lambda*(az*inv-v.Z),
			}
		}
		m.verts = next
	}
}
