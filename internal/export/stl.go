// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// WriteSTL emits the mesh as ASCII STL under the given solid name. One
// facet per triangle, using the mesh's precomputed face normals.
func WriteSTL(w io.Writer, name string, m types.MeshGeometry) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", name)
	for i, f := range m.Faces {
		n := m.Normals[i]
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintln(bw, "    outer loop")
		for _, idx := range f {
			v := m.Vertices[idx]
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	return bw.Flush()
}
