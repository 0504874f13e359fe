// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// rgb is a diffuse color in the 0..1 range.
type rgb struct {
	r, g, b float64
}

// materialColors assigns each object type a diffuse color: wood tones for
// furniture, fabric blue for sofas, plaster tones for buildings.
var materialColors = map[types.ObjectType]rgb{
	types.ObjectChair:   {0.63, 0.45, 0.28},
	types.ObjectTable:   {0.55, 0.38, 0.22},
	types.ObjectSofa:    {0.35, 0.42, 0.58},
	types.ObjectCabinet: {0.45, 0.32, 0.20},
	types.ObjectShelf:   {0.50, 0.36, 0.24},
	types.ObjectRoom:    {0.80, 0.80, 0.78},
	types.ObjectHouse:   {0.75, 0.72, 0.68},
}

var defaultColor = rgb{0.60, 0.60, 0.60}

// MaterialName returns the material identifier shared between an OBJ file
// and its MTL library.
func MaterialName(object types.ObjectType) string {
	if object == "" {
		return "default"
	}
	return string(object)
}

// WriteOBJ emits the mesh as Wavefront OBJ referencing mtlLib for its
// material. OBJ face indices are 1-based.
func WriteOBJ(w io.Writer, name, mtlLib string, object types.ObjectType, m types.MeshGeometry) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "mtllib %s\n", mtlLib)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	fmt.Fprintf(bw, "usemtl %s\n", MaterialName(object))
	for i, f := range m.Faces {
		// Each face reuses its own normal for all three vertices.
		ni := i + 1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
			f[0]+1, ni, f[1]+1, ni, f[2]+1, ni)
	}

	return bw.Flush()
}

// WriteMTL emits the material library for an exported object.
func WriteMTL(w io.Writer, object types.ObjectType) error {
	c, ok := materialColors[object]
	if !ok {
		c = defaultColor
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "newmtl %s\n", MaterialName(object))
	fmt.Fprintf(bw, "Kd %g %g %g\n", c.r, c.g, c.b)
	fmt.Fprintln(bw, "Ka 0.1 0.1 0.1")
	fmt.Fprintln(bw, "Ks 0.2 0.2 0.2")
	fmt.Fprintln(bw, "Ns 10")
	return bw.Flush()
}
