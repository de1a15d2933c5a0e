package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/lowpoly-water/pkg/planemesh"
)

// WriteOBJ writes the mesh as a Wavefront OBJ. Face indices are 1-based and keep
// the generator's winding.
func WriteOBJ(w io.Writer, m *planemesh.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# lowpoly-water plane: side %g, %d segments\n", m.SideLength, m.SegmentCount)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(m.Vertices), m.TriangleCount())
	fmt.Fprintln(bw, "o water")

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	// All vertices share the plane normal.
	fmt.Fprintln(bw, "vn 0 0 1")

	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		fmt.Fprintf(bw, "f %d//1 %d//1 %d//1\n", int(tri[0])+1, int(tri[1])+1, int(tri[2])+1)
	}

	return bw.Flush()
}
