// Package planemesh tessellates a square plane into a regular grid of triangles
// for use as a water tile.
//
// Vertices are laid out row-major over a (n+1) x (n+1) grid centred on the
// origin in the XY plane, and every grid cell is covered by two triangles whose
// indices fit in 16 bits.
package planemesh

import (
	"github.com/Faultbox/lowpoly-water/pkg/math"
)

// MaxIndex is the bound on segmentCount*segmentCount; it is the largest value of
// the 16-bit index type.
const MaxIndex = 65535

// MaxSegmentCount is the largest segment count Generate accepts.
const MaxSegmentCount = 255

// Mesh is a generated plane. Vertices and Indices are owned by the caller.
type Mesh struct {
	Vertices     []math.Vec3
	Indices      []uint16 // Triangle list, three indices per triangle
	SideLength   float32
	SegmentCount int
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// VertexCount returns the number of vertices for a segment count.
func VertexCount(segmentCount int) int {
	return (segmentCount + 1) * (segmentCount + 1)
}

// IndexCount returns the number of indices for a segment count.
func IndexCount(segmentCount int) int {
	return segmentCount * segmentCount * 6
}

// CellSize returns the edge length of one grid cell.
func (m *Mesh) CellSize() float32 {
	return m.SideLength / float32(m.SegmentCount)
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertex indices of triangle i in emission order.
func (m *Mesh) Triangle(i int) [3]uint16 {
	return [3]uint16{m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]}
}

// Vertex returns the vertex at grid position (row, col).
func (m *Mesh) Vertex(row, col int) math.Vec3 {
	return m.Vertices[row*(m.SegmentCount+1)+col]
}

// Bounds returns the bounding box of the current vertex positions.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}

// Clone returns a deep copy. Renderers that displace vertices per frame work on
// a clone so a mesh shared between tiles stays untouched.
func (m *Mesh) Clone() *Mesh {
	c := *m
	c.Vertices = append([]math.Vec3(nil), m.Vertices...)
	c.Indices = append([]uint16(nil), m.Indices...)
	return &c
}
