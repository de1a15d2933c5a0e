package planemesh

import (
	"github.com/Faultbox/lowpoly-water/pkg/math"
)

// Generate builds a square plane of the given side length split into
// segmentCount x segmentCount cells.
//
// It returns a *DimensionError when segmentCount is below 1, sideLength is not a
// positive finite number, or segmentCount*segmentCount reaches MaxIndex. No
// mesh is returned on error.
func Generate(sideLength float32, segmentCount int) (*Mesh, error) {
	if err := validate(sideLength, segmentCount); err != nil {
		return nil, err
	}

	n := segmentCount
	cellSize := sideLength / float32(n)
	offset := sideLength / 2

	vertices := make([]math.Vec3, 0, VertexCount(n))
	for row := 0; row <= n; row++ {
		for col := 0; col <= n; col++ {
			vertices = append(vertices, math.Vec3{
				X: float32(col)*cellSize - offset,
				Y: float32(row)*cellSize - offset,
				Z: 0,
			})
		}
	}

	stride := uint16(n + 1)
	indices := make([]uint16, 0, IndexCount(n))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			bl := uint16(row*(n+1) + col)
			br := bl + 1
			tl := bl + stride
			tr := tl + 1

			indices = append(indices,
				br, tl, bl,
				tl, br, tr,
			)
		}
	}

	return &Mesh{
		Vertices:     vertices,
		Indices:      indices,
		SideLength:   sideLength,
		SegmentCount: n,
	}, nil
}

func validate(sideLength float32, segmentCount int) error {
	switch {
	case segmentCount < 1:
		return &DimensionError{SideLength: sideLength, SegmentCount: segmentCount, Err: ErrInvalidDimension}
	case !math.IsFinite(sideLength) || sideLength <= 0:
		return &DimensionError{SideLength: sideLength, SegmentCount: segmentCount, Err: ErrInvalidDimension}
	case segmentCount >= MaxIndex || segmentCount*segmentCount >= MaxIndex:
		return &DimensionError{SideLength: sideLength, SegmentCount: segmentCount, Err: ErrIndexRange}
	}
	return nil
}
