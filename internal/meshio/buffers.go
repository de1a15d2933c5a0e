// Package meshio writes generated plane meshes to files an external renderer
// can load, and renders top-down previews for inspection.
package meshio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/lowpoly-water/pkg/math"
	"github.com/Faultbox/lowpoly-water/pkg/planemesh"
)

// LPWM buffer errors.
var (
	ErrInvalidMagic       = errors.New("invalid LPWM magic: expected 'LPWM'")
	ErrUnsupportedVersion = errors.New("unsupported LPWM version")
	ErrTruncatedBuffer    = errors.New("truncated LPWM data")
	ErrCorruptBuffer      = errors.New("corrupt LPWM data")
)

const (
	bufferMagic        = "LPWM"
	bufferVersionMajor = 1
	bufferVersionMinor = 0
	bufferHeaderSize   = 4 + 2 + 4 + 4 + 4 + 4
)

// bufferHeader follows the magic and version bytes.
type bufferHeader struct {
	SideLength   float32
	SegmentCount uint32
	VertexCount  uint32
	IndexCount   uint32
}

// WriteBuffers writes the mesh as little-endian GPU-ready buffers:
//
//	"LPWM" minor major
//	side_length f32, segment_count u32, vertex_count u32, index_count u32
//	vertex_count * (x, y, z f32)
//	index_count * u16
func WriteBuffers(w io.Writer, m *planemesh.Mesh) error {
	if _, err := io.WriteString(w, bufferMagic); err != nil {
		return err
	}
	if _, err := w.Write([]byte{bufferVersionMinor, bufferVersionMajor}); err != nil {
		return err
	}

	hdr := bufferHeader{
		SideLength:   m.SideLength,
		SegmentCount: uint32(m.SegmentCount),
		VertexCount:  uint32(len(m.Vertices)),
		IndexCount:   uint32(len(m.Indices)),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, m.Vertices); err != nil {
		return fmt.Errorf("writing vertices: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, m.Indices); err != nil {
		return fmt.Errorf("writing indices: %w", err)
	}
	return nil
}

// ParseBuffers parses LPWM data written by WriteBuffers.
func ParseBuffers(data []byte) (*planemesh.Mesh, error) {
	if len(data) < bufferHeaderSize {
		return nil, ErrTruncatedBuffer
	}
	if string(data[0:4]) != bufferMagic {
		return nil, ErrInvalidMagic
	}
	// Version is stored as [minor, major]
	if data[5] != bufferVersionMajor {
		return nil, fmt.Errorf("%w: %d.%d", ErrUnsupportedVersion, data[5], data[4])
	}

	r := bytes.NewReader(data[6:])

	var hdr bufferHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: reading header", ErrTruncatedBuffer)
	}

	n := int(hdr.SegmentCount)
	if n < 1 || n > planemesh.MaxSegmentCount {
		return nil, fmt.Errorf("%w: segment count %d", ErrCorruptBuffer, n)
	}
	if int(hdr.VertexCount) != planemesh.VertexCount(n) || int(hdr.IndexCount) != planemesh.IndexCount(n) {
		return nil, fmt.Errorf("%w: %d vertices / %d indices for %d segments",
			ErrCorruptBuffer, hdr.VertexCount, hdr.IndexCount, n)
	}

	m := &planemesh.Mesh{
		Vertices:     make([]math.Vec3, hdr.VertexCount),
		Indices:      make([]uint16, hdr.IndexCount),
		SideLength:   hdr.SideLength,
		SegmentCount: n,
	}
	if err := binary.Read(r, binary.LittleEndian, m.Vertices); err != nil {
		return nil, fmt.Errorf("%w: reading vertices", ErrTruncatedBuffer)
	}
	if err := binary.Read(r, binary.LittleEndian, m.Indices); err != nil {
		return nil, fmt.Errorf("%w: reading indices", ErrTruncatedBuffer)
	}

	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return nil, fmt.Errorf("%w: index %d = %d out of range", ErrCorruptBuffer, i, idx)
		}
	}

	return m, nil
}

// ParseBuffersFile parses an LPWM file from disk.
func ParseBuffersFile(path string) (*planemesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading LPWM file: %w", err)
	}
	return ParseBuffers(data)
}
