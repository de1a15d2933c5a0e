// Package water lays out water tiles that share one generated plane mesh.
package water

import (
	"errors"
	"fmt"

	"github.com/Faultbox/lowpoly-water/pkg/math"
	"github.com/Faultbox/lowpoly-water/pkg/planemesh"
)

// ErrEmptyField is returned when a field has no rows or no columns.
var ErrEmptyField = errors.New("water field needs at least one row and one column")

// SeamScale is the X/Y tile scale used to reveal the seams between tiles.
const SeamScale = 0.9

// FieldConfig describes the tile grid and the mesh every tile uses.
type FieldConfig struct {
	Columns      int
	Rows         int
	SideLength   float32
	SegmentCount int
}

// DefaultFieldConfig returns a 13 x 7 field of 1024-unit tiles with 8 segments per side.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Columns:      13,
		Rows:         7,
		SideLength:   1024,
		SegmentCount: 8,
	}
}

// Tile is one placement of the shared plane mesh.
type Tile struct {
	Name     string
	Row      int
	Column   int
	Position math.Vec3
	Scale    math.Vec3
}

// Model returns the tile's model matrix (translate * scale).
func (t *Tile) Model() math.Mat4 {
	return math.Translate(t.Position).Mul(math.Scale(t.Scale))
}

// Field is a grid of tiles. Tiles are stored row-major.
type Field struct {
	Mesh  *planemesh.Mesh
	Tiles []Tile

	config      FieldConfig
	seamsShown  bool
	tilesByName map[string]int
}

// NewField generates the plane mesh once and places Columns x Rows tiles.
func NewField(cfg FieldConfig) (*Field, error) {
	if cfg.Columns < 1 || cfg.Rows < 1 {
		return nil, fmt.Errorf("%w: %d x %d", ErrEmptyField, cfg.Columns, cfg.Rows)
	}

	mesh, err := planemesh.Generate(cfg.SideLength, cfg.SegmentCount)
	if err != nil {
		return nil, fmt.Errorf("water plane: %w", err)
	}

	f := &Field{
		Mesh:        mesh,
		Tiles:       make([]Tile, 0, cfg.Columns*cfg.Rows),
		config:      cfg,
		tilesByName: make(map[string]int, cfg.Columns*cfg.Rows),
	}

	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			name := TileName(row, col)
			f.tilesByName[name] = len(f.Tiles)
			f.Tiles = append(f.Tiles, Tile{
				Name:     name,
				Row:      row,
				Column:   col,
				Position: math.Vec3{X: float32(col) * cfg.SideLength, Y: float32(row) * cfg.SideLength},
				Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
			})
		}
	}

	return f, nil
}

// TileName returns the name of the tile at (row, col).
func TileName(row, col int) string {
	return fmt.Sprintf("water-%d-%d", row, col)
}

// Config returns the configuration the field was built from.
func (f *Field) Config() FieldConfig {
	return f.config
}

// Lookup returns the tile with the given name.
func (f *Field) Lookup(name string) (*Tile, bool) {
	i, ok := f.tilesByName[name]
	if !ok {
		return nil, false
	}
	return &f.Tiles[i], true
}

// ShowSeams shrinks every tile to SeamScale in X and Y, or restores full size.
func (f *Field) ShowSeams(show bool) {
	s := float32(1)
	if show {
		s = SeamScale
	}
	for i := range f.Tiles {
		f.Tiles[i].Scale = math.Vec3{X: s, Y: s, Z: 1}
	}
	f.seamsShown = show
}

// SeamsShown reports whether tiles are currently shrunk.
func (f *Field) SeamsShown() bool {
	return f.seamsShown
}

// Extent returns the world-space bounds covered by all tiles.
func (f *Field) Extent() planemesh.Bounds {
	local := f.Mesh.Bounds()
	var ext planemesh.Bounds
	for i := range f.Tiles {
		model := f.Tiles[i].Model()
		lo := model.TransformPoint(local.Min)
		hi := model.TransformPoint(local.Max)
		if i == 0 {
			ext = planemesh.Bounds{Min: lo.Min(hi), Max: lo.Max(hi)}
			continue
		}
		ext.Min = ext.Min.Min(lo).Min(hi)
		ext.Max = ext.Max.Max(lo).Max(hi)
	}
	return ext
}

// VertexCount returns the total number of vertices drawn across the field.
func (f *Field) VertexCount() int {
	return len(f.Mesh.Vertices) * len(f.Tiles)
}

// TriangleCount returns the total number of triangles drawn across the field.
func (f *Field) TriangleCount() int {
	return f.Mesh.TriangleCount() * len(f.Tiles)
}
