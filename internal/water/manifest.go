package water

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest describes a laid-out field for a renderer: the mesh file every tile
// shares, the material parameters and one entry per tile.
type Manifest struct {
	Mesh     ManifestMesh   `yaml:"mesh"`
	Material map[string]any `yaml:"material"`
	Tiles    []ManifestTile `yaml:"tiles"`
}

// ManifestMesh names the shared mesh and its dimensions.
type ManifestMesh struct {
	File         string  `yaml:"file,omitempty"`
	SideLength   float32 `yaml:"side_length"`
	SegmentCount int     `yaml:"segment_count"`
	Vertices     int     `yaml:"vertices"`
	Indices      int     `yaml:"indices"`
}

// ManifestTile is one tile placement.
type ManifestTile struct {
	Name     string      `yaml:"name"`
	Position [3]float32  `yaml:"position,flow"`
	Scale    [3]float32  `yaml:"scale,flow"`
	Model    [16]float32 `yaml:"model,flow"`
}

// Manifest builds the manifest for the field. meshFile may be empty.
func (f *Field) Manifest(material Material, meshFile string) Manifest {
	m := Manifest{
		Mesh: ManifestMesh{
			File:         meshFile,
			SideLength:   f.Mesh.SideLength,
			SegmentCount: f.Mesh.SegmentCount,
			Vertices:     len(f.Mesh.Vertices),
			Indices:      len(f.Mesh.Indices),
		},
		Material: material.Uniforms(),
		Tiles:    make([]ManifestTile, 0, len(f.Tiles)),
	}
	for i := range f.Tiles {
		t := &f.Tiles[i]
		m.Tiles = append(m.Tiles, ManifestTile{
			Name:     t.Name,
			Position: t.Position.Array(),
			Scale:    t.Scale.Array(),
			Model:    t.Model(),
		})
	}
	return m
}

// WriteManifest writes the field manifest as YAML.
func (f *Field) WriteManifest(w io.Writer, material Material, meshFile string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f.Manifest(material, meshFile)); err != nil {
		return err
	}
	return enc.Close()
}
