// Package config handles watermesh configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/lowpoly-water/internal/meshio"
	"github.com/Faultbox/lowpoly-water/internal/water"
	"github.com/Faultbox/lowpoly-water/pkg/math"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all watermesh settings.
type Config struct {
	Mesh     MeshConfig     `yaml:"mesh"`
	Field    FieldConfig    `yaml:"field"`
	Material water.Material `yaml:"material"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// MeshConfig holds the plane tessellation parameters.
type MeshConfig struct {
	SideLength   float32 `yaml:"side_length"`
	SegmentCount int     `yaml:"segment_count"`
}

// FieldConfig holds the tile grid size.
type FieldConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir         string   `yaml:"dir"`
	Name        string   `yaml:"name"`
	Formats     []string `yaml:"formats"`
	PreviewSize int      `yaml:"preview_size"`
	Supersample int      `yaml:"supersample"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config for a 13 x 7 field of 1024-unit tiles.
func Default() *Config {
	field := water.DefaultFieldConfig()
	return &Config{
		Mesh: MeshConfig{
			SideLength:   field.SideLength,
			SegmentCount: field.SegmentCount,
		},
		Field: FieldConfig{
			Columns: field.Columns,
			Rows:    field.Rows,
		},
		Material: water.DefaultMaterial(),
		Output: OutputConfig{
			Dir:         "out",
			Name:        "water",
			Formats:     []string{meshio.FormatOBJ, meshio.FormatBuffers, meshio.FormatPNG},
			PreviewSize: 512,
			Supersample: 2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// WaterField returns the water field layout described by the config.
func (c *Config) WaterField() water.FieldConfig {
	return water.FieldConfig{
		Columns:      c.Field.Columns,
		Rows:         c.Field.Rows,
		SideLength:   c.Mesh.SideLength,
		SegmentCount: c.Mesh.SegmentCount,
	}
}

// PreviewOptions returns preview rendering options for the configured size.
func (c *Config) PreviewOptions() meshio.PreviewOptions {
	opts := meshio.DefaultPreviewOptions()
	opts.Size = c.Output.PreviewSize
	opts.Supersample = c.Output.Supersample
	return opts
}

// Validate checks settings that cannot be fixed up later. Mesh dimensions are
// checked by the generator itself.
func (c *Config) Validate() error {
	if c.Field.Columns < 1 || c.Field.Rows < 1 {
		return fmt.Errorf("%w: field must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Field.Columns, c.Field.Rows)
	}
	if !math.IsFinite(c.Mesh.SideLength) || c.Mesh.SideLength <= 0 {
		return fmt.Errorf("%w: side_length must be positive, got %g", ErrInvalidConfig, c.Mesh.SideLength)
	}
	if c.Mesh.SegmentCount < 1 {
		return fmt.Errorf("%w: segment_count must be at least 1, got %d", ErrInvalidConfig, c.Mesh.SegmentCount)
	}
	if err := c.Material.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Output.PreviewSize < 1 || c.Output.Supersample < 1 {
		return fmt.Errorf("%w: preview_size and supersample must be positive", ErrInvalidConfig)
	}
	for _, f := range c.Output.Formats {
		if !knownFormat(f) {
			return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, f)
		}
	}
	return nil
}

func knownFormat(format string) bool {
	for _, f := range meshio.Formats {
		if f == format {
			return true
		}
	}
	return false
}
