// watermesh generates low-poly water tile meshes and exports them for a renderer.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-water/internal/config"
	"github.com/Faultbox/lowpoly-water/internal/logger"
	"github.com/Faultbox/lowpoly-water/internal/meshio"
	"github.com/Faultbox/lowpoly-water/internal/water"
	"github.com/Faultbox/lowpoly-water/pkg/planemesh"
)

func main() {
	config.ParseFlags()
	os.Exit(run(config.Args()))
}

func run(args []string) int {
	command := "generate"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "init-config":
		return cmdInitConfig(args)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger.Init(cfg.Logging)
	defer logger.Sync()

	switch command {
	case "generate", "gen":
		err = cmdGenerate(cfg)
	case "info":
		err = cmdInfo(cfg)
	case "tiles":
		err = cmdTiles(cfg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Println(`watermesh - low-poly water tile mesh generator

Usage:
  watermesh [flags] <command>

Commands:
  generate              Generate the tile mesh and write all outputs (default)
  info                  Show mesh statistics
  tiles                 List tile placements of the water field
  init-config [path]    Write the default config (to the user config dir if no path)

Flags:
  -config <file>        Config file (default ./watermesh.yaml or user config dir)
  -side <n>             Tile side length
  -segments <n>         Segments per tile side (1-255)
  -out <dir>            Output directory
  -formats <list>       Comma-separated outputs: obj,lpwm,png,webp
  -preview-size <px>    Preview image size
  -debug                Enable debug logging

Examples:
  watermesh -segments 16 -formats obj,webp generate
  watermesh -side 2 -segments 2 info
  watermesh init-config ./watermesh.yaml`)
}

func buildField(cfg *config.Config) (*water.Field, error) {
	log := logger.Named("field")

	start := time.Now()
	field, err := water.NewField(cfg.WaterField())
	if err != nil {
		return nil, err
	}

	log.Debug("water field built",
		zap.Int("tiles", len(field.Tiles)),
		zap.Float32("side_length", field.Mesh.SideLength),
		zap.Int("segments", field.Mesh.SegmentCount),
		zap.Int("mesh_vertices", len(field.Mesh.Vertices)),
		zap.Int("mesh_indices", len(field.Mesh.Indices)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return field, nil
}

func cmdGenerate(cfg *config.Config) error {
	field, err := buildField(cfg)
	if err != nil {
		return err
	}

	paths, err := meshio.Export(field.Mesh, meshio.ExportOptions{
		Dir:     cfg.Output.Dir,
		Name:    cfg.Output.Name,
		Formats: cfg.Output.Formats,
		Preview: cfg.PreviewOptions(),
	})
	for _, p := range paths {
		logger.Info("wrote", zap.String("path", p))
	}
	if err != nil {
		return err
	}

	meshFile := ""
	for _, f := range cfg.Output.Formats {
		if f == meshio.FormatBuffers {
			meshFile = cfg.Output.Name + "." + meshio.FormatBuffers
		}
	}

	manifestPath := filepath.Join(cfg.Output.Dir, cfg.Output.Name+".field.yaml")
	f, err := os.Create(manifestPath)
	if err != nil {
		return err
	}
	if err := field.WriteManifest(f, cfg.Material, meshFile); err != nil {
		f.Close()
		return fmt.Errorf("writing manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote", zap.String("path", manifestPath))

	logger.Info("generation complete",
		zap.Int("tiles", len(field.Tiles)),
		zap.Int("field_triangles", field.TriangleCount()),
	)
	return nil
}

func cmdInfo(cfg *config.Config) error {
	field, err := buildField(cfg)
	if err != nil {
		return err
	}
	m := field.Mesh
	b := m.Bounds()
	ext := field.Extent()

	fmt.Printf("Side length:   %g\n", m.SideLength)
	fmt.Printf("Segments:      %d (max %d)\n", m.SegmentCount, planemesh.MaxSegmentCount)
	fmt.Printf("Cell size:     %g\n", m.CellSize())
	fmt.Printf("Vertices:      %d\n", len(m.Vertices))
	fmt.Printf("Indices:       %d (%d bytes)\n", len(m.Indices), len(m.Indices)*2)
	fmt.Printf("Triangles:     %d\n", m.TriangleCount())
	fmt.Printf("Bounds:        (%g, %g) - (%g, %g)\n", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	fmt.Println()
	fmt.Printf("Field:         %d x %d tiles\n", cfg.Field.Columns, cfg.Field.Rows)
	fmt.Printf("Field extent:  (%g, %g) - (%g, %g)\n", ext.Min.X, ext.Min.Y, ext.Max.X, ext.Max.Y)
	fmt.Printf("Field tris:    %d\n", field.TriangleCount())
	return nil
}

func cmdTiles(cfg *config.Config) error {
	field, err := buildField(cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tROW\tCOL\tX\tY")
	for _, t := range field.Tiles {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%g\t%g\n", t.Name, t.Row, t.Column, t.Position.X, t.Position.Y)
	}
	return tw.Flush()
}

func cmdInitConfig(args []string) int {
	cfg := config.Default()

	var err error
	path := ""
	if len(args) > 0 {
		path = args[0]
		err = cfg.SaveTo(path)
	} else {
		path = filepath.Join(config.ConfigDir(), "watermesh.yaml")
		err = cfg.Save()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Wrote %s\n", path)
	return 0
}
