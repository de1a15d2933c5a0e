package config

import (
	"flag"
	"strings"
)

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagSide        = flag.Float64("side", 0, "Tile side length")
	flagSegments    = flag.Int("segments", 0, "Segments per tile side")
	flagOut         = flag.String("out", "", "Output directory")
	flagFormats     = flag.String("formats", "", "Comma-separated output formats (obj,lpwm,png,webp)")
	flagPreviewSize = flag.Int("preview-size", 0, "Preview image size in pixels")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSide > 0 {
		cfg.Mesh.SideLength = float32(*flagSide)
	}
	if *flagSegments > 0 {
		cfg.Mesh.SegmentCount = *flagSegments
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagFormats != "" {
		var formats []string
		for _, f := range strings.Split(*flagFormats, ",") {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				formats = append(formats, f)
			}
		}
		cfg.Output.Formats = formats
	}
	if *flagPreviewSize > 0 {
		cfg.Output.PreviewSize = *flagPreviewSize
	}
}
