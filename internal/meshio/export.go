package meshio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/lowpoly-water/pkg/planemesh"
)

// Mesh export formats. Image formats reuse FormatPNG and FormatWebP.
const (
	FormatOBJ     = "obj"
	FormatBuffers = "lpwm"
)

// Formats lists every format Export accepts.
var Formats = []string{FormatOBJ, FormatBuffers, FormatPNG, FormatWebP}

// ExportOptions controls Export.
type ExportOptions struct {
	Dir     string
	Name    string // Base file name without extension
	Formats []string
	Preview PreviewOptions
}

// Export writes the mesh once per requested format into opts.Dir and returns the
// written paths in request order. It stops at the first failure.
func Export(m *planemesh.Mesh, opts ExportOptions) ([]string, error) {
	for _, f := range opts.Formats {
		if !supported(f) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, err
	}

	var preview *image.NRGBA
	var paths []string
	for _, f := range opts.Formats {
		format := strings.ToLower(f)
		path := filepath.Join(opts.Dir, opts.Name+"."+format)

		var err error
		switch format {
		case FormatOBJ:
			err = writeFile(path, func(file *os.File) error { return WriteOBJ(file, m) })
		case FormatBuffers:
			err = writeFile(path, func(file *os.File) error { return WriteBuffers(file, m) })
		case FormatPNG, FormatWebP:
			if preview == nil {
				preview = RenderPreview(m, opts.Preview)
			}
			err = SaveImage(path, preview)
		}
		if err != nil {
			return paths, fmt.Errorf("exporting %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func supported(format string) bool {
	for _, f := range Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
