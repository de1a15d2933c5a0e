package meshio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Image formats understood by EncodeImage.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// ErrUnknownFormat is returned for unsupported image or export formats.
var ErrUnknownFormat = errors.New("unknown format")

// EncodeImage encodes img as PNG or WebP.
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SaveImage writes img to path, choosing the encoder from the file extension.
func SaveImage(path string, img image.Image) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format != FormatPNG && format != FormatWebP {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeImage(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
