package meshio

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/Faultbox/lowpoly-water/pkg/math"
	"github.com/Faultbox/lowpoly-water/pkg/planemesh"
)

// PreviewOptions controls RenderPreview.
type PreviewOptions struct {
	Size        int // Output width and height in pixels
	Supersample int // Render at Size*Supersample, then downscale
	Margin      int // Border in output pixels
	EdgeWidth   float32

	Background color.NRGBA
	Front      color.NRGBA // Triangles wound counter-clockwise seen from +Z
	Back       color.NRGBA
	Edge       color.NRGBA
}

// DefaultPreviewOptions returns a 512px preview on the demo's sky colour.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Size:        512,
		Supersample: 2,
		Margin:      16,
		EdgeWidth:   1,
		Background:  color.NRGBA{153, 204, 255, 255},
		Front:       color.NRGBA{32, 96, 160, 255},
		Back:        color.NRGBA{200, 48, 48, 255},
		Edge:        color.NRGBA{235, 245, 255, 255},
	}
}

// RenderPreview draws the mesh seen from +Z with an orthographic projection.
// Each triangle is filled with the Front or Back colour depending on its
// winding, and every edge is stroked once.
func RenderPreview(m *planemesh.Mesh, opts PreviewOptions) *image.NRGBA {
	if opts.Size <= 0 {
		opts.Size = DefaultPreviewOptions().Size
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}

	size := opts.Size * opts.Supersample
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	if len(m.Vertices) > 0 && len(m.Indices) >= 3 {
		proj := newProjection(m.Bounds(), size, opts.Margin*opts.Supersample)
		fillTriangles(canvas, m, proj, opts)
		strokeEdges(canvas, m, proj, opts.EdgeWidth*float32(opts.Supersample), opts.Edge)
	}

	out := image.NewNRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	if opts.Supersample == 1 {
		draw.Draw(out, out.Bounds(), canvas, image.Point{}, draw.Src)
	} else {
		draw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	}
	return out
}

// projection maps plane-local XY to pixel coordinates with +Y pointing up.
type projection struct {
	min    math.Vec3
	scale  float32
	margin float32
	size   float32
}

func newProjection(b planemesh.Bounds, size, margin int) projection {
	span := b.Max.X - b.Min.X
	if h := b.Max.Y - b.Min.Y; h > span {
		span = h
	}
	if span <= 0 {
		span = 1
	}
	return projection{
		min:    b.Min,
		scale:  float32(size-2*margin) / span,
		margin: float32(margin),
		size:   float32(size),
	}
}

func (p projection) point(v math.Vec3) (float32, float32) {
	x := p.margin + (v.X-p.min.X)*p.scale
	y := p.size - p.margin - (v.Y-p.min.Y)*p.scale
	return x, y
}

func fillTriangles(dst *image.RGBA, m *planemesh.Mesh, proj projection, opts PreviewOptions) {
	b := dst.Bounds()
	front := vector.NewRasterizer(b.Dx(), b.Dy())
	back := vector.NewRasterizer(b.Dx(), b.Dy())
	var frontCount, backCount int

	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		a, c1, c2 := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]

		z := c1.Sub(a).Cross(c2.Sub(a)).Z
		r := front
		if z > 0 {
			frontCount++
		} else {
			r = back
			backCount++
		}

		x0, y0 := proj.point(a)
		x1, y1 := proj.point(c1)
		x2, y2 := proj.point(c2)
		r.MoveTo(x0, y0)
		r.LineTo(x1, y1)
		r.LineTo(x2, y2)
		r.ClosePath()
	}

	if frontCount > 0 {
		front.Draw(dst, b, image.NewUniform(opts.Front), image.Point{})
	}
	if backCount > 0 {
		back.Draw(dst, b, image.NewUniform(opts.Back), image.Point{})
	}
}

func strokeEdges(dst *image.RGBA, m *planemesh.Mesh, proj projection, width float32, c color.NRGBA) {
	if width <= 0 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	half := width / 2

	seen := make(map[[2]uint16]struct{}, len(m.Indices))
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		for k := 0; k < 3; k++ {
			a, e := tri[k], tri[(k+1)%3]
			if a > e {
				a, e = e, a
			}
			key := [2]uint16{a, e}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			x0, y0 := proj.point(m.Vertices[a])
			x1, y1 := proj.point(m.Vertices[e])
			quad(r, x0, y0, x1, y1, half)
		}
	}

	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// quad adds a line segment of the given half width as a closed quad. The
// normal is always the segment direction rotated 90 degrees, so every quad has
// the same orientation and overlapping quads never cancel.
func quad(r *vector.Rasterizer, x0, y0, x1, y1, half float32) {
	d := math.Vec3{X: x1 - x0, Y: y1 - y0}.Normalize()
	if d == (math.Vec3{}) {
		return
	}
	nx, ny := -d.Y*half, d.X*half

	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}
