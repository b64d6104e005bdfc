// Package software renders GPU primitives without a window, filling the
// triangles of every batch with gogpu/gg.
package software

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
	"github.com/zeozeozeo/psxgpu/emulator"
	"golang.org/x/image/draw"
)

// A headless renderer implementing emulator.Rasterizer. Every closed batch is
// drawn on a cleared canvas.
//
// gg fills paths with a single paint, so gouraud shaded triangles are filled
// with the average of their vertex colors
type SoftwareRenderer struct {
	*emulator.DrawData

	Background gg.RGBA

	ctx    *gg.Context
	frames uint64
	err    error
}

// Returns a new renderer drawing on a `width`x`height` canvas
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		DrawData:   emulator.NewDrawData(),
		Background: gg.Black,
		ctx:        gg.NewContext(width, height),
	}
}

// Closes the batch and draws its triangles
func (renderer *SoftwareRenderer) EndBatch() {
	renderer.DrawData.EndBatch()

	renderer.ctx.ClearWithColor(renderer.Background)
	for i := range renderer.Runs {
		if err := renderer.drawRun(&renderer.Runs[i]); err != nil {
			renderer.err = errors.Wrapf(err, "software: frame %d, run %d", renderer.frames, i)
			break
		}
	}
	renderer.frames++
}

func (renderer *SoftwareRenderer) drawRun(run *emulator.PrimitiveRun) error {
	tris := run.Triangles()
	for i := 0; i+2 < len(tris); i += 3 {
		tri := tris[i : i+3]

		if run.Style.Shading == emulator.SHADING_GOURAUD {
			renderer.ctx.SetColor(averageColor(tri))
		} else {
			// flat primitives carry their color in every vertex
			renderer.ctx.SetColor(tri[0].Color)
		}

		renderer.ctx.MoveTo(float64(tri[0].Position.X()), float64(tri[0].Position.Y()))
		renderer.ctx.LineTo(float64(tri[1].Position.X()), float64(tri[1].Position.Y()))
		renderer.ctx.LineTo(float64(tri[2].Position.X()), float64(tri[2].Position.Y()))
		renderer.ctx.ClosePath()
		if err := renderer.ctx.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func averageColor(tri []emulator.Vertex) color.RGBA {
	var r, g, b int
	for _, v := range tri {
		r += int(v.Color.R)
		g += int(v.Color.G)
		b += int(v.Color.B)
	}
	n := len(tri)
	return color.RGBA{uint8(r / n), uint8(g / n), uint8(b / n), 0xff}
}

// Returns the first error hit while drawing, if any
func (renderer *SoftwareRenderer) Err() error {
	return renderer.err
}

// Returns the number of frames drawn so far
func (renderer *SoftwareRenderer) Frames() uint64 {
	return renderer.frames
}

// Returns the last drawn frame
func (renderer *SoftwareRenderer) Image() image.Image {
	return renderer.ctx.Image()
}

// Returns the last drawn frame enlarged `scale` times with nearest neighbor
// sampling, keeping the pixels sharp
func (renderer *SoftwareRenderer) Snapshot(scale int) image.Image {
	src := renderer.ctx.Image()
	if scale <= 1 {
		return src
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}

// Writes a snapshot of the last frame to the PNG file at `path`
func (renderer *SoftwareRenderer) SavePNG(path string, scale int) error {
	if scale <= 1 {
		return errors.Wrap(renderer.ctx.SavePNG(path), "software: saving snapshot")
	}

	out := gg.NewContextForImage(renderer.Snapshot(scale))
	defer out.Close()
	return errors.Wrap(out.SavePNG(path), "software: saving snapshot")
}

// Releases the canvas
func (renderer *SoftwareRenderer) Close() error {
	return renderer.ctx.Close()
}
