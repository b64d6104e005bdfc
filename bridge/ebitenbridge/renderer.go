package ebitenbridge

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zeozeozeo/psxgpu/emulator"
)

var emptyImage = ebiten.NewImage(3, 3)

// Source region of emptyImage, away from its edges so sampling never bleeds
var emptySubImage = emptyImage.SubImage(emptyImage.Bounds().Inset(1)).(*ebiten.Image)

func init() {
	emptyImage.Fill(color.White)
}

// An Ebitengine renderer that implements emulator.Rasterizer. Primitives are
// collected in a DrawData, every closed batch replaces the frame Draw shows
type EbitenRenderer struct {
	*emulator.DrawData

	vertices []ebiten.Vertex
	indices  []uint16
	frames   uint64
}

// Returns a new Ebitengine renderer
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{
		DrawData: emulator.NewDrawData(),
	}
}

// Closes the batch and converts its triangles to Ebitengine vertices
func (renderer *EbitenRenderer) EndBatch() {
	renderer.DrawData.EndBatch()

	renderer.vertices, renderer.indices = appendTriangles(
		renderer.vertices[:0], renderer.indices[:0], renderer.DrawData.Triangles())
	renderer.frames++
}

// Returns the number of frames converted so far
func (renderer *EbitenRenderer) Frames() uint64 {
	return renderer.frames
}

// Returns the number of vertices of the frame Draw shows
func (renderer *EbitenRenderer) FrameVertices() int {
	return len(renderer.vertices)
}

// Draws the last closed batch on `screen`
func (renderer *EbitenRenderer) Draw(screen *ebiten.Image) {
	if len(renderer.vertices) == 0 {
		return
	}

	// later primitives draw over earlier ones, like the depth test asks for
	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(renderer.vertices, renderer.indices, emptySubImage, op)
}

// Appends a triangle list to an Ebitengine vertex and index buffer. Indices
// are 16 bit so a frame is capped at 65536 vertices, the rest are dropped
func appendTriangles(vertices []ebiten.Vertex, indices []uint16, tris []emulator.Vertex) ([]ebiten.Vertex, []uint16) {
	const maxVertices = 1 << 16
	if len(tris) > maxVertices {
		tris = tris[:maxVertices-maxVertices%3]
	}

	for _, vtx := range tris {
		indices = append(indices, uint16(len(vertices)))
		vertices = append(vertices, ebiten.Vertex{
			DstX:   vtx.Position.X(),
			DstY:   vtx.Position.Y(),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(vtx.Color.R) / 255,
			ColorG: float32(vtx.Color.G) / 255,
			ColorB: float32(vtx.Color.B) / 255,
			ColorA: 1, // should always be 1
		})
	}
	return vertices, indices
}
