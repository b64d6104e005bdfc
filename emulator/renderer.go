package emulator

import (
	"image/color"
	"math/bits"

	"github.com/go-gl/mathgl/mgl32"
)

// A 2 dimensional vector
type Vec2 struct {
	X, Y int16
}

// Marks where a run of vertices ends
type VertexFlags uint8

const (
	VERTEX_CONTINUE VertexFlags = 0 // More vertices follow in this run
	VERTEX_EOL      VertexFlags = 1 // Last vertex of the run (end of list)
)

// Depth of every emitted vertex. There's no depth in 2D, with a
// greater-or-equal depth test every primitive draws over the previous ones
// in submission order
const VERTEX_DEPTH float32 = 1.0

type Culling uint8

const (
	CULLING_NONE Culling = 0
	CULLING_CW   Culling = 1
	CULLING_CCW  Culling = 2
)

type DepthCompare uint8

const (
	DEPTHCMP_NEVER   DepthCompare = 0
	DEPTHCMP_LESS    DepthCompare = 1
	DEPTHCMP_EQUAL   DepthCompare = 2
	DEPTHCMP_LEQUAL  DepthCompare = 3
	DEPTHCMP_GREATER DepthCompare = 4
	DEPTHCMP_NEQUAL  DepthCompare = 5
	DEPTHCMP_GEQUAL  DepthCompare = 6
	DEPTHCMP_ALWAYS  DepthCompare = 7
)

type Shading uint8

const (
	SHADING_FLAT    Shading = 0 // One color for the whole primitive
	SHADING_GOURAUD Shading = 1 // Colors interpolated between vertices
)

// Render state applied to the vertex runs that follow it
type PrimitiveStyle struct {
	Culling      Culling
	DepthCompare DepthCompare
	Shading      Shading
}

// A single vertex in device space with a color
type Vertex struct {
	Position mgl32.Vec3
	Color    color.RGBA
	Flags    VertexFlags
}

func NewVertex(pos mgl32.Vec3, clr color.RGBA, flags VertexFlags) Vertex {
	return Vertex{Position: pos, Color: clr, Flags: flags}
}

// Returns true if this vertex closes its run
func (v Vertex) IsEOL() bool {
	return v.Flags&VERTEX_EOL != 0
}

// The backend primitives are submitted to. Vertex runs are triangle strips,
// every run is closed by a vertex flagged VERTEX_EOL. Primitives can only be
// submitted between BeginBatch and EndBatch, batches don't nest
type Rasterizer interface {
	BeginBatch()
	ConfigurePrimitiveStyle(style PrimitiveStyle)
	SubmitVertex(v Vertex)
	EndBatch()
}

// Parse position from a GP0 parameter
func Vec2FromGP0(val uint32) Vec2 {
	return Vec2{X: Command(val).X(), Y: Command(val).Y()}
}

// Reorders a GP0 color word (0xXXBBGGRR) into 0x00RRGGBB, the order the
// rasterizer expects. The top byte (opcode) is dropped
func SwapColor(val uint32) uint32 {
	return bits.ReverseBytes32(val) >> 8
}

// Unpacks a 0x00RRGGBB color
func ColorFromRGB24(val uint32) color.RGBA {
	return color.RGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}
}

// Parse color from a GP0 parameter
func ColorFromGP0(val uint32) color.RGBA {
	return ColorFromRGB24(SwapColor(val))
}

// A run of vertices, from the first vertex after a style change up to and
// including the EOL vertex
type PrimitiveRun struct {
	Style    PrimitiveStyle
	Vertices []Vertex
}

// Expands the strip into a list of independent triangles
func (run *PrimitiveRun) Triangles() []Vertex {
	if len(run.Vertices) < 3 {
		return nil
	}
	tris := make([]Vertex, 0, (len(run.Vertices)-2)*3)
	for i := 2; i < len(run.Vertices); i++ {
		tris = append(tris, run.Vertices[i-2:i+1]...)
	}
	return tris
}

// Stores the draw data of one batch. Implements Rasterizer, backends draw
// from it once the batch is closed
type DrawData struct {
	Runs    []PrimitiveRun
	Batches uint64 // Number of closed batches

	inBatch bool
	style   PrimitiveStyle
	pending []Vertex
}

func NewDrawData() *DrawData {
	return &DrawData{}
}

// Starts a new batch, discarding the runs of the previous one
func (dd *DrawData) BeginBatch() {
	if dd.inBatch {
		panicFmt("drawdata: BeginBatch called inside a batch")
	}
	dd.inBatch = true
	dd.Runs = dd.Runs[:0]
	dd.pending = nil
}

func (dd *DrawData) ConfigurePrimitiveStyle(style PrimitiveStyle) {
	if !dd.inBatch {
		panicFmt("drawdata: primitive style set outside of a batch")
	}
	if len(dd.pending) != 0 {
		panicFmt("drawdata: primitive style changed with %d vertices pending", len(dd.pending))
	}
	dd.style = style
}

func (dd *DrawData) SubmitVertex(v Vertex) {
	if !dd.inBatch {
		panicFmt("drawdata: vertex submitted outside of a batch")
	}
	dd.pending = append(dd.pending, v)
	if v.IsEOL() {
		dd.Runs = append(dd.Runs, PrimitiveRun{Style: dd.style, Vertices: dd.pending})
		dd.pending = nil
	}
}

func (dd *DrawData) EndBatch() {
	if !dd.inBatch {
		panicFmt("drawdata: EndBatch called without a batch")
	}
	if len(dd.pending) != 0 {
		// no EOL: the run never got closed, drop it like the hardware would
		logger.Warn("drawdata: dropping unterminated vertex run", "vertices", len(dd.pending))
		dd.pending = nil
	}
	dd.inBatch = false
	dd.Batches++
}

// Returns true between BeginBatch and EndBatch
func (dd *DrawData) InBatch() bool {
	return dd.inBatch
}

// Returns the number of vertices in all closed runs
func (dd *DrawData) VertexCount() int {
	n := 0
	for i := range dd.Runs {
		n += len(dd.Runs[i].Vertices)
	}
	return n
}

// Returns every run expanded into a triangle list
func (dd *DrawData) Triangles() []Vertex {
	var tris []Vertex
	for i := range dd.Runs {
		tris = append(tris, dd.Runs[i].Triangles()...)
	}
	return tris
}
