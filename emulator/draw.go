package emulator

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Style used for every primitive: no culling, and a greater-or-equal depth
// test so later primitives draw over earlier ones
func primitiveStyle(gouraud bool) PrimitiveStyle {
	style := PrimitiveStyle{
		Culling:      CULLING_NONE,
		DepthCompare: DEPTHCMP_GEQUAL,
		Shading:      SHADING_FLAT,
	}
	if gouraud {
		style.Shading = SHADING_GOURAUD
	}
	return style
}

// Converts drawing coordinates to device space. The drawing offset and the
// drawing area are read for every vertex
func (gpu *GPU) toDevice(x, y int32) mgl32.Vec3 {
	dx := float32(x+int32(gpu.DrawingXOffset)-int32(gpu.DrawingAreaLeft)) * gpu.ScaleX
	dy := float32(y+int32(gpu.DrawingYOffset)-int32(gpu.DrawingAreaTop)) * gpu.ScaleY
	return mgl32.Vec3{dx, dy, VERTEX_DEPTH}
}

// Opens a batch if needed and sets the style of the next vertex run.
// Returns false if there's nothing to draw to
func (gpu *GPU) beginPrimitive(gouraud bool) bool {
	if gpu.Rasterizer == nil {
		return false
	}
	gpu.ensureBatch()
	gpu.Rasterizer.ConfigurePrimitiveStyle(primitiveStyle(gouraud))
	return true
}

func (gpu *GPU) emitVertex(x, y int32, clr color.RGBA, last bool) {
	flags := VERTEX_CONTINUE
	if last {
		flags = VERTEX_EOL
	}
	gpu.Rasterizer.SubmitVertex(NewVertex(gpu.toDevice(x, y), clr, flags))
}

// GP0(0x20, 0x28, 0x30, 0x38): monochrome or shaded untextured polygon
func cmdPolygon(gpu *GPU, packet *CommandBuffer) {
	opcode := packet.Command(0).Opcode()
	gouraud := opcode&0x10 != 0
	nb := 3
	if opcode&0x08 != 0 {
		nb = 4
	}

	if !gpu.beginPrimitive(gouraud) {
		return
	}

	words := packet.Words()
	var clr color.RGBA
	for i := 0; i < nb; i++ {
		if i == 0 || gouraud {
			clr = ColorFromGP0(words[0])
			words = words[1:]
		}
		pos := Vec2FromGP0(words[0])
		words = words[1:]

		gpu.emitVertex(int32(pos.X), int32(pos.Y), clr, i == nb-1)
	}
}

// GP0(0x40, 0x50): monochrome or shaded line
func cmdLine(gpu *GPU, packet *CommandBuffer) {
	opcode := packet.Command(0).Opcode()
	gouraud := opcode&0x10 != 0

	if !gpu.beginPrimitive(gouraud) {
		return
	}

	words := packet.Words()
	color0 := ColorFromGP0(words[0])
	p0 := Vec2FromGP0(words[1])
	words = words[2:]

	// a single segment for now, polylines aren't drawn
	color1 := color0
	if gouraud {
		color1 = ColorFromGP0(words[0])
		words = words[1:]
	}
	p1 := Vec2FromGP0(words[0])

	// always draw from left to right
	if p0.X > p1.X {
		gpu.drawLine(p1, color1, p0, color0)
	} else {
		gpu.drawLine(p0, color0, p1, color1)
	}
}

// Draws a line segment as a 1 pixel thick strip of 6 vertices. The segment
// is a run of its own
func (gpu *GPU) drawLine(p0 Vec2, color0 color.RGBA, p1 Vec2, color1 color.RGBA) {
	var up, down int32 = 0, 1
	if p1.Y < p0.Y {
		up, down = 1, 0
	}

	x0, y0 := int32(p0.X), int32(p0.Y)
	x1, y1 := int32(p1.X), int32(p1.Y)
	xcoords := [6]int32{x0, x0, x0 + 1, x1, x1 + 1, x1 + 1}
	ycoords := [6]int32{y0 + up, y0 + down, y0 + up, y1 + down, y1 + up, y1 + down}

	for i := 0; i < 6; i++ {
		clr := color1
		if i < 3 {
			clr = color0
		}
		gpu.emitVertex(xcoords[i], ycoords[i], clr, i == 5)
	}
}

// GP0(0x60): monochrome rectangle of variable size
func cmdRectangle(gpu *GPU, packet *CommandBuffer) {
	if !gpu.beginPrimitive(false) {
		return
	}

	clr := ColorFromGP0(packet.Get(0))
	origin := Vec2FromGP0(packet.Get(1))
	size := Vec2FromGP0(packet.Get(2))

	// the far corner wraps around like the 16 bit hardware registers do
	x := [2]int16{origin.X, origin.X + size.X}
	y := [2]int16{origin.Y, origin.Y + size.Y}

	// top-left, top-right, bottom-left, bottom-right
	for i := 0; i < 4; i++ {
		gpu.emitVertex(int32(x[i&1]), int32(y[(i>>1)&1]), clr, i == 3)
	}
}
