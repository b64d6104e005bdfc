package emulator

import "fmt"

// Packs a vertex word
func xy(x, y int16) uint32 {
	return uint32(uint16(x)) | uint32(uint16(y))<<16
}

// Packs a GP0(0xE5) drawing offset word
func offsetWord(dx, dy int32) uint32 {
	return 0xe5000000 | (uint32(dy)&0x7ff)<<11 | uint32(dx)&0x7ff
}

// Packs a GP0(0xE3) or GP0(0xE4) drawing area word
func areaWord(opcode uint8, x, y uint32) uint32 {
	return uint32(opcode)<<24 | (y&0x1ff)<<10 | x&0x3ff
}

func newTestGPU() (*GPU, *DrawData) {
	dd := NewDrawData()
	return NewGPU(dd), dd
}

// Runs a command list in its own frame
func runFrame(gpu *GPU, words []uint32) CommandListResult {
	res := gpu.ProcessCommands(words, 0, 0)
	gpu.EndFrame()
	return res
}

// Records the calls made to a Rasterizer
type callRecorder struct {
	Calls []string
}

func (rec *callRecorder) BeginBatch() {
	rec.Calls = append(rec.Calls, "begin")
}

func (rec *callRecorder) ConfigurePrimitiveStyle(style PrimitiveStyle) {
	rec.Calls = append(rec.Calls, fmt.Sprintf("style:%d", style.Shading))
}

func (rec *callRecorder) SubmitVertex(v Vertex) {
	if v.IsEOL() {
		rec.Calls = append(rec.Calls, "eol")
	} else {
		rec.Calls = append(rec.Calls, "vertex")
	}
}

func (rec *callRecorder) EndBatch() {
	rec.Calls = append(rec.Calls, "end")
}
