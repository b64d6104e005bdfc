package emulator

// Video output horizontal resolution
type HorizontalRes uint8

// Create a new HorizontalRes instance from the 2 bit field `hr1` and the one
// bit field `hr2`
func HResFromFields(hr1, hr2 uint8) HorizontalRes {
	hr := (hr2 & 1) | ((hr1 & 3) << 1)
	return HorizontalRes(hr)
}

// Returns the number of visible pixels per line
func (hr HorizontalRes) Width() int {
	if hr&1 != 0 {
		return 368
	}
	switch hr >> 1 {
	case 0:
		return 256
	case 1:
		return 320
	case 2:
		return 512
	default:
		return 640
	}
}

// Video output vertical resolution
type VerticalRes uint8

const (
	VRES_240_LINES VerticalRes = 0 // 240 lines
	VRES_480_LINES VerticalRes = 1 // 480 lines (only available for interlaced output)
)

// Returns the number of visible lines
func (vr VerticalRes) Height() int {
	if vr == VRES_480_LINES {
		return 480
	}
	return 240
}

const (
	DEFAULT_OUTPUT_WIDTH  = 320 // Width of the device space primitives are emitted in
	DEFAULT_OUTPUT_HEIGHT = 240 // Height of the device space primitives are emitted in
)

// The drawing state set by the GP0 environment commands. Only the matching
// GP0(0xE1...0xE6) command changes a field, render commands just read them
type GPUState struct {
	// Texture page bits of GP0(0xE1): page base, semi transparency, depth,
	// dithering and draw-to-display (11 bits)
	TextureStatusBits   uint16
	DrawingAreaLeft     uint16 // Left-most column of the drawing area (0...1023)
	DrawingAreaTop      uint16 // Top-most line of the drawing area (0...511)
	DrawingAreaRight    uint16 // Right-most column of the drawing area (0...1023)
	DrawingAreaBottom   uint16 // Bottom-most line of the drawing area (0...511)
	DrawingXOffset      int16  // Horizontal drawing offset applied to all vertex
	DrawingYOffset      int16  // Vertical drawing offset applied to all vertex
	SetMaskOnDraw       bool   // Force the "mask" bit of drawn pixels to 1
	CheckMaskBeforeDraw bool   // Don't draw to pixels which have the "mask" bit set
}

// Command processor of the GPU. It decodes GP0 command lists and turns the
// render commands into primitives for the Rasterizer.
//
// The mask bit settings are tracked and reported in the status register but
// never applied to the output: rasterizers have no mask channel to test
// against
type GPU struct {
	GPUState

	ExRegs [8]uint32 // Last word of each GP0(0xE0...0xE7) command

	HRes          HorizontalRes // Display horizontal resolution
	VRes          VerticalRes   // Display vertical resolution
	OutputWidth   int           // Device space width
	OutputHeight  int           // Device space height
	ScaleX        float32       // Display to device space horizontal scale
	ScaleY        float32       // Display to device space vertical scale
	Rasterizer    Rasterizer    // Receives the primitives, can be nil
	Debugger      *Debugger     // Optional command breakpoints
	Packet        CommandBuffer // Command being executed
	FIFO          *CommandFIFO  // Words written to GP0 but not executed yet
	PortCycles    CycleCounter  // Cycle accounting of commands written to GP0
	LastCommand   int           // Last command seen on GP0, or COMMAND_INCOMPLETE
	status        StatusRegister
	inBatch       bool
	transferWords uint32 // Remaining data words of a CPU to VRAM transfer
	polyline      bool   // Swallowing the vertices of a polyline
}

// Returns a GPU in its power-on state drawing to `rasterizer`
func NewGPU(rasterizer Rasterizer) *GPU {
	gpu := &GPU{
		HRes:         HResFromFields(1, 0),
		VRes:         VRES_240_LINES,
		OutputWidth:  DEFAULT_OUTPUT_WIDTH,
		OutputHeight: DEFAULT_OUTPUT_HEIGHT,
		Rasterizer:   rasterizer,
		FIFO:         NewCommandFIFO(),
		status:       STATUS_RESET_VALUE,
	}
	gpu.updateScale()
	return gpu
}

// Returns a copy of the drawing state
func (gpu *GPU) State() GPUState {
	return gpu.GPUState
}

// Sets the size of the device space the rasterizer works in
func (gpu *GPU) SetOutputSize(width, height int) {
	if width <= 0 || height <= 0 {
		panicFmt("gpu: invalid output size %dx%d", width, height)
	}
	gpu.OutputWidth = width
	gpu.OutputHeight = height
	gpu.updateScale()
}

// Returns the current display resolution
func (gpu *GPU) DisplayResolution() (int, int) {
	return gpu.HRes.Width(), gpu.VRes.Height()
}

func (gpu *GPU) updateScale() {
	w, h := gpu.DisplayResolution()
	gpu.ScaleX = float32(gpu.OutputWidth) / float32(w)
	gpu.ScaleY = float32(gpu.OutputHeight) / float32(h)
}

// GP0(0xE1): Draw Mode (texture page)
func (gpu *GPU) GP0DrawMode(val uint32) {
	gpu.TextureStatusBits = uint16(val & 0x7ff)
}

// GP0(0xE2): Set Texture Window. Textures aren't sampled so this is accepted
// and ignored
func (gpu *GPU) GP0TextureWindow(val uint32) {
}

// GP0(0xE3): Set Drawing Area Top Left
func (gpu *GPU) GP0DrawingAreaTopLeft(val uint32) {
	gpu.DrawingAreaLeft = uint16(Command(val).Field(0, 10))
	gpu.DrawingAreaTop = uint16(Command(val).Field(10, 9))
	logger.Debug("gpu: set drawing area top-left", "x", gpu.DrawingAreaLeft, "y", gpu.DrawingAreaTop)
}

// GP0(0xE4): Set Drawing Area Bottom Right
func (gpu *GPU) GP0DrawingAreaBottomRight(val uint32) {
	gpu.DrawingAreaRight = uint16(Command(val).Field(0, 10))
	gpu.DrawingAreaBottom = uint16(Command(val).Field(10, 9))
	logger.Debug("gpu: set drawing area bottom-right", "x", gpu.DrawingAreaRight, "y", gpu.DrawingAreaBottom)
}

// GP0(0xE5): Set Drawing Offset. Both values are 11 bit two's complement
func (gpu *GPU) GP0DrawingOffset(val uint32) {
	gpu.DrawingXOffset = int16(Command(val).SignedField(0, 11))
	gpu.DrawingYOffset = int16(Command(val).SignedField(11, 11))
	logger.Debug("gpu: set drawing offset", "dx", gpu.DrawingXOffset, "dy", gpu.DrawingYOffset)
}

// GP0(0xE6): Set Mask Bit Setting
func (gpu *GPU) GP0MaskBitSetting(val uint32) {
	gpu.SetMaskOnDraw = (val & 1) != 0
	gpu.CheckMaskBeforeDraw = (val & 2) != 0
	gpu.status.SetMaskBits(gpu.SetMaskOnDraw, gpu.CheckMaskBeforeDraw)
}

// Handles writes to the GP0 command register. Words are queued until a
// whole command is available, then executed. Returns the last command
// executed or COMMAND_INCOMPLETE if the command isn't complete yet
func (gpu *GPU) GP0(val uint32) int {
	if gpu.transferWords > 0 {
		// pixel data of a CPU to VRAM blit, there's no VRAM to store it in
		gpu.transferWords--
		return gpu.LastCommand
	}
	if gpu.polyline {
		if val&0xf000f000 == 0x50005000 {
			gpu.polyline = false
		}
		return gpu.LastCommand
	}

	gpu.FIFO.Push(val)
	res := gpu.ProcessCommands(gpu.FIFO.Pending(), gpu.PortCycles.Last, gpu.PortCycles.Sum)
	gpu.FIFO.Consume(res.Consumed)
	gpu.PortCycles.Sum = res.CyclesSum
	gpu.PortCycles.Last = res.CyclesLast
	gpu.LastCommand = res.LastCommand

	if res.Consumed > 0 {
		// commands come one word at a time so the last executed command is
		// still in the packet buffer
		opcode := gpu.Packet.Command(0).Opcode()
		switch {
		case VRAM_WRITE_RANGE.Contains(opcode):
			gpu.transferWords = transferSize(gpu.Packet.Get(2))
		case LINE_RANGE.Contains(opcode) && opcode&0x08 != 0:
			gpu.polyline = gpu.Packet.Get(gpu.Packet.Len-1)&0xf000f000 != 0x50005000
		}
	}
	return res.LastCommand
}

// Number of data words following a CPU to VRAM blit of size `size`
func transferSize(size uint32) uint32 {
	w := ((size&0x3ff)-1)&0x3ff + 1
	h := ((size>>16&0x1ff)-1)&0x1ff + 1
	return (w*h + 1) / 2
}

// Returns the cycles consumed by the commands written to GP0 since the last
// call and resets the counter. The cost of the last command stays pending
func (gpu *GPU) TakeCycles() int {
	sum := gpu.PortCycles.Sum
	gpu.PortCycles.Sum = 0
	return sum
}

// Re-executes the last drawing environment commands, used to restore the
// drawing state from ExRegs after loading it from somewhere else
func (gpu *GPU) SyncEnvironment() {
	var ecmds [6]uint32
	copy(ecmds[:], gpu.ExRegs[1:7])
	gpu.ProcessCommands(ecmds[:], 0, 0)
}

// Handle writes to the GP1 command register
func (gpu *GPU) GP1(val uint32) {
	opcode := Command(val).Opcode()

	switch opcode {
	case 0x00:
		gpu.GP1Reset()
	case 0x01:
		gpu.GP1ResetCommandBuffer()
	case 0x08:
		gpu.GP1DisplayMode(val)
	default:
		logger.Debug("gpu: unhandled GP1 command", "command", val)
	}
}

// GP1(0x00): soft reset
func (gpu *GPU) GP1Reset() {
	gpu.GPUState = GPUState{}
	gpu.ExRegs = [8]uint32{}
	gpu.status = STATUS_RESET_VALUE
	gpu.HRes = HResFromFields(1, 0)
	gpu.VRes = VRES_240_LINES
	gpu.updateScale()
	gpu.GP1ResetCommandBuffer()
}

// GP1(0x01): reset command buffer
func (gpu *GPU) GP1ResetCommandBuffer() {
	gpu.FIFO.Clear()
	gpu.Packet.Clear()
	gpu.transferWords = 0
	gpu.polyline = false
}

// GP1(0x08): display mode. Only the resolution matters here, it decides how
// coordinates are scaled to device space
func (gpu *GPU) GP1DisplayMode(val uint32) {
	hr1 := uint8(val & 3)
	hr2 := uint8((val >> 6) & 1)

	gpu.HRes = HResFromFields(hr1, hr2)

	// 480 lines only work with interlacing enabled
	if val&0x4 != 0 && val&0x20 != 0 {
		gpu.VRes = VRES_480_LINES
	} else {
		gpu.VRes = VRES_240_LINES
	}
	gpu.updateScale()
}

// Return value of the status register
func (gpu *GPU) Status() StatusRegister {
	return gpu.status
}

// Return value of the `read` register
func (gpu *GPU) Read() uint32 {
	// VRAM isn't stored, reads return nothing
	return 0
}

// Opens a rasterizer batch if there isn't one yet
func (gpu *GPU) ensureBatch() {
	if !gpu.inBatch {
		gpu.Rasterizer.BeginBatch()
		gpu.inBatch = true
	}
}

// Closes the rasterizer batch holding the primitives drawn since the last
// call. Does nothing if nothing was drawn
func (gpu *GPU) EndFrame() {
	if gpu.inBatch {
		gpu.Rasterizer.EndBatch()
		gpu.inBatch = false
	}
}

// Returns true if primitives were submitted since the last EndFrame
func (gpu *GPU) FrameOpen() bool {
	return gpu.inBatch
}
