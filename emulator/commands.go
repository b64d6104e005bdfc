package emulator

// Returned as the last command when the list ends in the middle of a command
const COMMAND_INCOMPLETE = -1

// Number of parameter words following each GP0 command word. Part of the
// hardware protocol, polylines are listed with their minimum length
var CommandLengths = [256]uint8{
	0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 00
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 10
	3, 3, 3, 3, 6, 6, 6, 6, 4, 4, 4, 4, 8, 8, 8, 8, // 20
	5, 5, 5, 5, 8, 8, 8, 8, 7, 7, 7, 7, 11, 11, 11, 11, // 30
	2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, // 40
	3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, // 50
	2, 2, 2, 2, 3, 3, 3, 3, 1, 1, 1, 1, 2, 2, 2, 2, // 60
	1, 1, 1, 1, 2, 2, 2, 2, 1, 1, 1, 1, 2, 2, 2, 2, // 70
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 80
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 90
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // a0
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // b0
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // c0
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // d0
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // e0
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // f0
}

// Broad class of a GP0 command
type CommandKind uint8

const (
	COMMAND_KIND_UNKNOWN     CommandKind = iota // Not a known command, skipped
	COMMAND_KIND_NOP         CommandKind = iota
	COMMAND_KIND_VRAM        CommandKind = iota // VRAM blit, data isn't stored
	COMMAND_KIND_FILL        CommandKind = iota // Fill rectangle in VRAM
	COMMAND_KIND_ENVIRONMENT CommandKind = iota // Drawing environment setting
	COMMAND_KIND_POLYGON     CommandKind = iota
	COMMAND_KIND_LINE        CommandKind = iota
	COMMAND_KIND_RECTANGLE   CommandKind = iota
)

// Describes how a GP0 command is executed
type CommandDescriptor struct {
	Opcode  uint8
	Length  uint8 // Parameter words after the command word
	Kind    CommandKind
	Drawn   bool                                  // True if the command emits primitives
	Handler func(gpu *GPU, packet *CommandBuffer) // Executes the command
	Cost    func(packet *CommandBuffer) int       // CPU cycle estimate, nil when free
}

var commandTable [256]CommandDescriptor

func init() {
	for i := range commandTable {
		commandTable[i] = CommandDescriptor{
			Opcode:  uint8(i),
			Length:  CommandLengths[i],
			Kind:    COMMAND_KIND_UNKNOWN,
			Handler: cmdUnhandled,
		}
	}

	set := func(opcode uint8, kind CommandKind, handler func(*GPU, *CommandBuffer)) {
		desc := &commandTable[opcode]
		desc.Kind = kind
		desc.Handler = handler
	}

	set(0x00, COMMAND_KIND_NOP, cmdNop)
	set(0x01, COMMAND_KIND_VRAM, cmdNop) // clear cache
	set(0x02, COMMAND_KIND_FILL, cmdClearImage)
	commandTable[0x02].Cost = costFill

	for _, r := range []OpcodeRange{VRAM_COPY_RANGE, VRAM_WRITE_RANGE, VRAM_READ_RANGE} {
		r.Each(func(opcode uint8) {
			set(opcode, COMMAND_KIND_VRAM, cmdNop)
		})
	}

	set(0xe1, COMMAND_KIND_ENVIRONMENT, func(gpu *GPU, p *CommandBuffer) { gpu.GP0DrawMode(p.Get(0)) })
	set(0xe2, COMMAND_KIND_ENVIRONMENT, func(gpu *GPU, p *CommandBuffer) { gpu.GP0TextureWindow(p.Get(0)) })
	set(0xe3, COMMAND_KIND_ENVIRONMENT, func(gpu *GPU, p *CommandBuffer) { gpu.GP0DrawingAreaTopLeft(p.Get(0)) })
	set(0xe4, COMMAND_KIND_ENVIRONMENT, func(gpu *GPU, p *CommandBuffer) { gpu.GP0DrawingAreaBottomRight(p.Get(0)) })
	set(0xe5, COMMAND_KIND_ENVIRONMENT, func(gpu *GPU, p *CommandBuffer) { gpu.GP0DrawingOffset(p.Get(0)) })
	set(0xe6, COMMAND_KIND_ENVIRONMENT, func(gpu *GPU, p *CommandBuffer) { gpu.GP0MaskBitSetting(p.Get(0)) })

	POLYGON_RANGE.Each(func(opcode uint8) {
		set(opcode, COMMAND_KIND_POLYGON, cmdSkipped("polygon"))
		commandTable[opcode].Cost = costPolygon
	})
	LINE_RANGE.Each(func(opcode uint8) {
		set(opcode, COMMAND_KIND_LINE, cmdSkipped("line"))
		commandTable[opcode].Cost = costLine
	})
	RECTANGLE_RANGE.Each(func(opcode uint8) {
		set(opcode, COMMAND_KIND_RECTANGLE, cmdSkipped("rectangle"))
		commandTable[opcode].Cost = costRectangle
	})

	// untextured, opaque polygons: flat/shaded, 3/4 vertices
	for _, opcode := range []uint8{0x20, 0x28, 0x30, 0x38} {
		set(opcode, COMMAND_KIND_POLYGON, cmdPolygon)
		commandTable[opcode].Drawn = true
	}
	// monochrome and shaded single lines
	for _, opcode := range []uint8{0x40, 0x50} {
		set(opcode, COMMAND_KIND_LINE, cmdLine)
		commandTable[opcode].Drawn = true
	}
	// monochrome variable size rectangle
	set(0x60, COMMAND_KIND_RECTANGLE, cmdRectangle)
	commandTable[0x60].Drawn = true
}

// Returns the descriptor of `opcode`
func LookupCommand(opcode uint8) *CommandDescriptor {
	return &commandTable[opcode]
}

func cmdNop(gpu *GPU, packet *CommandBuffer) {
}

func cmdUnhandled(gpu *GPU, packet *CommandBuffer) {
	logger.Debug("gpu: unhandled GP0 command", "opcode", packet.Command(0).Opcode(), "word", packet.Get(0))
}

// Handler for render commands that are accepted but not drawn
func cmdSkipped(what string) func(*GPU, *CommandBuffer) {
	return func(gpu *GPU, packet *CommandBuffer) {
		logger.Debug("gpu: render "+what+" not drawn", "opcode", packet.Command(0).Opcode())
	}
}

// Rounds a horizontal fill coordinate to the 16 pixel blocks fills work in
func fillBlockAlign(v int32) int32 {
	return (v + 0xe) &^ 0xf
}

// GP0(0x02): Fill Rectangle in VRAM
func cmdClearImage(gpu *GPU, packet *CommandBuffer) {
	x := int32(packet.Halfword(2) & 0x3ff)
	y := int32(packet.Halfword(3) & 0x1ff)
	w := int32((packet.Halfword(4)-1)&0x3ff) + 1
	h := int32((packet.Halfword(5)-1)&0x1ff) + 1

	// horizontal position and size work in 16 pixel blocks
	x = fillBlockAlign(x)
	w = fillBlockAlign(w)

	// there are no framebuffer, texture or palette caches to invalidate
	logger.Debug("gpu: fill rectangle", "x", x, "y", y, "w", w, "h", h,
		"color", SwapColor(packet.Get(0)))
}

func costFill(packet *CommandBuffer) int {
	return FillCycles(uint32(packet.Halfword(4)&0x3ff), uint32(packet.Halfword(5)&0x1ff))
}

func costPolygon(packet *CommandBuffer) int {
	opcode := packet.Command(0).Opcode()
	triangles := 1
	if opcode&0x08 != 0 {
		triangles = 2
	}
	return PolygonCycles(triangles, opcode&0x10 != 0)
}

func costLine(packet *CommandBuffer) int {
	opcode := packet.Command(0).Opcode()
	second := uint8(2)
	if opcode&0x10 != 0 {
		second = 3
	}
	p0 := Vec2FromGP0(packet.Get(1))
	p1 := Vec2FromGP0(packet.Get(second))
	return LineCycles(int(p0.X), int(p0.Y), int(p1.X), int(p1.Y))
}

func costRectangle(packet *CommandBuffer) int {
	opcode := packet.Command(0).Opcode()
	switch (opcode >> 3) & 3 {
	case 1:
		return SpriteCycles(1, 1)
	case 2:
		return SpriteCycles(8, 8)
	case 3:
		return SpriteCycles(16, 16)
	}
	idx := uint8(2)
	if opcode&0x04 != 0 {
		idx = 3
	}
	size := packet.Command(idx)
	return SpriteCycles(uint32(size.Low()&0x3ff), uint32(size.High()&0x1ff))
}

// Result of a ProcessCommands call
type CommandListResult struct {
	Consumed    int // Words executed, an incomplete trailing command isn't counted
	CyclesSum   int // Accumulated cycles, including the ones passed in
	CyclesLast  int // Cycles carried over to the next call
	LastCommand int // Last opcode seen, or COMMAND_INCOMPLETE
}

// Executes the commands in `words` until the list runs out or ends with an
// incomplete command. `cyclesLast` is the carry returned by the previous
// call, the cycles of this call are added to `cyclesSum`.
//
// An incomplete command isn't an error: it's left alone, and the caller has
// to pass it again with the rest of its words once they arrive
func (gpu *GPU) ProcessCommands(words []uint32, cyclesLast, cyclesSum int) CommandListResult {
	cycles := NewCycleCounter(cyclesLast)
	cmd := 0
	pos := 0

	for pos < len(words) {
		opcode := Command(words[pos]).Opcode()
		desc := &commandTable[opcode]
		cmd = int(opcode)

		n := 1 + int(desc.Length)
		if pos+n > len(words) {
			cmd = COMMAND_INCOMPLETE
			break
		}

		gpu.Packet.Fill(words[pos : pos+n])
		if ENVIRONMENT_RANGE.Contains(opcode) {
			gpu.ExRegs[opcode&7] = words[pos]
		}
		if gpu.Debugger != nil {
			gpu.Debugger.commandDispatched(gpu, &gpu.Packet)
		}

		desc.Handler(gpu, &gpu.Packet)
		if desc.Cost != nil {
			cycles.Charge(desc.Cost(&gpu.Packet))
		}

		pos += n
	}

	gpu.status.SetTextureBits(gpu.TextureStatusBits)

	return CommandListResult{
		Consumed:    pos,
		CyclesSum:   cyclesSum + cycles.Sum,
		CyclesLast:  cycles.Last,
		LastCommand: cmd,
	}
}
