package emulator

var (
	// VRAM to VRAM, CPU to VRAM and VRAM to CPU blits. The data phase of these
	// transfers is handled outside of the command list, so they're skipped here
	VRAM_COPY_RANGE  = NewOpcodeRange(0x80, 0x20)
	VRAM_WRITE_RANGE = NewOpcodeRange(0xa0, 0x20)
	VRAM_READ_RANGE  = NewOpcodeRange(0xc0, 0x20)
	// Render commands
	POLYGON_RANGE   = NewOpcodeRange(0x20, 0x20)
	LINE_RANGE      = NewOpcodeRange(0x40, 0x20)
	RECTANGLE_RANGE = NewOpcodeRange(0x60, 0x20)
	// Drawing environment commands (0xe1...0xe6 are the interesting ones)
	ENVIRONMENT_RANGE = NewOpcodeRange(0xe0, 0x08)
)

type OpcodeRange struct {
	Start  uint8  // First opcode
	Length uint16 // Number of opcodes in the range
}

func NewOpcodeRange(start uint8, length uint16) OpcodeRange {
	return OpcodeRange{Start: start, Length: length}
}

// Returns whether `opcode` is located inside this range
func (r *OpcodeRange) Contains(opcode uint8) bool {
	return uint16(opcode) >= uint16(r.Start) && uint16(opcode) < uint16(r.Start)+r.Length
}

// Returns the offset between `opcode` and the `Start` of the range.
// Does not check if the range contains the opcode
func (r *OpcodeRange) Offset(opcode uint8) uint8 {
	return opcode - r.Start
}

// Calls `fn` for every opcode in the range
func (r *OpcodeRange) Each(fn func(opcode uint8)) {
	for i := uint16(0); i < r.Length; i++ {
		fn(uint8(uint16(r.Start) + i))
	}
}
