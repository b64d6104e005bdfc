package emulator

// A single word written to the GP0 port
type Command uint32

// Return bits [31:24] of the word, the command opcode
func (cmd Command) Opcode() uint8 {
	return uint8(uint32(cmd) >> 24)
}

// Return bits [23:0] of the word, the parameter field of environment commands
func (cmd Command) Param() uint32 {
	return uint32(cmd) & 0xffffff
}

// Return the signed X coordinate in bits [15:0] of a vertex word
func (cmd Command) X() int16 {
	return int16(uint32(cmd))
}

// Return the signed Y coordinate in bits [31:16] of a vertex word
func (cmd Command) Y() int16 {
	return int16(uint32(cmd) >> 16)
}

// Return the unsigned halfword in bits [15:0]
func (cmd Command) Low() uint16 {
	return uint16(uint32(cmd))
}

// Return the unsigned halfword in bits [31:16]
func (cmd Command) High() uint16 {
	return uint16(uint32(cmd) >> 16)
}

// Return a `bits` wide field starting at bit `shift`
func (cmd Command) Field(shift, bits uint) uint32 {
	return (uint32(cmd) >> shift) & (1<<bits - 1)
}

// Return a `bits` wide two's complement field starting at bit `shift`,
// sign-extended to 32 bits
func (cmd Command) SignedField(shift, bits uint) int32 {
	return SignExtend(cmd.Field(shift, bits), bits)
}
