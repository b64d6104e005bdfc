package emulator

// Power-on value of the GPU status register: display disabled, interlace
// field set, ready to receive commands and DMA blocks
const STATUS_RESET_VALUE StatusRegister = 0x14802000

const (
	STATUS_TEXTURE_MASK StatusRegister = 0x7ff   // Bits [10:0] mirror GP0(0xE1)
	STATUS_SET_MASK     StatusRegister = 1 << 11 // Force mask bit on drawn pixels
	STATUS_CHECK_MASK   StatusRegister = 1 << 12 // Don't draw to masked pixels
)

// Represents the value of the GPU status register (GPUSTAT), read by the CPU
type StatusRegister uint32

// Returns the texture page bits set by GP0(0xE1)
func (sr StatusRegister) TextureBits() uint16 {
	return uint16(sr & STATUS_TEXTURE_MASK)
}

// Returns the texture page base X coordinate (4 bits, 64 halfword steps)
func (sr StatusRegister) PageBaseX() uint8 {
	return uint8(sr & 0xf)
}

// Returns the texture page base Y coordinate (1 bit, 256 line steps)
func (sr StatusRegister) PageBaseY() uint8 {
	return uint8((sr >> 4) & 1)
}

// Returns true if drawn pixels get their mask bit forced to 1
func (sr StatusRegister) SetMaskOnDraw() bool {
	return sr&STATUS_SET_MASK != 0
}

// Returns true if pixels with the mask bit set are protected from drawing
func (sr StatusRegister) CheckMaskBeforeDraw() bool {
	return sr&STATUS_CHECK_MASK != 0
}

// Replaces the texture page bits with the low 11 bits of `bits`
func (sr *StatusRegister) SetTextureBits(bits uint16) {
	*sr = (*sr &^ STATUS_TEXTURE_MASK) | (StatusRegister(bits) & STATUS_TEXTURE_MASK)
}

// Updates the two mask bits
func (sr *StatusRegister) SetMaskBits(setMask, checkMask bool) {
	*sr &^= STATUS_SET_MASK | STATUS_CHECK_MASK
	*sr |= StatusRegister(oneIfTrue(setMask) << 11)
	*sr |= StatusRegister(oneIfTrue(checkMask) << 12)
}
