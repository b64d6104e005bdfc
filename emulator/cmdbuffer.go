package emulator

// Maximum number of words held by a command packet. The longest command is
// GP0(0x3C) (shaded textured quad) with 12 words, the packet is rounded up
// to 64 bytes
const COMMAND_BUFFER_SIZE = 16

// Buffer holding one command word and its fixed-length parameters
type CommandBuffer struct {
	Buffer [COMMAND_BUFFER_SIZE]uint32
	Len    uint8 // Number of words queued in the buffer
}

func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

// Clears the command buffer
func (cmdbuf *CommandBuffer) Clear() {
	cmdbuf.Len = 0
}

// Pushes a word (32 bit unsigned integer) into the command buffer
func (cmdbuf *CommandBuffer) PushWord(word uint32) {
	if int(cmdbuf.Len) >= len(cmdbuf.Buffer) {
		panicFmt("cmdbuffer: overflow pushing word 0x%x", word)
	}
	cmdbuf.Buffer[cmdbuf.Len] = word
	cmdbuf.Len++
}

// Replaces the buffer contents with `words`
func (cmdbuf *CommandBuffer) Fill(words []uint32) {
	if len(words) > len(cmdbuf.Buffer) {
		panicFmt("cmdbuffer: packet of %d words does not fit", len(words))
	}
	cmdbuf.Len = uint8(copy(cmdbuf.Buffer[:], words))
}

// Returns value at `index`
func (cmdbuf *CommandBuffer) Get(index uint8) uint32 {
	return cmdbuf.Buffer[index]
}

// Returns the word at `index` as a Command
func (cmdbuf *CommandBuffer) Command(index uint8) Command {
	return Command(cmdbuf.Buffer[index])
}

// Returns the 16 bit halfword at `index`, counting two halfwords per word
// (low halfword first, like a little endian view of the packet)
func (cmdbuf *CommandBuffer) Halfword(index uint8) uint16 {
	word := cmdbuf.Buffer[index/2]
	if index&1 != 0 {
		return uint16(word >> 16)
	}
	return uint16(word)
}

// Returns the queued words
func (cmdbuf *CommandBuffer) Words() []uint32 {
	return cmdbuf.Buffer[:cmdbuf.Len]
}
