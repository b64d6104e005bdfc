package emulator

// Holds the words written to GP0 that don't form a complete command yet.
// Once the command is complete it's executed and removed
type CommandFIFO struct {
	Buffer []uint32
}

// Returns a new CommandFIFO instance
func NewCommandFIFO() *CommandFIFO {
	return &CommandFIFO{Buffer: make([]uint32, 0, COMMAND_BUFFER_SIZE)}
}

// Returns true if the FIFO is empty
func (fifo *CommandFIFO) IsEmpty() bool {
	return len(fifo.Buffer) == 0
}

// Resets the FIFO
func (fifo *CommandFIFO) Clear() {
	fifo.Buffer = fifo.Buffer[:0]
}

// Pushes a word to the FIFO
func (fifo *CommandFIFO) Push(word uint32) {
	fifo.Buffer = append(fifo.Buffer, word)
}

func (fifo *CommandFIFO) PushSlice(words []uint32) {
	fifo.Buffer = append(fifo.Buffer, words...)
}

// Returns the queued words, oldest first. The slice is only valid until the
// next call that modifies the FIFO
func (fifo *CommandFIFO) Pending() []uint32 {
	return fifo.Buffer
}

// Drops the `n` oldest words
func (fifo *CommandFIFO) Consume(n int) {
	if n > len(fifo.Buffer) {
		panicFmt("fifo: consuming %d words, only %d queued", n, len(fifo.Buffer))
	}
	remaining := copy(fifo.Buffer, fifo.Buffer[n:])
	fifo.Buffer = fifo.Buffer[:remaining]
}

// Returns the amount of words in the FIFO
func (fifo *CommandFIFO) Length() int {
	return len(fifo.Buffer)
}
