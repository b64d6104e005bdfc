package emulator

// Replays a command dump through a GPU, the way a CPU or DMA would deliver
// it: in chunks that ignore command boundaries, with the words of an
// incomplete command handed back in front of the next chunk
type Replayer struct {
	GPU        *GPU
	Dump       *CommandDump
	ChunkWords int          // Words per ProcessCommands call, 0 for a single call
	FrameWords int          // Words per frame, 0 for the whole dump
	Cycles     CycleCounter // Cycles of everything replayed so far
	Frames     uint64       // Number of frames replayed

	pos     int
	pending []uint32
}

// Returns a new Replayer
func NewReplayer(gpu *GPU, dump *CommandDump, chunkWords, frameWords int) *Replayer {
	return &Replayer{
		GPU:        gpu,
		Dump:       dump,
		ChunkWords: chunkWords,
		FrameWords: frameWords,
	}
}

// Returns true once every word of the dump was handed to the GPU
func (r *Replayer) Done() bool {
	return r.pos >= r.Dump.Len()
}

// Returns the words of an incomplete command waiting for more data
func (r *Replayer) Pending() []uint32 {
	return r.pending
}

// Replays the next frame and closes its batch. Returns false if the dump was
// already fully replayed
func (r *Replayer) NextFrame() bool {
	if r.Done() {
		return false
	}

	end := r.Dump.Len()
	if r.FrameWords > 0 && r.pos+r.FrameWords < end {
		end = r.pos + r.FrameWords
	}
	frame := &CommandDump{Words: r.Dump.Words[r.pos:end]}
	for _, chunk := range frame.Chunks(r.ChunkWords) {
		r.feed(chunk)
	}
	r.pos = end

	r.GPU.EndFrame()
	r.Frames++

	if r.Done() && len(r.pending) != 0 {
		logger.Warn("replay: dump ends with an incomplete command",
			"opcode", Command(r.pending[0]).Opcode(), "words", len(r.pending))
	}
	return true
}

// Replays the rest of the dump, frame by frame
func (r *Replayer) Run() {
	for r.NextFrame() {
	}
}

func (r *Replayer) feed(chunk []uint32) {
	words := append(r.pending, chunk...)
	res := r.GPU.ProcessCommands(words, r.Cycles.Last, r.Cycles.Sum)
	r.Cycles.Sum = res.CyclesSum
	r.Cycles.Last = res.CyclesLast
	r.pending = append([]uint32(nil), words[res.Consumed:]...)
}
