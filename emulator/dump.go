package emulator

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// A recorded stream of GP0 words, as written by the CPU or the DMA
type CommandDump struct {
	Words []uint32
}

// Loads a command dump from a reader. The dump is a flat list of 32 bit
// little endian words, so its size must be a multiple of 4
func LoadCommandDump(r io.Reader) (*CommandDump, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read command dump")
	}
	if len(data)%4 != 0 {
		return nil, errors.Errorf("invalid command dump size (%d bytes is not a multiple of 4)", len(data))
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	// success
	return &CommandDump{Words: words}, nil
}

// Returns the word at `index`
func (dump *CommandDump) Load32(index int) uint32 {
	return dump.Words[index]
}

// Returns the number of words in the dump
func (dump *CommandDump) Len() int {
	return len(dump.Words)
}

// Splits the dump in chunks of at most `size` words, the way a DMA would
// deliver them. Chunk boundaries don't care about command boundaries
func (dump *CommandDump) Chunks(size int) [][]uint32 {
	if size <= 0 {
		size = len(dump.Words)
	}
	var chunks [][]uint32
	for start := 0; start < len(dump.Words); start += size {
		end := start + size
		if end > len(dump.Words) {
			end = len(dump.Words)
		}
		chunks = append(chunks, dump.Words[start:end])
	}
	return chunks
}

// Writes `words` as a command dump
func WriteCommandDump(w io.Writer, words []uint32) error {
	buf := make([]byte, len(words)*4)
	for i, word := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], word)
	}
	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(err, "failed to write command dump")
	}
	return nil
}
