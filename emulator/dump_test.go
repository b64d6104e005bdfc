package emulator

import (
	"bytes"
	"testing"
)

func TestLoadCommandDump(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	data := []byte{
		0x33, 0x22, 0x11, 0x20,
		0x0a, 0x00, 0x14, 0x00,
	}
	dump, err := LoadCommandDump(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	assert(dump.Len() == 2)
	assert(dump.Load32(0) == 0x20112233)
	assert(dump.Load32(1) == 0x0014000a)

	var out bytes.Buffer
	if err := WriteCommandDump(&out, dump.Words); err != nil {
		t.Fatal(err)
	}
	assert(bytes.Equal(out.Bytes(), data))
}

func TestLoadCommandDumpInvalidSize(t *testing.T) {
	_, err := LoadCommandDump(bytes.NewReader([]byte{1, 2, 3}))
	if err == nil {
		t.Error("expected an error for a truncated dump")
	}
}

func TestCommandDumpChunks(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	dump := &CommandDump{Words: []uint32{1, 2, 3, 4, 5}}
	chunks := dump.Chunks(2)
	assert(len(chunks) == 3)
	assert(len(chunks[2]) == 1 && chunks[2][0] == 5)

	all := dump.Chunks(0)
	assert(len(all) == 1 && len(all[0]) == 5)
}
