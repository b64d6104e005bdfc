package emulator

import "testing"

func TestOpcodeRange(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(POLYGON_RANGE.Contains(0x20))
	assert(POLYGON_RANGE.Contains(0x3f))
	assert(!POLYGON_RANGE.Contains(0x40))
	assert(!POLYGON_RANGE.Contains(0x1f))
	assert(LINE_RANGE.Offset(0x50) == 0x10)

	// the last range touches the top of the opcode space
	top := NewOpcodeRange(0xe0, 0x20)
	assert(top.Contains(0xff))

	seen := 0
	top.Each(func(opcode uint8) {
		assert(top.Contains(opcode))
		seen++
	})
	assert(seen == 0x20)
}
