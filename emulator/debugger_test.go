package emulator

import (
	"strings"
	"testing"
)

func TestDebuggerBreakpoints(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	debugger := NewDebugger()
	debugger.AddBreakpoint(0xe5)
	debugger.AddBreakpoint(0xe5)
	debugger.AddBreakpoint(0x20)
	assert(len(debugger.Breakpoints) == 2)

	var seen []uint8
	debugger.OnBreak = func(gpu *GPU, packet *CommandBuffer) {
		seen = append(seen, packet.Command(0).Opcode())
	}

	gpu := NewGPU(nil)
	gpu.Debugger = debugger
	gpu.ProcessCommands([]uint32{
		0xe5000000 | (7 << 11) | 0x7fb,
		0x00000000,
		0x20ff0000, 0x00000000, 0x00000010, 0x00100000,
	}, 0, 0)

	assert(debugger.Hits == 2)
	assert(len(seen) == 2 && seen[0] == 0xe5 && seen[1] == 0x20)

	// state after the whole list ran
	assert(strings.Contains(debugger.Dump(gpu), "DrawingXOffset: (int16) -5"))

	debugger.DeleteBreakpoint(0xe5)
	debugger.DeleteBreakpoint(0x99)
	assert(len(debugger.Breakpoints) == 1 && debugger.Breakpoints[0] == 0x20)
}
