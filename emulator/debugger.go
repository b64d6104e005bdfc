package emulator

import (
	"github.com/davecgh/go-spew/spew"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
}

type Debugger struct {
	Breakpoints []uint8 // Opcodes that trigger the debugger
	Hits        uint64  // Number of breakpoints reached
	// Called when a breakpoint is reached, after the state has been logged.
	// Can be nil
	OnBreak func(gpu *GPU, packet *CommandBuffer)
}

func NewDebugger() *Debugger {
	return &Debugger{}
}

// Adds a breakpoint when a command with `opcode` is about to be executed
func (debugger *Debugger) AddBreakpoint(opcode uint8) {
	// check if that breakpoint already exists
	for _, breakpoint := range debugger.Breakpoints {
		if breakpoint == opcode {
			return
		}
	}
	debugger.Breakpoints = append(debugger.Breakpoints, opcode)
}

// Deletes a breakpoint at `opcode`. Does nothing if it doesn't exist
func (debugger *Debugger) DeleteBreakpoint(opcode uint8) {
	for idx, breakpoint := range debugger.Breakpoints {
		if breakpoint == opcode {
			// remove this breakpoint
			debugger.Breakpoints = append(debugger.Breakpoints[:idx], debugger.Breakpoints[idx+1:]...)
			return
		}
	}
}

// Called by the GPU before executing a command
func (debugger *Debugger) commandDispatched(gpu *GPU, packet *CommandBuffer) {
	opcode := packet.Command(0).Opcode()
	for _, breakpoint := range debugger.Breakpoints {
		if breakpoint == opcode {
			debugger.Hits++
			logger.Info("debugger: reached breakpoint",
				"opcode", opcode,
				"packet", spewConfig.Sdump(packet.Words()),
				"state", debugger.Dump(gpu))
			if debugger.OnBreak != nil {
				debugger.OnBreak(gpu, packet)
			}
			return
		}
	}
}

// Returns a human readable dump of the GPU drawing state
func (debugger *Debugger) Dump(gpu *GPU) string {
	return spewConfig.Sdump(gpu.State(), gpu.Status())
}
