package emulator

// Rough CPU cycle estimates for GPU commands. These are very conservative,
// the GPU has a FIFO that real hardware keeps feeding while it draws, which
// isn't modeled. Measured in CPU cycles at 33.8685MHz

const (
	POLY_BASE_CYCLES    = 23  // Setup cost of a flat triangle
	POLY_GOURAUD_CYCLES = 144 // Extra cost of per-vertex color interpolation
	LINE_BASE_CYCLES    = 8
	SPRITE_BASE_CYCLES  = 8
	FILL_BASE_CYCLES    = 23
)

// Cycles needed to fill a `w`x`h` rectangle. Fills work in 16 pixel blocks
func FillCycles(w, h uint32) int {
	return int(FILL_BASE_CYCLES + (4+w/16)*h)
}

// Cycles needed to draw `triangles` untextured triangles
func PolygonCycles(triangles int, gouraud bool) int {
	cycles := POLY_BASE_CYCLES
	if gouraud {
		cycles += POLY_GOURAUD_CYCLES
	}
	return cycles * triangles
}

// Cycles needed to draw a line between two points, proportional to its
// longest axis
func LineCycles(x0, y0, x1, y1 int) int {
	return LINE_BASE_CYCLES + maxInt(absInt(x1-x0), absInt(y1-y0))
}

// Cycles needed to draw a `w`x`h` rectangle (sprite)
func SpriteCycles(w, h uint32) int {
	return int(SPRITE_BASE_CYCLES + (w/2)*h)
}

// Keeps track of the estimated cost of the processed commands.
//
// The cost of a command is only added to `Sum` when the next costly command
// arrives, until then it's kept in `Last`. The caller gets `Last` back as a
// carry and feeds it to the next call, so the CPU is only charged for a
// command once the GPU has moved past it
type CycleCounter struct {
	Sum  int // Cycles accumulated during this call
	Last int // Cost of the most recent command, not yet in Sum
}

// Returns a new CycleCounter carrying `last` cycles over from a previous call
func NewCycleCounter(last int) *CycleCounter {
	return &CycleCounter{Last: last}
}

// Charges a new command costing `cycles`
func (cc *CycleCounter) Charge(cycles int) {
	cc.Sum += cc.Last
	cc.Last = cycles
}
