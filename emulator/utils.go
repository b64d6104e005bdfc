package emulator

import (
	"fmt"
)

// Formatted panic()
func panicFmt(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}

func oneIfTrue(val bool) uint32 {
	if val {
		return 1
	}
	return 0
}

// Sign-extends the low `bits` bits of `val` into a 32 bit signed integer.
// Bits above `bits` are ignored
func SignExtend(val uint32, bits uint) int32 {
	if bits == 0 || bits >= 32 {
		return int32(val)
	}
	mask := uint32(1)<<bits - 1
	val &= mask
	sign := uint32(1) << (bits - 1)
	// (v ^ s) - s
	return int32(val^sign) - int32(sign)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}
