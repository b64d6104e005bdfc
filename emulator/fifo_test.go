package emulator

import "testing"

func TestCommandFIFO(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	fifo := NewCommandFIFO()
	assert(fifo.IsEmpty())

	fifo.PushSlice([]uint32{1, 2, 3})
	fifo.Push(4)
	assert(fifo.Length() == 4)
	assert(fifo.Pending()[0] == 1)

	fifo.Consume(3)
	assert(fifo.Length() == 1)
	assert(fifo.Pending()[0] == 4)

	fifo.Consume(0)
	assert(fifo.Length() == 1)

	fifo.Clear()
	assert(fifo.IsEmpty())
}
