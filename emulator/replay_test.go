package emulator

import (
	"reflect"
	"testing"
)

func TestReplayerChunkSizes(t *testing.T) {
	refGPU, refDD := newTestGPU()
	ref := NewReplayer(refGPU, &CommandDump{Words: mixedList}, 0, 0)
	ref.Run()
	if ref.Frames != 1 || len(refDD.Runs) != 3 {
		t.Fatalf("reference replay: %d frames, %d runs", ref.Frames, len(refDD.Runs))
	}

	// the output can't depend on where the chunks are cut
	for size := 1; size <= len(mixedList); size++ {
		gpu, dd := newTestGPU()
		r := NewReplayer(gpu, &CommandDump{Words: mixedList}, size, 0)
		r.Run()

		if len(r.Pending()) != 0 {
			t.Errorf("chunk size %d: %d words pending", size, len(r.Pending()))
		}
		if !reflect.DeepEqual(dd.Runs, refDD.Runs) {
			t.Errorf("chunk size %d: runs differ", size)
		}
		if r.Cycles != ref.Cycles {
			t.Errorf("chunk size %d: cycles %+v, expected %+v", size, r.Cycles, ref.Cycles)
		}
		if gpu.State() != refGPU.State() {
			t.Errorf("chunk size %d: state differs", size)
		}
	}
}

func TestReplayerFrames(t *testing.T) {
	gpu, dd := newTestGPU()

	// the first frame ends inside the rectangle command
	r := NewReplayer(gpu, &CommandDump{Words: mixedList}, 4, 10)
	if !r.NextFrame() {
		t.Fatal("nothing replayed")
	}
	if len(r.Pending()) != 1 || dd.Batches != 1 || len(dd.Runs) != 1 {
		t.Errorf("first frame: %d pending, %d batches, %d runs", len(r.Pending()), dd.Batches, len(dd.Runs))
	}

	if !r.NextFrame() {
		t.Fatal("second frame not replayed")
	}
	if len(r.Pending()) != 0 || dd.Batches != 2 || len(dd.Runs) != 2 {
		t.Errorf("second frame: %d pending, %d batches, %d runs", len(r.Pending()), dd.Batches, len(dd.Runs))
	}
	if !r.Done() || r.NextFrame() || r.Frames != 2 {
		t.Error("replay didn't stop at the end of the dump")
	}
}

func TestReplayerIncompleteTail(t *testing.T) {
	gpu, dd := newTestGPU()

	words := append(append([]uint32{}, mixedList...), 0x28ffffff, xy(0, 0))
	r := NewReplayer(gpu, &CommandDump{Words: words}, 5, 0)
	r.Run()

	if len(r.Pending()) != 2 || r.Pending()[0] != 0x28ffffff {
		t.Errorf("pending %x", r.Pending())
	}
	if len(dd.Runs) != 3 {
		t.Errorf("%d runs, the incomplete quad must not draw", len(dd.Runs))
	}
}
