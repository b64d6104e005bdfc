package software

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/zeozeozeo/psxgpu/emulator"
)

func sameColor(a, b color.Color) bool {
	r0, g0, b0, a0 := a.RGBA()
	r1, g1, b1, a1 := b.RGBA()
	return r0 == r1 && g0 == g1 && b0 == b1 && a0 == a1
}

// Draws a red 8x8 rectangle at 2,2 on a 16x16 canvas
func drawRectangle(t *testing.T) *SoftwareRenderer {
	t.Helper()

	renderer := NewSoftwareRenderer(16, 16)
	t.Cleanup(func() { renderer.Close() })

	gpu := emulator.NewGPU(renderer)
	gpu.SetOutputSize(320, 240)
	gpu.ProcessCommands([]uint32{0x600000ff, 2<<16 | 2, 8<<16 | 8}, 0, 0)
	gpu.EndFrame()

	if err := renderer.Err(); err != nil {
		t.Fatal(err)
	}
	return renderer
}

func TestSoftwareRendererFill(t *testing.T) {
	renderer := drawRectangle(t)
	img := renderer.Image()

	red := color.RGBA{255, 0, 0, 255}
	if c := img.At(5, 5); !sameColor(c, red) {
		t.Errorf("inside pixel %v, expected %v", c, red)
	}
	if c := img.At(0, 0); !sameColor(c, color.Black) {
		t.Errorf("background pixel %v", c)
	}
	if c := img.At(12, 12); !sameColor(c, color.Black) {
		t.Errorf("pixel past the rectangle %v", c)
	}
	if renderer.Frames() != 1 {
		t.Errorf("%d frames", renderer.Frames())
	}
}

func TestSoftwareRendererClearsFrames(t *testing.T) {
	renderer := drawRectangle(t)
	renderer.Background = gg.White

	gpu := emulator.NewGPU(renderer)
	gpu.ProcessCommands([]uint32{0x6000ff00, 0, 1<<16 | 1}, 0, 0)
	gpu.EndFrame()

	if c := renderer.Image().At(5, 5); !sameColor(c, color.White) {
		t.Errorf("previous frame still visible: %v", c)
	}
}

func TestAverageColor(t *testing.T) {
	tri := []emulator.Vertex{
		{Color: color.RGBA{255, 0, 0, 255}},
		{Color: color.RGBA{0, 255, 0, 255}},
		{Color: color.RGBA{0, 0, 255, 255}},
	}
	want := color.RGBA{85, 85, 85, 255}
	if c := averageColor(tri); c != want {
		t.Errorf("got %v, expected %v", c, want)
	}
}

func TestSnapshot(t *testing.T) {
	renderer := drawRectangle(t)

	img := renderer.Snapshot(3)
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Fatalf("snapshot is %dx%d", b.Dx(), b.Dy())
	}
	if c := img.At(15, 15); !sameColor(c, color.RGBA{255, 0, 0, 255}) {
		t.Errorf("scaled pixel %v", c)
	}
	if renderer.Snapshot(1) == nil {
		t.Error("unscaled snapshot is nil")
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := renderer.SavePNG(path, 2); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("snapshot not written: %v", err)
	}
}
