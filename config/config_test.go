package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if level, _ := cfg.Level(); level != slog.LevelWarn {
		t.Errorf("default level %v", level)
	}
}

func TestDecode(t *testing.T) {
	src := `
dump: frames/menu.bin
backend: png
display:
  mode: 0x08000001
  scale: 3
trace: [0x02, 0xe5]
log_level: debug
`
	cfg, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Dump = "frames/menu.bin"
	want.Backend = BACKEND_PNG
	want.Display.Mode = 0x08000001
	want.Display.Scale = 3
	want.Trace = []int{0x02, 0xe5}
	want.LogLevel = "debug"
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("got %+v, expected %+v", cfg, want)
	}
	if level, _ := cfg.Level(); level != slog.LevelDebug {
		t.Errorf("level %v", level)
	}
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("empty config doesn't match the default: %+v", cfg)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, src := range []string{
		"backend: opengl",
		"display: {width: 0}",
		"display: {scale: -1}",
		"chunk_words: 0",
		"frame_words: -5",
		"trace: [256]",
		"log_level: loud",
		"unknown_key: 1",
		"dump: [",
	} {
		if _, err := Decode(strings.NewReader(src)); err == nil {
			t.Errorf("%q: expected an error", src)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Trace = []int{0x28}
	cfg.FrameWords = 1024

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, cfg) {
		t.Errorf("got %+v, expected %+v", decoded, cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "psxgpu.yaml")
	if err := os.WriteFile(path, []byte("backend: png\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != BACKEND_PNG {
		t.Errorf("backend %q", cfg.Backend)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
