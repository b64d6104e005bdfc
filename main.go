package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"
	"github.com/zeozeozeo/psxgpu/bridge/ebitenbridge"
	"github.com/zeozeozeo/psxgpu/bridge/software"
	"github.com/zeozeozeo/psxgpu/config"
	"github.com/zeozeozeo/psxgpu/emulator"
)

func main() {
	// parse arguments
	configPath := flag.String("config", "", "path to a YAML config file")
	dumpPath := flag.String("dump", "", "path to the GP0 command dump")
	backend := flag.String("backend", "", "renderer backend (ebiten or png)")
	snapshot := flag.String("snapshot", "", "PNG file written by the png backend")
	scale := flag.Int("scale", 0, "window or snapshot magnification")
	logLevel := flag.String("log", "", "log level (debug, info, warn or error)")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *dumpPath != "" {
		cfg.Dump = *dumpPath
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *snapshot != "" {
		cfg.Snapshot = *snapshot
	}
	if *scale != 0 {
		cfg.Display.Scale = *scale
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	setupLogger(cfg)
	dump := loadDump(cfg.Dump)

	switch cfg.Backend {
	case config.BACKEND_EBITEN:
		runWindow(cfg, dump)
	case config.BACKEND_PNG:
		runSnapshot(cfg, dump)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func setupLogger(cfg *config.Config) {
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	emulator.SetLogger(logger)
	gg.SetLogger(logger)
}

func loadDump(path string) *emulator.CommandDump {
	log.Printf("loading command dump \"%s\"", path)
	start := time.Now()

	// read dump
	file, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	// load dump
	dump, err := emulator.LoadCommandDump(file)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("loaded %d words in %s", dump.Len(), time.Since(start))
	return dump
}

func newGPU(cfg *config.Config, rasterizer emulator.Rasterizer) *emulator.GPU {
	gpu := emulator.NewGPU(rasterizer)
	if cfg.Display.Mode != 0 {
		gpu.GP1(cfg.Display.Mode)
	}
	gpu.SetOutputSize(cfg.Display.Width, cfg.Display.Height)

	if len(cfg.Trace) != 0 {
		gpu.Debugger = emulator.NewDebugger()
		for _, opcode := range cfg.Trace {
			gpu.Debugger.AddBreakpoint(uint8(opcode))
		}
	}
	return gpu
}

func logSummary(replayer *emulator.Replayer) {
	log.Printf("replayed %d frames, %d cycles", replayer.Frames,
		replayer.Cycles.Sum+replayer.Cycles.Last)
}

// Replays the dump a frame per tick in a window
func runWindow(cfg *config.Config, dump *emulator.CommandDump) {
	renderer := ebitenbridge.NewEbitenRenderer()
	gpu := newGPU(cfg, renderer)
	replayer := emulator.NewReplayer(gpu, dump, cfg.ChunkWords, cfg.FrameWords)

	step := func() error {
		if replayer.NextFrame() && replayer.Done() {
			logSummary(replayer)
		}
		return nil
	}

	game := ebitenbridge.NewGame(renderer, step, cfg.Display.Width, cfg.Display.Height)
	if err := game.Run("psxgpu - "+cfg.Dump, cfg.Display.Scale); err != nil {
		log.Fatal(err)
	}
}

// Replays the whole dump headless and saves the last frame
func runSnapshot(cfg *config.Config, dump *emulator.CommandDump) {
	renderer := software.NewSoftwareRenderer(cfg.Display.Width, cfg.Display.Height)
	defer renderer.Close()

	gpu := newGPU(cfg, renderer)
	replayer := emulator.NewReplayer(gpu, dump, cfg.ChunkWords, cfg.FrameWords)

	start := time.Now()
	replayer.Run()
	logSummary(replayer)
	log.Printf("rendered in %s", time.Since(start))

	if err := renderer.Err(); err != nil {
		log.Fatal(err)
	}
	if err := renderer.SavePNG(cfg.Snapshot, cfg.Display.Scale); err != nil {
		log.Fatal(err)
	}
	log.Printf("saved snapshot \"%s\"", cfg.Snapshot)
}
