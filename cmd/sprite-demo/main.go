package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/spritekit/lib/config"
	"github.com/fosdem/spritekit/lib/kbdctl"
	"github.com/fosdem/spritekit/lib/log"
	"github.com/fosdem/spritekit/lib/rendering"
	"github.com/fosdem/spritekit/lib/rendering/shaders"
	"github.com/fosdem/spritekit/lib/sprite"
	"github.com/fosdem/spritekit/lib/utils"
	"github.com/fosdem/spritekit/lib/window"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	titlePtr := flag.String("title", "C Test Game", "Window title")
	widthPtr := flag.Uint("width", 800, "Width of the window")
	heightPtr := flag.Uint("height", 600, "Height of the window")
	debugPtr := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *debugPtr {
		level = slog.LevelDebug
	}
	log.Setup(level)

	if err := run(*titlePtr, int(*widthPtr), int(*heightPtr)); err != nil {
		slog.Error("sprite demo failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(title string, width, height int) error {
	cfg := config.Default().Window
	cfg.Title = title
	cfg.Width = width
	cfg.Height = height
	if err := cfg.Validate(); err != nil {
		return err
	}

	w, err := window.New(cfg)
	if err != nil {
		return err
	}
	defer w.Destroy()
	kbdctl.SetupShortcutKeys(w, w.RequestClose)

	program, err := rendering.BuildGLProgram(shaders.DefaultShaderData())
	if err != nil {
		return err
	}
	renderer := rendering.NewRenderer(w.Width, w.Height, program)
	renderer.Start()
	defer renderer.Delete()

	red := sprite.New(100, 150, 50, 50, 255, 0, 0)
	green := sprite.New(200, 300, 60, 60, 0, 255, 0)
	white := utils.ColourParse("#ffffffff")

	for !w.ShouldClose() {
		w.Clear()
		renderer.StartFrame()
		renderer.DrawSprite(red)
		renderer.DrawSprite(green)
		renderer.DrawText(red.String(), red.X, red.Y-4, 1, white)
		renderer.DrawText(green.String(), green.X, green.Y-4, 1, white)
		w.Update()
	}
	return nil
}
