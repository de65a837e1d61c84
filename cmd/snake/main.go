package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/spritekit/lib/config"
	"github.com/fosdem/spritekit/lib/gameloop"
	"github.com/fosdem/spritekit/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [config file]\n", os.Args[0])
		os.Exit(2)
	}

	cfg := config.Default()
	if len(os.Args) == 2 {
		var err error
		cfg, err = config.Parse(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config invalid: %s\n", err)
			os.Exit(1)
		}
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Setup(level)

	err = gameloop.MakeWindowAndPlay(cfg)
	if err != nil {
		slog.Error("game failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
