package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/glintproject/glint/lib/config"
	"github.com/glintproject/glint/lib/log"
	"github.com/glintproject/glint/lib/viewer"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	log.Setup(slog.LevelDebug)

	if len(os.Args) < 2 {
		fatal(fmt.Sprintf("Usage: %s <config file>", os.Args[0]))
	}
	cfg, err := config.Parse(os.Args[1])
	if err != nil {
		fatal(err.Error())
	}

	err = viewer.MakeWindowAndView(cfg)
	if err != nil {
		fatal(err.Error())
	}
}

func fatal(msg string) {
	slog.Error(msg)
	os.Exit(1)
}
