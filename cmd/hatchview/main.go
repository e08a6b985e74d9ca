// Package main is the hatchview preview: it loads a scene file, generates
// hatch lines, and shows the projected plot in a window.
package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/neurofuzzy/hatchplot3d/internal/config"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/preview"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/window"
	"github.com/neurofuzzy/hatchplot3d/internal/logger"
	"github.com/neurofuzzy/hatchplot3d/internal/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("preview error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	scenePath := config.ScenePath()
	if scenePath == "" {
		return fmt.Errorf("no scene file given, use -scene")
	}

	sc, err := scene.Load(scenePath)
	if err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}

	paths := sc.Paths()
	logger.Info("hatch lines generated", zap.Int("paths", len(paths)))

	fg, err := preview.ParseHexColor(cfg.Theme.Foreground)
	if err != nil {
		return err
	}
	bg, err := preview.ParseHexColor(cfg.Theme.Background)
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:  "hatchplot3d preview",
		Width:  cfg.Preview.Width,
		Height: cfg.Preview.Height,
		VSync:  cfg.Preview.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	r, err := preview.New(cfg.Preview.Width, cfg.Preview.Height, fg, bg)
	if err != nil {
		return err
	}
	defer r.Close()

	r.SetPaths(paths, sc.Camera())

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}

		r.Draw()
		win.SwapBuffers()
		sdl.Delay(16)
	}
}
