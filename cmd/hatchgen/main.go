// Package main is the hatchgen CLI: it loads a scene file, generates hatch
// lines, and writes the plot as an SVG document.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/neurofuzzy/hatchplot3d/internal/config"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/export"
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

	scenePath := config.ScenePath()
	if scenePath == "" {
		logger.Error("no scene file given, use -scene")
		os.Exit(1)
	}

	sc, err := scene.Load(scenePath)
	if err != nil {
		logger.Error("failed to load scene", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("scene loaded",
		zap.String("path", scenePath),
		zap.Int("meshes", len(sc.Meshes())),
		zap.Int("lights", len(sc.Lights())),
	)

	paths := sc.Paths()
	logger.Info("hatch lines generated", zap.Int("paths", len(paths)))

	style := export.Style{
		StrokeWidth: cfg.Output.StrokeWidth,
		Stroke:      cfg.Theme.Foreground,
	}
	svg := sc.ExportSVG(uint32(cfg.Output.Width), uint32(cfg.Output.Height), style)

	if err := os.WriteFile(cfg.Output.Path, []byte(svg), 0644); err != nil {
		logger.Error("failed to write output", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("plot written",
		zap.String("path", cfg.Output.Path),
		zap.Int("width", cfg.Output.Width),
		zap.Int("height", cfg.Output.Height),
	)
}
