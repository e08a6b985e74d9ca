package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagScene  = flag.String("scene", "", "Path to scene file")
	flagOut    = flag.String("out", "", "Output SVG path")
	flagWidth  = flag.Int("width", 0, "Output width in pixels")
	flagHeight = flag.Int("height", 0, "Output height in pixels")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// ScenePath returns the scene file path provided via --scene flag.
func ScenePath() string {
	return *flagScene
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagWidth > 0 {
		cfg.Output.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Output.Height = *flagHeight
	}
}
