// Package config handles tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Theme   ThemeConfig   `yaml:"theme"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds SVG export settings.
type OutputConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Path        string  `yaml:"path"`
}

// ThemeConfig holds the plot colors. Foreground is the stroke color the
// serializer resolves; background is used by the preview window.
type ThemeConfig struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// PreviewConfig holds preview window settings.
type PreviewConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Width:       800,
			Height:      600,
			StrokeWidth: 1.0,
			Path:        "hatch.svg",
		},
		Theme: ThemeConfig{
			Foreground: "#1a1a1a",
			Background: "#fafafa",
		},
		Preview: PreviewConfig{
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
