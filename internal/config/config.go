package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCanvasWidth   = 1680
	DefaultCanvasHeight  = 1050
	DefaultBasePixelSize = 10
	DefaultGridColor     = "#cccccc"
	DefaultGridWidth     = 0.5
	DefaultRecentLimit   = 5
	DefaultColor         = "#000000"
	DefaultExportName    = "pixel-art.png"
	DefaultDataDir       = ".pixed"
)

// DefaultPalette holds the swatches offered by the front-ends.
var DefaultPalette = []string{"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF", "#00FFFF", "#000000", "#FFFFFF"}

type Config struct {
	CanvasWidth   int      `yaml:"canvas_width"`
	CanvasHeight  int      `yaml:"canvas_height"`
	BasePixelSize int      `yaml:"base_pixel_size"`
	GridLineColor string   `yaml:"grid_line_color"`
	GridLineWidth float64  `yaml:"grid_line_width"`
	Palette       []string `yaml:"palette"`
	RecentLimit   int      `yaml:"recent_limit"`
	DefaultColor  string   `yaml:"default_color"`
	ExportName    string   `yaml:"export_name"`
	DataDir       string   `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	palette := make([]string, len(DefaultPalette))
	copy(palette, DefaultPalette)
	return &Config{
		CanvasWidth:   DefaultCanvasWidth,
		CanvasHeight:  DefaultCanvasHeight,
		BasePixelSize: DefaultBasePixelSize,
		GridLineColor: DefaultGridColor,
		GridLineWidth: DefaultGridWidth,
		Palette:       palette,
		RecentLimit:   DefaultRecentLimit,
		DefaultColor:  DefaultColor,
		ExportName:    DefaultExportName,
		DataDir:       DefaultDataDir,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.BasePixelSize <= 0:
		return fmt.Errorf("%w: base_pixel_size must be positive", ErrInvalidConfig)
	case c.CanvasWidth < c.BasePixelSize || c.CanvasHeight < c.BasePixelSize:
		return fmt.Errorf("%w: canvas %dx%d smaller than one cell", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case c.GridLineWidth < 0:
		return fmt.Errorf("%w: grid_line_width must not be negative", ErrInvalidConfig)
	case c.RecentLimit < 0:
		return fmt.Errorf("%w: recent_limit must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) GridWidth() int  { return c.CanvasWidth / c.BasePixelSize }
func (c *Config) GridHeight() int { return c.CanvasHeight / c.BasePixelSize }
