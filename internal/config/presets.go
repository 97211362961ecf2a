package config

import "sort"

// Presets are named canvas layouts. Only the canvas geometry differs from
// DefaultConfig.
var Presets = map[string]*Config{
	"hd":     {CanvasWidth: 1680, CanvasHeight: 1050, BasePixelSize: 10},
	"icon":   {CanvasWidth: 320, CanvasHeight: 320, BasePixelSize: 10},
	"sprite": {CanvasWidth: 640, CanvasHeight: 640, BasePixelSize: 10},
	"banner": {CanvasWidth: 1280, CanvasHeight: 320, BasePixelSize: 8},
}

// GetPreset returns DefaultConfig with the named preset's geometry applied,
// or nil for an unknown name.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.ApplyGeometry(p)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) ApplyGeometry(p *Config) {
	c.CanvasWidth = p.CanvasWidth
	c.CanvasHeight = p.CanvasHeight
	c.BasePixelSize = p.BasePixelSize
}
