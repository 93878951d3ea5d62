package gl3

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the file form of the driver options.
//
//	width = 1280
//	height = 720
//	validation = "full"
//	mip_maps = true
type Config struct {
	Width           int             `toml:"width"`
	Height          int             `toml:"height"`
	Validation      ValidationLevel `toml:"validation"`
	MipMaps         bool            `toml:"mip_maps"`
	MaxVertexCount  int             `toml:"max_vertex_count"`
	ShaderCacheSize int             `toml:"shader_cache_size"`
	ShaderPath      string          `toml:"shader_path"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		Validation:      ValidationBasic,
		MipMaps:         true,
		MaxVertexCount:  65536,
		ShaderCacheSize: 32,
	}
}

// withDefaults fills zero numeric fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.MaxVertexCount <= 0 {
		c.MaxVertexCount = d.MaxVertexCount
	}
	if c.ShaderCacheSize <= 0 {
		c.ShaderCacheSize = d.ShaderCacheSize
	}
	return c
}

// LoadConfig reads a TOML configuration file. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("gl3: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		Logger().Warn("gl3: unknown config keys", "file", path, "keys", fmt.Sprint(undecoded))
	}
	return cfg.withDefaults(), nil
}

// DecodeConfig parses a TOML configuration from a string.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("gl3: decode config: %w", err)
	}
	return cfg.withDefaults(), nil
}
