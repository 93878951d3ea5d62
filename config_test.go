package gl3

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Config
	}{
		{"empty", "", DefaultConfig()},
		{"size", "width = 1280\nheight = 720\n", func() Config {
			c := DefaultConfig()
			c.Width, c.Height = 1280, 720
			return c
		}()},
		{"validation", `validation = "full"`, func() Config {
			c := DefaultConfig()
			c.Validation = ValidationFull
			return c
		}()},
		{"zero values take defaults", "width = 0\nmax_vertex_count = -4\nshader_cache_size = 0\n", DefaultConfig()},
		{"mip maps off", "mip_maps = false", func() Config {
			c := DefaultConfig()
			c.MipMaps = false
			return c
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeConfig(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	for _, data := range []string{
		`validation = "paranoid"`,
		"width = ",
		`width = "wide"`,
	} {
		_, err := DecodeConfig(data)
		assert.Error(t, err, data)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gl3.toml")
	data := "width = 1920\nheight = 1080\nvalidation = \"none\"\nshader_path = \"assets\"\nunknown = 1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
	assert.Equal(t, ValidationNone, cfg.Validation)
	assert.Equal(t, "assets", cfg.ShaderPath)
	assert.Equal(t, DefaultConfig().MaxVertexCount, cfg.MaxVertexCount)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
