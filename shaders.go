package gl3

import (
	"embed"
	"io/fs"
	"log/slog"
	"path"
)

// builtinShaders holds the GLSL ES 1.00 sources of the built-in material
// renderers.
//
//go:embed shaders/*.vsh shaders/*.fsh
var builtinShaders embed.FS

const builtinShaderBase = "shaders"

// loadShaderData reads a vertex and a fragment shader from the shader
// file system. A missing file is logged and leaves its stage nil.
func (d *Driver) loadShaderData(vsName, fsName string) (vs, fs []byte) {
	return d.readShader(vsName), d.readShader(fsName)
}

func (d *Driver) readShader(name string) []byte {
	if name == "" {
		return nil
	}
	p := path.Join(d.shaderBase, name)
	if v, ok := d.shaderData.Get(p); ok {
		return v.([]byte)
	}
	data, err := fs.ReadFile(d.shaderFS, p)
	if err != nil {
		d.log.Warn("gl3: shader file unavailable", slog.String("file", p), slog.String("error", err.Error()))
		return nil
	}
	d.shaderData.Add(p, data)
	d.log.Debug("gl3: shader loaded", slog.String("file", p), slog.Int("bytes", len(data)))
	return data
}
