//go:build darwin || linux || freebsd

package glfwctx

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{"zero", Config{}, Config{Title: "gl3", Size: image.Pt(800, 600), Major: 2}},
		{"desktop 3.3", Config{Title: "demo", Size: image.Pt(640, 480), Major: 3, Minor: 3, VSync: true},
			Config{Title: "demo", Size: image.Pt(640, 480), Major: 3, Minor: 3, VSync: true}},
		{"bad size", Config{Size: image.Pt(0, 100), ES: true, Major: 3}, Config{Title: "gl3", Size: image.Pt(800, 600), ES: true, Major: 3}},
		{"minor without major", Config{Minor: 5}, Config{Title: "gl3", Size: image.Pt(800, 600), Major: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.withDefaults())
		})
	}
}

func TestTerminatedContext(t *testing.T) {
	c := &Context{}
	assert.Error(t, c.Activate())
	assert.Error(t, c.SwapBuffers())
	assert.True(t, c.ShouldClose())
	c.Terminate()
}
