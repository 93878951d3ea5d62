package gl3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gl3/gl"
)

func TestParseValidationLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    ValidationLevel
		wantErr bool
	}{
		{"none", ValidationNone, false},
		{"off", ValidationNone, false},
		{"", ValidationBasic, false},
		{" Basic ", ValidationBasic, false},
		{"FULL", ValidationFull, false},
		{"debug", ValidationFull, false},
		{"verbose", ValidationNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValidationLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationLevelText(t *testing.T) {
	for _, v := range []ValidationLevel{ValidationNone, ValidationBasic, ValidationFull} {
		b, err := v.MarshalText()
		require.NoError(t, err)
		var got ValidationLevel
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, v, got)
	}
	assert.Equal(t, "ValidationLevel(9)", ValidationLevel(9).String())

	v := ValidationFull
	assert.Error(t, v.UnmarshalText([]byte("loud")))
	assert.Equal(t, ValidationFull, v, "failed unmarshal keeps the old value")
}

func TestGLError(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		d, g := newTestDriver(t, nil, WithValidation(ValidationNone))
		g.PushError(gl.InvalidValue)
		assert.False(t, d.TestGLError("none"))
		d.validation = ValidationBasic
		assert.True(t, d.TestGLError("none"), "the error was left queued")
	})
	t.Run("clean", func(t *testing.T) {
		d, _ := newTestDriver(t, nil)
		assert.False(t, d.TestGLError("clean"))
	})
	t.Run("drains", func(t *testing.T) {
		d, g := newTestDriver(t, nil)
		g.PushError(gl.InvalidValue)
		g.PushError(gl.InvalidOperation)
		assert.True(t, d.TestGLError("drain"))
		assert.False(t, d.TestGLError("drain"))
	})
	t.Run("bounded", func(t *testing.T) {
		d, g := newTestDriver(t, nil)
		for range maxErrorDrain + 4 {
			g.PushError(gl.OutOfMemory)
		}
		assert.True(t, d.TestGLError("bounded"))
		assert.True(t, d.TestGLError("bounded"), "the rest stays queued")
		assert.False(t, d.TestGLError("bounded"))
	})
}

func TestValidationChecks(t *testing.T) {
	tests := []struct {
		level       ValidationLevel
		basic, full bool
	}{
		{ValidationNone, false, false},
		{ValidationBasic, true, false},
		{ValidationFull, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			d, g := newTestDriver(t, nil, WithValidation(tt.level))
			g.PushError(gl.InvalidEnum)
			assert.Equal(t, tt.full, d.checkFull("full"))
			g.PushError(gl.InvalidEnum)
			assert.Equal(t, tt.basic, d.checkBasic("basic"))
		})
	}
}
