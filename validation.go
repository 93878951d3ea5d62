package gl3

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/gl3/gl"
)

// ValidationLevel selects how much GL error checking a driver performs.
type ValidationLevel uint8

const (
	// ValidationNone never queries GL errors.
	ValidationNone ValidationLevel = iota
	// ValidationBasic checks after resource operations: creation, uploads,
	// render target attachment and screenshots.
	ValidationBasic
	// ValidationFull also checks after every draw and checks framebuffer
	// completeness on every render target switch.
	ValidationFull
)

// String returns the configuration name of the level.
func (v ValidationLevel) String() string {
	switch v {
	case ValidationNone:
		return "none"
	case ValidationBasic:
		return "basic"
	case ValidationFull:
		return "full"
	default:
		return fmt.Sprintf("ValidationLevel(%d)", uint8(v))
	}
}

// ParseValidationLevel parses "none", "basic" or "full".
func ParseValidationLevel(s string) (ValidationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return ValidationNone, nil
	case "basic", "":
		return ValidationBasic, nil
	case "full", "debug":
		return ValidationFull, nil
	}
	return ValidationNone, fmt.Errorf("gl3: unknown validation level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (v ValidationLevel) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ValidationLevel) UnmarshalText(b []byte) error {
	l, err := ParseValidationLevel(string(b))
	if err != nil {
		return err
	}
	*v = l
	return nil
}

// maxErrorDrain bounds the GetError loop; a lost context can report
// errors forever.
const maxErrorDrain = 16

// TestGLError drains the GL error queue and logs every error found under
// the where tag. It reports whether any error was pending. With
// ValidationNone it does nothing and returns false, so callers must not
// base control flow on it.
func (d *Driver) TestGLError(where string) bool {
	if d.validation == ValidationNone {
		return false
	}
	found := false
	for range maxErrorDrain {
		code := d.gl.GetError()
		if code == gl.NoError {
			break
		}
		found = true
		d.log.Error("gl3: GL error",
			slog.String("error", gl.ErrorString(code)),
			slog.String("where", where))
	}
	return found
}

// checkBasic runs TestGLError when at least basic validation is on.
func (d *Driver) checkBasic(where string) bool {
	return d.validation >= ValidationBasic && d.TestGLError(where)
}

// checkFull runs TestGLError only under full validation.
func (d *Driver) checkFull(where string) bool {
	return d.validation >= ValidationFull && d.TestGLError(where)
}
