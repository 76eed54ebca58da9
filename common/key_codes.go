package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyA     = 65  // A key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeyQ     = 81  // Q key (ASCII)
	KeyE     = 69  // E key (ASCII)
	KeyC     = 67  // C key (ASCII)
	KeyF     = 70  // F key (ASCII)
	KeyR     = 82  // R key (ASCII)
	KeyZ     = 90  // Z key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)

	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
)

// keyNames maps the names accepted in configuration files to key codes.
var keyNames = map[string]uint32{
	"space":         KeySpace,
	"escape":        KeyEsc,
	"esc":           KeyEsc,
	"right":         KeyRight,
	"left":          KeyLeft,
	"down":          KeyDown,
	"up":            KeyUp,
	"left_shift":    KeyLeftShift,
	"right_shift":   KeyRightShift,
	"left_control":  KeyLeftControl,
	"right_control": KeyRightControl,
}

// KeyCode resolves a key name to its virtual key code.
// Single letters and digits resolve to their upper-case ASCII value; named keys
// ("space", "left_shift", "up", ...) are matched case-insensitively.
//
// Parameters:
//   - name: the key name, e.g. "W", "space" or "left_shift"
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is not a known key
func KeyCode(name string) (uint32, bool) {
	name = strings.TrimSpace(name)
	if len(name) == 1 {
		ch := strings.ToUpper(name)[0]
		if (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			return uint32(ch), true
		}
		return 0, false
	}
	code, ok := keyNames[strings.ToLower(name)]
	return code, ok
}
