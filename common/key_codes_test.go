package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCode(t *testing.T) {
	data := []struct {
		name string
		code uint32
		ok   bool
	}{
		{"W", KeyW, true},
		{"w", KeyW, true},
		{" q ", KeyQ, true},
		{"7", 55, true},
		{"space", KeySpace, true},
		{"Left_Shift", KeyLeftShift, true},
		{"esc", KeyEsc, true},
		{"up", KeyUp, true},
		{"?", 0, false},
		{"", 0, false},
		{"hyper", 0, false},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			code, ok := KeyCode(d.name)
			assert.Equal(t, d.ok, ok)
			assert.Equal(t, d.code, code)
		})
	}
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, float32(0), Coalesce[float32](0, 0))
	assert.Equal(t, 3, Coalesce(0, 3))
}
