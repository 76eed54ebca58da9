package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestExtractFrustumContainsSphere(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 100)
	f := ExtractFrustum(proj.Mul4(view))

	for i, p := range f.Planes {
		assert.InDelta(t, 1, p.Normal.Len(), 1e-5, "plane %d not normalized", i)
	}

	data := []struct {
		name   string
		center mgl32.Vec3
		radius float32
		inside bool
	}{
		{"straight ahead", mgl32.Vec3{0, 0, -5}, 1, true},
		{"behind camera", mgl32.Vec3{0, 0, 10}, 1, false},
		{"beyond far plane", mgl32.Vec3{0, 0, -200}, 1, false},
		{"far to the left", mgl32.Vec3{-100, 0, -5}, 1, false},
		{"straddling near plane", mgl32.Vec3{0, 0, 3.5}, 1, true},
		{"above view", mgl32.Vec3{0, 50, -5}, 1, false},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			assert.Equal(t, d.inside, f.ContainsSphere(d.center, d.radius))
		})
	}
}

func TestPlaneSignedDistance(t *testing.T) {
	p := Plane{Normal: mgl32.Vec3{0, 1, 0}, Distance: -2}
	assert.InDelta(t, 3, p.SignedDistance(mgl32.Vec3{7, 5, 1}), 1e-6)
	assert.InDelta(t, -2, p.SignedDistance(mgl32.Vec3{0, 0, 0}), 1e-6)
}
