package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestTick(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClock(WithNow(ft.now))

	// no time has passed since construction
	assert.Equal(t, float32(0), c.Tick())

	ft.advance(16 * time.Millisecond)
	assert.InDelta(t, 0.016, c.Tick(), 1e-6)

	ft.advance(250 * time.Millisecond)
	assert.InDelta(t, 0.25, c.Tick(), 1e-6)

	assert.InDelta(t, 0.266, c.Elapsed(), 1e-6)
	assert.Equal(t, uint64(3), c.Ticks())
}

func TestFirstTickMeasuresFromConstruction(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClock(WithNow(ft.now))

	ft.advance(500 * time.Millisecond)
	assert.InDelta(t, 0.5, c.Tick(), 1e-6)
	assert.InDelta(t, 0.5, c.Elapsed(), 1e-6)

	ft.advance(20 * time.Millisecond)
	assert.InDelta(t, 0.02, c.Tick(), 1e-6)
	assert.Equal(t, uint64(2), c.Ticks())
}

func TestTickNeverNegative(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClock(WithNow(ft.now))

	ft.advance(-time.Second)
	assert.Equal(t, float32(0), c.Tick())
	assert.Equal(t, float32(0), c.Elapsed())

	ft.advance(2 * time.Second)
	assert.InDelta(t, 2, c.Tick(), 1e-6)
}

func TestElapsedTracksLastTick(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := NewClock(WithNow(ft.now))
	ft.advance(time.Second)
	assert.Equal(t, float32(0), c.Elapsed())
	c.Tick()
	assert.InDelta(t, 1, c.Elapsed(), 1e-6)
}
