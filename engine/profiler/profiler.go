package profiler

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Logs stats at a configurable interval and exports them as prometheus metrics.
type Profiler struct {
	logger *zap.Logger

	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now func() time.Time

	fps        prometheus.Gauge
	heapAlloc  prometheus.Gauge
	frameTimes prometheus.Histogram
	frames     prometheus.Counter
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithLogger sets the logger stats are written to.
//
// Parameters:
//   - logger: the logger (nil disables logging)
//
// Returns:
//   - ProfilerOption: functional option to set the logger
func WithLogger(logger *zap.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger == nil {
			logger = zap.NewNop()
		}
		p.logger = logger
	}
}

// WithInterval sets how often stats are logged.
//
// Parameters:
//   - interval: reporting interval (values <= 0 are ignored)
//
// Returns:
//   - ProfilerOption: functional option to set the interval
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithRegisterer registers the profiler's metrics on reg. A nil registerer is ignored.
//
// Parameters:
//   - reg: the prometheus registerer
//
// Returns:
//   - ProfilerOption: functional option to register metrics
func WithRegisterer(reg prometheus.Registerer) ProfilerOption {
	return func(p *Profiler) {
		if reg == nil {
			return
		}
		reg.MustRegister(p.fps, p.heapAlloc, p.frameTimes, p.frames)
	}
}

// withNow replaces the time source in tests.
func withNow(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		logger:         zap.NewNop(),
		updateInterval: time.Second,
		now:            time.Now,
		fps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "oxygl",
			Name:      "frames_per_second",
			Help:      "Frames rendered per second over the last reporting interval.",
		}),
		heapAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "oxygl",
			Name:      "heap_alloc_bytes",
			Help:      "Bytes of allocated heap objects at the last report.",
		}),
		frameTimes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "oxygl",
			Name:      "frame_seconds",
			Help:      "Wall-clock time between consecutive frames.",
			Buckets:   []float64{0.002, 0.004, 0.008, 0.0167, 0.033, 0.05, 0.1, 0.25},
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oxygl",
			Name:      "frames_total",
			Help:      "Frames rendered since start.",
		}),
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	p.lastFrame = p.lastTime
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()

	p.frames.Inc()
	p.frameTimes.Observe(currentTime.Sub(p.lastFrame).Seconds())
	p.lastFrame = currentTime

	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// Calculate GC pause stats (last pause and max recent pause)
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.fps.Set(fps)
	p.heapAlloc.Set(float64(p.memStats.Alloc))

	p.logger.Info("Frame stats",
		zap.Float64("fps", fps),
		zap.Float64("heapMB", allocMB),
		zap.Float64("allocRateMBs", allocRateMB),
		zap.Uint32("gc", gcCount),
		zap.Uint64("lastPauseUs", lastPauseUs),
		zap.Uint64("maxPauseUs", maxPauseUs),
		zap.Float64("sysMB", sysMB),
	)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
