package profiler

import (
	"runtime"
	"time"
)

// Sample is what one rendered frame reports.
type Sample struct {
	FrameTime time.Duration
	Commands  int
	Widgets   int
	States    int
}

// Stats turns per-frame samples into a rate that updates once per window.
// FPS and FrameTime keep their last published values between windows.
type Stats struct {
	window    time.Duration
	elapsed   time.Duration
	frames    int
	fps       float64
	frameTime time.Duration
	last      Sample
	total     uint64
}

// NewStats publishes every window; a non-positive window means one second.
func NewStats(window time.Duration) *Stats {
	if window <= 0 {
		window = time.Second
	}
	return &Stats{window: window}
}

// Record adds a frame that took dt wall time since the previous one.
func (s *Stats) Record(dt time.Duration, sm Sample) {
	s.last = sm
	s.total++
	s.frames++
	s.elapsed += dt
	if s.elapsed < s.window {
		return
	}
	s.fps = float64(s.frames) / s.elapsed.Seconds()
	s.frameTime = sm.FrameTime
	s.frames = 0
	s.elapsed = 0
}

func (s *Stats) FPS() float64             { return s.fps }
func (s *Stats) FrameTime() time.Duration { return s.frameTime }
func (s *Stats) Last() Sample             { return s.last }
func (s *Stats) Frames() uint64           { return s.total }

// Health buckets a frame rate for the overlay indicator.
type Health int

const (
	Smooth Health = iota // 55 fps and up
	Choppy               // 30 to 55
	Slow
)

func HealthOf(fps float64) Health {
	switch {
	case fps >= 55:
		return Smooth
	case fps >= 30:
		return Choppy
	}
	return Slow
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func NumGoroutine() int {
	return runtime.NumGoroutine()
}
