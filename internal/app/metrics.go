package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame and input timing for the session log.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	// Input handling
	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64

	// External file changes handled
	fileEvents atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records the time taken to draw one frame.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)

	// Update max (atomic compare-and-swap loop)
	for {
		old := m.frameMaxNs.Load()
		if ns <= old {
			break
		}
		if m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInput records the time taken to handle one input event.
func (m *Metrics) RecordInput(duration time.Duration) {
	m.inputCount.Add(1)
	m.inputTotalNs.Add(duration.Nanoseconds())
}

// RecordFileEvent counts an external change to the open file.
func (m *Metrics) RecordFileEvent() {
	m.fileEvents.Add(1)
}

// MetricsSnapshot is a point-in-time copy of the metrics.
type MetricsSnapshot struct {
	FrameCount uint64
	AvgFrame   time.Duration
	MaxFrame   time.Duration
	InputCount uint64
	AvgInput   time.Duration
	FileEvents uint64
	Uptime     time.Duration
}

// Snapshot returns the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		FrameCount: m.frameCount.Load(),
		MaxFrame:   time.Duration(m.frameMaxNs.Load()),
		InputCount: m.inputCount.Load(),
		FileEvents: m.fileEvents.Load(),
		Uptime:     time.Since(m.startTime),
	}
	if s.FrameCount > 0 {
		s.AvgFrame = time.Duration(m.frameTotalNs.Load() / int64(s.FrameCount))
	}
	if s.InputCount > 0 {
		s.AvgInput = time.Duration(m.inputTotalNs.Load() / int64(s.InputCount))
	}
	return s
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
