package sim

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Status identifies the branch the controller took on its latest Update.
type Status int

const (
	// StatusNoData means no acknowledgment arrived this tick.
	StatusNoData Status = iota
	// StatusNotReady means the controller is still in post-adjustment cooldown.
	StatusNotReady
	// StatusWaiting means latency samples are still accumulating.
	StatusWaiting
	// StatusSlowDown means the latency trend worsened and the window shrank.
	StatusSlowDown
	// StatusSpeedUp means latency held steady under full utilization and the window grew.
	StatusSpeedUp
	// StatusUnsaturated means the trend allowed growth but the window went unused.
	StatusUnsaturated
)

func (s Status) String() string {
	switch s {
	case StatusNoData:
		return "no data"
	case StatusNotReady:
		return "not ready"
	case StatusWaiting:
		return "waiting"
	case StatusSlowDown:
		return "slow down"
	case StatusSpeedUp:
		return "speed up"
	case StatusUnsaturated:
		return "unsaturated"
	}
	return "unknown"
}

// WindowController adjusts the sender's outstanding-byte budget from
// round-trip latency trends. It is an additive-increase/additive-decrease
// scheme over fixed-size sample windows: the mean latency of the latest
// window is compared against the previous window's mean, and the budget
// only grows when the link stayed saturated for the entire window. That
// last rule keeps the window from growing without bound while idle.
type WindowController struct {
	window          int64
	prev            float64
	samples         []float64
	sampleSize      int
	increaseStep    int64
	decreaseStep    int64
	alwaysSaturated bool
	next            int64
	status          Status
}

// NewWindowController creates a controller with cfg's tuning, eligible for
// its first adjustment at time now. Panics on a non-positive sample size or
// step (caller contract violation).
func NewWindowController(cfg ControllerConfig, now int64) *WindowController {
	if cfg.SampleSize <= 0 {
		panic("NewWindowController: sample size must be positive")
	}
	if cfg.IncreaseStep <= 0 || cfg.DecreaseStep <= 0 {
		panic("NewWindowController: steps must be positive")
	}
	return &WindowController{
		window:          cfg.InitialWindow,
		prev:            math.Inf(1),
		samples:         make([]float64, 0, cfg.SampleSize),
		sampleSize:      cfg.SampleSize,
		increaseStep:    cfg.IncreaseStep,
		decreaseStep:    cfg.DecreaseStep,
		alwaysSaturated: true,
		next:            now,
		status:          StatusNoData,
	}
}

// Update feeds one tick's observation into the controller and returns the
// capacity delta the sender should apply. latencyOK is false when no
// acknowledgment arrived this tick. outstanding is the sender's pre-ack
// in-flight byte count; lastAckTime and released are carried for the debug
// log only.
func (c *WindowController) Update(latency int64, latencyOK bool, now, outstanding, lastAckTime, released int64) int64 {
	if !latencyOK {
		c.status = StatusNoData
		return 0
	}
	if now < c.next {
		// Cooldown after an adjustment: let the change take effect before
		// sampling again. Latency observed in this interval is discarded.
		c.status = StatusNotReady
		return 0
	}

	if outstanding < c.window {
		// Growth requires saturation on every tick of the sampling
		// interval, not just the last one.
		c.alwaysSaturated = false
	}

	c.samples = append(c.samples, float64(latency))
	if len(c.samples) < c.sampleSize {
		c.status = StatusWaiting
		return 0
	}

	mean := stat.Mean(c.samples, nil)
	var delta int64
	switch {
	case mean > c.prev:
		c.status = StatusSlowDown
		delta = -c.decreaseStep
		c.next = now + 2*latency
	case c.alwaysSaturated:
		c.status = StatusSpeedUp
		delta = c.increaseStep
		c.next = now + 2*latency
	default:
		c.status = StatusUnsaturated
	}
	logrus.Debugf("controller: mean=%.1f prev=%.1f status=%q delta=%d released=%d lastAck=%d",
		mean, c.prev, c.status, delta, released, lastAckTime)

	c.prev = mean
	c.samples = c.samples[:0]
	c.alwaysSaturated = true
	c.window += delta
	return delta
}

// Status returns the branch taken by the latest Update.
func (c *WindowController) Status() Status { return c.status }

// Window returns the controller's current target window in bytes.
func (c *WindowController) Window() int64 { return c.window }
