package sim

// LinkConfig groups the parameters of one simulated link direction.
type LinkConfig struct {
	Name       string
	Throughput int64 // bytes per tick (must be > 0); UnlimitedThroughput = no cap
	Latency    int64 // minimum in-flight age in time units (must be >= 0)
}

// NewLinkConfig creates a LinkConfig.
func NewLinkConfig(name string, throughput, latency int64) LinkConfig {
	return LinkConfig{Name: name, Throughput: throughput, Latency: latency}
}

// ControllerConfig groups the window controller's tuning knobs.
type ControllerConfig struct {
	InitialWindow int64 // starting outstanding-byte budget
	SampleSize    int   // latency samples per decision window (must be > 0)
	IncreaseStep  int64 // additive window growth on "speed up" (must be > 0)
	DecreaseStep  int64 // additive window shrink on "slow down" (must be > 0)
}

// NewControllerConfig creates a ControllerConfig.
func NewControllerConfig(initialWindow int64, sampleSize int, increaseStep, decreaseStep int64) ControllerConfig {
	return ControllerConfig{
		InitialWindow: initialWindow,
		SampleSize:    sampleSize,
		IncreaseStep:  increaseStep,
		DecreaseStep:  decreaseStep,
	}
}

// DefaultControllerConfig returns the tuning the loop was calibrated with:
// a 128-byte starting window, 10 samples per decision, +100/-200 steps.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		InitialWindow: 128,
		SampleSize:    10,
		IncreaseStep:  100,
		DecreaseStep:  200,
	}
}

// TrafficConfig groups the sender's pacing and synthetic-load parameters.
type TrafficConfig struct {
	InitialCapacity int64   // starting outstanding-byte ceiling
	FloorCapacity   int64   // capacity never drops below this
	BurstMin        float64 // uniform draw bounds for write attempts per tick
	BurstMax        float64
	ChunkSigma      float64 // half-normal scale for chunk sizes
}

// NewTrafficConfig creates a TrafficConfig.
func NewTrafficConfig(initialCapacity, floorCapacity int64, burstMin, burstMax, chunkSigma float64) TrafficConfig {
	return TrafficConfig{
		InitialCapacity: initialCapacity,
		FloorCapacity:   floorCapacity,
		BurstMin:        burstMin,
		BurstMax:        burstMax,
		ChunkSigma:      chunkSigma,
	}
}

// DefaultTrafficConfig returns the synthetic-load defaults: 128-byte floor
// and starting capacity, 1-100 write attempts per tick, sigma-50 chunks.
func DefaultTrafficConfig() TrafficConfig {
	return TrafficConfig{
		InitialCapacity: 128,
		FloorCapacity:   128,
		BurstMin:        1,
		BurstMax:        100,
		ChunkSigma:      50,
	}
}

// SimulationConfig groups run-level parameters.
type SimulationConfig struct {
	Horizon           int64 // total simulated time
	TickInterval      int64 // simulated time per tick (must be > 0)
	ReshuffleInterval int64 // randomize link parameters every this many time units; 0 disables
	Seed              int64 // master seed for all RNG subsystems
}

// NewSimulationConfig creates a SimulationConfig.
func NewSimulationConfig(horizon, tickInterval, reshuffleInterval, seed int64) SimulationConfig {
	return SimulationConfig{
		Horizon:           horizon,
		TickInterval:      tickInterval,
		ReshuffleInterval: reshuffleInterval,
		Seed:              seed,
	}
}
