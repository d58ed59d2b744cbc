package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTrailLifetime      = 100 // tenths of a second
	DefaultPhysicsRefreshRate = 120 // Hz
	DefaultNumOfTrails        = 10
	DefaultInitialDistance    = 0.01
	DefaultDeltaT             = 50 // integration scale, dt = DeltaT/10000
	DefaultSigma              = 10.0
	DefaultRho                = 28.0
	DefaultBeta               = 8.0 / 3.0
	DefaultCameraSpeed        = 10
)

// Config holds every live-tunable parameter of the visualization. The UI
// layers mutate it and call Touch so dependent systems can observe the change
// via the generation counter; the simulation core only reads it.
type Config struct {
	ShowDiagnostics    bool    `yaml:"show_diagnostics"`
	RotateCamera       bool    `yaml:"rotate_camera"`
	CameraSpeed        int     `yaml:"camera_speed"`
	PhysicsRefreshRate int     `yaml:"physics_refresh_rate"`
	TrailLifetime      int     `yaml:"trail_lifetime"` // tenths of a second
	NumOfTrails        int     `yaml:"num_of_trails"`
	InitialDistance    float32 `yaml:"initial_distance"`
	DeltaT             int     `yaml:"delta_t"`
	Sigma              float32 `yaml:"sigma"`
	Rho                float32 `yaml:"rho"`
	Beta               float32 `yaml:"beta"`

	// TrailSegmentCount is telemetry written back by the engine each tick.
	TrailSegmentCount int `yaml:"-"`

	generation uint64
}

func DefaultConfig() *Config {
	return &Config{
		CameraSpeed:        DefaultCameraSpeed,
		PhysicsRefreshRate: DefaultPhysicsRefreshRate,
		TrailLifetime:      DefaultTrailLifetime,
		NumOfTrails:        DefaultNumOfTrails,
		InitialDistance:    DefaultInitialDistance,
		DeltaT:             DefaultDeltaT,
		Sigma:              DefaultSigma,
		Rho:                DefaultRho,
		Beta:               DefaultBeta,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Touch()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Touch marks the configuration as changed. Every mutation from a UI layer
// must be followed by a Touch so that per-tick observers re-run.
func (c *Config) Touch() { c.generation++ }

// Generation returns the current change counter. Observers store the last
// value they acted on and compare once per tick.
func (c *Config) Generation() uint64 { return c.generation }

// LifetimeSeconds converts the stored tenths-of-a-second lifetime.
func (c *Config) LifetimeSeconds() float32 { return float32(c.TrailLifetime) / 10 }

// Dt is the Euler integration timestep derived from the DeltaT scale.
func (c *Config) Dt() float32 { return float32(c.DeltaT) / 10000 }

// TickRate returns the physics refresh rate clamped to a 1 Hz minimum.
func (c *Config) TickRate() int {
	if c.PhysicsRefreshRate < 1 {
		return 1
	}
	return c.PhysicsRefreshRate
}

// TickSeconds is the simulated wall-clock duration of one physics tick.
func (c *Config) TickSeconds() float32 { return 1 / float32(c.TickRate()) }
