package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFrameRate = 30
	DefaultDt        = 1.0 / 30.0

	DefaultCharge     = 5.0  // microcoulombs
	DefaultSeparation = 4.0  // meters

	// Coulomb screen ranges. Key-driven adjustments clamp to these and
	// Validate rejects seed values outside them.
	MaxCharge     = 10.0 // microcoulombs
	MinSeparation = 0.5  // meters
	MaxSeparation = 10.0

	DefaultEpsilon   = 1.0  // well depth
	DefaultSigma     = 1.0  // zero-crossing distance
	DefaultGM        = 40.0 // gravitational parameter of the star
	DefaultBlockMass = 4.0  // kg
	DefaultBlockVol  = 5.0  // liters
	DefaultFluidRho  = 1.0  // kg/L, water
)

// Config is the full runtime configuration: shell settings plus one typed
// section per screen. Every field has a documented default; a yaml file
// only overrides what it names.
type Config struct {
	Screen    string  `yaml:"screen"`     // screen selected at startup
	FrameRate int     `yaml:"frame_rate"` // ticks per second
	Dt        float64 `yaml:"dt"`         // model seconds per tick
	Profile   string  `yaml:"profile"`    // color profile: default | projector

	Coulomb    CoulombConfig    `yaml:"coulomb"`
	Atomic     AtomicConfig     `yaml:"atomic"`
	Orbits     OrbitsConfig     `yaml:"orbits"`
	Regression RegressionConfig `yaml:"regression"`
	Buoyancy   BuoyancyConfig   `yaml:"buoyancy"`
	NumberLine NumberLineConfig `yaml:"numberline"`
}

// CoulombConfig sets the initial charges and separation.
type CoulombConfig struct {
	Charge1    float64 `yaml:"charge1"`    // microcoulombs
	Charge2    float64 `yaml:"charge2"`    // microcoulombs
	Separation float64 `yaml:"separation"` // meters
}

// AtomicConfig sets the Lennard-Jones interaction parameters.
type AtomicConfig struct {
	Epsilon    float64 `yaml:"epsilon"`
	Sigma      float64 `yaml:"sigma"`
	Separation float64 `yaml:"separation"`
	Damping    float64 `yaml:"damping"`
}

// OrbitsConfig sets the star and the planet's launch state.
type OrbitsConfig struct {
	GM       float64 `yaml:"gm"`
	Distance float64 `yaml:"distance"` // initial orbital radius
	Speed    float64 `yaml:"speed"`    // initial tangential speed; 0 means circular
}

// RegressionConfig controls the hidden line that sampled points scatter
// around.
type RegressionConfig struct {
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`
	Noise     float64 `yaml:"noise"`
	Seed      int64   `yaml:"seed"`
}

// BuoyancyConfig sets the block and the fluid.
type BuoyancyConfig struct {
	BlockMass    float64 `yaml:"block_mass"`    // kg
	BlockVolume  float64 `yaml:"block_volume"`  // liters
	FluidDensity float64 `yaml:"fluid_density"` // kg/L
}

// NumberLineConfig sets the number-line scenes.
type NumberLineConfig struct {
	Range     int `yaml:"range"`     // line spans [-Range, Range]
	Elevation int `yaml:"elevation"` // initial elevation marker
}

func DefaultConfig() *Config {
	return &Config{
		Screen:    "coulomb",
		FrameRate: DefaultFrameRate,
		Dt:        DefaultDt,
		Profile:   "default",
		Coulomb: CoulombConfig{
			Charge1:    DefaultCharge,
			Charge2:    -DefaultCharge,
			Separation: DefaultSeparation,
		},
		Atomic: AtomicConfig{
			Epsilon:    DefaultEpsilon,
			Sigma:      DefaultSigma,
			Separation: 2.0,
			Damping:    0.5,
		},
		Orbits: OrbitsConfig{
			GM:       DefaultGM,
			Distance: 5.0,
			Speed:    0, // circular orbit
		},
		Regression: RegressionConfig{
			Slope:     0.8,
			Intercept: 1.0,
			Noise:     1.5,
			Seed:      42,
		},
		Buoyancy: BuoyancyConfig{
			BlockMass:    DefaultBlockMass,
			BlockVolume:  DefaultBlockVol,
			FluidDensity: DefaultFluidRho,
		},
		NumberLine: NumberLineConfig{
			Range:     10,
			Elevation: 3,
		},
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
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Coulomb.Separation < MinSeparation || c.Coulomb.Separation > MaxSeparation {
		return fmt.Errorf("coulomb separation must be in [%g, %g] m, got %f",
			MinSeparation, MaxSeparation, c.Coulomb.Separation)
	}
	if math.Abs(c.Coulomb.Charge1) > MaxCharge || math.Abs(c.Coulomb.Charge2) > MaxCharge {
		return fmt.Errorf("coulomb charges must be within ±%g µC", MaxCharge)
	}
	if c.Atomic.Sigma <= 0 || c.Atomic.Epsilon <= 0 {
		return fmt.Errorf("atomic epsilon and sigma must be positive")
	}
	if c.Orbits.GM <= 0 || c.Orbits.Distance <= 0 {
		return fmt.Errorf("orbits gm and distance must be positive")
	}
	if c.Buoyancy.BlockMass <= 0 || c.Buoyancy.BlockVolume <= 0 || c.Buoyancy.FluidDensity <= 0 {
		return fmt.Errorf("buoyancy parameters must be positive")
	}
	if c.NumberLine.Range <= 0 {
		return fmt.Errorf("numberline range must be positive, got %d", c.NumberLine.Range)
	}
	return nil
}
