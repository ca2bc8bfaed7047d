package config

func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

// Presets are named starting configurations per screen, used by
// `simlab run --preset` and listed by `simlab presets`.
var Presets = map[string]map[string]*Config{
	"coulomb": {
		"attract": preset(func(c *Config) {
			c.Screen = "coulomb"
			c.Coulomb = CoulombConfig{Charge1: 8, Charge2: -8, Separation: 3}
		}),
		"repel": preset(func(c *Config) {
			c.Screen = "coulomb"
			c.Coulomb = CoulombConfig{Charge1: 6, Charge2: 6, Separation: 2}
		}),
		"faint": preset(func(c *Config) {
			c.Screen = "coulomb"
			c.Coulomb = CoulombConfig{Charge1: 1, Charge2: -1, Separation: 9}
		}),
	},
	"atomic": {
		"settle": preset(func(c *Config) {
			c.Screen = "atomic"
			c.Atomic = AtomicConfig{Epsilon: 1, Sigma: 1, Separation: 2.5, Damping: 0.8}
		}),
		"oscillate": preset(func(c *Config) {
			c.Screen = "atomic"
			c.Atomic = AtomicConfig{Epsilon: 1, Sigma: 1, Separation: 1.6, Damping: 0.05}
		}),
		"deep-well": preset(func(c *Config) {
			c.Screen = "atomic"
			c.Atomic = AtomicConfig{Epsilon: 4, Sigma: 1, Separation: 2.0, Damping: 0.3}
		}),
	},
	"orbits": {
		"circular": preset(func(c *Config) {
			c.Screen = "orbits"
			c.Orbits = OrbitsConfig{GM: 40, Distance: 5, Speed: 0}
		}),
		"ellipse": preset(func(c *Config) {
			c.Screen = "orbits"
			c.Orbits = OrbitsConfig{GM: 40, Distance: 5, Speed: 2.2}
		}),
		"comet": preset(func(c *Config) {
			c.Screen = "orbits"
			c.Orbits = OrbitsConfig{GM: 40, Distance: 9, Speed: 1.2}
		}),
	},
	"regression": {
		"tight": preset(func(c *Config) {
			c.Screen = "regression"
			c.Regression = RegressionConfig{Slope: 1.5, Intercept: 0, Noise: 0.3, Seed: 7}
		}),
		"noisy": preset(func(c *Config) {
			c.Screen = "regression"
			c.Regression = RegressionConfig{Slope: 0.5, Intercept: 2, Noise: 4, Seed: 7}
		}),
	},
	"buoyancy": {
		"float": preset(func(c *Config) {
			c.Screen = "buoyancy"
			c.Buoyancy = BuoyancyConfig{BlockMass: 2, BlockVolume: 5, FluidDensity: 1}
		}),
		"sink": preset(func(c *Config) {
			c.Screen = "buoyancy"
			c.Buoyancy = BuoyancyConfig{BlockMass: 8, BlockVolume: 5, FluidDensity: 1}
		}),
		"dead-sea": preset(func(c *Config) {
			c.Screen = "buoyancy"
			c.Buoyancy = BuoyancyConfig{BlockMass: 6, BlockVolume: 5, FluidDensity: 1.24}
		}),
	},
	"numberline": {
		"sea-level": preset(func(c *Config) {
			c.Screen = "numberline"
			c.NumberLine = NumberLineConfig{Range: 10, Elevation: 0}
		}),
		"altitude": preset(func(c *Config) {
			c.Screen = "numberline"
			c.NumberLine = NumberLineConfig{Range: 20, Elevation: 12}
		}),
	},
}

func GetPreset(screen, name string) *Config {
	screenPresets, ok := Presets[screen]
	if !ok {
		return nil
	}
	cfg, ok := screenPresets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(screen string) []string {
	screenPresets, ok := Presets[screen]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(screenPresets))
	for name := range screenPresets {
		names = append(names, name)
	}
	return names
}
