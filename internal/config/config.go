package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitlab/internal/halo"
	"github.com/san-kum/orbitlab/internal/orbit"
)

const (
	DefaultNStep = 25000
	DefaultDTime = 0.01
	DefaultDEtol = 1.0e-3
	DefaultRc    = 0.2
	DefaultB     = 0.9
	DefaultC     = 0.8
)

type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v VecConfig) Vec3() halo.Vec3 {
	return halo.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Config is one run description as read from a yaml file. Every option is a
// named, typed field with a compile-time default; a misspelled key in a file
// simply has no effect on a typed field rather than silently creating a new
// option.
type Config struct {
	Pos     VecConfig `yaml:"pos"`
	Vel     VecConfig `yaml:"vel"`
	NStep   int       `yaml:"nstep"`
	DTime   float64   `yaml:"dtime"`
	DEtol   float64   `yaml:"detol"`
	Rc      float64   `yaml:"rc"`
	B       float64   `yaml:"b"`
	C       float64   `yaml:"c"`
	Plane   string    `yaml:"plane"`
	Stepper string    `yaml:"stepper"`
}

func DefaultConfig() *Config {
	return &Config{
		Pos:     VecConfig{X: 1.0},
		Vel:     VecConfig{Y: 0.4},
		NStep:   DefaultNStep,
		DTime:   DefaultDTime,
		DEtol:   DefaultDEtol,
		Rc:      DefaultRc,
		B:       DefaultB,
		C:       DefaultC,
		Plane:   "XY",
		Stepper: "leapfrog",
	}
}

// Load reads a yaml config, with file values layered over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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

// OrbitConfig converts to the integrator's run parameters.
func (c *Config) OrbitConfig() orbit.Config {
	return orbit.Config{
		Pos:   c.Pos.Vec3(),
		Vel:   c.Vel.Vec3(),
		NStep: c.NStep,
		DTime: c.DTime,
		DEtol: c.DEtol,
	}
}

// Potential builds the halo model described by the shape parameters.
func (c *Config) Potential() (*halo.LogPotential, error) {
	return halo.NewLogPotential(c.Rc, c.B, c.C)
}
