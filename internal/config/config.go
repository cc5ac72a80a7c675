package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir    = ".seawater"
	DefaultPrecision  = 4
	DefaultIntegrator = "gill"
	DefaultSteps      = 1
	DefaultPreset     = "surface"

	// maxLevels caps the pressure ladder so a typo cannot allocate millions of rows.
	maxLevels = 100_000
)

// ErrInvalid indicates a configuration that cannot describe a profile.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	DataDir    string        `yaml:"data_dir"`
	Strict     bool          `yaml:"strict"`
	Precision  int           `yaml:"precision"`
	Integrator string        `yaml:"integrator"`
	Steps      int           `yaml:"steps"`
	Profile    ProfileConfig `yaml:"profile"`
}

// ProfileConfig describes a vertical cast: a pressure ladder plus the water
// properties at each level. Salinities/Temperatures, when set, give one
// value per level and take precedence over the uniform values.
type ProfileConfig struct {
	Name          string    `yaml:"name,omitempty"`
	Salinity      float64   `yaml:"salinity"`
	Temperature   float64   `yaml:"temperature"`
	Salinities    []float64 `yaml:"salinities,omitempty"`
	Temperatures  []float64 `yaml:"temperatures,omitempty"`
	PressureStart float64   `yaml:"pressure_start"`
	PressureStop  float64   `yaml:"pressure_stop"`
	PressureStep  float64   `yaml:"pressure_step"`
	Reference     float64   `yaml:"reference_pressure"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:    DefaultDataDir,
		Precision:  DefaultPrecision,
		Integrator: DefaultIntegrator,
		Steps:      DefaultSteps,
		Profile:    *GetPreset(DefaultPreset),
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
	if c.Precision < 0 || c.Precision > 15 {
		return fmt.Errorf("%w: precision %d not in [0, 15]", ErrInvalid, c.Precision)
	}
	if c.Steps < 1 {
		return fmt.Errorf("%w: steps must be >= 1, got %d", ErrInvalid, c.Steps)
	}
	return c.Profile.Validate()
}

func (p *ProfileConfig) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"pressure_start", p.PressureStart},
		{"pressure_stop", p.PressureStop},
		{"pressure_step", p.PressureStep},
		{"reference_pressure", p.Reference},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalid, f.name, f.v)
		}
	}
	if p.PressureStep <= 0 {
		return fmt.Errorf("%w: pressure_step must be > 0", ErrInvalid)
	}
	if p.PressureStop < p.PressureStart {
		return fmt.Errorf("%w: pressure_stop %g below pressure_start %g", ErrInvalid, p.PressureStop, p.PressureStart)
	}
	if count := p.levelCount(); !(count <= maxLevels) {
		return fmt.Errorf("%w: %g levels exceeds %d", ErrInvalid, count, maxLevels)
	}
	n := p.Levels()
	if len(p.Salinities) > 0 && len(p.Salinities) != n {
		return fmt.Errorf("%w: %d salinities for %d levels", ErrInvalid, len(p.Salinities), n)
	}
	if len(p.Temperatures) > 0 && len(p.Temperatures) != n {
		return fmt.Errorf("%w: %d temperatures for %d levels", ErrInvalid, len(p.Temperatures), n)
	}
	return nil
}

// levelCount is the ladder length as a float, so oversized or non-finite
// ladders are caught before any int conversion.
func (p *ProfileConfig) levelCount() float64 {
	return math.Floor((p.PressureStop-p.PressureStart)/p.PressureStep+1e-9) + 1
}

// Levels returns the number of pressures in the ladder, endpoints included.
// Ladders that Validate rejects have zero levels.
func (p *ProfileConfig) Levels() int {
	if !(p.PressureStep > 0) || !(p.PressureStop >= p.PressureStart) {
		return 0
	}
	count := p.levelCount()
	if !(count >= 1 && count <= maxLevels) {
		return 0
	}
	return int(count)
}

// Pressures returns the pressure ladder start, start+step, ... <= stop.
func (p *ProfileConfig) Pressures() []float64 {
	n := p.Levels()
	out := make([]float64, n)
	for i := range out {
		out[i] = p.PressureStart + float64(i)*p.PressureStep
	}
	return out
}

// Columns expands the salinity and temperature of every level.
func (p *ProfileConfig) Columns() (salinity, temperature []float64) {
	n := p.Levels()
	salinity = expand(p.Salinities, p.Salinity, n)
	temperature = expand(p.Temperatures, p.Temperature, n)
	return salinity, temperature
}

func expand(values []float64, uniform float64, n int) []float64 {
	if len(values) == n && n > 0 {
		out := make([]float64, n)
		copy(out, values)
		return out
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = uniform
	}
	return out
}
