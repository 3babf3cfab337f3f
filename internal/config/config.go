package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/phaseflow/internal/phase"
)

const (
	DefaultSpeed      = 1.0
	DefaultBaseStep   = 0.02
	DefaultMaxSeeded  = 100
	DefaultGridSize   = 14
	DefaultExtendFrac = 0.40
	DefaultCycleLen   = 30.0
	DefaultFadeAlpha  = 0.88
)

type Config struct {
	Model     string             `yaml:"model"`
	Theme     string             `yaml:"theme"`
	Viewport  ViewportConfig     `yaml:"viewport"`
	Speed     float64            `yaml:"speed"`
	BaseStep  float64            `yaml:"base_step"`
	Layers    LayerConfig        `yaml:"layers"`
	Equations EquationConfig     `yaml:"equations"`
	Params    map[string]float64 `yaml:"params"`
	Tuning    TuningConfig       `yaml:"tuning"`
}

type ViewportConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

type LayerConfig struct {
	Grid       bool `yaml:"grid"`
	Field      bool `yaml:"field"`
	Nullclines bool `yaml:"nullclines"`
}

// EquationConfig only applies to the calc model; named models ignore it.
type EquationConfig struct {
	DX string `yaml:"dx"`
	DY string `yaml:"dy"`
}

type TuningConfig struct {
	MaxSeeded    int     `yaml:"max_seeded"`
	GridSize     int     `yaml:"grid_size"`
	ExtendFrac   float64 `yaml:"extend_frac"`
	CycleSeconds float64 `yaml:"cycle_seconds"`
	FadeAlpha    float64 `yaml:"fade_alpha"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    "lotka",
		Theme:    "dark",
		Viewport: ViewportConfig{XMin: 0, XMax: 4, YMin: 0, YMax: 4},
		Speed:    DefaultSpeed,
		BaseStep: DefaultBaseStep,
		Layers:   LayerConfig{Grid: true, Field: true, Nullclines: true},
		Tuning: TuningConfig{
			MaxSeeded:    DefaultMaxSeeded,
			GridSize:     DefaultGridSize,
			ExtendFrac:   DefaultExtendFrac,
			CycleSeconds: DefaultCycleLen,
			FadeAlpha:    DefaultFadeAlpha,
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (v ViewportConfig) Viewport() phase.Viewport {
	return phase.Viewport{XMin: v.XMin, XMax: v.XMax, YMin: v.YMin, YMax: v.YMax}
}

func (c *Config) GetParams() phase.Params {
	p := make(phase.Params, len(c.Params))
	for k, v := range c.Params {
		p[k] = v
	}
	return p
}
