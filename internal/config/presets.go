package config

var Presets = map[string]map[string]*Config{
	"lotka": {
		"classic": {
			Model:    "lotka",
			Viewport: ViewportConfig{XMin: 0, XMax: 4, YMin: 0, YMax: 4},
			Params:   map[string]float64{"alpha": 1.0, "beta": 1.0, "delta": 1.0, "gamma": 1.5},
		},
		"sparse_predators": {
			Model:    "lotka",
			Viewport: ViewportConfig{XMin: 0, XMax: 8, YMin: 0, YMax: 4},
			Params:   map[string]float64{"alpha": 1.2, "beta": 0.4, "delta": 0.3, "gamma": 1.0},
		},
		"wide": {
			Model:    "lotka",
			Viewport: ViewportConfig{XMin: 0, XMax: 10, YMin: 0, YMax: 10},
			Params:   map[string]float64{"alpha": 2.0, "beta": 1.0, "delta": 1.0, "gamma": 3.0},
		},
	},
	"selkov": {
		"oscillating": {
			Model:    "selkov",
			Viewport: ViewportConfig{XMin: 0, XMax: 3, YMin: 0, YMax: 3},
			Params:   map[string]float64{"v": 1.0, "c": 1.0, "k": 1.0},
		},
		"slow_inflow": {
			Model:    "selkov",
			Viewport: ViewportConfig{XMin: 0, XMax: 6, YMin: 0, YMax: 2},
			Params:   map[string]float64{"v": 0.5, "c": 1.0, "k": 1.0},
		},
	},
	"glucose": {
		"normal": {
			Model:    "glucose",
			Viewport: ViewportConfig{XMin: 0, XMax: 10, YMin: 0, YMax: 10},
			Params:   map[string]float64{"p": 2.0, "u": 0.2, "s": 0.5, "q": 0.5, "d": 0.8},
		},
		"resistant": {
			Model:    "glucose",
			Viewport: ViewportConfig{XMin: 0, XMax: 20, YMin: 0, YMax: 10},
			Params:   map[string]float64{"p": 2.0, "u": 0.2, "s": 0.1, "q": 0.5, "d": 0.8},
		},
	},
	"calc": {
		"rotation": {
			Model:     "calc",
			Viewport:  ViewportConfig{XMin: -3, XMax: 3, YMin: -3, YMax: 3},
			Equations: EquationConfig{DX: "-y", DY: "x"},
		},
		"saddle": {
			Model:     "calc",
			Viewport:  ViewportConfig{XMin: -3, XMax: 3, YMin: -3, YMax: 3},
			Equations: EquationConfig{DX: "x", DY: "-y"},
		},
		"van_der_pol": {
			Model:     "calc",
			Viewport:  ViewportConfig{XMin: -4, XMax: 4, YMin: -4, YMax: 4},
			Equations: EquationConfig{DX: "y", DY: "(1 - x*x)*y - x"},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
