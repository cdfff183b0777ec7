package config

import "sort"

// Presets are named launch conditions for familiar orbit families in the
// default halo. All of them share the reference shape parameters; only the
// launch state and stepping vary.
var Presets = map[string]*Config{
	"reference": {
		Pos: VecConfig{X: 1.0}, Vel: VecConfig{Y: 0.4},
		NStep: 25000, DTime: 0.01, DEtol: 1.0e-3,
		Rc: DefaultRc, B: DefaultB, C: DefaultC,
		Plane: "XY", Stepper: "leapfrog",
	},
	"box": {
		Pos: VecConfig{X: 1.0}, Vel: VecConfig{Y: 0.1},
		NStep: 25000, DTime: 0.01, DEtol: 1.0e-3,
		Rc: DefaultRc, B: DefaultB, C: DefaultC,
		Plane: "XY", Stepper: "leapfrog",
	},
	"loop": {
		Pos: VecConfig{X: 1.0}, Vel: VecConfig{Y: 0.8},
		NStep: 25000, DTime: 0.01, DEtol: 1.0e-3,
		Rc: DefaultRc, B: DefaultB, C: DefaultC,
		Plane: "XY", Stepper: "leapfrog",
	},
	"tilted": {
		Pos: VecConfig{X: 1.0}, Vel: VecConfig{Y: 0.35, Z: 0.2},
		NStep: 50000, DTime: 0.01, DEtol: 1.0e-3,
		Rc: DefaultRc, B: DefaultB, C: DefaultC,
		Plane: "XZ", Stepper: "leapfrog",
	},
	"coarse": {
		Pos: VecConfig{X: 1.0}, Vel: VecConfig{Y: 0.4},
		NStep: 2500, DTime: 0.1, DEtol: 1.0e-2,
		Rc: DefaultRc, B: DefaultB, C: DefaultC,
		Plane: "XY", Stepper: "leapfrog",
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
