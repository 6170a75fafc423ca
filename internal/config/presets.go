package config

import "sort"

// Preset is a named palette.
type Preset struct {
	Description string
	Anchors     []PointConfig
	Movable     []PointConfig
}

func pt(r, g, b float64) PointConfig {
	return PointConfig{Colour: RGB(r, g, b)}
}

func weighted(r, g, b, mass float64) PointConfig {
	return PointConfig{Colour: RGB(r, g, b), Mass: &mass}
}

var blackAndWhite = []PointConfig{pt(0, 0, 0), pt(255, 255, 255)}

var Presets = map[string]*Preset{
	"original": {
		Description: "muted earth palette kept clear of black and white",
		Anchors:     blackAndWhite,
		Movable: []PointConfig{
			pt(128, 97, 84),
			pt(134, 169, 103),
			pt(196, 179, 126),
			pt(115, 122, 114),
			pt(214, 222, 209),
		},
	},
	"single": {
		Description: "one brown between black and white",
		Anchors:     blackAndWhite,
		Movable:     []PointConfig{pt(128, 97, 84)},
	},
	"greys": {
		Description: "six near-identical greys pushed apart",
		Anchors:     blackAndWhite,
		Movable: []PointConfig{
			pt(120, 120, 120),
			pt(124, 124, 124),
			pt(128, 128, 128),
			pt(132, 132, 132),
			pt(136, 136, 136),
			pt(140, 140, 140),
		},
	},
	"primaries": {
		Description: "saturated primaries crowding the cube corners",
		Anchors:     []PointConfig{pt(128, 128, 128)},
		Movable: []PointConfig{
			pt(250, 10, 10),
			pt(10, 250, 10),
			pt(10, 10, 250),
			pt(250, 250, 10),
		},
	},
	"magnet": {
		Description: "a pastel set drawn toward a teal attractor",
		Anchors: []PointConfig{
			pt(0, 0, 0),
			pt(255, 255, 255),
			weighted(0, 128, 128, -0.25),
		},
		Movable: []PointConfig{
			pt(230, 190, 200),
			pt(200, 230, 190),
			pt(190, 200, 230),
		},
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
