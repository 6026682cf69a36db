package config

import (
	"math"
	"sort"
)

// Region is a rectangle in the complex plane.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

func (r Region) Center() (float64, float64) {
	return (r.Xmin + r.Xmax) / 2, (r.Ymin + r.Ymax) / 2
}

// Scale fits the region into a width x height window.
func (r Region) Scale(width, height int) float64 {
	return math.Max((r.Xmax-r.Xmin)/float64(width), (r.Ymax-r.Ymin)/float64(height))
}

type Preset struct {
	Name        string
	Description string
	Region      Region
}

// Classic landmarks. Regions are in raster orientation, so positive
// imaginary parts appear below the real axis.
var Presets = map[string]Preset{
	"home": {
		Name: "home", Description: "the whole set",
		Region: Region{Xmin: -2.5, Xmax: 1.0, Ymin: -1.0, Ymax: 1.0},
	},
	"seahorse": {
		Name: "seahorse", Description: "seahorse valley, dense filaments and repeating curls",
		Region: Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},
	},
	"elephant": {
		Name: "elephant", Description: "elephant valley, large bulb with trunk-like tendrils",
		Region: Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02},
	},
	"spiral": {
		Name: "spiral", Description: "small minibrot with tight spiral arms",
		Region: Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325},
	},
	"triple-spiral": {
		Name: "triple-spiral", Description: "threefold symmetric spiral",
		Region: Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},
	},
	"dragon": {
		Name: "dragon", Description: "valley of the dragon, deep spiral filaments",
		Region: Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850},
	},
	"mini-spiral": {
		Name: "mini-spiral", Description: "minibrot inside a spiral arm",
		Region: Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220},
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply centers the config on the preset and fits its region to the
// configured window size.
func (p Preset) Apply(c *Config) {
	c.CenterX, c.CenterY = p.Region.Center()
	c.Scale = p.Region.Scale(c.Width, c.Height)
}
