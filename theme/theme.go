// Package theme loads widget themes and turns them into vrender steps.
//
// A theme is a YAML or TOML document with a color palette and, per widget,
// the ordered list of draw steps that paint it:
//
//	name: classic
//	palette:
//	  face: "#c0c0c0"
//	widgets:
//	  button:
//	    steps:
//	      - func: roundedsq
//	        radius: 4
//	        fill: gradient
//	        gradient_start: "#f0f0f0"
//	        gradient_end: face
//	        shadow: 2
//
// Positions and sizes accept either integers or the symbolic values
// left, right, center, top, bottom and auto. Fonts and bitmaps are
// referenced by name and supplied by the caller through Resources.
package theme

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/vrender"
)

// Format is the encoding of a theme document.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// Theme is a decoded theme document.
type Theme struct {
	Name string `yaml:"name" toml:"name"`
	// Scale multiplies every literal coordinate, size and radius.
	Scale   any               `yaml:"scale" toml:"scale"`
	Palette map[string]string `yaml:"palette" toml:"palette"`
	Widgets map[string]Widget `yaml:"widgets" toml:"widgets"`
}

// Widget is the drawing recipe of one widget state.
type Widget struct {
	Steps []Step `yaml:"steps" toml:"steps"`
}

// Step is one draw step as written in a theme file. Fields that accept
// both numbers and names are typed any.
type Step struct {
	Func string `yaml:"func" toml:"func"`

	Fg            string `yaml:"fg" toml:"fg"`
	Bg            string `yaml:"bg" toml:"bg"`
	BevelColor    string `yaml:"bevel_color" toml:"bevel_color"`
	GradientStart string `yaml:"gradient_start" toml:"gradient_start"`
	GradientEnd   string `yaml:"gradient_end" toml:"gradient_end"`

	Fill            string `yaml:"fill" toml:"fill"`
	ShadowFill      string `yaml:"shadow_fill" toml:"shadow_fill"`
	Stroke          int    `yaml:"stroke" toml:"stroke"`
	Shadow          int    `yaml:"shadow" toml:"shadow"`
	Bevel           int    `yaml:"bevel" toml:"bevel"`
	GradientFactor  int    `yaml:"gradient_factor" toml:"gradient_factor"`
	ShadowIntensity any    `yaml:"shadow_intensity" toml:"shadow_intensity"`

	XPos    any   `yaml:"xpos" toml:"xpos"`
	YPos    any   `yaml:"ypos" toml:"ypos"`
	Width   any   `yaml:"width" toml:"width"`
	Height  any   `yaml:"height" toml:"height"`
	Padding []int `yaml:"padding" toml:"padding"`
	Clip    []int `yaml:"clip" toml:"clip"`

	Radius      any    `yaml:"radius" toml:"radius"`
	Orientation string `yaml:"orientation" toml:"orientation"`

	Bitmap    string `yaml:"bitmap" toml:"bitmap"`
	Alpha     string `yaml:"alpha" toml:"alpha"`
	Autoscale string `yaml:"autoscale" toml:"autoscale"`

	Text     string `yaml:"text" toml:"text"`
	Font     string `yaml:"font" toml:"font"`
	AlignH   string `yaml:"halign" toml:"halign"`
	AlignV   string `yaml:"valign" toml:"valign"`
	DeltaX   int    `yaml:"delta_x" toml:"delta_x"`
	Ellipsis bool   `yaml:"ellipsis" toml:"ellipsis"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, errors.Errorf("theme: unknown file extension %q", filepath.Ext(path))
}

// Parse decodes and validates a theme document.
func Parse(data []byte, f Format) (*Theme, error) {
	t, err := parse(data, f)
	if err != nil {
		return nil, errors.Wrap(err, "theme")
	}
	return t, nil
}

// Load reads a theme file; the format follows the file extension.
func Load(path string) (*Theme, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "theme: read")
	}
	t, err := parse(data, f)
	if err != nil {
		return nil, errors.Wrapf(err, "theme: load %s", path)
	}
	return t, nil
}

func parse(data []byte, f Format) (*Theme, error) {
	var t Theme
	var err error
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &t)
	case FormatTOML:
		err = toml.Unmarshal(data, &t)
	default:
		return nil, errors.Errorf("unknown format %d", f)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// validate checks everything that does not depend on caller resources.
func (t *Theme) validate() error {
	for name, hex := range t.Palette {
		if _, err := vrender.ParseColor(hex); err != nil {
			return errors.Wrapf(err, "palette entry %s", name)
		}
	}
	if _, err := t.scale(); err != nil {
		return err
	}
	for name, w := range t.Widgets {
		for i, s := range w.Steps {
			if _, err := t.build(s, nil); err != nil {
				return errors.Wrapf(err, "widget %s step %d", name, i)
			}
		}
	}
	return nil
}

// Color resolves a palette name or hex literal.
func (t *Theme) Color(s string) (vrender.Color, error) {
	if hex, ok := t.Palette[s]; ok {
		s = hex
	}
	return vrender.ParseColor(s)
}

// WidgetNames returns the sorted names of all widgets the theme defines.
func (t *Theme) WidgetNames() []string {
	return slices.Sorted(maps.Keys(t.Widgets))
}
