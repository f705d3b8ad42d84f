package theme

import (
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gogpu/vrender"
	"github.com/gogpu/vrender/text"
)

// Resources holds the fonts and bitmaps steps refer to by name.
type Resources struct {
	Fonts  map[string]text.Font
	Images map[string]image.Image
}

// Steps returns the draw steps of the named widget.
func (t *Theme) Steps(widget string, res Resources) ([]vrender.Step, error) {
	w, ok := t.Widgets[widget]
	if !ok {
		return nil, errors.Errorf("theme: unknown widget %q", widget)
	}
	steps := make([]vrender.Step, 0, len(w.Steps))
	for i, s := range w.Steps {
		st, err := t.build(s, &res)
		if err != nil {
			return nil, errors.Wrapf(err, "theme: widget %s step %d", widget, i)
		}
		steps = append(steps, st)
	}
	return steps, nil
}

var (
	fillModes = map[string]vrender.FillMode{
		"": vrender.FillDisabled, "none": vrender.FillDisabled, "disabled": vrender.FillDisabled,
		"foreground": vrender.FillForeground,
		"background": vrender.FillBackground,
		"gradient":   vrender.FillGradient,
	}
	shadowFills = map[string]vrender.ShadowFillMode{
		"": vrender.ShadowExponential, "exponential": vrender.ShadowExponential,
		"linear": vrender.ShadowLinear,
	}
	orientations = map[string]vrender.TriangleOrientation{
		"": vrender.TriangleAuto, "auto": vrender.TriangleAuto,
		"top": vrender.TriangleUp, "up": vrender.TriangleUp,
		"bottom": vrender.TriangleDown, "down": vrender.TriangleDown,
		"left":  vrender.TriangleLeft,
		"right": vrender.TriangleRight,
	}
	alphaTypes = map[string]vrender.AlphaType{
		"": vrender.AlphaOpaque, "opaque": vrender.AlphaOpaque,
		"binary": vrender.AlphaBinary,
		"full":   vrender.AlphaFull, "alpha": vrender.AlphaFull,
	}
	autoScales = map[string]vrender.AutoScale{
		"": vrender.ScaleNone, "none": vrender.ScaleNone,
		"stretch": vrender.ScaleStretch,
		"fit":     vrender.ScaleFit,
	}
	hAligns = map[string]text.HAlign{
		"": text.AlignLeft, "left": text.AlignLeft,
		"center": text.AlignCenter,
		"right":  text.AlignRight,
	}
	vAligns = map[string]text.VAlign{
		"": text.AlignTop, "top": text.AlignTop,
		"center": text.AlignMiddle, "middle": text.AlignMiddle,
		"bottom": text.AlignBottom,
	}
	xAligns = map[string]vrender.Alignment{
		"left":   vrender.AlignLeft,
		"right":  vrender.AlignRight,
		"center": vrender.AlignCenter,
	}
	yAligns = map[string]vrender.Alignment{
		"top":    vrender.AlignTop,
		"bottom": vrender.AlignBottom,
		"center": vrender.AlignCenter,
	}
)

func lookup[T any](what string, names map[string]T, s string) (T, error) {
	v, ok := names[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		var zero T
		return zero, errors.Errorf("unknown %s %q", what, s)
	}
	return v, nil
}

// build converts one theme step. With res nil, references to fonts and
// bitmaps are not resolved.
func (t *Theme) build(s Step, res *Resources) (vrender.Step, error) {
	kind, ok := vrender.ParseStepKind(strings.ToLower(s.Func))
	if !ok {
		return nil, errors.Errorf("unknown func %q", s.Func)
	}
	pl, err := t.placement(s)
	if err != nil {
		return nil, err
	}
	pt, err := t.paint(s)
	if err != nil {
		return nil, err
	}
	base := vrender.StepBase{Placement: pl, Paint: pt}

	switch kind {
	case vrender.KindLine:
		return vrender.LineStep{StepBase: base}, nil
	case vrender.KindCircle:
		r, err := radius(s.Radius)
		return vrender.CircleStep{StepBase: base, Radius: r}, err
	case vrender.KindSquare:
		return vrender.SquareStep{StepBase: base}, nil
	case vrender.KindRoundedSquare:
		r, err := radius(s.Radius)
		return vrender.RoundedSquareStep{StepBase: base, Radius: r}, err
	case vrender.KindTriangle:
		o, err := lookup("orientation", orientations, s.Orientation)
		return vrender.TriangleStep{StepBase: base, Orientation: o}, err
	case vrender.KindBeveledSquare:
		return vrender.BeveledSquareStep{StepBase: base}, nil
	case vrender.KindTab:
		r, err := radius(s.Radius)
		return vrender.TabStep{StepBase: base, Radius: r}, err
	case vrender.KindCross:
		return vrender.CrossStep{StepBase: base}, nil
	case vrender.KindFillSurface:
		return vrender.FillSurfaceStep{StepBase: base}, nil
	case vrender.KindBitmap:
		return t.bitmapStep(base, s, res)
	case vrender.KindText:
		return t.textStep(base, s, res)
	}
	return vrender.VoidStep{StepBase: base}, nil
}

func (t *Theme) bitmapStep(base vrender.StepBase, s Step, res *Resources) (vrender.Step, error) {
	alpha, err := lookup("alpha type", alphaTypes, s.Alpha)
	if err != nil {
		return nil, err
	}
	fit, err := lookup("autoscale", autoScales, s.Autoscale)
	if err != nil {
		return nil, err
	}
	step := vrender.BitmapStep{StepBase: base, Alpha: alpha, Fit: fit}
	if res != nil {
		img, ok := res.Images[s.Bitmap]
		if !ok {
			return nil, errors.Errorf("unknown bitmap %q", s.Bitmap)
		}
		step.Image = img
	}
	return step, nil
}

func (t *Theme) textStep(base vrender.StepBase, s Step, res *Resources) (vrender.Step, error) {
	h, err := lookup("horizontal alignment", hAligns, s.AlignH)
	if err != nil {
		return nil, err
	}
	v, err := lookup("vertical alignment", vAligns, s.AlignV)
	if err != nil {
		return nil, err
	}
	step := vrender.TextStep{
		StepBase: base,
		Text:     s.Text,
		AlignH:   h,
		AlignV:   v,
		DeltaX:   s.DeltaX,
		Ellipsis: s.Ellipsis,
	}
	if res != nil {
		f, ok := res.Fonts[s.Font]
		if !ok || f == nil {
			return nil, errors.Errorf("unknown font %q", s.Font)
		}
		step.Font = f
	}
	return step, nil
}

func (t *Theme) paint(s Step) (vrender.Paint, error) {
	p := vrender.Paint{
		Stroke:         s.Stroke,
		Shadow:         s.Shadow,
		BevelAmount:    s.Bevel,
		GradientFactor: s.GradientFactor,
	}
	var err error
	for _, c := range []struct {
		name string
		in   string
		out  **vrender.Color
	}{
		{"fg", s.Fg, &p.Fg},
		{"bg", s.Bg, &p.Bg},
		{"bevel_color", s.BevelColor, &p.Bevel},
		{"gradient_start", s.GradientStart, &p.GradientStart},
		{"gradient_end", s.GradientEnd, &p.GradientEnd},
	} {
		if c.in == "" {
			continue
		}
		col, err := t.Color(c.in)
		if err != nil {
			return p, errors.Wrap(err, c.name)
		}
		*c.out = &col
	}
	if p.Fill, err = lookup("fill mode", fillModes, s.Fill); err != nil {
		return p, err
	}
	if p.ShadowFill, err = lookup("shadow fill mode", shadowFills, s.ShadowFill); err != nil {
		return p, err
	}
	if s.ShadowIntensity != nil {
		f, ok := toFloat(s.ShadowIntensity)
		if !ok || f <= 0 {
			return p, errors.Errorf("invalid shadow_intensity %v", s.ShadowIntensity)
		}
		p.ShadowIntensity = vrender.FixedFromFloat(f)
	}
	return p, nil
}

func (t *Theme) scale() (vrender.Fixed, error) {
	if t.Scale == nil {
		return 0, nil
	}
	f, ok := toFloat(t.Scale)
	if !ok || f <= 0 {
		return 0, errors.Errorf("invalid scale %v", t.Scale)
	}
	return vrender.FixedFromFloat(f), nil
}

func (t *Theme) placement(s Step) (vrender.Placement, error) {
	var p vrender.Placement
	var err error
	if p.Scale, err = t.scale(); err != nil {
		return p, err
	}
	if p.X, p.XAlign, err = position("xpos", s.XPos, xAligns); err != nil {
		return p, err
	}
	if p.Y, p.YAlign, err = position("ypos", s.YPos, yAligns); err != nil {
		return p, err
	}
	if p.W, p.AutoWidth, err = size("width", s.Width, "height"); err != nil {
		return p, err
	}
	if p.H, p.AutoHeight, err = size("height", s.Height, "width"); err != nil {
		return p, err
	}
	pad, err := quad("padding", s.Padding)
	if err != nil {
		return p, err
	}
	p.Padding = vrender.Insets{Left: pad[0], Top: pad[1], Right: pad[2], Bottom: pad[3]}
	clip, err := quad("clip", s.Clip)
	if err != nil {
		return p, err
	}
	p.Clip = vrender.Edges{Left: clip[0], Top: clip[1], Right: clip[2], Bottom: clip[3]}
	return p, nil
}

// position parses a literal coordinate or an alignment name.
func position(what string, v any, names map[string]vrender.Alignment) (int, vrender.Alignment, error) {
	if v == nil {
		return 0, vrender.AlignLiteral, nil
	}
	if n, ok := toInt(v); ok {
		return n, vrender.AlignLiteral, nil
	}
	if s, ok := v.(string); ok {
		a, err := lookup(what, names, s)
		return 0, a, err
	}
	return 0, 0, errors.Errorf("invalid %s %v", what, v)
}

// size parses a literal extent, "auto", or the name of the other axis
// for square steps. Missing sizes are automatic.
func size(what string, v any, other string) (int, bool, error) {
	if v == nil {
		return 0, true, nil
	}
	if n, ok := toInt(v); ok {
		return n, false, nil
	}
	switch s, _ := v.(string); strings.ToLower(s) {
	case "auto":
		return 0, true, nil
	case other:
		return -1, false, nil
	}
	return 0, false, errors.Errorf("invalid %s %v", what, v)
}

func radius(v any) (int, error) {
	if v == nil {
		return vrender.RadiusAuto, nil
	}
	if n, ok := toInt(v); ok && n >= 0 {
		return n, nil
	}
	if s, ok := v.(string); ok && strings.EqualFold(s, "auto") {
		return vrender.RadiusAuto, nil
	}
	return 0, errors.Errorf("invalid radius %v", v)
}

func quad(what string, v []int) ([4]int, error) {
	var q [4]int
	switch len(v) {
	case 0:
	case 4:
		copy(q[:], v)
	default:
		return q, errors.Errorf("%s needs 4 values, got %d", what, len(v))
	}
	return q, nil
}

// toInt accepts the integer types YAML and TOML decoders produce, whole
// floats and numeric strings.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
