package render

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/cfortier/sheetsvg/svg"
)

// Line-weight levels as the host reports them.
const (
	WeightThin = iota
	WeightNormal
	WeightThick
	WeightThick2
	WeightThick3
	WeightThick4
	WeightThick5
	WeightThick6
)

// strokeWidths maps the eight weight levels to output millimeters. The host
// documents the levels in inches; values here are those inches times 25.4.
var strokeWidths = map[int]float64{
	WeightThin:   0.0071 * 25.4,
	WeightNormal: 0.0098 * 25.4,
	WeightThick:  0.0138 * 25.4,
	WeightThick2: 0.0197 * 25.4,
	WeightThick3: 0.0276 * 25.4,
	WeightThick4: 0.0394 * 25.4,
	WeightThick5: 0.0551 * 25.4,
	WeightThick6: 0.0787 * 25.4,
}

// StrokeWidth returns the stroke width in output units for a host weight
// level. Unrecognized levels fall back to the normal weight.
func StrokeWidth(weight int) float64 {
	if w, ok := strokeWidths[weight]; ok {
		return w
	}
	return strokeWidths[WeightNormal]
}

// Line style ids as the host reports them.
const (
	StyleSolid = iota
	StyleDashed
	StylePhantom
	StyleChain
	StyleCenter
	StyleStitch
	StyleThinChain
	StyleThickChain
)

// dashTemplates gives each non-solid line style its dash/gap sequence in
// multiples of the base dash unit.
var dashTemplates = map[int][]float64{
	StyleDashed:     {4, 2},
	StylePhantom:    {8, 2, 2, 2, 2, 2},
	StyleChain:      {8, 2, 2, 2},
	StyleCenter:     {10, 2, 2, 2},
	StyleStitch:     {1, 1},
	StyleThinChain:  {6, 2, 1, 2},
	StyleThickChain: {6, 2, 1, 2},
}

// DashScale converts a stroke width into the base dash unit. The 4.5 factor
// was matched empirically against host output and has no documented
// derivation; override it if rendered patterns drift from the host's.
var DashScale = 4.5

// DashPattern returns the stroke-dasharray value for a line style at the
// given stroke width, or "" for solid and unknown styles.
func DashPattern(styleID int, strokeWidth float64) string {
	tpl := dashTemplates[styleID]
	if len(tpl) == 0 {
		return ""
	}
	unit := strokeWidth * DashScale
	parts := make([]string, len(tpl))
	for i, m := range tpl {
		parts[i] = svg.FormatNum(m * unit)
	}
	return strings.Join(parts, " ")
}

// PackedColor converts a host packed-BGR color to an #rrggbb value.
func PackedColor(packed int) string {
	r := packed & 0xff
	g := (packed >> 8) & 0xff
	b := (packed >> 16) & 0xff
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// NamedColor resolves an SVG color name to #rrggbb, reporting whether the
// name is known.
func NamedColor(name string) (string, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
}
