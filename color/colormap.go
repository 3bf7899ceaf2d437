// Package color turns reducer output into colors.
package color

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

var ErrUnknownColormap = errors.New("unknown colormap")

// Colormap maps a value in [0, 1] to a color.
type Colormap func(v float64) color.Color

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// FromColorMap adapts a continuous gonum palette.ColorMap to the [0, 1]
// domain. Values outside are clamped.
func FromColorMap(cm palette.ColorMap) Colormap {
	cm.SetMax(1)
	cm.SetMin(0)
	return func(v float64) color.Color {
		c, err := cm.At(clamp01(v))
		if err != nil {
			return color.Black
		}
		return c
	}
}

// FromPalette spreads a discrete palette over [0, 1].
func FromPalette(p palette.Palette) Colormap {
	colors := p.Colors()
	return func(v float64) color.Color {
		if len(colors) == 0 {
			return color.Black
		}
		i := int(clamp01(v) * float64(len(colors)-1))
		return colors[i]
	}
}

var colormaps = map[string]func() Colormap{
	"bluered":           func() Colormap { return FromColorMap(moreland.SmoothBlueRed()) },
	"bluetan":           func() Colormap { return FromColorMap(moreland.SmoothBlueTan()) },
	"greenpurple":       func() Colormap { return FromColorMap(moreland.SmoothGreenPurple()) },
	"greenred":          func() Colormap { return FromColorMap(moreland.SmoothGreenRed()) },
	"purpleorange":      func() Colormap { return FromColorMap(moreland.SmoothPurpleOrange()) },
	"kindlmann":         func() Colormap { return FromColorMap(moreland.Kindlmann()) },
	"extendedkindlmann": func() Colormap { return FromColorMap(moreland.ExtendedKindlmann()) },
	"blackbody":         func() Colormap { return FromColorMap(moreland.BlackBody()) },
	"extendedblackbody": func() Colormap { return FromColorMap(moreland.ExtendedBlackBody()) },
	"heat":              func() Colormap { return FromPalette(palette.Heat(256, 1)) },
}

// ColormapByName returns a fresh colormap for one of ColormapNames.
func ColormapByName(name string) (Colormap, error) {
	f, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	return f(), nil
}

func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func HexAll(colors []color.Color) []string {
	res := make([]string, len(colors))
	for i, c := range colors {
		res[i] = Hex(c)
	}
	return res
}
