package linekit

import (
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Color components are straight
// (not premultiplied).
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// HSV creates an opaque color from hue in degrees, saturation and
// brightness (value) in [0, 1].
func HSV(h, s, v float64) RGBA {
	return fromColorful(colorful.Hsv(h, s, v), 1)
}

// Hex creates a color from "#RRGGBB", "#RGB" or "#RRGGBBAA".
// Unparseable input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] != '#' {
		hex = "#" + hex
	}
	alpha := 1.0
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:9], 16, 8)
		if err != nil {
			return RGB(0, 0, 0)
		}
		alpha = float64(a) / 255
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB(0, 0, 0)
	}
	return fromColorful(c, alpha)
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(nc.R) / 65535,
		G: float64(nc.G) / 65535,
		B: float64(nc.B) / 65535,
		A: float64(nc.A) / 65535,
	}
}

// ToRGBA converts the color to an 8-bit straight-alpha color.NRGBA.
func (c RGBA) ToRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Blend composites c over dst (Porter-Duff source-over).
func (c RGBA) Blend(dst RGBA) RGBA {
	outA := c.A + dst.A*(1-c.A)
	if outA == 0 {
		return RGBA{}
	}
	mix := func(s, d float64) float64 {
		return (s*c.A + d*dst.A*(1-c.A)) / outA
	}
	return RGBA{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: outA}
}

// Lerp interpolates linearly from c to o in RGB space.
// t=0 returns c, t=1 returns o.
func (c RGBA) Lerp(o RGBA, t float64) RGBA {
	mixed := c.colorful().BlendRgb(o.colorful(), t)
	return fromColorful(mixed, c.A+(o.A-c.A)*t)
}

// Hue returns the HSV hue in degrees [0, 360).
func (c RGBA) Hue() float64 {
	h, _, _ := c.colorful().Hsv()
	return h
}

// Saturation returns the HSV saturation in [0, 1].
func (c RGBA) Saturation() float64 {
	_, s, _ := c.colorful().Hsv()
	return s
}

// Brightness returns the HSV value in [0, 1].
func (c RGBA) Brightness() float64 {
	_, _, v := c.colorful().Hsv()
	return v
}

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

func fromColorful(c colorful.Color, alpha float64) RGBA {
	c = c.Clamped()
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
