package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/color-picker/api/models"
)

func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return math.Max(lo, math.Min(hi, x))
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// normalizeHue folds any angle into [0,360).
func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-18 + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

func ClampHSV(c models.HSV) models.HSV {
	return models.HSV{
		H: normalizeHue(c.H),
		S: clamp(c.S, 0, 100),
		V: clamp(c.V, 0, 100),
	}
}

func ClampHSL(c models.HSL) models.HSL {
	return models.HSL{
		H: normalizeHue(c.H),
		S: clamp(c.S, 0, 100),
		L: clamp(c.L, 0, 100),
	}
}

func ClampRGB(c models.RGB) models.RGB {
	return models.RGB{
		R: clampInt(c.R, 0, 255),
		G: clampInt(c.G, 0, 255),
		B: clampInt(c.B, 0, 255),
	}
}

func ClampCMYK(c models.CMYK) models.CMYK {
	return models.CMYK{
		C: clamp(c.C, 0, 100),
		M: clamp(c.M, 0, 100),
		Y: clamp(c.Y, 0, 100),
		K: clamp(c.K, 0, 100),
	}
}

// HSVToRGB converts with the six-sector chroma algorithm.
func HSVToRGB(c models.HSV) models.RGB {
	c = ClampHSV(c)
	s := c.S / 100
	v := c.V / 100

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(c.H/60, 2)-1))
	m := v - chroma

	var r, g, b float64
	switch {
	case c.H < 60:
		r, g, b = chroma, x, 0
	case c.H < 120:
		r, g, b = x, chroma, 0
	case c.H < 180:
		r, g, b = 0, chroma, x
	case c.H < 240:
		r, g, b = 0, x, chroma
	case c.H < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return models.RGB{
		R: int(math.Round((r + m) * 255)),
		G: int(math.Round((g + m) * 255)),
		B: int(math.Round((b + m) * 255)),
	}
}

// RGBToHSV converts an RGB triple. Achromatic input gets hue 0.
func RGBToHSV(c models.RGB) models.HSV {
	c = ClampRGB(c)
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	d := max - min

	s := 0.0
	if max > 0 {
		s = d / max
	}

	h := 0.0
	if d > 0 {
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h *= 60
	}

	return models.HSV{H: normalizeHue(h), S: s * 100, V: max * 100}
}

func HSVToHSL(c models.HSV) models.HSL {
	c = ClampHSV(c)
	s := c.S / 100
	v := c.V / 100

	l := v * (1 - s/2)
	sl := 0.0
	if l > 0 && l < 1 {
		sl = (v - l) / math.Min(l, 1-l)
	}

	return models.HSL{H: c.H, S: clamp(sl*100, 0, 100), L: l * 100}
}

func HSLToHSV(c models.HSL) models.HSV {
	c = ClampHSL(c)
	s := c.S / 100
	l := c.L / 100

	v := l + s*math.Min(l, 1-l)
	sv := 0.0
	if v > 0 {
		sv = 2 * (1 - l/v)
	}

	return models.HSV{H: c.H, S: clamp(sv*100, 0, 100), V: clamp(v*100, 0, 100)}
}

// RGBToCMYK converts an RGB triple. Pure black is {0,0,0,100}.
func RGBToCMYK(c models.RGB) models.CMYK {
	c = ClampRGB(c)
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	k := 1 - math.Max(math.Max(r, g), b)
	if k == 1 {
		return models.CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	return models.CMYK{
		C: (1 - r - k) / (1 - k) * 100,
		M: (1 - g - k) / (1 - k) * 100,
		Y: (1 - b - k) / (1 - k) * 100,
		K: k * 100,
	}
}

func CMYKToRGB(c models.CMYK) models.RGB {
	c = ClampCMYK(c)
	k := 1 - c.K/100
	return models.RGB{
		R: int(math.Round(255 * (1 - c.C/100) * k)),
		G: int(math.Round(255 * (1 - c.M/100) * k)),
		B: int(math.Round(255 * (1 - c.Y/100) * k)),
	}
}

func RGBToHex(c models.RGB) models.Hex {
	c = ClampRGB(c)
	return models.Hex(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// HexToRGB decodes "#rrggbb", "rrggbb" or the three digit shorthand.
func HexToRGB(text string) (models.RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(text), "#")
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	if len(digits) != 6 {
		return models.RGB{}, fmt.Errorf("%w: hex %q must have 3 or 6 digits", ErrParseMismatch, text)
	}

	// base 16 rejects signs, underscores and a 0x prefix.
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return models.RGB{}, fmt.Errorf("%w: hex %q", ErrParseMismatch, text)
	}

	return models.RGB{
		R: int(n >> 16 & 255),
		G: int(n >> 8 & 255),
		B: int(n & 255),
	}, nil
}

// HueRGB is the fully saturated, fully bright color of hue h.
func HueRGB(h float64) models.RGB {
	return HSVToRGB(models.HSV{H: h, S: 100, V: 100})
}
