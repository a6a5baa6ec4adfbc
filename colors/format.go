package colors

import (
	"fmt"
	"math"

	"github.com/color-picker/api/models"
)

func round(x float64) int {
	return int(math.Round(x))
}

// roundHue keeps 359.6 from printing as 360deg.
func roundHue(h float64) int {
	return round(normalizeHue(h)) % 360
}

func FormatHex(c models.RGB) string {
	return string(RGBToHex(c))
}

func FormatRGB(c models.RGB) string {
	c = ClampRGB(c)
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func FormatHSL(c models.HSL) string {
	c = ClampHSL(c)
	return fmt.Sprintf("hsl(%ddeg, %d%%, %d%%)", roundHue(c.H), round(c.S), round(c.L))
}

func FormatHSV(c models.HSV) string {
	c = ClampHSV(c)
	return fmt.Sprintf("hsv(%ddeg, %d%%, %d%%)", roundHue(c.H), round(c.S), round(c.V))
}

func FormatCMYK(c models.CMYK) string {
	c = ClampCMYK(c)
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", round(c.C), round(c.M), round(c.Y), round(c.K))
}

// Describe derives every representation of hsv.
func Describe(hsv models.HSV) models.ColorSet {
	hsv = ClampHSV(hsv)
	rgb := HSVToRGB(hsv)
	hsl := HSVToHSL(hsv)
	cmyk := RGBToCMYK(rgb)
	hex := RGBToHex(rgb)

	return models.ColorSet{
		Hex:  models.ColorValue{Object: hex, Text: string(hex)},
		RGB:  models.ColorValue{Object: rgb, Text: FormatRGB(rgb)},
		HSL:  models.ColorValue{Object: hsl, Text: FormatHSL(hsl)},
		HSV:  models.ColorValue{Object: hsv, Text: FormatHSV(hsv)},
		CMYK: models.ColorValue{Object: cmyk, Text: FormatCMYK(cmyk)},
	}
}
