package colors

import (
	"testing"

	"github.com/color-picker/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRGB(t *testing.T) {
	cases := map[string]models.RGB{
		"rgb(255, 0, 170)":        {R: 255, G: 0, B: 170},
		"RGB(1,2,3)":              {R: 1, G: 2, B: 3},
		"  rgb ( 10 , 20 , 30 ) ": {R: 10, G: 20, B: 30},
		"255, 255, 255":           {R: 255, G: 255, B: 255},
		"rgb(1, 2, 3,)":           {R: 1, G: 2, B: 3},
	}
	for text, want := range cases {
		got, err := ParseRGB(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
}

func TestParseRGBClampsOutOfRange(t *testing.T) {
	got, err := ParseRGB("rgb(999, -5, 10)")
	require.NoError(t, err)
	assert.Equal(t, models.RGB{R: 255, G: 0, B: 10}, got)

	got, err = ParseRGB("rgb(99999999999999999999999, +3, 0)")
	require.NoError(t, err)
	assert.Equal(t, models.RGB{R: 255, G: 3, B: 0}, got)
}

func TestParseRGBMismatch(t *testing.T) {
	for _, text := range []string{
		"",
		"not a color",
		"rgb()",
		"rgb(1, 2)",
		"rgb(1, 2, 3, 4)",
		"rgb(1.5, 2, 3)",
		"rgb(a, b, c)",
		"rgb(1, 2, 3",
		"rgb 1, 2, 3",
		"rgba(1, 2, 3)",
		"hsl(1, 2, 3)",
		"(1, 2, 3)",
		"rgb(1,, 3)",
	} {
		got, err := ParseRGB(text)
		assert.ErrorIs(t, err, ErrParseMismatch, text)
		assert.Equal(t, models.RGB{}, got, text)
	}
}

func TestParseHSL(t *testing.T) {
	cases := map[string]models.HSL{
		"hsl(320deg, 100%, 50%)":   {H: 320, S: 100, L: 50},
		"hsl(320, 100, 50)":        {H: 320, S: 100, L: 50},
		"0°, 0%, 100%":             {H: 0, S: 0, L: 100},
		"HSL(12.5DEG, 20.25%, 1%)": {H: 12.5, S: 20.25, L: 1},
		"hsl(400deg, 120%, -3%)":   {H: 360, S: 100, L: 0},
	}
	for text, want := range cases {
		got, err := ParseHSL(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
}

func TestParseHSV(t *testing.T) {
	cases := map[string]models.HSV{
		"hsv(0deg, 0%, 100%)":     {H: 0, S: 0, V: 100},
		"hsv(-10deg, 50%, 50%)":   {H: 0, S: 50, V: 50},
		"hsv(720, 200, 200)":      {H: 360, S: 100, V: 100},
		" 210 deg , 66 % , 60 % ": {H: 210, S: 66, V: 60},
	}
	for text, want := range cases {
		got, err := ParseHSV(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
}

func TestParseHSVMismatch(t *testing.T) {
	for _, text := range []string{"hsv(0deg, 0%)", "hsv(0%, 0%, 0%)", "hsv(0deg, 0deg, 0%)", "hsl(0, 0, 0)", "hsv(1e3, 0, 0)", "hsv(.5, 0, 0)"} {
		_, err := ParseHSV(text)
		assert.ErrorIs(t, err, ErrParseMismatch, text)
	}
}

func TestParseCMYK(t *testing.T) {
	cases := map[string]models.CMYK{
		"cmyk(0%, 100%, 33%, 0%)":    {C: 0, M: 100, Y: 33, K: 0},
		"cmyk(0, 0, 0, 100)":         {C: 0, M: 0, Y: 0, K: 100},
		"10%, 20%, 30%, 40%,":        {C: 10, M: 20, Y: 30, K: 40},
		"cmyk(150%, -1%, 50.5%, 0%)": {C: 100, M: 0, Y: 50.5, K: 0},
	}
	for text, want := range cases {
		got, err := ParseCMYK(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}

	_, err := ParseCMYK("cmyk(0%, 0%, 0%)")
	assert.ErrorIs(t, err, ErrParseMismatch)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "#ff00aa", FormatHex(models.RGB{R: 255, G: 0, B: 170}))
	assert.Equal(t, "rgb(255, 0, 170)", FormatRGB(models.RGB{R: 255, G: 0, B: 170}))
	assert.Equal(t, "hsl(320deg, 100%, 50%)", FormatHSL(models.HSL{H: 320, S: 100, L: 50}))
	assert.Equal(t, "hsv(210deg, 67%, 60%)", FormatHSV(models.HSV{H: 210, S: 66.6667, V: 60}))
	assert.Equal(t, "cmyk(67%, 33%, 0%, 40%)", FormatCMYK(models.CMYK{C: 66.6667, M: 33.3333, Y: 0, K: 40}))
	assert.Equal(t, "hsv(0deg, 0%, 100%)", FormatHSV(models.HSV{H: 359.6, S: 0, V: 100}))
}

func TestFormatThenParse(t *testing.T) {
	rgb := models.RGB{R: 12, G: 200, B: 99}

	parsedRGB, err := ParseRGB(FormatRGB(rgb))
	require.NoError(t, err)
	assert.Equal(t, rgb, parsedRGB)

	parsedHex, err := ParseHex(FormatHex(rgb))
	require.NoError(t, err)
	assert.Equal(t, rgb, parsedHex)

	hsl := models.HSL{H: 150, S: 30, L: 60}
	parsedHSL, err := ParseHSL(FormatHSL(hsl))
	require.NoError(t, err)
	assert.Equal(t, hsl, parsedHSL)

	hsv := models.HSV{H: 10, S: 20, V: 30}
	parsedHSV, err := ParseHSV(FormatHSV(hsv))
	require.NoError(t, err)
	assert.Equal(t, hsv, parsedHSV)

	cmyk := models.CMYK{C: 1, M: 2, Y: 3, K: 4}
	parsedCMYK, err := ParseCMYK(FormatCMYK(cmyk))
	require.NoError(t, err)
	assert.Equal(t, cmyk, parsedCMYK)
}

func TestParseNamed(t *testing.T) {
	rgb, err := ParseNamed("steelblue")
	require.NoError(t, err)
	assert.Equal(t, models.RGB{R: 70, G: 130, B: 180}, rgb)

	rgb, err = ParseNamed(" Light Sea Green ")
	require.NoError(t, err)
	assert.Equal(t, models.RGB{R: 32, G: 178, B: 170}, rgb)

	_, err = ParseNamed("notacolor")
	assert.ErrorIs(t, err, ErrUnknownColorName)
}
