package colors

import (
	"testing"

	"github.com/color-picker/api/models"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestDefaultModelIsWhite(t *testing.T) {
	all := NewModel(DefaultHSV).GetAll()

	want := models.ColorSet{
		Hex:  models.ColorValue{Object: models.Hex("#ffffff"), Text: "#ffffff"},
		RGB:  models.ColorValue{Object: models.RGB{R: 255, G: 255, B: 255}, Text: "rgb(255, 255, 255)"},
		HSL:  models.ColorValue{Object: models.HSL{H: 0, S: 0, L: 100}, Text: "hsl(0deg, 0%, 100%)"},
		HSV:  models.ColorValue{Object: models.HSV{H: 0, S: 0, V: 100}, Text: "hsv(0deg, 0%, 100%)"},
		CMYK: models.ColorValue{Object: models.CMYK{C: 0, M: 0, Y: 0, K: 0}, Text: "cmyk(0%, 0%, 0%, 0%)"},
	}
	if diff := cmp.Diff(want, all, approx); diff != "" {
		t.Errorf("default color set mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateFromHexShorthand(t *testing.T) {
	m := NewModel(DefaultHSV)
	require.NoError(t, m.UpdateFrom(models.RepHex, "f0a"))

	hsv := m.HSV()
	assert.InDelta(t, 320, hsv.H, 1e-9)
	assert.InDelta(t, 100, hsv.S, 1e-9)
	assert.InDelta(t, 100, hsv.V, 1e-9)

	all := m.GetAll()
	assert.Equal(t, "#ff00aa", all.Hex.Text)
	assert.Equal(t, "rgb(255, 0, 170)", all.RGB.Text)
	assert.Equal(t, models.RGB{R: 255, G: 0, B: 170}, all.RGB.Object)
	assert.Equal(t, "hsl(320deg, 100%, 50%)", all.HSL.Text)
	assert.Equal(t, "hsv(320deg, 100%, 100%)", all.HSV.Text)
	assert.Equal(t, "cmyk(0%, 100%, 33%, 0%)", all.CMYK.Text)
}

func TestUpdateFromMismatchKeepsState(t *testing.T) {
	m := NewModel(models.HSV{H: 210, S: 40, V: 70})
	before := m.GetAll()

	err := m.UpdateFrom(models.RepRGB, "not a color")
	assert.ErrorIs(t, err, ErrParseMismatch)
	assert.Equal(t, models.HSV{H: 210, S: 40, V: 70}, m.HSV())
	if diff := cmp.Diff(before, m.GetAll()); diff != "" {
		t.Errorf("state changed after mismatch (-before +after):\n%s", diff)
	}

	for rep, text := range map[models.Representation]string{
		models.RepHex:  "#12345",
		models.RepHSL:  "hsl(1, 2)",
		models.RepHSV:  "red",
		models.RepCMYK: "cmyk(a, b, c, d)",
	} {
		assert.ErrorIs(t, m.UpdateFrom(rep, text), ErrParseMismatch, rep)
		assert.Equal(t, models.HSV{H: 210, S: 40, V: 70}, m.HSV(), rep)
	}
}

func TestUpdateFromUnknownRepresentation(t *testing.T) {
	m := NewModel(DefaultHSV)
	err := m.UpdateFrom(models.Representation("lab"), "lab(50, 0, 0)")
	assert.ErrorIs(t, err, ErrUnknownRepresentation)
	assert.Equal(t, DefaultHSV, m.HSV())
}

func TestUpdateFromEveryRepresentation(t *testing.T) {
	cases := []struct {
		rep  models.Representation
		text string
		want string
	}{
		{models.RepHex, "#336699", "#336699"},
		{models.RepRGB, "rgb(51, 102, 153)", "#336699"},
		{models.RepHSL, "hsl(210deg, 50%, 40%)", "#336699"},
		{models.RepCMYK, "cmyk(66.6667%, 33.3333%, 0%, 40%)", "#336699"},
		{models.RepHSV, "hsv(120deg, 100%, 100%)", "#00ff00"},
		{models.RepHSV, "hsv(360deg, 100%, 100%)", "#ff0000"},
		{models.RepRGB, "rgb(999, -5, 10)", "#ff000a"},
		{models.RepCMYK, "cmyk(0%, 0%, 0%, 100%)", "#000000"},
	}
	for _, c := range cases {
		m := NewModel(DefaultHSV)
		require.NoError(t, m.UpdateFrom(c.rep, c.text), c.text)
		assert.Equal(t, c.want, m.GetAll().Hex.Text, c.text)
	}
}

func TestUpdateFromHSVWrapsFullTurn(t *testing.T) {
	m := NewModel(DefaultHSV)
	require.NoError(t, m.UpdateFrom(models.RepHSV, "hsv(360deg, 50%, 50%)"))
	assert.Equal(t, models.HSV{H: 0, S: 50, V: 50}, m.HSV())
}

func TestUpdateReplacesUnconditionally(t *testing.T) {
	m := NewModel(DefaultHSV)
	m.Update(models.HSV{H: 240, S: 100, V: 100})
	assert.Equal(t, "#0000ff", m.GetAll().Hex.Text)
	assert.Equal(t, models.RGB{R: 0, G: 0, B: 255}, m.HueRGB())

	m.Update(models.HSV{H: 0, S: 0, V: 0})
	all := m.GetAll()
	assert.Equal(t, "#000000", all.Hex.Text)
	assert.Equal(t, "cmyk(0%, 0%, 0%, 100%)", all.CMYK.Text)
	assert.Equal(t, "hsl(0deg, 0%, 0%)", all.HSL.Text)
}

func TestGetAllTextReparses(t *testing.T) {
	m := NewModel(models.HSV{H: 147, S: 63, V: 81})
	all := m.GetAll()
	for _, rep := range models.Representations {
		value, err := all.Get(rep)
		require.NoError(t, err)

		again := NewModel(DefaultHSV)
		require.NoError(t, again.UpdateFrom(rep, value.Text), value.Text)
		got := HSVToRGB(again.HSV())
		requireRGBNear(t, all.RGB.Object.(models.RGB), got, 3, rep)
	}
}

func TestConvert(t *testing.T) {
	set, err := Convert(models.RepHex, "f0a")
	require.NoError(t, err)
	assert.Equal(t, "rgb(255, 0, 170)", set.RGB.Text)

	_, err = Convert(models.RepRGB, "rgb(")
	assert.ErrorIs(t, err, ErrParseMismatch)
}
